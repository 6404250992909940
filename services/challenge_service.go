// file: services/challenge_service.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/derrick-nuby/talent-vortex-be/dto"
	"github.com/derrick-nuby/talent-vortex-be/models"
	"github.com/derrick-nuby/talent-vortex-be/utils"
)

// Cache is the small key/value surface the read-heavy services use.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
	Delete(ctx context.Context, pattern string)
}

const challengeCacheTTL = 5 * time.Minute

type ChallengeService struct {
	DB    *gorm.DB
	cache Cache
}

func NewChallengeService(db *gorm.DB, cache Cache) *ChallengeService {
	return &ChallengeService{DB: db, cache: cache}
}

func (s *ChallengeService) Create(req dto.CreateChallengeReq) (*models.Challenge, error) {
	var category models.Category
	if err := s.DB.First(&category, req.CategoryID).Error; err != nil {
		return nil, NotFound(fmt.Sprintf("Category with id %d is not available", req.CategoryID))
	}

	challengeType := models.ChallengeType(req.Type)
	if challengeType == models.ChallengeTypeTeam {
		if req.TeamSize == nil || *req.TeamSize < 2 {
			return nil, InvalidInput("Team challenges require a team size of at least 2")
		}
	} else {
		req.TeamSize = nil
	}

	prizes := make([]models.Prize, 0, len(req.Prizes))
	for _, p := range req.Prizes {
		prizes = append(prizes, models.Prize{Place: p.Place, MinValue: p.MinValue, MaxValue: p.MaxValue})
	}

	challenge := models.Challenge{
		Slug:         utils.GenerateSlug(req.Title),
		Title:        req.Title,
		Description:  req.Description,
		Email:        req.Email,
		Tasks:        req.Tasks,
		Prizes:       prizes,
		SkillsNeeded: req.SkillsNeeded,
		Juniority:    models.JuniorityLevel(req.JuniorityLevel),
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Type:         challengeType,
		TeamSize:     req.TeamSize,
		CategoryID:   req.CategoryID,
	}
	if err := s.DB.Create(&challenge).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, Conflict("Challenge with this title already exists")
		}
		return nil, err
	}

	s.invalidate()
	return &challenge, nil
}

// FindAll returns a page of challenges with their categories. Results
// are cached for five minutes per query shape.
func (s *ChallengeService) FindAll(ctx context.Context, req dto.QueryChallengesReq) (*dto.PaginatedChallenges, error) {
	cacheKey := fmt.Sprintf("challenges:%d:%d:%s:%s:%s:%s",
		req.Page, req.Limit, req.Status, req.Search, req.SortField, req.SortOrder)
	if cached, ok := s.cache.Get(ctx, cacheKey); ok {
		var result dto.PaginatedChallenges
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return &result, nil
		}
	}

	query := s.DB.Model(&models.Challenge{})
	if req.Status != "" {
		query = query.Where("status = ?", req.Status)
	}
	if req.Search != "" {
		query = query.Where("title LIKE ?", "%"+req.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	sortField := req.SortField
	if sortField == "" {
		sortField = "created_at"
	}
	direction := "desc"
	if req.SortOrder == "asc" {
		direction = "asc"
	}

	var challenges []models.Challenge
	err := query.Preload("Category").Preload("Prizes").
		Order(sortField + " " + direction).
		Offset((req.Page - 1) * req.Limit).Limit(req.Limit).
		Find(&challenges).Error
	if err != nil {
		return nil, err
	}

	result := &dto.PaginatedChallenges{
		Challenges: challenges,
		Pagination: dto.Pagination{
			CurrentPage:  req.Page,
			ItemsPerPage: req.Limit,
			TotalItems:   total,
			TotalPages:   int((total + int64(req.Limit) - 1) / int64(req.Limit)),
		},
	}

	if raw, err := json.Marshal(result); err == nil {
		s.cache.Set(ctx, cacheKey, string(raw), challengeCacheTTL)
	}
	return result, nil
}

// FindByIdentifier resolves a challenge by numeric id or by slug.
func (s *ChallengeService) FindByIdentifier(identifier string) (*models.Challenge, error) {
	query := s.DB.Preload("Category").Preload("Prizes")

	var challenge models.Challenge
	var err error
	if id, convErr := strconv.ParseUint(identifier, 10, 32); convErr == nil {
		err = query.First(&challenge, uint32(id)).Error
	} else {
		err = query.Where("slug = ?", identifier).First(&challenge).Error
	}
	if err != nil {
		return nil, NotFound("Challenge " + identifier + " not found")
	}
	return &challenge, nil
}

func (s *ChallengeService) Update(id uint32, req dto.UpdateChallengeReq) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := s.DB.Preload("Category").Preload("Prizes").First(&challenge, id).Error; err != nil {
		return nil, NotFound(fmt.Sprintf("Challenge with ID %d not found", id))
	}

	if req.Title != nil {
		challenge.Title = *req.Title
		challenge.Slug = utils.GenerateSlug(*req.Title)
	}
	if req.Description != nil {
		challenge.Description = *req.Description
	}
	if req.Tasks != nil {
		challenge.Tasks = *req.Tasks
	}
	if req.Status != nil {
		challenge.Status = models.ChallengeStatus(*req.Status)
	}
	if req.SkillsNeeded != nil {
		challenge.SkillsNeeded = req.SkillsNeeded
	}
	if req.JuniorityLevel != nil {
		challenge.Juniority = models.JuniorityLevel(*req.JuniorityLevel)
	}
	if req.StartDate != nil {
		challenge.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		challenge.EndDate = *req.EndDate
	}

	if err := s.DB.Save(&challenge).Error; err != nil {
		return nil, err
	}

	s.invalidate()
	return &challenge, nil
}

func (s *ChallengeService) Delete(id uint32) error {
	res := s.DB.Select("Prizes").Delete(&models.Challenge{ID: id})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return NotFound(fmt.Sprintf("Challenge with ID %d not found", id))
	}
	s.invalidate()
	return nil
}

func (s *ChallengeService) invalidate() {
	s.cache.Delete(context.Background(), "challenges:*")
}
