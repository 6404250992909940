// file: services/category_service.go
package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/derrick-nuby/talent-vortex-be/dto"
	"github.com/derrick-nuby/talent-vortex-be/models"
	"github.com/derrick-nuby/talent-vortex-be/utils"
)

type CategoryService struct {
	DB *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{DB: db}
}

func (s *CategoryService) Create(req dto.CreateCategoryReq) (*models.Category, error) {
	slug := utils.GenerateSlug(req.Name)

	var existing models.Category
	if err := s.DB.Where("name = ? OR slug = ?", req.Name, slug).First(&existing).Error; err == nil {
		return nil, Conflict("Category with this name or slug already exists")
	}

	category := models.Category{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Tags:        req.Tags,
	}
	if err := s.DB.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, Conflict("Category with this name or slug already exists")
		}
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) FindAll(page, limit int) ([]models.Category, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var total int64
	if err := s.DB.Model(&models.Category{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var categories []models.Category
	err := s.DB.Offset((page - 1) * limit).Limit(limit).
		Order("created_at desc").
		Find(&categories).Error
	return categories, total, err
}

func (s *CategoryService) FindOne(id uint32) (*models.Category, error) {
	var category models.Category
	if err := s.DB.First(&category, id).Error; err != nil {
		return nil, NotFound("Category not found")
	}
	return &category, nil
}

func (s *CategoryService) Update(id uint32, req dto.UpdateCategoryReq) (*models.Category, error) {
	category, err := s.FindOne(id)
	if err != nil {
		return nil, err
	}

	slug := category.Slug
	if req.Name != nil {
		slug = utils.GenerateSlug(*req.Name)

		var duplicate models.Category
		err := s.DB.Where("(name = ? OR slug = ?) AND id <> ?", *req.Name, slug, id).
			First(&duplicate).Error
		if err == nil {
			return nil, Conflict("Category name or slug must be unique")
		}
		category.Name = *req.Name
		category.Slug = slug
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Tags != nil {
		category.Tags = req.Tags
	}

	if err := s.DB.Save(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(id uint32) error {
	res := s.DB.Delete(&models.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return NotFound("Category not found")
	}
	return nil
}
