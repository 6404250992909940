// file: services/submission_service.go
package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/derrick-nuby/talent-vortex-be/dto"
	"github.com/derrick-nuby/talent-vortex-be/models"
)

type SubmissionService struct {
	DB *gorm.DB
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{DB: db}
}

// Create records the single solution for an application. Only the
// applicant may submit; for team applications that is the team leader.
func (s *SubmissionService) Create(userID uint32, req dto.CreateSubmissionReq) (*models.Submission, error) {
	var app models.Application
	if err := s.DB.First(&app, req.ApplicationID).Error; err != nil {
		return nil, NotFound("Application not found")
	}

	if app.ApplicantID != userID {
		if app.Type == models.ApplicationTypeTeam {
			return nil, InvalidInput("Only the team leader can submit solutions")
		}
		return nil, InvalidInput("Not authorized to submit for this application")
	}

	var existing models.Submission
	if err := s.DB.Where("application_id = ?", app.ID).First(&existing).Error; err == nil {
		return nil, Conflict("Submission already exists for this application")
	}

	submission := models.Submission{
		ApplicationID:     app.ID,
		SubmitterID:       userID,
		DeployedLinks:     req.DeployedLinks,
		GithubLinks:       req.GithubLinks,
		FigmaLinks:        req.FigmaLinks,
		OtherLinks:        req.OtherLinks,
		SubmitterComments: req.SubmitterComments,
		Status:            models.SubmissionPendingReview,
		LastUpdated:       time.Now(),
	}
	if err := s.DB.Create(&submission).Error; err != nil {
		return nil, translateSubmissionError(err)
	}
	return &submission, nil
}

func (s *SubmissionService) AddFeedback(submissionID, reviewerID uint32, req dto.AddFeedbackReq) (*models.Submission, error) {
	var submission models.Submission
	if err := s.DB.First(&submission, submissionID).Error; err != nil {
		return nil, NotFound("Submission not found")
	}

	feedback := models.Feedback{
		SubmissionID: submission.ID,
		ReviewerID:   reviewerID,
		Comment:      req.Comment,
		IsPrivate:    req.IsPrivate,
	}
	if err := s.DB.Create(&feedback).Error; err != nil {
		return nil, err
	}

	submission.LastUpdated = time.Now()
	if err := s.DB.Save(&submission).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Preload("Feedback").First(&submission, submission.ID).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (s *SubmissionService) UpdateStatus(submissionID uint32, status models.SubmissionStatus) (*models.Submission, error) {
	var submission models.Submission
	if err := s.DB.First(&submission, submissionID).Error; err != nil {
		return nil, NotFound("Submission not found")
	}

	submission.Status = status
	submission.LastUpdated = time.Now()
	if err := s.DB.Save(&submission).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

// GetByUser lists a submitter's own submissions. Private reviewer
// feedback is stripped before the rows leave the service.
func (s *SubmissionService) GetByUser(userID uint32, page, limit int) ([]models.Submission, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	query := s.DB.Model(&models.Submission{}).Where("submitter_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var submissions []models.Submission
	err := s.DB.Where("submitter_id = ?", userID).
		Preload("Feedback", "is_private = ?", false).
		Preload("Application.Challenge").
		Offset((page - 1) * limit).Limit(limit).
		Order("created_at desc").
		Find(&submissions).Error
	return submissions, total, err
}

// GetAll lists every submission for reviewers, optionally by status.
func (s *SubmissionService) GetAll(page, limit int, status models.SubmissionStatus) ([]models.Submission, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	base := s.DB.Model(&models.Submission{})
	if status != "" {
		base = base.Where("status = ?", status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := s.DB.Preload("Feedback").
		Preload("Feedback.Reviewer").
		Preload("Submitter").
		Preload("Application.Challenge")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var submissions []models.Submission
	err := query.Offset((page - 1) * limit).Limit(limit).
		Order("created_at desc").
		Find(&submissions).Error
	return submissions, total, err
}

func translateSubmissionError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return Conflict("Submission already exists for this application")
	}
	return err
}
