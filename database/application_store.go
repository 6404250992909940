// file: database/application_store.go
package database

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/derrick-nuby/talent-vortex-be/models"
)

// ApplicationStore is the gorm-backed store behind the application
// service. Every mutation touches exactly one application and its member
// rows; per-member races are settled by conditional updates, not locks.
type ApplicationStore struct {
	DB *gorm.DB
}

func NewApplicationStore(db *gorm.DB) *ApplicationStore {
	return &ApplicationStore{DB: db}
}

// ExistsForUsers reports whether any of the given users already appears
// on an application for the challenge, as applicant or as team member.
func (s *ApplicationStore) ExistsForUsers(ctx context.Context, challengeID uint32, userIDs []uint32) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&models.Application{}).
		Distinct("tv_application.id").
		Joins("LEFT JOIN tv_application_team_member m ON m.application_id = tv_application.id").
		Where("tv_application.challenge_id = ?", challengeID).
		Where("tv_application.applicant_id IN ? OR m.user_id IN ?", userIDs, userIDs).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create persists an application together with all of its team member
// rows in one transaction; either the full team is recorded or nothing.
func (s *ApplicationStore) Create(ctx context.Context, app *models.Application) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(app).Error
	})
}

// FindByToken loads the application holding a live invitation token.
// Expired and unknown tokens are indistinguishable here: both miss.
func (s *ApplicationStore) FindByToken(ctx context.Context, token string, now time.Time) (*models.Application, error) {
	var member models.TeamMember
	err := s.DB.WithContext(ctx).
		Where("token = ? AND token_expires_at > ?", token, now).
		First(&member).Error
	if err != nil {
		return nil, err
	}

	var app models.Application
	err = s.DB.WithContext(ctx).
		Preload("TeamMembers").
		Preload("Challenge").
		Preload("Applicant").
		First(&app, member.ApplicationID).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// RespondMember performs the single-winner transition for an invitation
// token: pending -> accepted/rejected, stamping the response time and
// voiding the token. Returns false when another response got there first
// (zero rows matched the pending guard).
func (s *ApplicationStore) RespondMember(ctx context.Context, token string, status models.TeamMemberStatus, now time.Time) (bool, error) {
	res := s.DB.WithContext(ctx).Model(&models.TeamMember{}).
		Where("token = ? AND status = ?", token, models.TeamMemberPending).
		Updates(map[string]interface{}{
			"status":           status,
			"responded_at":     now,
			"token":            nil,
			"token_expires_at": nil,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// MarkAccepted flips a pending application to accepted. The status guard
// makes the transition fire exactly once across concurrent acceptances.
func (s *ApplicationStore) MarkAccepted(ctx context.Context, applicationID uint32) (bool, error) {
	res := s.DB.WithContext(ctx).Model(&models.Application{}).
		Where("id = ? AND status = ?", applicationID, models.ApplicationStatusPending).
		Update("status", models.ApplicationStatusAccepted)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Members reloads the member rows of an application.
func (s *ApplicationStore) Members(ctx context.Context, applicationID uint32) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := s.DB.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Find(&members).Error
	return members, err
}

// Delete removes an application; member rows go with it via the cascade.
func (s *ApplicationStore) Delete(ctx context.Context, applicationID uint32) error {
	return s.DB.WithContext(ctx).
		Select("TeamMembers").
		Delete(&models.Application{ID: applicationID}).Error
}

// ListAccepted returns every accepted application for a challenge with
// its member rows, oldest application first.
func (s *ApplicationStore) ListAccepted(ctx context.Context, challengeID uint32) ([]models.Application, error) {
	var apps []models.Application
	err := s.DB.WithContext(ctx).
		Preload("TeamMembers").
		Where("challenge_id = ? AND status = ?", challengeID, models.ApplicationStatusAccepted).
		Order("id asc").
		Find(&apps).Error
	return apps, err
}
