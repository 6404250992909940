// file: database/challenge_reader.go
package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/derrick-nuby/talent-vortex-be/models"
)

// ChallengeReader is the narrow read view the application service needs.
type ChallengeReader struct {
	DB *gorm.DB
}

func NewChallengeReader(db *gorm.DB) *ChallengeReader {
	return &ChallengeReader{DB: db}
}

func (r *ChallengeReader) FindByID(ctx context.Context, id uint32) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := r.DB.WithContext(ctx).First(&challenge, id).Error; err != nil {
		return nil, err
	}
	return &challenge, nil
}
