// file: database/user_directory.go
package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/derrick-nuby/talent-vortex-be/models"
)

// UserDirectory resolves user references for the application service.
type UserDirectory struct {
	DB *gorm.DB
}

func NewUserDirectory(db *gorm.DB) *UserDirectory {
	return &UserDirectory{DB: db}
}

func (d *UserDirectory) FindByID(ctx context.Context, id uint32) (*models.User, error) {
	var user models.User
	if err := d.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindVerifiedByEmails returns the verified users among the given
// addresses. Callers compute the missing set themselves.
func (d *UserDirectory) FindVerifiedByEmails(ctx context.Context, emails []string) ([]models.User, error) {
	var users []models.User
	err := d.DB.WithContext(ctx).
		Where("email IN ? AND is_verified = ?", emails, true).
		Find(&users).Error
	return users, err
}

func (d *UserDirectory) FindByIDs(ctx context.Context, ids []uint32) ([]models.User, error) {
	var users []models.User
	err := d.DB.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	return users, err
}
