// file: models/user.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleTalent     UserRole = "talent"
	RoleAdmin      UserRole = "admin"
	RoleSuperAdmin UserRole = "super_admin"
)

type User struct {
	ID                     uint32     `gorm:"primarykey" json:"id"`
	FirstName              string     `gorm:"size:50;not null" json:"first_name"`
	LastName               string     `gorm:"size:50;not null" json:"last_name"`
	Email                  string     `gorm:"size:100;unique;not null" json:"email"`
	Password               string     `gorm:"size:255" json:"-"`
	Role                   UserRole   `gorm:"type:enum('talent','admin','super_admin');not null;default:'talent'" json:"role"`
	IsVerified             bool       `gorm:"not null;default:false" json:"is_verified"`
	VerificationToken      *string    `gorm:"size:36" json:"-"`
	PasswordCreationToken  *string    `gorm:"size:36" json:"-"`
	PasswordTokenExpiresAt *time.Time `json:"-"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "tv_user"
}

// BeforeSave hashes the password on first insert. Admin-invited users
// start with an empty password until they create one. Password changes
// on existing rows must go through SetPassword: gorm's Changed check
// does not fire on a full-struct Save.
func (u *User) BeforeSave(_ *gorm.DB) error {
	if u.ID != 0 || u.Password == "" {
		return nil
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// SetPassword replaces the stored password with the bcrypt hash of the
// given plaintext.
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a plaintext password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
