// file: services/auth_service.go
package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/derrick-nuby/talent-vortex-be/dto"
	"github.com/derrick-nuby/talent-vortex-be/models"
	"github.com/derrick-nuby/talent-vortex-be/utils"
)

// AccountMailer is the slice of the mail service the auth flows use.
type AccountMailer interface {
	SendVerificationEmail(email, name, encryptedToken string)
	SendPasswordCreationEmail(email, name, encryptedToken string)
}

type AuthService struct {
	DB     *gorm.DB
	mail   AccountMailer
	logger *zap.Logger
}

func NewAuthService(db *gorm.DB, mail AccountMailer, logger *zap.Logger) *AuthService {
	return &AuthService{DB: db, mail: mail, logger: logger}
}

func (s *AuthService) Register(req dto.RegisterReq) (*models.User, error) {
	var existing models.User
	if err := s.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, Conflict("Email is already registered")
	}

	verificationToken := uuid.New().String()
	user := models.User{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Password:          req.Password,
		VerificationToken: &verificationToken,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, Conflict("Email is already registered")
		}
		return nil, err
	}

	// The raw token never travels; the email link carries the sealed
	// form and verification decrypts it back.
	encrypted, err := utils.Encrypt(verificationToken)
	if err != nil {
		s.logger.Error("failed to encrypt verification token", zap.Error(err))
	} else {
		s.mail.SendVerificationEmail(user.Email, user.FirstName, encrypted)
	}

	return &user, nil
}

func (s *AuthService) Login(req dto.LoginReq) (string, *models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return "", nil, NotFound("User with email " + req.Email + " not found")
	}
	if !user.IsVerified {
		return "", nil, InvalidState("Email " + user.Email + " is not verified")
	}
	if !user.CheckPassword(req.Password) {
		return "", nil, InvalidInput("Invalid credentials")
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

func (s *AuthService) VerifyEmail(encryptedToken string) (*models.User, error) {
	token, err := utils.Decrypt(encryptedToken)
	if err != nil {
		return nil, InvalidInput("Invalid token")
	}

	var user models.User
	if err := s.DB.Where("verification_token = ?", token).First(&user).Error; err != nil {
		return nil, InvalidInput("Invalid token")
	}

	user.IsVerified = true
	user.VerificationToken = nil
	if err := s.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// InviteUser creates a passwordless account on behalf of an admin and
// mails a time-limited password creation link.
func (s *AuthService) InviteUser(req dto.InviteUserReq) (*models.User, error) {
	var existing models.User
	if err := s.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, Conflict("Email is already registered")
	}

	token := uuid.New().String()
	expires := time.Now().Add(48 * time.Hour)
	user := models.User{
		FirstName:              req.FirstName,
		LastName:               req.LastName,
		Email:                  req.Email,
		Role:                   models.UserRole(req.Role),
		PasswordCreationToken:  &token,
		PasswordTokenExpiresAt: &expires,
	}
	if user.Role == "" {
		user.Role = models.RoleTalent
	}
	if err := s.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, Conflict("Email is already registered")
		}
		return nil, err
	}

	encrypted, err := utils.Encrypt(token)
	if err != nil {
		s.logger.Error("failed to encrypt password creation token", zap.Error(err))
	} else {
		s.mail.SendPasswordCreationEmail(user.Email, user.FirstName, encrypted)
	}
	return &user, nil
}

// CreatePassword consumes a password creation token; setting the
// password also verifies the account.
func (s *AuthService) CreatePassword(encryptedToken, password string) (*models.User, error) {
	token, err := utils.Decrypt(encryptedToken)
	if err != nil {
		return nil, InvalidInput("Invalid or expired token")
	}

	var user models.User
	err = s.DB.Where("password_creation_token = ? AND password_token_expires_at > ?", token, time.Now()).
		First(&user).Error
	if err != nil {
		return nil, InvalidInput("Invalid or expired token")
	}

	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	user.PasswordCreationToken = nil
	user.PasswordTokenExpiresAt = nil
	user.IsVerified = true
	if err := s.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
