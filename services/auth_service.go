package services

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jupabego97/reportes-react-sub000/config"
	"github.com/jupabego97/reportes-react-sub000/models"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// ════════════════════════════════════════════════════════════
// Auth Service
// ════════════════════════════════════════════════════════════

type AuthService struct {
	db *gorm.DB
}

var authService *AuthService

func GetAuthService() *AuthService {
	if authService == nil {
		authService = &AuthService{db: config.DB}
	}
	return authService
}

// Login verifies credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.LoginResponse, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ? AND status = ?", email, "active").First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// run the hash anyway so timing does not reveal whether the email exists
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$invalidinvalidinvalidinvalidinvalidinvalidinvalidinva"), []byte(password))
		return models.LoginResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.LoginResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	token, expiresAt, err := GenerateUserJWT(user.ID.String(), user.Email, user.Name)
	if err != nil {
		return models.LoginResponse{}, err
	}

	if err := s.db.WithContext(ctx).Model(&user).Update("last_login_at", gorm.Expr("NOW()")).Error; err != nil {
		log.Printf("[auth.login] failed to update last login: %v", err)
	}

	return models.LoginResponse{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// GetUser loads the profile behind a session.
func (s *AuthService) GetUser(ctx context.Context, userID string) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error
	return user, err
}

// ════════════════════════════════════════════════════════════
// Password Helpers
// ════════════════════════════════════════════════════════════

func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ValidatePassword enforces the minimum password length.
func (s *AuthService) ValidatePassword(password string) bool {
	return len(password) >= 8
}
