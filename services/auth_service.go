package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/piskorekkevin-afk/essenstracker/models"
	"github.com/piskorekkevin-afk/essenstracker/utils"
)

var (
	ErrUserTaken          = errors.New("username or email already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type AuthService struct {
	db     *gorm.DB
	limits *LimitService
}

func NewAuthService(db *gorm.DB, limits *LimitService) *AuthService {
	return &AuthService{db: db, limits: limits}
}

// Register creates the user with a hashed credential and a fresh share
// token, then eagerly creates their daily limits. A share-token
// collision surfaces as the unique-constraint error; it is not retried.
func (s *AuthService) Register(username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, errors.New("username, email and password are required")
	}

	var count int64
	if err := s.db.Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUserTaken
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateShareToken(32)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		ShareToken:   token,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	if _, err := s.limits.Resolve(user.ID); err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies the credential and returns the user.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
