package service

import (
	"context"
	"fmt"

	"kas-taruna/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct{ db *gorm.DB }

func NewAuthService(db *gorm.DB) *AuthService { return &AuthService{db: db} }

func (s *AuthService) Login(ctx context.Context, username, password string) (*model.Profile, error) {
	var p model.Profile
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&p).Error; err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(p.Password), []byte(password)) != nil {
		return nil, fmt.Errorf("wrong password")
	}
	return &p, nil
}
