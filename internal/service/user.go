package service

import (
	"fmt"
	"time"

	"github.com/ojas-1234/company-fitness-bot/internal/model"
	"github.com/ojas-1234/company-fitness-bot/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register records the user with whatever profile Telegram sent along, called
// on every interaction so handle and display name changes stick. Empty
// strings are stored as NULL, which keeps the leaderboard's name fallback
// honest.
func (s *UserService) Register(userID int64, handle, displayName string) (*model.User, error) {
	user := &model.User{
		ID:        userID,
		CreatedAt: time.Now().UTC(),
	}
	if handle != "" {
		user.Handle = &handle
	}
	if displayName != "" {
		user.DisplayName = &displayName
	}

	err := s.userRepo.Upsert(user)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	return user, nil
}
