package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ojas-1234/company-fitness-bot/internal/model"
	"github.com/ojas-1234/company-fitness-bot/internal/repository"
)

var (
	ErrChallengeTextEmpty = errors.New("challenge text is empty")
	ErrInvalidFrequency   = errors.New("invalid challenge frequency")
	ErrNoActiveChallenge  = errors.New("no active challenge")
)

type ChallengeService struct {
	challengeRepo repository.ChallengeRepository
	locks         *userLocks
}

func NewChallengeService(challengeRepo repository.ChallengeRepository) *ChallengeService {
	return &ChallengeService{
		challengeRepo: challengeRepo,
		locks:         newUserLocks(),
	}
}

// Set makes the given text and frequency the user's one active challenge,
// deactivating any previous one. Setting a challenge identical to the current
// one still replaces it.
func (s *ChallengeService) Set(userID int64, text, frequency string) (*model.Challenge, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrChallengeTextEmpty
	}
	if !model.ValidFrequency(frequency) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFrequency, frequency)
	}

	lock := s.locks.forUser(userID)
	lock.Lock()
	defer lock.Unlock()

	challenge := &model.Challenge{
		UserID:    userID,
		Text:      text,
		Frequency: frequency,
		CreatedAt: time.Now().UTC(),
	}

	err := s.challengeRepo.Replace(challenge)
	if err != nil {
		return nil, fmt.Errorf("failed to replace challenge: %w", err)
	}
	return challenge, nil
}

// Active returns the user's current challenge, or ErrNoActiveChallenge if
// they have none.
func (s *ChallengeService) Active(userID int64) (*model.Challenge, error) {
	challenge, err := s.challengeRepo.Active(userID)
	if err != nil {
		if errors.Is(err, repository.ErrChallengeNotFound) {
			return nil, ErrNoActiveChallenge
		}
		if errors.Is(err, repository.ErrMultipleActiveChallenges) {
			slog.Error("challenge table corrupt: user has multiple active challenges", "user_id", userID)
			return nil, err
		}
		return nil, fmt.Errorf("failed to load active challenge: %w", err)
	}
	return challenge, nil
}
