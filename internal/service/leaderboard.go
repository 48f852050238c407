package service

import (
	"fmt"
	"time"

	"github.com/ojas-1234/company-fitness-bot/internal/model"
	"github.com/ojas-1234/company-fitness-bot/internal/repository"
)

const defaultWindowDays = 30

type LeaderboardService struct {
	completionRepo repository.CompletionRepository
	windowDays     int
}

func NewLeaderboardService(completionRepo repository.CompletionRepository, windowDays int) *LeaderboardService {
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	return &LeaderboardService{
		completionRepo: completionRepo,
		windowDays:     windowDays,
	}
}

// Standings ranks every registered user by completions logged in the trailing
// window, most first. Users with nothing in the window still appear with a
// zero count.
func (s *LeaderboardService) Standings() ([]model.LeaderboardRow, error) {
	since := time.Now().UTC().AddDate(0, 0, -s.windowDays)

	rows, err := s.completionRepo.LeaderboardSince(since)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	return rows, nil
}

// WindowDays reports the length of the rolling window, for display next to
// the standings.
func (s *LeaderboardService) WindowDays() int {
	return s.windowDays
}
