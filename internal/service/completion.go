package service

import (
	"fmt"
	"time"

	"github.com/ojas-1234/company-fitness-bot/internal/model"
	"github.com/ojas-1234/company-fitness-bot/internal/repository"
)

type CompletionService struct {
	challenges     *ChallengeService
	completionRepo repository.CompletionRepository
}

func NewCompletionService(challenges *ChallengeService, completionRepo repository.CompletionRepository) *CompletionService {
	return &CompletionService{
		challenges:     challenges,
		completionRepo: completionRepo,
	}
}

// Record logs a completion against whatever challenge is active for the user
// right now. Clients may be looking at a button minted for an older
// challenge, so the active one is always resolved fresh here rather than
// trusted from the caller. Returns ErrNoActiveChallenge when there is nothing
// to complete.
//
// Record is append-only: checking in twice yields two completions.
func (s *CompletionService) Record(userID int64) (*model.Completion, error) {
	lock := s.challenges.locks.forUser(userID)
	lock.Lock()
	defer lock.Unlock()

	challenge, err := s.challenges.Active(userID)
	if err != nil {
		return nil, err
	}

	completion := &model.Completion{
		UserID:      userID,
		ChallengeID: challenge.ID,
		CompletedAt: time.Now().UTC(),
	}

	err = s.completionRepo.Create(completion)
	if err != nil {
		return nil, fmt.Errorf("failed to record completion: %w", err)
	}
	return completion, nil
}
