package repository

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ojas-1234/company-fitness-bot/internal/model"
)

var (
	ErrChallengeNotFound = errors.New("challenge not found")

	// ErrMultipleActiveChallenges means the one-active-challenge rule was
	// broken outside this process, e.g. by hand-edited rows. Callers treat it
	// as data corruption, not as a lookup miss.
	ErrMultipleActiveChallenges = errors.New("multiple active challenges for user")
)

type ChallengeRepository interface {
	Replace(challenge *model.Challenge) error
	Active(userID int64) (*model.Challenge, error)
	ByUser(userID int64) ([]*model.Challenge, error)
}

type challengeRepository struct {
	db *sqlx.DB
}

func NewChallengeRepository(db *sqlx.DB) ChallengeRepository {
	return &challengeRepository{db: db}
}

// Replace deactivates whatever challenge the user currently has and inserts
// the given one as active, in a single transaction. Old rows stay in the
// table so past completions keep pointing at the challenge they were logged
// under. On success the assigned id and active flag are written back into
// the passed challenge.
func (r *challengeRepository) Replace(challenge *model.Challenge) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`UPDATE challenges SET active = FALSE WHERE user_id = $1 AND active = TRUE`, challenge.UserID)
	if err != nil {
		return fmt.Errorf("failed to deactivate challenges: %w", err)
	}

	query := `
		INSERT INTO challenges (user_id, text, frequency, created_at, active)
		VALUES ($1, $2, $3, $4, TRUE)
		RETURNING id`

	err = tx.QueryRow(query, challenge.UserID, challenge.Text, challenge.Frequency, challenge.CreatedAt).Scan(&challenge.ID)
	if err != nil {
		return fmt.Errorf("failed to insert challenge: %w", err)
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	challenge.Active = true
	return nil
}

// Active returns the user's single active challenge. It deliberately reads up
// to two rows so a broken table surfaces as ErrMultipleActiveChallenges
// instead of silently picking one of the candidates.
func (r *challengeRepository) Active(userID int64) (*model.Challenge, error) {
	var challenges []*model.Challenge
	query := `SELECT * FROM challenges WHERE user_id = $1 AND active = TRUE LIMIT 2`

	err := r.db.Select(&challenges, query, userID)
	if err != nil {
		return nil, err
	}

	switch len(challenges) {
	case 0:
		return nil, ErrChallengeNotFound
	case 1:
		return challenges[0], nil
	default:
		return nil, ErrMultipleActiveChallenges
	}
}

// ByUser returns every challenge the user has ever set, oldest first,
// including deactivated ones.
func (r *challengeRepository) ByUser(userID int64) ([]*model.Challenge, error) {
	var challenges []*model.Challenge
	query := `SELECT * FROM challenges WHERE user_id = $1 ORDER BY created_at ASC, id ASC`

	err := r.db.Select(&challenges, query, userID)
	if err != nil {
		return nil, err
	}
	return challenges, nil
}
