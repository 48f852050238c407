package repository

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ojas-1234/company-fitness-bot/internal/model"
)

type CompletionRepository interface {
	Create(completion *model.Completion) error
	LeaderboardSince(since time.Time) ([]model.LeaderboardRow, error)
}

type completionRepository struct {
	db *sqlx.DB
}

func NewCompletionRepository(db *sqlx.DB) CompletionRepository {
	return &completionRepository{db: db}
}

// Create appends a completion event. There is no uniqueness rule here: a user
// who checks in three times gets three rows, and the leaderboard counts all
// of them.
func (r *completionRepository) Create(completion *model.Completion) error {
	query := `
		INSERT INTO completions (user_id, challenge_id, completed_at)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := r.db.QueryRow(query, completion.UserID, completion.ChallengeID, completion.CompletedAt).Scan(&completion.ID)
	if err != nil {
		return fmt.Errorf("failed to insert completion: %w", err)
	}
	return nil
}

// LeaderboardSince counts completions strictly after the cutoff for every
// known user. The left join keeps users with zero recent completions on the
// board. Ties are broken by who registered first, then by id, so the order
// is stable across calls.
func (r *completionRepository) LeaderboardSince(since time.Time) ([]model.LeaderboardRow, error) {
	var rows []model.LeaderboardRow
	query := `
		SELECT u.id AS user_id, u.display_name, u.handle, COUNT(c.id) AS completion_count
		FROM users u
		LEFT JOIN completions c ON c.user_id = u.id AND c.completed_at > $1
		GROUP BY u.id, u.display_name, u.handle, u.created_at
		ORDER BY completion_count DESC, u.created_at ASC, u.id ASC`

	err := r.db.Select(&rows, query, since)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
