package model

import (
	"time"
)

// Completion is an immutable check-in event: the user confirmed they did
// their challenge. Rows are append-only and never deduplicated.
type Completion struct {
	ID          int64     `db:"id"`
	UserID      int64     `db:"user_id"`
	ChallengeID int64     `db:"challenge_id"`
	CompletedAt time.Time `db:"completed_at"`
}
