package model

import (
	"time"
)

const (
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
)

// ValidFrequency reports whether s is one of the supported check-in cadences.
func ValidFrequency(s string) bool {
	return s == FrequencyDaily || s == FrequencyWeekly
}

// Challenge is one user's recurring commitment ("35 pushups per day").
// A user has at most one active challenge; replaced challenges are kept
// with Active=false, never deleted.
type Challenge struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Text      string    `db:"text"`
	Frequency string    `db:"frequency"`
	CreatedAt time.Time `db:"created_at"`
	Active    bool      `db:"active"`
}
