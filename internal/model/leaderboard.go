package model

// LeaderboardRow is one user's standing over the trailing window. Every known
// user gets a row, including users with zero completions in the window.
type LeaderboardRow struct {
	UserID      int64   `db:"user_id"`
	DisplayName *string `db:"display_name"`
	Handle      *string `db:"handle"`
	Completions int     `db:"completion_count"`
}

// Name resolves the label shown on the leaderboard: display name, then
// handle, then a placeholder when the account carries neither.
func (r LeaderboardRow) Name() string {
	if r.DisplayName != nil && *r.DisplayName != "" {
		return *r.DisplayName
	}
	if r.Handle != nil && *r.Handle != "" {
		return *r.Handle
	}
	return "Unknown"
}
