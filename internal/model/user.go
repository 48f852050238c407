package model

import (
	"time"
)

// User is a Telegram user known to the bot. The ID is assigned by Telegram,
// never by us. Handle and DisplayName are nullable because Telegram accounts
// can lack a username or a first name.
type User struct {
	ID          int64     `db:"id"`
	Handle      *string   `db:"handle"`
	DisplayName *string   `db:"display_name"`
	CreatedAt   time.Time `db:"created_at"`
}
