package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/ojas-1234/company-fitness-bot/internal/db"
	"github.com/ojas-1234/company-fitness-bot/internal/model"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"
	database, err := db.Init("sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))

	t.Cleanup(func() { database.Close() })
	return database
}

func seedUser(t *testing.T, users UserRepository, id int64, handle, displayName string) *model.User {
	t.Helper()

	user := &model.User{ID: id, CreatedAt: time.Now().UTC()}
	if handle != "" {
		user.Handle = &handle
	}
	if displayName != "" {
		user.DisplayName = &displayName
	}
	require.NoError(t, users.Upsert(user))
	return user
}

func seedChallenge(t *testing.T, challenges ChallengeRepository, userID int64, text, frequency string) *model.Challenge {
	t.Helper()

	challenge := &model.Challenge{
		UserID:    userID,
		Text:      text,
		Frequency: frequency,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, challenges.Replace(challenge))
	return challenge
}
