package service

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/ojas-1234/company-fitness-bot/internal/db"
	"github.com/ojas-1234/company-fitness-bot/internal/repository"
)

// services under test run against a real SQLite database so the transaction
// and constraint behavior they lean on is exercised for real.
type testEnv struct {
	db          *sqlx.DB
	users       *UserService
	challenges  *ChallengeService
	completions *CompletionService
	leaderboard *LeaderboardService

	challengeRepo  repository.ChallengeRepository
	completionRepo repository.CompletionRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"
	database, err := db.Init("sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))
	t.Cleanup(func() { database.Close() })

	userRepo := repository.NewUserRepository(database)
	challengeRepo := repository.NewChallengeRepository(database)
	completionRepo := repository.NewCompletionRepository(database)

	challenges := NewChallengeService(challengeRepo)

	return &testEnv{
		db:             database,
		users:          NewUserService(userRepo),
		challenges:     challenges,
		completions:    NewCompletionService(challenges, completionRepo),
		leaderboard:    NewLeaderboardService(completionRepo, 30),
		challengeRepo:  challengeRepo,
		completionRepo: completionRepo,
	}
}

func registerUser(t *testing.T, env *testEnv, id int64, handle, displayName string) {
	t.Helper()
	_, err := env.users.Register(id, handle, displayName)
	require.NoError(t, err)
}
