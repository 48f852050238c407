package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ojas-1234/company-fitness-bot/internal/config"
	"github.com/ojas-1234/company-fitness-bot/internal/db"
	"github.com/ojas-1234/company-fitness-bot/internal/repository"
	"github.com/ojas-1234/company-fitness-bot/internal/service"
	"github.com/ojas-1234/company-fitness-bot/internal/session"
)

type App struct {
	Cfg *config.Config
	DB  *sqlx.DB

	UserService        *service.UserService
	ChallengeService   *service.ChallengeService
	CompletionService  *service.CompletionService
	LeaderboardService *service.LeaderboardService
	SetupStore         *session.Store
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	challengeRepository := repository.NewChallengeRepository(database)
	completionRepository := repository.NewCompletionRepository(database)

	// Services
	challengeService := service.NewChallengeService(challengeRepository)
	completionService := service.NewCompletionService(challengeService, completionRepository)

	return &App{
		Cfg:                cfg,
		DB:                 database,
		UserService:        service.NewUserService(userRepository),
		ChallengeService:   challengeService,
		CompletionService:  completionService,
		LeaderboardService: service.NewLeaderboardService(completionRepository, cfg.LeaderboardWindowDays),
		SetupStore:         session.NewStore(cfg.SetupExpiry),
	}, nil
}

func (a *App) Close() error {
	if a.SetupStore != nil {
		a.SetupStore.Close()
	}
	return db.Close(a.DB)
}
