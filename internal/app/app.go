package app

import (
	"context"

	"sprintpulse/internal/ai"
	"sprintpulse/internal/config"
	"sprintpulse/internal/database"
	"sprintpulse/internal/handler"
	"sprintpulse/internal/repository"
	"sprintpulse/internal/service"
	"sprintpulse/internal/tracker"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// App represents the application with its dependencies.
type App struct {
	cfg *config.Config

	db *pgxpool.Pool
	r  *echo.Echo

	log *zap.Logger
}

// New creates a new App instance, initializes database, services, handlers and routes.
func New(cfg *config.Config, log *zap.Logger) *App {
	db, err := database.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	r := echo.New()

	retrier := newRepoRetrier(cfg.Retry, isRetryableFunc)

	repoRepo := repository.NewRepoRepository(db, trmpgx.DefaultCtxGetter, retrier)
	collabRepo := repository.NewCollaboratorRepository(db, trmpgx.DefaultCtxGetter, retrier)
	issueRepo := repository.NewIssueRepository(db, trmpgx.DefaultCtxGetter, retrier)
	prRepo := repository.NewPullRequestRepository(db, trmpgx.DefaultCtxGetter, retrier)
	evalRepo := repository.NewEvaluationRepository(db, trmpgx.DefaultCtxGetter, retrier)
	syncMetaRepo := repository.NewSyncMetadataRepository(db, trmpgx.DefaultCtxGetter, retrier)

	trackerClient := tracker.NewGitHubClient(cfg.Tracker.Token, cfg.Tracker.PageSize)

	chatClient := ai.NewChatClient(ai.Config{
		APIKey:  cfg.AI.APIKey,
		BaseURL: cfg.AI.BaseURL,
		Model:   cfg.AI.Model,
	})
	evaluator := ai.NewEvaluator(chatClient)

	repoService := service.NewRepoService(repoRepo, collabRepo, log)
	syncService := service.NewSyncService(
		repoRepo,
		collabRepo,
		issueRepo,
		syncMetaRepo,
		trackerClient,
		manager.Must(trmpgx.NewDefaultFactory(db)),
		log,
	)
	evalService := service.NewEvaluationService(
		repoRepo,
		issueRepo,
		prRepo,
		evalRepo,
		collabRepo,
		trackerClient,
		evaluator,
		cfg.AI.QualityDelay,
		cfg.AI.ConsistencyDelay,
		log,
	)

	h := handler.New(repoService, syncService, evalService, log)
	h.Register(r)

	r.Use(middleware.Recover())

	return &App{
		cfg: cfg,
		db:  db,
		r:   r,
		log: log,
	}
}

// Run starts the HTTP server and waits for context cancellation.
func (a *App) Run(ctx context.Context) error {
	go func() {
		if err := a.r.Start(":" + a.cfg.App.Port); err != nil {
			a.log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	return a.Shutdown()
}

// Shutdown closes database connections and other resources.
func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.App.ShutdownTimeout)
	defer cancel()

	if err := a.r.Shutdown(ctx); err != nil {
		a.log.Fatal("failed to shutdown server",
			zap.Error(err),
		)
		return err
	}

	a.db.Close()

	return nil
}
