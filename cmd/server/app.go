package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/taskhub/taskhub-api/internal/config"
	"github.com/taskhub/taskhub-api/internal/job"
	"github.com/taskhub/taskhub-api/internal/platform/logger"
	"github.com/taskhub/taskhub-api/internal/platform/mailer"
	"github.com/taskhub/taskhub-api/internal/platform/postgres"
	"github.com/taskhub/taskhub-api/internal/service"
	"github.com/taskhub/taskhub-api/internal/service/auth"
	"github.com/taskhub/taskhub-api/internal/store"
)

// application holds the app's core dependencies, wired once at startup.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	jobRunner *job.Runner

	userService service.UserService
	taskService service.TaskService
}

// newApplication builds the full dependency graph: database, stores, auth
// primitives, mail transport, background runner and services.
func newApplication(ctx context.Context, cfg *config.Config) (*application, error) {
	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	db, err := openDatabase(ctx, cfg.Database, log)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(ctx, db, log); err != nil {
		closeDatabase(db, log)
		return nil, err
	}

	userStore := postgres.NewPostgresUserStore(db, log)
	taskStore := postgres.NewPostgresTaskStore(db, log)
	sessionStore := postgres.NewPostgresSessionStore(db, log)
	jobStore := postgres.NewPostgresJobStore(db, log)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		closeDatabase(db, log)
		return nil, fmt.Errorf("failed to create jwt service: %w", err)
	}

	hasher := auth.NewBcryptHasher()

	var sender mailer.Sender
	if cfg.SMTP.Host == "" {
		sender = mailer.NewNoopSender(log)
	} else {
		sender, err = mailer.NewSMTPSender(cfg.SMTP)
		if err != nil {
			closeDatabase(db, log)
			return nil, fmt.Errorf("failed to create smtp sender: %w", err)
		}
	}

	runner := job.NewRunner(jobStore, job.RunnerConfig{
		WorkerCount: cfg.Jobs.WorkerCount,
		QueueSize:   cfg.Jobs.QueueSize,
	}, log)

	notifier := job.NewEmailNotifier(runner, sender, log)

	runTx := store.SQLTxRunner(db)

	userService := service.NewUserService(
		runTx,
		userStore,
		sessionStore,
		taskStore,
		jwtService,
		hasher,
		hasher,
		notifier,
		log,
	)
	taskService := service.NewTaskService(runTx, taskStore, log)

	return &application{
		config:      cfg,
		logger:      log,
		db:          db,
		jobRunner:   runner,
		userService: userService,
		taskService: taskService,
	}, nil
}

// cleanup releases application resources in reverse dependency order.
func (app *application) cleanup() {
	app.jobRunner.Stop()
	closeDatabase(app.db, app.logger)
}

func closeDatabase(db *sql.DB, log *slog.Logger) {
	if err := db.Close(); err != nil {
		log.Error("failed to close database connection", "error", err)
	}
}
