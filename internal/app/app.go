package app

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"net/http"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rodionsteshenko/shindig-sub000/internal/config"
	"github.com/rodionsteshenko/shindig-sub000/internal/customfield"
	"github.com/rodionsteshenko/shindig-sub000/internal/handler"
	"github.com/rodionsteshenko/shindig-sub000/internal/metrics"
	"github.com/rodionsteshenko/shindig-sub000/internal/middleware"
	"github.com/rodionsteshenko/shindig-sub000/internal/repository"
	"github.com/rodionsteshenko/shindig-sub000/internal/repository/sqlite"
	"github.com/rodionsteshenko/shindig-sub000/internal/router"
	"github.com/rodionsteshenko/shindig-sub000/internal/scheduler"
	"github.com/rodionsteshenko/shindig-sub000/internal/service"
	"github.com/rodionsteshenko/shindig-sub000/internal/service/ports"
	"github.com/rodionsteshenko/shindig-sub000/migrations"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const appName = "shindig"

type repos struct {
	events    ports.EventRepo
	fields    ports.FieldRepo
	guests    ports.GuestRepo
	responses ports.ResponseRepo
}

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	store      *sqlite.Store
	repos      repos
	registry   *prometheus.Registry
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initStorage(context.Background()); err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStorage(ctx context.Context) error {
	switch a.cfg.Storage.Driver {
	case "sqlite":
		return a.initSQLite(ctx)
	default:
		if err := a.runMigrations(ctx); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		return a.initDB(ctx)
	}
}

func (a *App) initSQLite(ctx context.Context) error {
	store, err := sqlite.Open(ctx, a.cfg.SQLite.Path)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}

	a.store = store
	a.repos = repos{
		events:    store.Events(),
		fields:    store.Fields(),
		guests:    store.Guests(),
		responses: store.Responses(),
	}
	a.log.LogAttrs(ctx, logger.InfoLevel, "sqlite store opened",
		logger.String("path", a.cfg.SQLite.Path),
	)

	return nil
}

func (a *App) initDB(ctx context.Context) error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.repos = repos{
		events:    repository.NewEventRepo(db),
		fields:    repository.NewFieldRepo(db),
		guests:    repository.NewGuestRepo(db),
		responses: repository.NewResponseRepo(db),
	}
	a.log.LogAttrs(ctx, logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	a.registry = prometheus.NewRegistry()
	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(a.registry)

	resultsService := service.NewResultsService(
		a.repos.events,
		a.repos.fields,
		a.repos.responses,
		a.cfg.Results.PublicCacheTTL,
		a.log,
	)
	eventService := service.NewEventService(a.repos.events, a.repos.fields, resultsService, a.log)
	guestService := service.NewGuestService(a.repos.guests, a.repos.events)
	responseService := service.NewResponseService(
		a.repos.fields,
		a.repos.guests,
		a.repos.responses,
		customfield.NewClaimLimiter(),
		resultsService,
		m,
		a.log,
		a.cfg.Submit.MaxAttempts,
	)
	auditService := service.NewAuditService(a.repos.fields, a.repos.responses, m)

	a.scheduler = scheduler.New(
		auditService,
		a.cfg.Audit.Interval,
		a.log,
	)

	h := handler.NewHandler(eventService, guestService, responseService, resultsService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.GuestIdentity(),
		metrics.Handler(a.registry),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
			logger.String("storage", a.cfg.Storage.Driver),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.closeStorage(); err != nil {
		return err
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "storage closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) closeStorage() error {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			return fmt.Errorf("close sqlite: %w", err)
		}
	}
	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
	}
	return nil
}

func (a *App) runMigrations(ctx context.Context) error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	fsys, err := fs.Sub(migrations.Postgres, "postgres")
	if err != nil {
		return fmt.Errorf("migrations fs: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.LogAttrs(ctx, logger.InfoLevel, "migrations applied successfully",
		logger.Int("applied", len(results)),
	)
	return nil
}
