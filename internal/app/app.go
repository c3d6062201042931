package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/cache"
	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/config"
	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/handler"
	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/middleware"
	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/notification"
	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/repository"
	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/router"
	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/scheduler"
	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/service"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	publisher  *notification.RabbitPublisher
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"drivent",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns:    a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    a.cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: a.cfg.Postgres.ConnMaxLifetime,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	enrollmentRepo := repository.NewEnrollmentRepo(a.db)
	ticketRepo := repository.NewTicketRepo(a.db)
	roomRepo := repository.NewRoomRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)
	sessionRepo := repository.NewSessionRepo(a.db)

	rdb, err := cache.NewRedisClient(a.cfg.Redis.Addr, a.cfg.Redis.Password, a.cfg.Redis.DB)
	if err != nil {
		// the cache is optional, bookings still work straight from postgres
		a.log.Warn("redis unavailable, booking cache disabled", logger.String("error", err.Error()))
	}
	a.redis = rdb
	bookingCache := cache.NewBookingCache(rdb, a.cfg.Redis.CacheTTL, a.log)

	tg, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	a.publisher, err = notification.NewRabbitPublisher(a.cfg.RabbitMQ.URL, a.cfg.RabbitMQ.Queue, a.log)
	if err != nil {
		return fmt.Errorf("init publisher: %w", err)
	}

	checker := service.NewEligibilityChecker(enrollmentRepo, ticketRepo, roomRepo)
	bookingService := service.NewBookingService(
		checker,
		bookingRepo,
		roomRepo,
		userRepo,
		bookingCache,
		notification.Multi{tg, a.publisher},
		a.log,
	)
	sessionService := service.NewSessionService(sessionRepo, a.cfg.Auth.SessionTTL, a.log)

	a.scheduler = scheduler.New(
		sessionService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(bookingService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Auth(a.cfg.Auth.JWTSecret, sessionService, a.log),
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

	if err := a.publisher.Close(); err != nil {
		a.log.Warn("rabbitmq close failed", logger.String("error", err.Error()))
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn("redis close failed", logger.String("error", err.Error()))
		}
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
