package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medinote/config"
	deliveryHttp "medinote/internal/delivery/http"
	"medinote/internal/delivery/http/handler"
	"medinote/internal/delivery/http/middleware"
	"medinote/internal/delivery/http/view"
	"medinote/internal/infrastructure/cache"
	"medinote/internal/infrastructure/database"
	"medinote/internal/repository"
	"medinote/internal/service"
	"medinote/internal/usecase"
	"medinote/pkg/jwt"
	"medinote/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New(cfg *config.Config, log *logrus.Logger) (*App, error) {
	app := &App{Config: cfg, Log: log}

	if cfg.App.MigrateOnStart {
		if err := RunMigrations(cfg.DB); err != nil {
			return nil, err
		}
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Initialize Redis
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server, err := initializeServer(cfg, log, db, redisClient)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

// RunMigrations applies every pending schema migration.
func RunMigrations(cfg config.DBConfig) error {
	migrator, err := database.NewMigrator(cfg.DSN())
	if err != nil {
		return err
	}
	defer migrator.Close()

	return migrator.Up()
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	jwtService := jwt.NewJWTService(cfg.Session)
	customValidator := validator.NewValidator()

	renderer, err := view.NewRenderer(log)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	patientRepo := repository.NewPatientRepository(db)

	// Initialize services
	sessionStore := service.NewRedisSessionStore(redisClient)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, userRepo, jwtService, sessionStore)
	patientUsecase := usecase.NewPatientUsecase(log, patientRepo, customValidator)
	dashboardUsecase := usecase.NewDashboardUsecase(log, patientRepo, customValidator, cfg.App.Location())
	importUsecase := usecase.NewImportUsecase(log, patientRepo, customValidator)
	exportUsecase := usecase.NewExportUsecase(log, patientRepo, customValidator)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, renderer, cfg.Session)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase, renderer)
	patientHandler := handler.NewPatientHandler(patientUsecase, dashboardHandler, renderer)
	importHandler := handler.NewImportHandler(importUsecase, cfg.Import.MaxBytes)
	exportHandler := handler.NewExportHandler(exportUsecase, renderer, log)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUsecase, cfg.Session.CookieName, log)
	permissionMiddleware := middleware.NewPermissionMiddleware(renderer)
	headersMiddleware := middleware.NewHeadersMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		log,
		authHandler,
		dashboardHandler,
		patientHandler,
		importHandler,
		exportHandler,
		authMiddleware,
		permissionMiddleware,
		headersMiddleware,
	)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()
	app.Log.Info("Server shutdown complete")
	return nil
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
