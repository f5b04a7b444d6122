package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/workout-tracker/internal/config"
	"github.com/workout-tracker/internal/handler"
	"github.com/workout-tracker/internal/middleware"
	"github.com/workout-tracker/internal/models"
	"github.com/workout-tracker/internal/repository"
	"github.com/workout-tracker/internal/service"
	"github.com/workout-tracker/internal/session"
	"github.com/workout-tracker/pkg/password"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Build info (injected at build time via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Initialize request logger
	if err := middleware.InitLogger("logs"); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Initialize database
	db, err := initDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Auto migrate database
	if err := autoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize session store
	sessionTTL := time.Duration(cfg.Session.TTLHours) * time.Hour
	var rdb *redis.Client
	var sessionStore session.Store
	switch cfg.Session.Store {
	case "memory":
		sessionStore = session.NewMemoryStore(sessionTTL)
	default:
		rdb = initRedis(cfg)
		sessionStore = session.NewRedisStore(rdb, sessionTTL)
	}
	sessions := session.NewManager(sessionStore, cfg.Session.Secret, sessionTTL)

	// Initialize password verifier
	verifier, err := password.New(cfg.Auth.PasswordScheme)
	if err != nil {
		log.Fatalf("Failed to initialize password verifier: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, verifier)
	workoutService := service.NewWorkoutService(workoutRepo)

	// Build router
	router := handler.NewRouter(handler.RouterConfig{
		TemplatesGlob: "web/templates/*.html",
		StaticDir:     "web/static",
		CookieName:    cfg.Session.CookieName,
		CookieMaxAge:  int(sessionTTL.Seconds()),
	}, sessions, authService, workoutService)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Workout Tracker %s (%s) running at http://%s", Version, Commit, addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with 10 second timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Close Redis connection
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		}
	}

	log.Println("Server exited properly")
}

func initDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.Server.Mode == "release" {
		gormLogger = logger.Default.LogMode(logger.Warn)
	}

	// TranslateError turns unique-constraint violations into
	// gorm.ErrDuplicatedKey, which registration depends on.
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Workout{},
	)
}
