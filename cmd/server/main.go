package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"palu-board.backend/internal/chat"
	"palu-board.backend/internal/config"
	"palu-board.backend/internal/infrastructure/marketdata"
	"palu-board.backend/internal/infrastructure/repositories"
	"palu-board.backend/internal/interfaces/http/handlers"
	"palu-board.backend/internal/interfaces/http/middleware"
	"palu-board.backend/internal/usecases"
	"palu-board.backend/pkg/logger"
	"palu-board.backend/pkg/redis"
)

const (
	dbMaxOpenConns    = 20
	dbConnMaxIdleTime = 30 * time.Second
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Redis only backs the like rate limiter, so it is dialed only when
	// that feature is on.
	if cfg.Likes.RateLimitEnabled {
		if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
			logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
			return fmt.Errorf("failed to initialize redis: %w", err)
		}
		logger.Info(context.Background(), "Redis initialized")
	}

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	sqlDB.SetMaxOpenConns(dbMaxOpenConns)
	sqlDB.SetConnMaxIdleTime(dbConnMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize repositories
	tokenRepo := repositories.NewTokenRepository(db)
	likeRepo := repositories.NewLikeRepository(db)
	chatRepo := repositories.NewChatMessageRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize usecases
	tokenUsecase := usecases.NewTokenUsecase(tokenRepo, usecases.DefaultSeedBatches())
	likeUsecase := usecases.NewLikeUsecase(tokenRepo, likeRepo, uow, cfg.Likes.StatusPolicy)

	// Upstream price API client
	marketClient := marketdata.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)

	// Chat hub
	hub := chat.NewHub(chatRepo, cfg.Chat, logger.GetLogger())
	go hub.Run()

	// Initialize handlers
	tokenHandler := handlers.NewTokenHandler(tokenUsecase)
	likeHandler := handlers.NewLikeHandler(likeUsecase)
	proxyHandler := handlers.NewProxyHandler(marketClient)
	chatHandler := chat.NewHandler(hub, logger.GetLogger())

	var likeRateLimiter gin.HandlerFunc
	if cfg.Likes.RateLimitEnabled {
		likeRateLimiter = middleware.LikeRateLimitMiddleware(cfg.Likes.RateLimitMax, cfg.Likes.RateLimitWindow)
	}

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerFallbackRoutes(r)
	registerAPIRoutes(r, routeDeps{
		tokenHandler:    tokenHandler,
		likeHandler:     likeHandler,
		proxyHandler:    proxyHandler,
		chatHandler:     chatHandler,
		likeRateLimiter: likeRateLimiter,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		hub.Stop()
	}()

	// Start server
	log.Printf("🚀 Palu Board Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
