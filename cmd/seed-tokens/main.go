// Command seed-tokens loads the known token address batches straight into
// the database, mirroring the server's /api/tokens/initialize endpoint for
// use from deploy scripts.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"palu-board.backend/internal/config"
	"palu-board.backend/internal/infrastructure/repositories"
	"palu-board.backend/internal/usecases"
	"palu-board.backend/pkg/logger"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{})
	}
	exit = os.Exit
)

func main() {
	if err := run(); err != nil {
		log.Println(err)
		exit(1)
	}
}

func run() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()
	logger.Init(cfg.Server.Env)

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	tokenRepo := repositories.NewTokenRepository(db)
	tokenUsecase := usecases.NewTokenUsecase(tokenRepo, usecases.DefaultSeedBatches())

	log.Println("🚀 Initializing database with tokens...")

	result, err := tokenUsecase.Initialize(context.Background())
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	for _, outcome := range result.Results {
		log.Printf("✅ [%s] Added: %s", outcome.Batch, outcome.Address)
	}
	for _, outcome := range result.Errors {
		log.Printf("❌ [%s] Failed: %s - %s", outcome.Batch, outcome.Address, outcome.Error)
	}

	log.Println("📈 Summary:")
	log.Printf("   Total: %d", result.Summary.Total)
	log.Printf("   ✅ Successful: %d", result.Summary.Successful)
	log.Printf("   ❌ Failed: %d", result.Summary.Failed)
	for batch, count := range result.Summary.Batches {
		log.Printf("   [%s] %d tokens", batch, count)
	}

	if result.Summary.Failed > 0 {
		return fmt.Errorf("%d token(s) failed to initialize", result.Summary.Failed)
	}
	return nil
}
