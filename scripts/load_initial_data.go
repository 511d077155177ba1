package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"foodgram-backend/internal/config"
	"foodgram-backend/internal/database"
	"foodgram-backend/internal/seed"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	dataDir := flag.String("data", "scripts/data", "directory holding ingredients*.yaml and tags*.yaml")
	flag.Parse()

	log.Println("Loading ingredient and tag catalogues from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	result, err := seed.Load(db, *dataDir)
	if err != nil {
		log.Fatalf("Failed to load catalogues: %v", err)
	}

	log.Printf("Ingredients: %d created, %d total", result.IngredientsCreated, result.IngredientsTotal)
	log.Printf("Tags: %d created, %d total", result.TagsCreated, result.TagsTotal)
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
