package main

import (
	"context"
	"log"

	"voyage/adapters/postgres"
	"voyage/adapters/tabular"
	"voyage/app"
	"voyage/internal/config"
	"voyage/internal/errors"
	"voyage/internal/migration"
	"voyage/ports"
	"voyage/ui"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// initDatabase connects to the optional snapshot archive and runs its
// migrations. Returns nil when no DATABASE_URL is configured.
func initDatabase(cfg *config.Config) (*sqlx.DB, error) {
	if cfg.Database.URL == "" {
		return nil, nil
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	migrator := migration.NewRunner()
	if err := migrator.Run(context.Background(), db); err != nil {
		return nil, errors.Wrap(err, "database migration failed")
	}

	return db, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}
	gin.SetMode(cfg.Server.GinMode)

	var snapshots ports.SnapshotRepository
	db, err := initDatabase(cfg)
	if err != nil {
		log.Fatalf("Database initialization failed: %v", err)
	}
	if db != nil {
		defer db.Close()
		snapshots = postgres.NewSnapshotRepository(db)
		log.Println("Snapshot archive enabled")
	} else {
		log.Println("No DATABASE_URL configured, snapshot archive disabled")
	}

	source := tabular.NewDataReader(cfg.Data.Locator)
	service := app.NewInsightService(source, snapshots)

	// Fail fast on an unreadable or malformed dataset before serving.
	if _, err := service.Report(context.Background()); err != nil {
		log.Fatalf("Initial dataset check failed: %v", err)
	}

	server, err := ui.NewServer(service)
	if err != nil {
		log.Fatalf("Server setup failed: %v", err)
	}
	if err := server.Run(cfg.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
