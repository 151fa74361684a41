package main

import (
	"context"
	"log"
	"os"

	"voyage/internal/migration"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Standalone migration runner for the snapshot archive schema. The main
// binary runs the same migrations on boot; this exists for provisioning a
// database ahead of a deploy.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: migrate <database_url>")
	}
	databaseURL := os.Args[1]

	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	runner := migration.NewRunner()
	if err := runner.Run(context.Background(), db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Printf("Migration complete (schema version %s)", runner.Version())
}
