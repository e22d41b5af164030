package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"flipdar-api/internal/config"
	"flipdar-api/internal/database"
)

// Standalone migration runner. The server applies migrations itself when
// AUTO_MIGRATE=true; this command exists for deploy pipelines that migrate
// before rolling the service.
func main() {
	var (
		status = flag.Bool("status", false, "print the current migration version and exit")
		seed   = flag.Bool("seed", false, "load seed data after migrating")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("failed to open database connection: %v", err)
	}
	defer db.Close()

	runner := database.NewMigrationRunner(db)

	if err := runner.WaitForDatabase(); err != nil {
		log.Fatalf("database readiness check failed: %v", err)
	}

	if *status {
		version, dirty, err := runner.GetMigrationStatus()
		if err != nil {
			log.Fatalf("failed to read migration status: %v", err)
		}
		fmt.Printf("version=%d dirty=%t\n", version, dirty)
		return
	}

	if err := runner.RunMigrations(); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if *seed {
		os.Setenv("SEED_DATABASE", "true")
		if err := runner.LoadSeeds(); err != nil {
			log.Fatalf("seed loading failed: %v", err)
		}
	}
}
