package main

import (
	"flag"
	"fmt"
	"log"

	"nursery_manager/internal/config"
	"nursery_manager/internal/database"
	"nursery_manager/internal/migrations"
)

func main() {
	reset := flag.Bool("reset", false, "drop all tables before migrating")
	flag.Parse()

	fmt.Println("Initializing database...")

	cfg := config.Load()

	db, err := database.Initialize(cfg.DatabaseDriver, cfg.DatabaseURL, cfg.DBLogLevel)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if *reset {
		fmt.Println("Dropping existing tables...")
		if err := db.Migrator().DropTable(migrations.Models()...); err != nil {
			log.Printf("Warning: Error dropping tables: %v", err)
		}
	}

	if err := migrations.RunMigrations(db, cfg.AdminPassword); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	fmt.Println("Database initialization completed successfully!")
	fmt.Println("Username: admin")
}
