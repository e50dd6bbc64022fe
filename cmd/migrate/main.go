package main

import (
	"log"
	"os"

	"caseflow-be/internal/model"
	"caseflow-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Starting GORM Migration...")

	// 3. Pre-Migration: things AutoMigrate doesn't handle
	color.Cyan("Step 1: Setting up Extensions and Enums...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,

		// Enums (Idempotent creation)
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'user_type') THEN CREATE TYPE user_type AS ENUM ('pro_se', 'legal_professional'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'case_status') THEN CREATE TYPE case_status AS ENUM ('pending', 'active', 'closed', 'archived'); END IF; END $$;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	color.Cyan("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.User{},
		&model.LegalCase{},
		&model.CaseParty{},
		&model.CaseDeadline{},
		&model.CaseDocument{},
		&model.SubscriptionPlan{},
		&model.Notification{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: Views
	color.Cyan("Step 3: Creating Views...")

	postMigrationSQL := []string{
		// View: case_overview, the dashboard list query
		`CREATE OR REPLACE VIEW case_overview AS
		 SELECT c.id AS case_id, c.user_id, c.name, c.case_number, c.type, c.jurisdiction, c.status,
		        (SELECT COUNT(*) FROM case_parties p WHERE p.case_id = c.id) AS party_count,
		        (SELECT MIN(d.date) FROM case_deadlines d WHERE d.case_id = c.id AND d.date >= CURRENT_DATE) AS next_deadline,
		        c.created_at
		 FROM cases c
		 WHERE c.deleted_at IS NULL;`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	color.Green("✅ Success: Database migration completed successfully via GORM.")
}
