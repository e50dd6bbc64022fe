package main

import (
	"log"
	"os"

	"caseflow-be/internal/model"
	"caseflow-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding Subscription Plans...")

	// Prices are in cents.
	plans := []model.SubscriptionPlan{
		{
			Name:          "Starter",
			Slug:          "starter",
			PriceType:     "flat_rate",
			Price:         0,
			Currency:      "USD",
			IntervalCount: 1,
			IntervalUnit:  "month",
		},
		{
			Name:               "Professional",
			Slug:               "professional",
			PriceType:          "flat_rate",
			Price:              4900,
			Currency:           "USD",
			IntervalCount:      1,
			IntervalUnit:       "month",
			TrialIntervalCount: 14,
			TrialIntervalUnit:  "day",
		},
		{
			Name:          "Professional Annual",
			Slug:          "professional-annual",
			PriceType:     "flat_rate",
			Price:         49900,
			Currency:      "USD",
			IntervalCount: 1,
			IntervalUnit:  "year",
		},
		{
			Name:          "Firm Metered",
			Slug:          "firm-metered",
			PriceType:     "usage_based_tiered_graduated",
			Price:         0,
			Currency:      "USD",
			MeterName:     "case",
			IntervalCount: 1,
			IntervalUnit:  "month",
			PriceTiers: datatypes.JSON([]byte(
				`[{"until_unit":10,"per_unit":900,"flat_fee":0},` +
					`{"until_unit":50,"per_unit":700,"flat_fee":0},` +
					`{"until_unit":-1,"per_unit":500,"flat_fee":2500}]`)),
		},
	}

	for _, p := range plans {
		var existing model.SubscriptionPlan
		if err := db.Where("slug = ? AND is_current = ?", p.Slug, true).First(&existing).Error; err == nil {
			log.Printf("Plan '%s' already exists, skipping...", p.Slug)
			continue
		}

		p.Version = 1
		p.IsCurrent = true
		p.IsActive = true
		if err := db.Create(&p).Error; err != nil {
			log.Printf("Error creating plan '%s': %v", p.Slug, err)
		} else {
			log.Printf("Created plan: %s (%s)", p.Name, p.Slug)
		}
	}

	color.Green("Plan seeding completed!")
}
