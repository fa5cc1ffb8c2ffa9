package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/mattwilkerson1121/Asinsights/config"
	"github.com/mattwilkerson1121/Asinsights/models"
	"github.com/mattwilkerson1121/Asinsights/services"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

type demoReport struct {
	name      string
	dateRange models.DateRange
	metrics   []models.MetricID
}

var demoReports = []demoReport{
	{name: "November Overview", dateRange: models.DateRange{Start: "2024-11-01", End: "2024-11-30"}},
	{name: "Black Friday Week", dateRange: models.DateRange{Start: "2024-11-25", End: "2024-12-02"}},
	{
		name:      "Product Performance",
		dateRange: services.DefaultDateRange,
		metrics:   []models.MetricID{models.MetricProducts, models.MetricRevenue, models.MetricOrders},
	},
	{
		name:      "Acquisition Funnel",
		dateRange: services.DefaultDateRange,
		metrics:   []models.MetricID{models.MetricTraffic, models.MetricFunnel, models.MetricConversionRate},
	},
}

// main seeds demo saved reports into the configured database
// Usage: go run ./cmd/seed [-reset]
// This is a standalone CLI tool, not part of the main application
func main() {
	reset := flag.Bool("reset", false, "delete existing saved reports first")
	flag.Parse()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("ASINSIGHTS - Saved Report Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	settings := config.Load()
	db, err := config.InitDB(settings)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if db == nil {
		fmt.Println("❌ DB_DRIVER=memory has nothing to seed. Set DB_DRIVER to sqlite or postgres.")
		os.Exit(1)
	}
	defer config.CloseDB(db)
	log.Println("✓ Connected to database")

	store, err := services.NewGormReportStore(db)
	if err != nil {
		log.Fatalf("Failed to prepare saved reports table: %v", err)
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if *reset {
		existing, err := store.List(ctx)
		if err != nil {
			log.Fatalf("Failed to list saved reports: %v", err)
		}
		for _, r := range existing {
			if _, err := store.Delete(ctx, r.ID.String()); err != nil {
				log.Fatalf("Failed to delete %s: %v", r.ID, err)
			}
		}
		log.Printf("✓ Removed %d existing reports", len(existing))
	}

	for _, demo := range demoReports {
		report, err := store.Save(ctx, demo.name, demo.dateRange, demo.metrics)
		if err != nil {
			log.Fatalf("Failed to save %q: %v", demo.name, err)
		}
		fmt.Printf("  %s  %-22s %s\n", report.ID, report.Name, report.DateRange())
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("✅ Seeded %d saved reports\n", len(demoReports))
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. List them at GET /api/v1/saved-reports")
}
