package main

import (
	"fmt"
	"os"

	"deals-dashboard/config"
	"deals-dashboard/services"
	"deals-dashboard/storage"
	"deals-dashboard/utils"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLogger(cfg.Debug)

	path := cfg.CSVInputPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	logger.Info("=== CRM Deals Dashboard starting ===")
	logger.Info("Config — input: %s | max size: %dMB | table limit: %d",
		path, cfg.MaxFileSizeMB, cfg.TableRowLimit)

	reader := storage.NewCSVReader(cfg.MaxFileSizeMB)
	rows, err := reader.Read(path)
	if err != nil {
		logger.Error("Failed to read CSV: %v", err)
		os.Exit(1)
	}

	validation := services.ValidateDataset(rows)
	if !validation.Valid {
		for _, msg := range validation.Errors {
			logger.Error("Validation: %s", msg)
		}
		os.Exit(1)
	}

	ingestor := services.NewIngestor(logger)
	result := ingestor.Ingest(rows)

	if len(result.Deals) == 0 {
		logger.Error("No rows survived transformation — nothing to display.")
		os.Exit(1)
	}
	if result.Skipped > 0 {
		logger.Warn("Skipped %d of %d rows during ingestion", result.Skipped, len(rows))
	}

	store := storage.NewMemoryStore()
	snap := store.Load(result.Deals)
	if cfg.SearchQuery != "" {
		snap = store.SetQuery(cfg.SearchQuery)
	}

	report := services.NewReportService(logger)
	report.Print(snap.KPIs, snap.Filtered, snap.Query, cfg.TableRowLimit)

	fmt.Printf("  Done. %d deals loaded from %s\n\n", len(result.Deals), path)
}
