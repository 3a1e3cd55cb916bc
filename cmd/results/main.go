package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/joho/godotenv"

	"github.com/cwhitmer/sportsbets/internal/pkg/logging"
	"github.com/cwhitmer/sportsbets/internal/results"
)

func main() {
	fmt.Println("Starting MLB Results Importer...")

	_ = godotenv.Load()

	var year int
	var outDir string
	var baseURL string

	flag.IntVar(&year, "year", time.Now().Year()-1, "Season to import")
	flag.StringVar(&outDir, "out", "mlb_results", "Directory for per-team result CSVs")
	flag.StringVar(&baseURL, "base-url", "", "Override the baseball-reference base URL")
	flag.Parse()

	logging.Setup("results")

	importer, err := results.NewImporter(baseURL, outDir)
	if err != nil {
		log.Fatalf("Failed to initialize importer: %v", err)
	}

	slog.Info("Import starting", "year", year, "out", outDir)
	if err := importer.Run(context.Background(), year); err != nil {
		log.Fatalf("Import failed: %v", err)
	}
}
