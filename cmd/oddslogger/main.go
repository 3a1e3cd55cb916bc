package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/cwhitmer/sportsbets/internal/acquisition"
	"github.com/cwhitmer/sportsbets/internal/acquisition/betmgm"
	"github.com/cwhitmer/sportsbets/internal/acquisition/betrivers"
	"github.com/cwhitmer/sportsbets/internal/acquisition/draftkings"
	"github.com/cwhitmer/sportsbets/internal/acquisition/oddsapi"
	"github.com/cwhitmer/sportsbets/internal/pipeline"
	"github.com/cwhitmer/sportsbets/internal/pkg/config"
	"github.com/cwhitmer/sportsbets/internal/pkg/enums"
	"github.com/cwhitmer/sportsbets/internal/pkg/logging"
	"github.com/cwhitmer/sportsbets/internal/pkg/notify"
	"github.com/cwhitmer/sportsbets/internal/pkg/storage"
)

const defaultConfigPath = "configs/production.yaml"

func main() {
	fmt.Println("Starting Odds Logger...")

	// Secrets may live in a local .env; a missing file is fine.
	_ = godotenv.Load()

	var configPath string
	var leagueFlag string
	var stakeFlag float64

	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = defaultConfigPath
	}

	flag.StringVar(&configPath, "config", defaultConfig, "Path to config file (can be set via CONFIG_PATH env var)")
	flag.StringVar(&leagueFlag, "league", "", "League to capture (MLB, NBA, NFL, NCAAB); overrides config")
	flag.Float64Var(&stakeFlag, "stake", 0, "Total stake to split per sure bet; overrides config")
	flag.Parse()

	fmt.Printf("Loading config from: %s\n", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logging.Setup("oddslogger")
	slog.Info("Config loaded", "path", configPath)

	if leagueFlag != "" {
		cfg.League = leagueFlag
	}
	if stakeFlag > 0 {
		cfg.TotalStake = stakeFlag
	}

	league, ok := enums.ParseLeague(cfg.League)
	if !ok {
		log.Fatalf("Unknown league %q (want MLB, NBA, NFL or NCAAB)", cfg.League)
	}

	store, err := buildStore(cfg, league)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	sources := buildSources(cfg)
	if len(sources) == 0 {
		log.Fatal("No odds source enabled in config")
	}

	sinks := buildSinks(cfg)
	gate := buildGate(cfg)
	if gate != nil {
		defer gate.Close()
	}

	books, err := parseBooks(cfg.Books)
	if err != nil {
		log.Fatalf("Bad books list in config: %v", err)
	}

	runner := &pipeline.Runner{
		League:     league,
		TotalStake: cfg.TotalStake,
		Books:      books,
		Sources:    sources,
		Store:      store,
		Sinks:      sinks,
	}
	if gate != nil {
		runner.Gate = gate
	}

	slog.Info("Capture cycle starting",
		"league", league.String(),
		"sources", len(sources),
		"sinks", len(sinks),
		"storage", cfg.Storage.Backend,
	)

	if err := runner.Run(context.Background()); err != nil {
		slog.Error("Capture cycle failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Capture cycle finished")
}

func parseBooks(names []string) ([]enums.Book, error) {
	books := make([]enums.Book, 0, len(names))
	for _, name := range names {
		book, ok := enums.ParseBook(name)
		if !ok {
			return nil, fmt.Errorf("unknown sportsbook %q", name)
		}
		books = append(books, book)
	}
	return books, nil
}

func buildStore(cfg *config.Config, league enums.League) (storage.SnapshotStore, error) {
	switch cfg.Storage.Backend {
	case "postgres":
		return storage.NewPostgresStore(cfg.Storage.Postgres.DSN)
	case "csv", "":
		dir := filepath.Join(cfg.Storage.DataDir, league.GetLeagueInfo().DataDir)
		return storage.NewCSVStore(dir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func buildSources(cfg *config.Config) []acquisition.Source {
	var sources []acquisition.Source
	if cfg.OddsAPI.Enabled {
		if cfg.OddsAPI.APIKey == "" {
			slog.Warn("odds_api enabled without api key, skipping")
		} else {
			client := oddsapi.NewClient(cfg.OddsAPI.BaseURL, cfg.OddsAPI.APIKey, cfg.OddsAPI.Region, cfg.OddsAPI.Timeout)
			sources = append(sources, oddsapi.NewSource(client))
		}
	}
	if cfg.Scrapers.BetRivers.Enabled {
		sources = append(sources, betrivers.NewSource(cfg.Scrapers.BetRivers.BaseURL, cfg.Scrapers.BetRivers.Timeout))
	}
	if cfg.Scrapers.DraftKings.Enabled {
		sources = append(sources, draftkings.NewSource(cfg.Scrapers.DraftKings.BaseURL, cfg.Scrapers.DraftKings.Timeout))
	}
	if cfg.Scrapers.BetMGM.Enabled {
		sources = append(sources, betmgm.NewSource(cfg.Scrapers.BetMGM.Timeout, cfg.Scrapers.BetMGM.UserAgent))
	}
	return sources
}

func buildSinks(cfg *config.Config) []notify.Sink {
	var sinks []notify.Sink
	if cfg.Alerts.TelegramBotToken != "" && cfg.Alerts.TelegramChatID != 0 {
		tg, err := notify.NewTelegramNotifier(cfg.Alerts.TelegramBotToken, cfg.Alerts.TelegramChatID)
		if err != nil {
			slog.Error("Telegram notifier unavailable, continuing without it", "error", err)
		} else {
			sinks = append(sinks, tg)
			slog.Info("Telegram alerts enabled", "chat_id", cfg.Alerts.TelegramChatID)
		}
	}
	if cfg.Alerts.SlackWebhookURL != "" {
		sinks = append(sinks, notify.NewSlackNotifier(cfg.Alerts.SlackWebhookURL))
		slog.Info("Slack alerts enabled")
	}
	if len(sinks) == 0 {
		slog.Warn("No alert sink configured, sure bets will only be logged")
	}
	return sinks
}

func buildGate(cfg *config.Config) *notify.Deduplicator {
	if cfg.Alerts.Redis.Addr == "" {
		return nil
	}
	gate, err := notify.NewDeduplicator(cfg.Alerts.Redis.Addr, cfg.Alerts.Redis.Password, cfg.Alerts.Redis.DB, cfg.Alerts.DedupTTL)
	if err != nil {
		slog.Error("Redis unavailable, alert dedup disabled", "error", err)
		return nil
	}
	slog.Info("Alert dedup enabled", "ttl", cfg.Alerts.DedupTTL)
	return gate
}
