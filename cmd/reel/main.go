package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mwhitley/reel/internal/catalog/tmdb"
	"github.com/mwhitley/reel/internal/config"
	"github.com/mwhitley/reel/internal/domain"
	"github.com/mwhitley/reel/internal/log"
	"github.com/mwhitley/reel/internal/service"
	"github.com/mwhitley/reel/internal/store"
	"github.com/mwhitley/reel/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("reel %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting reel", "version", Version)

	st, err := store.New(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("failed to open local store: %w", err)
	}
	defer st.Close()

	catalog := tmdb.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.APIKey, cfg.Catalog.Language, logger)
	images := domain.NewImageResolver(cfg.Catalog.ImageBaseURL)

	// Create services
	sessionSvc := service.NewSessionService(st, logger)
	sessionSvc.Restore()
	favoritesSvc := service.NewFavoritesService(st, logger)
	browseSvc := service.NewBrowseService(catalog, st, logger)

	// Create TUI model
	model := tui.NewModel(sessionSvc, favoritesSvc, browseSvc, catalog, images, cfg.UI.GridColumns)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
