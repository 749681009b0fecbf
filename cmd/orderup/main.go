package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/orderup/internal/config"
	"github.com/jask/orderup/internal/database"
	"github.com/jask/orderup/internal/database/repository"
	"github.com/jask/orderup/internal/logging"
	"github.com/jask/orderup/internal/service"
	"github.com/jask/orderup/internal/tui"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := logging.Discard()
	if f, err := logging.OpenFile(cfg.Log.Path); err != nil {
		fmt.Fprintf(os.Stderr, "warn: logging disabled: %v\n", err)
	} else {
		defer f.Close()
		logger = logging.New(f, logging.ParseLevel(cfg.Log.Level))
	}
	slog.SetDefault(logger)

	// leave an editable config behind on first run
	if _, err := os.Stat(config.Path()); errors.Is(err, fs.ErrNotExist) {
		if err := config.Save(cfg); err != nil {
			logger.Warn("write default config", "path", config.Path(), "err", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if cfg.Catalog.Path != "" {
		ingest := &service.IngestService{DB: db, Currency: cfg.UI.CurrencySymbol}
		res, err := ingest.ImportFile(ctx, cfg.Catalog.Path, cfg.Catalog.Replace)
		for _, e := range res.Errors {
			logger.Warn("catalog row rejected", "err", e)
		}
		if err != nil {
			return fmt.Errorf("import catalog: %w", err)
		}
		logger.Info("catalog imported", "path", cfg.Catalog.Path, "replace", cfg.Catalog.Replace,
			"imported", res.Imported, "skipped", res.Skipped, "errors", len(res.Errors))
	}

	if err := database.SeedDefaults(ctx, db); err != nil {
		return fmt.Errorf("seed defaults: %w", err)
	}

	menu := &service.Menu{Dishes: repository.NewDishRepo(db)}
	catalog, err := menu.Load(ctx)
	if err != nil {
		return fmt.Errorf("load menu: %w", err)
	}
	logger.Info("menu loaded", "dishes", catalog.Len())

	app := tui.New(menu, cfg.UI, logger)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	if s := app.Session(); s.OrderComplete {
		fmt.Printf("Order complete: %d item(s), total %s\n", s.Count(), s.Total().Format(cfg.UI.CurrencySymbol))
	}
	return nil
}
