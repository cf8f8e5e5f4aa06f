package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/javiermolinar/planning/internal/config"
	"github.com/javiermolinar/planning/internal/logging"
	"github.com/javiermolinar/planning/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, closeLog, err := logging.New(cfg.Log.Debug, cfg.Log.Path)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Debug("config loaded",
		zap.String("locale", cfg.Display.Locale),
		zap.String("timezone", cfg.Display.Timezone),
		zap.String("db_path", cfg.Storage.DBPath))

	app := ui.NewApp(nil, cfg, logger)
	defer func() { _ = app.Close() }()
	return app.Execute()
}
