package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/planning/internal/config"
	"github.com/javiermolinar/planning/internal/db"
	"github.com/javiermolinar/planning/internal/planning"
	"github.com/javiermolinar/planning/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo       planning.Repository
	ownsRepo   bool // repo was opened by the app and must be closed by it
	config     *config.Config
	configPath string
	logger     *zap.Logger
	root       *cobra.Command

	// Global flag overrides
	locale   string
	timezone string
	noColor  bool
}

// NewApp creates a new CLI application. A nil repo is opened lazily from
// the configured database path by the commands that need storage.
func NewApp(repo planning.Repository, cfg *config.Config, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{repo: repo, config: cfg, configPath: config.DefaultConfigPath(), logger: logger}
	a.root = a.newRootCmd()
	return a
}

// newRootCmd builds the command tree. Flag variables are bound to their
// defaults each time it is called.
func (a *App) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "planning",
		Short: "Plan shifts and tasks on a Gantt chart",
		Long: `Planning keeps time slots in a local SQLite database and shows them on a
Gantt chart at day, week, month or year scale.

Each bar is labeled with its time range, allocated hours and name, as much
as the scale leaves room for.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.applyGlobalFlags,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			return tui.Run(a.repo, a.config, a.logger)
		},
	}

	root.PersistentFlags().StringVar(&a.locale, "locale", "", "Locale for dates and times (e.g. en-GB, fr)")
	root.PersistentFlags().StringVar(&a.timezone, "tz", "", "IANA time zone (e.g. Europe/Paris, Local)")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(a.versionCmd())
	root.AddCommand(a.configCmd())
	root.AddCommand(a.addCmd())
	root.AddCommand(a.listCmd())
	root.AddCommand(a.removeCmd())
	root.AddCommand(a.labelCmd())
	root.AddCommand(a.ganttCmd())
	root.AddCommand(a.summaryCmd())
	root.AddCommand(a.importCmd())

	return root
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "planning %s (commit: %s)\n", Version, Commit)
		},
	}
}

// applyGlobalFlags folds the global flags into the configuration.
func (a *App) applyGlobalFlags(_ *cobra.Command, _ []string) error {
	if a.noColor {
		DisableColor()
	}
	if a.locale != "" {
		a.config.Display.Locale = a.locale
	}
	if a.timezone != "" {
		a.config.Display.Timezone = a.timezone
	}
	if a.locale != "" || a.timezone != "" {
		if err := a.config.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ensureRepo opens the configured database if no repository was given.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}

	path := a.config.Storage.DBPath
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating database directory: %w", err)
		}
	}

	repo, err := db.New(path)
	if err != nil {
		return err
	}
	a.logger.Debug("storage opened", zap.String("path", path))
	a.repo = repo
	a.ownsRepo = true
	return nil
}

// SetArgs sets the arguments used by Execute instead of os.Args.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the repository if the app opened it.
func (a *App) Close() error {
	if a.ownsRepo && a.repo != nil {
		return a.repo.Close()
	}
	return nil
}
