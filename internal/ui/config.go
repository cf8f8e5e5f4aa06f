package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/planning/internal/config"
	"github.com/javiermolinar/planning/internal/locale"
	"github.com/javiermolinar/planning/internal/pill"
	"github.com/javiermolinar/planning/internal/theme"
)

func (a *App) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if configFileExists(a.configPath) {
				fmt.Fprintf(out, "Config file: %s\n\n", a.configPath)
			} else {
				fmt.Fprintf(out, "Config file: %s (not created, run 'planning config init')\n\n", a.configPath)
			}
			printConfig(out, a.config)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), a.configPath)
		},
	})

	var defaults bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create or edit the config file interactively",
		Long: `Walk through the configuration values and save them.

Press enter to keep the value shown in brackets. With --defaults the
current values are written without prompting.

Example:
  planning config init
  planning config init --defaults`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runConfigInit(cmd.InOrStdin(), cmd.OutOrStdout(), defaults)
		},
	}
	initCmd.Flags().BoolVar(&defaults, "defaults", false, "Write the current values without prompting")
	cmd.AddCommand(initCmd)

	return cmd
}

func (a *App) runConfigInit(in io.Reader, out io.Writer, defaults bool) error {
	fmt.Fprintf(out, "Config file: %s\n\n", a.configPath)

	cfg := *a.config
	if !defaults {
		reader := bufio.NewReader(in)

		cfg.Display.Locale = promptChoice(reader, out, "Locale", cfg.Display.Locale, locale.Available(), locale.Supported)
		cfg.Display.Timezone = promptValue(reader, out, "Time zone (IANA name or Local)", cfg.Display.Timezone)
		cfg.Display.DefaultScale = promptChoice(reader, out, "Default scale", cfg.Display.DefaultScale, scaleNames(), isScale)
		cfg.Storage.DBPath = promptValue(reader, out, "Database path", cfg.Storage.DBPath)
		cfg.UI.Theme = promptChoice(reader, out, "UI theme", cfg.UI.Theme, theme.Available(), theme.IsAvailable)
	}

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(a.configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	*a.config = cfg

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Current configuration:")
	fmt.Fprintln(w, "──────────────────────")
	fmt.Fprintln(w, "[display]")
	fmt.Fprintf(w, "  locale           = %s\n", cfg.Display.Locale)
	fmt.Fprintf(w, "  timezone         = %s\n", cfg.Display.Timezone)
	fmt.Fprintf(w, "  default_scale    = %s\n", cfg.Display.DefaultScale)
	if cfg.Display.FirstWeekday != "" {
		fmt.Fprintf(w, "  first_weekday    = %s\n", cfg.Display.FirstWeekday)
	}
	fmt.Fprintln(w, "\n[storage]")
	fmt.Fprintf(w, "  db_path          = %s\n", cfg.Storage.DBPath)
	fmt.Fprintln(w, "\n[ui]")
	fmt.Fprintf(w, "  theme            = %s\n", cfg.UI.Theme)
	fmt.Fprintln(w, "\n[log]")
	fmt.Fprintf(w, "  debug            = %t\n", cfg.Log.Debug)
	fmt.Fprintf(w, "  path             = %s\n", cfg.Log.Path)
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

// promptChoice asks until the answer passes valid. Running out of input
// keeps the current value.
func promptChoice(reader *bufio.Reader, out io.Writer, label, current string, options []string, valid func(string) bool) string {
	joined := strings.Join(options, ", ")
	full := fmt.Sprintf("%s (%s)", label, joined)
	for {
		value := promptValue(reader, out, full, current)
		if valid(value) {
			return value
		}
		fmt.Fprintf(out, "  Invalid value %q. Available: %s\n", value, joined)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}

func scaleNames() []string {
	names := make([]string, 0, len(pill.Scales))
	for _, s := range pill.Scales {
		names = append(names, s.String())
	}
	return names
}

func isScale(s string) bool {
	_, err := pill.ParseScale(s)
	return err == nil
}

// configFileExists reports whether the config file has been written.
func configFileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
