package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/planning/internal/gantt"
	"github.com/javiermolinar/planning/internal/theme"
)

func (a *App) ganttCmd() *cobra.Command {
	var (
		flags  windowFlags
		width  int
		totals bool
	)

	cmd := &cobra.Command{
		Use:   "gantt",
		Short: "Print a Gantt chart of a window",
		Long: `Print a static Gantt chart. The width defaults to the terminal width.

Example:
  planning gantt
  planning gantt --scale=month --date=2025-02-01 --width=160`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scale, focus, err := flags.resolve(a, time.Now())
			if err != nil {
				return err
			}
			if width <= 0 {
				width = termWidth()
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			v, err := a.loadView(context.Background(), scale, focus)
			if err != nil {
				return err
			}

			t, err := theme.Load(a.config.UI.Theme)
			if err != nil {
				return fmt.Errorf("loading theme: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), gantt.RenderView(v, gantt.Options{
				Width:      width,
				Locale:     a.config.Locale(),
				Location:   a.config.Location(),
				Palette:    theme.NewPalette(t),
				Now:        time.Now(),
				ShowTotals: totals,
			}))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&width, "width", 0, "Chart width in columns (default: terminal width)")
	cmd.Flags().BoolVar(&totals, "totals", true, "Show allocated hours next to row names")
	return cmd
}
