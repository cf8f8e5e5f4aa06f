package ui

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/planning/internal/dateutil"
	"github.com/javiermolinar/planning/internal/gantt"
	"github.com/javiermolinar/planning/internal/locale"
	"github.com/javiermolinar/planning/internal/pill"
	"github.com/javiermolinar/planning/internal/planning"
)

// windowFlags selects the Gantt window a command works on.
type windowFlags struct {
	scale string
	date  string
}

func (f *windowFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.scale, "scale", "", "Scale: day, week, month or year (default from config)")
	cmd.Flags().StringVar(&f.date, "date", "", "Date inside the window (YYYY-MM-DD, today, next-week, ...)")
}

// resolve returns the scale and focus date, defaulting to the configured
// scale and to today.
func (f *windowFlags) resolve(a *App, now time.Time) (pill.Scale, time.Time, error) {
	scale := a.config.Scale()
	if f.scale != "" {
		s, err := pill.ParseScale(f.scale)
		if err != nil {
			return "", time.Time{}, err
		}
		scale = s
	}

	focus, err := dateutil.ParseRelativeDate(f.date, now.In(a.config.Location()))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("--date: %w", err)
	}
	return scale, focus, nil
}

// loadView reads the slots of the window and labels them.
func (a *App) loadView(ctx context.Context, scale pill.Scale, focus time.Time) (gantt.View, error) {
	l := a.config.Locale()
	start, end := planning.Window(scale, focus, l.FirstWeekday)

	slots, err := a.repo.ListSlotsInRange(ctx, start, end)
	if err != nil {
		return gantt.View{}, fmt.Errorf("listing slots: %w", err)
	}
	return gantt.NewView(planning.Rows(slots), scale, focus, l, a.config.Location()), nil
}

func (a *App) listCmd() *cobra.Command {
	var flags windowFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the slots of a window with their labels",
		Long: `List the slots visible in a Gantt window, grouped by row, with the label
each bar shows at that scale.

If no flags are given, lists the current window at the configured scale.`,
		Example: `  planning list
  planning list --scale=day --date=tomorrow
  planning list --scale=month --date=2025-01-15`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scale, focus, err := flags.resolve(a, time.Now())
			if err != nil {
				return err
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			v, err := a.loadView(context.Background(), scale, focus)
			if err != nil {
				return err
			}
			printView(cmd.OutOrStdout(), v, a.config.Locale())
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// printView writes the rows of a view with one line per pill.
func printView(w io.Writer, v gantt.View, l locale.Locale) {
	title := planning.Title(v.Scale, v.Start, l)
	fmt.Fprintln(w, formatHeader("=== "+title+" ==="))

	if len(v.Rows) == 0 {
		fmt.Fprintln(w, "No slots found in this period.")
		return
	}

	for i, r := range v.Rows {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s %s\n", formatRow(r.Name, r.Open), formatHours(pill.Duration(r.Hours)))
		for _, p := range r.Pills {
			label := p.Label
			if label == "" {
				label = formatMuted("(no room for a label)")
			}
			fmt.Fprintf(w, "  #%-4d %s %s\n",
				p.ID,
				formatMuted(l.FormatDate(p.Interval.Start)+" "+l.FormatTime(p.Interval.Start)),
				label,
			)
		}
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid slot ID: %w", err)
	}
	return id, nil
}
