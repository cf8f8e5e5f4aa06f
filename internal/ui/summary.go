package ui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/planning/internal/locale"
	"github.com/javiermolinar/planning/internal/pill"
	"github.com/javiermolinar/planning/internal/planning"
)

func (a *App) summaryCmd() *cobra.Command {
	var flags windowFlags

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show hours per resource and double bookings",
		Long: `Summarize a Gantt window: the slots and hours of each row, the hours
left in open shifts, and any resource booked twice at the same time.`,
		Example: `  planning summary
  planning summary --scale=month --date=2025-01-15`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scale, focus, err := flags.resolve(a, time.Now())
			if err != nil {
				return err
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			l := a.config.Locale()
			start, end := planning.Window(scale, focus, l.FirstWeekday)
			slots, err := a.repo.ListSlotsInRange(context.Background(), start, end)
			if err != nil {
				return fmt.Errorf("listing slots: %w", err)
			}

			title := planning.Title(scale, focus, l)
			printSummary(cmd.OutOrStdout(), title, planning.Summarize(slots, start, end), l, a.config.Location())
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func printSummary(w io.Writer, title string, sum *planning.Summary, l locale.Locale, loc *time.Location) {
	fmt.Fprintln(w, formatHeader("=== "+title+" ==="))

	if len(sum.Rows) == 0 {
		fmt.Fprintln(w, "No slots found in this period.")
		return
	}

	for _, r := range sum.Rows {
		fmt.Fprintf(w, "%s %s %s\n",
			formatRow(r.Name, r.Name == planning.OpenShifts),
			formatHours(pill.Duration(r.AllocatedHours)),
			formatMuted(fmt.Sprintf("(%d slots, %s scheduled)", r.Slots, pill.Duration(r.ScheduledHours))),
		)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total: %s", formatHours(pill.Duration(sum.TotalHours())))
	if open := sum.OpenHours(); open > 0 {
		fmt.Fprintf(w, ", %s unassigned", pill.Duration(open))
	}
	fmt.Fprintln(w)

	if len(sum.Conflicts) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n", formatWarning(fmt.Sprintf("Double bookings (%d):", len(sum.Conflicts))))
	for _, c := range sum.Conflicts {
		fmt.Fprintf(w, "  %s: #%d %s and #%d %s from %s %s\n",
			c.First.Resource,
			c.First.ID, c.First.Name,
			c.Second.ID, c.Second.Name,
			l.FormatDate(c.Second.Start.In(loc)),
			l.FormatTime(c.Second.Start.In(loc)),
		)
	}
}
