package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/planning/internal/dateutil"
	"github.com/javiermolinar/planning/internal/pill"
	"github.com/javiermolinar/planning/internal/planning"
)

func (a *App) labelCmd() *cobra.Command {
	var (
		start string
		stop  string
		scale string
		name  string
		hours float64
	)

	cmd := &cobra.Command{
		Use:   "label",
		Short: "Print the label a bar would show",
		Long: `Compute the Gantt bar label of an interval at a scale, without touching
the database.

Example:
  planning label --start="2024-01-01 16:00" --stop="2024-01-02 01:00" --hours=4 --name="Task 1"
  planning label --start="2024-03-14 08:00" --stop="2024-03-16 17:00" --scale=year --name=Audit --locale=de`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loc := a.config.Location()
			startAt, err := dateutil.ParseDateTime(start, loc)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			stopAt, err := dateutil.ParseDateTime(stop, loc)
			if err != nil {
				return fmt.Errorf("--stop: %w", err)
			}
			if stopAt.Before(startAt) {
				return fmt.Errorf("--stop: %w", planning.ErrStopBeforeStart)
			}

			s := a.config.Scale()
			if scale != "" {
				if s, err = pill.ParseScale(scale); err != nil {
					return err
				}
			}

			iv := pill.Interval{
				Start:          startAt,
				End:            stopAt,
				AllocatedHours: hours,
				DisplayName:    name,
			}
			fmt.Fprintln(cmd.OutOrStdout(), pill.Label(iv, s, a.config.Locale()))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start (YYYY-MM-DD HH:MM, required)")
	cmd.Flags().StringVar(&stop, "stop", "", "Stop (YYYY-MM-DD HH:MM, required)")
	cmd.Flags().StringVar(&scale, "scale", "", "Scale: day, week, month or year (default from config)")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Allocated hours")

	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("stop")

	return cmd
}
