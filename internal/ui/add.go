package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/planning/internal/dateutil"
	"github.com/javiermolinar/planning/internal/pill"
	"github.com/javiermolinar/planning/internal/planning"
)

func (a *App) addCmd() *cobra.Command {
	var (
		start    string
		stop     string
		resource string
		hours    float64
	)

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a new slot",
		Long: `Add a time slot to the planning.

Slots without --resource go to the "Open shifts" row. Allocated hours
default to the slot's duration.

Example:
  planning add "Inventory" --start="2025-01-10 08:00" --stop="2025-01-10 17:00" --resource=Alice --hours=8`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := a.config.Location()
			startAt, err := dateutil.ParseDateTime(start, loc)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			stopAt, err := dateutil.ParseDateTime(stop, loc)
			if err != nil {
				return fmt.Errorf("--stop: %w", err)
			}

			slot, err := planning.NewSlot(args[0], resource, startAt, stopAt, hours)
			if err != nil {
				return err
			}

			if err := a.ensureRepo(); err != nil {
				return err
			}
			ctx := context.Background()
			existing, err := a.repo.ListSlotsInRange(ctx, slot.Start, slot.Stop)
			if err != nil {
				return fmt.Errorf("checking conflicts: %w", err)
			}
			conflicts := planning.Conflicts(slot, existing)

			if err := a.repo.CreateSlot(ctx, slot); err != nil {
				return fmt.Errorf("creating slot: %w", err)
			}
			a.logger.Info("slot created", zap.Int64("id", slot.ID), zap.String("name", slot.Name))

			l := a.config.Locale()
			fmt.Fprintf(cmd.OutOrStdout(), "Created slot #%d: %s [%s] %s %s → %s %s (%s)\n",
				slot.ID,
				slot.Name,
				slot.RowName(),
				l.FormatDate(slot.Start.In(loc)),
				l.FormatTime(slot.Start.In(loc)),
				l.FormatDate(slot.Stop.In(loc)),
				l.FormatTime(slot.Stop.In(loc)),
				pill.Duration(slot.AllocatedHours),
			)
			for _, c := range conflicts {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s is already booked by #%d %s\n",
					formatWarning("Warning:"), slot.Resource, c.ID, c.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start (YYYY-MM-DD HH:MM, required)")
	cmd.Flags().StringVar(&stop, "stop", "", "Stop (YYYY-MM-DD HH:MM, required)")
	cmd.Flags().StringVar(&resource, "resource", "", "Resource the slot is assigned to (default: open shift)")
	cmd.Flags().Float64Var(&hours, "hours", -1, "Allocated hours (default: the slot's duration)")

	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("stop")

	return cmd
}

func (a *App) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove [slot-id]",
		Aliases: []string{"rm"},
		Short:   "Remove a slot",
		Long: `Remove a slot by its ID.

Example:
  planning remove 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			if err := a.repo.DeleteSlot(context.Background(), id); err != nil {
				return fmt.Errorf("removing slot: %w", err)
			}
			a.logger.Info("slot deleted", zap.Int64("id", id))

			fmt.Fprintf(cmd.OutOrStdout(), "Removed slot #%d\n", id)
			return nil
		},
	}
}
