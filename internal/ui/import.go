package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/planning/internal/db"
	"github.com/javiermolinar/planning/internal/planning"
)

func (a *App) importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [database_path]",
		Short: "Import slots from another database",
		Long: `Import all slots from another planning database into the current one.
Either every slot is imported or none is.

Example:
  planning import /path/to/other.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sourcePath, err := resolvePath(args[0])
			if err != nil {
				return err
			}
			destPath, err := resolvePath(a.config.Storage.DBPath)
			if err != nil {
				return err
			}

			if sourcePath == destPath {
				return fmt.Errorf("source database matches current database")
			}

			info, err := os.Stat(sourcePath)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("source database does not exist: %s", sourcePath)
				}
				return fmt.Errorf("checking source database: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("source database path is a directory: %s", sourcePath)
			}

			if err := a.ensureRepo(); err != nil {
				return err
			}

			count, err := importSlots(context.Background(), a.repo, sourcePath)
			if err != nil {
				return err
			}
			a.logger.Info("slots imported", zap.Int("count", count), zap.String("source", sourcePath))

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d slots from %s\n", count, sourcePath)
			return nil
		},
	}

	return cmd
}

func importSlots(ctx context.Context, dest planning.Repository, sourcePath string) (int, error) {
	sourceRepo, err := db.New(sourcePath)
	if err != nil {
		return 0, fmt.Errorf("opening source database: %w", err)
	}
	defer func() { _ = sourceRepo.Close() }()

	slots, err := sourceRepo.ListAllSlots(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing source slots: %w", err)
	}
	if len(slots) == 0 {
		return 0, nil
	}

	copies := make([]*planning.Slot, 0, len(slots))
	for _, s := range slots {
		copies = append(copies, &planning.Slot{
			Name:           s.Name,
			Resource:       s.Resource,
			Start:          s.Start,
			Stop:           s.Stop,
			AllocatedHours: s.AllocatedHours,
			CreatedAt:      s.CreatedAt,
		})
	}

	if err := dest.CreateSlots(ctx, copies); err != nil {
		return 0, fmt.Errorf("importing slots: %w", err)
	}
	return len(copies), nil
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	return absPath, nil
}
