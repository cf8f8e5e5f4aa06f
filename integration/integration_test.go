package integration

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/javiermolinar/planning/internal/db"
	"github.com/javiermolinar/planning/internal/gantt"
	"github.com/javiermolinar/planning/internal/locale"
	"github.com/javiermolinar/planning/internal/pill"
	"github.com/javiermolinar/planning/internal/planning"
)

// openRepo creates a fresh repository for each test with automatic cleanup.
func openRepo(t *testing.T) *db.SQLite {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	repo, err := db.New(dbPath)
	if err != nil {
		t.Fatalf("failed to open repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// mustParse parses "YYYY-MM-DD HH:MM" in loc or fails the test.
func mustParse(t *testing.T, s string, loc *time.Location) time.Time {
	t.Helper()
	v, err := time.ParseInLocation("2006-01-02 15:04", s, loc)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", s, err)
	}
	return v
}

// createSlot is a helper to create and insert a slot.
func createSlot(t *testing.T, repo *db.SQLite, name, resource, start, stop string, hours float64) *planning.Slot {
	t.Helper()
	s, err := planning.NewSlot(name, resource, mustParse(t, start, time.UTC), mustParse(t, stop, time.UTC), hours)
	if err != nil {
		t.Fatalf("failed to create slot: %v", err)
	}
	if err := repo.CreateSlot(context.Background(), s); err != nil {
		t.Fatalf("failed to insert slot: %v", err)
	}
	return s
}

// loadView reads a window from the repository and labels it, the way the
// CLI and TUI do.
func loadView(t *testing.T, repo *db.SQLite, scale pill.Scale, focus time.Time, loc locale.Locale, tz *time.Location) gantt.View {
	t.Helper()
	start, end := planning.Window(scale, focus.In(tz), loc.FirstWeekday)
	slots, err := repo.ListSlotsInRange(context.Background(), start, end)
	if err != nil {
		t.Fatalf("ListSlotsInRange failed: %v", err)
	}
	return gantt.NewView(planning.Rows(slots), scale, focus, loc, tz)
}

func TestWeekLabelsThroughStorage(t *testing.T) {
	repo := openRepo(t)
	createSlot(t, repo, "Task 1", "Alice", "2024-01-01 16:00", "2024-01-02 01:00", 4)
	createSlot(t, repo, "Task 2", "Alice", "2024-01-02 16:00", "2024-01-03 02:00", 4)
	createSlot(t, repo, "Task 3", "Alice", "2024-01-03 16:00", "2024-01-04 03:00", 4)
	createSlot(t, repo, "Next week", "Bob", "2024-01-09 09:00", "2024-01-09 17:00", -1)

	v := loadView(t, repo, pill.ScaleWeek, mustParse(t, "2024-01-03 12:00", time.UTC), locale.Default, time.UTC)

	want := []string{
		"4:00 PM - 1:00 AM (4h) - Task 1",
		"4:00 PM - 2:00 AM (4h) - Task 2",
		"Task 3",
	}
	if diff := cmp.Diff(want, v.Labels()); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestScalesShareOneSlot(t *testing.T) {
	repo := openRepo(t)
	createSlot(t, repo, "Audit", "", "2024-03-14 08:00", "2024-03-16 17:00", 20)
	focus := mustParse(t, "2024-03-14 12:00", time.UTC)

	tests := []struct {
		scale pill.Scale
		want  string
	}{
		{scale: pill.ScaleDay, want: "3/14 - 3/16 - Audit"},
		{scale: pill.ScaleWeek, want: "Audit"},
		{scale: pill.ScaleMonth, want: "Audit"},
		{scale: pill.ScaleYear, want: "3/14 - 3/16 - Audit"},
	}
	for _, tt := range tests {
		t.Run(tt.scale.String(), func(t *testing.T) {
			v := loadView(t, repo, tt.scale, focus, locale.Default, time.UTC)
			if diff := cmp.Diff([]string{tt.want}, v.Labels()); diff != "" {
				t.Errorf("labels mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSlotLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t)

	s := createSlot(t, repo, "Inventory", "", "2024-01-03 08:00", "2024-01-03 17:00", -1)
	if s.AllocatedHours != 9 {
		t.Fatalf("AllocatedHours = %v, want duration 9", s.AllocatedHours)
	}

	got, err := repo.GetSlot(ctx, s.ID)
	if err != nil {
		t.Fatalf("GetSlot failed: %v", err)
	}
	if got.RowName() != planning.OpenShifts {
		t.Errorf("RowName = %q, want %q", got.RowName(), planning.OpenShifts)
	}

	if err := repo.DeleteSlot(ctx, s.ID); err != nil {
		t.Fatalf("DeleteSlot failed: %v", err)
	}
	if _, err := repo.GetSlot(ctx, s.ID); !errors.Is(err, planning.ErrSlotNotFound) {
		t.Errorf("GetSlot after delete err = %v, want ErrSlotNotFound", err)
	}

	v := loadView(t, repo, pill.ScaleWeek, mustParse(t, "2024-01-03 12:00", time.UTC), locale.Default, time.UTC)
	if len(v.Rows) != 0 {
		t.Errorf("deleted slot still visible: %+v", v.Rows)
	}
}
