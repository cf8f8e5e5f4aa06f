package gantt

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/planning/internal/locale"
	"github.com/javiermolinar/planning/internal/pill"
	"github.com/javiermolinar/planning/internal/planning"
	"github.com/javiermolinar/planning/internal/theme"
)

func at(day, hour int) time.Time {
	return time.Date(2024, time.January, day, hour, 0, 0, 0, time.UTC)
}

func testRows() []planning.Row {
	return planning.Rows([]*planning.Slot{
		{ID: 1, Name: "Task 1", Resource: "Alice", Start: at(1, 16), Stop: at(2, 1), AllocatedHours: 4},
		{ID: 2, Name: "Task 2", Resource: "Alice", Start: at(2, 16), Stop: at(3, 2), AllocatedHours: 4},
		{ID: 3, Name: "Task 3", Resource: "Alice", Start: at(3, 16), Stop: at(4, 3), AllocatedHours: 4},
		{ID: 4, Name: "Inventory", Start: at(3, 8), Stop: at(5, 17), AllocatedHours: 24},
		{ID: 5, Name: "Next week", Resource: "Bob", Start: at(9, 9), Stop: at(9, 17), AllocatedHours: 8},
	})
}

func TestNewView_LabelsVisiblePills(t *testing.T) {
	v := NewView(testRows(), pill.ScaleWeek, at(3, 12), locale.Default, time.UTC)

	if !v.Start.Equal(at(0, 0)) || !v.End.Equal(at(7, 0)) {
		t.Errorf("window = [%v, %v), want Sunday to Sunday", v.Start, v.End)
	}

	want := []string{
		"Inventory",
		"4:00 PM - 1:00 AM (4h) - Task 1",
		"4:00 PM - 2:00 AM (4h) - Task 2",
		"Task 3",
	}
	if diff := cmp.Diff(want, v.Labels()); diff != "" {
		t.Errorf("Labels() mismatch (-want +got):\n%s", diff)
	}

	if len(v.Rows) != 2 {
		t.Fatalf("got %d rows, want 2 (Bob has no visible slot)", len(v.Rows))
	}
	if !v.Rows[0].Open || v.Rows[1].Open {
		t.Errorf("open flags = %v, %v; want open shifts first", v.Rows[0].Open, v.Rows[1].Open)
	}
	if v.Rows[1].Hours != 12 {
		t.Errorf("Alice hours = %v, want 12", v.Rows[1].Hours)
	}
}

func TestNewView_DoesNotMutateSlots(t *testing.T) {
	rows := testRows()
	before := rows[1].Slots[0].Start

	_ = NewView(rows, pill.ScaleWeek, at(3, 12), locale.Default, time.FixedZone("UTC-5", -5*60*60))

	if !rows[1].Slots[0].Start.Equal(before) || rows[1].Slots[0].Start.Location() != time.UTC {
		t.Error("NewView changed the source slots")
	}
}

func TestRender(t *testing.T) {
	out := ansi.Strip(Render(testRows(), pill.ScaleWeek, at(3, 12), Options{
		Width:    120,
		Locale:   locale.Default,
		Location: time.UTC,
		Now:      at(3, 12),
	}))

	for _, want := range []string{"Week of 12/31/2023", "Sun 12/31", "Open shifts", "Alice", "Inventory", "Task 3", "▼ today"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Bob") {
		t.Errorf("Bob has no slot this week:\n%s", out)
	}
}

func TestRender_OverlappingPillsUseLanes(t *testing.T) {
	rows := planning.Rows([]*planning.Slot{
		{ID: 1, Name: "A", Resource: "Ops", Start: at(1, 8), Stop: at(1, 18), AllocatedHours: 8},
		{ID: 2, Name: "B", Resource: "Ops", Start: at(1, 12), Stop: at(1, 20), AllocatedHours: 8},
		{ID: 3, Name: "C", Resource: "Ops", Start: at(1, 21), Stop: at(1, 23), AllocatedHours: 2},
	})

	out := ansi.Strip(Render(rows, pill.ScaleDay, at(1, 0), Options{Width: 80, Locale: locale.Default, Location: time.UTC}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// title, axis, two lanes
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[2], "Ops") || strings.HasPrefix(lines[3], "Ops") {
		t.Errorf("row name should only prefix the first lane:\n%s", out)
	}
}

func TestRender_Empty(t *testing.T) {
	out := ansi.Strip(Render(nil, pill.ScaleMonth, at(1, 0), Options{Width: 80, Locale: locale.Default, Location: time.UTC}))
	if !strings.Contains(out, "January 2024") || !strings.Contains(out, "No slots in this period.") {
		t.Errorf("unexpected empty output:\n%s", out)
	}
}

func TestSpan(t *testing.T) {
	v := View{Start: at(1, 0), End: at(2, 0)}

	tests := []struct {
		name       string
		start, end time.Time
		from, to   int
	}{
		{name: "morning", start: at(1, 0), end: at(1, 6), from: 0, to: 6},
		{name: "clipped before", start: at(0, 12), end: at(1, 3), from: 0, to: 3},
		{name: "clipped after", start: at(1, 22), end: at(2, 4), from: 22, to: 24},
		{name: "instant gets one cell", start: at(1, 5), end: at(1, 5), from: 5, to: 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := span(v, tt.start, tt.end, 24)
			if from != tt.from || to != tt.to {
				t.Errorf("span() = [%d, %d), want [%d, %d)", from, to, tt.from, tt.to)
			}
		})
	}
}

func TestTicks(t *testing.T) {
	year := View{Scale: pill.ScaleYear, Start: at(1, 0), End: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	if got := ticks(year, locale.Default); len(got) != 12 || got[0].label != "Jan" || got[11].label != "Dec" {
		t.Errorf("year ticks = %v", got)
	}

	day := View{Scale: pill.ScaleDay, Start: at(1, 0), End: at(2, 0)}
	if got := ticks(day, locale.Lookup("de")); len(got) != 8 || got[5].label != "15" {
		t.Errorf("24h day ticks = %v", got)
	}
	if got := ticks(day, locale.Default); got[0].label != "12 AM" || got[5].label != "3 PM" {
		t.Errorf("12h day ticks = %v", got)
	}
}

func TestRender_SelectedSlotUsesAccent(t *testing.T) {
	prevProfile := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(prevProfile)
	})

	pal := theme.NewPalette(&theme.Theme{
		Bg:     "#101010",
		Fg:     "#ffffff",
		Accent: "#112233",
		Pill:   "#445566",
		Open:   "#778899",
	})
	opts := Options{Width: 80, Locale: locale.Default, Location: time.UTC, Palette: pal}
	// lipgloss may put the foreground in the same SGR sequence
	accentBg := "48;2;17;34;51m"

	if out := Render(testRows(), pill.ScaleWeek, at(3, 12), opts); strings.Contains(out, accentBg) {
		t.Fatalf("accent used without a selection: %q", out)
	}

	opts.SelectedSlot = 2
	if out := Render(testRows(), pill.ScaleWeek, at(3, 12), opts); !strings.Contains(out, accentBg) {
		t.Fatalf("selected slot not drawn with the accent: %q", out)
	}
}
