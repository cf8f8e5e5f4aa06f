package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"

	"github.com/javiermolinar/planning/internal/config"
	"github.com/javiermolinar/planning/internal/pill"
	"github.com/javiermolinar/planning/internal/planning"
	"github.com/javiermolinar/planning/internal/tui/commands"
)

type fakeRepo struct {
	slots   []*planning.Slot
	ranges  [][2]time.Time
	deleted []int64
}

func (f *fakeRepo) CreateSlot(ctx context.Context, slot *planning.Slot) error {
	return errors.New("not implemented")
}

func (f *fakeRepo) CreateSlots(ctx context.Context, slots []*planning.Slot) error {
	return errors.New("not implemented")
}

func (f *fakeRepo) GetSlot(ctx context.Context, id int64) (*planning.Slot, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRepo) DeleteSlot(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeRepo) ListSlotsInRange(ctx context.Context, start, end time.Time) ([]*planning.Slot, error) {
	f.ranges = append(f.ranges, [2]time.Time{start, end})
	return f.slots, nil
}

func (f *fakeRepo) ListAllSlots(ctx context.Context) ([]*planning.Slot, error) {
	return f.slots, nil
}

func (f *fakeRepo) Close() error {
	return nil
}

func at(day, hour int) time.Time {
	return time.Date(2024, time.January, day, hour, 0, 0, 0, time.UTC)
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Display.Timezone = "UTC"
	cfg.Display.Locale = "en-US"
	cfg.Display.DefaultScale = "week"
	return cfg
}

func testSlots() []*planning.Slot {
	return []*planning.Slot{
		{ID: 1, Name: "Task 1", Resource: "Alice", Start: at(1, 16), Stop: at(2, 1), AllocatedHours: 4},
		{ID: 2, Name: "Task 2", Resource: "Alice", Start: at(2, 16), Stop: at(3, 2), AllocatedHours: 4},
		{ID: 3, Name: "Task 3", Resource: "Alice", Start: at(3, 16), Stop: at(4, 3), AllocatedHours: 4},
	}
}

// newLoadedModel returns a model focused on Wednesday 2024-01-03 with the
// initial load applied.
func newLoadedModel(t *testing.T, repo *fakeRepo) Model {
	t.Helper()
	m := *New(repo, testConfig(), WithNow(func() time.Time { return at(3, 12) }))
	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init() returned no command")
	}
	return update(t, m, cmd())
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return model
}

func press(t *testing.T, m Model, key string) (Model, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func TestInit_LoadsWeekAndLabelsPills(t *testing.T) {
	repo := &fakeRepo{slots: testSlots()}
	m := newLoadedModel(t, repo)

	if len(repo.ranges) != 1 {
		t.Fatalf("repo queried %d times, want 1", len(repo.ranges))
	}
	if got := repo.ranges[0]; !got[0].Equal(at(0, 0)) || !got[1].Equal(at(7, 0)) {
		t.Errorf("queried [%v, %v), want Sunday to Sunday", got[0], got[1])
	}
	if m.loading {
		t.Error("loading should be false after the window arrives")
	}

	want := []string{
		"4:00 PM - 1:00 AM (4h) - Task 1",
		"4:00 PM - 2:00 AM (4h) - Task 2",
		"Task 3",
	}
	if diff := cmp.Diff(want, m.view.Labels()); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdate_DropsStaleWindow(t *testing.T) {
	m := newLoadedModel(t, &fakeRepo{slots: testSlots()})

	m = update(t, m, commands.WindowLoadedMsg{Start: at(7, 0), End: at(14, 0), Slots: nil})
	if len(m.slots) != 3 {
		t.Fatalf("stale window replaced slots: %d left", len(m.slots))
	}
}

func TestScaleKeys(t *testing.T) {
	tests := []struct {
		key        string
		scale      pill.Scale
		start, end time.Time
	}{
		{key: "d", scale: pill.ScaleDay, start: at(3, 0), end: at(4, 0)},
		{key: "m", scale: pill.ScaleMonth, start: at(1, 0), end: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{key: "y", scale: pill.ScaleYear, start: at(1, 0), end: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := newLoadedModel(t, &fakeRepo{slots: testSlots()})

			m, cmd := press(t, m, tt.key)
			if m.scale != tt.scale {
				t.Fatalf("scale = %s, want %s", m.scale, tt.scale)
			}
			if !m.loading || cmd == nil {
				t.Fatal("changing scale should reload")
			}
			loaded, ok := cmd().(commands.WindowLoadedMsg)
			if !ok {
				t.Fatal("expected WindowLoadedMsg")
			}
			if !loaded.Start.Equal(tt.start) || !loaded.End.Equal(tt.end) {
				t.Errorf("window = [%v, %v), want [%v, %v)", loaded.Start, loaded.End, tt.start, tt.end)
			}
		})
	}
}

func TestScaleKey_SameScaleIsNoop(t *testing.T) {
	m := newLoadedModel(t, &fakeRepo{slots: testSlots()})
	if _, cmd := press(t, m, "w"); cmd != nil {
		t.Error("pressing the current scale should not reload")
	}
}

func TestShiftAndToday(t *testing.T) {
	m := newLoadedModel(t, &fakeRepo{slots: testSlots()})

	m, cmd := press(t, m, "l")
	if cmd == nil || !m.focus.Equal(at(10, 12)) {
		t.Fatalf("focus after l = %v, want one week later", m.focus)
	}
	m, _ = press(t, m, "h")
	m, _ = press(t, m, "h")
	if !m.focus.Equal(at(-4, 12)) {
		t.Fatalf("focus after h h = %v", m.focus)
	}

	m, cmd = press(t, m, "t")
	if cmd == nil || !m.focus.Equal(at(3, 12)) {
		t.Fatalf("focus after t = %v, want now", m.focus)
	}
}

func TestSelectionShowsFullLabel(t *testing.T) {
	m := newLoadedModel(t, &fakeRepo{slots: testSlots()})
	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})

	m, _ = press(t, m, "j")
	if m.selected != 0 {
		t.Fatalf("selected = %d, want 0", m.selected)
	}
	out := ansi.Strip(m.View())
	if !strings.Contains(out, "4:00 PM - 1:00 AM (4h) - Task 1") {
		t.Errorf("selected label missing from view:\n%s", out)
	}
	if !strings.Contains(out, "Alice") {
		t.Errorf("selected resource missing from view:\n%s", out)
	}

	m, _ = press(t, m, "k")
	if m.selected != 2 {
		t.Errorf("selection should wrap to the last pill, got %d", m.selected)
	}
}

func TestDeleteSelectedSlot(t *testing.T) {
	repo := &fakeRepo{slots: testSlots()}
	m := newLoadedModel(t, repo)

	m, _ = press(t, m, "x")
	if m.mode != ModeNormal || m.statusMsg == "" {
		t.Fatal("delete without a selection should only set a status")
	}

	m, _ = press(t, m, "j")
	m, _ = press(t, m, "j")
	m, _ = press(t, m, "x")
	if m.mode != ModeConfirmDelete {
		t.Fatalf("mode = %v, want ModeConfirmDelete", m.mode)
	}
	if out := ansi.Strip(m.View()); !strings.Contains(out, `Delete "Task 2"?`) {
		t.Errorf("confirmation missing:\n%s", out)
	}

	m, cmd := press(t, m, "y")
	if cmd == nil {
		t.Fatal("expected delete command")
	}
	msg := cmd()
	if got, ok := msg.(commands.SlotDeletedMsg); !ok || got.ID != 2 {
		t.Fatalf("msg = %#v, want SlotDeletedMsg{ID: 2}", msg)
	}
	if diff := cmp.Diff([]int64{2}, repo.deleted); diff != "" {
		t.Errorf("deleted mismatch (-want +got):\n%s", diff)
	}

	m = update(t, m, msg)
	if !m.loading {
		t.Error("deleting should reload the window")
	}
}

func TestDeleteCancelled(t *testing.T) {
	repo := &fakeRepo{slots: testSlots()}
	m := newLoadedModel(t, repo)

	m, _ = press(t, m, "j")
	m, _ = press(t, m, "x")
	m, cmd := press(t, m, "n")
	if cmd != nil || m.mode != ModeNormal || len(repo.deleted) != 0 {
		t.Fatal("n should cancel the deletion")
	}
}

func TestExecutePrompt(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		scale  pill.Scale
		focus  time.Time
		status bool
	}{
		{name: "scale", line: "/scale month", scale: pill.ScaleMonth, focus: at(3, 12)},
		{name: "goto", line: "/goto 2024-03-14", scale: pill.ScaleWeek, focus: time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)},
		{name: "bare date", line: "tomorrow", scale: pill.ScaleWeek, focus: at(4, 0)},
		{name: "bad scale", line: "/scale fortnight", scale: pill.ScaleWeek, focus: at(3, 12), status: true},
		{name: "bad date", line: "/goto someday", scale: pill.ScaleWeek, focus: at(3, 12), status: true},
		{name: "unknown", line: "/plan", scale: pill.ScaleWeek, focus: at(3, 12), status: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newLoadedModel(t, &fakeRepo{slots: testSlots()})

			updated, _ := m.executePrompt(tt.line)
			got := updated.(Model)
			if got.scale != tt.scale {
				t.Errorf("scale = %s, want %s", got.scale, tt.scale)
			}
			if !got.focus.Equal(tt.focus) {
				t.Errorf("focus = %v, want %v", got.focus, tt.focus)
			}
			if (got.statusMsg != "") != tt.status {
				t.Errorf("status = %q", got.statusMsg)
			}
		})
	}
}

func TestPromptTyping(t *testing.T) {
	m := newLoadedModel(t, &fakeRepo{slots: testSlots()})

	m, _ = press(t, m, "/")
	if m.mode != ModePrompt || m.prompt.Value() != "/" {
		t.Fatalf("mode = %v, value = %q", m.mode, m.prompt.Value())
	}
	m, _ = press(t, m, "s")
	m, _ = press(t, m, "tab")
	if got := m.prompt.Value(); got != "/scale " {
		t.Fatalf("autocomplete = %q, want %q", got, "/scale ")
	}
	// Scale keys are text while the prompt is open.
	m, _ = press(t, m, "d")
	m, _ = press(t, m, "a")
	m, _ = press(t, m, "y")
	if m.scale != pill.ScaleWeek {
		t.Fatal("keys typed into the prompt changed the scale")
	}

	m, _ = press(t, m, "enter")
	if m.mode != ModeNormal || m.scale != pill.ScaleDay {
		t.Fatalf("after enter: mode = %v, scale = %s", m.mode, m.scale)
	}
}

func TestErrorShownInFooter(t *testing.T) {
	m := newLoadedModel(t, &fakeRepo{slots: testSlots()})
	m = update(t, m, commands.ErrMsg{Err: errors.New("database is locked")})

	if out := ansi.Strip(m.View()); !strings.Contains(out, "Error: database is locked") {
		t.Errorf("error missing from footer:\n%s", out)
	}
	m, _ = press(t, m, "esc")
	if m.err != nil {
		t.Error("esc should clear the error")
	}
}

func TestHelpToggle(t *testing.T) {
	m := newLoadedModel(t, &fakeRepo{slots: testSlots()})

	if out := ansi.Strip(m.View()); !strings.Contains(out, "quit") {
		t.Errorf("short help missing:\n%s", out)
	}

	m, _ = press(t, m, "?")
	out := ansi.Strip(m.View())
	for _, want := range []string{"/scale <day|week|month|year>", "delete slot", "go to date"} {
		if !strings.Contains(out, want) {
			t.Errorf("full help missing %q:\n%s", want, out)
		}
	}

	m, _ = press(t, m, "?")
	if m.help.ShowAll {
		t.Error("? should close the full help")
	}
}

func TestQuit(t *testing.T) {
	m := newLoadedModel(t, &fakeRepo{slots: testSlots()})
	_, cmd := press(t, m, "q")
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}
