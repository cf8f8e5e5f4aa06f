// Package gantt renders planning rows as a text Gantt chart.
package gantt

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/planning/internal/locale"
	"github.com/javiermolinar/planning/internal/pill"
	"github.com/javiermolinar/planning/internal/planning"
	"github.com/javiermolinar/planning/internal/theme"
)

const (
	minTrackWidth = 20
	maxNameWidth  = 18
	ellipsis      = "…"
)

// Options controls how a chart is drawn.
type Options struct {
	Width        int            // total width in cells, row names included
	Locale       locale.Locale  // date formats and first weekday
	Location     *time.Location // time zone pills are shown in
	Palette      *theme.Palette // nil means the default theme
	Now          time.Time      // zero hides the today marker
	ShowTotals   bool           // append allocated hours to row names
	SelectedSlot int64          // slot drawn with the accent color, 0 for none
}

// View is the visible part of a Gantt chart: its window and labeled pills.
type View struct {
	Scale pill.Scale
	Start time.Time
	End   time.Time
	Rows  []ViewRow
}

// ViewRow is a row with its pills labeled for the view's scale.
type ViewRow struct {
	Name  string
	Hours float64
	Pills []pill.Pill
	Open  bool
}

// NewView labels the pills of rows for a window focused on focus.
func NewView(rows []planning.Row, scale pill.Scale, focus time.Time, loc locale.Locale, tz *time.Location) View {
	if tz == nil {
		tz = time.Local
	}
	start, end := planning.Window(scale, focus.In(tz), loc.FirstWeekday)

	v := View{Scale: scale, Start: start, End: end}
	for _, r := range rows {
		var visible []*planning.Slot
		for _, s := range r.Slots {
			if s.Overlaps(start, end) {
				visible = append(visible, s)
			}
		}
		if len(visible) == 0 {
			continue
		}
		row := planning.Row{Name: r.Name, Slots: visible}
		v.Rows = append(v.Rows, ViewRow{
			Name:  r.Name,
			Hours: row.TotalHours(),
			Pills: pill.Labels(row.Pills(tz), scale, loc),
			Open:  r.Name == planning.OpenShifts,
		})
	}
	return v
}

// Labels returns every pill label of the view, row by row.
func (v View) Labels() []string {
	var out []string
	for _, r := range v.Rows {
		for _, p := range r.Pills {
			if p.Label != "" {
				out = append(out, p.Label)
			}
		}
	}
	return out
}

// Render draws the chart of rows for the window focused on focus.
func Render(rows []planning.Row, scale pill.Scale, focus time.Time, opts Options) string {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return RenderView(NewView(rows, scale, focus, opts.Locale, opts.Location), opts)
}

// RenderView draws an already labeled view.
func RenderView(v View, opts Options) string {
	pal := opts.Palette
	if pal == nil {
		pal = theme.NewPalette(nil)
	}

	nameWidth := nameColumnWidth(v.Rows, opts.ShowTotals)
	trackWidth := max(opts.Width-nameWidth-1, minTrackWidth)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(pal.Accent)
	mutedStyle := lipgloss.NewStyle().Foreground(pal.FgMuted)
	nameStyle := lipgloss.NewStyle().Foreground(pal.Fg)

	var b strings.Builder
	title := planning.Title(v.Scale, v.Start, opts.Locale)
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", nameWidth+1))
	b.WriteString(mutedStyle.Render(axis(v, trackWidth, opts.Locale)))
	b.WriteString("\n")

	if marker := todayColumn(v, trackWidth, opts.Now); marker >= 0 {
		b.WriteString(strings.Repeat(" ", nameWidth+1+marker))
		b.WriteString(lipgloss.NewStyle().Foreground(pal.Today).Render("▼ today"))
		b.WriteString("\n")
	}

	if len(v.Rows) == 0 {
		b.WriteString(mutedStyle.Render("No slots in this period."))
		b.WriteString("\n")
		return b.String()
	}

	for _, r := range v.Rows {
		name := r.Name
		if opts.ShowTotals {
			name += " " + pill.Duration(r.Hours)
		}
		name = ansi.Truncate(name, nameWidth, ellipsis)

		for i, lane := range lanes(v, r.Pills, trackWidth) {
			if i == 0 {
				b.WriteString(nameStyle.Render(padRight(name, nameWidth)))
			} else {
				b.WriteString(strings.Repeat(" ", nameWidth))
			}
			b.WriteString(" ")
			b.WriteString(renderLane(lane, r.Open, trackWidth, pal, opts.SelectedSlot))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// bar is a pill placed on the track, covering cells [from, to).
type bar struct {
	pill     pill.Pill
	from, to int
}

// lanes places pills on as few lines as possible without overlaps.
func lanes(v View, pills []pill.Pill, width int) [][]bar {
	bars := make([]bar, 0, len(pills))
	for _, p := range pills {
		from, to := span(v, p.Interval.Start, p.Interval.End, width)
		bars = append(bars, bar{pill: p, from: from, to: to})
	}
	sort.SliceStable(bars, func(i, j int) bool { return bars[i].from < bars[j].from })

	var out [][]bar
	for _, br := range bars {
		placed := false
		for i, lane := range out {
			if lane[len(lane)-1].to <= br.from {
				out[i] = append(lane, br)
				placed = true
				break
			}
		}
		if !placed {
			out = append(out, []bar{br})
		}
	}
	return out
}

// span maps a time range to track cells. Every pill gets at least one cell.
func span(v View, start, end time.Time, width int) (from, to int) {
	total := v.End.Sub(v.Start).Seconds()
	pos := func(t time.Time) float64 {
		return t.Sub(v.Start).Seconds() / total * float64(width)
	}
	from = clamp(int(math.Floor(pos(start))), 0, width-1)
	to = clamp(int(math.Ceil(pos(end))), from+1, width)
	return from, to
}

func renderLane(lane []bar, open bool, width int, pal *theme.Palette, selected int64) string {
	gap := lipgloss.NewStyle().Foreground(pal.FgMuted)

	var b strings.Builder
	col := 0
	for i, br := range lane {
		if br.from > col {
			b.WriteString(gap.Render(strings.Repeat("·", br.from-col)))
		}

		bg, fg := pal.PillBg, pal.TextOnPill
		if i%2 == 1 {
			bg = pal.PillBgAlt
		}
		if open {
			bg, fg = pal.OpenBg, pal.TextOnOpen
			if i%2 == 1 {
				bg = pal.OpenBgAlt
			}
		}
		if selected != 0 && br.pill.ID == selected {
			bg, fg = pal.Accent, pal.TextOnAccent
		}

		w := br.to - br.from
		text := padRight(ansi.Truncate(br.pill.Label, w, ellipsis), w)
		b.WriteString(lipgloss.NewStyle().Background(bg).Foreground(fg).Render(text))
		col = br.to
	}
	if col < width {
		b.WriteString(gap.Render(strings.Repeat("·", width-col)))
	}
	return b.String()
}

func nameColumnWidth(rows []ViewRow, totals bool) int {
	w := len("Open shifts")
	for _, r := range rows {
		n := ansi.StringWidth(r.Name)
		if totals {
			n += 1 + len(pill.Duration(r.Hours))
		}
		w = max(w, n)
	}
	return min(w, maxNameWidth)
}

func todayColumn(v View, width int, now time.Time) int {
	if now.IsZero() || now.Before(v.Start) || !now.Before(v.End) {
		return -1
	}
	from, _ := span(v, now, now, width)
	return from
}

func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
