package pill

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/javiermolinar/planning/internal/locale"
)

// labelSeparator joins label fragments.
const labelSeparator = " - "

// boundaryHours is how far (in whole hours) an interval has to reach into its
// first and last day before it counts as spanning several days. Intervals
// that only graze midnight stay single-day.
const boundaryHours = 3

// Interval is the time span a pill stands for.
type Interval struct {
	Start          time.Time
	End            time.Time
	AllocatedHours float64
	DisplayName    string
}

// Pill is a bar on the Gantt view. Consolidated pills summarize several
// records and keep whatever text the renderer gives them.
type Pill struct {
	ID           int64
	Interval     Interval
	Consolidated bool
	Label        string
}

// Label returns the text for a pill drawn at the given scale.
//
// Start and End are compared in their own location, so callers pass them in
// the viewer's local time zone.
func Label(iv Interval, scale Scale, loc locale.Locale) string {
	start, end := iv.Start, iv.End
	yearless := loc.YearlessDateFormat()

	days := SpansDays(start, end)
	weeks := SpansWeeks(start, end, loc.FirstWeekday)
	months := SpansMonths(start, end)

	var parts []string

	switch {
	case scale == ScaleYear && !days:
		parts = append(parts, locale.Format(start, yearless))
	case scale == ScaleDay && days,
		scale == ScaleWeek && weeks,
		scale == ScaleMonth && months,
		scale == ScaleYear && days:
		parts = append(parts, locale.Format(start, yearless), locale.Format(end, yearless))
	}

	if !days && (scale == ScaleWeek || scale == ScaleMonth) {
		parts = append(parts,
			loc.FormatTime(start),
			loc.FormatTime(end)+" ("+Duration(iv.AllocatedHours)+")",
		)
	}

	if scale != ScaleMonth || days {
		parts = append(parts, iv.DisplayName)
	}

	return join(parts)
}

// Labels returns a copy of pills where every non-consolidated pill carries
// the label for the given scale. The input slice is left untouched.
func Labels(pills []Pill, scale Scale, loc locale.Locale) []Pill {
	out := make([]Pill, len(pills))
	for i, p := range pills {
		if !p.Consolidated {
			p.Label = Label(p.Interval, scale, loc)
		}
		out[i] = p
	}
	return out
}

func join(parts []string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, labelSeparator)
}

// SpansDays reports whether start and end fall on different days and each
// end reaches at least three hours into its own day.
func SpansDays(start, end time.Time) bool {
	if sameDay(start, end) {
		return false
	}
	endOfStartDay := startOfDay(start).AddDate(0, 0, 1).Add(-time.Millisecond)
	return wholeHours(endOfStartDay.Sub(start)) >= boundaryHours &&
		wholeHours(end.Sub(startOfDay(end))) >= boundaryHours
}

// SpansWeeks reports whether start and end fall in different calendar weeks.
func SpansWeeks(start, end time.Time, firstWeekday time.Weekday) bool {
	weeks := locale.Locale{FirstWeekday: firstWeekday}
	return !weeks.StartOfWeek(start).Equal(weeks.StartOfWeek(end))
}

// SpansMonths reports whether start and end fall in different calendar months.
func SpansMonths(start, end time.Time) bool {
	return start.Year() != end.Year() || start.Month() != end.Month()
}

// Duration renders hours the way pills show allocated time: "4h", "4h30",
// "0h15". The sign is kept for negative values.
func Duration(hours float64) string {
	return strings.NewReplacer(":00", "h", ":", "h").Replace(FloatTime(hours))
}

// FloatTime renders hours as H:MM without a leading zero on the hour.
// Minutes are rounded and 60 minutes carry into the hour.
func FloatTime(hours float64) string {
	sign := ""
	if hours < 0 {
		sign = "-"
		hours = -hours
	}
	h := math.Floor(hours)
	m := math.Round((hours - h) * 60)
	if m == 60 {
		m = 0
		h++
	}
	return fmt.Sprintf("%s%d:%02d", sign, int64(h), int64(m))
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// wholeHours truncates d to whole hours toward zero.
func wholeHours(d time.Duration) int64 {
	return int64(d / time.Hour)
}
