package gantt

import (
	"strconv"
	"time"

	"github.com/javiermolinar/planning/internal/locale"
	"github.com/javiermolinar/planning/internal/pill"
)

// tick is a labeled instant on the time axis.
type tick struct {
	at    time.Time
	label string
}

// ticks returns the axis divisions of the view: hours for a day, days for a
// week or month, months for a year.
func ticks(v View, loc locale.Locale) []tick {
	var out []tick
	switch v.Scale {
	case pill.ScaleDay:
		for h := 0; h < 24; h += 3 {
			t := v.Start.Add(time.Duration(h) * time.Hour)
			out = append(out, tick{at: t, label: locale.Format(t, hourPattern(loc))})
		}
	case pill.ScaleWeek:
		for t := v.Start; t.Before(v.End); t = t.AddDate(0, 0, 1) {
			out = append(out, tick{at: t, label: locale.Format(t, "ddd ") + locale.Format(t, loc.YearlessDateFormat())})
		}
	case pill.ScaleMonth:
		for t := v.Start; t.Before(v.End); t = t.AddDate(0, 0, 1) {
			out = append(out, tick{at: t, label: strconv.Itoa(t.Day())})
		}
	case pill.ScaleYear:
		for t := v.Start; t.Before(v.End); t = t.AddDate(0, 1, 0) {
			out = append(out, tick{at: t, label: locale.Format(t, "MMM")})
		}
	}
	return out
}

// hourPattern keeps the locale's 12/24 hour convention without minutes.
func hourPattern(loc locale.Locale) string {
	for i := 0; i < len(loc.TimeFormat); i++ {
		if loc.TimeFormat[i] == 'h' {
			return "h A"
		}
	}
	return "HH"
}

// axis draws tick labels at their track positions. A label that would run
// into the next one is dropped.
func axis(v View, width int, loc locale.Locale) string {
	cells := make([]rune, width)
	for i := range cells {
		cells[i] = ' '
	}

	next := 0
	for _, tk := range ticks(v, loc) {
		from, _ := span(v, tk.at, tk.at, width)
		if from < next {
			continue
		}
		label := []rune(tk.label)
		if from+len(label) > width {
			continue
		}
		copy(cells[from:], label)
		next = from + len(label) + 1
	}
	return string(cells)
}
