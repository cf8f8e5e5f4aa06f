package planning

import (
	"time"

	"github.com/javiermolinar/planning/internal/dateutil"
	"github.com/javiermolinar/planning/internal/locale"
	"github.com/javiermolinar/planning/internal/pill"
)

// Window returns the range [start, end) shown by a Gantt view focused on
// focus at the given scale. Weeks begin on firstWeekday.
func Window(scale pill.Scale, focus time.Time, firstWeekday time.Weekday) (start, end time.Time) {
	day := dateutil.TruncateToDay(focus)

	switch scale {
	case pill.ScaleDay:
		return day, day.AddDate(0, 0, 1)
	case pill.ScaleMonth:
		start = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return start, start.AddDate(0, 1, 0)
	case pill.ScaleYear:
		start = time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, day.Location())
		return start, start.AddDate(1, 0, 0)
	default:
		start = dateutil.StartOfWeek(day, firstWeekday)
		return start, start.AddDate(0, 0, 7)
	}
}

// Shift moves focus by n units of the scale. Month and year moves clamp the
// day to the target month so that Jan 31 + 1 month is Feb 29, not Mar 2.
func Shift(scale pill.Scale, focus time.Time, n int) time.Time {
	switch scale {
	case pill.ScaleDay:
		return focus.AddDate(0, 0, n)
	case pill.ScaleMonth:
		return addMonthsClamped(focus, n)
	case pill.ScaleYear:
		return addMonthsClamped(focus, 12*n)
	default:
		return focus.AddDate(0, 0, 7*n)
	}
}

func addMonthsClamped(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	target := first.AddDate(0, months, 0)
	lastDay := target.AddDate(0, 1, -1).Day()
	day := min(t.Day(), lastDay)
	return time.Date(target.Year(), target.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// Title returns the heading of the window focused on focus, with dates
// rendered in l.
func Title(scale pill.Scale, focus time.Time, l locale.Locale) string {
	start, _ := Window(scale, focus, l.FirstWeekday)
	switch scale {
	case pill.ScaleDay:
		return locale.Format(start, "dddd") + " " + l.FormatDate(start)
	case pill.ScaleMonth:
		return locale.Format(start, "MMMM YYYY")
	case pill.ScaleYear:
		return locale.Format(start, "YYYY")
	default:
		return "Week of " + l.FormatDate(start)
	}
}
