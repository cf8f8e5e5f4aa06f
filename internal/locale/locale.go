// Package locale holds the locale data used to render dates on the Gantt view.
package locale

import (
	"time"

	"golang.org/x/text/language"

	"github.com/javiermolinar/planning/internal/dateutil"
)

// Locale describes how dates and times are written for a language.
type Locale struct {
	Tag          language.Tag
	DateFormat   string       // short date pattern, moment "l" style (e.g. "M/D/YYYY")
	TimeFormat   string       // short time pattern, moment "LT" style (e.g. "h:mm A")
	FirstWeekday time.Weekday // first day of the calendar week
}

// Default is the locale used when nothing better matches.
var Default = Locale{
	Tag:          language.AmericanEnglish,
	DateFormat:   "M/D/YYYY",
	TimeFormat:   "h:mm A",
	FirstWeekday: time.Sunday,
}

var builtin = []Locale{
	Default,
	{Tag: language.BritishEnglish, DateFormat: "DD/MM/YYYY", TimeFormat: "HH:mm", FirstWeekday: time.Monday},
	{Tag: language.French, DateFormat: "DD/MM/YYYY", TimeFormat: "HH:mm", FirstWeekday: time.Monday},
	{Tag: language.German, DateFormat: "DD.MM.YYYY", TimeFormat: "HH:mm", FirstWeekday: time.Monday},
	{Tag: language.Spanish, DateFormat: "D/M/YYYY", TimeFormat: "H:mm", FirstWeekday: time.Monday},
	{Tag: language.Dutch, DateFormat: "D-M-YYYY", TimeFormat: "HH:mm", FirstWeekday: time.Monday},
	{Tag: language.Japanese, DateFormat: "YYYY/MM/DD", TimeFormat: "HH:mm", FirstWeekday: time.Sunday},
	{Tag: language.BrazilianPortuguese, DateFormat: "DD/MM/YYYY", TimeFormat: "HH:mm", FirstWeekday: time.Sunday},
}

var matcher = language.NewMatcher(tags())

func tags() []language.Tag {
	out := make([]language.Tag, len(builtin))
	for i, l := range builtin {
		out[i] = l.Tag
	}
	return out
}

// Lookup returns the built-in locale closest to the given BCP 47 tag.
// Unparseable or unmatched tags fall back to Default.
func Lookup(tag string) Locale {
	if tag == "" {
		return Default
	}
	t, err := language.Parse(tag)
	if err != nil {
		return Default
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return Default
	}
	return builtin[idx]
}

// Supported reports whether the tag parses as a BCP 47 language tag.
func Supported(tag string) bool {
	_, err := language.Parse(tag)
	return err == nil
}

// Available returns the tags of the built-in locales.
func Available() []string {
	out := make([]string, len(builtin))
	for i, l := range builtin {
		out[i] = l.Tag.String()
	}
	return out
}

// FormatDate formats t with the locale's short date pattern.
func (l Locale) FormatDate(t time.Time) string {
	return Format(t, l.DateFormat)
}

// FormatTime formats t with the locale's short time pattern.
func (l Locale) FormatTime(t time.Time) string {
	return Format(t, l.TimeFormat)
}

// YearlessDateFormat returns the short date pattern without its year part.
func (l Locale) YearlessDateFormat() string {
	return Yearless(l.DateFormat)
}

// StartOfWeek returns midnight of the first day of the week containing t.
func (l Locale) StartOfWeek(t time.Time) time.Time {
	return dateutil.StartOfWeek(t, l.FirstWeekday)
}
