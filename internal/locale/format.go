package locale

import (
	"strconv"
	"strings"
	"time"
)

// tokens are the moment-style pattern tokens understood by Format, longest first
// so that "MMMM" wins over "MM" and "M".
var tokens = []string{
	"YYYY", "MMMM", "dddd",
	"MMM", "ddd",
	"YY", "MM", "DD", "Do", "HH", "hh", "mm", "ss",
	"Y", "M", "D", "d", "H", "h", "m", "s", "A", "a",
}

// Format renders t using a moment-style pattern such as "DD/MM/YYYY" or "h:mm A".
// Text inside square brackets is copied verbatim; characters that are not
// tokens are copied as they are.
func Format(t time.Time, pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		if pattern[i] == '[' {
			end := strings.IndexByte(pattern[i+1:], ']')
			if end >= 0 {
				b.WriteString(pattern[i+1 : i+1+end])
				i += end + 2
				continue
			}
		}
		tok := matchToken(pattern[i:])
		if tok == "" {
			b.WriteByte(pattern[i])
			i++
			continue
		}
		b.WriteString(renderToken(t, tok))
		i += len(tok)
	}
	return b.String()
}

func matchToken(s string) string {
	for _, tok := range tokens {
		if strings.HasPrefix(s, tok) {
			return tok
		}
	}
	return ""
}

func renderToken(t time.Time, tok string) string {
	switch tok {
	case "YYYY", "Y":
		return strconv.Itoa(t.Year())
	case "YY":
		return pad2(t.Year() % 100)
	case "MMMM":
		return t.Month().String()
	case "MMM":
		return t.Month().String()[:3]
	case "MM":
		return pad2(int(t.Month()))
	case "M":
		return strconv.Itoa(int(t.Month()))
	case "DD":
		return pad2(t.Day())
	case "D":
		return strconv.Itoa(t.Day())
	case "Do":
		return ordinal(t.Day())
	case "dddd":
		return t.Weekday().String()
	case "ddd":
		return t.Weekday().String()[:3]
	case "d":
		return strconv.Itoa(int(t.Weekday()))
	case "HH":
		return pad2(t.Hour())
	case "H":
		return strconv.Itoa(t.Hour())
	case "hh":
		return pad2(hour12(t.Hour()))
	case "h":
		return strconv.Itoa(hour12(t.Hour()))
	case "mm":
		return pad2(t.Minute())
	case "m":
		return strconv.Itoa(t.Minute())
	case "ss":
		return pad2(t.Second())
	case "s":
		return strconv.Itoa(t.Second())
	case "A":
		if t.Hour() < 12 {
			return "AM"
		}
		return "PM"
	case "a":
		if t.Hour() < 12 {
			return "am"
		}
		return "pm"
	}
	return tok
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func hour12(h int) int {
	h %= 12
	if h == 0 {
		return 12
	}
	return h
}

func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return strconv.Itoa(n) + suffix
}

// Yearless derives a pattern without the year from a short date pattern.
// All 'Y' and 'y' are removed, runs of the same separator collapse into one
// and a leftover separator at either end is dropped, so "M/D/YYYY" becomes
// "M/D" and "YYYY-MM-DD" becomes "MM-DD". Separators are cleaned up even
// when there was no year to remove.
func Yearless(pattern string) string {
	stripped := strings.Map(func(r rune) rune {
		if r == 'Y' || r == 'y' {
			return -1
		}
		return r
	}, pattern)

	runes := []rune(stripped)
	out := make([]rune, 0, len(runes))
	for _, r := range runes {
		if !isWordRune(r) && len(out) > 0 && out[len(out)-1] == r {
			continue
		}
		out = append(out, r)
	}

	if len(out) > 0 && !isWordRune(out[0]) {
		out = out[1:]
	}
	if len(out) > 0 && !isWordRune(out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return string(out)
}

// isWordRune mirrors the \w class: ASCII letters, digits and underscore.
func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
