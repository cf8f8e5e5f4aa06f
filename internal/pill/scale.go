// Package pill builds the text shown on Gantt pills.
package pill

import (
	"errors"
	"strings"
)

// ErrUnknownScale is returned when a scale name is not day, week, month or year.
var ErrUnknownScale = errors.New("scale must be one of day, week, month, year")

// Scale is the zoom level of a Gantt view.
type Scale string

// Supported scales.
const (
	ScaleDay   Scale = "day"
	ScaleWeek  Scale = "week"
	ScaleMonth Scale = "month"
	ScaleYear  Scale = "year"
)

// Scales lists every scale from the finest to the coarsest.
var Scales = []Scale{ScaleDay, ScaleWeek, ScaleMonth, ScaleYear}

// ParseScale parses a scale name, case-insensitively.
func ParseScale(s string) (Scale, error) {
	switch sc := Scale(strings.ToLower(strings.TrimSpace(s))); sc {
	case ScaleDay, ScaleWeek, ScaleMonth, ScaleYear:
		return sc, nil
	default:
		return "", ErrUnknownScale
	}
}

// String returns the scale name.
func (s Scale) String() string {
	return string(s)
}
