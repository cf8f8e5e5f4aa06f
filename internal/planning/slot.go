// Package planning defines the planning slots drawn on the Gantt view.
package planning

import (
	"errors"
	"strings"
	"time"

	"github.com/javiermolinar/planning/internal/pill"
)

// Validation errors.
var (
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrStopBeforeStart = errors.New("stop must not be before start")
	ErrNegativeHours   = errors.New("allocated hours cannot be negative")
)

// ErrSlotNotFound is returned when a slot ID does not exist.
var ErrSlotNotFound = errors.New("slot not found")

// OpenShifts is the row name used for slots without a resource.
const OpenShifts = "Open shifts"

// Slot is a shift assigned to a resource.
type Slot struct {
	ID             int64
	Name           string
	Resource       string // empty means the slot is an open shift
	Start          time.Time
	Stop           time.Time
	AllocatedHours float64
	CreatedAt      time.Time
}

// NewSlot creates a validated slot. A negative hours value means "not given"
// and defaults the allocation to the slot duration.
func NewSlot(name, resource string, start, stop time.Time, hours float64) (*Slot, error) {
	s := &Slot{
		Name:      strings.TrimSpace(name),
		Resource:  strings.TrimSpace(resource),
		Start:     start,
		Stop:      stop,
		CreatedAt: time.Now(),
	}
	if hours < 0 {
		hours = s.DurationHours()
	}
	s.AllocatedHours = hours

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the slot invariants.
func (s *Slot) Validate() error {
	if s.Name == "" {
		return ErrEmptyName
	}
	if s.Stop.Before(s.Start) {
		return ErrStopBeforeStart
	}
	if s.AllocatedHours < 0 {
		return ErrNegativeHours
	}
	return nil
}

// DurationHours returns the time between start and stop in hours.
func (s *Slot) DurationHours() float64 {
	return s.Stop.Sub(s.Start).Hours()
}

// RowName returns the name of the Gantt row the slot belongs to.
func (s *Slot) RowName() string {
	if s.Resource == "" {
		return OpenShifts
	}
	return s.Resource
}

// Overlaps reports whether the slot intersects [start, end).
// Zero-length slots overlap when their instant lies inside the range.
func (s *Slot) Overlaps(start, end time.Time) bool {
	if s.Stop.Equal(s.Start) {
		return !s.Start.Before(start) && s.Start.Before(end)
	}
	return s.Start.Before(end) && s.Stop.After(start)
}

// Pill converts the slot to a Gantt pill with times in loc.
func (s *Slot) Pill(loc *time.Location) pill.Pill {
	return pill.Pill{
		ID: s.ID,
		Interval: pill.Interval{
			Start:          s.Start.In(loc),
			End:            s.Stop.In(loc),
			AllocatedHours: s.AllocatedHours,
			DisplayName:    s.Name,
		},
	}
}
