package planning

import "time"

// Conflict is a pair of slots booked on the same resource at the same time.
type Conflict struct {
	First  *Slot
	Second *Slot
}

// RowSummary holds the totals of one resource in a window.
type RowSummary struct {
	Name           string
	Slots          int
	AllocatedHours float64
	ScheduledHours float64 // time covered by the slots, clipped to the window
}

// Summary aggregates the slots of a window.
type Summary struct {
	Start     time.Time
	End       time.Time
	Rows      []RowSummary
	Conflicts []Conflict
}

// TotalHours returns the allocated hours of every row.
func (s *Summary) TotalHours() float64 {
	var total float64
	for _, r := range s.Rows {
		total += r.AllocatedHours
	}
	return total
}

// OpenHours returns the allocated hours not assigned to a resource.
func (s *Summary) OpenHours() float64 {
	for _, r := range s.Rows {
		if r.Name == OpenShifts {
			return r.AllocatedHours
		}
	}
	return 0
}

// Summarize builds the summary of the slots overlapping [start, end).
// Slots outside the window are ignored.
func Summarize(slots []*Slot, start, end time.Time) *Summary {
	var inside []*Slot
	for _, s := range slots {
		if s.Overlaps(start, end) {
			inside = append(inside, s)
		}
	}

	sum := &Summary{Start: start, End: end}
	for _, r := range Rows(inside) {
		rs := RowSummary{Name: r.Name, Slots: len(r.Slots), AllocatedHours: r.TotalHours()}
		for _, s := range r.Slots {
			rs.ScheduledHours += clip(s, start, end).Hours()
		}
		sum.Rows = append(sum.Rows, rs)
		if r.Name != OpenShifts {
			sum.Conflicts = append(sum.Conflicts, rowConflicts(r.Slots)...)
		}
	}
	return sum
}

// Conflicts returns the existing slots double-booking the resource of s.
// Open shifts never conflict.
func Conflicts(s *Slot, existing []*Slot) []*Slot {
	if s.Resource == "" {
		return nil
	}
	var found []*Slot
	for _, other := range existing {
		if other.ID == s.ID && s.ID != 0 {
			continue
		}
		if other.Resource == s.Resource && overlapping(s, other) {
			found = append(found, other)
		}
	}
	return found
}

// rowConflicts expects slots sorted by start, as Rows returns them.
func rowConflicts(slots []*Slot) []Conflict {
	var conflicts []Conflict
	for i, a := range slots {
		for _, b := range slots[i+1:] {
			if !b.Start.Before(a.Stop) {
				break
			}
			if overlapping(a, b) {
				conflicts = append(conflicts, Conflict{First: a, Second: b})
			}
		}
	}
	return conflicts
}

// overlapping reports whether two slots share some time. Slots that only
// touch do not overlap, and neither do zero-length ones.
func overlapping(a, b *Slot) bool {
	return a.Start.Before(b.Stop) && b.Start.Before(a.Stop)
}

func clip(s *Slot, start, end time.Time) time.Duration {
	from, to := s.Start, s.Stop
	if from.Before(start) {
		from = start
	}
	if to.After(end) {
		to = end
	}
	if to.Before(from) {
		return 0
	}
	return to.Sub(from)
}
