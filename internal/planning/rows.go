package planning

import (
	"sort"
	"time"

	"github.com/javiermolinar/planning/internal/pill"
)

// Row is one line of the Gantt view: a resource and its slots.
type Row struct {
	Name  string
	Slots []*Slot
}

// TotalHours returns the allocated hours of every slot in the row.
func (r Row) TotalHours() float64 {
	var total float64
	for _, s := range r.Slots {
		total += s.AllocatedHours
	}
	return total
}

// Pills converts the row's slots to pills with times in loc.
func (r Row) Pills(loc *time.Location) []pill.Pill {
	pills := make([]pill.Pill, len(r.Slots))
	for i, s := range r.Slots {
		pills[i] = s.Pill(loc)
	}
	return pills
}

// Rows groups slots by resource. The open shifts row comes first, the
// others follow by name; slots inside a row are sorted by start then ID.
func Rows(slots []*Slot) []Row {
	byName := make(map[string][]*Slot)
	for _, s := range slots {
		byName[s.RowName()] = append(byName[s.RowName()], s)
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if names[i] == OpenShifts || names[j] == OpenShifts {
			return names[i] == OpenShifts && names[j] != OpenShifts
		}
		return names[i] < names[j]
	})

	rows := make([]Row, 0, len(names))
	for _, name := range names {
		rs := byName[name]
		sort.SliceStable(rs, func(i, j int) bool {
			if !rs[i].Start.Equal(rs[j].Start) {
				return rs[i].Start.Before(rs[j].Start)
			}
			return rs[i].ID < rs[j].ID
		})
		rows = append(rows, Row{Name: name, Slots: rs})
	}
	return rows
}
