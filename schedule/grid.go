// Package schedule holds the in-memory model for the recurring weekly
// posting grid: which times of day are configured and, for each, which
// weekdays are active. Everything here is pure and synchronous; persistence
// lives in services/schedule.
package schedule

import (
	"strconv"

	"postpilot/models"
)

// Weekdays is the fixed day-label table. The index matches the external
// dayOfWeek convention (0 = Sunday) used on the wire.
var Weekdays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

const (
	// DefaultRowTime seeds the grid when no remote schedule exists.
	DefaultRowTime = "09:00"
	// NewRowTime is the time assigned to a freshly added row.
	NewRowTime = "12:00"
)

// Row is one editable line in the grid. ID is an opaque session-scoped
// token used to correlate activation state with the row; it never reaches
// the wire.
type Row struct {
	ID   string `json:"id"`
	Time string `json:"time"`
}

// Cell addresses one (weekday, row) toggle.
type Cell struct {
	Day   string
	RowID string
}

// Activation maps cells to their active flag. An absent key means inactive.
type Activation map[Cell]bool

// Hydrate builds the editable grid from the wire representation. Groups are
// assigned fresh sequential row ids in input order. Slot entries carrying
// isActive:false are recorded as false, which is indistinguishable from
// absent at flatten time. An empty input yields the single default row; the
// grid is never empty.
func Hydrate(groups []models.TimeSlotGroup) ([]Row, Activation) {
	activation := make(Activation)
	if len(groups) == 0 {
		return []Row{{ID: "1", Time: DefaultRowTime}}, activation
	}

	rows := make([]Row, 0, len(groups))
	for i, g := range groups {
		id := strconv.Itoa(i + 1)
		rows = append(rows, Row{ID: id, Time: g.Time})
		for _, s := range g.Slots {
			if s.DayOfWeek < 0 || s.DayOfWeek >= len(Weekdays) {
				continue
			}
			activation[Cell{Day: Weekdays[s.DayOfWeek], RowID: id}] = s.IsActive
		}
	}
	return rows, activation
}

// Flatten converts the grid back to the wire representation. Only active
// cells are emitted, and rows with no active weekday are dropped entirely.
// Row order is preserved; slots within a group follow weekday order.
func Flatten(rows []Row, activation Activation) []models.TimeSlotGroup {
	groups := make([]models.TimeSlotGroup, 0, len(rows))
	for _, r := range rows {
		var slots []models.DaySlot
		for day, label := range Weekdays {
			if activation[Cell{Day: label, RowID: r.ID}] {
				slots = append(slots, models.DaySlot{DayOfWeek: day, IsActive: true})
			}
		}
		if len(slots) == 0 {
			continue
		}
		groups = append(groups, models.TimeSlotGroup{Time: r.Time, Slots: slots})
	}
	return groups
}

// ValidTime reports whether s is a canonical 24-hour "HH:MM". Minute
// granularity is not restricted here: the quarter-hour steps offered by
// TimeOptions are a picker concern, and externally supplied minute values
// must round-trip unchanged.
func ValidTime(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	for _, i := range [4]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	hh := int(s[0]-'0')*10 + int(s[1]-'0')
	mm := int(s[3]-'0')*10 + int(s[4]-'0')
	return hh < 24 && mm < 60
}

// TimeOptions returns the selectable times for the picker, "00:00" through
// "23:45" in 15-minute steps.
func TimeOptions() []string {
	options := make([]string, 0, 96)
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m += 15 {
			options = append(options, formatTime(h, m))
		}
	}
	return options
}

func formatTime(h, m int) string {
	digits := func(v int) string {
		return string([]byte{byte('0' + v/10), byte('0' + v%10)})
	}
	return digits(h) + ":" + digits(m)
}
