package schedule

import (
	"strconv"

	"postpilot/models"
)

// Editor owns one editing session over the grid. All mutations are local
// and in-memory; nothing is persisted until the caller takes Flatten's
// output to the schedule service. Discarding the Editor discards the edits.
type Editor struct {
	rows       []Row
	activation Activation
	nextID     int
}

// NewEditor hydrates an editing session from the remote groups. Row ids are
// seeded past the hydrated ones and are never reused within the session,
// so a removed row's id cannot collide with a later AddRow.
func NewEditor(groups []models.TimeSlotGroup) *Editor {
	rows, activation := Hydrate(groups)
	return &Editor{
		rows:       rows,
		activation: activation,
		nextID:     len(rows) + 1,
	}
}

// Rows returns a copy of the current rows in display order.
func (e *Editor) Rows() []Row {
	out := make([]Row, len(e.rows))
	copy(out, e.rows)
	return out
}

// Activation returns a copy of the current activation map.
func (e *Editor) Activation() Activation {
	out := make(Activation, len(e.activation))
	for k, v := range e.activation {
		out[k] = v
	}
	return out
}

// AddRow appends a new row at the default new-row time with no active days
// and returns it. No upper bound on row count is enforced here.
func (e *Editor) AddRow() Row {
	row := Row{ID: strconv.Itoa(e.nextID), Time: NewRowTime}
	e.nextID++
	e.rows = append(e.rows, row)
	return row
}

// RemoveRow deletes the row with the given id and garbage-collects its
// activation entries. Unknown ids are a no-op.
func (e *Editor) RemoveRow(rowID string) {
	kept := e.rows[:0]
	for _, r := range e.rows {
		if r.ID != rowID {
			kept = append(kept, r)
		}
	}
	e.rows = kept
	for _, label := range Weekdays {
		delete(e.activation, Cell{Day: label, RowID: rowID})
	}
}

// SetRowTime replaces the time of the row with the given id. Row order and
// the row's day selections are untouched. Unknown ids are a no-op.
func (e *Editor) SetRowTime(rowID, newTime string) {
	for i := range e.rows {
		if e.rows[i].ID == rowID {
			e.rows[i].Time = newTime
			return
		}
	}
}

// ToggleCell flips one (weekday, row) cell. Untoggling deletes the key
// rather than storing false, so a double toggle restores the map exactly.
// The row id is deliberately not validated: a toggle racing a removal is
// harmless because Flatten only walks rows that still exist.
func (e *Editor) ToggleCell(day, rowID string) {
	key := Cell{Day: day, RowID: rowID}
	if e.activation[key] {
		delete(e.activation, key)
		return
	}
	e.activation[key] = true
}

// ClearAll resets the session to the single-default-row state. This is the
// explicit "start over" action, distinct from discarding the editor.
func (e *Editor) ClearAll() {
	e.rows = []Row{{ID: "1", Time: DefaultRowTime}}
	e.activation = make(Activation)
	e.nextID = 2
}

// Flatten produces the save payload for the current session state.
func (e *Editor) Flatten() []models.TimeSlotGroup {
	return Flatten(e.rows, e.activation)
}

// CanSave reports whether saving would persist anything. Callers must guard
// on this; an all-inactive grid flattens to an empty payload, which the
// schedule service rejects.
func (e *Editor) CanSave() bool {
	return len(e.Flatten()) > 0
}
