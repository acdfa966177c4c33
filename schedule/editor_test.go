package schedule

import (
	"testing"

	"postpilot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededEditor() *Editor {
	return NewEditor([]models.TimeSlotGroup{
		{Time: "09:00", Slots: []models.DaySlot{{DayOfWeek: 1, IsActive: true}}},
		{Time: "15:30", Slots: []models.DaySlot{{DayOfWeek: 4, IsActive: true}}},
	})
}

func TestAddRowAppendsWithFreshID(t *testing.T) {
	editor := seededEditor()
	before := editor.Activation()

	row := editor.AddRow()

	rows := editor.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, row, rows[2])
	assert.Equal(t, NewRowTime, row.Time)
	assert.Equal(t, "3", row.ID)
	// Adding a row never touches existing day selections.
	assert.Equal(t, before, editor.Activation())
}

func TestAddRowNeverReusesRemovedIDs(t *testing.T) {
	editor := seededEditor()

	editor.RemoveRow("2")
	row := editor.AddRow()

	assert.Equal(t, "3", row.ID)
	seen := map[string]bool{}
	for _, r := range editor.Rows() {
		assert.False(t, seen[r.ID], "duplicate row id %s", r.ID)
		seen[r.ID] = true
	}
}

func TestRemoveRowGarbageCollectsActivation(t *testing.T) {
	editor := seededEditor()
	editor.ToggleCell("Mon", "2")
	editor.ToggleCell("Sat", "2")

	editor.RemoveRow("2")

	require.Len(t, editor.Rows(), 1)
	for cell := range editor.Activation() {
		assert.NotEqual(t, "2", cell.RowID)
	}
}

func TestRemoveRowUnknownIDIsNoOp(t *testing.T) {
	editor := seededEditor()
	rows := editor.Rows()
	activation := editor.Activation()

	editor.RemoveRow("99")

	assert.Equal(t, rows, editor.Rows())
	assert.Equal(t, activation, editor.Activation())
}

func TestSetRowTimePreservesActivation(t *testing.T) {
	editor := seededEditor()
	before := editor.Activation()

	editor.SetRowTime("1", "07:45")

	rows := editor.Rows()
	assert.Equal(t, "07:45", rows[0].Time)
	assert.Equal(t, "1", rows[0].ID)
	assert.Equal(t, "15:30", rows[1].Time)
	assert.Equal(t, before, editor.Activation())
}

func TestSetRowTimeUnknownIDIsNoOp(t *testing.T) {
	editor := seededEditor()
	rows := editor.Rows()

	editor.SetRowTime("99", "07:45")

	assert.Equal(t, rows, editor.Rows())
}

func TestToggleCellIsSelfInverse(t *testing.T) {
	editor := seededEditor()
	before := editor.Activation()

	editor.ToggleCell("Wed", "1")
	assert.True(t, editor.Activation()[Cell{Day: "Wed", RowID: "1"}])

	editor.ToggleCell("Wed", "1")
	assert.Equal(t, before, editor.Activation())
}

func TestToggleCellFlipsExplicitFalse(t *testing.T) {
	editor := NewEditor([]models.TimeSlotGroup{
		{Time: "09:00", Slots: []models.DaySlot{{DayOfWeek: 2, IsActive: false}}},
	})

	editor.ToggleCell("Tue", "1")

	assert.True(t, editor.Activation()[Cell{Day: "Tue", RowID: "1"}])
}

func TestClearAllResetsToDefaultRow(t *testing.T) {
	editor := seededEditor()
	editor.ToggleCell("Sun", "1")

	editor.ClearAll()

	rows := editor.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, DefaultRowTime, rows[0].Time)
	assert.Empty(t, editor.Activation())
	assert.False(t, editor.CanSave())
}

func TestCanSaveRequiresAtLeastOneActiveDay(t *testing.T) {
	editor := NewEditor(nil)
	assert.False(t, editor.CanSave())

	editor.ToggleCell("Mon", editor.Rows()[0].ID)
	assert.True(t, editor.CanSave())
}

func TestDuplicateTimesPassThroughUnmerged(t *testing.T) {
	editor := seededEditor()
	editor.SetRowTime("2", "09:00")

	groups := editor.Flatten()

	require.Len(t, groups, 2)
	assert.Equal(t, "09:00", groups[0].Time)
	assert.Equal(t, "09:00", groups[1].Time)
}
