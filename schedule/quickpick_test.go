package schedule

import (
	"testing"
	"time"

	"postpilot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pick(t *testing.T, picks []QuickPick, label string) QuickPick {
	t.Helper()
	for _, p := range picks {
		if p.Label == label {
			return p
		}
	}
	t.Fatalf("quick pick %q not found", label)
	return QuickPick{}
}

func TestQuickPicksRelativeOffsets(t *testing.T) {
	now := time.Date(2025, time.June, 10, 14, 20, 0, 0, time.UTC)
	picks := QuickPicks(now)

	assert.Equal(t, now.Add(1*time.Minute), pick(t, picks, "In 1 minute").At)
	assert.Equal(t, now.Add(3*time.Minute), pick(t, picks, "In 3 minutes").At)
	assert.Equal(t, now.Add(15*time.Minute), pick(t, picks, "In 15 minutes").At)
	assert.Equal(t, now.Add(30*time.Minute), pick(t, picks, "In 30 minutes").At)
	assert.Equal(t, now.Add(time.Hour), pick(t, picks, "In 1 hour").At)
}

func TestQuickPicksNamedInstants(t *testing.T) {
	now := time.Date(2025, time.June, 10, 14, 20, 0, 0, time.UTC)
	picks := QuickPicks(now)

	assert.Equal(t, time.Date(2025, time.June, 10, 23, 59, 0, 0, time.UTC), pick(t, picks, "Tonight").At)
	assert.Equal(t, time.Date(2025, time.June, 11, 9, 0, 0, 0, time.UTC), pick(t, picks, "Tomorrow morning").At)
	assert.Equal(t, time.Date(2025, time.June, 17, 9, 0, 0, 0, time.UTC), pick(t, picks, "Next week").At)
}

func TestQuickPicksRollOverYearBoundary(t *testing.T) {
	now := time.Date(2025, time.December, 31, 23, 0, 0, 0, time.UTC)
	picks := QuickPicks(now)

	tomorrow := pick(t, picks, "Tomorrow morning").At
	assert.Equal(t, time.Date(2026, time.January, 1, 9, 0, 0, 0, time.UTC), tomorrow)

	nextWeek := pick(t, picks, "Next week").At
	assert.Equal(t, time.Date(2026, time.January, 7, 9, 0, 0, 0, time.UTC), nextWeek)
}

func TestQuickPicksTrackTheClock(t *testing.T) {
	first := QuickPicks(time.Date(2025, time.June, 10, 8, 0, 0, 0, time.UTC))
	second := QuickPicks(time.Date(2025, time.June, 10, 8, 5, 0, 0, time.UTC))

	assert.NotEqual(t, pick(t, first, "In 1 minute").At, pick(t, second, "In 1 minute").At)
}

func TestNextSlotAfterPicksEarliestUpcoming(t *testing.T) {
	groups := []models.TimeSlotGroup{
		{Time: "09:00", Slots: []models.DaySlot{
			{DayOfWeek: 1, IsActive: true}, // Mon
			{DayOfWeek: 3, IsActive: true}, // Wed
		}},
		{Time: "17:30", Slots: []models.DaySlot{
			{DayOfWeek: 1, IsActive: true}, // Mon
		}},
	}

	// Monday 10:00: the 09:00 slot has passed, 17:30 today is next.
	monday := time.Date(2025, time.June, 9, 10, 0, 0, 0, time.UTC)
	next, ok := NextSlotAfter(groups, monday)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.June, 9, 17, 30, 0, 0, time.UTC), next)

	// Monday 18:00: everything today has passed, Wednesday 09:00 is next.
	evening := time.Date(2025, time.June, 9, 18, 0, 0, 0, time.UTC)
	next, ok = NextSlotAfter(groups, evening)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.June, 11, 9, 0, 0, 0, time.UTC), next)
}

func TestNextSlotAfterExactMatchIsExcluded(t *testing.T) {
	groups := []models.TimeSlotGroup{
		{Time: "09:00", Slots: []models.DaySlot{{DayOfWeek: 1, IsActive: true}}},
	}

	// Exactly at the slot: "strictly after" means next week's occurrence.
	at := time.Date(2025, time.June, 9, 9, 0, 0, 0, time.UTC)
	next, ok := NextSlotAfter(groups, at)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.June, 16, 9, 0, 0, 0, time.UTC), next)
}

func TestNextSlotAfterNoActiveSlots(t *testing.T) {
	_, ok := NextSlotAfter(nil, time.Now())
	assert.False(t, ok)

	inactive := []models.TimeSlotGroup{
		{Time: "09:00", Slots: []models.DaySlot{{DayOfWeek: 1, IsActive: false}}},
	}
	_, ok = NextSlotAfter(inactive, time.Now())
	assert.False(t, ok)
}
