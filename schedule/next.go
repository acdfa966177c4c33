package schedule

import (
	"strconv"
	"time"

	"postpilot/models"
)

// NextSlotAfter returns the earliest configured (weekday, time) occurrence
// strictly after the given instant, evaluated in after's location. It scans
// at most eight days forward, which covers a full week plus the remainder
// of the current day. The boolean is false when the groups hold no active
// slot at all.
func NextSlotAfter(groups []models.TimeSlotGroup, after time.Time) (time.Time, bool) {
	var best time.Time
	found := false

	for offset := 0; offset <= 8; offset++ {
		day := after.AddDate(0, 0, offset)
		for _, g := range groups {
			hh, mm, ok := parseTime(g.Time)
			if !ok {
				continue
			}
			candidate := time.Date(day.Year(), day.Month(), day.Day(), hh, mm, 0, 0, after.Location())
			if !candidate.After(after) {
				continue
			}
			if !activeOn(g, int(candidate.Weekday())) {
				continue
			}
			if !found || candidate.Before(best) {
				best = candidate
				found = true
			}
		}
		if found {
			// Later offsets can only produce later candidates.
			return best, true
		}
	}
	return time.Time{}, false
}

func activeOn(g models.TimeSlotGroup, dayOfWeek int) bool {
	for _, s := range g.Slots {
		if s.DayOfWeek == dayOfWeek && s.IsActive {
			return true
		}
	}
	return false
}

func parseTime(s string) (hh, mm int, ok bool) {
	if !ValidTime(s) {
		return 0, 0, false
	}
	hh, _ = strconv.Atoi(s[:2])
	mm, _ = strconv.Atoi(s[3:])
	return hh, mm, true
}
