package schedule

import "time"

// QuickPick is one named shortcut for picking a publish instant.
type QuickPick struct {
	Label string    `json:"label"`
	At    time.Time `json:"at"`
}

// QuickPicks resolves the fixed shortcut set against now. Results are
// computed fresh on every call so repeated evaluations track the clock,
// and the date math is done with AddDate so day, month and year
// boundaries roll over correctly.
func QuickPicks(now time.Time) []QuickPick {
	y, m, d := now.Date()
	loc := now.Location()

	tonight := time.Date(y, m, d, 23, 59, 0, 0, loc)
	tomorrow := time.Date(y, m, d, 9, 0, 0, 0, loc).AddDate(0, 0, 1)
	nextWeek := time.Date(y, m, d, 9, 0, 0, 0, loc).AddDate(0, 0, 7)

	return []QuickPick{
		{Label: "In 1 minute", At: now.Add(1 * time.Minute)},
		{Label: "In 3 minutes", At: now.Add(3 * time.Minute)},
		{Label: "In 15 minutes", At: now.Add(15 * time.Minute)},
		{Label: "In 30 minutes", At: now.Add(30 * time.Minute)},
		{Label: "In 1 hour", At: now.Add(time.Hour)},
		{Label: "Tonight", At: tonight},
		{Label: "Tomorrow morning", At: tomorrow},
		{Label: "Next week", At: nextWeek},
	}
}
