package planning

import "time"

// Selectable week window, relative to the current week.
const (
	WeeksBack  = 2
	WeeksAhead = 5
)

// Week is one selectable calendar week. ID is the ISO date of the week's
// Monday and stays stable across calls made on the same day, so a planning
// created against it remains resolvable.
type Week struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	WeekStart time.Time `json:"week_start"`
	WeekEnd   time.Time `json:"week_end"`
}

// ListAvailableWeeks enumerates the rolling window of selectable weeks around
// now: WeeksBack in the past through WeeksAhead in the future, Monday-aligned.
// Pure function of its argument; calling it twice with the same day yields
// identical ids.
func ListAvailableWeeks(now time.Time) []Week {
	monday := mondayOf(now)

	weeks := make([]Week, 0, WeeksBack+WeeksAhead+1)
	for i := -WeeksBack; i <= WeeksAhead; i++ {
		start := monday.AddDate(0, 0, 7*i)
		end := start.AddDate(0, 0, 4) // Friday
		weeks = append(weeks, Week{
			ID:        start.Format("2006-01-02"),
			Label:     "Semaine du " + start.Format("02/01/2006"),
			WeekStart: start,
			WeekEnd:   end,
		})
	}
	return weeks
}

// findWeek resolves a week id against the window visible at now.
func findWeek(now time.Time, id string) (Week, bool) {
	for _, w := range ListAvailableWeeks(now) {
		if w.ID == id {
			return w, true
		}
	}
	return Week{}, false
}

// mondayOf truncates t to midnight on the Monday of its week.
func mondayOf(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // Sunday belongs to the week that started six days earlier
	}
	return day.AddDate(0, 0, -offset)
}
