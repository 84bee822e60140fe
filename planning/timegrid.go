package planning

import "strings"

// TimeSlot is one of the fixed daily intervals a session can be placed into.
// The ID is derived from the bounds and is the canonical cell key.
type TimeSlot struct {
	ID    string `json:"id"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// NewTimeSlot builds a slot from its bounds, deriving the canonical id.
func NewTimeSlot(start, end string) TimeSlot {
	return TimeSlot{
		ID:    start + "-" + end,
		Start: start,
		End:   end,
	}
}

// TimeGrid is the static coordinate system the planning grid is addressed by.
// Days and Slots are ordered and never mutated after construction.
type TimeGrid struct {
	Days  []string   `json:"days"`
	Slots []TimeSlot `json:"slots"`
}

// DefaultGrid returns the reference deployment catalog: six teaching days
// (Monday through Saturday, French labels) and four two-hour slots.
func DefaultGrid() TimeGrid {
	return TimeGrid{
		Days: []string{"Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi"},
		Slots: []TimeSlot{
			NewTimeSlot("08:00", "10:00"),
			NewTimeSlot("10:00", "12:00"),
			NewTimeSlot("13:00", "15:00"),
			NewTimeSlot("15:00", "17:00"),
		},
	}
}

// HasDay reports whether the label is one of the grid's weekdays.
func (g TimeGrid) HasDay(day string) bool {
	for _, d := range g.Days {
		if d == day {
			return true
		}
	}
	return false
}

// SlotByID looks up a slot by its canonical id.
func (g TimeGrid) SlotByID(id string) (TimeSlot, bool) {
	for _, s := range g.Slots {
		if s.ID == id {
			return s, true
		}
	}
	return TimeSlot{}, false
}

// SplitSlotID splits a slot id of the form "08:00-10:00" into its bounds.
// The separator is the single '-' between the two times.
func SplitSlotID(id string) (start, end string, ok bool) {
	start, end, ok = strings.Cut(id, "-")
	if !ok || start == "" || end == "" {
		return "", "", false
	}
	return start, end, true
}
