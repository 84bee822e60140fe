package planning

import "time"

// ColorPalette lists the tags a session can be rendered with. Tags carry no
// scheduling meaning.
var ColorPalette = []string{"blue", "green", "orange", "purple", "red", "teal"}

// Session is the atomic schedulable unit: one occurrence of a course for a
// class, pinned to a weekday and a time slot.
type Session struct {
	ID            uint   `json:"id"`
	PlanningID    uint   `json:"planning_id"` // 0 = unassigned, lives only in the registry
	ClassName     string `json:"class_name"`
	CourseName    string `json:"course_name"`
	ProfessorName string `json:"professor_name"`
	Room          string `json:"room"`
	Day           string `json:"day"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	ColorTag      string `json:"color_tag"`
}

// SlotID returns the grid cell key derived from the session's time bounds.
// A session whose bounds match no enumerated slot is simply not renderable.
func (s Session) SlotID() string {
	return s.StartTime + "-" + s.EndTime
}

// Planning is the weekly schedule for one class. It holds session ids only;
// the Scheduler's session map is the single owner of session records, and the
// planning's session view is derived by id lookup at read time.
type Planning struct {
	ID         uint      `json:"id"`
	ClassName  string    `json:"class_name"`
	WeekStart  time.Time `json:"week_start"`
	WeekEnd    time.Time `json:"week_end"`
	CreatedAt  time.Time `json:"created_at"`
	SessionIDs []uint    `json:"session_ids"`
}

// SessionInput carries the caller-supplied fields for a new session.
// PlanningID 0 means "attach to the active planning, if any".
type SessionInput struct {
	PlanningID    uint   `json:"planning_id"`
	ClassName     string `json:"class_name"`
	CourseName    string `json:"course_name"`
	ProfessorName string `json:"professor_name"`
	Room          string `json:"room"`
	Day           string `json:"day"`
	SlotID        string `json:"slot_id"`
	ColorTag      string `json:"color_tag"`
}

func (in SessionInput) validate() error {
	switch {
	case in.Day == "":
		return &MissingFieldError{Field: "day"}
	case in.SlotID == "":
		return &MissingFieldError{Field: "slot_id"}
	case in.ClassName == "":
		return &MissingFieldError{Field: "class_name"}
	case in.CourseName == "":
		return &MissingFieldError{Field: "course_name"}
	case in.ProfessorName == "":
		return &MissingFieldError{Field: "professor_name"}
	case in.Room == "":
		return &MissingFieldError{Field: "room"}
	}
	if _, _, ok := SplitSlotID(in.SlotID); !ok {
		return ErrInvalidSlotID
	}
	return nil
}
