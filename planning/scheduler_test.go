package planning

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

// fixedNow is a Tuesday inside the week whose Monday is 2025-02-17.
var fixedNow = time.Date(2025, 2, 18, 9, 30, 0, 0, time.UTC)

func newTestScheduler() *Scheduler {
	s := NewScheduler(DefaultGrid())
	s.now = func() time.Time { return fixedNow }
	return s
}

func validInput() SessionInput {
	return SessionInput{
		ClassName:     "L1-CPD",
		CourseName:    "Algorithmes",
		ProfessorName: "Dr. Diallo",
		Room:          "B204",
		Day:           "Lundi",
		SlotID:        "08:00-10:00",
	}
}

func TestCreatePlanningResolvesWeek(t *testing.T) {
	s := newTestScheduler()

	p, err := s.CreatePlanning("L1-CPD", "2025-02-17")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ClassName != "L1-CPD" {
		t.Fatalf("expected class L1-CPD, got %q", p.ClassName)
	}
	if got := p.WeekStart.Format("2006-01-02"); got != "2025-02-17" {
		t.Fatalf("expected week start 2025-02-17, got %s", got)
	}
	if got := p.WeekEnd.Format("2006-01-02"); got != "2025-02-21" {
		t.Fatalf("expected week end on Friday 2025-02-21, got %s", got)
	}

	active, ok := s.ActivePlanning()
	if !ok || active.ID != p.ID {
		t.Fatal("new planning should become active")
	}
}

func TestCreatePlanningRejectsUnknownWeek(t *testing.T) {
	s := newTestScheduler()

	if _, err := s.CreatePlanning("L1-CPD", "1999-01-04"); !errors.Is(err, ErrUnknownWeek) {
		t.Fatalf("expected ErrUnknownWeek, got %v", err)
	}
	if _, err := s.CreatePlanning("", "2025-02-17"); !errors.Is(err, ErrMissingClassName) {
		t.Fatalf("expected ErrMissingClassName, got %v", err)
	}
	if len(s.Plannings()) != 0 {
		t.Fatal("failed creation must not register a planning")
	}
}

func TestCreatePlanningAllowsDuplicates(t *testing.T) {
	s := newTestScheduler()

	if _, err := s.CreatePlanning("L1-CPD", "2025-02-17"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.CreatePlanning("L1-CPD", "2025-02-17"); err != nil {
		t.Fatalf("duplicate (class, week) should be permitted: %v", err)
	}
	if got := len(s.Plannings()); got != 2 {
		t.Fatalf("expected 2 plannings, got %d", got)
	}
}

func TestCreateSessionAttachesToActivePlanning(t *testing.T) {
	s := newTestScheduler()
	p, _ := s.CreatePlanning("L1-CPD", "2025-02-17")

	sess, err := s.CreateSession(validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.PlanningID != p.ID {
		t.Fatalf("expected session attached to planning %d, got %d", p.ID, sess.PlanningID)
	}
	if sess.StartTime != "08:00" || sess.EndTime != "10:00" {
		t.Fatalf("slot id not split into bounds: %q-%q", sess.StartTime, sess.EndTime)
	}

	view, ok := s.PlanningSessions(p.ID)
	if !ok || len(view) != 1 || view[0].ID != sess.ID {
		t.Fatalf("planning view should hold the new session, got %+v", view)
	}
}

func TestCreateSessionWithoutPlanningStaysUnassigned(t *testing.T) {
	s := newTestScheduler()

	sess, err := s.CreateSession(validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.PlanningID != 0 {
		t.Fatalf("expected unassigned session, got planning %d", sess.PlanningID)
	}
	if got := len(s.Sessions()); got != 1 {
		t.Fatalf("registry should hold the session, got %d", got)
	}
}

func TestCreateSessionValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SessionInput)
	}{
		{"missing day", func(in *SessionInput) { in.Day = "" }},
		{"missing slot", func(in *SessionInput) { in.SlotID = "" }},
		{"missing class", func(in *SessionInput) { in.ClassName = "" }},
		{"missing course", func(in *SessionInput) { in.CourseName = "" }},
		{"missing professor", func(in *SessionInput) { in.ProfessorName = "" }},
		{"missing room", func(in *SessionInput) { in.Room = "" }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s := newTestScheduler()
			in := validInput()
			tc.mutate(&in)

			if _, err := s.CreateSession(in); err == nil {
				t.Fatal("expected validation error")
			}
			if got := len(s.Sessions()); got != 0 {
				t.Fatalf("rejected input must not write state, registry has %d sessions", got)
			}
		})
	}

	t.Run("malformed slot id", func(t *testing.T) {
		s := newTestScheduler()
		in := validInput()
		in.SlotID = "0800"
		if _, err := s.CreateSession(in); !errors.Is(err, ErrInvalidSlotID) {
			t.Fatalf("expected ErrInvalidSlotID, got %v", err)
		}
	})

	t.Run("unknown target planning", func(t *testing.T) {
		s := newTestScheduler()
		in := validInput()
		in.PlanningID = 42
		if _, err := s.CreateSession(in); !errors.Is(err, ErrPlanningNotFound) {
			t.Fatalf("expected ErrPlanningNotFound, got %v", err)
		}
	})
}

func TestMoveSessionRepositionsInGrid(t *testing.T) {
	s := newTestScheduler()
	s.CreatePlanning("L1-CPD", "2025-02-17")
	sess, _ := s.CreateSession(validInput())

	if err := s.MoveSession(sess.ID, "Mercredi", "13:00-15:00"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	grid := BuildGrid(s.Grid(), s.Sessions())
	if got := len(grid["Lundi"]["08:00-10:00"]); got != 0 {
		t.Fatalf("prior cell should be empty, holds %d", got)
	}
	target := grid["Mercredi"]["13:00-15:00"]
	if len(target) != 1 || target[0].ID != sess.ID {
		t.Fatalf("expected session %d in target cell, got %+v", sess.ID, target)
	}
}

func TestMoveSessionAllSlotPairs(t *testing.T) {
	s := newTestScheduler()
	sess, _ := s.CreateSession(validInput())
	grid := s.Grid()

	prevDay, prevSlot := "Lundi", "08:00-10:00"
	for _, day := range grid.Days {
		for _, slot := range grid.Slots {
			if err := s.MoveSession(sess.ID, day, slot.ID); err != nil {
				t.Fatalf("move to (%s, %s): %v", day, slot.ID, err)
			}
			out := BuildGrid(grid, s.Sessions())
			if day != prevDay || slot.ID != prevSlot {
				if len(out[prevDay][prevSlot]) != 0 {
					t.Fatalf("session still present at prior cell (%s, %s)", prevDay, prevSlot)
				}
			}
			if len(out[day][slot.ID]) != 1 {
				t.Fatalf("session missing from target cell (%s, %s)", day, slot.ID)
			}
			prevDay, prevSlot = day, slot.ID
		}
	}
}

func TestMoveSessionNotFound(t *testing.T) {
	s := newTestScheduler()
	s.CreatePlanning("L1-CPD", "2025-02-17")
	sess, _ := s.CreateSession(validInput())

	if err := s.MoveSession(999, "Mardi", "10:00-12:00"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	// The failed lookup must not have touched the existing session.
	unchanged, _ := s.Session(sess.ID)
	if unchanged.Day != "Lundi" || unchanged.SlotID() != "08:00-10:00" {
		t.Fatalf("existing session was mutated: %+v", unchanged)
	}
}

func TestMoveSessionRejectsMalformedTarget(t *testing.T) {
	s := newTestScheduler()
	sess, _ := s.CreateSession(validInput())

	if err := s.MoveSession(sess.ID, "Mardi", "1000"); !errors.Is(err, ErrInvalidSlotID) {
		t.Fatalf("expected ErrInvalidSlotID, got %v", err)
	}
	unchanged, _ := s.Session(sess.ID)
	if unchanged.SlotID() != "08:00-10:00" {
		t.Fatalf("malformed move must short-circuit before writing, got %s", unchanged.SlotID())
	}
}

func TestMoveSessionOffGridDisappearsFromGrid(t *testing.T) {
	s := newTestScheduler()
	sess, _ := s.CreateSession(validInput())

	// Reference behavior: the move succeeds but the session no longer maps
	// onto any enumerated cell.
	if err := s.MoveSession(sess.ID, "Lundi", "09:00-11:00"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := CountDropped(s.Grid(), s.Sessions()); got != 1 {
		t.Fatalf("expected 1 dropped session, got %d", got)
	}
}

func TestDeleteSession(t *testing.T) {
	s := newTestScheduler()
	p, _ := s.CreatePlanning("L1-CPD", "2025-02-17")
	kept, _ := s.CreateSession(validInput())
	doomed, _ := s.CreateSession(validInput())

	s.DeleteSession(doomed.ID)

	view, _ := s.PlanningSessions(p.ID)
	if len(view) != 1 || view[0].ID != kept.ID {
		t.Fatalf("planning should hold only session %d, got %+v", kept.ID, view)
	}

	grid := BuildGrid(s.Grid(), s.Sessions())
	for day, cells := range grid {
		for slotID, cell := range cells {
			for _, sess := range cell {
				if sess.ID == doomed.ID {
					t.Fatalf("deleted session still present at [%s][%s]", day, slotID)
				}
			}
		}
	}

	// Idempotent: deleting again is a no-op.
	s.DeleteSession(doomed.ID)
	if got := len(s.Sessions()); got != 1 {
		t.Fatalf("expected 1 session after double delete, got %d", got)
	}
}

// The planning's own id list and the registry filtered by planning id must
// always project to the same grid.
func TestPlanningViewMatchesFilteredRegistry(t *testing.T) {
	s := newTestScheduler()
	p, _ := s.CreatePlanning("L1-CPD", "2025-02-17")
	s.CreateSession(validInput())
	second := validInput()
	second.Day = "Jeudi"
	second.SlotID = "15:00-17:00"
	moved, _ := s.CreateSession(second)
	s.MoveSession(moved.ID, "Vendredi", "10:00-12:00")

	var filtered []Session
	for _, sess := range s.Sessions() {
		if sess.PlanningID == p.ID {
			filtered = append(filtered, sess)
		}
	}
	view, _ := s.PlanningSessions(p.ID)

	fromRegistry := BuildGrid(s.Grid(), filtered)
	fromPlanning := BuildGrid(s.Grid(), view)
	if !reflect.DeepEqual(fromRegistry, fromPlanning) {
		t.Fatal("registry-filtered grid and planning-view grid diverged")
	}
}

func TestSetActivePlanning(t *testing.T) {
	s := newTestScheduler()
	first, _ := s.CreatePlanning("L1-CPD", "2025-02-17")
	s.CreatePlanning("L2-GL", "2025-02-24")

	if err := s.SetActivePlanning(first.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	active, _ := s.ActivePlanning()
	if active.ID != first.ID {
		t.Fatalf("expected active planning %d, got %d", first.ID, active.ID)
	}

	if err := s.SetActivePlanning(999); !errors.Is(err, ErrPlanningNotFound) {
		t.Fatalf("expected ErrPlanningNotFound, got %v", err)
	}

	if err := s.SetActivePlanning(0); err != nil {
		t.Fatalf("clearing the selection should succeed: %v", err)
	}
	if _, ok := s.ActivePlanning(); ok {
		t.Fatal("expected no active planning after clearing")
	}
}

func TestColorTagAssignment(t *testing.T) {
	s := newTestScheduler()

	in := validInput()
	in.ColorTag = "green"
	tagged, _ := s.CreateSession(in)
	if tagged.ColorTag != "green" {
		t.Fatalf("expected requested tag to stick, got %q", tagged.ColorTag)
	}

	in = validInput()
	in.ColorTag = "chartreuse" // not in the palette
	fallback, _ := s.CreateSession(in)
	found := false
	for _, known := range ColorPalette {
		if fallback.ColorTag == known {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a palette tag, got %q", fallback.ColorTag)
	}
}

// The L1-CPD scenario from the reference deployment: one session in
// [Lundi][08:00-10:00], the other 23 cells empty, then moved to
// (Mercredi, 13:00-15:00).
func TestReferenceScenario(t *testing.T) {
	s := newTestScheduler()
	if _, err := s.CreatePlanning("L1-CPD", "2025-02-17"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sess, err := s.CreateSession(validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	grid := BuildGrid(s.Grid(), s.Sessions())
	occupied := 0
	for _, cells := range grid {
		for _, cell := range cells {
			occupied += len(cell)
		}
	}
	if occupied != 1 || len(grid["Lundi"]["08:00-10:00"]) != 1 {
		t.Fatalf("expected exactly one occupied cell at [Lundi][08:00-10:00], total %d", occupied)
	}

	if err := s.MoveSession(sess.ID, "Mercredi", "13:00-15:00"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	grid = BuildGrid(s.Grid(), s.Sessions())
	if len(grid["Lundi"]["08:00-10:00"]) != 0 {
		t.Fatal("origin cell should be empty after the move")
	}
	if len(grid["Mercredi"]["13:00-15:00"]) != 1 {
		t.Fatal("target cell should hold the moved session")
	}
}
