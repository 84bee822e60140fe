package controllers

import (
	"errors"
	"testing"

	"scolaris_go/planning"

	"github.com/gofiber/fiber/v2"
)

func makeSession(id uint, class, course, professor, room string) planning.Session {
	return planning.Session{
		ID:            id,
		ClassName:     class,
		CourseName:    course,
		ProfessorName: professor,
		Room:          room,
		Day:           "Lundi",
		StartTime:     "08:00",
		EndTime:       "10:00",
	}
}

func TestFilterSessions(t *testing.T) {
	sessions := []planning.Session{
		makeSession(1, "L1-CPD", "Algorithmes", "Dr. Diallo", "B204"),
		makeSession(2, "L1-CPD", "Bases de données", "Mme Moreau", "A101"),
		makeSession(3, "L2-CPD", "Réseaux", "M. Lefèvre", "B204"),
	}

	tests := []struct {
		name    string
		q       string
		class   string
		course  string
		wantIDs []uint
	}{
		{"no filters passes everything", "", "", "", []uint{1, 2, 3}},
		{"class filter is exact", "", "L1-CPD", "", []uint{1, 2}},
		{"class filter ignores case", "", "l1-cpd", "", []uint{1, 2}},
		{"course filter", "", "", "Réseaux", []uint{3}},
		{"free text matches professor", "diallo", "", "", []uint{1}},
		{"free text matches room", "b204", "", "", []uint{1, 3}},
		{"filters combine", "b204", "L1-CPD", "", []uint{1}},
		{"no match yields empty", "amphi", "", "", []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterSessions(sessions, tt.q, tt.class, tt.course)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d sessions, want %d", len(got), len(tt.wantIDs))
			}
			for i, s := range got {
				if s.ID != tt.wantIDs[i] {
					t.Errorf("session %d: got id %d, want %d", i, s.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestFilterSessionsDoesNotMutateInput(t *testing.T) {
	sessions := []planning.Session{
		makeSession(1, "L1-CPD", "Algorithmes", "Dr. Diallo", "B204"),
		makeSession(2, "L2-CPD", "Réseaux", "M. Lefèvre", "A101"),
	}

	filterSessions(sessions, "", "L1-CPD", "")

	if sessions[0].ID != 1 || sessions[1].ID != 2 {
		t.Fatal("filterSessions mutated its input")
	}
}

func TestPlanningErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"session not found", planning.ErrSessionNotFound, fiber.StatusNotFound},
		{"planning not found", planning.ErrPlanningNotFound, fiber.StatusNotFound},
		{"unknown week", planning.ErrUnknownWeek, fiber.StatusBadRequest},
		{"invalid slot id", planning.ErrInvalidSlotID, fiber.StatusBadRequest},
		{"missing class name", planning.ErrMissingClassName, fiber.StatusBadRequest},
		{"missing field", &planning.MissingFieldError{Field: "day"}, fiber.StatusBadRequest},
		{"unexpected error", errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := planningErrorStatus(tt.err); got != tt.want {
				t.Errorf("planningErrorStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
