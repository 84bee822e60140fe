package planning

import (
	"reflect"
	"testing"
)

func testSession(id uint, day, slotID string) Session {
	start, end, _ := SplitSlotID(slotID)
	return Session{
		ID:            id,
		ClassName:     "L1-CPD",
		CourseName:    "Algorithmes",
		ProfessorName: "Dr. Diallo",
		Room:          "B204",
		Day:           day,
		StartTime:     start,
		EndTime:       end,
		ColorTag:      "blue",
	}
}

func TestBuildGridPlacesSingleSession(t *testing.T) {
	grid := DefaultGrid()
	sessions := []Session{testSession(1, "Lundi", "08:00-10:00")}

	out := BuildGrid(grid, sessions)

	if len(out) != len(grid.Days) {
		t.Fatalf("expected %d day rows, got %d", len(grid.Days), len(out))
	}

	total := 0
	for _, day := range grid.Days {
		cells, ok := out[day]
		if !ok {
			t.Fatalf("missing day row %q", day)
		}
		if len(cells) != len(grid.Slots) {
			t.Fatalf("day %q: expected %d cells, got %d", day, len(grid.Slots), len(cells))
		}
		for _, slot := range grid.Slots {
			total += len(cells[slot.ID])
		}
	}
	if total != 1 {
		t.Fatalf("expected exactly 1 placed session across all cells, got %d", total)
	}

	cell := out["Lundi"]["08:00-10:00"]
	if len(cell) != 1 || cell[0].ID != 1 {
		t.Fatalf("expected session 1 in [Lundi][08:00-10:00], got %+v", cell)
	}
}

func TestBuildGridDropsOffGridSessions(t *testing.T) {
	grid := DefaultGrid()

	tests := []struct {
		name    string
		session Session
	}{
		{"unknown slot", testSession(1, "Lundi", "09:00-11:00")},
		{"unknown day", testSession(2, "Dimanche", "08:00-10:00")},
		{"empty times", Session{ID: 3, Day: "Lundi"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			out := BuildGrid(grid, []Session{tc.session})
			for day, cells := range out {
				for slotID, cell := range cells {
					if len(cell) != 0 {
						t.Fatalf("expected empty grid, found session in [%s][%s]", day, slotID)
					}
				}
			}
			if got := CountDropped(grid, []Session{tc.session}); got != 1 {
				t.Fatalf("expected 1 dropped session, got %d", got)
			}
		})
	}
}

func TestBuildGridSharedCell(t *testing.T) {
	grid := DefaultGrid()
	a := testSession(1, "Mardi", "10:00-12:00")
	b := testSession(2, "Mardi", "10:00-12:00")
	b.ClassName = "L2-GL"

	out := BuildGrid(grid, []Session{a, b})

	cell := out["Mardi"]["10:00-12:00"]
	if len(cell) != 2 {
		t.Fatalf("expected 2 sessions sharing the cell, got %d", len(cell))
	}
	// Stable append: input order is preserved.
	if cell[0].ID != 1 || cell[1].ID != 2 {
		t.Fatalf("expected input order [1 2], got [%d %d]", cell[0].ID, cell[1].ID)
	}
}

func TestBuildGridIsPure(t *testing.T) {
	grid := DefaultGrid()
	sessions := []Session{
		testSession(1, "Lundi", "08:00-10:00"),
		testSession(2, "Samedi", "15:00-17:00"),
		testSession(3, "Lundi", "99:99"), // off-grid, must not leak anywhere
	}
	snapshot := append([]Session(nil), sessions...)

	first := BuildGrid(grid, sessions)
	second := BuildGrid(grid, sessions)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("two builds over the same input differ")
	}
	if !reflect.DeepEqual(sessions, snapshot) {
		t.Fatal("BuildGrid mutated its input")
	}
}

func TestBuildSlotGridIsTranspose(t *testing.T) {
	grid := DefaultGrid()
	sessions := []Session{
		testSession(1, "Lundi", "08:00-10:00"),
		testSession(2, "Lundi", "08:00-10:00"),
		testSession(3, "Jeudi", "13:00-15:00"),
	}

	dayMajor := BuildGrid(grid, sessions)
	slotMajor := BuildSlotGrid(grid, sessions)

	for _, day := range grid.Days {
		for _, slot := range grid.Slots {
			if !reflect.DeepEqual(dayMajor[day][slot.ID], slotMajor[slot.ID][day]) {
				t.Fatalf("projection mismatch at [%s][%s]", day, slot.ID)
			}
		}
	}
}

func TestSplitSlotID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		start string
		end   string
		ok    bool
	}{
		{"valid slot", "08:00-10:00", "08:00", "10:00", true},
		{"no separator", "08:00", "", "", false},
		{"empty", "", "", "", false},
		{"missing end", "08:00-", "", "", false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			start, end, ok := SplitSlotID(tc.input)
			if ok != tc.ok || start != tc.start || end != tc.end {
				t.Fatalf("SplitSlotID(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tc.input, start, end, ok, tc.start, tc.end, tc.ok)
			}
		})
	}
}
