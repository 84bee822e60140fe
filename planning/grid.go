package planning

// Grid is the day-major projection: grid[day][slotID] -> sessions.
type Grid map[string]map[string][]Session

// SlotGrid is the slot-major projection: grid[slotID][day] -> sessions.
// It is a presentation transpose of the same session list, not a second
// maintained index.
type SlotGrid map[string]map[string][]Session

// BuildGrid projects a session list onto the time grid, keyed day-major.
// Every (day, slot) cell is present even when empty so the UI can render add
// affordances. A session whose time bounds match no enumerated slot is
// dropped silently. Cell order follows the input order; multiple sessions may
// share a cell.
//
// The grid is a pure derived view: rebuild it whenever the session list
// changes. The input is never mutated.
func BuildGrid(grid TimeGrid, sessions []Session) Grid {
	out := make(Grid, len(grid.Days))
	for _, day := range grid.Days {
		cells := make(map[string][]Session, len(grid.Slots))
		for _, slot := range grid.Slots {
			cells[slot.ID] = []Session{}
		}
		out[day] = cells
	}

	for _, s := range sessions {
		cells, ok := out[s.Day]
		if !ok {
			continue
		}
		id := s.SlotID()
		if _, ok := cells[id]; !ok {
			continue
		}
		cells[id] = append(cells[id], s)
	}

	return out
}

// BuildSlotGrid projects the same session list slot-major, for the toggled
// layout. Computed by re-indexing rather than transposing a cached Grid, so
// there is only one consistency obligation: the input list itself.
func BuildSlotGrid(grid TimeGrid, sessions []Session) SlotGrid {
	out := make(SlotGrid, len(grid.Slots))
	for _, slot := range grid.Slots {
		cells := make(map[string][]Session, len(grid.Days))
		for _, day := range grid.Days {
			cells[day] = []Session{}
		}
		out[slot.ID] = cells
	}

	for _, s := range sessions {
		cells, ok := out[s.SlotID()]
		if !ok {
			continue
		}
		if _, ok := cells[s.Day]; !ok {
			continue
		}
		cells[s.Day] = append(cells[s.Day], s)
	}

	return out
}

// CountDropped reports how many sessions of the list would be absent from a
// grid built over it (unknown day or off-grid time range). The drop itself is
// a documented soft-failure mode; this lets callers surface it.
func CountDropped(grid TimeGrid, sessions []Session) int {
	dropped := 0
	for _, s := range sessions {
		if !grid.HasDay(s.Day) {
			dropped++
			continue
		}
		if _, ok := grid.SlotByID(s.SlotID()); !ok {
			dropped++
		}
	}
	return dropped
}
