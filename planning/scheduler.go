package planning

import (
	"sync"
	"time"
)

// Scheduler owns all planning state: the session registry (single arena,
// keyed by id), the planning collection and the active planning selection.
// Plannings reference sessions by id only, so the registry and a planning's
// session view cannot drift apart.
//
// All operations are safe for concurrent use; mutations run one at a time
// under the write lock.
type Scheduler struct {
	mu   sync.RWMutex
	grid TimeGrid
	now  func() time.Time

	sessions map[uint]*Session
	order    []uint // registry insertion order

	plannings map[uint]*Planning
	planOrder []uint
	activeID  uint // 0 = no active planning

	nextSessionID  uint
	nextPlanningID uint
}

// NewScheduler creates an empty scheduler addressed by the given time grid.
func NewScheduler(grid TimeGrid) *Scheduler {
	return &Scheduler{
		grid:      grid,
		now:       time.Now,
		sessions:  make(map[uint]*Session),
		plannings: make(map[uint]*Planning),
	}
}

// Grid returns the static time grid the scheduler is addressed by.
func (s *Scheduler) Grid() TimeGrid {
	return s.grid
}

// ListAvailableWeeks enumerates the selectable weeks as of now.
func (s *Scheduler) ListAvailableWeeks() []Week {
	return ListAvailableWeeks(s.now())
}

// CreatePlanning creates a weekly planning for a class, resolving weekID
// against the selectable week window, and makes it the active planning.
// Creating a second planning for the same class and week is allowed; the
// reference data treats (class, week) as unique but nothing enforces it.
func (s *Scheduler) CreatePlanning(className, weekID string) (Planning, error) {
	if className == "" {
		return Planning{}, ErrMissingClassName
	}
	week, ok := findWeek(s.now(), weekID)
	if !ok {
		return Planning{}, ErrUnknownWeek
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextPlanningID++
	p := &Planning{
		ID:         s.nextPlanningID,
		ClassName:  className,
		WeekStart:  week.WeekStart,
		WeekEnd:    week.WeekEnd,
		CreatedAt:  s.now(),
		SessionIDs: []uint{},
	}
	s.plannings[p.ID] = p
	s.planOrder = append(s.planOrder, p.ID)
	s.activeID = p.ID

	return *p, nil
}

// CreateSession validates the input, stores the session in the registry and
// appends its id to the target planning: the explicit PlanningID when given,
// otherwise the active planning, otherwise none (unassigned session).
// Validation happens before any write.
func (s *Scheduler) CreateSession(in SessionInput) (Session, error) {
	if err := in.validate(); err != nil {
		return Session{}, err
	}
	start, end, _ := SplitSlotID(in.SlotID)

	s.mu.Lock()
	defer s.mu.Unlock()

	targetID := in.PlanningID
	if targetID == 0 {
		targetID = s.activeID
	} else if _, ok := s.plannings[targetID]; !ok {
		return Session{}, ErrPlanningNotFound
	}

	s.nextSessionID++
	sess := &Session{
		ID:            s.nextSessionID,
		PlanningID:    targetID,
		ClassName:     in.ClassName,
		CourseName:    in.CourseName,
		ProfessorName: in.ProfessorName,
		Room:          in.Room,
		Day:           in.Day,
		StartTime:     start,
		EndTime:       end,
		ColorTag:      normalizeColorTag(in.ColorTag, s.nextSessionID),
	}
	s.sessions[sess.ID] = sess
	s.order = append(s.order, sess.ID)

	if p, ok := s.plannings[targetID]; ok {
		p.SessionIDs = append(p.SessionIDs, sess.ID)
	}

	return *sess, nil
}

// MoveSession repositions a session onto (newDay, newSlotID), deriving the
// new time bounds by splitting the slot id. The registry record is mutated
// in place, so every derived view sees the move. The target is not checked
// against the grid: a move onto an undefined slot leaves the session absent
// from subsequent grids, matching the drop semantics of BuildGrid.
func (s *Scheduler) MoveSession(id uint, newDay, newSlotID string) error {
	start, end, ok := SplitSlotID(newSlotID)
	if !ok {
		return ErrInvalidSlotID
	}
	if newDay == "" {
		return &MissingFieldError{Field: "day"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	sess.Day = newDay
	sess.StartTime = start
	sess.EndTime = end
	return nil
}

// DeleteSession removes a session from the registry and from its owning
// planning. Deleting an unknown id is a no-op.
func (s *Scheduler) DeleteSession(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return
	}
	delete(s.sessions, id)
	s.order = removeID(s.order, id)

	if p, ok := s.plannings[sess.PlanningID]; ok {
		p.SessionIDs = removeID(p.SessionIDs, id)
	}
}

// Session returns a copy of the session with the given id.
func (s *Scheduler) Session(id uint) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, false
	}
	return *sess, true
}

// Sessions returns copies of every registered session in insertion order.
func (s *Scheduler) Sessions() []Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(s.order)
}

// PlanningSessions returns the planning's session view, derived from the
// registry by id lookup.
func (s *Scheduler) PlanningSessions(id uint) ([]Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.plannings[id]
	if !ok {
		return nil, false
	}
	return s.collect(p.SessionIDs), true
}

// Plannings returns copies of every planning in creation order.
func (s *Scheduler) Plannings() []Planning {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Planning, 0, len(s.planOrder))
	for _, id := range s.planOrder {
		out = append(out, s.copyPlanning(s.plannings[id]))
	}
	return out
}

// Planning returns a copy of the planning with the given id.
func (s *Scheduler) Planning(id uint) (Planning, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.plannings[id]
	if !ok {
		return Planning{}, false
	}
	return s.copyPlanning(p), true
}

// ActivePlanning returns the currently selected planning, if any.
func (s *Scheduler) ActivePlanning() (Planning, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.plannings[s.activeID]
	if !ok {
		return Planning{}, false
	}
	return s.copyPlanning(p), true
}

// SetActivePlanning selects the planning mutations and grid queries default
// to. Passing 0 clears the selection (queries fall back to the whole
// registry).
func (s *Scheduler) SetActivePlanning(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != 0 {
		if _, ok := s.plannings[id]; !ok {
			return ErrPlanningNotFound
		}
	}
	s.activeID = id
	return nil
}

// collect resolves ids to session copies, skipping dangling ids. Callers
// hold at least the read lock.
func (s *Scheduler) collect(ids []uint) []Session {
	out := make([]Session, 0, len(ids))
	for _, id := range ids {
		if sess, ok := s.sessions[id]; ok {
			out = append(out, *sess)
		}
	}
	return out
}

func (s *Scheduler) copyPlanning(p *Planning) Planning {
	cp := *p
	cp.SessionIDs = append([]uint(nil), p.SessionIDs...)
	return cp
}

func normalizeColorTag(tag string, id uint) string {
	for _, known := range ColorPalette {
		if tag == known {
			return tag
		}
	}
	return ColorPalette[int(id)%len(ColorPalette)]
}

func removeID(ids []uint, id uint) []uint {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
