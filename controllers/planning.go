package controllers

import (
	"errors"
	"scolaris_go/middleware"
	"scolaris_go/planning"
	"scolaris_go/services/websocket"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// PlanningController exposes the weekly planning board: week selection,
// planning and session mutations, and the grid views the board renders.
type PlanningController struct {
	scheduler *planning.Scheduler
	hub       *websocket.Hub
}

func NewPlanningController(scheduler *planning.Scheduler, hub *websocket.Hub) *PlanningController {
	return &PlanningController{
		scheduler: scheduler,
		hub:       hub,
	}
}

// broadcastUpdate notifies connected boards that planning state changed and
// grids should be refetched.
func (pc *PlanningController) broadcastUpdate(event string, payload interface{}) {
	pc.hub.Broadcast(websocket.Message{
		Type: "planning.updated",
		Data: fiber.Map{
			"event":   event,
			"payload": payload,
		},
	})
}

// planningErrorStatus maps scheduler errors onto HTTP statuses
func planningErrorStatus(err error) int {
	var missing *planning.MissingFieldError
	switch {
	case errors.Is(err, planning.ErrSessionNotFound),
		errors.Is(err, planning.ErrPlanningNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, planning.ErrUnknownWeek),
		errors.Is(err, planning.ErrInvalidSlotID),
		errors.Is(err, planning.ErrMissingClassName),
		errors.As(err, &missing):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// GetTimeGrid returns the static day and slot definitions of the board
func (pc *PlanningController) GetTimeGrid(c *fiber.Ctx) error {
	grid := pc.scheduler.Grid()
	return c.JSON(fiber.Map{
		"days":  grid.Days,
		"slots": grid.Slots,
	})
}

// GetWeeks returns the selectable week window
func (pc *PlanningController) GetWeeks(c *fiber.Ctx) error {
	weeks := pc.scheduler.ListAvailableWeeks()
	return c.JSON(fiber.Map{
		"weeks": weeks,
		"total": len(weeks),
	})
}

// GetGrid returns the session grid, day-major by default or slot-major with
// ?view=slot. Sessions can be filtered by planning, class, course or free
// text before projection. Off-grid sessions are omitted; their count is
// reported in the response.
func (pc *PlanningController) GetGrid(c *fiber.Ctx) error {
	sessions, err := pc.gridSessions(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Planning not found",
		})
	}

	sessions = filterSessions(sessions, c.Query("q"), c.Query("class"), c.Query("course"))
	grid := pc.scheduler.Grid()

	view := c.Query("view", "day")
	switch view {
	case "day":
		return c.JSON(fiber.Map{
			"view":    "day",
			"grid":    planning.BuildGrid(grid, sessions),
			"total":   len(sessions),
			"dropped": planning.CountDropped(grid, sessions),
		})
	case "slot":
		return c.JSON(fiber.Map{
			"view":    "slot",
			"grid":    planning.BuildSlotGrid(grid, sessions),
			"total":   len(sessions),
			"dropped": planning.CountDropped(grid, sessions),
		})
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid view. Must be: day or slot",
		})
	}
}

// gridSessions resolves the session list the grid query addresses: an
// explicit planning, the active planning, or the whole registry.
func (pc *PlanningController) gridSessions(c *fiber.Ctx) ([]planning.Session, error) {
	if planningID := c.Query("planning_id"); planningID != "" {
		id, err := strconv.ParseUint(planningID, 10, 32)
		if err != nil {
			return nil, planning.ErrPlanningNotFound
		}
		sessions, ok := pc.scheduler.PlanningSessions(uint(id))
		if !ok {
			return nil, planning.ErrPlanningNotFound
		}
		return sessions, nil
	}

	if active, ok := pc.scheduler.ActivePlanning(); ok {
		sessions, _ := pc.scheduler.PlanningSessions(active.ID)
		return sessions, nil
	}

	return pc.scheduler.Sessions(), nil
}

// filterSessions narrows a session list by class, course and free text.
// Matching is case-insensitive; empty filters pass everything through.
func filterSessions(sessions []planning.Session, q, class, course string) []planning.Session {
	if q == "" && class == "" && course == "" {
		return sessions
	}

	q = strings.ToLower(q)
	out := make([]planning.Session, 0, len(sessions))
	for _, s := range sessions {
		if class != "" && !strings.EqualFold(s.ClassName, class) {
			continue
		}
		if course != "" && !strings.EqualFold(s.CourseName, course) {
			continue
		}
		if q != "" && !sessionMatches(s, q) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func sessionMatches(s planning.Session, q string) bool {
	for _, field := range []string{s.ClassName, s.CourseName, s.ProfessorName, s.Room} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// GetPlannings returns every planning with the active selection
func (pc *PlanningController) GetPlannings(c *fiber.Ctx) error {
	plannings := pc.scheduler.Plannings()

	var activeID uint
	if active, ok := pc.scheduler.ActivePlanning(); ok {
		activeID = active.ID
	}

	return c.JSON(fiber.Map{
		"plannings": plannings,
		"active_id": activeID,
		"total":     len(plannings),
	})
}

// GetPlanning returns one planning with its resolved sessions
func (pc *PlanningController) GetPlanning(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid planning ID",
		})
	}

	p, ok := pc.scheduler.Planning(uint(id))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Planning not found",
		})
	}
	sessions, _ := pc.scheduler.PlanningSessions(p.ID)

	return c.JSON(fiber.Map{
		"planning": p,
		"sessions": sessions,
	})
}

// CreatePlanning creates a weekly planning for a class and makes it active
func (pc *PlanningController) CreatePlanning(c *fiber.Ctx) error {
	var req struct {
		ClassName string `json:"class_name" validate:"required"`
		WeekID    string `json:"week_id" validate:"required"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	p, err := pc.scheduler.CreatePlanning(req.ClassName, req.WeekID)
	if err != nil {
		return c.Status(planningErrorStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	middleware.LogActivity(c, "CREATE", "plannings", p.ID, fiber.Map{
		"class_name": p.ClassName,
		"week_id":    req.WeekID,
	})
	pc.broadcastUpdate("planning.created", p)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Planning created successfully",
		"planning": p,
	})
}

// ActivatePlanning selects the planning new sessions and grid queries default to
func (pc *PlanningController) ActivatePlanning(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid planning ID",
		})
	}

	if err := pc.scheduler.SetActivePlanning(uint(id)); err != nil {
		return c.Status(planningErrorStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	middleware.LogActivity(c, "UPDATE", "plannings", uint(id), fiber.Map{
		"action": "activate",
	})

	return c.JSON(fiber.Map{
		"message": "Planning activated successfully",
	})
}

// CreateSession registers a session and attaches it to the target planning
func (pc *PlanningController) CreateSession(c *fiber.Ctx) error {
	var in planning.SessionInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	sess, err := pc.scheduler.CreateSession(in)
	if err != nil {
		return c.Status(planningErrorStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	middleware.LogActivity(c, "CREATE", "sessions", sess.ID, sess)
	pc.broadcastUpdate("session.created", sess)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Session created successfully",
		"session": sess,
	})
}

// MoveSession repositions a session onto another day and slot
func (pc *PlanningController) MoveSession(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID",
		})
	}

	var req struct {
		Day    string `json:"day" validate:"required"`
		SlotID string `json:"slot_id" validate:"required"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := pc.scheduler.MoveSession(uint(id), req.Day, req.SlotID); err != nil {
		return c.Status(planningErrorStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	sess, _ := pc.scheduler.Session(uint(id))

	middleware.LogActivity(c, "UPDATE", "sessions", sess.ID, fiber.Map{
		"action":  "move",
		"day":     req.Day,
		"slot_id": req.SlotID,
	})
	pc.broadcastUpdate("session.moved", sess)

	return c.JSON(fiber.Map{
		"message": "Session moved successfully",
		"session": sess,
	})
}

// DeleteSession removes a session. Deleting an already removed session
// succeeds, so retried deletes stay safe.
func (pc *PlanningController) DeleteSession(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID",
		})
	}

	pc.scheduler.DeleteSession(uint(id))

	middleware.LogActivity(c, "DELETE", "sessions", uint(id), nil)
	pc.broadcastUpdate("session.deleted", fiber.Map{"id": uint(id)})

	return c.JSON(fiber.Map{
		"message": "Session deleted successfully",
	})
}

// GetSessions returns every registered session, including unassigned ones
func (pc *PlanningController) GetSessions(c *fiber.Ctx) error {
	sessions := pc.scheduler.Sessions()
	return c.JSON(fiber.Map{
		"sessions": sessions,
		"total":    len(sessions),
	})
}
