package routes

import (
	"scolaris_go/controllers"
	"scolaris_go/middleware"
	"scolaris_go/planning"
	"scolaris_go/services/websocket"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all application routes
func SetupRoutes(app *fiber.App, wsHub *websocket.Hub, scheduler *planning.Scheduler) {
	// Initialize controllers
	authController := &controllers.AuthController{}
	userController := &controllers.UserController{}
	classController := &controllers.ClassController{}
	studentController := &controllers.StudentController{}
	professorController := &controllers.ProfessorController{}
	courseController := &controllers.CourseController{}
	roomController := &controllers.RoomController{}
	logController := &controllers.LogController{}
	healthController := &controllers.HealthController{}
	notificationController := controllers.NewNotificationController(wsHub)
	planningController := controllers.NewPlanningController(scheduler, wsHub)
	wsController := controllers.NewWebSocketController(wsHub)

	// API group
	api := app.Group("/api")

	// Health check (no authentication)
	api.Get("/health", healthController.GetHealthStatus)

	// Authentication routes (no middleware)
	auth := api.Group("/auth")
	auth.Post("/login", authController.Login)
	auth.Get("/profile", middleware.JWTMiddleware(), authController.GetProfile)

	// WebSocket endpoint, JWT carried as query parameter
	app.Get("/ws", wsController.WebSocketHandler())

	// Protected routes (require authentication)
	protected := api.Group("/", middleware.JWTMiddleware())

	// Profile routes (authenticated users)
	protected.Get("/profile", authController.GetProfile)
	protected.Put("/profile/password", authController.ChangePassword)
	protected.Post("/auth/logout", authController.Logout)

	// User management routes
	users := protected.Group("/users")
	users.Get("/", middleware.RequireProfessorOrAbove(), userController.GetUsers)
	users.Get("/:id", middleware.RequireProfessorOrAbove(), userController.GetUser)
	users.Post("/", middleware.RequireDirectorOrAdmin(), authController.Register)
	users.Put("/:id", middleware.RequireDirectorOrAdmin(), userController.UpdateUser)
	users.Delete("/:id", middleware.RequireDirectorOrAdmin(), userController.DeleteUser)

	// Class management routes
	classes := protected.Group("/classes")
	classes.Get("/", classController.GetClasses)
	classes.Get("/:id", classController.GetClass)
	classes.Get("/:id/students", middleware.RequireProfessorOrAbove(), classController.GetClassStudents)
	classes.Post("/", middleware.RequireDirectorOrAdmin(), classController.CreateClass)
	classes.Put("/:id", middleware.RequireDirectorOrAdmin(), classController.UpdateClass)
	classes.Delete("/:id", middleware.RequireDirectorOrAdmin(), classController.DeleteClass)

	// Student management routes
	students := protected.Group("/students")
	students.Get("/", middleware.RequireProfessorOrAbove(), studentController.GetStudents)
	students.Get("/:id", middleware.RequireProfessorOrAbove(), studentController.GetStudent)
	students.Post("/", middleware.RequireProfessorOrAbove(), studentController.CreateStudent)
	students.Put("/:id", middleware.RequireProfessorOrAbove(), studentController.UpdateStudent)
	students.Delete("/:id", middleware.RequireDirectorOrAdmin(), studentController.DeleteStudent)

	// Professor management routes
	professors := protected.Group("/professors")
	professors.Get("/", professorController.GetProfessors)
	professors.Get("/:id", professorController.GetProfessor)
	professors.Post("/", middleware.RequireDirectorOrAdmin(), professorController.CreateProfessor)
	professors.Put("/:id", middleware.RequireDirectorOrAdmin(), professorController.UpdateProfessor)
	professors.Delete("/:id", middleware.RequireDirectorOrAdmin(), professorController.DeleteProfessor)

	// Course management routes
	courses := protected.Group("/courses")
	courses.Get("/", courseController.GetCourses)
	courses.Get("/:id", courseController.GetCourse)
	courses.Post("/", middleware.RequireDirectorOrAdmin(), courseController.CreateCourse)
	courses.Put("/:id", middleware.RequireDirectorOrAdmin(), courseController.UpdateCourse)
	courses.Delete("/:id", middleware.RequireDirectorOrAdmin(), courseController.DeleteCourse)

	// Room management routes
	rooms := protected.Group("/rooms")
	rooms.Get("/", roomController.GetRooms)
	rooms.Get("/available", roomController.GetAvailableRooms)
	rooms.Get("/:id", roomController.GetRoom)
	rooms.Post("/", middleware.RequireDirectorOrAdmin(), roomController.CreateRoom)
	rooms.Put("/:id", middleware.RequireDirectorOrAdmin(), roomController.UpdateRoom)
	rooms.Patch("/:id/status", middleware.RequireProfessorOrAbove(), roomController.UpdateRoomStatus)
	rooms.Delete("/:id", middleware.RequireDirectorOrAdmin(), roomController.DeleteRoom)

	// Weekly planning routes
	plan := protected.Group("/planning")
	plan.Get("/time-grid", planningController.GetTimeGrid)
	plan.Get("/weeks", planningController.GetWeeks)
	plan.Get("/grid", planningController.GetGrid)
	plan.Get("/plannings", planningController.GetPlannings)
	plan.Get("/plannings/:id", planningController.GetPlanning)
	plan.Get("/plannings/:id/export", middleware.RequireProfessorOrAbove(), planningController.ExportPlanning)
	plan.Post("/plannings", middleware.RequireProfessorOrAbove(), planningController.CreatePlanning)
	plan.Patch("/plannings/:id/activate", middleware.RequireProfessorOrAbove(), planningController.ActivatePlanning)
	plan.Get("/sessions", planningController.GetSessions)
	plan.Post("/sessions", middleware.RequireProfessorOrAbove(), planningController.CreateSession)
	plan.Patch("/sessions/:id/move", middleware.RequireProfessorOrAbove(), planningController.MoveSession)
	plan.Delete("/sessions/:id", middleware.RequireProfessorOrAbove(), planningController.DeleteSession)

	// Notification routes
	notifications := protected.Group("/notifications")
	notifications.Get("/", notificationController.GetNotifications)
	notifications.Get("/unread-count", notificationController.GetUnreadCount)
	notifications.Patch("/:id/read", notificationController.MarkAsRead)
	notifications.Patch("/read-all", notificationController.MarkAllAsRead)
	notifications.Post("/", middleware.RequireDirectorOrAdmin(), notificationController.CreateNotification)
	notifications.Delete("/:id", notificationController.DeleteNotification)

	// Activity log routes (director/admin only)
	logs := protected.Group("/logs", middleware.RequireDirectorOrAdmin())
	logs.Get("/", logController.GetLogs)
	logs.Post("/flush", logController.FlushLogs)

	// WebSocket stats (director/admin only)
	protected.Get("/ws/stats", middleware.RequireDirectorOrAdmin(), wsController.GetWebSocketStats)
}
