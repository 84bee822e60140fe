package services

import (
	"fmt"
	"time"

	"scolaris_go/database"
	"scolaris_go/models"
	"scolaris_go/planning"
	"scolaris_go/services/websocket"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

var frenchDays = map[time.Weekday]string{
	time.Monday:    "Lundi",
	time.Tuesday:   "Mardi",
	time.Wednesday: "Mercredi",
	time.Thursday:  "Jeudi",
	time.Friday:    "Vendredi",
	time.Saturday:  "Samedi",
}

// NotificationScheduler sends daily course reminders to students whose class
// has sessions planned for the current day.
type NotificationScheduler struct {
	cron      *cron.Cron
	scheduler *planning.Scheduler
	hub       *websocket.Hub
}

// NewNotificationScheduler creates a notification scheduler bound to the
// planning scheduler and the websocket hub.
func NewNotificationScheduler(scheduler *planning.Scheduler, hub *websocket.Hub) *NotificationScheduler {
	return &NotificationScheduler{
		cron:      cron.New(),
		scheduler: scheduler,
		hub:       hub,
	}
}

// Start registers the cron entries and starts the cron runner.
func (ns *NotificationScheduler) Start() error {
	// Daily reminders at 07:00 before the first slot of the grid
	if _, err := ns.cron.AddFunc("0 7 * * *", ns.sendDailyReminders); err != nil {
		return fmt.Errorf("failed to schedule daily reminders: %v", err)
	}

	ns.cron.Start()
	logrus.Info("Notification scheduler started")
	return nil
}

// Stop stops the cron runner and waits for running jobs to finish.
func (ns *NotificationScheduler) Stop() {
	ctx := ns.cron.Stop()
	<-ctx.Done()
	logrus.Info("Notification scheduler stopped")
}

// sendDailyReminders notifies every student of a class that has at least one
// session planned for today in a planning covering the current week.
func (ns *NotificationScheduler) sendDailyReminders() {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Error("panic recovered in sendDailyReminders")
		}
	}()

	if database.DB == nil {
		logrus.Warn("Database not connected; skipping daily reminders")
		return
	}

	now := time.Now()
	day, ok := frenchDays[now.Weekday()]
	if !ok {
		// No slots on Sunday
		return
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for _, p := range ns.scheduler.Plannings() {
		// Samedi falls one day past WeekEnd (Friday) but still belongs to the week
		if today.Before(p.WeekStart) || today.After(p.WeekStart.AddDate(0, 0, 5)) {
			continue
		}

		sessions, ok := ns.scheduler.PlanningSessions(p.ID)
		if !ok {
			continue
		}

		count := 0
		for _, sess := range sessions {
			if sess.Day == day {
				count++
			}
		}
		if count == 0 {
			continue
		}

		ns.notifyClass(p.ClassName, count, day)
	}
}

// notifyClass creates a reminder notification for every student of the class
// that has a linked user account.
func (ns *NotificationScheduler) notifyClass(className string, sessionCount int, day string) {
	var class models.SchoolClass
	if err := database.DB.Where("name = ?", className).First(&class).Error; err != nil {
		logrus.WithField("class", className).Warn("Class not found for daily reminder")
		return
	}

	var students []models.Student
	if err := database.DB.Where("class_id = ? AND user_id IS NOT NULL", class.ID).Find(&students).Error; err != nil {
		logrus.WithError(err).Error("Failed to load students for daily reminder")
		return
	}

	title := fmt.Sprintf("Cours du %s", day)
	message := fmt.Sprintf("Vous avez %d cours aujourd'hui (%s). Consultez votre emploi du temps.", sessionCount, className)

	for _, student := range students {
		notification := models.Notification{
			UserID:  *student.UserID,
			Title:   title,
			Message: message,
			Type:    "info",
		}
		if err := database.DB.Create(&notification).Error; err != nil {
			logrus.WithError(err).Error("Failed to create reminder notification")
			continue
		}

		ns.hub.BroadcastToUser(notification.UserID, websocket.Message{
			Type: "notification.created",
			Data: notification,
		})
	}

	logrus.WithFields(logrus.Fields{
		"class":    className,
		"students": len(students),
		"sessions": sessionCount,
	}).Info("Daily reminders sent")
}
