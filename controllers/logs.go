package controllers

import (
	"scolaris_go/database"
	"scolaris_go/middleware"
	"scolaris_go/models"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type LogController struct{}

// GetLogs returns activity logs with pagination (director/admin only)
func (lc *LogController) GetLogs(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset := (page - 1) * limit

	var logs []models.ActivityLog
	var total int64

	query := database.DB.Model(&models.ActivityLog{})

	// Filter by user if specified
	if userID := c.Query("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	// Filter by action if specified
	if action := c.Query("action"); action != "" {
		query = query.Where("action = ?", action)
	}

	// Filter by resource if specified
	if resource := c.Query("resource"); resource != "" {
		query = query.Where("resource = ?", resource)
	}

	query.Count(&total)

	if err := query.Preload("User").Order("created_at DESC").
		Offset(offset).Limit(limit).Find(&logs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch logs",
		})
	}

	return c.JSON(fiber.Map{
		"logs": logs,
		"pagination": fiber.Map{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

// FlushLogs drains the Redis activity-log queue into the database
func (lc *LogController) FlushLogs(c *fiber.Ctx) error {
	flushed, err := middleware.FlushCachedLogs()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Failed to flush cached logs: " + err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Cached logs flushed successfully",
		"flushed": flushed,
	})
}
