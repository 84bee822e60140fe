package controllers

import (
	"context"
	"scolaris_go/config"
	"scolaris_go/database"
	"time"

	"github.com/gofiber/fiber/v2"
)

type HealthController struct{}

// GetHealthStatus reports the status of the API and its backing services
func (hc *HealthController) GetHealthStatus(c *fiber.Ctx) error {
	status := "healthy"
	statusCode := fiber.StatusOK

	dbStatus := "up"
	if database.DB == nil {
		dbStatus = "down"
	} else if sqlDB, err := database.DB.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "down"
	}
	if dbStatus == "down" {
		status = "degraded"
		statusCode = fiber.StatusServiceUnavailable
	}

	redisStatus := "up"
	rc := database.GetRedisClient()
	if rc == nil {
		redisStatus = "disabled"
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := rc.Ping(ctx).Err(); err != nil {
			redisStatus = "down"
		}
	}

	return c.Status(statusCode).JSON(fiber.Map{
		"status":      status,
		"environment": config.AppConfig.AppEnv,
		"timestamp":   time.Now().Format(time.RFC3339),
		"services": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
	})
}
