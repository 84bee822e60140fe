package controllers

import (
	"scolaris_go/database"
	"scolaris_go/middleware"
	"scolaris_go/models"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type ProfessorController struct{}

// GetProfessors returns all professors with pagination
func (pc *ProfessorController) GetProfessors(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	offset := (page - 1) * limit

	var professors []models.Professor
	var total int64

	query := database.DB.Model(&models.Professor{})

	// Filter by speciality if specified
	if speciality := c.Query("speciality"); speciality != "" {
		query = query.Where("speciality LIKE ?", "%"+speciality+"%")
	}

	// Filter by active flag if specified
	if active := c.Query("active"); active != "" {
		query = query.Where("active = ?", active == "true")
	}

	query.Count(&total)

	if err := query.Preload("User").Preload("Courses").
		Offset(offset).Limit(limit).Find(&professors).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch professors",
		})
	}

	return c.JSON(fiber.Map{
		"professors": professors,
		"pagination": fiber.Map{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

// GetProfessor returns a specific professor by ID
func (pc *ProfessorController) GetProfessor(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid professor ID",
		})
	}

	var professor models.Professor
	if err := database.DB.Preload("User").Preload("Courses").First(&professor, uint(id)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Professor not found",
		})
	}

	return c.JSON(fiber.Map{
		"professor": professor,
	})
}

// CreateProfessor creates a new professor
func (pc *ProfessorController) CreateProfessor(c *fiber.Ctx) error {
	var professor models.Professor
	if err := c.BodyParser(&professor); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if professor.FirstName == "" || professor.LastName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "First name and last name are required",
		})
	}

	if err := database.DB.Create(&professor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create professor",
		})
	}

	middleware.LogActivity(c, "CREATE", "professors", professor.ID, professor)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Professor created successfully",
		"professor": professor,
	})
}

// UpdateProfessor updates an existing professor
func (pc *ProfessorController) UpdateProfessor(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid professor ID",
		})
	}

	var professor models.Professor
	if err := database.DB.First(&professor, uint(id)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Professor not found",
		})
	}

	var updateData models.Professor
	if err := c.BodyParser(&updateData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := database.DB.Model(&professor).Updates(updateData).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update professor",
		})
	}

	middleware.LogActivity(c, "UPDATE", "professors", professor.ID, updateData)

	return c.JSON(fiber.Map{
		"message":   "Professor updated successfully",
		"professor": professor,
	})
}

// DeleteProfessor deletes a professor
func (pc *ProfessorController) DeleteProfessor(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid professor ID",
		})
	}

	var professor models.Professor
	if err := database.DB.First(&professor, uint(id)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Professor not found",
		})
	}

	// Refuse deletion while courses are still assigned
	var courseCount int64
	database.DB.Model(&models.Course{}).Where("professor_id = ?", professor.ID).Count(&courseCount)
	if courseCount > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Cannot delete professor with assigned courses",
		})
	}

	if err := database.DB.Delete(&professor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete professor",
		})
	}

	middleware.LogActivity(c, "DELETE", "professors", professor.ID, professor)

	return c.JSON(fiber.Map{
		"message": "Professor deleted successfully",
	})
}
