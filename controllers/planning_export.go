package controllers

import (
	"fmt"
	"scolaris_go/middleware"
	"scolaris_go/planning"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// ExportPlanning renders a planning's weekly grid as an XLSX workbook, slots
// as rows and days as columns, and streams it to the caller.
func (pc *PlanningController) ExportPlanning(c *fiber.Ctx) error {
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

	timeGrid := pc.scheduler.Grid()
	grid := planning.BuildSlotGrid(timeGrid, sessions)

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Planning"
	f.SetSheetName("Sheet1", sheet)

	// Title row
	title := fmt.Sprintf("%s - Semaine du %s", p.ClassName, p.WeekStart.Format("02/01/2006"))
	f.SetCellValue(sheet, "A1", title)

	// Header row: slot column then one column per day
	f.SetCellValue(sheet, "A2", "Créneau")
	for i, day := range timeGrid.Days {
		cell, _ := excelize.CoordinatesToCellName(i+2, 2)
		f.SetCellValue(sheet, cell, day)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(timeGrid.Days)+1, 2)
		f.SetCellStyle(sheet, "A2", endCell, headerStyle)
	}

	cellStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})

	// One row per slot
	for rowIdx, slot := range timeGrid.Slots {
		row := rowIdx + 3
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), slot.ID)

		for colIdx, day := range timeGrid.Days {
			cellSessions := grid[slot.ID][day]
			if len(cellSessions) == 0 {
				continue
			}

			lines := make([]string, 0, len(cellSessions))
			for _, s := range cellSessions {
				lines = append(lines, fmt.Sprintf("%s\n%s\n%s", s.CourseName, s.ProfessorName, s.Room))
			}

			cell, _ := excelize.CoordinatesToCellName(colIdx+2, row)
			f.SetCellValue(sheet, cell, strings.Join(lines, "\n---\n"))
			if cellStyle != 0 {
				f.SetCellStyle(sheet, cell, cell, cellStyle)
			}
		}
	}

	// Widen day columns for readability
	lastCol, _ := excelize.ColumnNumberToName(len(timeGrid.Days) + 1)
	f.SetColWidth(sheet, "A", "A", 14)
	f.SetColWidth(sheet, "B", lastCol, 28)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate export",
		})
	}

	middleware.LogActivity(c, "EXPORT", "plannings", p.ID, fiber.Map{
		"class_name": p.ClassName,
		"sessions":   len(sessions),
	})

	filename := fmt.Sprintf("planning-%s-%s-%s.xlsx",
		strings.ReplaceAll(p.ClassName, " ", "_"),
		p.WeekStart.Format("2006-01-02"),
		uuid.NewString()[:8])

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buf.Bytes())
}
