package handler

import (
	"time"

	"textile-inventory-api/internal/middleware"
	"textile-inventory-api/internal/repository"
	"textile-inventory-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ActivityHandler struct {
	service service.ActivityService
}

func NewActivityHandler(s service.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: s}
}

// parseFilter reads the ledger filter from query params.
// Dates accept YYYY-MM-DD; date_to is treated as inclusive end of day.
func parseFilter(c *fiber.Ctx) (repository.ActivityFilter, error) {
	filter := repository.ActivityFilter{
		Search:     c.Query("search"),
		ActionType: c.Query("action"),
	}

	if raw := c.Query("date_from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, err
		}
		filter.DateFrom = &t
	}
	if raw := c.Query("date_to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, err
		}
		filter.DateTo = &t
	}
	return filter, nil
}

func (h *ActivityHandler) GetActivities(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date filter, use YYYY-MM-DD"})
	}

	actor := middleware.ActorFromCtx(c)
	records, err := h.service.ListActivities(actor, filter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load activity history"})
	}
	return c.JSON(records)
}

// ExportActivities streams the filtered ledger as an xlsx download
func (h *ActivityHandler) ExportActivities(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date filter, use YYYY-MM-DD"})
	}

	actor := middleware.ActorFromCtx(c)
	data, fileName, err := h.service.ExportActivities(actor, filter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to export report"})
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="`+fileName+`"`)
	return c.Send(data)
}
