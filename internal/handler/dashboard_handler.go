package handler

import (
	"textile-inventory-api/internal/middleware"
	"textile-inventory-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetStats returns the owner/assistant dashboard aggregates
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	stats, err := h.service.GetOwnerStats(actor)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load dashboard stats"})
	}
	return c.JSON(stats)
}

// GetAdminStats returns the admin overview aggregates
func (h *DashboardHandler) GetAdminStats(c *fiber.Ctx) error {
	stats, err := h.service.GetAdminStats()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load admin stats"})
	}
	return c.JSON(stats)
}
