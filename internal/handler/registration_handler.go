package handler

import (
	"textile-inventory-api/internal/middleware"
	"textile-inventory-api/internal/model"
	"textile-inventory-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type RegistrationHandler struct {
	service service.RegistrationService
}

func NewRegistrationHandler(s service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{service: s}
}

// GetRegistrations lists registrations, optionally filtered by status
// GET /api/v1/registrations?status=pending
func (h *RegistrationHandler) GetRegistrations(c *fiber.Ctx) error {
	status := model.RegistrationStatus(c.Query("status"))

	regs, err := h.service.List(status)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(regs)
}

// ApproveRequest carries the initial password for the provisioned account
type ApproveRequest struct {
	InitialPassword string `json:"initial_password"`
}

func (h *RegistrationHandler) Approve(c *fiber.Ctx) error {
	regID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid registration ID"})
	}

	var req ApproveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if len(req.InitialPassword) < 6 {
		return c.Status(400).JSON(fiber.Map{"error": "Initial password must be at least 6 characters"})
	}

	actor := middleware.ActorFromCtx(c)
	owner, err := h.service.Approve(actor, regID, req.InitialPassword)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Registration approved", "data": owner.ToResponse()})
}

func (h *RegistrationHandler) Reject(c *fiber.Ctx) error {
	regID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid registration ID"})
	}

	actor := middleware.ActorFromCtx(c)
	if err := h.service.Reject(actor, regID); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Registration rejected"})
}
