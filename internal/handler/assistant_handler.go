package handler

import (
	"textile-inventory-api/internal/middleware"
	"textile-inventory-api/internal/service"
	"textile-inventory-api/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AssistantHandler struct {
	service service.AssistantService
}

func NewAssistantHandler(s service.AssistantService) *AssistantHandler {
	return &AssistantHandler{service: s}
}

func (h *AssistantHandler) GetAssistants(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	assistants, err := h.service.List(actor)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(assistants)
}

func (h *AssistantHandler) CreateAssistant(c *fiber.Ctx) error {
	var invite service.AssistantInvite
	if err := c.BodyParser(&invite); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&invite); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validator.FirstError(errs).Error()})
	}

	actor := middleware.ActorFromCtx(c)
	link, err := h.service.Register(actor, &invite)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Assistant registered", "data": link})
}

// StoreAccessRequest replaces the set of stores an assistant may touch
type StoreAccessRequest struct {
	StoreIDs []uuid.UUID `json:"store_ids"`
}

func (h *AssistantHandler) SetStoreAccess(c *fiber.Ctx) error {
	linkID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid assistant ID"})
	}

	var req StoreAccessRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	actor := middleware.ActorFromCtx(c)
	link, err := h.service.SetStoreAccess(actor, linkID, req.StoreIDs)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Store access updated", "data": link})
}

func (h *AssistantHandler) SetActive(c *fiber.Ctx) error {
	linkID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid assistant ID"})
	}

	var req SetActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	actor := middleware.ActorFromCtx(c)
	if err := h.service.SetActive(actor, linkID, req.IsActive); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Assistant updated"})
}

// SetMutedRequest silences or unmutes an assistant account
type SetMutedRequest struct {
	IsMuted bool `json:"is_muted"`
}

func (h *AssistantHandler) SetMuted(c *fiber.Ctx) error {
	linkID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid assistant ID"})
	}

	var req SetMutedRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	actor := middleware.ActorFromCtx(c)
	if err := h.service.SetMuted(actor, linkID, req.IsMuted); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Assistant updated"})
}
