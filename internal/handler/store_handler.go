package handler

import (
	"textile-inventory-api/internal/middleware"
	"textile-inventory-api/internal/model"
	"textile-inventory-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StoreHandler struct {
	service service.StoreService
}

func NewStoreHandler(s service.StoreService) *StoreHandler {
	return &StoreHandler{service: s}
}

func (h *StoreHandler) GetStores(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	stores, err := h.service.ListStores(actor)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(stores)
}

func (h *StoreHandler) CreateStore(c *fiber.Ctx) error {
	var store model.Store
	if err := c.BodyParser(&store); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	actor := middleware.ActorFromCtx(c)
	created, err := h.service.AddStore(actor, &store)
	if err != nil {
		return c.Status(errStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Store created", "data": created})
}

// SetActiveRequest toggles soft activation on stores, users, assistants
type SetActiveRequest struct {
	IsActive bool `json:"is_active"`
}

func (h *StoreHandler) SetActive(c *fiber.Ctx) error {
	storeID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid store ID"})
	}

	var req SetActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	actor := middleware.ActorFromCtx(c)
	if err := h.service.SetActive(actor, storeID, req.IsActive); err != nil {
		return c.Status(errStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Store updated"})
}
