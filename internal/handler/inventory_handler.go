package handler

import (
	"errors"

	"textile-inventory-api/internal/middleware"
	"textile-inventory-api/internal/model"
	"textile-inventory-api/internal/repository"
	"textile-inventory-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// Helper untuk parse UUID dari string
func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

func errStatus(err error) int {
	switch {
	case errors.Is(err, repository.ErrProductNotFound), errors.Is(err, service.ErrStoreNotFound):
		return 404
	case errors.Is(err, service.ErrNotAuthorized):
		return 403
	default:
		return 400
	}
}

func (h *InventoryHandler) GetProducts(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	var storeID *uuid.UUID
	if raw := c.Query("store_id"); raw != "" {
		id, err := parseUUID(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid store ID"})
		}
		storeID = &id
	}

	products, err := h.service.ListProducts(actor, storeID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(products)
}

func (h *InventoryHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	actor := middleware.ActorFromCtx(c)
	created, err := h.service.AddProduct(actor, &product)
	if err != nil {
		return c.Status(errStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": created})
}

// UpdateQuantityRequest carries the absolute quantity to set. Negative
// values are clamped to zero, not rejected.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *InventoryHandler) UpdateQuantity(c *fiber.Ctx) error {
	productID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req UpdateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	actor := middleware.ActorFromCtx(c)
	updated, err := h.service.SetQuantity(actor, productID, req.Quantity)
	if err != nil {
		return c.Status(errStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Product quantity updated", "data": updated})
}

// AdjustQuantityRequest carries a relative change (+1/-1 buttons)
type AdjustQuantityRequest struct {
	Delta int `json:"delta"`
}

func (h *InventoryHandler) AdjustQuantity(c *fiber.Ctx) error {
	productID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req AdjustQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	actor := middleware.ActorFromCtx(c)
	updated, err := h.service.AdjustQuantity(actor, productID, req.Delta)
	if err != nil {
		return c.Status(errStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Product quantity updated", "data": updated})
}

func (h *InventoryHandler) DeleteProduct(c *fiber.Ctx) error {
	productID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	actor := middleware.ActorFromCtx(c)
	if err := h.service.DeleteProduct(actor, productID); err != nil {
		return c.Status(errStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Product deleted"})
}

func (h *InventoryHandler) GetLowStock(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	products, err := h.service.LowStock(actor)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(products)
}
