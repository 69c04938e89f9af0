package handlers

import (
	"inventario/internal/models"
	"inventario/internal/services"

	"github.com/gofiber/fiber/v2"
)

// InventoryHandler handles HTTP requests for stock records.
type InventoryHandler struct {
	service *services.InventoryService
}

func NewInventoryHandler(service *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

func (h *InventoryHandler) RegisterRoutes(router fiber.Router) {
	inventoryRoutes := router.Group("/inventario")
	inventoryRoutes.Get("/", h.HandleGetInventory)
	inventoryRoutes.Get("/stock-bajo", h.HandleGetLowStock)
	inventoryRoutes.Get("/stock-alto", h.HandleGetHighStock)
	inventoryRoutes.Get("/producto/:productoId", h.HandleGetInventoryByProduct)
	inventoryRoutes.Get("/cantidad/:cantidad", h.HandleGetInventoryByQuantity)
	inventoryRoutes.Get("/:id", h.HandleGetInventoryByID)
	inventoryRoutes.Post("/", h.HandleCreateInventory)
	inventoryRoutes.Put("/:id", h.HandleUpdateInventory)
	inventoryRoutes.Delete("/:id", h.HandleDeleteInventory)
}

func (h *InventoryHandler) HandleGetInventory(c *fiber.Ctx) error {
	inventories, err := h.service.GetAllInventory()
	if err != nil {
		return err
	}
	return c.JSON(inventories)
}

func (h *InventoryHandler) HandleGetLowStock(c *fiber.Ctx) error {
	inventories, err := h.service.GetLowStock()
	if err != nil {
		return err
	}
	return c.JSON(inventories)
}

func (h *InventoryHandler) HandleGetHighStock(c *fiber.Ctx) error {
	inventories, err := h.service.GetHighStock()
	if err != nil {
		return err
	}
	return c.JSON(inventories)
}

func (h *InventoryHandler) HandleGetInventoryByProduct(c *fiber.Ctx) error {
	productID, err := ParamID(c, "productoId")
	if err != nil {
		return err
	}
	inventory, err := h.service.GetInventoryByProductID(productID)
	if err != nil {
		return err
	}
	return c.JSON(inventory)
}

func (h *InventoryHandler) HandleGetInventoryByQuantity(c *fiber.Ctx) error {
	quantity, err := ParamInt(c, "cantidad")
	if err != nil {
		return err
	}
	inventories, err := h.service.GetInventoryByQuantity(quantity)
	if err != nil {
		return err
	}
	return c.JSON(inventories)
}

func (h *InventoryHandler) HandleGetInventoryByID(c *fiber.Ctx) error {
	id, err := ParamID(c, "id")
	if err != nil {
		return err
	}
	inventory, err := h.service.GetInventoryByID(id)
	if err != nil {
		return err
	}
	return c.JSON(inventory)
}

func parseInventory(c *fiber.Ctx) (*models.Inventory, error) {
	var inventory models.Inventory
	if err := ParseBody(c, &inventory); err != nil {
		return nil, err
	}
	inventory.Product = nil
	if err := validateStruct(&inventory); err != nil {
		return nil, err
	}
	return &inventory, nil
}

func (h *InventoryHandler) HandleCreateInventory(c *fiber.Ctx) error {
	inventory, err := parseInventory(c)
	if err != nil {
		return err
	}
	if err := h.service.CreateInventory(inventory); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(inventory)
}

func (h *InventoryHandler) HandleUpdateInventory(c *fiber.Ctx) error {
	id, err := ParamID(c, "id")
	if err != nil {
		return err
	}
	inventory, err := parseInventory(c)
	if err != nil {
		return err
	}
	if err := h.service.UpdateInventory(id, inventory); err != nil {
		return err
	}
	return c.JSON(inventory)
}

func (h *InventoryHandler) HandleDeleteInventory(c *fiber.Ctx) error {
	id, err := ParamID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteInventory(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
