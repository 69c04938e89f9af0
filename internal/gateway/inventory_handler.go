package gateway

import (
	"inventario/internal/business"
	"inventario/internal/dto"
	"inventario/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service *business.InventoryService
}

func NewInventoryHandler(service *business.InventoryService) *InventoryHandler {
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
	inventories, err := h.service.GetAllInventory(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(inventories)
}

func (h *InventoryHandler) HandleGetLowStock(c *fiber.Ctx) error {
	inventories, err := h.service.GetLowStock(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(inventories)
}

func (h *InventoryHandler) HandleGetHighStock(c *fiber.Ctx) error {
	inventories, err := h.service.GetHighStock(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(inventories)
}

func (h *InventoryHandler) HandleGetInventoryByProduct(c *fiber.Ctx) error {
	productID, err := handlers.ParamID(c, "productoId")
	if err != nil {
		return err
	}
	inventory, err := h.service.GetInventoryByProductID(c.UserContext(), productID)
	if err != nil {
		return err
	}
	return c.JSON(inventory)
}

func (h *InventoryHandler) HandleGetInventoryByQuantity(c *fiber.Ctx) error {
	quantity, err := handlers.ParamInt(c, "cantidad")
	if err != nil {
		return err
	}
	inventories, err := h.service.GetInventoryByQuantity(c.UserContext(), quantity)
	if err != nil {
		return err
	}
	return c.JSON(inventories)
}

func (h *InventoryHandler) HandleGetInventoryByID(c *fiber.Ctx) error {
	id, err := handlers.ParamID(c, "id")
	if err != nil {
		return err
	}
	inventory, err := h.service.GetInventoryByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(inventory)
}

func (h *InventoryHandler) HandleCreateInventory(c *fiber.Ctx) error {
	var req dto.InventoryRequest
	if err := handlers.ParseBody(c, &req); err != nil {
		return err
	}
	inventory, err := h.service.CreateInventory(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(inventory)
}

func (h *InventoryHandler) HandleUpdateInventory(c *fiber.Ctx) error {
	id, err := handlers.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req dto.InventoryRequest
	if err := handlers.ParseBody(c, &req); err != nil {
		return err
	}
	inventory, err := h.service.UpdateInventory(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(inventory)
}

func (h *InventoryHandler) HandleDeleteInventory(c *fiber.Ctx) error {
	id, err := handlers.ParamID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteInventory(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
