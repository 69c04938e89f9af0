// Package gateway is the business tier's public HTTP API under /api.
package gateway

import (
	"inventario/internal/business"
	"inventario/internal/dto"
	"inventario/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles public product requests.
type ProductHandler struct {
	service *business.ProductService
}

func NewProductHandler(service *business.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/productos")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/id/:id", h.HandleGetProductByID)
	productRoutes.Get("/nombre/:nombre", h.HandleGetProductByName)
	productRoutes.Get("/precio/:precio", h.HandleGetProductsByPrice)
	productRoutes.Get("/categoria/:nombre", h.HandleGetProductsByCategory)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(products)
}

func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := handlers.ParamID(c, "id")
	if err != nil {
		return err
	}
	product, err := h.service.GetProductByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

func (h *ProductHandler) HandleGetProductByName(c *fiber.Ctx) error {
	name, err := handlers.ParamString(c, "nombre")
	if err != nil {
		return err
	}
	product, err := h.service.GetProductByName(c.UserContext(), name)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

func (h *ProductHandler) HandleGetProductsByPrice(c *fiber.Ctx) error {
	price, err := handlers.ParamDecimal(c, "precio")
	if err != nil {
		return err
	}
	products, err := h.service.GetProductsByPrice(c.UserContext(), price)
	if err != nil {
		return err
	}
	return c.JSON(products)
}

func (h *ProductHandler) HandleGetProductsByCategory(c *fiber.Ctx) error {
	name, err := handlers.ParamString(c, "nombre")
	if err != nil {
		return err
	}
	products, err := h.service.GetProductsByCategory(c.UserContext(), name)
	if err != nil {
		return err
	}
	return c.JSON(products)
}

func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req dto.ProductRequest
	if err := handlers.ParseBody(c, &req); err != nil {
		return err
	}
	product, err := h.service.CreateProduct(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := handlers.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req dto.ProductRequest
	if err := handlers.ParseBody(c, &req); err != nil {
		return err
	}
	product, err := h.service.UpdateProduct(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := handlers.ParamID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteProduct(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
