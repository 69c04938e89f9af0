package handlers

import (
	"strings"

	"inventario/internal/models"
	"inventario/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes. Fixed paths come before /:id.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/productos")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/stock-bajo", h.HandleGetLowStockProducts)
	productRoutes.Get("/valor-inventario", h.HandleGetInventoryValue)
	productRoutes.Get("/id/:id", h.HandleGetProductByID)
	productRoutes.Get("/nombre/:nombre", h.HandleGetProductByName)
	productRoutes.Get("/precio/:precio", h.HandleGetProductsByPrice)
	productRoutes.Get("/categoria/:nombre", h.HandleGetProductsByCategory)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return err
	}
	return c.JSON(products)
}

func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := ParamID(c, "id")
	if err != nil {
		return err
	}
	product, err := h.service.GetProductByID(id)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

func (h *ProductHandler) HandleGetProductByName(c *fiber.Ctx) error {
	name, err := ParamString(c, "nombre")
	if err != nil {
		return err
	}
	product, err := h.service.GetProductByName(name)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

func (h *ProductHandler) HandleGetProductsByPrice(c *fiber.Ctx) error {
	price, err := ParamDecimal(c, "precio")
	if err != nil {
		return err
	}
	products, err := h.service.GetProductsByPrice(price)
	if err != nil {
		return err
	}
	return c.JSON(products)
}

func (h *ProductHandler) HandleGetProductsByCategory(c *fiber.Ctx) error {
	name, err := ParamString(c, "nombre")
	if err != nil {
		return err
	}
	products, err := h.service.GetProductsByCategory(name)
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// HandleGetLowStockProducts lists products at or below their minimum stock.
func (h *ProductHandler) HandleGetLowStockProducts(c *fiber.Ctx) error {
	products, err := h.service.GetLowStockProducts()
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// HandleGetInventoryValue returns the summed price * quantity of all products.
func (h *ProductHandler) HandleGetInventoryValue(c *fiber.Ctx) error {
	total, err := h.service.GetTotalInventoryValue()
	if err != nil {
		return err
	}
	return c.JSON(total)
}

func parseProduct(c *fiber.Ctx) (*models.Product, error) {
	var product models.Product
	if err := ParseBody(c, &product); err != nil {
		return nil, err
	}
	product.Name = strings.TrimSpace(product.Name)
	product.Category = nil
	if err := validateStruct(&product); err != nil {
		return nil, err
	}
	if product.Inventory != nil {
		product.Inventory.Product = nil
		if err := validateStruct(product.Inventory, "ProductID"); err != nil {
			return nil, err
		}
	}
	return &product, nil
}

func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	product, err := parseProduct(c)
	if err != nil {
		return err
	}
	if err := h.service.CreateProduct(product); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := ParamID(c, "id")
	if err != nil {
		return err
	}
	product, err := parseProduct(c)
	if err != nil {
		return err
	}
	if err := h.service.UpdateProduct(id, product); err != nil {
		return err
	}
	return c.JSON(product)
}

func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := ParamID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteProduct(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
