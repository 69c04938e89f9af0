package gateway

import (
	"inventario/internal/business"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler serves the stock reports.
type ReportHandler struct {
	products *business.ProductService
}

func NewReportHandler(products *business.ProductService) *ReportHandler {
	return &ReportHandler{products: products}
}

func (h *ReportHandler) RegisterRoutes(router fiber.Router) {
	reportRoutes := router.Group("/reportes")
	reportRoutes.Get("/stock-bajo", h.HandleLowStock)
	reportRoutes.Get("/valor-inventario", h.HandleInventoryValue)
}

// HandleLowStock lists products at or below their minimum stock.
func (h *ReportHandler) HandleLowStock(c *fiber.Ctx) error {
	products, err := h.products.GetLowStockProducts(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// HandleInventoryValue returns the total value of the stock on hand.
func (h *ReportHandler) HandleInventoryValue(c *fiber.Ctx) error {
	total, err := h.products.GetTotalInventoryValue(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(total)
}
