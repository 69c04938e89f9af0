package gateway

import (
	"inventario/internal/business"
	"inventario/internal/dto"
	"inventario/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	service *business.CategoryService
}

func NewCategoryHandler(service *business.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categorias")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Get("/con-productos", h.HandleGetCategoriesWithProducts)
	categoryRoutes.Get("/id/:id", h.HandleGetCategoryByID)
	categoryRoutes.Get("/nombre/:nombre", h.HandleGetCategoryByName)
	categoryRoutes.Post("/", h.HandleCreateCategory)
	categoryRoutes.Put("/:id", h.HandleUpdateCategory)
	categoryRoutes.Delete("/:id", h.HandleDeleteCategory)
}

func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(categories)
}

func (h *CategoryHandler) HandleGetCategoriesWithProducts(c *fiber.Ctx) error {
	categories, err := h.service.GetCategoriesWithProducts(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(categories)
}

func (h *CategoryHandler) HandleGetCategoryByID(c *fiber.Ctx) error {
	id, err := handlers.ParamID(c, "id")
	if err != nil {
		return err
	}
	category, err := h.service.GetCategoryByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(category)
}

func (h *CategoryHandler) HandleGetCategoryByName(c *fiber.Ctx) error {
	name, err := handlers.ParamString(c, "nombre")
	if err != nil {
		return err
	}
	category, err := h.service.GetCategoryByName(c.UserContext(), name)
	if err != nil {
		return err
	}
	return c.JSON(category)
}

func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var category dto.CategoryDTO
	if err := handlers.ParseBody(c, &category); err != nil {
		return err
	}
	created, err := h.service.CreateCategory(c.UserContext(), category)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	id, err := handlers.ParamID(c, "id")
	if err != nil {
		return err
	}
	var category dto.CategoryDTO
	if err := handlers.ParseBody(c, &category); err != nil {
		return err
	}
	updated, err := h.service.UpdateCategory(c.UserContext(), id, category)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	id, err := handlers.ParamID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteCategory(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
