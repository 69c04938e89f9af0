package handlers

import (
	"strings"

	"inventario/internal/models"
	"inventario/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service *services.CategoryService
}

func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
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
	categories, err := h.service.GetAllCategories()
	if err != nil {
		return err
	}
	return c.JSON(categories)
}

func (h *CategoryHandler) HandleGetCategoriesWithProducts(c *fiber.Ctx) error {
	categories, err := h.service.GetCategoriesWithProducts()
	if err != nil {
		return err
	}
	return c.JSON(categories)
}

func (h *CategoryHandler) HandleGetCategoryByID(c *fiber.Ctx) error {
	id, err := ParamID(c, "id")
	if err != nil {
		return err
	}
	category, err := h.service.GetCategoryByID(id)
	if err != nil {
		return err
	}
	return c.JSON(category)
}

func (h *CategoryHandler) HandleGetCategoryByName(c *fiber.Ctx) error {
	name, err := ParamString(c, "nombre")
	if err != nil {
		return err
	}
	category, err := h.service.GetCategoryByName(name)
	if err != nil {
		return err
	}
	return c.JSON(category)
}

func parseCategory(c *fiber.Ctx) (*models.Category, error) {
	var category models.Category
	if err := ParseBody(c, &category); err != nil {
		return nil, err
	}
	category.Name = strings.TrimSpace(category.Name)
	if err := validateStruct(&category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	category, err := parseCategory(c)
	if err != nil {
		return err
	}
	if err := h.service.CreateCategory(category); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	id, err := ParamID(c, "id")
	if err != nil {
		return err
	}
	category, err := parseCategory(c)
	if err != nil {
		return err
	}
	if err := h.service.UpdateCategory(id, category); err != nil {
		return err
	}
	return c.JSON(category)
}

func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	id, err := ParamID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteCategory(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
