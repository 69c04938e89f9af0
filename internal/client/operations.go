package client

import (
	"context"
	"net/url"
	"strconv"

	"inventario/internal/apperrors"
	"inventario/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

func idPath(prefix string, id uint) string {
	return prefix + strconv.FormatUint(uint64(id), 10)
}

func productNotFound(key interface{}) func() error {
	return func() error { return apperrors.ProductNotFound("product %v not found", key) }
}

func categoryNotFound(key interface{}) func() error {
	return func() error { return apperrors.CategoryNotFound("category %v not found", key) }
}

func inventoryNotFound(key interface{}) func() error {
	return func() error { return apperrors.InventoryNotFound("inventory %v not found", key) }
}

func (c *DataServiceClient) getProducts(ctx context.Context, path string) ([]dto.ProductDTO, error) {
	var products []dto.ProductDTO
	if err := c.do(ctx, call{method: fiber.MethodGet, path: path, out: &products}); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *DataServiceClient) GetProducts(ctx context.Context) ([]dto.ProductDTO, error) {
	return c.getProducts(ctx, "/productos")
}

func (c *DataServiceClient) GetProduct(ctx context.Context, id uint) (*dto.ProductDTO, error) {
	var product dto.ProductDTO
	err := c.do(ctx, call{method: fiber.MethodGet, path: idPath("/productos/id/", id), out: &product, notFound: productNotFound(id)})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *DataServiceClient) GetProductByName(ctx context.Context, name string) (*dto.ProductDTO, error) {
	var product dto.ProductDTO
	err := c.do(ctx, call{method: fiber.MethodGet, path: "/productos/nombre/" + url.PathEscape(name), out: &product, notFound: productNotFound(name)})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *DataServiceClient) GetProductsByPrice(ctx context.Context, price decimal.Decimal) ([]dto.ProductDTO, error) {
	return c.getProducts(ctx, "/productos/precio/"+price.String())
}

func (c *DataServiceClient) GetProductsByCategory(ctx context.Context, categoryName string) ([]dto.ProductDTO, error) {
	return c.getProducts(ctx, "/productos/categoria/"+url.PathEscape(categoryName))
}

func (c *DataServiceClient) GetLowStockProducts(ctx context.Context) ([]dto.ProductDTO, error) {
	return c.getProducts(ctx, "/productos/stock-bajo")
}

func (c *DataServiceClient) CreateProduct(ctx context.Context, product dto.ProductDTO) (*dto.ProductDTO, error) {
	var created dto.ProductDTO
	if err := c.do(ctx, call{method: fiber.MethodPost, path: "/productos", payload: product, out: &created}); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *DataServiceClient) UpdateProduct(ctx context.Context, id uint, product dto.ProductDTO) (*dto.ProductDTO, error) {
	var updated dto.ProductDTO
	err := c.do(ctx, call{method: fiber.MethodPut, path: idPath("/productos/", id), payload: product, out: &updated, notFound: productNotFound(id)})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *DataServiceClient) DeleteProduct(ctx context.Context, id uint) error {
	return c.do(ctx, call{method: fiber.MethodDelete, path: idPath("/productos/", id), notFound: productNotFound(id)})
}

func (c *DataServiceClient) getCategories(ctx context.Context, path string) ([]dto.CategoryDTO, error) {
	var categories []dto.CategoryDTO
	if err := c.do(ctx, call{method: fiber.MethodGet, path: path, out: &categories}); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *DataServiceClient) GetCategories(ctx context.Context) ([]dto.CategoryDTO, error) {
	return c.getCategories(ctx, "/categorias")
}

func (c *DataServiceClient) GetCategoriesWithProducts(ctx context.Context) ([]dto.CategoryDTO, error) {
	return c.getCategories(ctx, "/categorias/con-productos")
}

func (c *DataServiceClient) GetCategory(ctx context.Context, id uint) (*dto.CategoryDTO, error) {
	var category dto.CategoryDTO
	err := c.do(ctx, call{method: fiber.MethodGet, path: idPath("/categorias/id/", id), out: &category, notFound: categoryNotFound(id)})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *DataServiceClient) GetCategoryByName(ctx context.Context, name string) (*dto.CategoryDTO, error) {
	var category dto.CategoryDTO
	err := c.do(ctx, call{method: fiber.MethodGet, path: "/categorias/nombre/" + url.PathEscape(name), out: &category, notFound: categoryNotFound(name)})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *DataServiceClient) CreateCategory(ctx context.Context, category dto.CategoryDTO) (*dto.CategoryDTO, error) {
	var created dto.CategoryDTO
	if err := c.do(ctx, call{method: fiber.MethodPost, path: "/categorias", payload: category, out: &created}); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *DataServiceClient) UpdateCategory(ctx context.Context, id uint, category dto.CategoryDTO) (*dto.CategoryDTO, error) {
	var updated dto.CategoryDTO
	err := c.do(ctx, call{method: fiber.MethodPut, path: idPath("/categorias/", id), payload: category, out: &updated, notFound: categoryNotFound(id)})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *DataServiceClient) DeleteCategory(ctx context.Context, id uint) error {
	return c.do(ctx, call{method: fiber.MethodDelete, path: idPath("/categorias/", id), notFound: categoryNotFound(id)})
}

func (c *DataServiceClient) getInventories(ctx context.Context, path string) ([]dto.InventoryDTO, error) {
	var inventories []dto.InventoryDTO
	if err := c.do(ctx, call{method: fiber.MethodGet, path: path, out: &inventories}); err != nil {
		return nil, err
	}
	return inventories, nil
}

func (c *DataServiceClient) GetInventories(ctx context.Context) ([]dto.InventoryDTO, error) {
	return c.getInventories(ctx, "/inventario")
}

func (c *DataServiceClient) GetLowStockInventory(ctx context.Context) ([]dto.InventoryDTO, error) {
	return c.getInventories(ctx, "/inventario/stock-bajo")
}

func (c *DataServiceClient) GetHighStockInventory(ctx context.Context) ([]dto.InventoryDTO, error) {
	return c.getInventories(ctx, "/inventario/stock-alto")
}

func (c *DataServiceClient) GetInventoryByQuantity(ctx context.Context, quantity int) ([]dto.InventoryDTO, error) {
	return c.getInventories(ctx, "/inventario/cantidad/"+strconv.Itoa(quantity))
}

func (c *DataServiceClient) GetInventory(ctx context.Context, id uint) (*dto.InventoryDTO, error) {
	var inventory dto.InventoryDTO
	err := c.do(ctx, call{method: fiber.MethodGet, path: idPath("/inventario/", id), out: &inventory, notFound: inventoryNotFound(id)})
	if err != nil {
		return nil, err
	}
	return &inventory, nil
}

func (c *DataServiceClient) GetInventoryByProduct(ctx context.Context, productID uint) (*dto.InventoryDTO, error) {
	var inventory dto.InventoryDTO
	notFound := func() error {
		return apperrors.InventoryNotFound("inventory for product %d not found", productID)
	}
	err := c.do(ctx, call{method: fiber.MethodGet, path: idPath("/inventario/producto/", productID), out: &inventory, notFound: notFound})
	if err != nil {
		return nil, err
	}
	return &inventory, nil
}

// CreateInventory maps a 404 to ProductNotFound: the data tier only answers
// 404 here when the referenced product is missing.
func (c *DataServiceClient) CreateInventory(ctx context.Context, inventory dto.InventoryDTO) (*dto.InventoryDTO, error) {
	var created dto.InventoryDTO
	err := c.do(ctx, call{method: fiber.MethodPost, path: "/inventario", payload: inventory, out: &created, notFound: productNotFound(inventory.ProductID)})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateInventory answers a 404 by looking the inventory up: the data tier
// also 404s when the referenced product is missing.
func (c *DataServiceClient) UpdateInventory(ctx context.Context, id uint, inventory dto.InventoryDTO) (*dto.InventoryDTO, error) {
	var updated dto.InventoryDTO
	notFound := func() error {
		if _, err := c.GetInventory(ctx, id); err != nil {
			return err
		}
		return productNotFound(inventory.ProductID)()
	}
	err := c.do(ctx, call{method: fiber.MethodPut, path: idPath("/inventario/", id), payload: inventory, out: &updated, notFound: notFound})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *DataServiceClient) DeleteInventory(ctx context.Context, id uint) error {
	return c.do(ctx, call{method: fiber.MethodDelete, path: idPath("/inventario/", id), notFound: inventoryNotFound(id)})
}
