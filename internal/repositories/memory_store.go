package repositories

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"inventario/internal/models"

	"github.com/shopspring/decimal"
)

// MemoryStore is an in-memory implementation of the three repositories.
// One lock guards all tables so cross-table writes (product with inventory,
// category detach) stay consistent.
type MemoryStore struct {
	mu          sync.RWMutex
	products    map[uint]models.Product
	categories  map[uint]models.Category
	inventories map[uint]models.Inventory
	nextID      struct{ product, category, inventory uint }
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products:    make(map[uint]models.Product),
		categories:  make(map[uint]models.Category),
		inventories: make(map[uint]models.Inventory),
	}
}

func (s *MemoryStore) Products() ProductRepository      { return memoryProducts{s} }
func (s *MemoryStore) Categories() CategoryRepository   { return memoryCategories{s} }
func (s *MemoryStore) Inventories() InventoryRepository { return memoryInventories{s} }

func sortedKeys[V any](m map[uint]V) []uint {
	return slices.Sorted(maps.Keys(m))
}

func notFound(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

func duplicate(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrDuplicate)
}

// inventoryOf returns the inventory row of a product. Callers hold the lock.
func (s *MemoryStore) inventoryOf(productID uint) (models.Inventory, bool) {
	for _, inv := range s.inventories {
		if inv.ProductID == productID {
			return inv, true
		}
	}
	return models.Inventory{}, false
}

// withRelations attaches category and inventory the way the GORM
// repository preloads them. Callers hold the lock.
func (s *MemoryStore) withRelations(p models.Product) models.Product {
	p.Category = nil
	p.Inventory = nil
	if p.CategoryID != nil {
		if c, ok := s.categories[*p.CategoryID]; ok {
			p.Category = &c
		}
	}
	if inv, ok := s.inventoryOf(p.ID); ok {
		p.Inventory = &inv
	}
	return p
}

func (s *MemoryStore) withProduct(inv models.Inventory) models.Inventory {
	inv.Product = nil
	if p, ok := s.products[inv.ProductID]; ok {
		p.Category = nil
		p.Inventory = nil
		inv.Product = &p
	}
	return inv
}

func (s *MemoryStore) filterProducts(keep func(models.Product) bool) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]models.Product, 0)
	for _, id := range sortedKeys(s.products) {
		p := s.withRelations(s.products[id])
		if keep(p) {
			list = append(list, p)
		}
	}
	return list
}

func (s *MemoryStore) filterInventories(keep func(models.Inventory) bool) []models.Inventory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]models.Inventory, 0)
	for _, id := range sortedKeys(s.inventories) {
		inv := s.inventories[id]
		if keep(inv) {
			list = append(list, s.withProduct(inv))
		}
	}
	return list
}

// putInventory stores inv for productID, replacing any existing row. Callers
// hold the write lock.
func (s *MemoryStore) putInventory(productID uint, inv *models.Inventory) {
	inv.ProductID = productID
	if existing, ok := s.inventoryOf(productID); ok {
		inv.ID = existing.ID
	} else {
		s.nextID.inventory++
		inv.ID = s.nextID.inventory
	}
	row := *inv
	row.Product = nil
	s.inventories[row.ID] = row
}

type memoryProducts struct{ s *MemoryStore }

func (r memoryProducts) GetAll() ([]models.Product, error) {
	return r.s.filterProducts(func(models.Product) bool { return true }), nil
}

func (r memoryProducts) GetByID(id uint) (*models.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.products[id]
	if !ok {
		return nil, notFound("product with ID %d", id)
	}
	p = r.s.withRelations(p)
	return &p, nil
}

func (r memoryProducts) GetByName(name string) (*models.Product, error) {
	found := r.s.filterProducts(func(p models.Product) bool { return p.Name == name })
	if len(found) == 0 {
		return nil, notFound("product named %q", name)
	}
	return &found[0], nil
}

func (r memoryProducts) GetByPrice(price decimal.Decimal) ([]models.Product, error) {
	return r.s.filterProducts(func(p models.Product) bool { return p.Price.Equal(price) }), nil
}

func (r memoryProducts) GetByCategoryName(name string) ([]models.Product, error) {
	return r.s.filterProducts(func(p models.Product) bool {
		return p.Category != nil && p.Category.Name == name
	}), nil
}

func (r memoryProducts) nameTaken(name string, except uint) bool {
	for id, p := range r.s.products {
		if id != except && p.Name == name {
			return true
		}
	}
	return false
}

func (r memoryProducts) Create(product *models.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.nameTaken(product.Name, 0) {
		return duplicate("product named %q", product.Name)
	}
	r.s.nextID.product++
	product.ID = r.s.nextID.product

	row := *product
	row.Category = nil
	row.Inventory = nil
	r.s.products[row.ID] = row

	if product.Inventory != nil {
		r.s.putInventory(product.ID, product.Inventory)
	}
	return nil
}

func (r memoryProducts) Update(product *models.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[product.ID]; !ok {
		return notFound("product with ID %d", product.ID)
	}
	if r.nameTaken(product.Name, product.ID) {
		return duplicate("product named %q", product.Name)
	}

	row := *product
	row.Category = nil
	row.Inventory = nil
	r.s.products[row.ID] = row

	if product.Inventory != nil {
		r.s.putInventory(product.ID, product.Inventory)
	}
	*product = r.s.withRelations(row)
	return nil
}

func (r memoryProducts) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[id]; !ok {
		return notFound("product with ID %d", id)
	}
	if inv, ok := r.s.inventoryOf(id); ok {
		delete(r.s.inventories, inv.ID)
	}
	delete(r.s.products, id)
	return nil
}

func (r memoryProducts) Exists(id uint) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.products[id]
	return ok, nil
}

type memoryCategories struct{ s *MemoryStore }

func (r memoryCategories) filter(keep func(models.Category) bool) []models.Category {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	list := make([]models.Category, 0)
	for _, id := range sortedKeys(r.s.categories) {
		c := r.s.categories[id]
		if keep(c) {
			list = append(list, c)
		}
	}
	return list
}

func (r memoryCategories) GetAll() ([]models.Category, error) {
	return r.filter(func(models.Category) bool { return true }), nil
}

func (r memoryCategories) GetByID(id uint) (*models.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.categories[id]
	if !ok {
		return nil, notFound("category with ID %d", id)
	}
	return &c, nil
}

func (r memoryCategories) GetByName(name string) (*models.Category, error) {
	found := r.filter(func(c models.Category) bool { return c.Name == name })
	if len(found) == 0 {
		return nil, notFound("category named %q", name)
	}
	return &found[0], nil
}

func (r memoryCategories) GetWithProducts() ([]models.Category, error) {
	return r.filter(func(c models.Category) bool {
		for _, p := range r.s.products {
			if p.CategoryID != nil && *p.CategoryID == c.ID {
				return true
			}
		}
		return false
	}), nil
}

func (r memoryCategories) nameTaken(name string, except uint) bool {
	for id, c := range r.s.categories {
		if id != except && c.Name == name {
			return true
		}
	}
	return false
}

func (r memoryCategories) Create(category *models.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.nameTaken(category.Name, 0) {
		return duplicate("category named %q", category.Name)
	}
	r.s.nextID.category++
	category.ID = r.s.nextID.category
	r.s.categories[category.ID] = *category
	return nil
}

func (r memoryCategories) Update(category *models.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.categories[category.ID]; !ok {
		return notFound("category with ID %d", category.ID)
	}
	if r.nameTaken(category.Name, category.ID) {
		return duplicate("category named %q", category.Name)
	}
	r.s.categories[category.ID] = *category
	return nil
}

func (r memoryCategories) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.categories[id]; !ok {
		return notFound("category with ID %d", id)
	}
	for pid, p := range r.s.products {
		if p.CategoryID != nil && *p.CategoryID == id {
			p.CategoryID = nil
			r.s.products[pid] = p
		}
	}
	delete(r.s.categories, id)
	return nil
}

func (r memoryCategories) Exists(id uint) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.categories[id]
	return ok, nil
}

type memoryInventories struct{ s *MemoryStore }

func (r memoryInventories) GetAll() ([]models.Inventory, error) {
	return r.s.filterInventories(func(models.Inventory) bool { return true }), nil
}

func (r memoryInventories) GetByID(id uint) (*models.Inventory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	inv, ok := r.s.inventories[id]
	if !ok {
		return nil, notFound("inventory with ID %d", id)
	}
	inv = r.s.withProduct(inv)
	return &inv, nil
}

func (r memoryInventories) GetByProductID(productID uint) (*models.Inventory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	inv, ok := r.s.inventoryOf(productID)
	if !ok {
		return nil, notFound("inventory of product %d", productID)
	}
	inv = r.s.withProduct(inv)
	return &inv, nil
}

func (r memoryInventories) GetByQuantity(quantity int) ([]models.Inventory, error) {
	return r.s.filterInventories(func(inv models.Inventory) bool { return inv.Quantity == quantity }), nil
}

func (r memoryInventories) GetLowStock() ([]models.Inventory, error) {
	return r.s.filterInventories(func(inv models.Inventory) bool { return inv.IsLowStock() }), nil
}

func (r memoryInventories) GetHighStock() ([]models.Inventory, error) {
	return r.s.filterInventories(func(inv models.Inventory) bool { return !inv.IsLowStock() }), nil
}

func (r memoryInventories) Create(inventory *models.Inventory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.inventoryOf(inventory.ProductID); ok {
		return duplicate("inventory of product %d", inventory.ProductID)
	}
	r.s.nextID.inventory++
	inventory.ID = r.s.nextID.inventory
	row := *inventory
	row.Product = nil
	r.s.inventories[row.ID] = row
	return nil
}

func (r memoryInventories) Update(inventory *models.Inventory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.inventories[inventory.ID]; !ok {
		return notFound("inventory with ID %d", inventory.ID)
	}
	if other, ok := r.s.inventoryOf(inventory.ProductID); ok && other.ID != inventory.ID {
		return duplicate("inventory of product %d", inventory.ProductID)
	}
	row := *inventory
	row.Product = nil
	r.s.inventories[row.ID] = row
	return nil
}

func (r memoryInventories) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.inventories[id]; !ok {
		return notFound("inventory with ID %d", id)
	}
	delete(r.s.inventories, id)
	return nil
}

func (r memoryInventories) Exists(id uint) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.inventories[id]
	return ok, nil
}
