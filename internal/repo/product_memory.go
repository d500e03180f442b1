package repo

import (
	"strings"
	"time"

	"github.com/prisha-enterprises/backoffice/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository. New products are prepended, so the slice is always
// ordered newest-first. No locking: one request, one handling unit.
type InMemoryProductRepository struct {
	products []models.Product
	nextID   int
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
	}
}

func matchesProductFilter(p models.Product, pf ProductFilter) bool {
	if pf.Category != "" && !strings.EqualFold(p.Category, pf.Category) {
		return false
	}
	if pf.FeaturedOnly && !p.IsFeatured {
		return false
	}
	return true
}

// Create adds a new product to the repository and assigns its identity.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	for _, p := range r.products {
		if p.Slug == product.Slug {
			return models.Product{}, ErrDuplicateSlug
		}
	}
	product.ID = r.nextID
	r.nextID++
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now().UTC()
	}
	r.products = append([]models.Product{product}, r.products...)
	return product, nil
}

// Filter retrieves the products matching pf, newest-first.
func (r *InMemoryProductRepository) Filter(pf ProductFilter) ([]models.Product, error) {
	var filtered []models.Product
	for _, p := range r.products {
		if matchesProductFilter(p, pf) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// GetBySlug retrieves a product by its slug.
func (r *InMemoryProductRepository) GetBySlug(slug string) (models.Product, error) {
	for _, p := range r.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Update replaces an existing product in the repository.
func (r *InMemoryProductRepository) Update(product models.Product) (models.Product, error) {
	for _, p := range r.products {
		if p.Slug == product.Slug && p.ID != product.ID {
			return models.Product{}, ErrDuplicateSlug
		}
	}
	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = product
			return product, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Delete removes a product from the repository by its ID.
func (r *InMemoryProductRepository) Delete(id int) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// Clear empties the repository. Used by tests.
func (r *InMemoryProductRepository) Clear() {
	r.products = []models.Product{}
}
