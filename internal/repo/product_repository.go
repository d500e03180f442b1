package repo

import "github.com/prisha-enterprises/backoffice/internal/models"

// ProductFilter narrows list reads. The zero value returns the full
// catalog. Category matches case-insensitively.
type ProductFilter struct {
	Category     string
	FeaturedOnly bool
}

// ProductRepository defines the interface for catalog data operations.
// List reads come back newest-first.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	Filter(pf ProductFilter) ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	GetBySlug(slug string) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id int) error
}
