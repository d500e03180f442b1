package repo

import (
	"errors"
	"testing"

	"github.com/prisha-enterprises/backoffice/internal/models"
)

func seedProduct(t *testing.T, r *InMemoryProductRepository, title, category string, featured bool) models.Product {
	t.Helper()
	created, err := r.Create(models.Product{
		Title:      title,
		Slug:       models.Slugify(title),
		Category:   category,
		Status:     models.StatusActive,
		IsFeatured: featured,
	})
	if err != nil {
		t.Fatalf("error seeding product %q: %v", title, err)
	}
	return created
}

func TestInMemoryProductRepositoryNewestFirst(t *testing.T) {
	r := NewInMemoryProductRepository()
	seedProduct(t, r, "First", "Servers", false)
	seedProduct(t, r, "Second", "Laptops", false)
	seedProduct(t, r, "Third", "Storage", false)

	products, err := r.Filter(ProductFilter{})
	if err != nil {
		t.Fatalf("error filtering products: %v", err)
	}

	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}
	for i, want := range []string{"Third", "Second", "First"} {
		if products[i].Title != want {
			t.Errorf("expected %q at position %d, got %q", want, i, products[i].Title)
		}
	}
}

func TestInMemoryProductRepositoryCategoryFilterIgnoresCase(t *testing.T) {
	r := NewInMemoryProductRepository()
	seedProduct(t, r, "Rack Server", "Servers", false)
	seedProduct(t, r, "Thin Laptop", "Laptops", false)

	products, err := r.Filter(ProductFilter{Category: "sErVeRs"})
	if err != nil {
		t.Fatalf("error filtering products: %v", err)
	}

	if len(products) != 1 || products[0].Title != "Rack Server" {
		t.Errorf("expected only the server, got %v", products)
	}
	// Stored spelling is untouched by matching.
	if products[0].Category != "Servers" {
		t.Errorf("expected stored category 'Servers', got %q", products[0].Category)
	}
}

func TestInMemoryProductRepositoryFeaturedOnly(t *testing.T) {
	r := NewInMemoryProductRepository()
	seedProduct(t, r, "Plain", "Servers", false)
	featured := seedProduct(t, r, "Showcase", "Servers", true)

	products, err := r.Filter(ProductFilter{FeaturedOnly: true})
	if err != nil {
		t.Fatalf("error filtering products: %v", err)
	}

	if len(products) != 1 || products[0].ID != featured.ID {
		t.Errorf("expected only the featured product, got %v", products)
	}
}

func TestInMemoryProductRepositoryGetBySlug(t *testing.T) {
	r := NewInMemoryProductRepository()
	created := seedProduct(t, r, "Dell PowerEdge R740", "Servers", false)

	found, err := r.GetBySlug("dell-poweredge-r740")
	if err != nil {
		t.Fatalf("error fetching by slug: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("expected product %d, got %d", created.ID, found.ID)
	}

	if _, err := r.GetBySlug("missing"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestInMemoryProductRepositoryDuplicateSlug(t *testing.T) {
	r := NewInMemoryProductRepository()
	seedProduct(t, r, "Dell PowerEdge R740", "Servers", false)

	_, err := r.Create(models.Product{Title: "Clone", Slug: "dell-poweredge-r740", Category: "Servers"})
	if !errors.Is(err, ErrDuplicateSlug) {
		t.Errorf("expected ErrDuplicateSlug, got %v", err)
	}
}

func TestInMemoryProductRepositoryUpdate(t *testing.T) {
	r := NewInMemoryProductRepository()
	created := seedProduct(t, r, "Old Title", "Servers", false)

	created.Title = "New Title"
	created.Status = models.StatusLowStock
	updated, err := r.Update(created)
	if err != nil {
		t.Fatalf("error updating product: %v", err)
	}
	if updated.Title != "New Title" || updated.Status != models.StatusLowStock {
		t.Errorf("update not applied: %v", updated)
	}

	stored, err := r.GetByID(created.ID)
	if err != nil {
		t.Fatalf("error fetching product: %v", err)
	}
	if stored.Title != "New Title" {
		t.Errorf("expected stored title 'New Title', got %q", stored.Title)
	}
}

func TestInMemoryProductRepositoryUpdateRejectsSlugCollision(t *testing.T) {
	r := NewInMemoryProductRepository()
	seedProduct(t, r, "Keeper", "Servers", false)
	other := seedProduct(t, r, "Mover", "Servers", false)

	other.Slug = "keeper"
	if _, err := r.Update(other); !errors.Is(err, ErrDuplicateSlug) {
		t.Errorf("expected ErrDuplicateSlug, got %v", err)
	}
}

func TestInMemoryProductRepositoryDeleteNotFound(t *testing.T) {
	r := NewInMemoryProductRepository()
	if err := r.Delete(12345); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}
