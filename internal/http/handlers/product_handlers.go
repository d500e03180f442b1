package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/prisha-enterprises/backoffice/internal/models"
	"github.com/prisha-enterprises/backoffice/internal/repo"
)

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the catalog. Slug is derived from the title when not supplied.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} models.Product
// @Failure 400 {array} ValidationError
// @Failure 409 {string} string "Slug in use"
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProductCreate(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = models.Slugify(req.Title)
	}
	specs := req.Specs
	if specs == nil {
		specs = models.SpecList{}
	}
	images := req.Images
	if len(images) == 0 && req.ImageURL != "" {
		images = []string{req.ImageURL}
	}
	if len(images) == 0 {
		images = []string{models.PlaceholderImage}
	}
	status := req.Status
	if status == "" {
		status = models.StatusActive
	}

	product := models.Product{
		Title:            req.Title,
		Slug:             slug,
		Category:         req.Category,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Specs:            specs,
		Images:           images,
		RentalPrice:      req.RentalPrice,
		IsNew:            req.IsNew,
		IsFeatured:       req.IsFeatured,
		Status:           status,
		CreatedAt:        time.Now().UTC(),
	}
	created, err := productRepo.Create(product)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateSlug) {
			http.Error(w, "could not create product: slug already in use", http.StatusConflict)
			return
		}
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// GetProductsHandler godoc
// @Summary List products
// @Description Lists the catalog newest-first. Category filtering is case-insensitive.
// @Tags products
// @Produce json
// @Param category query string false "Filter by category"
// @Param featured query bool false "Only featured products"
// @Success 200 {array} models.Product
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repo.ProductFilter{
		Category:     q.Get("category"),
		FeaturedOnly: q.Get("featured") == "true",
	}

	products, err := productRepo.Filter(filter)
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

// GetProductBySlugHandler godoc
// @Summary Get product by slug
// @Tags products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} models.Product
// @Failure 404 {string} string "Not found"
// @Router /products/slug/{slug} [get]
func GetProductBySlugHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	product, err := productRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

// applyProductPatch merges the supplied fields into the stored product.
// Specs are replaced wholesale, never merged. A non-empty images array
// replaces the whole sequence; the imageUrl alias swaps only the primary
// image.
func applyProductPatch(p *models.Product, patch ProductPatch) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Slug != nil {
		p.Slug = *patch.Slug
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.ShortDescription != nil {
		p.ShortDescription = *patch.ShortDescription
	}
	if patch.Specs != nil {
		p.Specs = *patch.Specs
	}
	if patch.Images != nil && len(*patch.Images) > 0 {
		p.Images = *patch.Images
	} else if patch.ImageURL != nil && *patch.ImageURL != "" {
		if len(p.Images) == 0 {
			p.Images = []string{*patch.ImageURL}
		} else {
			images := make([]string, len(p.Images))
			copy(images, p.Images)
			images[0] = *patch.ImageURL
			p.Images = images
		}
	}
	if patch.RentalPrice != nil {
		p.RentalPrice = *patch.RentalPrice
	}
	if patch.IsNew != nil {
		p.IsNew = *patch.IsNew
	}
	if patch.IsFeatured != nil {
		p.IsFeatured = *patch.IsFeatured
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
}

// UpdateProductHandler godoc
// @Summary Partially update a product
// @Description Only supplied fields change; specs replace wholesale.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param patch body ProductPatch true "Fields to change"
// @Success 200 {object} models.Product
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Slug in use"
// @Router /products/{id} [patch]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var patch ProductPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProductPatch(patch)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	product, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	applyProductPatch(&product, patch)

	updated, err := productRepo.Update(product)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrProductNotFound):
			http.Error(w, "product not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrDuplicateSlug):
			http.Error(w, "could not update product: slug already in use", http.StatusConflict)
		default:
			http.Error(w, "could not update product", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}
	if err := productRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete product", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
