package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/prisha-enterprises/backoffice/internal/models"
)

const productColumns = `id, title, slug, category, description, short_description, specs_json, images_json, rental_price, is_new, is_featured, status, created_at`

// PostgresProductRepository is the table-backed implementation of
// ProductRepository.
type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	specsJSON, err := models.EncodeSpecs(p.Specs)
	if err != nil {
		return models.Product{}, err
	}
	imagesJSON, err := json.Marshal(p.Images)
	if err != nil {
		return models.Product{}, err
	}

	query := `INSERT INTO products (title, slug, category, description, short_description, specs_json, images_json, rental_price, is_new, is_featured, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = r.db.QueryRowContext(ctx, query,
		p.Title, p.Slug, p.Category, p.Description, p.ShortDescription,
		specsJSON, string(imagesJSON), p.RentalPrice, p.IsNew, p.IsFeatured, p.Status, p.CreatedAt,
	).Scan(&p.ID)
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") {
			return models.Product{}, ErrDuplicateSlug
		}
		return models.Product{}, err
	}
	return p, nil
}

// scanProduct reads one row, decoding the specs blob and images array.
func scanProduct(scan func(dest ...any) error) (models.Product, error) {
	var p models.Product
	var specsJSON, imagesJSON string
	if err := scan(&p.ID, &p.Title, &p.Slug, &p.Category, &p.Description, &p.ShortDescription,
		&specsJSON, &imagesJSON, &p.RentalPrice, &p.IsNew, &p.IsFeatured, &p.Status, &p.CreatedAt); err != nil {
		return models.Product{}, err
	}
	specs, err := models.DecodeSpecs(specsJSON)
	if err != nil {
		return models.Product{}, err
	}
	p.Specs = specs
	if imagesJSON != "" {
		if err := json.Unmarshal([]byte(imagesJSON), &p.Images); err != nil {
			return models.Product{}, err
		}
	}
	return p, nil
}

func (r *PostgresProductRepository) Filter(pf ProductFilter) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []any{}
	if pf.Category != "" {
		query += ` AND LOWER(category) = LOWER($1)`
		args = append(args, pf.Category)
	}
	if pf.FeaturedOnly {
		query += ` AND is_featured = TRUE`
	}
	query += ` ORDER BY created_at DESC, id DESC`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) GetByID(id int) (models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) GetBySlug(slug string) (models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE slug = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, slug).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Update(p models.Product) (models.Product, error) {
	specsJSON, err := models.EncodeSpecs(p.Specs)
	if err != nil {
		return models.Product{}, err
	}
	imagesJSON, err := json.Marshal(p.Images)
	if err != nil {
		return models.Product{}, err
	}

	query := `UPDATE products SET title = $1, slug = $2, category = $3, description = $4, short_description = $5,
		specs_json = $6, images_json = $7, rental_price = $8, is_new = $9, is_featured = $10, status = $11 WHERE id = $12`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query,
		p.Title, p.Slug, p.Category, p.Description, p.ShortDescription,
		specsJSON, string(imagesJSON), p.RentalPrice, p.IsNew, p.IsFeatured, p.Status, p.ID)
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") {
			return models.Product{}, ErrDuplicateSlug
		}
		return models.Product{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (r *PostgresProductRepository) Delete(id int) error {
	query := `DELETE FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
