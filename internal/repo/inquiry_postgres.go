package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/prisha-enterprises/backoffice/internal/models"
)

const inquiryColumns = `id, name, email, phone, company, message, source, product, status, created_at`

// PostgresInquiryRepository is the table-backed implementation of
// InquiryRepository.
type PostgresInquiryRepository struct {
	db *sql.DB
}

func NewPostgresInquiryRepository(db *sql.DB) *PostgresInquiryRepository {
	return &PostgresInquiryRepository{db: db}
}

func (r *PostgresInquiryRepository) Create(q models.Inquiry) (models.Inquiry, error) {
	if q.ID == "" {
		q.ID = models.NewInquiryID()
	}
	if q.Date.IsZero() {
		q.Date = time.Now().UTC()
	}
	q.Status = models.InquiryStatusNew

	query := `INSERT INTO inquiries (id, name, email, phone, company, message, source, product, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query,
		q.ID, q.Name, q.Email, q.Phone, q.Company, q.Message, q.Source, q.Product, q.Status, q.Date)
	if err != nil {
		return models.Inquiry{}, err
	}
	return q, nil
}

func (r *PostgresInquiryRepository) GetAll() ([]models.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries ORDER BY created_at DESC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inquiries []models.Inquiry
	for rows.Next() {
		var q models.Inquiry
		if err := rows.Scan(&q.ID, &q.Name, &q.Email, &q.Phone, &q.Company,
			&q.Message, &q.Source, &q.Product, &q.Status, &q.Date); err != nil {
			return nil, err
		}
		inquiries = append(inquiries, q)
	}
	return inquiries, rows.Err()
}

func (r *PostgresInquiryRepository) SetStatus(id, status string) (models.Inquiry, error) {
	query := `UPDATE inquiries SET status = $1 WHERE id = $2 RETURNING ` + inquiryColumns
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var q models.Inquiry
	err := r.db.QueryRowContext(ctx, query, status, id).Scan(&q.ID, &q.Name, &q.Email, &q.Phone,
		&q.Company, &q.Message, &q.Source, &q.Product, &q.Status, &q.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Inquiry{}, ErrInquiryNotFound
	}
	return q, err
}

func (r *PostgresInquiryRepository) Delete(id string) error {
	query := `DELETE FROM inquiries WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrInquiryNotFound
	}
	return nil
}
