package repo

import (
	"time"

	"github.com/prisha-enterprises/backoffice/internal/models"
)

// InMemoryInquiryRepository is an in-memory implementation of
// InquiryRepository. New inquiries are prepended so list reads come back
// newest-first.
type InMemoryInquiryRepository struct {
	inquiries []models.Inquiry
}

// NewInMemoryInquiryRepository creates a new instance of InMemoryInquiryRepository.
func NewInMemoryInquiryRepository() *InMemoryInquiryRepository {
	return &InMemoryInquiryRepository{
		inquiries: []models.Inquiry{},
	}
}

// Create stores a new inquiry, assigning its identity and creation time
// and forcing the status to "new".
func (r *InMemoryInquiryRepository) Create(inquiry models.Inquiry) (models.Inquiry, error) {
	if inquiry.ID == "" {
		inquiry.ID = models.NewInquiryID()
	}
	if inquiry.Date.IsZero() {
		inquiry.Date = time.Now().UTC()
	}
	inquiry.Status = models.InquiryStatusNew
	r.inquiries = append([]models.Inquiry{inquiry}, r.inquiries...)
	return inquiry, nil
}

// GetAll retrieves all inquiries, newest-first.
func (r *InMemoryInquiryRepository) GetAll() ([]models.Inquiry, error) {
	return r.inquiries, nil
}

// SetStatus applies status to the inquiry with the given ID.
func (r *InMemoryInquiryRepository) SetStatus(id, status string) (models.Inquiry, error) {
	for i, q := range r.inquiries {
		if q.ID == id {
			r.inquiries[i].Status = status
			return r.inquiries[i], nil
		}
	}
	return models.Inquiry{}, ErrInquiryNotFound
}

// Delete removes an inquiry by its ID.
func (r *InMemoryInquiryRepository) Delete(id string) error {
	for i, q := range r.inquiries {
		if q.ID == id {
			r.inquiries = append(r.inquiries[:i], r.inquiries[i+1:]...)
			return nil
		}
	}
	return ErrInquiryNotFound
}

// Clear empties the repository. Used by tests.
func (r *InMemoryInquiryRepository) Clear() {
	r.inquiries = []models.Inquiry{}
}
