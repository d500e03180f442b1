package repo

import "github.com/prisha-enterprises/backoffice/internal/models"

// InquiryRepository defines the interface for inquiry data operations.
// GetAll returns inquiries newest-first. Create forces the status to
// "new" regardless of what the caller supplies; SetStatus applies any
// status without a transition guard.
type InquiryRepository interface {
	Create(inquiry models.Inquiry) (models.Inquiry, error)
	GetAll() ([]models.Inquiry, error)
	SetStatus(id, status string) (models.Inquiry, error)
	Delete(id string) error
}
