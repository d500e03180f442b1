package models

import (
	"time"

	"github.com/google/uuid"
)

// Inquiry sources.
const (
	SourceContactPage    = "contact_page"
	SourceQuoteModal     = "quote_modal"
	SourceProductInquiry = "product_inquiry"
)

// Inquiry statuses. Transitions are deliberately unguarded: any status in
// the set may follow any other.
const (
	InquiryStatusNew       = "new"
	InquiryStatusResponded = "responded"
	InquiryStatusClosed    = "closed"
)

// InquiryStatuses lists the accepted inquiry statuses.
var InquiryStatuses = []string{InquiryStatusNew, InquiryStatusResponded, InquiryStatusClosed}

// Inquiry represents a message submitted through one of the public forms.
// Product is a free-text label naming a product of interest, not a
// reference into the catalog.
type Inquiry struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Phone   string    `json:"phone"`
	Company string    `json:"company,omitempty"`
	Message string    `json:"message"`
	Source  string    `json:"source"`
	Product string    `json:"product,omitempty"`
	Status  string    `json:"status"`
	Date    time.Time `json:"date"`
}

// NewInquiryID returns a fresh inquiry identifier.
func NewInquiryID() string {
	return "INQ-" + uuid.NewString()
}

// ValidInquiryStatus reports whether s is an accepted inquiry status.
func ValidInquiryStatus(s string) bool {
	for _, known := range InquiryStatuses {
		if s == known {
			return true
		}
	}
	return false
}
