package models

import (
	"regexp"
	"strings"
	"time"
)

// Categories offered by the catalog. Membership is checked
// case-insensitively, but a product keeps whatever spelling it was
// created with.
var Categories = []string{
	"Servers",
	"Laptops",
	"Workstations",
	"Networking",
	"CCTV",
	"Storage",
	"Power",
}

// Product stock statuses.
const (
	StatusActive     = "Active"
	StatusLowStock   = "Low Stock"
	StatusOutOfStock = "Out of Stock"
)

// ProductStatuses lists the accepted stock statuses.
var ProductStatuses = []string{StatusActive, StatusLowStock, StatusOutOfStock}

// PlaceholderImage is assigned when a product is created without images.
const PlaceholderImage = "/products/placeholder.jpg"

// Product represents a catalog entry. Specs persist as a single JSON text
// blob and Images as a JSON array; both are reconstructed on every read.
type Product struct {
	ID               int       `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Category         string    `json:"category"`
	Description      string    `json:"description,omitempty"`
	ShortDescription string    `json:"shortDescription,omitempty"`
	Specs            SpecList  `json:"specs"`
	Images           []string  `json:"images"`
	RentalPrice      string    `json:"rentalPrice,omitempty"`
	IsNew            bool      `json:"isNew"`
	IsFeatured       bool      `json:"isFeatured"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe identifier from a title: lower-cased, runs of
// non-alphanumerics collapsed to single hyphens, no leading or trailing
// hyphen.
func Slugify(title string) string {
	s := slugCleaner.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}

// ValidCategory reports whether c names a known category, ignoring case.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if strings.EqualFold(known, c) {
			return true
		}
	}
	return false
}

// ValidProductStatus reports whether s is an accepted stock status.
func ValidProductStatus(s string) bool {
	for _, known := range ProductStatuses {
		if s == known {
			return true
		}
	}
	return false
}
