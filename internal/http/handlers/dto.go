package handlers

import "github.com/prisha-enterprises/backoffice/internal/models"

type ProductRequest struct {
	Title            string          `json:"title"`
	Slug             string          `json:"slug,omitempty"`
	Category         string          `json:"category"`
	Description      string          `json:"description,omitempty"`
	ShortDescription string          `json:"shortDescription,omitempty"`
	Specs            models.SpecList `json:"specs,omitempty"`
	Images           []string        `json:"images,omitempty"`
	ImageURL         string          `json:"imageUrl,omitempty"`
	RentalPrice      string          `json:"rentalPrice,omitempty"`
	IsNew            bool            `json:"isNew,omitempty"`
	IsFeatured       bool            `json:"isFeatured,omitempty"`
	Status           string          `json:"status,omitempty"`
}

// ProductPatch carries a partial update. Nil fields keep their prior
// values; Specs and Images replace wholesale when supplied; ImageURL is
// an alias that swaps only the primary image.
type ProductPatch struct {
	Title            *string          `json:"title"`
	Slug             *string          `json:"slug"`
	Category         *string          `json:"category"`
	Description      *string          `json:"description"`
	ShortDescription *string          `json:"shortDescription"`
	Specs            *models.SpecList `json:"specs"`
	Images           *[]string        `json:"images"`
	ImageURL         *string          `json:"imageUrl"`
	RentalPrice      *string          `json:"rentalPrice"`
	IsNew            *bool            `json:"isNew"`
	IsFeatured       *bool            `json:"isFeatured"`
	Status           *string          `json:"status"`
}

type InquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company,omitempty"`
	Message string `json:"message,omitempty"`
	Source  string `json:"source,omitempty"`
	Product string `json:"product,omitempty"`
	// Status is accepted from older form clients and ignored; new
	// inquiries always start as "new".
	Status string `json:"status,omitempty"`
}

type InquiryStatusRequest struct {
	Status string `json:"status"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type MessageResult struct {
	Message string `json:"message"`
}
