package handlers

import (
	"strings"

	"github.com/prisha-enterprises/backoffice/internal/models"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProductCreate(req ProductRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, ValidationError{Field: "Title", Description: "Title is required"})
	}
	if strings.TrimSpace(req.Category) == "" {
		errs = append(errs, ValidationError{Field: "Category", Description: "Category is required"})
	} else if !models.ValidCategory(req.Category) {
		errs = append(errs, ValidationError{Field: "Category", Description: "Unknown category"})
	}
	if req.Status != "" && !models.ValidProductStatus(req.Status) {
		errs = append(errs, ValidationError{Field: "Status", Description: "Unknown status"})
	}
	return errs
}

func validateProductPatch(patch ProductPatch) []ValidationError {
	errs := []ValidationError{}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		errs = append(errs, ValidationError{Field: "Title", Description: "Title must not be empty"})
	}
	if patch.Category != nil && !models.ValidCategory(*patch.Category) {
		errs = append(errs, ValidationError{Field: "Category", Description: "Unknown category"})
	}
	if patch.Status != nil && !models.ValidProductStatus(*patch.Status) {
		errs = append(errs, ValidationError{Field: "Status", Description: "Unknown status"})
	}
	return errs
}
