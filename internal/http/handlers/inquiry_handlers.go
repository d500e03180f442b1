package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/prisha-enterprises/backoffice/internal/models"
	"github.com/prisha-enterprises/backoffice/internal/notify"
	"github.com/prisha-enterprises/backoffice/internal/repo"
)

// CreateInquiryHandler godoc
// @Summary Submit an inquiry
// @Description Accepts a contact or quote form submission. The status is always "new" regardless of input; validation of contact fields lives in the form layer.
// @Tags inquiries
// @Accept json
// @Produce json
// @Param inquiry body InquiryRequest true "Inquiry to submit"
// @Success 201 {object} models.Inquiry
// @Failure 400 {string} string "Invalid input"
// @Failure 429 {string} string "Too many requests"
// @Router /inquiries [post]
func CreateInquiryHandler(w http.ResponseWriter, r *http.Request) {
	var req InquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	source := req.Source
	if source == "" {
		source = models.SourceContactPage
	}

	inquiry := models.Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Message: req.Message,
		Source:  source,
		Product: req.Product,
		Date:    time.Now().UTC(),
	}
	created, err := inquiryRepo.Create(inquiry)
	if err != nil {
		http.Error(w, "could not process inquiry", http.StatusInternalServerError)
		return
	}

	notify.InquiryReceived(created)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// ListInquiriesHandler godoc
// @Summary List inquiries
// @Description Returns all inquiries, newest-first.
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Inquiry
// @Failure 500 {string} string "Internal error"
// @Router /inquiries [get]
func ListInquiriesHandler(w http.ResponseWriter, r *http.Request) {
	inquiries, err := inquiryRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch inquiries", http.StatusInternalServerError)
		return
	}
	if inquiries == nil {
		inquiries = []models.Inquiry{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(inquiries)
}

// UpdateInquiryStatusHandler godoc
// @Summary Set inquiry status
// @Description Applies any status in {new, responded, closed}; transitions are unguarded.
// @Tags inquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inquiry ID"
// @Param status body InquiryStatusRequest true "New status"
// @Success 200 {object} models.Inquiry
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Not found"
// @Router /inquiries/{id}/status [patch]
func UpdateInquiryStatusHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req InquiryStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if !models.ValidInquiryStatus(req.Status) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode([]ValidationError{
			{Field: "Status", Description: "Status must be one of: new, responded, closed"},
		})
		return
	}

	updated, err := inquiryRepo.SetStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, repo.ErrInquiryNotFound) {
			http.Error(w, "inquiry not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update inquiry", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

// DeleteInquiryHandler godoc
// @Summary Delete an inquiry
// @Tags inquiries
// @Security BearerAuth
// @Param id path string true "Inquiry ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Router /inquiries/{id} [delete]
func DeleteInquiryHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := inquiryRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrInquiryNotFound) {
			http.Error(w, "inquiry not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete inquiry", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
