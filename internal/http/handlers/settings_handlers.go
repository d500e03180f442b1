package handlers

import (
	"log"
	"net/http"
	"strings"
)

// GetSettingsHandler godoc
// @Summary Get company settings
// @Description Returns the key-value settings with defaults filled in for absent keys. Admin credential keys are never exposed here.
// @Tags settings
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {string} string "Internal error"
// @Router /settings [get]
func GetSettingsHandler(w http.ResponseWriter, r *http.Request) {
	settings, err := settingsRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch settings", http.StatusInternalServerError)
		return
	}

	public := make(map[string]string, len(settings))
	for k, v := range settings {
		if strings.HasPrefix(k, "admin_") {
			continue
		}
		public[k] = v
	}

	if err := writeJSON(w, http.StatusOK, public); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// UpsertSettingsHandler godoc
// @Summary Save settings
// @Description Creates or overwrites each supplied key. Keys are written independently.
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param settings body map[string]string true "Keys to upsert"
// @Success 200 {object} MessageResult
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /settings [put]
func UpsertSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var values map[string]string
	if err := readJSON(w, r, &values); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if err := settingsRepo.UpsertMany(values); err != nil {
		http.Error(w, "could not save settings", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, MessageResult{Message: "settings saved"}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
