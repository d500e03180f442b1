package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/prisha-enterprises/backoffice/internal/auth"
)

// passwordMatches accepts either a bcrypt hash or the verbatim value the
// settings store ships with (the demo credential is plaintext).
func passwordMatches(stored, supplied string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return stored != "" && stored == supplied
}

// LoginHandler godoc
// @Summary Authenticate the admin and return a session token
// @Description Checks credentials against the settings store; the defaulting layer supplies the demo pair on a fresh deployment.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Unauthorized"
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var credentials CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	settings, err := settingsRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch settings", http.StatusInternalServerError)
		return
	}

	if credentials.Username != settings["admin_username"] ||
		!passwordMatches(settings["admin_password"], credentials.Password) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateAdminToken(credentials.Username)
	if err != nil {
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(LoginResult{Token: token}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// ChangePasswordHandler godoc
// @Summary Change the admin password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param passwords body ChangePasswordRequest true "current and new password"
// @Success 200 {object} MessageResult
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /auth/change-password [post]
func ChangePasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if req.NewPassword == "" {
		http.Error(w, "new password must not be empty", http.StatusBadRequest)
		return
	}

	settings, err := settingsRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch settings", http.StatusInternalServerError)
		return
	}

	if !passwordMatches(settings["admin_password"], req.CurrentPassword) {
		http.Error(w, "current password is incorrect", http.StatusBadRequest)
		return
	}

	if err := settingsRepo.UpsertMany(map[string]string{"admin_password": req.NewPassword}); err != nil {
		http.Error(w, "could not save password", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, MessageResult{Message: "password updated"}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
