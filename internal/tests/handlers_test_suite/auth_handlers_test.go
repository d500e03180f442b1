package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"

	api "github.com/prisha-enterprises/backoffice/internal/http"
	handler "github.com/prisha-enterprises/backoffice/internal/http/handlers"
)

func login(r http.Handler, username, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(handler.CredentialsRequest{Username: username, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginHandler_DefaultCredentials(t *testing.T) {
	t.Cleanup(clearAllSettings)
	r := api.NewRouter()

	w := login(r, "admin", "prisha2024")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a non-empty token")
	}
}

func TestLoginHandler_WrongCredentials(t *testing.T) {
	t.Cleanup(clearAllSettings)
	r := api.NewRouter()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"Wrong password", "admin", "nope"},
		{"Wrong username", "root", "prisha2024"},
		{"Empty credentials", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := login(r, tt.username, tt.password); w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401 Unauthorized, got %d", w.Code)
			}
		})
	}
}

func TestLoginHandler_BcryptStoredPassword(t *testing.T) {
	t.Cleanup(clearAllSettings)
	r := api.NewRouter()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cure!"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("error hashing password: %v", err)
	}
	if err := settingsRepo.UpsertMany(map[string]string{"admin_password": string(hash)}); err != nil {
		t.Fatalf("error storing hashed password: %v", err)
	}

	if w := login(r, "admin", "s3cure!"); w.Code != http.StatusOK {
		t.Errorf("expected 200 OK with hashed password, got %d", w.Code)
	}
	if w := login(r, "admin", "prisha2024"); w.Code != http.StatusUnauthorized {
		t.Errorf("expected old password to stop working, got %d", w.Code)
	}
}

func TestChangePasswordHandler(t *testing.T) {
	t.Cleanup(clearAllSettings)
	r := api.NewRouter()

	body, _ := json.Marshal(handler.ChangePasswordRequest{
		CurrentPassword: "prisha2024",
		NewPassword:     "fresh-secret",
	})
	w := authorizedRequest(r, http.MethodPost, "/auth/change-password", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	if lw := login(r, "admin", "fresh-secret"); lw.Code != http.StatusOK {
		t.Errorf("expected login with the new password, got %d", lw.Code)
	}
	if lw := login(r, "admin", "prisha2024"); lw.Code != http.StatusUnauthorized {
		t.Errorf("expected old password to be rejected, got %d", lw.Code)
	}
}

func TestChangePasswordHandler_WrongCurrent(t *testing.T) {
	t.Cleanup(clearAllSettings)
	r := api.NewRouter()

	body, _ := json.Marshal(handler.ChangePasswordRequest{
		CurrentPassword: "not-it",
		NewPassword:     "fresh-secret",
	})
	w := authorizedRequest(r, http.MethodPost, "/auth/change-password", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestChangePasswordHandler_EmptyNew(t *testing.T) {
	t.Cleanup(clearAllSettings)
	r := api.NewRouter()

	body, _ := json.Marshal(handler.ChangePasswordRequest{
		CurrentPassword: "prisha2024",
		NewPassword:     "",
	})
	w := authorizedRequest(r, http.MethodPost, "/auth/change-password", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestAdminRoutesRejectGarbageToken(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/inquiries", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", w.Code)
	}
}
