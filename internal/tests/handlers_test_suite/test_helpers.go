package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	api "github.com/prisha-enterprises/backoffice/internal/http"
	handler "github.com/prisha-enterprises/backoffice/internal/http/handlers"
	rl "github.com/prisha-enterprises/backoffice/internal/http/rate_limiter"
	"github.com/prisha-enterprises/backoffice/internal/repo"
)

var (
	token        string
	productRepo  *repo.InMemoryProductRepository
	inquiryRepo  *repo.InMemoryInquiryRepository
	settingsRepo *repo.InMemorySettingsRepository
)

func init() {
	setupTestRepos()
	r := api.NewRouter()

	// The default credentials come from the settings defaulting layer.
	var err error
	token, err = generateToken(r, "admin", "prisha2024")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos() {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	inquiryRepo = repo.NewInMemoryInquiryRepository()
	handler.SetInquiryRepo(inquiryRepo)

	settingsRepo = repo.NewInMemorySettingsRepository()
	handler.SetSettingsRepo(settingsRepo)
}

func clearAllProducts() {
	productRepo.Clear()
}

func clearAllInquiries() {
	inquiryRepo.Clear()
	// httptest requests share one RemoteAddr, so drop its limiter too.
	rl.CleanupAllVisitors()
}

func clearAllSettings() {
	settingsRepo.Clear()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createInquiry(r http.Handler, q handler.InquiryRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(q)
	req := httptest.NewRequest(http.MethodPost, "/inquiries", bytes.NewReader(body))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func authorizedRequest(r http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
