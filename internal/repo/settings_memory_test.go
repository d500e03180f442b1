package repo

import "testing"

func TestInMemorySettingsRepositoryDefaults(t *testing.T) {
	r := NewInMemorySettingsRepository()

	settings, err := r.GetAll()
	if err != nil {
		t.Fatalf("error fetching settings: %v", err)
	}

	if settings["name"] != "Prisha Enterprises" {
		t.Errorf("expected default name, got %q", settings["name"])
	}
	if settings["admin_username"] != "admin" {
		t.Errorf("expected default admin username, got %q", settings["admin_username"])
	}
	if settings["admin_password"] != "prisha2024" {
		t.Errorf("expected default admin password, got %q", settings["admin_password"])
	}
}

func TestInMemorySettingsRepositoryOverrideLeavesOtherDefaults(t *testing.T) {
	r := NewInMemorySettingsRepository()

	if err := r.UpsertMany(map[string]string{"name": "Acme Rentals"}); err != nil {
		t.Fatalf("error upserting settings: %v", err)
	}

	settings, err := r.GetAll()
	if err != nil {
		t.Fatalf("error fetching settings: %v", err)
	}

	if settings["name"] != "Acme Rentals" {
		t.Errorf("expected override, got %q", settings["name"])
	}
	if settings["admin_username"] != "admin" {
		t.Errorf("expected untouched default, got %q", settings["admin_username"])
	}
}

func TestInMemorySettingsRepositoryUpsertNewKey(t *testing.T) {
	r := NewInMemorySettingsRepository()

	if err := r.UpsertMany(map[string]string{"tagline": "IT rentals since 2009"}); err != nil {
		t.Fatalf("error upserting settings: %v", err)
	}

	settings, err := r.GetAll()
	if err != nil {
		t.Fatalf("error fetching settings: %v", err)
	}
	if settings["tagline"] != "IT rentals since 2009" {
		t.Errorf("expected new key to be stored, got %q", settings["tagline"])
	}
}
