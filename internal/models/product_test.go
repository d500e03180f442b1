package models

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Dell PowerEdge R740!", "dell-poweredge-r740"},
		{"HP ProBook 450 G8", "hp-probook-450-g8"},
		{"  Spaces  Everywhere  ", "spaces-everywhere"},
		{"UPS (5kVA) / Online", "ups-5kva-online"},
		{"already-a-slug", "already-a-slug"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.title); got != tt.expected {
			t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.expected)
		}
	}
}

func TestValidCategoryIgnoresCase(t *testing.T) {
	for _, c := range []string{"Servers", "servers", "SERVERS", "cctv"} {
		if !ValidCategory(c) {
			t.Errorf("expected %q to be a valid category", c)
		}
	}
	for _, c := range []string{"", "Drones", "server"} {
		if ValidCategory(c) {
			t.Errorf("expected %q to be rejected", c)
		}
	}
}

func TestValidProductStatusIsExact(t *testing.T) {
	for _, s := range []string{StatusActive, StatusLowStock, StatusOutOfStock} {
		if !ValidProductStatus(s) {
			t.Errorf("expected %q to be a valid status", s)
		}
	}
	for _, s := range []string{"active", "low stock", "Retired", ""} {
		if ValidProductStatus(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}
