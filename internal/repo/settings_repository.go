package repo

// SettingsDefaults maps each recognized settings key to its hardcoded
// fallback. An empty store serves exactly these values, which is what
// makes a fresh deployment work without a seed migration. Kept as a
// single literal so the defaulting layer stays auditable.
var SettingsDefaults = map[string]string{
	"name":           "Prisha Enterprises",
	"email":          "contact@prishaenterprises.in",
	"phone":          "+91 98765 43210",
	"gst":            "07AADCP1234F1Z5",
	"address":        "B-123, Sector 63, Noida, Uttar Pradesh, India - 201301",
	"website":        "www.prishaenterprises.in",
	"admin_username": "admin",
	"admin_password": "prisha2024",
}

// SettingsRepository defines the interface for the flat key-value store.
// GetAll substitutes the hardcoded default for any recognized key absent
// from storage. UpsertMany writes each key independently.
type SettingsRepository interface {
	GetAll() (map[string]string, error)
	UpsertMany(values map[string]string) error
}

// applyDefaults overlays stored values on the defaults table; stored
// values win, unrecognized keys pass through.
func applyDefaults(stored map[string]string) map[string]string {
	out := make(map[string]string, len(SettingsDefaults)+len(stored))
	for k, v := range SettingsDefaults {
		out[k] = v
	}
	for k, v := range stored {
		out[k] = v
	}
	return out
}
