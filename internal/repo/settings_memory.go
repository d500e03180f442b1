package repo

// InMemorySettingsRepository is an in-memory implementation of
// SettingsRepository.
type InMemorySettingsRepository struct {
	values map[string]string
}

// NewInMemorySettingsRepository creates a new instance of InMemorySettingsRepository.
func NewInMemorySettingsRepository() *InMemorySettingsRepository {
	return &InMemorySettingsRepository{
		values: map[string]string{},
	}
}

// GetAll returns the stored values overlaid on the defaults table.
func (r *InMemorySettingsRepository) GetAll() (map[string]string, error) {
	return applyDefaults(r.values), nil
}

// UpsertMany creates or overwrites each key in values.
func (r *InMemorySettingsRepository) UpsertMany(values map[string]string) error {
	for k, v := range values {
		r.values[k] = v
	}
	return nil
}

// Clear empties the store, restoring default-only reads. Used by tests.
func (r *InMemorySettingsRepository) Clear() {
	r.values = map[string]string{}
}
