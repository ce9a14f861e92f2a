package domain

// MealRecord is a meal as returned by the meals API. Fields are kept
// verbatim for the edit form; only the id is interpreted.
type MealRecord struct {
	ID     string
	Fields map[string]any
}

// Name returns the "name" field when present.
func (m *MealRecord) Name() string {
	if m == nil {
		return ""
	}
	if s, ok := m.Fields["name"].(string); ok {
		return s
	}
	return ""
}
