package meal

import (
	"context"
	"sort"
	"sync"

	"github.com/hammamikhairi/nextday/internal/domain"
	"github.com/hammamikhairi/nextday/internal/logger"
)

// Compile-time interface check.
var _ domain.MealSource = (*MemorySource)(nil)

// MemorySource serves meal records from memory. Used offline and in demos.
type MemorySource struct {
	mu    sync.RWMutex
	meals map[string]map[string]any
	log   *logger.Logger
}

// NewMemorySource creates a source preloaded with a small sample menu.
func NewMemorySource(log *logger.Logger) *MemorySource {
	s := &MemorySource{
		meals: make(map[string]map[string]any),
		log:   log,
	}
	s.seed()
	return s
}

// GetMeal returns a copy of the record with the given id.
func (s *MemorySource) GetMeal(ctx context.Context, id string) (*domain.MealRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fields, ok := s.meals[id]
	if !ok {
		s.log.Debug("meal not found: %s", id)
		return nil, domain.ErrNotFound
	}
	return &domain.MealRecord{ID: id, Fields: clone(fields)}, nil
}

// IDs returns the known meal ids in order.
func (s *MemorySource) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.meals))
	for id := range s.meals {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func clone(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *MemorySource) seed() {
	meals := []map[string]any{
		{
			"_id":      "grilled-chicken-bowl",
			"name":     "Grilled Chicken Bowl",
			"category": "lunch",
			"calories": 620.0,
			"protein":  48.0,
			"carbs":    64.0,
			"fat":      18.0,
			"price":    42.0,
		},
		{
			"_id":      "salmon-quinoa",
			"name":     "Salmon & Quinoa",
			"category": "dinner",
			"calories": 710.0,
			"protein":  42.0,
			"carbs":    55.0,
			"fat":      32.0,
			"price":    55.0,
		},
		{
			"_id":      "oat-berry-cup",
			"name":     "Oat Berry Cup",
			"category": "breakfast",
			"calories": 380.0,
			"protein":  14.0,
			"carbs":    58.0,
			"fat":      10.0,
			"price":    24.0,
		},
	}
	for _, m := range meals {
		s.meals[m["_id"].(string)] = m
	}
	s.log.Debug("seeded %d meals", len(meals))
}
