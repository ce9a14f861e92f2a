package meal

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/hammamikhairi/nextday/internal/domain"
)

// Field is one rendered key/value pair of a meal record.
type Field struct {
	Key   string
	Value string
}

// Form keeps the record currently being edited.
type Form struct {
	mu  sync.RWMutex
	rec *domain.MealRecord
}

// Load replaces the form contents.
func (f *Form) Load(rec *domain.MealRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rec = rec
}

// Record returns the loaded record, or nil.
func (f *Form) Record() *domain.MealRecord {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.rec
}

// Fields returns the record's fields sorted by key. Nested values are
// rendered as compact JSON.
func (f *Form) Fields() []Field {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.rec == nil {
		return nil
	}

	keys := make([]string, 0, len(f.rec.Fields))
	for k := range f.rec.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Field, 0, len(keys))
	for _, k := range keys {
		out = append(out, Field{Key: k, Value: render(f.rec.Fields[k])})
	}
	return out
}

func render(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case map[string]any, []any:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	default:
		return fmt.Sprint(x)
	}
}
