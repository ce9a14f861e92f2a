// Package meal loads meal records for editing.
package meal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hammamikhairi/nextday/internal/cache"
	"github.com/hammamikhairi/nextday/internal/domain"
	"github.com/hammamikhairi/nextday/internal/logger"
)

// User-facing alerts.
const (
	MsgNotFound   = "Meal not found"
	MsgLoadFailed = "Failed to load meal"
)

// FormSink receives a fetched record verbatim.
type FormSink interface {
	Load(rec *domain.MealRecord)
}

// EditorOption configures an Editor.
type EditorOption func(*Editor)

// WithCacheTTL sets how long fetched records are reused. Zero disables
// caching.
func WithCacheTTL(ttl time.Duration) EditorOption {
	return func(e *Editor) { e.ttl = ttl }
}

// WithNotifier surfaces fetch failures as alerts.
func WithNotifier(n domain.Notifier) EditorOption {
	return func(e *Editor) { e.notifier = n }
}

// Editor fetches meals by id and feeds them to a form.
type Editor struct {
	src      domain.MealSource
	form     FormSink
	notifier domain.Notifier
	log      *logger.Logger
	ttl      time.Duration
	cache    *cache.Cache[*domain.MealRecord]
}

// NewEditor creates an editor reading from src and writing to form.
func NewEditor(src domain.MealSource, form FormSink, log *logger.Logger, opts ...EditorOption) *Editor {
	e := &Editor{
		src:  src,
		form: form,
		log:  log,
		ttl:  cache.DefaultExpiration,
	}
	for _, o := range opts {
		o(e)
	}
	if e.ttl > 0 {
		e.cache = cache.New[*domain.MealRecord](e.ttl, cache.DefaultCleanupInterval)
	}
	return e
}

// Open fetches the meal with the given id and loads it into the form.
// Failures raise a blocking alert and leave the form untouched.
func (e *Editor) Open(ctx context.Context, id string) (*domain.MealRecord, error) {
	rec, err := e.fetch(ctx, id)
	if err != nil {
		msg := MsgLoadFailed
		if errors.Is(err, domain.ErrNotFound) {
			msg = MsgNotFound
		}
		e.log.Error("loading meal %s: %v", id, err)
		e.alert(ctx, msg)
		return nil, fmt.Errorf("loading meal %s: %w", id, err)
	}

	e.form.Load(rec)
	e.log.Info("meal loaded: %s", id)
	return rec, nil
}

// Reload drops any cached copy and opens the meal again.
func (e *Editor) Reload(ctx context.Context, id string) (*domain.MealRecord, error) {
	if e.cache != nil {
		e.cache.Delete(id)
	}
	return e.Open(ctx, id)
}

func (e *Editor) fetch(ctx context.Context, id string) (*domain.MealRecord, error) {
	if e.cache != nil {
		if rec, ok := e.cache.Get(id); ok {
			e.log.Debug("meal cache hit: %s", id)
			return rec, nil
		}
	}

	rec, err := e.src.GetMeal(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.cache != nil {
		e.cache.Set(id, rec)
	}
	return rec, nil
}

func (e *Editor) alert(ctx context.Context, msg string) {
	if e.notifier == nil {
		return
	}
	if err := e.notifier.Alert(ctx, msg); err != nil {
		e.log.Debug("alert: %v", err)
	}
}
