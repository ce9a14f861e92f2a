package wizard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hammamikhairi/nextday/internal/domain"
	"github.com/hammamikhairi/nextday/internal/logger"
)

// Option configures the engine.
type Option func(*Engine)

// WithClock overrides the time source used for session timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// Engine manages registration sessions. It depends only on the session
// store port and is fully testable with the in-memory store.
type Engine struct {
	store domain.SessionStore
	log   *logger.Logger
	now   func() time.Time
}

// New creates a wizard engine with the given dependencies and options.
func New(store domain.SessionStore, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		log:   log,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start begins a new registration on the phone step.
func (e *Engine) Start(ctx context.Context) (*domain.Session, error) {
	now := e.now()
	session := &domain.Session{
		ID:        uuid.NewString(),
		State:     Initial(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := e.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}

	e.log.Info("started registration %s", session.ID)
	return session, nil
}

// Status returns the session as stored.
func (e *Engine) Status(ctx context.Context, sessionID string) (*domain.Session, error) {
	return e.store.Load(ctx, sessionID)
}

// SetPhone edits the phone number of a session on the phone step.
func (e *Engine) SetPhone(ctx context.Context, sessionID, phone string) (*domain.Session, error) {
	return e.apply(ctx, sessionID, "set phone", func(s domain.WizardState) domain.WizardState {
		return SetPhone(s, phone)
	})
}

// SetCode edits the confirmation code of a session on the code step.
func (e *Engine) SetCode(ctx context.Context, sessionID, code string) (*domain.Session, error) {
	return e.apply(ctx, sessionID, "set code", func(s domain.WizardState) domain.WizardState {
		return SetCode(s, code)
	})
}

// ConfirmAddress stores the address emitted by the picker.
func (e *Engine) ConfirmAddress(ctx context.Context, sessionID, address string) (*domain.Session, error) {
	return e.apply(ctx, sessionID, "confirm address", func(s domain.WizardState) domain.WizardState {
		return ConfirmAddress(s, address)
	})
}

// Submit advances the session when its current guard holds. A blocked
// submit returns the unchanged session and no error.
func (e *Engine) Submit(ctx context.Context, sessionID string) (*domain.Session, error) {
	return e.apply(ctx, sessionID, "submit", Submit)
}

// apply loads a session, runs a transition and saves only if the state
// changed, so a rejected transition has no side effect.
func (e *Engine) apply(ctx context.Context, sessionID, op string, fn func(domain.WizardState) domain.WizardState) (*domain.Session, error) {
	session, err := e.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}

	next := fn(session.State)
	if next == session.State {
		e.log.Debug("session %s: %s is a no-op on step %s", sessionID, op, session.State.Step)
		return session, nil
	}

	updated := *session
	updated.State = next
	updated.UpdatedAt = e.now()

	if err := e.store.Save(ctx, &updated); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}

	if next.Step != session.State.Step {
		e.log.Info("session %s advanced to step %d (%s)", sessionID, next.Step, next.Step)
	}
	return &updated, nil
}
