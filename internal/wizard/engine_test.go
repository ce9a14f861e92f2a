package wizard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/nextday/internal/domain"
	"github.com/hammamikhairi/nextday/internal/logger"
	"github.com/hammamikhairi/nextday/internal/storage"
)

func setupEngine(t *testing.T) (*Engine, *storage.MemoryStore, context.Context) {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	store := storage.NewMemoryStore(log)
	tick := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}
	return New(store, log, WithClock(clock)), store, context.Background()
}

func TestStartSession(t *testing.T) {
	eng, store, ctx := setupEngine(t)

	session, err := eng.Start(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, session.ID)
	require.Equal(t, Initial(), session.State)

	stored, err := store.Load(ctx, session.ID)
	require.NoError(t, err)
	require.Equal(t, session.State, stored.State)
}

func TestEngineWalksThroughSteps(t *testing.T) {
	eng, _, ctx := setupEngine(t)

	session, err := eng.Start(ctx)
	require.NoError(t, err)
	id := session.ID

	// Blocked submit: nothing changes, no error.
	s, err := eng.Submit(ctx, id)
	require.NoError(t, err)
	require.Equal(t, domain.StepPhone, s.State.Step)
	require.Equal(t, session.UpdatedAt, s.UpdatedAt)

	_, err = eng.SetPhone(ctx, id, "0500000000")
	require.NoError(t, err)
	s, err = eng.Submit(ctx, id)
	require.NoError(t, err)
	require.Equal(t, domain.StepCode, s.State.Step)

	_, err = eng.SetCode(ctx, id, "12345")
	require.NoError(t, err)
	s, err = eng.Submit(ctx, id)
	require.NoError(t, err)
	require.Equal(t, domain.StepCode, s.State.Step)

	_, err = eng.SetCode(ctx, id, "123456")
	require.NoError(t, err)
	s, err = eng.Submit(ctx, id)
	require.NoError(t, err)
	require.Equal(t, domain.StepAddress, s.State.Step)

	s, err = eng.ConfirmAddress(ctx, id, "Olaya St, Riyadh")
	require.NoError(t, err)
	require.Equal(t, domain.StepAddress, s.State.Step)

	s, err = eng.Submit(ctx, id)
	require.NoError(t, err)
	require.Equal(t, domain.StepNutrition, s.State.Step)
	require.True(t, s.Completed())

	final, err := eng.Status(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Olaya St, Riyadh", final.State.SelectedAddress)
	require.True(t, final.UpdatedAt.After(final.CreatedAt))
}

func TestEngineUnknownSession(t *testing.T) {
	eng, _, ctx := setupEngine(t)

	_, err := eng.Submit(ctx, "nope")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = eng.Status(ctx, "nope")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
