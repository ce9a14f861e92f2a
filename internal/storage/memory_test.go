package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/nextday/internal/domain"
	"github.com/hammamikhairi/nextday/internal/logger"
)

// storeFactories runs every contract test against each implementation.
func storeFactories(t *testing.T) map[string]func() domain.SessionStore {
	log := logger.New(logger.LevelOff, nil)
	return map[string]func() domain.SessionStore{
		"memory": func() domain.SessionStore { return NewMemoryStore(log) },
		"sqlite": func() domain.SessionStore {
			s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "sessions.db"), log)
			require.NoError(t, err)
			t.Cleanup(func() { s.Close() })
			return s
		},
	}
}

func testSession(id string, step domain.Step, updated time.Time) *domain.Session {
	return &domain.Session{
		ID: id,
		State: domain.WizardState{
			Step:            step,
			Phone:           "0500000000",
			Code:            "123456",
			SelectedAddress: "24.713600, 46.675300",
		},
		CreatedAt: updated.Add(-time.Minute),
		UpdatedAt: updated,
	}
}

func TestStoreCRUD(t *testing.T) {
	for name, newStore := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			store := newStore()
			ctx := context.Background()
			now := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

			session := testSession("test-session-1", domain.StepAddress, now)

			// Save.
			require.NoError(t, store.Save(ctx, session))

			// Load.
			loaded, err := store.Load(ctx, "test-session-1")
			require.NoError(t, err)
			require.Equal(t, session.State, loaded.State)
			require.True(t, session.UpdatedAt.Equal(loaded.UpdatedAt))
			require.True(t, session.CreatedAt.Equal(loaded.CreatedAt))

			// Overwrite.
			session.State.Step = domain.StepNutrition
			require.NoError(t, store.Save(ctx, session))
			loaded, err = store.Load(ctx, "test-session-1")
			require.NoError(t, err)
			require.Equal(t, domain.StepNutrition, loaded.State.Step)

			// Load nonexistent.
			_, err = store.Load(ctx, "nonexistent")
			require.ErrorIs(t, err, domain.ErrNotFound)

			// Delete.
			require.NoError(t, store.Delete(ctx, "test-session-1"))
			_, err = store.Load(ctx, "test-session-1")
			require.ErrorIs(t, err, domain.ErrNotFound)

			// Delete nonexistent.
			require.ErrorIs(t, store.Delete(ctx, "nonexistent"), domain.ErrNotFound)
		})
	}
}

func TestStoreListNewestFirst(t *testing.T) {
	for name, newStore := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			store := newStore()
			ctx := context.Background()
			base := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

			for i, id := range []string{"s1", "s2", "s3"} {
				require.NoError(t, store.Save(ctx, testSession(id, domain.StepPhone, base.Add(time.Duration(i)*time.Second))))
			}

			list, err := store.List(ctx)
			require.NoError(t, err)
			require.Len(t, list, 3)
			require.Equal(t, "s3", list[0].ID)
			require.Equal(t, "s1", list[2].ID)
		})
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore(logger.New(logger.LevelOff, nil))
	ctx := context.Background()

	session := testSession("s1", domain.StepPhone, time.Now())
	require.NoError(t, store.Save(ctx, session))

	session.State.Phone = "mutated after save"
	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, "0500000000", loaded.State.Phone)

	loaded.State.Step = domain.StepNutrition
	again, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, domain.StepPhone, again.State.Step)
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	path := filepath.Join(t.TempDir(), "sessions.db")
	ctx := context.Background()

	first, err := NewSQLiteStore(path, log)
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, testSession("resume-me", domain.StepCode, time.Now())))
	require.NoError(t, first.Close())

	second, err := NewSQLiteStore(path, log)
	require.NoError(t, err)
	defer second.Close()

	loaded, err := second.Load(ctx, "resume-me")
	require.NoError(t, err)
	require.Equal(t, domain.StepCode, loaded.State.Step)
}
