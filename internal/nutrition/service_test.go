package nutrition

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/nextday/internal/domain"
	"github.com/hammamikhairi/nextday/internal/logger"
)

type fakeRemote struct {
	res   domain.MacroResult
	err   error
	calls int
}

func (f *fakeRemote) CalculateNutrition(ctx context.Context, p domain.Profile, diet domain.DietType) (domain.MacroResult, error) {
	f.calls++
	return f.res, f.err
}

type fakeSaver struct {
	err error
	got []domain.ProfileRecord
}

func (f *fakeSaver) SaveProfile(ctx context.Context, rec domain.ProfileRecord) error {
	f.got = append(f.got, rec)
	return f.err
}

type recordingNotifier struct {
	mu      sync.Mutex
	notices []string
	alerts  []string
}

func (n *recordingNotifier) Notify(ctx context.Context, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, message)
	return nil
}

func (n *recordingNotifier) Alert(ctx context.Context, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.alerts = append(n.alerts, message)
	return nil
}

func quietLog() *logger.Logger { return logger.New(logger.LevelOff, nil) }

func TestComputeSources(t *testing.T) {
	p := domain.DefaultProfile()
	local := Calculate(p, domain.DietBalanced)
	remoteRes := domain.MacroResult{Calories: 2000, Kilojoules: 8368}

	tests := []struct {
		name    string
		remote  *fakeRemote
		want    domain.MacroResult
		wantSrc domain.ResultSource
	}{
		{"no remote", nil, local, domain.SourceLocal},
		{"remote ok", &fakeRemote{res: remoteRes}, remoteRes, domain.SourceRemote},
		{"remote status error", &fakeRemote{err: fmt.Errorf("api: %w", domain.ErrRemoteStatus)}, local, domain.SourceFallback},
		{"remote transport error", &fakeRemote{err: errors.New("connection refused")}, local, domain.SourceFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []Option
			if tt.remote != nil {
				opts = append(opts, WithRemote(tt.remote))
			}
			svc := NewService(quietLog(), opts...)

			res, src, err := svc.Compute(context.Background(), p, domain.DietBalanced)
			require.NoError(t, err)
			require.Equal(t, tt.want, res)
			require.Equal(t, tt.wantSrc, src)
		})
	}
}

func TestComputeRejectsInvalidProfileBeforeRemote(t *testing.T) {
	remote := &fakeRemote{}
	svc := NewService(quietLog(), WithRemote(remote))

	p := domain.DefaultProfile()
	p.Age = 0

	_, _, err := svc.Compute(context.Background(), p, domain.DietBalanced)
	require.ErrorIs(t, err, domain.ErrInvalidProfile)
	require.Zero(t, remote.calls)
}

func TestSaveOutcomes(t *testing.T) {
	tests := []struct {
		name       string
		saveErr    error
		wantNotice []string
		wantAlert  []string
	}{
		{"saved", nil, []string{MsgProfileSaved}, nil},
		{"rejected", fmt.Errorf("api: %w", domain.ErrRemoteStatus), nil, []string{MsgProfileFailed}},
		{"network", errors.New("dial tcp: timeout"), nil, []string{MsgProfileNetwork}},
		{"missing route", fmt.Errorf("api: %w: %w", domain.ErrNotFound, domain.ErrRemoteStatus), nil, []string{MsgProfileFailed}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saver := &fakeSaver{err: tt.saveErr}
			notes := &recordingNotifier{}
			svc := NewService(quietLog(), WithSaver(saver), WithNotifier(notes))

			p := domain.DefaultProfile()
			res := Calculate(p, domain.DietBalanced)
			err := svc.Save(context.Background(), p, domain.DietBalanced, res)

			if tt.saveErr != nil {
				require.ErrorIs(t, err, tt.saveErr)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.wantNotice, notes.notices)
			require.Equal(t, tt.wantAlert, notes.alerts)

			require.Len(t, saver.got, 1)
			require.Equal(t, "Moderate: exercise 4-5 times/week", saver.got[0].ActivityLabel)
			require.Equal(t, "Maintain weight", saver.got[0].GoalLabel)
			require.Equal(t, res, saver.got[0].Nutrition)
		})
	}
}

func TestSaveWithoutBackend(t *testing.T) {
	notes := &recordingNotifier{}
	svc := NewService(quietLog(), WithNotifier(notes))

	err := svc.Save(context.Background(), domain.DefaultProfile(), domain.DietBalanced, domain.PlaceholderResult())
	require.ErrorIs(t, err, domain.ErrNotImplemented)
	require.Equal(t, []string{MsgProfileNoBackend}, notes.alerts)
}
