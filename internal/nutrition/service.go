package nutrition

import (
	"context"
	"errors"
	"fmt"

	"github.com/hammamikhairi/nextday/internal/domain"
	"github.com/hammamikhairi/nextday/internal/logger"
)

// User-facing outcomes of a profile save.
const (
	MsgProfileSaved     = "Profile saved successfully"
	MsgProfileFailed    = "Failed to save profile"
	MsgProfileNetwork   = "Network error saving profile"
	MsgProfileNoBackend = "Profile storage is not configured"
	MsgRequiredFields   = "Please fill in all required fields"
)

// Option configures the Service.
type Option func(*Service)

// WithRemote makes Compute try the remote calculator before the local one.
func WithRemote(rc domain.RemoteCalculator) Option {
	return func(s *Service) { s.remote = rc }
}

// WithSaver sets the profile storage backend.
func WithSaver(ps domain.ProfileSaver) Option {
	return func(s *Service) { s.saver = ps }
}

// WithNotifier sets where save acknowledgments and alerts go.
func WithNotifier(n domain.Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// Service computes macro targets and saves profiles. Both collaborators
// are optional.
type Service struct {
	remote   domain.RemoteCalculator
	saver    domain.ProfileSaver
	notifier domain.Notifier
	log      *logger.Logger
}

// NewService creates a nutrition service with the given options.
func NewService(log *logger.Logger, opts ...Option) *Service {
	s := &Service{log: log}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Compute validates the profile and returns its MacroResult. When a remote
// calculator is configured it is asked first; any remote error yields the
// local result, tagged SourceFallback. The only error returned is a
// validation error wrapping domain.ErrInvalidProfile.
func (s *Service) Compute(ctx context.Context, p domain.Profile, diet domain.DietType) (domain.MacroResult, domain.ResultSource, error) {
	if err := p.Validate(); err != nil {
		return domain.MacroResult{}, domain.SourceLocal, err
	}

	if s.remote == nil {
		return Calculate(p, diet), domain.SourceLocal, nil
	}

	res, err := s.remote.CalculateNutrition(ctx, p, diet)
	if err != nil {
		s.log.Warn("remote nutrition calculation failed, using local calculation: %v", err)
		return Calculate(p, diet), domain.SourceFallback, nil
	}

	s.log.Debug("remote nutrition result: %d kcal", res.Calories)
	return res, domain.SourceRemote, nil
}

// Save persists the profile with its computed nutrition and tells the user
// how it went. Failures are returned as well as surfaced; nothing is retried.
func (s *Service) Save(ctx context.Context, p domain.Profile, diet domain.DietType, res domain.MacroResult) error {
	if s.saver == nil {
		s.alert(ctx, MsgProfileNoBackend)
		return fmt.Errorf("saving profile: %w", domain.ErrNotImplemented)
	}

	rec := NewProfileRecord(p, diet, res)
	if err := s.saver.SaveProfile(ctx, rec); err != nil {
		s.log.Error("save profile: %v", err)
		if errors.Is(err, domain.ErrRemoteStatus) {
			s.alert(ctx, MsgProfileFailed)
		} else {
			s.alert(ctx, MsgProfileNetwork)
		}
		return fmt.Errorf("saving profile: %w", err)
	}

	s.log.Info("profile saved (%s, %s, %d kcal)", rec.GoalLabel, diet, res.Calories)
	if s.notifier != nil {
		_ = s.notifier.Notify(ctx, MsgProfileSaved)
	}
	return nil
}

func (s *Service) alert(ctx context.Context, msg string) {
	if s.notifier != nil {
		_ = s.notifier.Alert(ctx, msg)
	}
}
