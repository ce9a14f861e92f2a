package nutrition

import (
	"context"
	"errors"

	"github.com/hammamikhairi/nextday/internal/domain"
)

// Form is the calculator's in-memory state: the profile being edited, the
// selected diet type and the last result shown.
type Form struct {
	Profile domain.Profile
	Diet    domain.DietType
	Result  domain.MacroResult
	Source  domain.ResultSource

	svc *Service
}

// NewForm returns a form with the default profile and placeholder result.
func NewForm(svc *Service) *Form {
	return &Form{
		Profile: domain.DefaultProfile(),
		Diet:    domain.DietBalanced,
		Result:  domain.PlaceholderResult(),
		Source:  domain.SourceLocal,
		svc:     svc,
	}
}

// SetDiet switches the diet type and recomputes locally right away so the
// display follows the selection. An invalid profile leaves the result alone.
func (f *Form) SetDiet(d domain.DietType) {
	f.Diet = d
	if f.Profile.Validate() != nil {
		return
	}
	f.Result = Calculate(f.Profile, f.Diet)
	f.Source = domain.SourceLocal
}

// Calculate recomputes the result through the service. An incomplete
// profile raises the required-fields alert and keeps the previous result.
func (f *Form) Calculate(ctx context.Context) error {
	res, src, err := f.svc.Compute(ctx, f.Profile, f.Diet)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidProfile) {
			f.svc.alert(ctx, MsgRequiredFields)
		}
		return err
	}
	f.Result = res
	f.Source = src
	return nil
}

// Save persists the current profile and result.
func (f *Form) Save(ctx context.Context) error {
	return f.svc.Save(ctx, f.Profile, f.Diet, f.Result)
}

// Clear empties the numeric fields, resets the selections to their
// defaults and restores the placeholder result. The diet type is kept.
func (f *Form) Clear() {
	f.Profile = domain.Profile{
		Gender:   domain.GenderMale,
		Activity: domain.ActivityModerate,
		Goal:     domain.GoalMaintain,
	}
	f.Result = domain.PlaceholderResult()
	f.Source = domain.SourceLocal
}
