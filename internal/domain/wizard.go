package domain

import "time"

// Step is a position in the registration flow.
type Step int

const (
	StepPhone     Step = 1
	StepCode      Step = 2
	StepAddress   Step = 3
	StepNutrition Step = 4
)

// FirstStep and LastStep bound every WizardState.Step.
const (
	FirstStep = StepPhone
	LastStep  = StepNutrition
)

// String returns a human-readable step name.
func (s Step) String() string {
	switch s {
	case StepPhone:
		return "phone"
	case StepCode:
		return "code"
	case StepAddress:
		return "address"
	case StepNutrition:
		return "nutrition"
	default:
		return "unknown"
	}
}

// WizardState is the registration flow state. Values are replaced, never
// mutated in place, by the transition functions in the wizard package.
type WizardState struct {
	Step            Step
	Phone           string
	Code            string
	SelectedAddress string
}

// Session is a persisted registration run.
type Session struct {
	ID        string
	State     WizardState
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Completed reports whether the session reached the nutrition step.
func (s *Session) Completed() bool {
	return s.State.Step == LastStep
}
