// Package wizard implements the registration step state machine.
//
// The transition functions are pure: they take a WizardState and return the
// next one. A transition whose guard is not met returns its input unchanged;
// the flow never reports why it cannot continue. [Engine] applies the same
// transitions to persisted sessions.
package wizard

import (
	"unicode/utf8"

	"github.com/hammamikhairi/nextday/internal/domain"
)

// MinCodeLength is the shortest SMS code accepted on the code step.
const MinCodeLength = 6

// Initial returns the state every registration starts in.
func Initial() domain.WizardState {
	return domain.WizardState{Step: domain.FirstStep}
}

// CanSubmit reports whether the guard of the current step is satisfied.
func CanSubmit(s domain.WizardState) bool {
	switch s.Step {
	case domain.StepPhone:
		return s.Phone != ""
	case domain.StepCode:
		return utf8.RuneCountInString(s.Code) >= MinCodeLength
	case domain.StepAddress:
		return s.SelectedAddress != ""
	default:
		return false
	}
}

// Submit advances one step when the current guard holds. Otherwise, and on
// the last step, the state is returned as is.
func Submit(s domain.WizardState) domain.WizardState {
	if !CanSubmit(s) {
		return s
	}
	s.Step++
	return s
}

// SetPhone edits the phone number. Only applies on the phone step.
func SetPhone(s domain.WizardState, phone string) domain.WizardState {
	if s.Step == domain.StepPhone {
		s.Phone = phone
	}
	return s
}

// SetCode edits the confirmation code. Only applies on the code step.
func SetCode(s domain.WizardState, code string) domain.WizardState {
	if s.Step == domain.StepCode {
		s.Code = code
	}
	return s
}

// ConfirmAddress records the address confirmed in the picker, replacing any
// earlier confirmation. It never advances the step; the picker is only
// mounted on the address step, so other steps ignore it.
func ConfirmAddress(s domain.WizardState, address string) domain.WizardState {
	if s.Step == domain.StepAddress {
		s.SelectedAddress = address
	}
	return s
}
