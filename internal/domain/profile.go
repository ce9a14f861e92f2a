// Package domain defines the core types and interfaces for the NextDay
// sign-up client. All other packages depend on domain; domain depends on
// nothing.
package domain

import (
	"fmt"
	"strconv"
)

// Gender selects the Mifflin-St Jeor constant.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Goal shifts the calorie target away from maintenance.
type Goal string

const (
	GoalMaintain Goal = "maintain"
	GoalLose     Goal = "lose"
	GoalGain     Goal = "gain"
)

var goalLabels = map[Goal]string{
	GoalMaintain: "Maintain weight",
	GoalLose:     "Lose weight",
	GoalGain:     "Gain weight",
}

// Label returns the descriptive form stored with a saved profile.
// Unknown goals fall back to their raw value.
func (g Goal) Label() string {
	if l, ok := goalLabels[g]; ok {
		return l
	}
	return string(g)
}

// ActivityFactor is the TDEE multiplier applied to BMR.
type ActivityFactor float64

const (
	ActivitySedentary  ActivityFactor = 1.2
	ActivityLight      ActivityFactor = 1.375
	ActivityModerate   ActivityFactor = 1.55
	ActivityActive     ActivityFactor = 1.725
	ActivityVeryActive ActivityFactor = 1.9
)

// ActivityFactors lists the allowed factors, least active first.
var ActivityFactors = []ActivityFactor{
	ActivitySedentary,
	ActivityLight,
	ActivityModerate,
	ActivityActive,
	ActivityVeryActive,
}

var activityLabels = map[ActivityFactor]string{
	ActivitySedentary:  "Sedentary: little or no exercise",
	ActivityLight:      "Light: exercise 1-3 times/week",
	ActivityModerate:   "Moderate: exercise 4-5 times/week",
	ActivityActive:     "Active: daily exercise or intense exercise 3-4 times/week",
	ActivityVeryActive: "Very Active: intense exercise 6-7 times/week",
}

// Label returns the descriptive form stored with a saved profile.
// Unknown factors fall back to their shortest decimal representation.
func (a ActivityFactor) Label() string {
	if l, ok := activityLabels[a]; ok {
		return l
	}
	return a.String()
}

// String returns the factor as the shortest decimal, e.g. "1.55".
func (a ActivityFactor) String() string {
	return strconv.FormatFloat(float64(a), 'f', -1, 64)
}

// Valid reports whether a is one of the five allowed factors.
func (a ActivityFactor) Valid() bool {
	_, ok := activityLabels[a]
	return ok
}

// DietType selects the macro percentage split.
type DietType string

const (
	DietBalanced    DietType = "balanced"
	DietHighProtein DietType = "high-protein"
)

// DietTypes lists the selectable diet types in display order.
var DietTypes = []DietType{DietBalanced, DietHighProtein}

// Profile is the user input to the nutrition calculator.
type Profile struct {
	Age      int     // years
	Gender   Gender  // male or female
	Height   float64 // cm
	Weight   float64 // kg
	Activity ActivityFactor
	Goal     Goal
}

// DefaultProfile returns the values the calculator form starts with.
func DefaultProfile() Profile {
	return Profile{
		Age:      30,
		Gender:   GenderMale,
		Height:   170,
		Weight:   70,
		Activity: ActivityModerate,
		Goal:     GoalMaintain,
	}
}

// Validate rejects input the calculator must not be invoked with.
// The returned error wraps ErrInvalidProfile.
func (p Profile) Validate() error {
	switch {
	case p.Age <= 0:
		return fmt.Errorf("%w: age must be positive, got %d", ErrInvalidProfile, p.Age)
	case p.Height <= 0:
		return fmt.Errorf("%w: height must be positive, got %g", ErrInvalidProfile, p.Height)
	case p.Weight <= 0:
		return fmt.Errorf("%w: weight must be positive, got %g", ErrInvalidProfile, p.Weight)
	case p.Gender != GenderMale && p.Gender != GenderFemale:
		return fmt.Errorf("%w: unknown gender %q", ErrInvalidProfile, p.Gender)
	case !p.Activity.Valid():
		return fmt.Errorf("%w: unsupported activity factor %s", ErrInvalidProfile, p.Activity)
	}
	if _, ok := goalLabels[p.Goal]; !ok {
		return fmt.Errorf("%w: unknown goal %q", ErrInvalidProfile, p.Goal)
	}
	return nil
}
