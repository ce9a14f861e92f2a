// Package nutrition computes daily calorie and macronutrient targets.
//
// [Calculate] is the pure Mifflin-St Jeor based engine. [Service] wraps it
// with an optional remote calculator and falls back to the local engine on
// any remote failure, and builds the payload for profile storage.
package nutrition

import (
	"math"

	"github.com/hammamikhairi/nextday/internal/domain"
)

// Energy density in kcal per gram.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9

	kilojoulesPerKcal = 4.184

	goalDelta = 500 // kcal/day surplus or deficit
)

// split is a macro distribution as fractions of the calorie target.
type split struct {
	protein, carbs, fat float64
}

var splits = map[domain.DietType]split{
	domain.DietBalanced:    {protein: 0.20, carbs: 0.50, fat: 0.30},
	domain.DietHighProtein: {protein: 0.35, carbs: 0.40, fat: 0.25},
}

// bounds are the multiplicative display range around a gram value.
type bounds struct {
	lo, hi float64
}

var (
	proteinBounds = bounds{lo: 0.5, hi: 1.4}
	carbsBounds   = bounds{lo: 0.8, hi: 1.35}
	fatBounds     = bounds{lo: 0.6, hi: 1.4}
)

// BMR returns the basal metabolic rate in kcal/day.
func BMR(p domain.Profile) float64 {
	base := 10*p.Weight + 6.25*p.Height - 5*float64(p.Age)
	if p.Gender == domain.GenderMale {
		return base + 5
	}
	return base - 161
}

// TDEE returns the total daily energy expenditure in kcal/day.
func TDEE(p domain.Profile) float64 {
	return BMR(p) * float64(p.Activity)
}

func goalOffset(g domain.Goal) int {
	switch g {
	case domain.GoalLose:
		return -goalDelta
	case domain.GoalGain:
		return goalDelta
	default:
		return 0
	}
}

// Calculate computes the full MacroResult. It performs no validation;
// callers reject malformed profiles with Profile.Validate first. Unknown
// diet types use the balanced split.
func Calculate(p domain.Profile, diet domain.DietType) domain.MacroResult {
	tdee := TDEE(p)
	offset := goalOffset(p.Goal)
	target := tdee + float64(offset)

	sp, ok := splits[diet]
	if !ok {
		sp = splits[domain.DietBalanced]
	}

	protein := round(target * sp.protein / kcalPerGramProtein)
	carbs := round(target * sp.carbs / kcalPerGramCarbs)
	fat := round(target * sp.fat / kcalPerGramFat)

	return domain.MacroResult{
		// The offset is integral, so rounding before applying it keeps the
		// goal delta exact.
		Calories:   round(tdee) + offset,
		Kilojoules: round(target * kilojoulesPerKcal),
		Protein:    withRange(protein, proteinBounds),
		Carbs:      withRange(carbs, carbsBounds),
		Fat:        withRange(fat, fatBounds),
	}
}

func withRange(grams int, b bounds) domain.Macro {
	return domain.Macro{
		Grams: grams,
		Min:   round(float64(grams) * b.lo),
		Max:   round(float64(grams) * b.hi),
	}
}

// round rounds half up, matching the rounding the web client used.
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}
