package domain

// Macro is the daily gram target for one macronutrient together with the
// display range shown next to it.
type Macro struct {
	Grams int
	Min   int
	Max   int
}

// MacroResult is the full calculator output. It is always recomputed
// wholesale, never patched.
type MacroResult struct {
	Calories   int // kcal/day
	Kilojoules int
	Protein    Macro
	Carbs      Macro
	Fat        Macro
}

// PlaceholderResult is what the calculator shows before the first
// computation and after the form is cleared.
func PlaceholderResult() MacroResult {
	return MacroResult{
		Calories:   1941,
		Kilojoules: 8127,
		Protein:    Macro{Grams: 118, Min: 60, Max: 166},
		Carbs:      Macro{Grams: 259, Min: 207, Max: 348},
		Fat:        Macro{Grams: 65, Min: 40, Max: 89},
	}
}

// ResultSource records which path produced a MacroResult.
type ResultSource int

const (
	SourceLocal ResultSource = iota
	SourceRemote
	SourceFallback // remote was tried and failed
)

// String returns a human-readable source name.
func (s ResultSource) String() string {
	switch s {
	case SourceLocal:
		return "local"
	case SourceRemote:
		return "remote"
	case SourceFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// ProfileRecord is the payload persisted by the profile-storage endpoint.
// Activity and goal are stored as descriptive labels, not raw values.
type ProfileRecord struct {
	Age           int
	Gender        Gender
	Height        float64
	Weight        float64
	ActivityLabel string
	GoalLabel     string
	DietType      DietType
	Nutrition     MacroResult
}
