package nutrition

import "github.com/hammamikhairi/nextday/internal/domain"

// NewProfileRecord builds the profile-storage payload. Activity and goal are
// replaced by their descriptive labels.
func NewProfileRecord(p domain.Profile, diet domain.DietType, res domain.MacroResult) domain.ProfileRecord {
	return domain.ProfileRecord{
		Age:           p.Age,
		Gender:        p.Gender,
		Height:        p.Height,
		Weight:        p.Weight,
		ActivityLabel: p.Activity.Label(),
		GoalLabel:     p.Goal.Label(),
		DietType:      diet,
		Nutrition:     res,
	}
}
