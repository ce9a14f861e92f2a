package api

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/hammamikhairi/nextday/internal/domain"
)

const (
	pathCalculate = "/nutrition/calculate-nutrition"
	pathProfiles  = "/nutrition/profiles"
)

// errMalformed marks a 2xx response that does not carry a usable result.
var errMalformed = errors.New("malformed nutrition result")

type calculateRequest struct {
	Age      int     `json:"age"`
	Gender   string  `json:"gender"`
	Height   float64 `json:"height"`
	Weight   float64 `json:"weight"`
	Activity float64 `json:"activity"`
	Goal     string  `json:"goal"`
	DietType string  `json:"dietType"`
}

type calculateResponse struct {
	Results *wireResults `json:"results"`
}

// wireResults is the server's result shape. Ranges come either as a
// "min - max" string or as explicit bounds.
type wireResults struct {
	Protein  wireMacro `json:"protein"`
	Carbs    wireMacro `json:"carbs"`
	Fat      wireMacro `json:"fat"`
	Calories float64   `json:"calories"`
	KJ       float64   `json:"kj"`
}

type wireMacro struct {
	Value float64 `json:"value"`
	Range string  `json:"range,omitempty"`
	Min   *int    `json:"min,omitempty"`
	Max   *int    `json:"max,omitempty"`
}

type profileRequest struct {
	Age       int           `json:"age"`
	Gender    string        `json:"gender"`
	Height    float64       `json:"height"`
	Weight    float64       `json:"weight"`
	Activity  string        `json:"activity"`
	Goal      string        `json:"goal"`
	DietType  string        `json:"dietType"`
	Nutrition wireNutrition `json:"nutrition"`
}

type wireNutrition struct {
	Calories int       `json:"calories"`
	Protein  wireBound `json:"protein"`
	Carbs    wireBound `json:"carbs"`
	Fat      wireBound `json:"fat"`
}

type wireBound struct {
	Value int `json:"value"`
	Min   int `json:"min"`
	Max   int `json:"max"`
}

// CalculateNutrition asks the server for a MacroResult.
func (c *Client) CalculateNutrition(ctx context.Context, p domain.Profile, diet domain.DietType) (domain.MacroResult, error) {
	req := calculateRequest{
		Age:      p.Age,
		Gender:   string(p.Gender),
		Height:   p.Height,
		Weight:   p.Weight,
		Activity: float64(p.Activity),
		Goal:     string(p.Goal),
		DietType: string(diet),
	}

	var resp calculateResponse
	if err := c.do(ctx, http.MethodPost, pathCalculate, req, &resp); err != nil {
		return domain.MacroResult{}, err
	}
	if resp.Results == nil || resp.Results.Calories <= 0 {
		return domain.MacroResult{}, fmt.Errorf("api: %w", errMalformed)
	}

	r := resp.Results
	protein, err := r.Protein.macro()
	if err != nil {
		return domain.MacroResult{}, fmt.Errorf("api: protein: %w", err)
	}
	carbs, err := r.Carbs.macro()
	if err != nil {
		return domain.MacroResult{}, fmt.Errorf("api: carbs: %w", err)
	}
	fat, err := r.Fat.macro()
	if err != nil {
		return domain.MacroResult{}, fmt.Errorf("api: fat: %w", err)
	}

	return domain.MacroResult{
		Calories:   roundInt(r.Calories),
		Kilojoules: roundInt(r.KJ),
		Protein:    protein,
		Carbs:      carbs,
		Fat:        fat,
	}, nil
}

// SaveProfile stores a nutrition profile.
func (c *Client) SaveProfile(ctx context.Context, rec domain.ProfileRecord) error {
	n := rec.Nutrition
	req := profileRequest{
		Age:      rec.Age,
		Gender:   string(rec.Gender),
		Height:   rec.Height,
		Weight:   rec.Weight,
		Activity: rec.ActivityLabel,
		Goal:     rec.GoalLabel,
		DietType: string(rec.DietType),
		Nutrition: wireNutrition{
			Calories: n.Calories,
			Protein:  bound(n.Protein),
			Carbs:    bound(n.Carbs),
			Fat:      bound(n.Fat),
		},
	}

	if err := c.do(ctx, http.MethodPost, pathProfiles, req, nil); err != nil {
		return err
	}
	c.log.Debug("api: profile stored")
	return nil
}

func bound(m domain.Macro) wireBound {
	return wireBound{Value: m.Grams, Min: m.Min, Max: m.Max}
}

func (w wireMacro) macro() (domain.Macro, error) {
	m := domain.Macro{Grams: roundInt(w.Value)}
	if w.Min != nil && w.Max != nil {
		m.Min, m.Max = *w.Min, *w.Max
		return m, nil
	}
	lo, hi, ok := ParseRange(w.Range)
	if !ok {
		return domain.Macro{}, fmt.Errorf("%w: range %q", errMalformed, w.Range)
	}
	m.Min, m.Max = lo, hi
	return m, nil
}

// ParseRange reads a display range such as "60 - 166". Non-digit characters
// around each bound are ignored.
func ParseRange(s string) (lo, hi int, ok bool) {
	parts := strings.Split(s, "-")
	var nums []int
	for _, p := range parts {
		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, p)
		if digits == "" {
			continue
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			return 0, 0, false
		}
		nums = append(nums, n)
	}
	if len(nums) != 2 {
		return 0, 0, false
	}
	return nums[0], nums[1], true
}

func roundInt(x float64) int {
	return int(math.Floor(x + 0.5))
}
