package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/nextday/internal/display"
	"github.com/hammamikhairi/nextday/internal/domain"
	"github.com/hammamikhairi/nextday/internal/notify"
	"github.com/hammamikhairi/nextday/internal/nutrition"
)

var calcFlags struct {
	age      int
	gender   string
	height   float64
	weight   float64
	activity float64
	goal     string
	diet     string
	remote   bool
	save     bool
}

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate daily calories and macros",
	Args:  cobra.NoArgs,
	RunE:  runCalc,
}

func init() {
	d := domain.DefaultProfile()
	f := calcCmd.Flags()
	f.IntVar(&calcFlags.age, "age", d.Age, "age in years")
	f.StringVar(&calcFlags.gender, "gender", string(d.Gender), "male or female")
	f.Float64Var(&calcFlags.height, "height", d.Height, "height in cm")
	f.Float64Var(&calcFlags.weight, "weight", d.Weight, "weight in kg")
	f.Float64Var(&calcFlags.activity, "activity", float64(d.Activity), "activity factor (1.2, 1.375, 1.55, 1.725, 1.9)")
	f.StringVar(&calcFlags.goal, "goal", string(d.Goal), "maintain, lose or gain")
	f.StringVar(&calcFlags.diet, "diet", string(domain.DietBalanced), "balanced or high-protein")
	f.BoolVar(&calcFlags.remote, "remote", false, "ask the NextDay API first, falling back to the local calculation")
	f.BoolVar(&calcFlags.save, "save", false, "save the profile to the NextDay API")
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, log, closeLog, err := setup()
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := cmd.Context()
	client := newClient(cfg, log)
	opts := []nutrition.Option{
		nutrition.WithNotifier(notify.NewCLINotifier(log, nil)),
		nutrition.WithSaver(client),
	}
	if calcFlags.remote {
		opts = append(opts, nutrition.WithRemote(client))
	}

	form := nutrition.NewForm(nutrition.NewService(log, opts...))
	form.Profile = domain.Profile{
		Age:      calcFlags.age,
		Gender:   domain.Gender(calcFlags.gender),
		Height:   calcFlags.height,
		Weight:   calcFlags.weight,
		Activity: domain.ActivityFactor(calcFlags.activity),
		Goal:     domain.Goal(calcFlags.goal),
	}
	form.Diet = domain.DietType(calcFlags.diet)

	if err := form.Calculate(ctx); err != nil {
		return err
	}

	fmt.Printf("%s · %s · activity %s\n", form.Profile.Goal.Label(), form.Diet,
		strconv.FormatFloat(calcFlags.activity, 'f', -1, 64))
	fmt.Println(display.RenderResult(form.Result, form.Source))

	if calcFlags.save {
		return form.Save(ctx)
	}
	return nil
}
