package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/nextday/internal/display"
	"github.com/hammamikhairi/nextday/internal/domain"
	"github.com/hammamikhairi/nextday/internal/meal"
	"github.com/hammamikhairi/nextday/internal/notify"
)

var mealOffline bool

var mealCmd = &cobra.Command{
	Use:   "meal <id>",
	Short: "Load a meal record for editing",
	Args:  cobra.ExactArgs(1),
	RunE:  runMeal,
}

func init() {
	mealCmd.Flags().BoolVar(&mealOffline, "offline", false, "use the built-in sample menu instead of the API")
}

func runMeal(cmd *cobra.Command, args []string) error {
	cfg, log, closeLog, err := setup()
	if err != nil {
		return err
	}
	defer closeLog()

	var src domain.MealSource
	var sample *meal.MemorySource
	if mealOffline {
		sample = meal.NewMemorySource(log)
		src = sample
	} else {
		src = newClient(cfg, log)
	}

	form := &meal.Form{}
	editor := meal.NewEditor(src, form, log,
		meal.WithCacheTTL(cfg.Cache.MealTTL),
		meal.WithNotifier(notify.NewCLINotifier(log, nil)),
	)

	id := args[0]
	if _, err := editor.Open(cmd.Context(), id); err != nil {
		if sample != nil && errors.Is(err, domain.ErrNotFound) {
			fmt.Println(sampleHint(sample.IDs()))
		}
		return err
	}
	fmt.Println(display.RenderMeal(id, form.Fields()))
	return nil
}

func sampleHint(ids []string) string {
	return "sample meals: " + strings.Join(ids, ", ")
}
