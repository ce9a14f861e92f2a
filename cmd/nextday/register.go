package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hammamikhairi/nextday/internal/display"
	"github.com/hammamikhairi/nextday/internal/domain"
	"github.com/hammamikhairi/nextday/internal/notify"
	"github.com/hammamikhairi/nextday/internal/nutrition"
	"github.com/hammamikhairi/nextday/internal/wizard"
)

var resumeID string

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Walk through the four-step sign-up wizard",
	Args:  cobra.NoArgs,
	RunE:  runRegister,
}

func init() {
	registerCmd.Flags().StringVar(&resumeID, "resume", "", "continue a saved registration session")
}

func runRegister(cmd *cobra.Command, args []string) error {
	cfg, log, closeLog, err := setup()
	if err != nil {
		return err
	}
	defer closeLog()

	store, closeStore, err := newStore(cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	engine := wizard.New(store, log)
	var session *domain.Session
	if resumeID != "" {
		session, err = engine.Status(ctx, resumeID)
	} else {
		session, err = engine.Start(ctx)
	}
	if err != nil {
		return err
	}

	client := newClient(cfg, log)
	queue := notify.NewQueue(log)
	picker := newPicker(cfg, log, queue)
	svc := nutrition.NewService(log,
		nutrition.WithRemote(client),
		nutrition.WithSaver(client),
		nutrition.WithNotifier(queue),
	)

	fmt.Print(display.RenderBanner())
	ui := display.NewUI(ctx, display.Deps{
		Engine: engine,
		Picker: picker,
		Form:   nutrition.NewForm(svc),
		Queue:  queue,
		Log:    log,
	}, session)

	var final *domain.Session
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		s, err := ui.Run()
		final = s
		return err
	})
	g.Go(func() error {
		// Mount failures are advisories, surfaced through the queue.
		_ = picker.Mount(gctx)
		if gctx.Err() == nil {
			ui.Mounted()
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if final != nil {
		fmt.Printf("session %s: step %d (%s)\n", final.ID, final.State.Step, final.State.Step)
		if final.State.SelectedAddress != "" {
			fmt.Printf("delivery address: %s\n", final.State.SelectedAddress)
		}
	}
	return nil
}
