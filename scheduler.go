package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// startScheduler runs the weekly check-in on spec (standard 5-field cron,
// minute granularity). The caller stops the returned cron on shutdown.
func startScheduler(spec string, store Store) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		runScheduledCheckin(context.Background(), store, time.Now())
	})
	if err != nil {
		return nil, fmt.Errorf("schedule check-in %q: %w", spec, err)
	}
	c.Start()
	log.Printf("[scheduler] weekly check-in scheduled: %s", spec)
	return c, nil
}

// runScheduledCheckin records a check-in if the week is eligible. Ineligible
// weeks are logged and skipped.
func runScheduledCheckin(ctx context.Context, store Store, now time.Time) {
	ci, eligibility, err := recordCheckin(ctx, store, now, nil)
	switch {
	case errors.Is(err, errCheckinNotEligible):
		log.Printf("[scheduler] skipped: %s", eligibility.Reason)
	case err != nil:
		log.Printf("[scheduler] check-in failed: %v", err)
	default:
		log.Printf("[scheduler] week %d check-in recorded: %s (%+d kcal, target %d)",
			ci.WeekNumber, ci.Action, ci.CalorieChange, ci.TargetCalories)
	}
}
