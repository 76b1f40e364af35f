package main

import (
	"context"
	"errors"

	"lg/adaptive-tdee-api/metabolism"
)

// errNotFound is returned by Store methods that address a single row which
// does not exist.
var errNotFound = errors.New("not found")

// Store persists the single implicit user's profile, daily log and check-in
// history. The engine never touches it; handlers load snapshots, compute, and
// write results back.
type Store interface {
	// GetProfile returns nil (and no error) when no profile has been saved.
	GetProfile(ctx context.Context) (*metabolism.UserProfile, error)
	// SaveProfile replaces the profile wholesale.
	SaveProfile(ctx context.Context, p metabolism.UserProfile) error

	// ListDailyLog returns every entry, ascending by date.
	ListDailyLog(ctx context.Context) ([]metabolism.DailyLogEntry, error)
	// UpsertDailyLog writes the entry for its date; a second write for the
	// same date replaces the first.
	UpsertDailyLog(ctx context.Context, e metabolism.DailyLogEntry) (metabolism.DailyLogEntry, error)
	DeleteDailyLog(ctx context.Context, date string) error

	SaveCheckin(ctx context.Context, ci weeklyCheckin) error
	// ListCheckins returns check-ins newest first.
	ListCheckins(ctx context.Context) ([]weeklyCheckin, error)
	// LatestCheckin returns nil (and no error) when there are none.
	LatestCheckin(ctx context.Context) (*weeklyCheckin, error)

	// Clear removes all data for the user.
	Clear(ctx context.Context) error
	Close()
}

var (
	_ Store = (*pgStore)(nil)
	_ Store = (*sqliteStore)(nil)
)
