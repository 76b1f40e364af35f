package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lg/adaptive-tdee-api/metabolism"
)

// pgStore is the Postgres-backed Store. Schema lives in db/ and is applied by
// cmd/migrate.
type pgStore struct {
	pool *pgxpool.Pool
}

// newPGStore creates a connection pool. We use a pool (not a single conn)
// because managed Postgres providers close idle connections.
func newPGStore(ctx context.Context, dbURL string) (*pgStore, error) {
	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("parse DB URL: %w", err)
	}
	// Use simple query protocol to avoid "cached plan must not change result type"
	// errors from server-side prepared statement caches after schema changes.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Println("DB pool ready!")
	return &pgStore{pool: pool}, nil
}

/* ─── Database helpers ────────────────────────────────────────────────── */

// queryOne runs a query and scans the first row into T using RowToStructByName.
// Logs query and scan errors for debugging (e.g. struct/column mismatches).
func queryOne[T any](ctx context.Context, pool *pgxpool.Pool, sql string, args pgx.NamedArgs) (T, error) {
	rows, err := pool.Query(ctx, sql, args)
	if err != nil {
		log.Printf("[queryOne] Query error: %v", err)
		var zero T
		return zero, err
	}
	result, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		log.Printf("[queryOne] Scan error: %v", err)
	}
	return result, err
}

// queryMany runs a query and scans all rows into []T using RowToStructByName.
func queryMany[T any](ctx context.Context, pool *pgxpool.Pool, sql string, args pgx.NamedArgs) ([]T, error) {
	rows, err := pool.Query(ctx, sql, args)
	if err != nil {
		log.Printf("[queryMany] Query error: %v", err)
		return nil, err
	}
	results, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		log.Printf("[queryMany] Scan error: %v", err)
	}
	return results, err
}

const checkinColumns = `id, date, week_number, start_weight_kg, end_weight_kg,
	weight_change_percent, avg_calories, days_logged, action, calorie_change,
	target_calories, rationale, notes, created_at`

/* ─── Profile ────────────────────────────────────────────────────────── */

func (s *pgStore) GetProfile(ctx context.Context) (*metabolism.UserProfile, error) {
	row, err := queryOne[profileRow](ctx, s.pool,
		`SELECT sex, age, height_cm, weight_kg, activity_level, heightened_needs
		 FROM user_profile WHERE id = 1`, nil)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	p := row.toProfile()
	return &p, nil
}

// SaveProfile upserts the singleton row (id = 1).
func (s *pgStore) SaveProfile(ctx context.Context, p metabolism.UserProfile) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO user_profile (id, sex, age, height_cm, weight_kg, activity_level, heightened_needs)
		 VALUES (1, @sex, @age, @heightCM, @weightKG, @activityLevel, @heightenedNeeds)
		 ON CONFLICT (id) DO UPDATE SET
			sex              = EXCLUDED.sex,
			age              = EXCLUDED.age,
			height_cm        = EXCLUDED.height_cm,
			weight_kg        = EXCLUDED.weight_kg,
			activity_level   = EXCLUDED.activity_level,
			heightened_needs = EXCLUDED.heightened_needs,
			updated_at       = now()`,
		pgx.NamedArgs{
			"sex": string(p.Sex), "age": p.Age, "heightCM": p.HeightCM, "weightKG": p.WeightKG,
			"activityLevel": string(p.ActivityLevel), "heightenedNeeds": p.HeightenedNeeds,
		})
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

/* ─── Daily log ──────────────────────────────────────────────────────── */

func (s *pgStore) ListDailyLog(ctx context.Context) ([]metabolism.DailyLogEntry, error) {
	rows, err := queryMany[dailyLogRow](ctx, s.pool,
		`SELECT date, weight_kg, calories FROM daily_log ORDER BY date ASC`, nil)
	if err != nil {
		return nil, fmt.Errorf("list daily log: %w", err)
	}
	entries := make([]metabolism.DailyLogEntry, len(rows))
	for i, r := range rows {
		entries[i] = r.toEntry()
	}
	return entries, nil
}

// UpsertDailyLog relies on date being the primary key: posting the same date
// updates in place.
func (s *pgStore) UpsertDailyLog(ctx context.Context, e metabolism.DailyLogEntry) (metabolism.DailyLogEntry, error) {
	row, err := queryOne[dailyLogRow](ctx, s.pool,
		`INSERT INTO daily_log (date, weight_kg, calories)
		 VALUES (@date, @weightKG, @calories)
		 ON CONFLICT (date) DO UPDATE SET
			weight_kg  = EXCLUDED.weight_kg,
			calories   = EXCLUDED.calories,
			updated_at = now()
		 RETURNING date, weight_kg, calories`,
		pgx.NamedArgs{"date": e.Date, "weightKG": e.WeightKG, "calories": e.Calories})
	if err != nil {
		return metabolism.DailyLogEntry{}, fmt.Errorf("upsert daily log: %w", err)
	}
	return row.toEntry(), nil
}

func (s *pgStore) DeleteDailyLog(ctx context.Context, date string) error {
	result, err := s.pool.Exec(ctx,
		"DELETE FROM daily_log WHERE date = @date", pgx.NamedArgs{"date": date})
	if err != nil {
		return fmt.Errorf("delete daily log: %w", err)
	}
	if result.RowsAffected() == 0 {
		return errNotFound
	}
	return nil
}

/* ─── Check-ins ──────────────────────────────────────────────────────── */

func (s *pgStore) SaveCheckin(ctx context.Context, ci weeklyCheckin) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO weekly_checkins (`+checkinColumns+`)
		 VALUES (@id, @date, @weekNumber, @startWeightKG, @endWeightKG,
			@weightChangePercent, @avgCalories, @daysLogged, @action, @calorieChange,
			@targetCalories, @rationale, @notes, @createdAt)`,
		pgx.NamedArgs{
			"id": ci.ID, "date": ci.Date, "weekNumber": ci.WeekNumber,
			"startWeightKG": ci.StartWeightKG, "endWeightKG": ci.EndWeightKG,
			"weightChangePercent": ci.WeightChangePercent, "avgCalories": ci.AvgCalories,
			"daysLogged": ci.DaysLogged, "action": string(ci.Action),
			"calorieChange": ci.CalorieChange, "targetCalories": ci.TargetCalories,
			"rationale": ci.Rationale, "notes": ci.Notes, "createdAt": ci.CreatedAt,
		})
	if err != nil {
		return fmt.Errorf("save check-in: %w", err)
	}
	return nil
}

func (s *pgStore) ListCheckins(ctx context.Context) ([]weeklyCheckin, error) {
	rows, err := queryMany[checkinRow](ctx, s.pool,
		`SELECT `+checkinColumns+` FROM weekly_checkins ORDER BY date DESC, created_at DESC`, nil)
	if err != nil {
		return nil, fmt.Errorf("list check-ins: %w", err)
	}
	out := make([]weeklyCheckin, len(rows))
	for i, r := range rows {
		out[i] = r.toCheckin()
	}
	return out, nil
}

func (s *pgStore) LatestCheckin(ctx context.Context) (*weeklyCheckin, error) {
	row, err := queryOne[checkinRow](ctx, s.pool,
		`SELECT `+checkinColumns+` FROM weekly_checkins ORDER BY date DESC, created_at DESC LIMIT 1`, nil)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest check-in: %w", err)
	}
	ci := row.toCheckin()
	return &ci, nil
}

/* ─── Lifecycle ──────────────────────────────────────────────────────── */

// Clear wipes all three tables in one transaction.
func (s *pgStore) Clear(ctx context.Context) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		for _, table := range []string{"weekly_checkins", "daily_log", "user_profile"} {
			if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
		return nil
	})
}

func (s *pgStore) Close() {
	s.pool.Close()
}
