package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"lg/adaptive-tdee-api/metabolism"
)

// sqliteStore is the embedded single-file Store used for local installs and
// tests. Tables are created by AutoMigrate on open.
type sqliteStore struct {
	db *gorm.DB
}

type profileRecord struct {
	ID              int     `gorm:"column:id;primaryKey;autoIncrement:false"`
	Sex             string  `gorm:"column:sex;not null"`
	Age             int     `gorm:"column:age;not null"`
	HeightCM        float64 `gorm:"column:height_cm;not null"`
	WeightKG        float64 `gorm:"column:weight_kg;not null"`
	ActivityLevel   string  `gorm:"column:activity_level;not null"`
	HeightenedNeeds bool    `gorm:"column:heightened_needs;not null;default:false"`
	UpdatedAt       time.Time
}

func (profileRecord) TableName() string { return "user_profile" }

type dailyLogRecord struct {
	Date      string  `gorm:"column:date;primaryKey"`
	WeightKG  float64 `gorm:"column:weight_kg;not null"`
	Calories  int     `gorm:"column:calories;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (dailyLogRecord) TableName() string { return "daily_log" }

type checkinRecord struct {
	ID                  string    `gorm:"column:id;primaryKey"`
	Date                string    `gorm:"column:date;index;not null"`
	WeekNumber          int       `gorm:"column:week_number"`
	StartWeightKG       float64   `gorm:"column:start_weight_kg"`
	EndWeightKG         float64   `gorm:"column:end_weight_kg"`
	WeightChangePercent float64   `gorm:"column:weight_change_percent"`
	AvgCalories         int       `gorm:"column:avg_calories"`
	DaysLogged          int       `gorm:"column:days_logged"`
	Action              string    `gorm:"column:action"`
	CalorieChange       int       `gorm:"column:calorie_change"`
	TargetCalories      int       `gorm:"column:target_calories"`
	Rationale           string    `gorm:"column:rationale"`
	Notes               *string   `gorm:"column:notes"`
	CreatedAt           time.Time `gorm:"column:created_at"`
}

func (checkinRecord) TableName() string { return "weekly_checkins" }

func (r checkinRecord) toCheckin() weeklyCheckin {
	return weeklyCheckin{
		ID:                  r.ID,
		Date:                r.Date,
		WeekNumber:          r.WeekNumber,
		StartWeightKG:       r.StartWeightKG,
		EndWeightKG:         r.EndWeightKG,
		WeightChangePercent: r.WeightChangePercent,
		AvgCalories:         r.AvgCalories,
		DaysLogged:          r.DaysLogged,
		Action:              metabolism.Action(r.Action),
		CalorieChange:       r.CalorieChange,
		TargetCalories:      r.TargetCalories,
		Rationale:           r.Rationale,
		Notes:               r.Notes,
		CreatedAt:           r.CreatedAt,
	}
}

// newSQLiteStore opens (creating if needed) the database file at path and
// migrates the schema.
func newSQLiteStore(path string) (*sqliteStore, error) {
	db, err := gorm.Open(sqlite.Open(path+"?_pragma=busy_timeout(5000)"), &gorm.Config{
		Logger: logger.New(log.Default(), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// The scheduler and HTTP handlers write concurrently; SQLite has one writer.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&profileRecord{}, &dailyLogRecord{}, &checkinRecord{}); err != nil {
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	return &sqliteStore{db: db}, nil
}

/* ─── Profile ────────────────────────────────────────────────────────── */

func (s *sqliteStore) GetProfile(ctx context.Context) (*metabolism.UserProfile, error) {
	var rec profileRecord
	err := s.db.WithContext(ctx).First(&rec, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &metabolism.UserProfile{
		Sex:             metabolism.Sex(rec.Sex),
		Age:             rec.Age,
		HeightCM:        rec.HeightCM,
		WeightKG:        rec.WeightKG,
		ActivityLevel:   metabolism.ActivityLevel(rec.ActivityLevel),
		HeightenedNeeds: rec.HeightenedNeeds,
	}, nil
}

// SaveProfile upserts the singleton row. The ID is forced to 1.
func (s *sqliteStore) SaveProfile(ctx context.Context, p metabolism.UserProfile) error {
	rec := profileRecord{
		ID:              1,
		Sex:             string(p.Sex),
		Age:             p.Age,
		HeightCM:        p.HeightCM,
		WeightKG:        p.WeightKG,
		ActivityLevel:   string(p.ActivityLevel),
		HeightenedNeeds: p.HeightenedNeeds,
	}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error; err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

/* ─── Daily log ──────────────────────────────────────────────────────── */

func (s *sqliteStore) ListDailyLog(ctx context.Context) ([]metabolism.DailyLogEntry, error) {
	var recs []dailyLogRecord
	if err := s.db.WithContext(ctx).Order("date ASC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list daily log: %w", err)
	}
	entries := make([]metabolism.DailyLogEntry, len(recs))
	for i, r := range recs {
		entries[i] = metabolism.DailyLogEntry{Date: r.Date, WeightKG: r.WeightKG, Calories: r.Calories}
	}
	return entries, nil
}

func (s *sqliteStore) UpsertDailyLog(ctx context.Context, e metabolism.DailyLogEntry) (metabolism.DailyLogEntry, error) {
	rec := dailyLogRecord{Date: e.Date, WeightKG: e.WeightKG, Calories: e.Calories}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"weight_kg", "calories", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return metabolism.DailyLogEntry{}, fmt.Errorf("upsert daily log: %w", err)
	}
	return metabolism.DailyLogEntry{Date: rec.Date, WeightKG: rec.WeightKG, Calories: rec.Calories}, nil
}

func (s *sqliteStore) DeleteDailyLog(ctx context.Context, date string) error {
	res := s.db.WithContext(ctx).Where("date = ?", date).Delete(&dailyLogRecord{})
	if res.Error != nil {
		return fmt.Errorf("delete daily log: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return errNotFound
	}
	return nil
}

/* ─── Check-ins ──────────────────────────────────────────────────────── */

func (s *sqliteStore) SaveCheckin(ctx context.Context, ci weeklyCheckin) error {
	rec := checkinRecord{
		ID:                  ci.ID,
		Date:                ci.Date,
		WeekNumber:          ci.WeekNumber,
		StartWeightKG:       ci.StartWeightKG,
		EndWeightKG:         ci.EndWeightKG,
		WeightChangePercent: ci.WeightChangePercent,
		AvgCalories:         ci.AvgCalories,
		DaysLogged:          ci.DaysLogged,
		Action:              string(ci.Action),
		CalorieChange:       ci.CalorieChange,
		TargetCalories:      ci.TargetCalories,
		Rationale:           ci.Rationale,
		Notes:               ci.Notes,
		CreatedAt:           ci.CreatedAt,
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("save check-in: %w", err)
	}
	return nil
}

func (s *sqliteStore) ListCheckins(ctx context.Context) ([]weeklyCheckin, error) {
	var recs []checkinRecord
	if err := s.db.WithContext(ctx).Order("date DESC, created_at DESC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list check-ins: %w", err)
	}
	out := make([]weeklyCheckin, len(recs))
	for i, r := range recs {
		out[i] = r.toCheckin()
	}
	return out, nil
}

func (s *sqliteStore) LatestCheckin(ctx context.Context) (*weeklyCheckin, error) {
	var recs []checkinRecord
	err := s.db.WithContext(ctx).Order("date DESC, created_at DESC").Limit(1).Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("latest check-in: %w", err)
	}
	if len(recs) == 0 {
		return nil, nil
	}
	ci := recs[0].toCheckin()
	return &ci, nil
}

/* ─── Lifecycle ──────────────────────────────────────────────────────── */

func (s *sqliteStore) Clear(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, model := range []any{&checkinRecord{}, &dailyLogRecord{}, &profileRecord{}} {
			if err := all.Delete(model).Error; err != nil {
				return fmt.Errorf("clear: %w", err)
			}
		}
		return nil
	})
}

func (s *sqliteStore) Close() {
	if sqlDB, err := s.db.DB(); err == nil {
		sqlDB.Close()
	}
}
