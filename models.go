package main

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"lg/adaptive-tdee-api/metabolism"
)

// DateOnly wraps time.Time so pgx can scan PostgreSQL date columns and hand
// them back as "YYYY-MM-DD" strings.
type DateOnly struct{ time.Time }

func (d DateOnly) String() string {
	return d.Time.Format(metabolism.DateLayout)
}

// ScanDate implements pgtype.DateScanner so pgx can scan PostgreSQL date
// columns (OID 1082) into DateOnly. NULL values zero the time.
func (d *DateOnly) ScanDate(v pgtype.Date) error {
	if !v.Valid {
		d.Time = time.Time{}
		return nil
	}
	d.Time = v.Time
	return nil
}

/* ─── Domain structs ─────────────────────────────────────────────────── */

// weeklyCheckin is an archived weekly review: the week's weight summary plus
// the recommendation issued for it.
type weeklyCheckin struct {
	ID                  string            `json:"id"`
	Date                string            `json:"date"`
	WeekNumber          int               `json:"week_number"`
	StartWeightKG       float64           `json:"start_weight_kg"`
	EndWeightKG         float64           `json:"end_weight_kg"`
	WeightChangePercent float64           `json:"weight_change_percent"`
	AvgCalories         int               `json:"avg_calories"`
	DaysLogged          int               `json:"days_logged"`
	Action              metabolism.Action `json:"action"`
	CalorieChange       int               `json:"calorie_change"`
	TargetCalories      int               `json:"target_calories"`
	Rationale           string            `json:"rationale"`
	Notes               *string           `json:"notes,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
}

/* ─── Postgres row shapes (scanned with RowToStructByName) ──────────── */

// profileRow maps to the single-row user_profile table.
type profileRow struct {
	Sex             string  `db:"sex"`
	Age             int     `db:"age"`
	HeightCM        float64 `db:"height_cm"`
	WeightKG        float64 `db:"weight_kg"`
	ActivityLevel   string  `db:"activity_level"`
	HeightenedNeeds bool    `db:"heightened_needs"`
}

func (r profileRow) toProfile() metabolism.UserProfile {
	return metabolism.UserProfile{
		Sex:             metabolism.Sex(r.Sex),
		Age:             r.Age,
		HeightCM:        r.HeightCM,
		WeightKG:        r.WeightKG,
		ActivityLevel:   metabolism.ActivityLevel(r.ActivityLevel),
		HeightenedNeeds: r.HeightenedNeeds,
	}
}

// dailyLogRow maps to daily_log. Date is the primary key.
type dailyLogRow struct {
	Date     DateOnly `db:"date"`
	WeightKG float64  `db:"weight_kg"`
	Calories int      `db:"calories"`
}

func (r dailyLogRow) toEntry() metabolism.DailyLogEntry {
	return metabolism.DailyLogEntry{Date: r.Date.String(), WeightKG: r.WeightKG, Calories: r.Calories}
}

// checkinRow maps to weekly_checkins.
type checkinRow struct {
	ID                  string    `db:"id"`
	Date                DateOnly  `db:"date"`
	WeekNumber          int       `db:"week_number"`
	StartWeightKG       float64   `db:"start_weight_kg"`
	EndWeightKG         float64   `db:"end_weight_kg"`
	WeightChangePercent float64   `db:"weight_change_percent"`
	AvgCalories         int       `db:"avg_calories"`
	DaysLogged          int       `db:"days_logged"`
	Action              string    `db:"action"`
	CalorieChange       int       `db:"calorie_change"`
	TargetCalories      int       `db:"target_calories"`
	Rationale           string    `db:"rationale"`
	Notes               *string   `db:"notes"`
	CreatedAt           time.Time `db:"created_at"`
}

func (r checkinRow) toCheckin() weeklyCheckin {
	return weeklyCheckin{
		ID:                  r.ID,
		Date:                r.Date.String(),
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

/* ─── Request / response bodies ─────────────────────────────────────── */

// upsertDailyLogRequest is the body for POST /api/daily-log. Pointer fields
// distinguish "missing" from zero.
type upsertDailyLogRequest struct {
	Date     string   `json:"date"`
	WeightKG *float64 `json:"weight_kg"`
	Calories *int     `json:"calories"`
}

// calculatorRequest is the body for POST /api/calculator.
type calculatorRequest struct {
	metabolism.UserProfile
	Goal metabolism.Goal `json:"goal"`
}

// calculatorResponse is the stateless calculator result.
type calculatorResponse struct {
	BMR            int                     `json:"bmr"`
	TDEE           int                     `json:"tdee"`
	ProteinTargetG int                     `json:"protein_target_g"`
	PlanningRange  metabolism.CalorieRange `json:"planning_range"`
}

// statusResponse is GET /api/status: the metabolic status plus display text.
type statusResponse struct {
	metabolism.MetabolicStatus
	PhaseLabel     string `json:"phase_label"`
	ActionLabel    string `json:"action_label"`
	ProteinTargetG int    `json:"protein_target_g"`
}

// createCheckinRequest is the body for POST /api/checkins.
type createCheckinRequest struct {
	Notes *string `json:"notes"`
}

// checkinEligibilityResponse is GET /api/checkins/eligibility.
type checkinEligibilityResponse struct {
	metabolism.Eligibility
	WeekNumber      int     `json:"week_number"`
	LastCheckinDate *string `json:"last_checkin_date"`
}
