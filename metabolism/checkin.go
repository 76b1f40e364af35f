package metabolism

import "time"

// Minimum data and spacing for a weekly check-in.
const (
	checkinMinEntries   = recommendWindow
	checkinMinWeekDays  = 2
	checkinIntervalDays = 7
)

// WeekSummary describes the entries of one check-in week.
type WeekSummary struct {
	StartWeightKG       float64 `json:"start_weight_kg"`
	EndWeightKG         float64 `json:"end_weight_kg"`
	WeightChangePercent float64 `json:"weight_change_percent"`
	AvgCalories         int     `json:"avg_calories"`
	DaysLogged          int     `json:"days_logged"`
}

// LastWeek returns the entries of a normalized log dated within the seven
// calendar days ending on today (inclusive).
func LastWeek(log []DailyLogEntry, today time.Time) []DailyLogEntry {
	end := calendarDay(today)
	from := end.AddDate(0, 0, -(checkinIntervalDays - 1)).Format(DateLayout)
	to := end.Format(DateLayout)

	week := []DailyLogEntry{}
	for _, e := range log {
		if e.Date >= from && e.Date <= to {
			week = append(week, e)
		}
	}
	return week
}

// SummarizeWeek reports the raw weight change and average intake over week.
// ok is false when week has fewer than two entries.
func SummarizeWeek(week []DailyLogEntry) (summary WeekSummary, ok bool) {
	if len(week) < checkinMinWeekDays {
		return WeekSummary{}, false
	}
	start := week[0].WeightKG
	end := week[len(week)-1].WeightKG
	total := 0
	for _, e := range week {
		total += e.Calories
	}
	return WeekSummary{
		StartWeightKG:       start,
		EndWeightKG:         end,
		WeightChangePercent: Round((end-start)/start*100, 2),
		AvgCalories:         roundInt(float64(total) / float64(len(week))),
		DaysLogged:          len(week),
	}, true
}

// WeekNumber is 1 plus the number of whole weeks between the first log entry
// and today. An empty or unparsable log is in week 1.
func WeekNumber(log []DailyLogEntry, today time.Time) int {
	if len(log) == 0 {
		return 1
	}
	first, err := time.Parse(DateLayout, log[0].Date)
	if err != nil {
		return 1
	}
	days := daysBetween(first, today)
	if days < 0 {
		return 1
	}
	return days/checkinIntervalDays + 1
}

// Eligibility tells the check-in flow whether a new check-in can be recorded.
type Eligibility struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason"`
}

// CheckinEligibility requires at least 7 logged days overall, at least two in
// the current week, and 7 days since lastCheckin ("YYYY-MM-DD", empty when
// there is none).
func CheckinEligibility(log []DailyLogEntry, lastCheckin string, today time.Time) Eligibility {
	if len(log) < checkinMinEntries {
		return Eligibility{Reason: "Log at least 7 days before your first check-in."}
	}
	if _, ok := SummarizeWeek(LastWeek(log, today)); !ok {
		return Eligibility{Reason: "Log at least 2 days this week to check in."}
	}
	if lastCheckin != "" {
		last, err := time.Parse(DateLayout, lastCheckin)
		if err == nil && daysBetween(last, today) < checkinIntervalDays {
			next := last.AddDate(0, 0, checkinIntervalDays).Format(DateLayout)
			return Eligibility{Reason: "Check-in completed. Next available on " + next + "."}
		}
	}
	return Eligibility{Eligible: true, Reason: "Ready for your weekly check-in."}
}

// calendarDay drops the clock and zone of t, keeping its local calendar date.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(calendarDay(to).Sub(calendarDay(from)).Hours() / 24)
}
