package metabolism

import (
	"slices"
	"strings"
)

// DateLayout is the calendar-date format used for DailyLogEntry.Date.
const DateLayout = "2006-01-02"

// NormalizeLog returns a copy of entries sorted ascending by date with one
// entry per date. When two entries share a date the later one in the input
// wins.
func NormalizeLog(entries []DailyLogEntry) []DailyLogEntry {
	byDate := make(map[string]int, len(entries))
	out := make([]DailyLogEntry, 0, len(entries))
	for _, e := range entries {
		if i, ok := byDate[e.Date]; ok {
			out[i] = e
			continue
		}
		byDate[e.Date] = len(out)
		out = append(out, e)
	}
	slices.SortStableFunc(out, func(a, b DailyLogEntry) int {
		return strings.Compare(a.Date, b.Date)
	})
	return out
}

// UpsertEntry returns a new log with entry inserted at its date position, or
// replacing the existing entry for that date. log must already be normalized.
func UpsertEntry(log []DailyLogEntry, entry DailyLogEntry) []DailyLogEntry {
	i, found := slices.BinarySearchFunc(log, entry.Date, func(e DailyLogEntry, date string) int {
		return strings.Compare(e.Date, date)
	})
	out := slices.Clone(log)
	if found {
		out[i] = entry
		return out
	}
	return slices.Insert(out, i, entry)
}

// Annotate returns a copy of log with the cached outputs filled in: the weight
// trend on every entry and the derived expenditure on every entry after the
// first (the value for day pair (i-1, i) lands on entry i).
func Annotate(log []DailyLogEntry) []DailyLogEntry {
	out := slices.Clone(log)
	trend := TrendWeights(log)
	derived := DeriveExpenditure(log)
	for i := range out {
		tw := trend[i]
		out[i].TrendWeightKG = &tw
		out[i].DerivedExpenditure = nil
		if i > 0 {
			d := derived[i-1]
			out[i].DerivedExpenditure = &d
		}
	}
	return out
}

// ChartPoint is one day of dashboard chart data.
type ChartPoint struct {
	Date          string  `json:"date"`
	WeightKG      float64 `json:"weight_kg"`
	TrendWeightKG float64 `json:"trend_weight_kg"`
	Calories      int     `json:"calories"`
	// Expenditure is nil for the first day, which has no preceding day to
	// difference against.
	Expenditure *int `json:"expenditure"`
}

// ChartPoints flattens an annotated log into chart rows.
func ChartPoints(log []DailyLogEntry) []ChartPoint {
	annotated := Annotate(log)
	points := make([]ChartPoint, len(annotated))
	for i, e := range annotated {
		points[i] = ChartPoint{
			Date:          e.Date,
			WeightKG:      e.WeightKG,
			TrendWeightKG: *e.TrendWeightKG,
			Calories:      e.Calories,
			Expenditure:   e.DerivedExpenditure,
		}
	}
	return points
}
