package metabolism

import (
	"math"
	"time"
)

// makeLog builds a log with one entry per consecutive day starting at start,
// taking weights from the slice and a constant calorie intake.
func makeLog(start string, weights []float64, calories int) []DailyLogEntry {
	day, err := time.Parse(DateLayout, start)
	if err != nil {
		panic(err)
	}
	log := make([]DailyLogEntry, len(weights))
	for i, w := range weights {
		log[i] = DailyLogEntry{
			Date:     day.AddDate(0, 0, i).Format(DateLayout),
			WeightKG: w,
			Calories: calories,
		}
	}
	return log
}

// repeat returns n copies of v.
func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
