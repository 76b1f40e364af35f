package metabolism

// Action is the weekly intake adjustment.
type Action string

const (
	ActionIncrease Action = "increase"
	ActionHold     Action = "hold"
	ActionDecrease Action = "decrease"
)

// Decision-tree thresholds (percent body-weight change over the window) and
// the fixed step applied on increase/decrease.
const (
	recommendWindow  = 7
	holdLowerPercent = 0.2
	holdUpperPercent = 0.5
	calorieStep      = 75
)

// WeeklyRecommendation is the outcome of one weekly review.
type WeeklyRecommendation struct {
	Action         Action `json:"action"`
	CalorieChange  int    `json:"calorie_change"`
	TargetCalories int    `json:"target_calories"`
	Rationale      string `json:"rationale"`
}

// WeeklyWeightChange returns the percent change between the first and last raw
// weights of the most recent 7 entries. Logs shorter than 7 entries report 0,
// which is indistinguishable from perfectly flat weight.
func WeeklyWeightChange(log []DailyLogEntry) float64 {
	if len(log) < recommendWindow {
		return 0
	}
	window := log[len(log)-recommendWindow:]
	first := window[0].WeightKG
	last := window[len(window)-1].WeightKG
	return (last - first) / first * 100
}

// Recommend classifies the last week of log and returns the intake action
// relative to currentExpenditure. Steps are fixed at 75 kcal regardless of
// how far the weekly change is from the hold band.
//
// A log with fewer than 7 entries always yields ActionIncrease, because
// WeeklyWeightChange reports 0 for it.
func Recommend(log []DailyLogEntry, currentExpenditure int) WeeklyRecommendation {
	pct := WeeklyWeightChange(log)

	switch {
	case pct < holdLowerPercent:
		return WeeklyRecommendation{
			Action:         ActionIncrease,
			CalorieChange:  calorieStep,
			TargetCalories: currentExpenditure + calorieStep,
			Rationale:      "Metabolism has room for recovery; you can continue to increase calorie intake.",
		}
	case pct <= holdUpperPercent:
		return WeeklyRecommendation{
			Action:         ActionHold,
			CalorieChange:  0,
			TargetCalories: currentExpenditure,
			Rationale:      "Giving your body time to adapt to current intake while metabolic rate adjusts.",
		}
	default:
		return WeeklyRecommendation{
			Action:         ActionDecrease,
			CalorieChange:  -calorieStep,
			TargetCalories: currentExpenditure - calorieStep,
			Rationale:      "Weight gain is exceeding metabolic recovery; moderate intake slightly.",
		}
	}
}

// Label is the display text for a.
func (a Action) Label() string {
	switch a {
	case ActionIncrease:
		return "Increase Intake"
	case ActionHold:
		return "Maintain Current"
	case ActionDecrease:
		return "Moderate Intake"
	}
	return string(a)
}
