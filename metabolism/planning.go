package metabolism

// Goal selects a planning range around maintenance.
type Goal string

const (
	GoalMaintain    Goal = "maintain"
	GoalPerformance Goal = "performance"
	GoalRecovery    Goal = "recovery"
)

// goalFactors maps each goal to its [min, max] multiplier of TDEE.
var goalFactors = map[Goal][2]float64{
	GoalMaintain:    {0.98, 1.02},
	GoalPerformance: {1.05, 1.10},
	GoalRecovery:    {0.95, 1.05},
}

// Valid reports whether g is a known goal.
func (g Goal) Valid() bool {
	_, ok := goalFactors[g]
	return ok
}

// CalorieRange is an informational intake band, not a prescription.
type CalorieRange struct {
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Label string `json:"label"`
}

// PlanningRange returns the intake band for goal around tdee. Unknown goals
// fall back to maintenance.
func PlanningRange(tdee int, goal Goal) CalorieRange {
	f, ok := goalFactors[goal]
	if !ok {
		goal = GoalMaintain
		f = goalFactors[goal]
	}
	r := CalorieRange{
		Min: roundInt(float64(tdee) * f[0]),
		Max: roundInt(float64(tdee) * f[1]),
	}
	switch goal {
	case GoalPerformance:
		r.Label = "Possible planning range (performance support)"
	case GoalRecovery:
		r.Label = "Possible planning range (stability & recovery)"
	default:
		r.Label = "Possible planning range (maintenance)"
	}
	return r
}
