// Package metabolism estimates a user's real daily energy expenditure from a
// log of body weight and calorie intake, blends it with a formula-based
// estimate while data is sparse, and issues weekly intake recommendations.
//
// Everything here is a pure function of its arguments: callers load the
// profile and log from storage, pass snapshots in, and persist whatever they
// want to keep. Concurrent calls are safe as long as the slices passed in are
// not mutated during the call.
package metabolism

// Sex selects the constant term of the Mifflin-St Jeor equation.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Valid reports whether s is one of the supported values.
func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// ActivityLevel is one of five ordered tiers, each mapped to a fixed multiplier.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// ActivityMultipliers maps activity levels to their TDEE multiplier.
// This is the single source of truth for valid activity levels.
var ActivityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

// Valid reports whether a has a multiplier.
func (a ActivityLevel) Valid() bool {
	_, ok := ActivityMultipliers[a]
	return ok
}

// UserProfile is the demographic snapshot captured at onboarding. It is
// replaced wholesale, never patched field by field.
type UserProfile struct {
	Sex           Sex           `json:"sex"`
	Age           int           `json:"age"`
	HeightCM      float64       `json:"height_cm"`
	WeightKG      float64       `json:"weight_kg"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	// HeightenedNeeds only raises the protein target; expenditure math ignores it.
	HeightenedNeeds bool `json:"heightened_needs"`
}

// DailyLogEntry is one calendar day of observations. Date is "YYYY-MM-DD" and
// unique within a log. TrendWeightKG and DerivedExpenditure are cached outputs
// filled by Annotate, never inputs.
type DailyLogEntry struct {
	Date               string   `json:"date"`
	WeightKG           float64  `json:"weight_kg"`
	Calories           int      `json:"calories"`
	TrendWeightKG      *float64 `json:"trend_weight_kg,omitempty"`
	DerivedExpenditure *int     `json:"derived_expenditure,omitempty"`
}
