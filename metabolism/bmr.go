package metabolism

// ComputeBMR returns basal metabolic rate in kcal/day using the Mifflin-St Jeor
// equation. Inputs are not clamped; NaN inputs propagate to the result.
func ComputeBMR(weightKG, heightCM float64, ageYears int, sex Sex) float64 {
	base := 9.99*weightKG + 6.25*heightCM - 4.92*float64(ageYears)
	if sex == SexMale {
		return base + 5
	}
	return base - 161
}

// PredictedExpenditure is the static, formula-based daily expenditure: BMR
// times the activity multiplier, rounded to whole kcal. An unknown activity
// level yields 0, so callers should validate with ActivityLevel.Valid first.
func PredictedExpenditure(p UserProfile) int {
	bmr := ComputeBMR(p.WeightKG, p.HeightCM, p.Age, p.Sex)
	return roundInt(bmr * ActivityMultipliers[p.ActivityLevel])
}

// ProteinTarget returns the daily protein target in grams: 2.0 g/kg when the
// profile flags heightened needs, 1.6 g/kg otherwise.
func ProteinTarget(weightKG float64, heightenedNeeds bool) int {
	perKG := 1.6
	if heightenedNeeds {
		perKG = 2.0
	}
	return roundInt(weightKG * perKG)
}
