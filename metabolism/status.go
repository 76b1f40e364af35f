package metabolism

// MetabolicStatus is a derived snapshot of one (profile, log) pair. It is
// recomputed on demand and never stored on its own. Gap is actual minus
// predicted; negative values signal metabolic adaptation.
type MetabolicStatus struct {
	PredictedExpenditure int                  `json:"predicted_expenditure"`
	ActualExpenditure    int                  `json:"actual_expenditure"`
	Gap                  int                  `json:"gap"`
	Phase                Phase                `json:"phase"`
	DaysOfData           int                  `json:"days_of_data"`
	WeeklyRecommendation WeeklyRecommendation `json:"weekly_recommendation"`
}

// ComputeStatus runs the whole pipeline: predicted expenditure from the
// profile, adaptive expenditure from the log, blending by phase, and the weekly
// recommendation against the blended value. log must be sorted ascending by
// date with one entry per date (see NormalizeLog).
func ComputeStatus(profile UserProfile, log []DailyLogEntry) MetabolicStatus {
	predicted := PredictedExpenditure(profile)
	days := len(log)

	actual := predicted
	if derived := DeriveExpenditure(log); len(derived) > 0 {
		latest := derived[len(derived)-1]
		actual = Blend(predicted, &latest, days)
	}

	return MetabolicStatus{
		PredictedExpenditure: predicted,
		ActualExpenditure:    actual,
		Gap:                  actual - predicted,
		Phase:                ClassifyPhase(days),
		DaysOfData:           days,
		WeeklyRecommendation: Recommend(log, actual),
	}
}
