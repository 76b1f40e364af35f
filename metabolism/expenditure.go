package metabolism

// KcalPerKG is the energy density of one kilogram of body-mass change, the
// usual approximation for mixed fat and lean tissue. It is not varied by body
// composition.
const KcalPerKG = 7700.0

// Smoothing holds the two EWMA coefficients applied around the differencing
// step of DeriveExpenditure.
type Smoothing struct {
	WeightAlpha      float64
	ExpenditureAlpha float64
}

// DefaultSmoothing is the production configuration.
var DefaultSmoothing = Smoothing{
	WeightAlpha:      WeightTrendAlpha,
	ExpenditureAlpha: ExpenditureTrendAlpha,
}

// DeriveExpenditure reverse-derives daily energy expenditure from a log sorted
// ascending by date with one entry per date, using DefaultSmoothing.
// It returns len(log)-1 values (one per consecutive day pair), or an empty
// slice when the log has fewer than two entries.
func DeriveExpenditure(log []DailyLogEntry) []int {
	return DefaultSmoothing.DeriveExpenditure(log)
}

// DeriveExpenditure applies the energy-balance identity to each consecutive
// pair of days:
//
//	expenditure = intake(today) - (trend(today) - trend(yesterday)) * KcalPerKG
//
// where trend is the EWMA-smoothed weight. The raw per-pair values are then
// smoothed again with ExpenditureAlpha.
func (s Smoothing) DeriveExpenditure(log []DailyLogEntry) []int {
	if len(log) < 2 {
		return []int{}
	}

	trend := s.trendWeights(log)
	raw := make([]float64, 0, len(log)-1)
	for i := 1; i < len(log); i++ {
		deltaKG := trend[i] - trend[i-1]
		raw = append(raw, Round(float64(log[i].Calories)-deltaKG*KcalPerKG, 0))
	}

	smoothed := Smooth(raw, s.ExpenditureAlpha, ExpenditurePlaces)
	out := make([]int, len(smoothed))
	for i, v := range smoothed {
		out[i] = int(v)
	}
	return out
}

// TrendWeights returns the weight-trend series for log using the default
// weight smoothing coefficient.
func TrendWeights(log []DailyLogEntry) []float64 {
	return DefaultSmoothing.trendWeights(log)
}

func (s Smoothing) trendWeights(log []DailyLogEntry) []float64 {
	weights := make([]float64, len(log))
	for i, e := range log {
		weights[i] = e.WeightKG
	}
	return Smooth(weights, s.WeightAlpha, WeightTrendPlaces)
}
