package metabolism

import "math"

// Default smoothing coefficients and rounding policies per call site.
const (
	// WeightTrendAlpha filters day-to-day water-weight swings.
	WeightTrendAlpha = 0.1
	// ExpenditureTrendAlpha smooths harder: differencing makes derived
	// expenditure noisier than raw weight.
	ExpenditureTrendAlpha = 0.05

	WeightTrendPlaces = 2
	ExpenditurePlaces = 0
)

// Smooth returns the exponentially weighted moving average of series:
//
//	out[0] = series[0]
//	out[i] = alpha*series[i] + (1-alpha)*out[i-1], rounded to places decimals
//
// The seed element is returned as-is. alpha must be in (0, 1]; alpha=1
// reproduces the input (up to rounding). The result has the same length as
// series and never aliases it.
func Smooth(series []float64, alpha float64, places int) []float64 {
	if len(series) == 0 {
		return []float64{}
	}
	out := make([]float64, len(series))
	out[0] = series[0]
	for i := 1; i < len(series); i++ {
		out[i] = Update(series[i], out[i-1], alpha, places)
	}
	return out
}

// Update is the streaming form of Smooth: it folds one new observation into
// the previous trend value.
func Update(value, previous, alpha float64, places int) float64 {
	return Round(alpha*value+(1-alpha)*previous, places)
}

// Round rounds x half-up (toward +Inf on ties) to the given number of decimal
// places.
func Round(x float64, places int) float64 {
	if places <= 0 {
		return math.Floor(x + 0.5)
	}
	p := math.Pow(10, float64(places))
	return math.Floor(x*p+0.5) / p
}

func roundInt(x float64) int {
	return int(Round(x, 0))
}
