package metabolism

import (
	"math"
	"testing"
)

// TestDeriveExpenditure_Length verifies one value per consecutive day pair.
func TestDeriveExpenditure_Length(t *testing.T) {
	for n := 0; n <= 10; n++ {
		log := makeLog("2026-01-01", repeat(80, n), 2200)
		got := len(DeriveExpenditure(log))
		want := max(0, n-1)
		if got != want {
			t.Errorf("len(DeriveExpenditure(%d entries)) = %d, want %d", n, got, want)
		}
	}
}

// TestDeriveExpenditure_EnergyBalanceRoundTrip disables both smoothing passes
// (alpha=1) and checks that a steady 0.1 kg/day loss at constant intake C
// recovers C - (-0.1)*7700 = C + 770 for every day pair.
func TestDeriveExpenditure_EnergyBalanceRoundTrip(t *testing.T) {
	const intake = 2000
	log := makeLog("2026-01-01", []float64{80, 79.9, 79.8, 79.7, 79.6}, intake)
	raw := Smoothing{WeightAlpha: 1, ExpenditureAlpha: 1}.DeriveExpenditure(log)

	want := intake - (-0.1)*KcalPerKG
	for i, v := range raw {
		if math.Abs(float64(v)-want) > 1 {
			t.Errorf("expenditure[%d] = %d, want %.0f ±1", i, v, want)
		}
	}
}

// TestDeriveExpenditure_FlatWeightEqualsIntake verifies that with constant
// weight the default pipeline reports expenditure equal to intake.
func TestDeriveExpenditure_FlatWeightEqualsIntake(t *testing.T) {
	log := makeLog("2026-01-01", repeat(75.5, 14), 2350)
	for i, v := range DeriveExpenditure(log) {
		if v != 2350 {
			t.Errorf("expenditure[%d] = %d, want 2350", i, v)
		}
	}
}

// TestDeriveExpenditure_GainMeansBelowIntake: rising weight at constant intake
// implies a surplus, so derived expenditure must sit below intake.
func TestDeriveExpenditure_GainMeansBelowIntake(t *testing.T) {
	weights := make([]float64, 14)
	for i := range weights {
		weights[i] = 70 + 0.1*float64(i)
	}
	log := makeLog("2026-01-01", weights, 2500)
	derived := DeriveExpenditure(log)
	if last := derived[len(derived)-1]; last >= 2500 {
		t.Errorf("latest expenditure = %d, want < 2500 for a gaining log", last)
	}
}

// TestDeriveExpenditure_TooShort verifies empty (non-nil) output for <2 entries.
func TestDeriveExpenditure_TooShort(t *testing.T) {
	for _, log := range [][]DailyLogEntry{nil, makeLog("2026-01-01", []float64{80}, 2000)} {
		out := DeriveExpenditure(log)
		if out == nil || len(out) != 0 {
			t.Errorf("DeriveExpenditure(%d entries) = %#v, want empty slice", len(log), out)
		}
	}
}

func TestTrendWeights(t *testing.T) {
	log := makeLog("2026-01-01", []float64{80, 81}, 2000)
	trend := TrendWeights(log)
	// 0.1*81 + 0.9*80 = 80.1
	if len(trend) != 2 || trend[0] != 80 || !approxEqual(trend[1], 80.1, 1e-9) {
		t.Errorf("TrendWeights = %v, want [80 80.1]", trend)
	}
}
