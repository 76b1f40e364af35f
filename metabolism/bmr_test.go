package metabolism

import "testing"

/* ─── BMR accuracy tests ─────────────────────────────────────────────── */

// TestComputeBMR_Male checks the reference case:
// 9.99*80 + 6.25*180 - 4.92*30 + 5 = 799.2 + 1125 - 147.6 + 5 = 1781.6
func TestComputeBMR_Male(t *testing.T) {
	bmr := ComputeBMR(80, 180, 30, SexMale)
	if !approxEqual(bmr, 1781.6, 1e-9) {
		t.Errorf("male BMR = %f, want 1781.6", bmr)
	}
}

// TestComputeBMR_Female uses the same inputs with the female constant (-161).
func TestComputeBMR_Female(t *testing.T) {
	bmr := ComputeBMR(80, 180, 30, SexFemale)
	if !approxEqual(bmr, 1615.6, 1e-9) {
		t.Errorf("female BMR = %f, want 1615.6", bmr)
	}
}

/* ─── Predicted expenditure tests ────────────────────────────────────── */

// TestPredictedExpenditure_Moderate: round(1781.6 * 1.55) = round(2761.48) = 2761.
func TestPredictedExpenditure_Moderate(t *testing.T) {
	p := UserProfile{Sex: SexMale, Age: 30, HeightCM: 180, WeightKG: 80, ActivityLevel: ActivityModerate}
	if got := PredictedExpenditure(p); got != 2761 {
		t.Errorf("PredictedExpenditure = %d, want 2761", got)
	}
}

// TestPredictedExpenditure_AllLevels verifies every tier uses its multiplier.
func TestPredictedExpenditure_AllLevels(t *testing.T) {
	cases := []struct {
		level ActivityLevel
		want  int
	}{
		{ActivitySedentary, 2138},  // 1781.6 * 1.2   = 2137.92
		{ActivityLight, 2450},      // 1781.6 * 1.375 = 2449.7
		{ActivityModerate, 2761},   // 1781.6 * 1.55  = 2761.48
		{ActivityActive, 3073},     // 1781.6 * 1.725 = 3073.26
		{ActivityVeryActive, 3385}, // 1781.6 * 1.9   = 3385.04
	}
	for _, tc := range cases {
		t.Run(string(tc.level), func(t *testing.T) {
			p := UserProfile{Sex: SexMale, Age: 30, HeightCM: 180, WeightKG: 80, ActivityLevel: tc.level}
			if got := PredictedExpenditure(p); got != tc.want {
				t.Errorf("PredictedExpenditure(%s) = %d, want %d", tc.level, got, tc.want)
			}
		})
	}
}

func TestActivityLevel_Valid(t *testing.T) {
	if !ActivityVeryActive.Valid() {
		t.Error("very_active should be valid")
	}
	if ActivityLevel("veryActive").Valid() {
		t.Error("veryActive (camel case) should not be valid")
	}
	if Sex("other").Valid() {
		t.Error("unknown sex should not be valid")
	}
}

/* ─── Protein target tests ───────────────────────────────────────────── */

func TestProteinTarget(t *testing.T) {
	if got := ProteinTarget(80, false); got != 128 {
		t.Errorf("ProteinTarget(80, false) = %d, want 128", got)
	}
	if got := ProteinTarget(80, true); got != 160 {
		t.Errorf("ProteinTarget(80, true) = %d, want 160", got)
	}
}

/* ─── Planning range tests ───────────────────────────────────────────── */

func TestPlanningRange(t *testing.T) {
	cases := []struct {
		goal     Goal
		min, max int
	}{
		{GoalMaintain, 2450, 2550},
		{GoalPerformance, 2625, 2750},
		{GoalRecovery, 2375, 2625},
		{Goal("bulk"), 2450, 2550}, // unknown falls back to maintenance
	}
	for _, tc := range cases {
		t.Run(string(tc.goal), func(t *testing.T) {
			r := PlanningRange(2500, tc.goal)
			if r.Min != tc.min || r.Max != tc.max {
				t.Errorf("PlanningRange(2500, %s) = [%d, %d], want [%d, %d]", tc.goal, r.Min, r.Max, tc.min, tc.max)
			}
			if r.Label == "" {
				t.Error("expected a label")
			}
		})
	}
}
