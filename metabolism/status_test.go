package metabolism

import (
	"reflect"
	"slices"
	"testing"
)

// referenceProfile is the worked example: predicted expenditure 2761.
func referenceProfile() UserProfile {
	return UserProfile{Sex: SexMale, Age: 30, HeightCM: 180, WeightKG: 80, ActivityLevel: ActivityModerate}
}

func TestComputeStatus_EmptyLogUsesPredicted(t *testing.T) {
	s := ComputeStatus(referenceProfile(), nil)
	if s.PredictedExpenditure != 2761 || s.ActualExpenditure != 2761 || s.Gap != 0 {
		t.Errorf("status = %+v, want predicted=actual=2761, gap=0", s)
	}
	if s.Phase != PhaseInitial {
		t.Errorf("phase = %s, want initial", s.Phase)
	}
	// Empty log: weekly change defaults to 0, which routes to increase.
	if s.WeeklyRecommendation.Action != ActionIncrease || s.WeeklyRecommendation.TargetCalories != 2836 {
		t.Errorf("recommendation = %+v, want increase to 2836", s.WeeklyRecommendation)
	}
}

// TestComputeStatus_TwoEntriesStillInitial verifies the adaptive value is
// computable but ignored during the first week.
func TestComputeStatus_TwoEntriesStillInitial(t *testing.T) {
	log := makeLog("2026-03-01", []float64{80, 78}, 1500)
	s := ComputeStatus(referenceProfile(), log)
	if s.ActualExpenditure != 2761 {
		t.Errorf("actual = %d, want 2761 (initial phase)", s.ActualExpenditure)
	}
}

func TestComputeStatus_Calibrating(t *testing.T) {
	log := makeLog("2026-03-01", repeat(80, 10), 2500)
	s := ComputeStatus(referenceProfile(), log)
	// round(0.3*2761 + 0.7*2500) = round(2578.3) = 2578
	if s.Phase != PhaseCalibrating || s.ActualExpenditure != 2578 {
		t.Errorf("status = %+v, want calibrating with actual=2578", s)
	}
	if s.Gap != 2578-2761 {
		t.Errorf("gap = %d, want %d", s.Gap, 2578-2761)
	}
	if s.WeeklyRecommendation.TargetCalories != 2578+75 {
		t.Errorf("target = %d, want %d", s.WeeklyRecommendation.TargetCalories, 2578+75)
	}
}

func TestComputeStatus_Adaptive(t *testing.T) {
	log := makeLog("2026-03-01", repeat(80, 30), 2400)
	s := ComputeStatus(referenceProfile(), log)
	if s.Phase != PhaseAdaptive || s.ActualExpenditure != 2400 || s.Gap != -361 {
		t.Errorf("status = %+v, want adaptive, actual=2400, gap=-361", s)
	}
	if s.DaysOfData != 30 {
		t.Errorf("days of data = %d, want 30", s.DaysOfData)
	}
}

// TestComputeStatus_Idempotent verifies repeated calls give identical output
// and leave the input log untouched.
func TestComputeStatus_Idempotent(t *testing.T) {
	weights := []float64{82, 81.6, 81.9, 81.2, 80.8, 81.1, 80.5, 80.2, 80.6, 79.9, 79.7, 80.0}
	log := makeLog("2026-03-01", weights, 2100)
	snapshot := slices.Clone(log)

	first := ComputeStatus(referenceProfile(), log)
	second := ComputeStatus(referenceProfile(), log)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("status differs between calls: %+v vs %+v", first, second)
	}
	if !reflect.DeepEqual(log, snapshot) {
		t.Error("ComputeStatus mutated its input log")
	}
}
