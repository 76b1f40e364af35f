package metabolism

// Phase describes how much of the log-derived estimate is trusted.
type Phase string

const (
	PhaseInitial     Phase = "initial"
	PhaseCalibrating Phase = "calibrating"
	PhaseAdaptive    Phase = "adaptive"
)

// Cold-start thresholds, in days of logged data.
const (
	initialMaxDays     = 7
	calibratingMaxDays = 21
)

// Blend weights while calibrating.
const (
	calibratingPredictedWeight = 0.3
	calibratingAdaptiveWeight  = 0.7
)

// ClassifyPhase maps days of data to a phase: up to 7 days is initial, 8 to 21
// is calibrating, anything longer is adaptive.
func ClassifyPhase(daysOfData int) Phase {
	switch {
	case daysOfData <= initialMaxDays:
		return PhaseInitial
	case daysOfData <= calibratingMaxDays:
		return PhaseCalibrating
	default:
		return PhaseAdaptive
	}
}

// Blend combines the predicted and adaptive expenditure for the phase implied
// by daysOfData. A nil adaptive value (fewer than two log entries) always
// yields predicted.
func Blend(predicted int, adaptive *int, daysOfData int) int {
	phase := ClassifyPhase(daysOfData)
	if phase == PhaseInitial || adaptive == nil {
		return predicted
	}
	if phase == PhaseCalibrating {
		return roundInt(calibratingPredictedWeight*float64(predicted) +
			calibratingAdaptiveWeight*float64(*adaptive))
	}
	return *adaptive
}

// Label is the display text for p.
func (p Phase) Label() string {
	switch p {
	case PhaseInitial:
		return "Estimated TDEE (Collecting data...)"
	case PhaseCalibrating:
		return "Calibrating TDEE"
	case PhaseAdaptive:
		return "Adaptive TDEE"
	}
	return string(p)
}
