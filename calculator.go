package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lg/adaptive-tdee-api/metabolism"
)

// calculate is the stateless onboarding calculator: BMR, formula TDEE,
// protein target and a planning range for the chosen goal. Nothing is saved.
// POST /api/calculator. Body: a UserProfile plus optional "goal"
// (maintain | performance | recovery, default maintain).
func (h *Handler) calculate(c *gin.Context) {
	var body calculatorRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateProfile(body.UserProfile); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}
	if body.Goal == "" {
		body.Goal = metabolism.GoalMaintain
	}
	if !body.Goal.Valid() {
		apiError(c, http.StatusBadRequest, "goal must be one of: maintain, performance, recovery")
		return
	}

	p := body.UserProfile
	tdee := metabolism.PredictedExpenditure(p)
	c.JSON(http.StatusOK, calculatorResponse{
		BMR:            int(metabolism.Round(metabolism.ComputeBMR(p.WeightKG, p.HeightCM, p.Age, p.Sex), 0)),
		TDEE:           tdee,
		ProteinTargetG: metabolism.ProteinTarget(p.WeightKG, p.HeightenedNeeds),
		PlanningRange:  metabolism.PlanningRange(tdee, body.Goal),
	})
}
