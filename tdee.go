package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"lg/adaptive-tdee-api/metabolism"
)

// Accepted profile ranges. Out-of-range values are rejected, never clamped.
const (
	minAge      = 13
	maxAge      = 90
	minHeightCM = 120.0
	maxHeightCM = 220.0
	minWeightKG = 35.0
	maxWeightKG = 200.0
)

// validateProfile returns a client-facing message for the first invalid field,
// or "" when p is usable by the engine.
func validateProfile(p metabolism.UserProfile) string {
	switch {
	case !p.Sex.Valid():
		return "sex must be one of: male, female"
	case p.Age < minAge || p.Age > maxAge:
		return "age must be between 13 and 90"
	case p.HeightCM < minHeightCM || p.HeightCM > maxHeightCM:
		return "height_cm must be between 120 and 220"
	case p.WeightKG < minWeightKG || p.WeightKG > maxWeightKG:
		return "weight_kg must be between 35 and 200"
	case !p.ActivityLevel.Valid():
		return "activity_level must be one of: sedentary, light, moderate, active, very_active"
	}
	return ""
}

// getStatus returns the metabolic status for the saved profile and full log.
// GET /api/status. 404 until a profile exists; an empty log is fine (the
// status is then purely formula-based).
func (h *Handler) getStatus(c *gin.Context) {
	profile, err := h.store.GetProfile(c)
	if err != nil {
		log.Printf("[getStatus] %v", err)
		apiError(c, http.StatusInternalServerError, "failed to load profile")
		return
	}
	if profile == nil {
		apiError(c, http.StatusNotFound, "profile not found")
		return
	}
	entries, err := h.store.ListDailyLog(c)
	if err != nil {
		log.Printf("[getStatus] %v", err)
		apiError(c, http.StatusInternalServerError, "failed to load daily log")
		return
	}

	status := metabolism.ComputeStatus(*profile, entries)
	c.JSON(http.StatusOK, statusResponse{
		MetabolicStatus: status,
		PhaseLabel:      status.Phase.Label(),
		ActionLabel:     status.WeeklyRecommendation.Action.Label(),
		ProteinTargetG:  metabolism.ProteinTarget(profile.WeightKG, profile.HeightenedNeeds),
	})
}

// getChart returns one chart point per logged day: raw and trend weight,
// intake, and the derived expenditure (null on the first day).
// GET /api/chart. Returns an empty array (not null) for an empty log.
func (h *Handler) getChart(c *gin.Context) {
	entries, err := h.store.ListDailyLog(c)
	if err != nil {
		log.Printf("[getChart] %v", err)
		apiError(c, http.StatusInternalServerError, "failed to load daily log")
		return
	}
	c.JSON(http.StatusOK, metabolism.ChartPoints(entries))
}
