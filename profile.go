package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"lg/adaptive-tdee-api/metabolism"
)

// getProfile returns the saved profile.
// GET /api/profile. 404 when onboarding has not happened yet.
func (h *Handler) getProfile(c *gin.Context) {
	profile, err := h.store.GetProfile(c)
	if err != nil {
		log.Printf("[getProfile] %v", err)
		apiError(c, http.StatusInternalServerError, "failed to load profile")
		return
	}
	if profile == nil {
		apiError(c, http.StatusNotFound, "profile not found")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// putProfile replaces the profile wholesale.
// PUT /api/profile. Body: the full UserProfile; every field is required.
func (h *Handler) putProfile(c *gin.Context) {
	var body metabolism.UserProfile
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateProfile(body); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}
	if err := h.store.SaveProfile(c, body); err != nil {
		log.Printf("[putProfile] %v", err)
		apiError(c, http.StatusInternalServerError, "failed to save profile")
		return
	}
	c.JSON(http.StatusOK, body)
}

// clearData removes the profile, the daily log and every check-in.
// DELETE /api/data. Returns 204.
func (h *Handler) clearData(c *gin.Context) {
	if err := h.store.Clear(c); err != nil {
		log.Printf("[clearData] %v", err)
		apiError(c, http.StatusInternalServerError, "failed to clear data")
		return
	}
	c.Status(http.StatusNoContent)
}
