package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lg/adaptive-tdee-api/metabolism"
)

// Accepted daily intake range in kcal.
const (
	minCalories = 0
	maxCalories = 20000
)

// getDailyLog returns the annotated log (trend weight and derived expenditure
// filled in), ascending by date.
// GET /api/daily-log[?start=YYYY-MM-DD&end=YYYY-MM-DD]. The range is optional
// but start and end must be given together. Trends are computed over the whole
// log before filtering. Returns an empty array (not null) when nothing matches.
func (h *Handler) getDailyLog(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")

	if (start == "") != (end == "") {
		apiError(c, http.StatusBadRequest, "start and end must be provided together")
		return
	}
	if start != "" {
		if _, err := time.Parse(metabolism.DateLayout, start); err != nil {
			apiError(c, http.StatusBadRequest, "invalid start, expected YYYY-MM-DD")
			return
		}
		if _, err := time.Parse(metabolism.DateLayout, end); err != nil {
			apiError(c, http.StatusBadRequest, "invalid end, expected YYYY-MM-DD")
			return
		}
		if start > end {
			apiError(c, http.StatusBadRequest, "start must not be after end")
			return
		}
	}

	entries, err := h.store.ListDailyLog(c)
	if err != nil {
		log.Printf("[getDailyLog] %v", err)
		apiError(c, http.StatusInternalServerError, "failed to fetch daily log")
		return
	}

	annotated := metabolism.Annotate(entries)
	if annotated == nil {
		annotated = []metabolism.DailyLogEntry{}
	}
	if start == "" {
		c.JSON(http.StatusOK, annotated)
		return
	}
	// Ensure empty array (not null) in JSON
	inRange := []metabolism.DailyLogEntry{}
	for _, e := range annotated {
		if e.Date >= start && e.Date <= end {
			inRange = append(inRange, e)
		}
	}
	c.JSON(http.StatusOK, inRange)
}

// upsertDailyLog creates or replaces the entry for a date.
// POST /api/daily-log. Body: { "date"?: "YYYY-MM-DD", "weight_kg": 80.2, "calories": 2400 }.
// date defaults to today. The response carries the entry's trend weight and
// derived expenditure as of the updated log.
func (h *Handler) upsertDailyLog(c *gin.Context) {
	var body upsertDailyLogRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Date == "" {
		body.Date = h.now().Format(metabolism.DateLayout)
	}
	if _, err := time.Parse(metabolism.DateLayout, body.Date); err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}
	if body.WeightKG == nil {
		apiError(c, http.StatusBadRequest, "weight_kg is required")
		return
	}
	if *body.WeightKG < minWeightKG || *body.WeightKG > maxWeightKG {
		apiError(c, http.StatusBadRequest, "weight_kg must be between 35 and 200")
		return
	}
	if body.Calories == nil {
		apiError(c, http.StatusBadRequest, "calories is required")
		return
	}
	if *body.Calories < minCalories || *body.Calories > maxCalories {
		apiError(c, http.StatusBadRequest, "calories must be between 0 and 20000")
		return
	}

	saved, err := h.store.UpsertDailyLog(c, metabolism.DailyLogEntry{
		Date:     body.Date,
		WeightKG: *body.WeightKG,
		Calories: *body.Calories,
	})
	if err != nil {
		log.Printf("[upsertDailyLog] %v", err)
		apiError(c, http.StatusInternalServerError, "failed to save log entry")
		return
	}

	entries, err := h.store.ListDailyLog(c)
	if err != nil {
		// The write succeeded; fall back to the bare entry.
		log.Printf("[upsertDailyLog] annotate: %v", err)
		c.JSON(http.StatusCreated, saved)
		return
	}
	for _, e := range metabolism.Annotate(entries) {
		if e.Date == saved.Date {
			saved = e
			break
		}
	}
	c.JSON(http.StatusCreated, saved)
}

// deleteDailyLog removes the entry for a date.
// DELETE /api/daily-log/:date. Returns 204 on success, 404 if not found.
func (h *Handler) deleteDailyLog(c *gin.Context) {
	date := c.Param("date")
	if _, err := time.Parse(metabolism.DateLayout, date); err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	err := h.store.DeleteDailyLog(c, date)
	if errors.Is(err, errNotFound) {
		apiError(c, http.StatusNotFound, "log entry not found")
		return
	}
	if err != nil {
		log.Printf("[deleteDailyLog] %v", err)
		apiError(c, http.StatusInternalServerError, "failed to delete log entry")
		return
	}
	c.Status(http.StatusNoContent)
}
