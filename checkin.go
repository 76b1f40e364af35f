package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lg/adaptive-tdee-api/metabolism"
)

const maxNotesLength = 1000

// errCheckinNotEligible is returned by recordCheckin when the log or the
// previous check-in rules out a new one this week.
var errCheckinNotEligible = errors.New("check-in not eligible")

// checkinState is everything the check-in rules look at, loaded once.
type checkinState struct {
	profile     *metabolism.UserProfile
	log         []metabolism.DailyLogEntry
	latest      *weeklyCheckin
	eligibility metabolism.Eligibility
}

func loadCheckinState(ctx context.Context, store Store, now time.Time) (checkinState, error) {
	var st checkinState
	var err error
	if st.profile, err = store.GetProfile(ctx); err != nil {
		return st, err
	}
	if st.log, err = store.ListDailyLog(ctx); err != nil {
		return st, err
	}
	if st.latest, err = store.LatestCheckin(ctx); err != nil {
		return st, err
	}

	if st.profile == nil {
		st.eligibility = metabolism.Eligibility{Reason: "Complete your profile first."}
		return st, nil
	}
	last := ""
	if st.latest != nil {
		last = st.latest.Date
	}
	st.eligibility = metabolism.CheckinEligibility(st.log, last, now)
	return st, nil
}

// recordCheckin archives this week's summary and recommendation. It is shared
// by POST /api/checkins and the scheduler. When the week is not eligible the
// returned error wraps errCheckinNotEligible and the Eligibility explains why.
func recordCheckin(ctx context.Context, store Store, now time.Time, notes *string) (weeklyCheckin, metabolism.Eligibility, error) {
	st, err := loadCheckinState(ctx, store, now)
	if err != nil {
		return weeklyCheckin{}, metabolism.Eligibility{}, err
	}
	if !st.eligibility.Eligible {
		return weeklyCheckin{}, st.eligibility, fmt.Errorf("%w: %s", errCheckinNotEligible, st.eligibility.Reason)
	}

	// Eligibility guarantees at least two entries this week.
	week, _ := metabolism.SummarizeWeek(metabolism.LastWeek(st.log, now))
	status := metabolism.ComputeStatus(*st.profile, st.log)
	rec := status.WeeklyRecommendation

	ci := weeklyCheckin{
		ID:                  uuid.NewString(),
		Date:                now.Format(metabolism.DateLayout),
		WeekNumber:          metabolism.WeekNumber(st.log, now),
		StartWeightKG:       week.StartWeightKG,
		EndWeightKG:         week.EndWeightKG,
		WeightChangePercent: week.WeightChangePercent,
		AvgCalories:         week.AvgCalories,
		DaysLogged:          week.DaysLogged,
		Action:              rec.Action,
		CalorieChange:       rec.CalorieChange,
		TargetCalories:      rec.TargetCalories,
		Rationale:           rec.Rationale,
		Notes:               notes,
		CreatedAt:           now.UTC(),
	}
	if err := store.SaveCheckin(ctx, ci); err != nil {
		return weeklyCheckin{}, st.eligibility, err
	}
	return ci, st.eligibility, nil
}

// listCheckins returns archived check-ins, newest first.
// GET /api/checkins. Returns an empty array (not null) if there are none.
func (h *Handler) listCheckins(c *gin.Context) {
	checkins, err := h.store.ListCheckins(c)
	if err != nil {
		log.Printf("[listCheckins] %v", err)
		apiError(c, http.StatusInternalServerError, "failed to fetch check-ins")
		return
	}
	if checkins == nil {
		checkins = []weeklyCheckin{}
	}
	c.JSON(http.StatusOK, checkins)
}

// getCheckinEligibility reports whether a check-in can be recorded now.
// GET /api/checkins/eligibility.
func (h *Handler) getCheckinEligibility(c *gin.Context) {
	now := h.now()
	st, err := loadCheckinState(c, h.store, now)
	if err != nil {
		log.Printf("[getCheckinEligibility] %v", err)
		apiError(c, http.StatusInternalServerError, "failed to load check-in state")
		return
	}

	resp := checkinEligibilityResponse{
		Eligibility: st.eligibility,
		WeekNumber:  metabolism.WeekNumber(st.log, now),
	}
	if st.latest != nil {
		resp.LastCheckinDate = &st.latest.Date
	}
	c.JSON(http.StatusOK, resp)
}

// createCheckin records this week's check-in.
// POST /api/checkins. Body (optional): { "notes": "..." }.
// Returns 201 with the archived check-in, or 409 with the reason when the
// week is not eligible.
func (h *Handler) createCheckin(c *gin.Context) {
	var body createCheckinRequest
	// An empty body is allowed.
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Notes != nil {
		trimmed := strings.TrimSpace(*body.Notes)
		if utf8.RuneCountInString(trimmed) > maxNotesLength {
			apiError(c, http.StatusBadRequest, "notes must be at most 1000 characters")
			return
		}
		body.Notes = &trimmed
		if trimmed == "" {
			body.Notes = nil
		}
	}

	ci, eligibility, err := recordCheckin(c, h.store, h.now(), body.Notes)
	if errors.Is(err, errCheckinNotEligible) {
		apiError(c, http.StatusConflict, eligibility.Reason)
		return
	}
	if err != nil {
		log.Printf("[createCheckin] %v", err)
		apiError(c, http.StatusInternalServerError, "failed to record check-in")
		return
	}
	c.JSON(http.StatusCreated, ci)
}
