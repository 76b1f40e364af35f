package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Handler holds shared dependencies (store, clock) for all route handlers.
type Handler struct {
	store Store
	now   func() time.Time // Current time (overridable for tests)
}

func newHandler(store Store) *Handler {
	return &Handler{store: store, now: time.Now}
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// registerRoutes registers all API routes on the router. There is one implicit
// user, so no route is authenticated.
func (h *Handler) registerRoutes(router *gin.Engine) {
	router.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	api := router.Group("/api")
	api.POST("/calculator", h.calculate)
	api.GET("/profile", h.getProfile)
	api.PUT("/profile", h.putProfile)
	api.GET("/daily-log", h.getDailyLog)
	api.POST("/daily-log", h.upsertDailyLog)
	api.DELETE("/daily-log/:date", h.deleteDailyLog)
	api.GET("/status", h.getStatus)
	api.GET("/chart", h.getChart)
	api.GET("/checkins", h.listCheckins)
	api.GET("/checkins/eligibility", h.getCheckinEligibility)
	api.POST("/checkins", h.createCheckin)
	api.DELETE("/data", h.clearData)
}
