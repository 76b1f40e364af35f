package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"lg/adaptive-tdee-api/metabolism"
)

// testNow is the handler clock in tests: Tuesday 2026-03-10, midday UTC.
var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

// setupTest creates a Gin engine backed by a fresh SQLite store in a temp dir.
// The store is returned so tests can seed and inspect data directly.
func setupTest(t *testing.T) (*gin.Engine, *sqliteStore) {
	t.Helper()
	store := newTestStore(t)

	gin.SetMode(gin.TestMode)
	h := newHandler(store)
	h.now = func() time.Time { return testNow }
	router := gin.New()
	h.registerRoutes(router)
	return router, store
}

func newTestStore(t *testing.T) *sqliteStore {
	t.Helper()
	store, err := newSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("newSQLiteStore: %v", err)
	}
	t.Cleanup(store.Close)
	return store
}

// doRequest sends a request with an optional JSON body through router.
func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decode unmarshals the recorder body into v, failing the test on error.
func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

// errorMessage returns the "error" field of an apiError response.
func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	decode(t, w, &resp)
	return resp.Error
}

// referenceProfile has predicted expenditure 2761 and protein target 128 g.
func referenceProfile() metabolism.UserProfile {
	return metabolism.UserProfile{
		Sex:           metabolism.SexMale,
		Age:           30,
		HeightCM:      180,
		WeightKG:      80,
		ActivityLevel: metabolism.ActivityModerate,
	}
}

func seedProfile(t *testing.T, store Store, p metabolism.UserProfile) {
	t.Helper()
	if err := store.SaveProfile(context.Background(), p); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
}

// seedLog writes one entry per consecutive day from start with a constant
// intake.
func seedLog(t *testing.T, store Store, start string, weights []float64, calories int) {
	t.Helper()
	day, err := time.Parse(metabolism.DateLayout, start)
	if err != nil {
		t.Fatal(err)
	}
	for i, w := range weights {
		e := metabolism.DailyLogEntry{
			Date:     day.AddDate(0, 0, i).Format(metabolism.DateLayout),
			WeightKG: w,
			Calories: calories,
		}
		if _, err := store.UpsertDailyLog(context.Background(), e); err != nil {
			t.Fatalf("UpsertDailyLog: %v", err)
		}
	}
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

/* ─── Router-level tests ─────────────────────────────────────────────── */

func TestHealthz(t *testing.T) {
	router, _ := setupTest(t)
	w := doRequest(router, "GET", "/healthz", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestUnknownRoute(t *testing.T) {
	router, _ := setupTest(t)
	w := doRequest(router, "GET", "/api/nope", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

// TestCORS_Preflight verifies the rs/cors wrapper answers browser preflights
// for allowed origins and leaves other origins without the allow header.
func TestCORS_Preflight(t *testing.T) {
	router, _ := setupTest(t)
	handler := newCORS([]string{"https://dashboard.example"}).Handler(router)

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/daily-log", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		// Browsers send request header names lowercased.
		req.Header.Set("Access-Control-Request-Headers", "content-type")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w
	}

	w := preflight("https://dashboard.example")
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://dashboard.example" {
		t.Errorf("allowed origin header = %q, want https://dashboard.example", got)
	}

	w = preflight("https://elsewhere.example")
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("disallowed origin got allow header %q", got)
	}

	// The request that follows a successful preflight reaches the router.
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://dashboard.example")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("cross-origin GET: expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://dashboard.example" {
		t.Errorf("cross-origin GET allow header = %q", got)
	}
}
