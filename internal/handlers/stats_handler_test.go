package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ErkinAl/MuvTimeBack/internal/models"
	"github.com/ErkinAl/MuvTimeBack/internal/services"
	"github.com/gofiber/fiber/v2"
)

type stubStatsService struct {
	statsResult     *models.StatsView
	statsErr        error
	sessionsResult  []models.SessionView
	sessionsErr     error
	lastUserID      string
	lastUpdateInput services.UpdateStatsInput
	lastDisplayName string
	lastEmail       string
	updateCalls     int
	resetCalls      int
	initializeCalls int
}

func (s *stubStatsService) GetStats(_ context.Context, userID string) (*models.StatsView, error) {
	s.lastUserID = userID
	return s.statsResult, s.statsErr
}

func (s *stubStatsService) UpdateStats(_ context.Context, userID string, input services.UpdateStatsInput) (*models.StatsView, error) {
	s.lastUserID = userID
	s.lastUpdateInput = input
	s.updateCalls++
	return s.statsResult, s.statsErr
}

func (s *stubStatsService) GetSessions(_ context.Context, userID string) ([]models.SessionView, error) {
	s.lastUserID = userID
	return s.sessionsResult, s.sessionsErr
}

func (s *stubStatsService) ResetStats(_ context.Context, userID string) (*models.StatsView, error) {
	s.lastUserID = userID
	s.resetCalls++
	return s.statsResult, s.statsErr
}

func (s *stubStatsService) InitializeStats(_ context.Context, userID, displayName, email string) (*models.StatsView, error) {
	s.lastUserID = userID
	s.lastDisplayName = displayName
	s.lastEmail = email
	s.initializeCalls++
	return s.statsResult, s.statsErr
}

func newStatsTestApp(service *stubStatsService) *fiber.App {
	handler := &StatsHandler{service: service}
	app := fiber.New()
	stats := app.Group("/api/v1/stats")
	stats.Get("/:userId", handler.GetStats)
	stats.Post("/:userId/update", handler.UpdateStats)
	stats.Get("/:userId/sessions", handler.GetSessions)
	stats.Post("/:userId/reset", handler.ResetStats)
	stats.Post("/:userId/initialize", handler.InitializeStats)
	return app
}

func TestGetStatsReturnsView(t *testing.T) {
	service := &stubStatsService{
		statsResult: &models.StatsView{
			Level:          2,
			XP:             250,
			TotalJumps:     10,
			CurrentLevelXP: 50,
			XPToNextLevel:  50,
		},
	}
	app := newStatsTestApp(service)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/stats/user-1", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if service.lastUserID != "user-1" {
		t.Errorf("expected user-1, got %q", service.lastUserID)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["xp"] != float64(250) || body["level"] != float64(2) {
		t.Errorf("unexpected body: %v", body)
	}
	if body["xp_to_next_level"] != float64(50) {
		t.Errorf("expected xp_to_next_level 50, got %v", body["xp_to_next_level"])
	}
}

func TestUpdateStatsParsesBody(t *testing.T) {
	service := &stubStatsService{statsResult: &models.StatsView{XP: 250}}
	app := newStatsTestApp(service)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/stats/user-1/update", strings.NewReader(`{
		"exercise_type": "squats",
		"reps_completed": 12,
		"xp_earned": 60,
		"session_duration": 45
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if service.updateCalls != 1 {
		t.Fatalf("expected 1 update call, got %d", service.updateCalls)
	}
	input := service.lastUpdateInput
	if input.ExerciseType != "squats" || input.RepsCompleted != 12 ||
		input.XPEarned != 60 || input.SessionDuration != 45 {
		t.Errorf("unexpected update input: %+v", input)
	}
}

func TestUpdateStatsRejectsMalformedBody(t *testing.T) {
	service := &stubStatsService{statsResult: &models.StatsView{}}
	app := newStatsTestApp(service)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/stats/user-1/update", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if service.updateCalls != 0 {
		t.Error("malformed body must not reach the service")
	}
}

func TestGetSessionsReturnsList(t *testing.T) {
	completed := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	service := &stubStatsService{
		sessionsResult: []models.SessionView{
			{ID: "s2", ExerciseType: "jump", RepsCompleted: 20, CompletedAt: completed},
			{ID: "s1", ExerciseType: "squats", RepsCompleted: 10, CompletedAt: completed.Add(-time.Hour)},
		},
	}
	app := newStatsTestApp(service)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/stats/user-1/sessions", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body) != 2 || body[0]["id"] != "s2" || body[1]["id"] != "s1" {
		t.Errorf("unexpected sessions body: %v", body)
	}
}

func TestResetStatsInvokesService(t *testing.T) {
	service := &stubStatsService{statsResult: &models.StatsView{XPToNextLevel: 100}}
	app := newStatsTestApp(service)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/v1/stats/user-1/reset", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if service.resetCalls != 1 {
		t.Errorf("expected 1 reset call, got %d", service.resetCalls)
	}
}

func TestInitializeStatsPassesProfileFields(t *testing.T) {
	service := &stubStatsService{statsResult: &models.StatsView{XPToNextLevel: 100}}
	app := newStatsTestApp(service)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/stats/user-1/initialize", strings.NewReader(`{
		"display_name": "Erkin",
		"email": "erkin@example.com"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if service.initializeCalls != 1 {
		t.Fatalf("expected 1 initialize call, got %d", service.initializeCalls)
	}
	if service.lastDisplayName != "Erkin" || service.lastEmail != "erkin@example.com" {
		t.Errorf("unexpected profile fields: %q, %q", service.lastDisplayName, service.lastEmail)
	}
}

func TestStoreFailureSurfacesAsOpaqueError(t *testing.T) {
	service := &stubStatsService{statsErr: errors.New("connection refused")}
	app := newStatsTestApp(service)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/stats/user-1", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "connection refused" {
		t.Errorf("expected opaque failure message, got %v", body)
	}
}

func TestBlankUserIDRejectedAtBoundary(t *testing.T) {
	service := &stubStatsService{statsErr: services.ErrEmptyUserID}
	app := newStatsTestApp(service)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/stats/%20%20", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
