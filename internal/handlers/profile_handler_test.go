package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "finplanner/internal/errors"
	"finplanner/internal/models"
	"finplanner/internal/services"
)

func setupProfileRouter(handler *ProfileHandler) *gin.Engine {
	r, scoped := newRouter()
	scoped.GET("/profile", handler.GetProfile)
	scoped.PUT("/profile", handler.UpdateProfile)
	scoped.GET("/stats", handler.GetStats)
	scoped.PUT("/stats", handler.UpdateStats)
	scoped.POST("/stats/recompute", handler.RecomputeStats)
	return r
}

func TestProfileHandler_GetProfile(t *testing.T) {
	t.Run("returns 200 with profile", func(t *testing.T) {
		handler := NewProfileHandler(&mockProfileService{}, &mockStatsService{})
		r, scoped := newRouter()
		scoped.GET("/profile", handler.GetProfile)

		rec := doRequest(r, "GET", "/profile", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		profile := parseJSON(t, rec)["profile"].(map[string]interface{})
		if profile["monthlyIncome"].(float64) != 85000 {
			t.Errorf("expected income 85000, got %v", profile["monthlyIncome"])
		}
	})

	t.Run("returns null before seeding", func(t *testing.T) {
		svc := &mockProfileService{
			getProfileFn: func(uint) (*models.UserProfile, error) { return nil, nil },
		}
		handler := NewProfileHandler(svc, &mockStatsService{})
		r, scoped := newRouter()
		scoped.GET("/profile", handler.GetProfile)

		rec := doRequest(r, "GET", "/profile", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if parseJSON(t, rec)["profile"] != nil {
			t.Error("expected null profile")
		}
	})

	t.Run("returns 500 on storage error", func(t *testing.T) {
		svc := &mockProfileService{
			getProfileFn: func(uint) (*models.UserProfile, error) { return nil, apperrors.ErrStorage },
		}
		handler := NewProfileHandler(svc, &mockStatsService{})
		r, scoped := newRouter()
		scoped.GET("/profile", handler.GetProfile)

		rec := doRequest(r, "GET", "/profile", "")
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "STORAGE_ERROR")
	})
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	t.Run("passes income to the service", func(t *testing.T) {
		var got services.ProfileUpdate
		svc := &mockProfileService{
			updateProfileFn: func(ownerID uint, update services.ProfileUpdate) error {
				if ownerID != testOwner {
					t.Errorf("expected owner %d, got %d", testOwner, ownerID)
				}
				got = update
				return nil
			},
		}
		handler := NewProfileHandler(svc, &mockStatsService{})
		r, scoped := newRouter()
		scoped.PUT("/profile", handler.UpdateProfile)

		rec := doRequest(r, "PUT", "/profile", `{"monthlyIncome":90000}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.MonthlyIncome == nil || !got.MonthlyIncome.Equal(decimal.NewFromInt(90000)) {
			t.Errorf("expected income 90000, got %v", got.MonthlyIncome)
		}
		if got.Name != nil {
			t.Error("expected name to be left unset")
		}
	})

	t.Run("returns 400 on negative income", func(t *testing.T) {
		handler := NewProfileHandler(&mockProfileService{}, &mockStatsService{})
		r, scoped := newRouter()
		scoped.PUT("/profile", handler.UpdateProfile)

		rec := doRequest(r, "PUT", "/profile", `{"monthlyIncome":-1}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on invalid email", func(t *testing.T) {
		handler := NewProfileHandler(&mockProfileService{}, &mockStatsService{})
		r, scoped := newRouter()
		scoped.PUT("/profile", handler.UpdateProfile)

		rec := doRequest(r, "PUT", "/profile", `{"email":"not-an-email"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestProfileHandler_Stats(t *testing.T) {
	t.Run("get returns stats", func(t *testing.T) {
		stats := &mockStatsService{
			getStatsFn: func(ownerID uint) (*models.DashboardStats, error) {
				return &models.DashboardStats{ID: ownerID, MonthlySavings: decimal.NewFromInt(44000)}, nil
			},
		}
		r := setupProfileRouter(NewProfileHandler(&mockProfileService{}, stats))

		rec := doRequest(r, "GET", "/stats", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		got := parseJSON(t, rec)["stats"].(map[string]interface{})
		if got["monthlySavings"].(float64) != 44000 {
			t.Errorf("expected savings 44000, got %v", got["monthlySavings"])
		}
	})

	t.Run("update sets total balance", func(t *testing.T) {
		var got *decimal.Decimal
		stats := &mockStatsService{
			updateStatsFn: func(_ uint, update services.StatsUpdate) error {
				got = update.TotalBalance
				return nil
			},
		}
		r := setupProfileRouter(NewProfileHandler(&mockProfileService{}, stats))

		rec := doRequest(r, "PUT", "/stats", `{"totalBalance":"250000.50"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got == nil || !got.Equal(decimal.RequireFromString("250000.50")) {
			t.Errorf("expected balance 250000.50, got %v", got)
		}
	})

	t.Run("update without balance returns 400", func(t *testing.T) {
		r := setupProfileRouter(NewProfileHandler(&mockProfileService{}, &mockStatsService{}))

		rec := doRequest(r, "PUT", "/stats", `{}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("recompute calls the service", func(t *testing.T) {
		called := false
		stats := &mockStatsService{
			recomputeStatsFn: func(uint) error {
				called = true
				return nil
			},
		}
		r := setupProfileRouter(NewProfileHandler(&mockProfileService{}, stats))

		rec := doRequest(r, "POST", "/stats/recompute", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !called {
			t.Error("expected RecomputeStats to be called")
		}
	})
}
