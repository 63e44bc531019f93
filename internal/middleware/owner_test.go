package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "finplanner/internal/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func doRequest(r *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	if remoteAddr != "" {
		req.RemoteAddr = remoteAddr
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response body: %v", err)
	}
	return result
}

func TestOwnerScope(t *testing.T) {
	r := gin.New()
	r.Use(OwnerScope(7))
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"owner": c.GetUint(OwnerIDKey)})
	})

	rec := doRequest(r, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if owner := parseBody(t, rec)["owner"]; owner != float64(7) {
		t.Errorf("expected owner 7, got %v", owner)
	}
}

func TestLocalOnly(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		wantStatus int
	}{
		{name: "ipv4_loopback", remoteAddr: "127.0.0.1:51234", wantStatus: http.StatusOK},
		{name: "ipv6_loopback", remoteAddr: "[::1]:51234", wantStatus: http.StatusOK},
		{name: "lan_address", remoteAddr: "192.168.1.20:51234", wantStatus: http.StatusForbidden},
		{name: "garbage", remoteAddr: "not-an-address", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(LocalOnly())
			r.GET("/test", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"status": "ok"})
			})

			rec := doRequest(r, tt.remoteAddr)
			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if tt.wantStatus == http.StatusForbidden {
				errObj, _ := parseBody(t, rec)["error"].(map[string]interface{})
				if errObj["code"] != "FORBIDDEN" {
					t.Errorf("expected FORBIDDEN, got %v", errObj["code"])
				}
			}
		})
	}
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/test", func(c *gin.Context) {
		_ = c.Error(errTest)
	})

	rec := doRequest(r, "")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	errObj, _ := parseBody(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "INTERNAL_ERROR" {
		t.Errorf("expected INTERNAL_ERROR, got %v", errObj["code"])
	}
}

var errTest = errors.New("boom")

func TestErrorHandler_AppError(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/test", func(c *gin.Context) {
		_ = c.Error(apperrors.WithMessage(apperrors.ErrNotFound, "Goal not found"))
	})

	rec := doRequest(r, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	errObj, _ := parseBody(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "NOT_FOUND" || errObj["message"] != "Goal not found" {
		t.Errorf("unexpected error body: %v", errObj)
	}
}

func TestRequestLogging(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"requestId": c.GetString(requestIDKey)})
	})

	t.Run("generates_id", func(t *testing.T) {
		rec := doRequest(r, "")
		id := rec.Header().Get(requestIDHeader)
		if id == "" {
			t.Fatal("expected X-Request-ID header")
		}
		if parseBody(t, rec)["requestId"] != id {
			t.Error("expected context request ID to match header")
		}
	})

	t.Run("reuses_supplied_id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
		req.Header.Set(requestIDHeader, "dash-42")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if got := rec.Header().Get(requestIDHeader); got != "dash-42" {
			t.Errorf("expected dash-42, got %q", got)
		}
	})
}
