package handlers

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"finplanner/internal/middleware"
	"finplanner/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

const testOwner uint = 1

func newRouter() (*gin.Engine, *gin.RouterGroup) {
	r := gin.New()
	return r, r.Group("", middleware.OwnerScope(testOwner))
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{name: "rfc3339", in: "2024-05-01T10:00:00Z"},
		{name: "plain_date", in: "2024-05-01"},
		{name: "garbage", in: "May 1st", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseDate(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}
}

func TestMissingOwnerScope(t *testing.T) {
	handler := NewExpenseHandler(&mockExpenseService{})
	r := gin.New()
	r.GET("/expenses", handler.ListExpenses)

	rec := doRequest(r, "GET", "/expenses", "")
	if rec.Code != 500 {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	assertErrorCode(t, parseJSON(t, rec), "INTERNAL_ERROR")
}

var errTest = errors.New("disk I/O error")
