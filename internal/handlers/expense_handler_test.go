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

func setupExpenseRouter(handler *ExpenseHandler) *gin.Engine {
	r, scoped := newRouter()
	scoped.GET("/expenses", handler.ListExpenses)
	scoped.POST("/expenses", handler.CreateExpense)
	scoped.PUT("/expenses/:id", handler.UpdateExpense)
	scoped.DELETE("/expenses/:id", handler.DeleteExpense)
	return r
}

func TestExpenseHandler_ListExpenses(t *testing.T) {
	svc := &mockExpenseService{
		listExpensesFn: func(ownerID uint) ([]models.ExpenseItem, error) {
			return []models.ExpenseItem{
				{ID: 1, Category: "Housing", Amount: decimal.NewFromInt(25000), Owned: models.Owned{OwnerID: ownerID}},
				{ID: 2, Category: "Food", Amount: decimal.NewFromInt(8000), Owned: models.Owned{OwnerID: ownerID}},
			}, nil
		},
	}
	r := setupExpenseRouter(NewExpenseHandler(svc))

	rec := doRequest(r, "GET", "/expenses", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	expenses := parseJSON(t, rec)["expenses"].([]interface{})
	if len(expenses) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(expenses))
	}
	first := expenses[0].(map[string]interface{})
	if first["userId"].(float64) != float64(testOwner) {
		t.Errorf("expected userId %d, got %v", testOwner, first["userId"])
	}
}

func TestExpenseHandler_CreateExpense(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var gotCategory string
		var gotAmount decimal.Decimal
		svc := &mockExpenseService{
			addExpenseFn: func(_ uint, category string, amount decimal.Decimal) (uint, error) {
				gotCategory, gotAmount = category, amount
				return 5, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "POST", "/expenses", `{"category":"Entertainment","amount":3000}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if parseJSON(t, rec)["id"].(float64) != 5 {
			t.Error("expected id 5")
		}
		if gotCategory != "Entertainment" || !gotAmount.Equal(decimal.NewFromInt(3000)) {
			t.Errorf("unexpected arguments %q %s", gotCategory, gotAmount)
		}
	})

	t.Run("merge adds to the category", func(t *testing.T) {
		merged := false
		svc := &mockExpenseService{
			addExpenseFn: func(uint, string, decimal.Decimal) (uint, error) {
				t.Error("AddExpense should not be called when merging")
				return 0, nil
			},
			addToCategoryFn: func(uint, string, decimal.Decimal) (uint, error) {
				merged = true
				return 2, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "POST", "/expenses", `{"category":"Food","amount":500,"merge":true}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
		if !merged {
			t.Error("expected AddToCategory to be called")
		}
	})

	t.Run("returns 400 on missing category", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

		rec := doRequest(r, "POST", "/expenses", `{"amount":100}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on zero amount", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

		rec := doRequest(r, "POST", "/expenses", `{"category":"Food","amount":0}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 500 on storage error", func(t *testing.T) {
		svc := &mockExpenseService{
			addExpenseFn: func(uint, string, decimal.Decimal) (uint, error) {
				return 0, apperrors.Wrap(apperrors.ErrStorage, errTest)
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "POST", "/expenses", `{"category":"Food","amount":100}`)
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "STORAGE_ERROR")
	})
}

func TestExpenseHandler_UpdateExpense(t *testing.T) {
	t.Run("returns 200 with the list", func(t *testing.T) {
		var gotID uint
		var got services.ExpenseUpdate
		svc := &mockExpenseService{
			updateExpenseFn: func(_, expenseID uint, update services.ExpenseUpdate) error {
				gotID, got = expenseID, update
				return nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "PUT", "/expenses/3", `{"amount":4500}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotID != 3 || got.Category != nil || got.Amount == nil || !got.Amount.Equal(decimal.NewFromInt(4500)) {
			t.Errorf("unexpected update for %d: %+v", gotID, got)
		}
		if _, ok := parseJSON(t, rec)["expenses"]; !ok {
			t.Error("expected expenses in response")
		}
	})

	t.Run("returns 400 on invalid id", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

		rec := doRequest(r, "PUT", "/expenses/abc", `{"amount":1}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestExpenseHandler_DeleteExpense(t *testing.T) {
	t.Run("unknown id still returns 200", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

		rec := doRequest(r, "DELETE", "/expenses/999", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on zero id", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

		rec := doRequest(r, "DELETE", "/expenses/0", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
