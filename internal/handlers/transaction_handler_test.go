package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"finplanner/internal/models"
	"finplanner/internal/pagination"
	"finplanner/internal/services"
)

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r, scoped := newRouter()
	scoped.GET("/transactions", handler.ListTransactions)
	scoped.GET("/transactions/recent", handler.ListRecentTransactions)
	scoped.POST("/transactions", handler.CreateTransaction)
	return r
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var got services.TransactionFields
		svc := &mockTransactionService{
			addTransactionFn: func(ownerID uint, fields services.TransactionFields) (*models.Transaction, error) {
				got = fields
				return &models.Transaction{ID: 1, Description: fields.Description, Amount: fields.Amount, Type: fields.Type, Owned: models.Owned{OwnerID: ownerID}}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "POST", "/transactions",
			`{"description":"Salary","amount":85000,"type":"income","category":"Salary","date":"2024-06-01"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Date.Month() != time.June || got.Date.Day() != 1 {
			t.Errorf("expected 2024-06-01, got %v", got.Date)
		}
		tx := parseJSON(t, rec)["transaction"].(map[string]interface{})
		if tx["amount"].(float64) != 85000 {
			t.Errorf("expected amount 85000, got %v", tx["amount"])
		}
	})

	t.Run("signed amounts are accepted", func(t *testing.T) {
		var got decimal.Decimal
		svc := &mockTransactionService{
			addTransactionFn: func(_ uint, fields services.TransactionFields) (*models.Transaction, error) {
				got = fields.Amount
				return &models.Transaction{ID: 2}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "POST", "/transactions", `{"description":"Groceries","amount":-1500,"type":"expense"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
		if !got.Equal(decimal.NewFromInt(-1500)) {
			t.Errorf("expected -1500, got %s", got)
		}
	})

	t.Run("returns 400 on invalid type", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "POST", "/transactions", `{"description":"x","amount":1,"type":"transfer"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on bad date", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "POST", "/transactions", `{"description":"x","amount":1,"type":"income","date":"01/06/2024"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_ListRecentTransactions(t *testing.T) {
	t.Run("forwards the limit", func(t *testing.T) {
		gotLimit := -1
		svc := &mockTransactionService{
			listRecentFn: func(_ uint, limit int) ([]models.Transaction, error) {
				gotLimit = limit
				return []models.Transaction{}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "GET", "/transactions/recent?limit=5", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotLimit != 5 {
			t.Errorf("expected limit 5, got %d", gotLimit)
		}
	})

	t.Run("missing limit means default", func(t *testing.T) {
		gotLimit := -1
		svc := &mockTransactionService{
			listRecentFn: func(_ uint, limit int) ([]models.Transaction, error) {
				gotLimit = limit
				return nil, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		doRequest(r, "GET", "/transactions/recent", "")
		if gotLimit != 0 {
			t.Errorf("expected limit 0, got %d", gotLimit)
		}
	})

	t.Run("returns 400 on invalid limit", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "GET", "/transactions/recent?limit=abc", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_ListTransactions(t *testing.T) {
	t.Run("applies page and filters", func(t *testing.T) {
		var gotPage pagination.PageRequest
		var gotFilter services.TransactionFilter
		svc := &mockTransactionService{
			listFn: func(_ uint, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
				gotPage, gotFilter = page, filter
				resp := pagination.NewPageResponse([]models.Transaction{{ID: 1}}, page.Page, page.PageSize, 11)
				return &resp, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "GET", "/transactions?page=2&pageSize=10&type=income&fromDate=2024-01-01&toDate=2024-01-31", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotPage.Page != 2 || gotPage.PageSize != 10 {
			t.Errorf("unexpected page %+v", gotPage)
		}
		if gotFilter.Type == nil || *gotFilter.Type != models.TransactionTypeIncome {
			t.Errorf("expected income filter, got %v", gotFilter.Type)
		}
		if gotFilter.ToDate == nil || gotFilter.ToDate.Day() != 31 || gotFilter.ToDate.Hour() != 23 {
			t.Errorf("expected end of 31 Jan, got %v", gotFilter.ToDate)
		}
		result := parseJSON(t, rec)
		if result["totalPages"].(float64) != 2 {
			t.Errorf("expected 2 pages, got %v", result["totalPages"])
		}
	})

	t.Run("defaults page", func(t *testing.T) {
		var gotPage pagination.PageRequest
		svc := &mockTransactionService{
			listFn: func(_ uint, page pagination.PageRequest, _ services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
				gotPage = page
				resp := pagination.NewPageResponse[models.Transaction](nil, page.Page, page.PageSize, 0)
				return &resp, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		doRequest(r, "GET", "/transactions", "")
		if gotPage.Page != 1 || gotPage.PageSize != pagination.DefaultPageSize {
			t.Errorf("unexpected page %+v", gotPage)
		}
	})

	t.Run("returns 400 on invalid type filter", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "GET", "/transactions?type=transfer", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on oversized page", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "GET", "/transactions?pageSize=500", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
