package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "paisa/internal/errors"
	"paisa/internal/models"
	"paisa/internal/pagination"
	"paisa/internal/services"
)

// --- mock expense service ---

type mockExpenseService struct {
	createExpenseFn      func(userID uint, input services.ExpenseCreateInput) (*models.Expense, error)
	getUserExpensesFn    func(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	getExpenseByIDFn     func(userID, expenseID uint) (*models.Expense, error)
	updateExpenseFn      func(userID, expenseID uint, fields services.ExpenseUpdateFields) (*models.Expense, error)
	deleteExpenseFn      func(userID, expenseID uint) error
	bulkCreateExpensesFn func(userID uint, inputs []services.ExpenseCreateInput) ([]models.Expense, error)
	bulkUpdateExpensesFn func(userID uint, payloads []services.BulkUpdatePayload) ([]models.Expense, error)
	filterByMonthFn      func(userID uint, month, year int) ([]models.Expense, error)
	filterByTagsFn       func(userID uint, tagIDs []uint) ([]models.Expense, error)
	filterExpensesFn     func(userID uint, filter services.ExpenseFilter) ([]models.Expense, error)
}

func (m *mockExpenseService) CreateExpense(userID uint, input services.ExpenseCreateInput) (*models.Expense, error) {
	if m.createExpenseFn != nil {
		return m.createExpenseFn(userID, input)
	}
	return &models.Expense{Base: models.Base{ID: 1}, UserID: userID, Amount: input.Amount}, nil
}

func (m *mockExpenseService) GetUserExpenses(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	if m.getUserExpensesFn != nil {
		return m.getUserExpensesFn(userID, page)
	}
	resp := pagination.NewPageResponse([]models.Expense{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockExpenseService) GetExpenseByID(userID, expenseID uint) (*models.Expense, error) {
	if m.getExpenseByIDFn != nil {
		return m.getExpenseByIDFn(userID, expenseID)
	}
	return &models.Expense{Base: models.Base{ID: expenseID}, UserID: userID}, nil
}

func (m *mockExpenseService) UpdateExpense(userID, expenseID uint, fields services.ExpenseUpdateFields) (*models.Expense, error) {
	if m.updateExpenseFn != nil {
		return m.updateExpenseFn(userID, expenseID, fields)
	}
	return &models.Expense{Base: models.Base{ID: expenseID}, UserID: userID}, nil
}

func (m *mockExpenseService) DeleteExpense(userID, expenseID uint) error {
	if m.deleteExpenseFn != nil {
		return m.deleteExpenseFn(userID, expenseID)
	}
	return nil
}

func (m *mockExpenseService) BulkCreateExpenses(userID uint, inputs []services.ExpenseCreateInput) ([]models.Expense, error) {
	if m.bulkCreateExpensesFn != nil {
		return m.bulkCreateExpensesFn(userID, inputs)
	}
	return []models.Expense{}, nil
}

func (m *mockExpenseService) BulkUpdateExpenses(userID uint, payloads []services.BulkUpdatePayload) ([]models.Expense, error) {
	if m.bulkUpdateExpensesFn != nil {
		return m.bulkUpdateExpensesFn(userID, payloads)
	}
	return []models.Expense{}, nil
}

func (m *mockExpenseService) FilterByMonth(userID uint, month, year int) ([]models.Expense, error) {
	if m.filterByMonthFn != nil {
		return m.filterByMonthFn(userID, month, year)
	}
	return []models.Expense{}, nil
}

func (m *mockExpenseService) FilterByTags(userID uint, tagIDs []uint) ([]models.Expense, error) {
	if m.filterByTagsFn != nil {
		return m.filterByTagsFn(userID, tagIDs)
	}
	return []models.Expense{}, nil
}

func (m *mockExpenseService) FilterExpenses(userID uint, filter services.ExpenseFilter) ([]models.Expense, error) {
	if m.filterExpensesFn != nil {
		return m.filterExpensesFn(userID, filter)
	}
	return []models.Expense{}, nil
}

// verify interface compliance
var _ services.ExpenseServicer = (*mockExpenseService)(nil)

func setupExpenseRouter(handler *ExpenseHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.POST("/expenses", handler.CreateExpense)
	auth.GET("/expenses", handler.GetUserExpenses)
	auth.POST("/expenses/bulk_create", handler.BulkCreateExpenses)
	auth.PUT("/expenses/bulk_update", handler.BulkUpdateExpenses)
	auth.GET("/expenses/filter_by_month", handler.FilterByMonth)
	auth.GET("/expenses/filter_by_tags", handler.FilterByTags)
	auth.GET("/expenses/filter_by_date_range_and_tags", handler.FilterExpenses)
	auth.GET("/expenses/:id", handler.GetExpenseByID)
	auth.PUT("/expenses/:id", handler.UpdateExpense)
	auth.DELETE("/expenses/:id", handler.DeleteExpense)
	return r
}

func TestExpenseHandler_CreateExpense(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockExpenseService{
			createExpenseFn: func(userID uint, input services.ExpenseCreateInput) (*models.Expense, error) {
				return &models.Expense{
					Base:            models.Base{ID: 7},
					UserID:          userID,
					BankAccountID:   input.BankAccountID,
					Amount:          input.Amount,
					TransactionType: input.TransactionType,
				}, nil
			},
		}
		handler := NewExpenseHandler(svc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/expenses",
			`{"bank_account":1,"amount":"500","transaction_type":"Debit","date":"2024-03-10"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		expense := result["expense"].(map[string]interface{})
		if expense["amount"] != "500" {
			t.Errorf("expected amount 500, got %v", expense["amount"])
		}
	})

	t.Run("returns 400 on missing bank account", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{}, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/expenses", `{"amount":"500"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on invalid transaction type", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{}, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/expenses",
			`{"bank_account":1,"amount":"500","transaction_type":"Transfer"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on bad date format", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{}, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/expenses",
			`{"bank_account":1,"amount":"500","date":"10-03-2024"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when account not found", func(t *testing.T) {
		svc := &mockExpenseService{
			createExpenseFn: func(_ uint, _ services.ExpenseCreateInput) (*models.Expense, error) {
				return nil, apperrors.ErrBankAccountNotFound
			},
		}
		handler := NewExpenseHandler(svc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/expenses", `{"bank_account":99,"amount":"500"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "BANK_ACCOUNT_NOT_FOUND")
	})
}

func TestExpenseHandler_GetExpenseByID(t *testing.T) {
	t.Run("returns 200 with expense", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{}, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "GET", "/expenses/42", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		expense := result["expense"].(map[string]interface{})
		if expense["id"].(float64) != 42 {
			t.Errorf("expected id 42, got %v", expense["id"])
		}
	})

	t.Run("projects requested fields only", func(t *testing.T) {
		svc := &mockExpenseService{
			getExpenseByIDFn: func(userID, expenseID uint) (*models.Expense, error) {
				return &models.Expense{
					Base:   models.Base{ID: expenseID},
					UserID: userID,
					Amount: decimal.NewFromInt(120),
					Notes:  "groceries",
				}, nil
			},
		}
		handler := NewExpenseHandler(svc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "GET", "/expenses/42?fields=id,amount", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		expense := result["expense"].(map[string]interface{})
		if len(expense) != 2 {
			t.Errorf("expected exactly 2 fields, got %v", expense)
		}
		if _, ok := expense["notes"]; ok {
			t.Error("expected notes to be projected away")
		}
	})

	t.Run("unknown requested fields are ignored", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{}, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "GET", "/expenses/42?fields=id,password", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		expense := parseJSON(t, rec)["expense"].(map[string]interface{})
		if len(expense) != 1 {
			t.Errorf("expected only id to survive, got %v", expense)
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockExpenseService{
			getExpenseByIDFn: func(_, _ uint) (*models.Expense, error) {
				return nil, apperrors.ErrExpenseNotFound
			},
		}
		handler := NewExpenseHandler(svc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "GET", "/expenses/42", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on non-numeric id", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{}, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "GET", "/expenses/abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestExpenseHandler_UpdateExpense(t *testing.T) {
	t.Run("passes through partial fields", func(t *testing.T) {
		var captured services.ExpenseUpdateFields
		svc := &mockExpenseService{
			updateExpenseFn: func(userID, expenseID uint, fields services.ExpenseUpdateFields) (*models.Expense, error) {
				captured = fields
				return &models.Expense{Base: models.Base{ID: expenseID}, UserID: userID}, nil
			},
		}
		handler := NewExpenseHandler(svc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "PUT", "/expenses/42", `{"amount":"150","tags":[]}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured.Amount == nil || !captured.Amount.Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected amount 150 passed through, got %v", captured.Amount)
		}
		if captured.Tags == nil || len(*captured.Tags) != 0 {
			t.Errorf("expected explicit empty tag set, got %v", captured.Tags)
		}
		if captured.Notes != nil {
			t.Error("expected omitted notes to stay nil")
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockExpenseService{
			updateExpenseFn: func(_, _ uint, _ services.ExpenseUpdateFields) (*models.Expense, error) {
				return nil, apperrors.ErrExpenseNotFound
			},
		}
		handler := NewExpenseHandler(svc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "PUT", "/expenses/42", `{"notes":"x"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestExpenseHandler_DeleteExpense(t *testing.T) {
	t.Run("returns 204 on success", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{}, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "DELETE", "/expenses/42", "")

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	})
}

func TestExpenseHandler_BulkEndpoints(t *testing.T) {
	t.Run("bulk create returns 201 with count", func(t *testing.T) {
		svc := &mockExpenseService{
			bulkCreateExpensesFn: func(userID uint, inputs []services.ExpenseCreateInput) ([]models.Expense, error) {
				out := make([]models.Expense, len(inputs))
				for i := range inputs {
					out[i] = models.Expense{Base: models.Base{ID: uint(i + 1)}, UserID: userID}
				}
				return out, nil
			},
		}
		handler := NewExpenseHandler(svc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/expenses/bulk_create",
			`[{"bank_account":1,"amount":"10"},{"bank_account":1,"amount":"20"}]`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["count"].(float64) != 2 {
			t.Errorf("expected count 2, got %v", result["count"])
		}
	})

	t.Run("bulk update returns 404 on foreign id", func(t *testing.T) {
		svc := &mockExpenseService{
			bulkUpdateExpensesFn: func(_ uint, _ []services.BulkUpdatePayload) ([]models.Expense, error) {
				return nil, apperrors.ErrExpenseNotFound
			},
		}
		handler := NewExpenseHandler(svc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "PUT", "/expenses/bulk_update", `[{"id":9,"notes":"x"}]`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("bulk update requires ids", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{}, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "PUT", "/expenses/bulk_update", `[{"notes":"x"}]`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestExpenseHandler_Filters(t *testing.T) {
	t.Run("month filter echoes params", func(t *testing.T) {
		svc := &mockExpenseService{
			filterByMonthFn: func(userID uint, month, year int) ([]models.Expense, error) {
				return []models.Expense{{Base: models.Base{ID: 1}, UserID: userID}}, nil
			},
		}
		handler := NewExpenseHandler(svc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "GET", "/expenses/filter_by_month?month=3&year=2024", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["count"].(float64) != 1 {
			t.Errorf("expected count 1, got %v", result["count"])
		}
		if result["month"].(float64) != 3 || result["year"].(float64) != 2024 {
			t.Errorf("expected month/year echoed, got %v", result)
		}
	})

	t.Run("month filter rejects non-numeric month", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{}, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "GET", "/expenses/filter_by_month?month=abc&year=2024", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("tag filter parses id list", func(t *testing.T) {
		var captured []uint
		svc := &mockExpenseService{
			filterByTagsFn: func(_ uint, tagIDs []uint) ([]models.Expense, error) {
				captured = tagIDs
				return []models.Expense{}, nil
			},
		}
		handler := NewExpenseHandler(svc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "GET", "/expenses/filter_by_tags?tag_ids=1,2,3", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if len(captured) != 3 {
			t.Errorf("expected 3 tag ids, got %v", captured)
		}
	})

	t.Run("combined filter passes range and account", func(t *testing.T) {
		var captured services.ExpenseFilter
		svc := &mockExpenseService{
			filterExpensesFn: func(_ uint, filter services.ExpenseFilter) ([]models.Expense, error) {
				captured = filter
				return []models.Expense{}, nil
			},
		}
		handler := NewExpenseHandler(svc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "GET",
			"/expenses/filter_by_date_range_and_tags?start_date=2024-03-01&end_date=2024-03-31&bank_account_id=5", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured.StartDate == nil || captured.EndDate == nil {
			t.Fatal("expected both date bounds passed through")
		}
		if captured.BankAccountID == nil || *captured.BankAccountID != 5 {
			t.Errorf("expected bank account 5, got %v", captured.BankAccountID)
		}
	})
}
