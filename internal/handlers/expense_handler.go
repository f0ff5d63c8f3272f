package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "paisa/internal/errors"
	"paisa/internal/models"
	"paisa/internal/pagination"
	"paisa/internal/projection"
	"paisa/internal/services"
)

// expenseView lists the projectable fields of an expense response. The bank
// account association is only serialized when explicitly requested.
var expenseView = projection.View{
	Default: []string{
		"id", "created_at", "updated_at", "user_id", "bank_account_id",
		"amount", "date", "time", "transaction_date_time", "transaction_info",
		"notes", "currency", "transaction_type", "tags", "line_items",
	},
	Allowed: []string{"bank_account"},
}

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService}
}

// LineItemRequest is an (item name, amount) pair in an expense payload.
type LineItemRequest struct {
	Name   string          `json:"name" binding:"required,max=100"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// CreateExpenseRequest represents the request payload for creating an expense.
type CreateExpenseRequest struct {
	BankAccountID       uint              `json:"bank_account" binding:"required"`
	Amount              decimal.Decimal   `json:"amount" binding:"required"`
	Date                string            `json:"date" binding:"omitempty,date_ymd"`
	Time                string            `json:"time" binding:"omitempty,time_hms"`
	TransactionDateTime string            `json:"transaction_date_time"`
	TransactionInfo     string            `json:"transaction_info" binding:"max=255"`
	Notes               string            `json:"notes"`
	Currency            string            `json:"currency" binding:"omitempty,iso4217"`
	TransactionType     string            `json:"transaction_type" binding:"txn_type"`
	Tags                []string          `json:"tags"`
	Items               []LineItemRequest `json:"items"`
}

// UpdateExpenseRequest represents the request payload for a partial expense
// update. Omitted fields are left untouched; tags and items, when present,
// replace the full set (an empty list clears it).
type UpdateExpenseRequest struct {
	BankAccountID       *uint              `json:"bank_account"`
	Amount              *decimal.Decimal   `json:"amount"`
	Date                *string            `json:"date" binding:"omitempty,date_ymd"`
	Time                *string            `json:"time" binding:"omitempty,time_hms"`
	TransactionDateTime *string            `json:"transaction_date_time"`
	TransactionInfo     *string            `json:"transaction_info" binding:"omitempty,max=255"`
	Notes               *string            `json:"notes"`
	Currency            *string            `json:"currency" binding:"omitempty,iso4217"`
	TransactionType     *string            `json:"transaction_type" binding:"omitempty,txn_type"`
	Tags                *[]string          `json:"tags"`
	Items               *[]LineItemRequest `json:"items"`
}

// BulkUpdateExpenseRequest identifies one expense in a bulk update along with
// the fields to change.
type BulkUpdateExpenseRequest struct {
	ID uint `json:"id" binding:"required"`
	UpdateExpenseRequest
}

// ExpenseResponse represents an expense in the response.
type ExpenseResponse struct {
	ID                  uint                     `json:"id"`
	UserID              uint                     `json:"user_id"`
	BankAccountID       uint                     `json:"bank_account_id"`
	Amount              decimal.Decimal          `json:"amount"`
	Date                time.Time                `json:"date"`
	Time                string                   `json:"time"`
	TransactionDateTime time.Time                `json:"transaction_date_time"`
	TransactionInfo     string                   `json:"transaction_info"`
	Notes               string                   `json:"notes"`
	Currency            string                   `json:"currency"`
	TransactionType     models.TransactionType   `json:"transaction_type"`
	Tags                []models.Tag             `json:"tags,omitempty"`
	LineItems           []models.ExpenseLineItem `json:"line_items,omitempty"`
}

func toLineItemInputs(reqs []LineItemRequest) []services.LineItemInput {
	items := make([]services.LineItemInput, 0, len(reqs))
	for _, li := range reqs {
		items = append(items, services.LineItemInput{Name: li.Name, Amount: li.Amount})
	}
	return items
}

func toCreateInput(req *CreateExpenseRequest) (services.ExpenseCreateInput, error) {
	input := services.ExpenseCreateInput{
		BankAccountID:   req.BankAccountID,
		Amount:          req.Amount,
		Time:            req.Time,
		TransactionInfo: req.TransactionInfo,
		Notes:           req.Notes,
		Currency:        req.Currency,
		TransactionType: models.TransactionType(req.TransactionType),
		Tags:            req.Tags,
		Items:           toLineItemInputs(req.Items),
	}

	if req.Date != "" {
		date, err := parseDate(req.Date, "date")
		if err != nil {
			return input, err
		}
		input.Date = date
	}
	if req.TransactionDateTime != "" {
		dt, err := parseDate(req.TransactionDateTime, "transaction_date_time")
		if err != nil {
			return input, err
		}
		input.TransactionDateTime = dt
	}
	return input, nil
}

func toUpdateFields(req *UpdateExpenseRequest) (services.ExpenseUpdateFields, error) {
	fields := services.ExpenseUpdateFields{
		BankAccountID:   req.BankAccountID,
		Amount:          req.Amount,
		Time:            req.Time,
		TransactionInfo: req.TransactionInfo,
		Notes:           req.Notes,
		Currency:        req.Currency,
	}

	if req.TransactionType != nil {
		t := models.TransactionType(*req.TransactionType)
		fields.TransactionType = &t
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date, "date")
		if err != nil {
			return fields, err
		}
		fields.Date = &date
	}
	if req.TransactionDateTime != nil && *req.TransactionDateTime != "" {
		dt, err := parseDate(*req.TransactionDateTime, "transaction_date_time")
		if err != nil {
			return fields, err
		}
		fields.TransactionDateTime = &dt
	}
	if req.Tags != nil {
		fields.Tags = req.Tags
	}
	if req.Items != nil {
		items := toLineItemInputs(*req.Items)
		fields.Items = &items
	}
	return fields, nil
}

// respondExpense writes one expense, projected down to the requested fields
// when ?fields= is present.
func respondExpense(c *gin.Context, status int, expense *models.Expense) {
	requested := projection.ParseFields(c.Query("fields"))
	if len(requested) == 0 {
		c.JSON(status, gin.H{"expense": expense})
		return
	}

	projected, err := projection.Project(expense, expenseView.Select(requested))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(status, gin.H{"expense": projected})
}

// respondExpenseList writes a filter result envelope with the match count and
// the parameters echoed back, honoring ?fields= projection.
func respondExpenseList(c *gin.Context, expenses []models.Expense, params gin.H) {
	body := gin.H{"count": len(expenses)}
	for k, v := range params {
		body[k] = v
	}

	requested := projection.ParseFields(c.Query("fields"))
	if len(requested) == 0 {
		if expenses == nil {
			expenses = []models.Expense{}
		}
		body["results"] = expenses
		c.JSON(http.StatusOK, body)
		return
	}

	projected, err := projection.ProjectSlice(expenses, expenseView.Select(requested))
	if err != nil {
		respondWithError(c, err)
		return
	}
	body["results"] = projected
	c.JSON(http.StatusOK, body)
}

// CreateExpense handles the creation of a new expense
// @Summary     Create an expense
// @Description Create a new expense for the authenticated user, adjusting the bank account balance
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateExpenseRequest true "Expense details"
// @Success     201 {object} ExpenseResponse "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bank account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input, err := toCreateInput(&req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.CreateExpense(userID, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_EXPENSE", "expense", expense.ID, c.ClientIP(),
		map[string]interface{}{"amount": req.Amount, "transaction_type": req.TransactionType})

	respondExpense(c, http.StatusCreated, expense)
}

// GetUserExpenses handles the retrieval of expenses for a user
// @Summary     Get user expenses
// @Description Get a paginated list of expenses for the authenticated user, newest first
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Expense] "Paginated expenses"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) GetUserExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.expenseService.GetUserExpenses(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetExpenseByID handles the retrieval of a specific expense for a user
// @Summary     Get expense by ID
// @Description Get a specific expense by ID for the authenticated user, with optional field projection
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id     path  int    true  "Expense ID"
// @Param       fields query string false "Comma-separated list of fields to return"
// @Success     200 {object} ExpenseResponse "Expense details"
// @Failure     400 {object} ErrorResponse "Invalid expense ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [get]
func (h *ExpenseHandler) GetExpenseByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.GetExpenseByID(userID, expenseID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondExpense(c, http.StatusOK, expense)
}

// UpdateExpense handles updating an expense.
// @Summary     Update expense
// @Description Partially update an expense for the authenticated user, reconciling affected balances
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                  true "Expense ID"
// @Param       request body UpdateExpenseRequest true "Updated expense details"
// @Success     200 {object} ExpenseResponse "Updated expense"
// @Failure     400 {object} ErrorResponse "Invalid input or expense ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense or bank account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	fields, err := toUpdateFields(&req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.UpdateExpense(userID, expenseID, fields)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_EXPENSE", "expense", expenseID, c.ClientIP(), nil)

	respondExpense(c, http.StatusOK, expense)
}

// DeleteExpense handles deleting an expense.
// @Summary     Delete expense
// @Description Delete an expense for the authenticated user, restoring the bank account balance
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Expense ID"
// @Success     204 "Expense deleted"
// @Failure     400 {object} ErrorResponse "Invalid expense ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(userID, expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_EXPENSE", "expense", expenseID, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}

// BulkCreateExpenses handles creating several expenses in one request.
// @Summary     Bulk create expenses
// @Description Create several expenses atomically. This path does not adjust bank account balances.
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body []CreateExpenseRequest true "Expenses to create"
// @Success     201 {array} ExpenseResponse "Expenses created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bank account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/bulk_create [post]
func (h *ExpenseHandler) BulkCreateExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var reqs []CreateExpenseRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	inputs := make([]services.ExpenseCreateInput, 0, len(reqs))
	for i := range reqs {
		input, convErr := toCreateInput(&reqs[i])
		if convErr != nil {
			respondWithError(c, convErr)
			return
		}
		inputs = append(inputs, input)
	}

	expenses, err := h.expenseService.BulkCreateExpenses(userID, inputs)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "BULK_CREATE_EXPENSES", "expense", 0, c.ClientIP(),
		map[string]interface{}{"count": len(expenses)})

	c.JSON(http.StatusCreated, gin.H{"count": len(expenses), "expenses": expenses})
}

// BulkUpdateExpenses handles updating several expenses in one request.
// @Summary     Bulk update expenses
// @Description Update several expenses atomically. Any ID that is missing or not owned by the caller aborts the whole batch. This path does not reconcile bank account balances.
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body []BulkUpdateExpenseRequest true "Expense updates, each with an id"
// @Success     200 {array} ExpenseResponse "Expenses updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/bulk_update [put]
func (h *ExpenseHandler) BulkUpdateExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var reqs []BulkUpdateExpenseRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	payloads := make([]services.BulkUpdatePayload, 0, len(reqs))
	for i := range reqs {
		fields, convErr := toUpdateFields(&reqs[i].UpdateExpenseRequest)
		if convErr != nil {
			respondWithError(c, convErr)
			return
		}
		payloads = append(payloads, services.BulkUpdatePayload{ID: reqs[i].ID, Fields: fields})
	}

	expenses, err := h.expenseService.BulkUpdateExpenses(userID, payloads)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "BULK_UPDATE_EXPENSES", "expense", 0, c.ClientIP(),
		map[string]interface{}{"count": len(expenses)})

	c.JSON(http.StatusOK, gin.H{"count": len(expenses), "expenses": expenses})
}

// FilterByMonth handles filtering expenses by calendar month.
// @Summary     Filter expenses by month
// @Description Get the authenticated user's expenses whose date falls in the given month
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month  query int    true  "Month (1-12)"
// @Param       year   query int    true  "Year"
// @Param       fields query string false "Comma-separated list of fields to return"
// @Success     200 {array} ExpenseResponse "Matching expenses"
// @Failure     400 {object} ErrorResponse "Invalid month or year"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/filter_by_month [get]
func (h *ExpenseHandler) FilterByMonth(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid month"))
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid year"))
		return
	}

	expenses, err := h.expenseService.FilterByMonth(userID, month, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondExpenseList(c, expenses, gin.H{"month": month, "year": year})
}

// FilterByTags handles filtering expenses by tag IDs.
// @Summary     Filter expenses by tags
// @Description Get the authenticated user's expenses carrying any of the given tag IDs
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       tag_ids query string true  "Comma-separated tag IDs"
// @Param       fields  query string false "Comma-separated list of fields to return"
// @Success     200 {array} ExpenseResponse "Matching expenses"
// @Failure     400 {object} ErrorResponse "Invalid tag IDs"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/filter_by_tags [get]
func (h *ExpenseHandler) FilterByTags(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tagIDs, err := parseUintList(c.Query("tag_ids"), "tag_ids")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenses, err := h.expenseService.FilterByTags(userID, tagIDs)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondExpenseList(c, expenses, gin.H{"tag_ids": tagIDs})
}

// FilterExpenses handles the combined date-range, tag, and account filter.
// @Summary     Filter expenses by date range and tags
// @Description Get the authenticated user's expenses matching a date range, tag IDs, a bank account, or any combination. At least one filter is required; date bounds must be given together.
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       start_date      query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param       end_date        query string false "End date (YYYY-MM-DD, inclusive)"
// @Param       tag_ids         query string false "Comma-separated tag IDs"
// @Param       bank_account_id query int    false "Bank account ID"
// @Param       fields          query string false "Comma-separated list of fields to return"
// @Success     200 {array} ExpenseResponse "Matching expenses"
// @Failure     400 {object} ErrorResponse "Invalid or missing filters"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/filter_by_date_range_and_tags [get]
func (h *ExpenseHandler) FilterExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var filter services.ExpenseFilter
	params := gin.H{}

	if raw := c.Query("start_date"); raw != "" {
		start, parseErr := parseDate(raw, "start_date")
		if parseErr != nil {
			respondWithError(c, parseErr)
			return
		}
		filter.StartDate = &start
		params["start_date"] = raw
	}
	if raw := c.Query("end_date"); raw != "" {
		end, parseErr := parseDate(raw, "end_date")
		if parseErr != nil {
			respondWithError(c, parseErr)
			return
		}
		filter.EndDate = &end
		params["end_date"] = raw
	}

	tagIDs, err := parseUintList(c.Query("tag_ids"), "tag_ids")
	if err != nil {
		respondWithError(c, err)
		return
	}
	if len(tagIDs) > 0 {
		filter.TagIDs = tagIDs
		params["tag_ids"] = tagIDs
	}

	if raw := c.Query("bank_account_id"); raw != "" {
		id, parseErr := strconv.ParseUint(raw, 10, 32)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid bank_account_id"))
			return
		}
		accountID := uint(id)
		filter.BankAccountID = &accountID
		params["bank_account_id"] = accountID
	}

	expenses, err := h.expenseService.FilterExpenses(userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondExpenseList(c, expenses, params)
}
