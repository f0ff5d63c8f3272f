package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "paisa/internal/errors"
	"paisa/internal/models"
	"paisa/internal/pagination"
	"paisa/internal/projection"
	"paisa/internal/services"
)

var bankAccountView = projection.View{
	Default: []string{
		"id", "created_at", "updated_at", "user_id", "name", "balance",
		"ifsc_code", "account_number",
	},
}

// BankAccountHandler handles bank-account-related requests.
type BankAccountHandler struct {
	bankAccountService services.BankAccountServicer
	auditService       services.AuditServicer
}

// NewBankAccountHandler creates a new BankAccountHandler.
func NewBankAccountHandler(bankAccountService services.BankAccountServicer, auditService services.AuditServicer) *BankAccountHandler {
	return &BankAccountHandler{bankAccountService: bankAccountService, auditService: auditService}
}

// CreateBankAccountRequest represents the request payload for creating a bank account.
type CreateBankAccountRequest struct {
	Name          string           `json:"name" binding:"required,min=1,max=100"`
	Balance       *decimal.Decimal `json:"balance"`
	IFSCCode      string           `json:"ifsc_code" binding:"omitempty,ifsc"`
	AccountNumber string           `json:"account_number" binding:"max=30"`
}

// UpdateBankAccountRequest represents the request payload for updating a bank account.
type UpdateBankAccountRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Balance       *decimal.Decimal `json:"balance"`
	IFSCCode      *string          `json:"ifsc_code" binding:"omitempty,ifsc"`
	AccountNumber *string          `json:"account_number" binding:"omitempty,max=30"`
}

// BankAccountResponse represents a bank account in the response.
type BankAccountResponse struct {
	ID            uint                `json:"id"`
	UserID        uint                `json:"user_id"`
	Name          string              `json:"name"`
	Balance       decimal.NullDecimal `json:"balance"`
	IFSCCode      string              `json:"ifsc_code,omitempty"`
	AccountNumber string              `json:"account_number,omitempty"`
}

func respondBankAccount(c *gin.Context, status int, account *models.BankAccount) {
	requested := projection.ParseFields(c.Query("fields"))
	if len(requested) == 0 {
		c.JSON(status, gin.H{"bank_account": account})
		return
	}

	projected, err := projection.Project(account, bankAccountView.Select(requested))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(status, gin.H{"bank_account": projected})
}

// CreateBankAccount handles the creation of a new bank account
// @Summary     Create a bank account
// @Description Create a new bank account for the authenticated user
// @Tags        bank-accounts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateBankAccountRequest true "Bank account details"
// @Success     201 {object} BankAccountResponse "Bank account created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bank_accounts [post]
func (h *BankAccountHandler) CreateBankAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account, err := h.bankAccountService.CreateBankAccount(userID, req.Name, req.IFSCCode, req.AccountNumber, req.Balance)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_BANK_ACCOUNT", "bank_account", account.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name})

	respondBankAccount(c, http.StatusCreated, account)
}

// GetUserBankAccounts handles the retrieval of bank accounts for a user
// @Summary     Get user bank accounts
// @Description Get a paginated list of bank accounts for the authenticated user
// @Tags        bank-accounts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.BankAccount] "Paginated bank accounts"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bank_accounts [get]
func (h *BankAccountHandler) GetUserBankAccounts(c *gin.Context) {
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

	result, err := h.bankAccountService.GetUserBankAccounts(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBankAccountByID handles the retrieval of a specific bank account for a user
// @Summary     Get bank account by ID
// @Description Get a specific bank account by ID for the authenticated user, with optional field projection
// @Tags        bank-accounts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id     path  int    true  "Bank account ID"
// @Param       fields query string false "Comma-separated list of fields to return"
// @Success     200 {object} BankAccountResponse "Bank account details"
// @Failure     400 {object} ErrorResponse "Invalid bank account ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bank account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bank_accounts/{id} [get]
func (h *BankAccountHandler) GetBankAccountByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accountID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	account, err := h.bankAccountService.GetBankAccountByID(userID, accountID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondBankAccount(c, http.StatusOK, account)
}

// UpdateBankAccount handles updating a bank account.
// @Summary     Update bank account
// @Description Partially update a bank account for the authenticated user
// @Tags        bank-accounts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                      true "Bank account ID"
// @Param       request body UpdateBankAccountRequest true "Updated bank account details"
// @Success     200 {object} BankAccountResponse "Updated bank account"
// @Failure     400 {object} ErrorResponse "Invalid input or bank account ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bank account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bank_accounts/{id} [put]
func (h *BankAccountHandler) UpdateBankAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accountID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account, err := h.bankAccountService.UpdateBankAccount(userID, accountID, services.BankAccountUpdateFields{
		Name:          req.Name,
		Balance:       req.Balance,
		IFSCCode:      req.IFSCCode,
		AccountNumber: req.AccountNumber,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_BANK_ACCOUNT", "bank_account", accountID, c.ClientIP(), nil)

	respondBankAccount(c, http.StatusOK, account)
}

// DeleteBankAccount handles deleting a bank account.
// @Summary     Delete bank account
// @Description Delete a bank account for the authenticated user
// @Tags        bank-accounts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Bank account ID"
// @Success     204 "Bank account deleted"
// @Failure     400 {object} ErrorResponse "Invalid bank account ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bank account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bank_accounts/{id} [delete]
func (h *BankAccountHandler) DeleteBankAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accountID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.bankAccountService.DeleteBankAccount(userID, accountID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_BANK_ACCOUNT", "bank_account", accountID, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}
