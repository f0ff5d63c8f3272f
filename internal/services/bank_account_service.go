package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "paisa/internal/errors"
	"paisa/internal/models"
	"paisa/internal/pagination"
)

type bankAccountService struct {
	db *gorm.DB
}

// NewBankAccountService creates a new BankAccountServicer.
func NewBankAccountService(db *gorm.DB) BankAccountServicer {
	return &bankAccountService{db: db}
}

// CreateBankAccount creates a bank account for a user. A nil balance is
// stored as null and treated as zero by the first expense that touches it.
func (s *bankAccountService) CreateBankAccount(userID uint, name, ifscCode, accountNumber string, balance *decimal.Decimal) (*models.BankAccount, error) {
	account := &models.BankAccount{
		UserID:        userID,
		Name:          name,
		IFSCCode:      ifscCode,
		AccountNumber: accountNumber,
	}
	if balance != nil {
		account.Balance = decimal.NewNullDecimal(*balance)
	}

	if err := s.db.Create(account).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return account, nil
}

// GetUserBankAccounts retrieves a paginated list of the user's bank accounts.
func (s *bankAccountService) GetUserBankAccounts(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.BankAccount], error) {
	page.Defaults()

	base := s.db.Model(&models.BankAccount{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var accounts []models.BankAccount
	if err := base.Scopes(pagination.Paginate(page)).
		Order("name ASC").
		Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(accounts, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetBankAccountByID retrieves a bank account by ID for a specific user.
func (s *bankAccountService) GetBankAccountByID(userID, accountID uint) (*models.BankAccount, error) {
	var account models.BankAccount
	if err := s.db.Where("id = ? AND user_id = ?", accountID, userID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBankAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

// UpdateBankAccount applies a partial update to a bank account. Setting the
// balance directly is allowed; it is not derived from expenses.
func (s *bankAccountService) UpdateBankAccount(userID, accountID uint, fields BankAccountUpdateFields) (*models.BankAccount, error) {
	account, err := s.GetBankAccountByID(userID, accountID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fields.Name != nil {
		updates["name"] = *fields.Name
	}
	if fields.Balance != nil {
		updates["balance"] = decimal.NewNullDecimal(*fields.Balance)
	}
	if fields.IFSCCode != nil {
		updates["ifsc_code"] = *fields.IFSCCode
	}
	if fields.AccountNumber != nil {
		updates["account_number"] = *fields.AccountNumber
	}

	if len(updates) > 0 {
		if err := s.db.Model(account).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetBankAccountByID(userID, accountID)
}

// DeleteBankAccount soft-deletes a bank account.
func (s *bankAccountService) DeleteBankAccount(userID, accountID uint) error {
	account, err := s.GetBankAccountByID(userID, accountID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(account).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
