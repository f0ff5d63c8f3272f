package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "paisa/internal/errors"
	"paisa/internal/logger"
	"paisa/internal/models"
	"paisa/internal/pagination"
)

// expenseService coordinates expense mutations: each create/update/delete
// persists the expense, its tags and line items, and the bank-account balance
// adjustment as one atomic unit.
type expenseService struct {
	db                 *gorm.DB
	bankAccountService BankAccountServicer
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB, bankAccountService BankAccountServicer) ExpenseServicer {
	return &expenseService{
		db:                 db,
		bankAccountService: bankAccountService,
	}
}

func validTransactionType(t models.TransactionType) bool {
	switch t {
	case models.TransactionTypeDebit, models.TransactionTypeCredit, models.TransactionTypeNone:
		return true
	}
	return false
}

// validateCreateInput checks an expense payload without touching the database.
func validateCreateInput(input *ExpenseCreateInput) error {
	if input.BankAccountID == 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "bank account is required")
	}
	if !input.Amount.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if !validTransactionType(input.TransactionType) {
		return apperrors.ErrInvalidTransactionType
	}
	for _, li := range input.Items {
		if !li.Amount.IsPositive() {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "line item amount must be greater than zero")
		}
	}
	return nil
}

// defaultDates fills Date and TransactionDateTime from each other, falling
// back to the current time when neither is given.
func defaultDates(input *ExpenseCreateInput) {
	if input.TransactionDateTime.IsZero() {
		if !input.Date.IsZero() {
			input.TransactionDateTime = input.Date
		} else {
			input.TransactionDateTime = time.Now()
		}
	}
	if input.Date.IsZero() {
		y, m, d := input.TransactionDateTime.Date()
		input.Date = time.Date(y, m, d, 0, 0, 0, 0, input.TransactionDateTime.Location())
	}
	if input.Currency == "" {
		input.Currency = "INR"
	}
}

// CreateExpense validates the payload, resolves tags and line items, persists
// the expense, and applies its effect to the bank account balance, all inside
// one transaction.
func (s *expenseService) CreateExpense(userID uint, input ExpenseCreateInput) (*models.Expense, error) {
	if err := validateCreateInput(&input); err != nil {
		return nil, err
	}
	defaultDates(&input)

	account, err := s.bankAccountService.GetBankAccountByID(userID, input.BankAccountID)
	if err != nil {
		return nil, err
	}

	var result *models.Expense
	err = s.db.Transaction(func(tx *gorm.DB) error {
		expense, txErr := s.createExpenseTx(tx, userID, &input)
		if txErr != nil {
			return txErr
		}
		if txErr := applyBalance(tx, account, expense.Amount, expense.TransactionType); txErr != nil {
			return txErr
		}
		result = expense
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetExpenseByID(userID, result.ID)
}

// createExpenseTx persists one expense with its tags and line items. It does
// not touch the account balance; callers decide whether to reconcile.
func (s *expenseService) createExpenseTx(tx *gorm.DB, userID uint, input *ExpenseCreateInput) (*models.Expense, error) {
	expense := &models.Expense{
		UserID:              userID,
		BankAccountID:       input.BankAccountID,
		Amount:              input.Amount,
		Date:                input.Date,
		Time:                input.Time,
		TransactionDateTime: input.TransactionDateTime,
		TransactionInfo:     input.TransactionInfo,
		Notes:               input.Notes,
		Currency:            input.Currency,
		TransactionType:     input.TransactionType,
	}

	if err := tx.Omit(clause.Associations).Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if len(input.Tags) > 0 {
		tags, err := resolveTags(tx, userID, input.Tags)
		if err != nil {
			return nil, err
		}
		if len(tags) > 0 {
			if err := tx.Model(expense).Association("Tags").Append(&tags); err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
	}

	if len(input.Items) > 0 {
		if err := s.createLineItemsTx(tx, userID, expense.ID, input.Items); err != nil {
			return nil, err
		}
	}

	return expense, nil
}

// createLineItemsTx resolves item names and inserts one line item per input pair.
func (s *expenseService) createLineItemsTx(tx *gorm.DB, userID, expenseID uint, inputs []LineItemInput) error {
	names := make([]string, 0, len(inputs))
	for _, li := range inputs {
		names = append(names, li.Name)
	}
	items, err := resolveItems(tx, userID, names)
	if err != nil {
		return err
	}

	byName := make(map[string]models.Item, len(items))
	for _, it := range items {
		byName[it.Name] = it
	}

	var lineItems []models.ExpenseLineItem
	for _, li := range inputs {
		norm := normalizeNames([]string{li.Name}, true)
		if len(norm) == 0 {
			continue
		}
		item, ok := byName[norm[0]]
		if !ok {
			return apperrors.WithMessage(apperrors.ErrInternalServer, "failed to resolve item "+norm[0])
		}
		lineItems = append(lineItems, models.ExpenseLineItem{
			ExpenseID: expenseID,
			ItemID:    item.ID,
			Amount:    li.Amount,
		})
	}

	if len(lineItems) > 0 {
		if err := tx.Create(&lineItems).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return nil
}

// GetUserExpenses retrieves a paginated list of the user's expenses, newest first.
func (s *expenseService) GetUserExpenses(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	base := s.db.Model(&models.Expense{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Scopes(pagination.Paginate(page)).
		Preload("Tags").
		Preload("LineItems").
		Preload("LineItems.Item").
		Order("transaction_date_time DESC").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetExpenseByID retrieves an expense by ID for a specific user with its tags
// and line items loaded.
func (s *expenseService) GetExpenseByID(userID, expenseID uint) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Where("id = ? AND user_id = ?", expenseID, userID).
		Preload("Tags").
		Preload("LineItems").
		Preload("LineItems.Item").
		First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// UpdateExpense applies a partial update to an expense and reconciles the
// affected bank-account balances using the difference between the old and new
// state.
func (s *expenseService) UpdateExpense(userID, expenseID uint, fields ExpenseUpdateFields) (*models.Expense, error) {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return nil, err
	}

	// Snapshot the balance-relevant state before any field changes.
	old := effectOf(expense)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if txErr := s.applyExpenseFieldsTx(tx, userID, expense, fields); txErr != nil {
			return txErr
		}

		newAccount, txErr := fetchAccountTx(tx, userID, expense.BankAccountID)
		if txErr != nil {
			return txErr
		}
		var oldAccount *models.BankAccount
		if old.bankAccountID != expense.BankAccountID {
			if oldAccount, txErr = fetchAccountTx(tx, userID, old.bankAccountID); txErr != nil {
				return txErr
			}
		}
		return reconcileUpdate(tx, old, oldAccount, expense, newAccount)
	})
	if err != nil {
		return nil, err
	}

	return s.GetExpenseByID(userID, expenseID)
}

// applyExpenseFieldsTx validates and persists the supplied field changes on
// one expense, including full tag-set and line-item replacement when those
// fields are present. Balance reconciliation is the caller's concern.
func (s *expenseService) applyExpenseFieldsTx(tx *gorm.DB, userID uint, expense *models.Expense, fields ExpenseUpdateFields) error {
	updates := make(map[string]interface{})

	if fields.BankAccountID != nil {
		if _, err := fetchAccountTx(tx, userID, *fields.BankAccountID); err != nil {
			return err
		}
		expense.BankAccountID = *fields.BankAccountID
		updates["bank_account_id"] = *fields.BankAccountID
	}
	if fields.Amount != nil {
		if !fields.Amount.IsPositive() {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
		}
		expense.Amount = *fields.Amount
		updates["amount"] = *fields.Amount
	}
	if fields.TransactionType != nil {
		if !validTransactionType(*fields.TransactionType) {
			return apperrors.ErrInvalidTransactionType
		}
		expense.TransactionType = *fields.TransactionType
		updates["transaction_type"] = *fields.TransactionType
	}
	if fields.Date != nil {
		expense.Date = *fields.Date
		updates["date"] = *fields.Date
	}
	if fields.Time != nil {
		expense.Time = *fields.Time
		updates["time"] = *fields.Time
	}
	if fields.TransactionDateTime != nil {
		expense.TransactionDateTime = *fields.TransactionDateTime
		updates["transaction_date_time"] = *fields.TransactionDateTime
	}
	if fields.TransactionInfo != nil {
		expense.TransactionInfo = *fields.TransactionInfo
		updates["transaction_info"] = *fields.TransactionInfo
	}
	if fields.Notes != nil {
		expense.Notes = *fields.Notes
		updates["notes"] = *fields.Notes
	}
	if fields.Currency != nil {
		expense.Currency = *fields.Currency
		updates["currency"] = *fields.Currency
	}

	if len(updates) > 0 {
		if err := tx.Model(expense).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	// A nil pointer means "leave untouched"; an empty slice clears the set.
	if fields.Tags != nil {
		tags, err := resolveTags(tx, userID, *fields.Tags)
		if err != nil {
			return err
		}
		if err := tx.Model(expense).Association("Tags").Replace(&tags); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	if fields.Items != nil {
		for _, li := range *fields.Items {
			if !li.Amount.IsPositive() {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "line item amount must be greater than zero")
			}
		}
		if err := tx.Where("expense_id = ?", expense.ID).Delete(&models.ExpenseLineItem{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.createLineItemsTx(tx, userID, expense.ID, *fields.Items); err != nil {
			return err
		}
	}

	return nil
}

// DeleteExpense reverses the expense's balance effect, then removes the
// expense along with its line items and tag links.
func (s *expenseService) DeleteExpense(userID, expenseID uint) error {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		account, txErr := fetchAccountTx(tx, userID, expense.BankAccountID)
		if txErr != nil {
			return txErr
		}
		if txErr := reverseBalance(tx, account, expense.Amount, expense.TransactionType); txErr != nil {
			return txErr
		}

		if txErr := tx.Where("expense_id = ?", expense.ID).Delete(&models.ExpenseLineItem{}).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		if txErr := tx.Model(expense).Association("Tags").Clear(); txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		if txErr := tx.Delete(expense).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		return nil
	})
}

// BulkCreateExpenses validates the whole batch before persisting anything,
// then creates every expense sequentially within one transaction, resolving
// tags per entry.
//
// Known gap: this path does not adjust bank-account balances, unlike the
// single-create path.
func (s *expenseService) BulkCreateExpenses(userID uint, inputs []ExpenseCreateInput) ([]models.Expense, error) {
	if len(inputs) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "expected a non-empty list of expenses")
	}

	accountIDs := make(map[uint]struct{})
	for i := range inputs {
		if err := validateCreateInput(&inputs[i]); err != nil {
			return nil, err
		}
		defaultDates(&inputs[i])
		accountIDs[inputs[i].BankAccountID] = struct{}{}
	}
	for id := range accountIDs {
		if _, err := s.bankAccountService.GetBankAccountByID(userID, id); err != nil {
			return nil, err
		}
	}

	logger.Get().Warnw("bulk expense create skips balance reconciliation",
		"user_id", userID,
		"count", len(inputs),
	)

	var created []models.Expense
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i := range inputs {
			expense, txErr := s.createExpenseTx(tx, userID, &inputs[i])
			if txErr != nil {
				return txErr
			}
			created = append(created, *expense)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	results := make([]models.Expense, 0, len(created))
	for _, e := range created {
		full, err := s.GetExpenseByID(userID, e.ID)
		if err != nil {
			return nil, err
		}
		results = append(results, *full)
	}
	return results, nil
}

// BulkUpdateExpenses resolves every target ID against the caller's own
// expenses first; any missing or foreign ID aborts the whole batch with a
// not-found error and nothing is persisted. Each located record goes through
// the shared per-record update path. Like bulk create, this path does not
// reconcile balances.
func (s *expenseService) BulkUpdateExpenses(userID uint, payloads []BulkUpdatePayload) ([]models.Expense, error) {
	if len(payloads) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "expected a non-empty list of expenses")
	}

	ids := make([]uint, 0, len(payloads))
	for _, p := range payloads {
		if p.ID == 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "each entry must include an id")
		}
		ids = append(ids, p.ID)
	}

	logger.Get().Warnw("bulk expense update skips balance reconciliation",
		"user_id", userID,
		"count", len(payloads),
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var expenses []models.Expense
		if txErr := tx.Where("user_id = ? AND id IN ?", userID, ids).Find(&expenses).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}

		byID := make(map[uint]*models.Expense, len(expenses))
		for i := range expenses {
			byID[expenses[i].ID] = &expenses[i]
		}

		for _, p := range payloads {
			expense, ok := byID[p.ID]
			if !ok {
				return apperrors.WithMessage(apperrors.ErrExpenseNotFound,
					fmt.Sprintf("Expense id %d not found or not yours", p.ID))
			}
			if txErr := s.applyExpenseFieldsTx(tx, userID, expense, p.Fields); txErr != nil {
				return txErr
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	results := make([]models.Expense, 0, len(ids))
	for _, id := range ids {
		full, err := s.GetExpenseByID(userID, id)
		if err != nil {
			return nil, err
		}
		results = append(results, *full)
	}
	return results, nil
}

// fetchAccountTx loads a bank account scoped to the user inside a transaction.
func fetchAccountTx(tx *gorm.DB, userID, accountID uint) (*models.BankAccount, error) {
	var account models.BankAccount
	if err := tx.Where("id = ? AND user_id = ?", accountID, userID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBankAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

// FilterByMonth returns the caller's expenses whose date falls in the given month.
func (s *expenseService) FilterByMonth(userID uint, month, year int) ([]models.Expense, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}
	if year <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "year is required")
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var expenses []models.Expense
	if err := s.db.Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Preload("Tags").
		Order("transaction_date_time DESC").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// FilterByTags returns the caller's expenses carrying any of the given tag
// IDs. An expense matching several tags is returned once.
func (s *expenseService) FilterByTags(userID uint, tagIDs []uint) ([]models.Expense, error) {
	if len(tagIDs) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "at least one tag id is required")
	}

	var expenses []models.Expense
	if err := s.db.Distinct("expenses.*").
		Joins("JOIN expense_tags ON expense_tags.expense_id = expenses.id").
		Where("expenses.user_id = ? AND expense_tags.tag_id IN ?", userID, tagIDs).
		Preload("Tags").
		Order("transaction_date_time DESC").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// FilterExpenses combines the optional date-range, tag, and bank-account
// filters. At least one filter must be present; date bounds must be given
// together and in order.
func (s *expenseService) FilterExpenses(userID uint, filter ExpenseFilter) ([]models.Expense, error) {
	hasRange := filter.StartDate != nil || filter.EndDate != nil
	if hasRange && (filter.StartDate == nil || filter.EndDate == nil) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "start_date and end_date must be given together")
	}
	if hasRange && filter.StartDate.After(*filter.EndDate) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "start_date must not be after end_date")
	}
	if !hasRange && len(filter.TagIDs) == 0 && filter.BankAccountID == nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "at least one filter is required")
	}

	q := s.db.Model(&models.Expense{}).Where("expenses.user_id = ?", userID)
	if hasRange {
		q = q.Where("date >= ? AND date <= ?", *filter.StartDate, *filter.EndDate)
	}
	if filter.BankAccountID != nil {
		q = q.Where("bank_account_id = ?", *filter.BankAccountID)
	}
	if len(filter.TagIDs) > 0 {
		q = q.Distinct("expenses.*").
			Joins("JOIN expense_tags ON expense_tags.expense_id = expenses.id").
			Where("expense_tags.tag_id IN ?", filter.TagIDs)
	}

	var expenses []models.Expense
	if err := q.Preload("Tags").
		Order("transaction_date_time DESC").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}
