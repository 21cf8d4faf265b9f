package domain

import "errors"

var (
	// Account errors
	ErrStoreNotFound          = errors.New("store not found")
	ErrSavingsAccountNotFound = errors.New("savings account not found")
	ErrAccountInactive        = errors.New("account is not active")
	ErrInvalidAccountKind     = errors.New("account kind must be store or savings")
	ErrInvalidStatus          = errors.New("invalid account status")
	ErrMissingAccountID       = errors.New("account id is required")
	ErrMissingStoreCode       = errors.New("store code is required")
	ErrMissingBranch          = errors.New("branch is required")
	ErrMissingAddress         = errors.New("address is required")
	ErrMissingAccountCode     = errors.New("account code is required")
	ErrMissingAccountName     = errors.New("account name is required")
	ErrMissingAccountType     = errors.New("account type is required")

	// Transaction errors
	ErrInvalidEmail           = errors.New("invalid email format")
	ErrInvalidTransactionKind = errors.New("transaction kind must be income, expense or transfer")
	ErrMissingCategory        = errors.New("category is required")
	ErrMissingPaymentMethod   = errors.New("payment method is required")
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrTransactionNotFound    = errors.New("transaction not found")

	// Transfer errors
	ErrSameAccount      = errors.New("cannot transfer to the same account")
	ErrTransferNotFound = errors.New("transfer not found")

	// Balance / history errors
	ErrBalanceNotFound = errors.New("balance entry not found")
	ErrHistoryNotFound = errors.New("history record not found")

	// Authentication errors
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
)
