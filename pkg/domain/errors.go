package domain

import "errors"

var (
	// ErrTransactionNotFound indicates the transaction id does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrFixedItemNotFound indicates the fixed item id does not exist.
	ErrFixedItemNotFound = errors.New("fixed item not found")

	// ErrTradeNotFound indicates the investment trade id does not exist.
	ErrTradeNotFound = errors.New("investment trade not found")

	// ErrUserNotFound indicates the user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists indicates a username collision on creation.
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAmountMustBePositive indicates a non-positive monetary amount was
	// submitted. Amounts are validated at the boundary, never inside replay.
	ErrAmountMustBePositive = errors.New("amount must be positive")

	// ErrInvalidTransactionType indicates a type outside income/expense/allocation.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTradeType indicates a type outside buy/sell/dividend.
	ErrInvalidTradeType = errors.New("invalid trade type")

	// ErrAllocationNeedsDestination indicates an allocation without a
	// destination category.
	ErrAllocationNeedsDestination = errors.New("allocation requires a destination category")

	// ErrInvalidExchangeRate indicates a non-positive configured rate.
	ErrInvalidExchangeRate = errors.New("exchange rate must be positive")
)
