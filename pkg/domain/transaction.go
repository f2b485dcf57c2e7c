// Package domain holds the entities and closed enumerations the ledger is
// computed over.
package domain

import (
	"time"

	"github.com/parfin-app/parfin/pkg/currency"
	"github.com/shopspring/decimal"
)

// TransactionType discriminates the three kinds of cash movement.
type TransactionType string

const (
	// TypeIncome adds money to a pool.
	TypeIncome TransactionType = "income"
	// TypeExpense removes money from a pool.
	TypeExpense TransactionType = "expense"
	// TypeAllocation moves money between pools and/or payment methods with
	// no net income or expense effect.
	TypeAllocation TransactionType = "allocation"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	switch t {
	case TypeIncome, TypeExpense, TypeAllocation:
		return true
	}
	return false
}

// PaymentMethod is the sub-account each pool is split into.
type PaymentMethod string

const (
	MethodCash PaymentMethod = "cash"
	MethodBank PaymentMethod = "bank"
)

// NormalizeMethod maps anything that is not explicitly "bank" to cash.
// Historical records carry empty or free-form sources; a bad value must not
// abort a replay.
func NormalizeMethod(m PaymentMethod) PaymentMethod {
	if m == MethodBank {
		return MethodBank
	}
	return MethodCash
}

// Transaction is a single recorded cash movement.
//
// For allocations, Category names the source pool and DestinationCategory the
// target pool. For expenses, Fund names the fund the money is drawn from; when
// Fund is the general pool and Category is itself a fund name, the row is the
// legacy shorthand for an allocation into that fund.
type Transaction struct {
	ID                  int64
	UserID              int64
	Type                TransactionType
	Category            Category
	DestinationCategory Category
	Amount              decimal.Decimal
	Currency            currency.Code
	Source              PaymentMethod
	Destination         PaymentMethod
	Fund                FundBucket
	Date                time.Time
	Description         string
}

// FixedItem is a template for a recurring transaction; it shares the
// transaction shape minus the date and is materialized into dated rows by the
// generator.
type FixedItem struct {
	ID                  int64
	UserID              int64
	Type                TransactionType
	Category            Category
	DestinationCategory Category
	Amount              decimal.Decimal
	Currency            currency.Code
	Source              PaymentMethod
	Destination         PaymentMethod
	Fund                FundBucket
	Description         string
}

// Materialize turns the template into a real transaction effective on date.
func (f FixedItem) Materialize(date time.Time) Transaction {
	return Transaction{
		UserID:              f.UserID,
		Type:                f.Type,
		Category:            f.Category,
		DestinationCategory: f.DestinationCategory,
		Amount:              f.Amount,
		Currency:            f.Currency,
		Source:              f.Source,
		Destination:         f.Destination,
		Fund:                f.Fund,
		Date:                date,
		Description:         f.Description,
	}
}
