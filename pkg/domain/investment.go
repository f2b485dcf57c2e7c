package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TradeType discriminates investment trade events.
type TradeType string

const (
	TradeBuy      TradeType = "buy"
	TradeSell     TradeType = "sell"
	TradeDividend TradeType = "dividend"
)

// IsValid reports whether t is a known trade type.
func (t TradeType) IsValid() bool {
	switch t {
	case TradeBuy, TradeSell, TradeDividend:
		return true
	}
	return false
}

// DefaultAssetType is assumed when a trade carries no asset type.
const DefaultAssetType = "stock"

// Trade is a single buy/sell/dividend event for a tradable symbol.
//
// Quantity and Price are per-unit for buy/sell. For dividends the convention
// is Quantity = 1 and Price = total amount received. Prices are recorded in
// VND.
type Trade struct {
	ID        int64
	UserID    int64
	Date      time.Time
	Symbol    string
	AssetType string
	Type      TradeType
	Quantity  decimal.Decimal
	Price     decimal.Decimal
	Fee       decimal.Decimal
	Tax       decimal.Decimal
}
