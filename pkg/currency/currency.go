// Package currency defines the closed two-currency universe of the
// application (VND and USD) and the conversion between them.
package currency

import "github.com/shopspring/decimal"

// Code is an ISO-like currency code.
type Code string

const (
	// VND is the Vietnamese dong, the base currency every record defaults to.
	VND Code = "VND"
	// USD is the US dollar.
	USD Code = "USD"
)

// DefaultCurrency is the currency assumed when a record carries none.
const DefaultCurrency = VND

// DefaultRate is the USD→VND exchange rate used when no rate has been
// configured yet. The tool stays usable before initial configuration.
var DefaultRate = decimal.NewFromInt(25000)

// Meta holds display metadata for a currency.
type Meta struct {
	Decimals int
	Symbol   string
	Locale   string
}

var metas = map[Code]Meta{
	VND: {Decimals: 0, Symbol: "₫", Locale: "vi-VN"},
	USD: {Decimals: 2, Symbol: "$", Locale: "en-US"},
}

// Get returns display metadata for code. Unknown codes get USD-style
// defaults with the code itself as symbol.
func Get(code Code) Meta {
	if m, ok := metas[code]; ok {
		return m
	}
	return Meta{Decimals: 2, Symbol: string(code)}
}

// IsSupported reports whether code is one of the two supported currencies.
func IsSupported(code Code) bool {
	_, ok := metas[code]
	return ok
}

// Normalize maps an empty or unknown code to the default currency.
func Normalize(code Code) Code {
	if code == "" {
		return DefaultCurrency
	}
	return code
}
