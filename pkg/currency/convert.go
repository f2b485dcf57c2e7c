package currency

import "github.com/shopspring/decimal"

// SanitizeRate returns rate if it is a positive number, otherwise DefaultRate.
// A missing or garbage rate must never break a conversion.
func SanitizeRate(rate decimal.Decimal) decimal.Decimal {
	if rate.IsPositive() {
		return rate
	}
	return DefaultRate
}

// Convert converts amount from one currency to another using the USD→VND
// rate. Same-currency conversion is an exact identity. Pairs outside the
// supported VND/USD set are returned unchanged; that permissiveness is
// deliberate, a stray code must not zero out a balance.
func Convert(amount decimal.Decimal, from, to Code, rate decimal.Decimal) decimal.Decimal {
	from = Normalize(from)
	if from == to {
		return amount
	}

	rate = SanitizeRate(rate)
	switch {
	case from == VND && to == USD:
		return amount.Div(rate)
	case from == USD && to == VND:
		return amount.Mul(rate)
	}
	return amount
}
