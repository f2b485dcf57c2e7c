// Package portfolio replays investment trades chronologically to derive
// holdings on an average-cost basis.
package portfolio

import (
	"sort"

	"github.com/parfin-app/parfin/pkg/currency"
	"github.com/parfin-app/parfin/pkg/domain"
	"github.com/shopspring/decimal"
)

// Epsilon below which a holding counts as closed. Quantities are decimals
// but historical records were floats, so tiny residues do occur.
var Epsilon = decimal.RequireFromString("0.0001")

// Holding is an open position in the display currency. MarketPrice is mocked
// as the average cost (no live pricing), so unrealized P/L is always zero; a
// known simplification, not a bug.
type Holding struct {
	Symbol      string          `json:"symbol"`
	AssetType   string          `json:"asset_type"`
	Quantity    decimal.Decimal `json:"quantity"`
	AvgPrice    decimal.Decimal `json:"avg_price"`
	MarketPrice decimal.Decimal `json:"market_price"`
	TotalValue  decimal.Decimal `json:"total_value"`
	PLPercent   decimal.Decimal `json:"pl_percent"`
}

// Summary aggregates the portfolio.
type Summary struct {
	TotalInvested     decimal.Decimal `json:"total_invested"`
	TotalCurrentValue decimal.Decimal `json:"total_current_value"`
	TotalPLPercent    decimal.Decimal `json:"total_pl_percent"`
	NetCashFlow       decimal.Decimal `json:"net_cash_flow"`
}

// Portfolio is the result of a cost-basis replay. Oversold lists symbols
// where a sell exceeded the held quantity; the replay does not reject such
// trades, it surfaces them so callers can warn.
type Portfolio struct {
	Holdings []Holding `json:"holdings"`
	Summary  Summary   `json:"summary"`
	Oversold []string  `json:"oversold,omitempty"`
}

type positionKey struct {
	assetType string
	symbol    string
}

type position struct {
	quantity  decimal.Decimal
	totalCost decimal.Decimal
}

// Calculate replays trades in chronological order and returns the resulting
// portfolio in the display currency. Trade prices are recorded in VND. Ties
// on date are broken by id so the replay is deterministic regardless of
// input order.
func Calculate(trades []domain.Trade, rate decimal.Decimal, display currency.Code) Portfolio {
	sorted := append([]domain.Trade{}, trades...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].ID < sorted[j].ID
	})

	rate = currency.SanitizeRate(rate)
	positions := make(map[positionKey]*position)
	order := make([]positionKey, 0, len(sorted))
	netCashFlow := decimal.Zero
	oversold := make(map[string]bool)

	for _, t := range sorted {
		price := currency.Convert(t.Price, currency.VND, display, rate)
		fee := currency.Convert(t.Fee, currency.VND, display, rate)
		tax := currency.Convert(t.Tax, currency.VND, display, rate)

		key := positionKey{assetType: assetType(t), symbol: t.Symbol}
		pos, ok := positions[key]
		if !ok {
			pos = &position{}
			positions[key] = pos
			order = append(order, key)
		}

		switch t.Type {
		case domain.TradeBuy:
			cost := t.Quantity.Mul(price).Add(fee)
			pos.quantity = pos.quantity.Add(t.Quantity)
			pos.totalCost = pos.totalCost.Add(cost)
			netCashFlow = netCashFlow.Sub(cost)

		case domain.TradeSell:
			if t.Quantity.GreaterThan(pos.quantity) {
				oversold[t.Symbol] = true
			}
			if pos.quantity.IsPositive() {
				avgCost := pos.totalCost.Div(pos.quantity)
				pos.totalCost = pos.totalCost.Sub(avgCost.Mul(t.Quantity))
			}
			// Cost basis is untouched when nothing is held; the cash still
			// lands, matching the historical records.
			pos.quantity = pos.quantity.Sub(t.Quantity)
			netCashFlow = netCashFlow.Add(t.Quantity.Mul(price).Sub(fee).Sub(tax))

		case domain.TradeDividend:
			netCashFlow = netCashFlow.Add(t.Quantity.Mul(price).Sub(tax))
		}
	}

	p := Portfolio{Summary: Summary{NetCashFlow: netCashFlow}}
	totalInvested := decimal.Zero
	totalValue := decimal.Zero

	for _, key := range order {
		pos := positions[key]
		if !pos.quantity.GreaterThan(Epsilon) {
			continue
		}
		avgPrice := pos.totalCost.Div(pos.quantity)
		value := avgPrice.Mul(pos.quantity)
		totalInvested = totalInvested.Add(pos.totalCost)
		totalValue = totalValue.Add(value)

		p.Holdings = append(p.Holdings, Holding{
			Symbol:      key.symbol,
			AssetType:   key.assetType,
			Quantity:    pos.quantity,
			AvgPrice:    avgPrice,
			MarketPrice: avgPrice,
			TotalValue:  value,
			PLPercent:   decimal.Zero,
		})
	}

	p.Summary.TotalInvested = totalInvested
	p.Summary.TotalCurrentValue = totalValue
	p.Summary.TotalPLPercent = decimal.Zero
	if totalInvested.IsPositive() {
		p.Summary.TotalPLPercent = totalValue.Sub(totalInvested).
			Div(totalInvested).Mul(decimal.NewFromInt(100))
	}

	for symbol := range oversold {
		p.Oversold = append(p.Oversold, symbol)
	}
	sort.Strings(p.Oversold)

	return p
}

func assetType(t domain.Trade) string {
	if t.AssetType == "" {
		return domain.DefaultAssetType
	}
	return t.AssetType
}
