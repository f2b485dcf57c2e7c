package portfolio

import (
	"testing"
	"time"

	"github.com/parfin-app/parfin/pkg/currency"
	"github.com/parfin-app/parfin/pkg/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(d int) time.Time { return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC) }

func calc(trades ...domain.Trade) Portfolio {
	return Calculate(trades, decimal.NewFromInt(25000), currency.VND)
}

func TestCalculateBuyThenPartialSell(t *testing.T) {
	p := calc(
		domain.Trade{ID: 1, Type: domain.TradeBuy, Symbol: "ABC", Quantity: dec("10"), Price: dec("100"), Fee: dec("5"), Date: day(1)},
		domain.Trade{ID: 2, Type: domain.TradeSell, Symbol: "ABC", Quantity: dec("4"), Price: dec("120"), Fee: dec("2"), Tax: dec("1"), Date: day(10)},
	)

	require.Len(t, p.Holdings, 1)
	h := p.Holdings[0]
	assert.Equal(t, "ABC", h.Symbol)
	assert.Equal(t, "stock", h.AssetType)
	assert.True(t, h.Quantity.Equal(dec("6")), "qty %s", h.Quantity)
	// totalCost = 1005 - (100.5 * 4) = 603
	assert.True(t, h.AvgPrice.Mul(h.Quantity).Equal(dec("603")), "cost %s", h.AvgPrice.Mul(h.Quantity))
	assert.True(t, h.AvgPrice.Equal(dec("100.5")), "avg %s", h.AvgPrice)
	// -1005 + (480 - 2 - 1)
	assert.True(t, p.Summary.NetCashFlow.Equal(dec("-528")), "flow %s", p.Summary.NetCashFlow)
	assert.Empty(t, p.Oversold)
}

func TestCalculateClosedPositionExcluded(t *testing.T) {
	p := calc(
		domain.Trade{ID: 1, Type: domain.TradeBuy, Symbol: "XYZ", Quantity: dec("5"), Price: dec("10"), Date: day(1)},
		domain.Trade{ID: 2, Type: domain.TradeSell, Symbol: "XYZ", Quantity: dec("5"), Price: dec("12"), Date: day(2)},
	)

	assert.Empty(t, p.Holdings)
	assert.True(t, p.Summary.TotalInvested.IsZero())
	assert.True(t, p.Summary.TotalCurrentValue.IsZero())
	// Realized proceeds still show in the cash flow: -50 + 60.
	assert.True(t, p.Summary.NetCashFlow.Equal(dec("10")))
}

func TestCalculateResidualBelowEpsilonIsClosed(t *testing.T) {
	p := calc(
		domain.Trade{ID: 1, Type: domain.TradeBuy, Symbol: "DUST", Quantity: dec("1.00005"), Price: dec("10"), Date: day(1)},
		domain.Trade{ID: 2, Type: domain.TradeSell, Symbol: "DUST", Quantity: dec("1"), Price: dec("10"), Date: day(2)},
	)
	assert.Empty(t, p.Holdings)
}

func TestCalculateDividend(t *testing.T) {
	p := calc(
		domain.Trade{ID: 1, Type: domain.TradeBuy, Symbol: "DIV", Quantity: dec("10"), Price: dec("100"), Date: day(1)},
		domain.Trade{ID: 2, Type: domain.TradeDividend, Symbol: "DIV", Quantity: dec("1"), Price: dec("300"), Tax: dec("30"), Date: day(15)},
	)

	require.Len(t, p.Holdings, 1)
	// Dividends change neither quantity nor cost basis.
	assert.True(t, p.Holdings[0].Quantity.Equal(dec("10")))
	assert.True(t, p.Holdings[0].AvgPrice.Equal(dec("100")))
	assert.True(t, p.Summary.NetCashFlow.Equal(dec("-730")))
}

func TestCalculateOversellFlaggedNotFatal(t *testing.T) {
	p := calc(
		domain.Trade{ID: 1, Type: domain.TradeSell, Symbol: "GHOST", Quantity: dec("3"), Price: dec("50"), Fee: dec("1"), Date: day(1)},
	)

	assert.Equal(t, []string{"GHOST"}, p.Oversold)
	assert.Empty(t, p.Holdings)
	// Cash impact still applies: 150 - 1.
	assert.True(t, p.Summary.NetCashFlow.Equal(dec("149")))
}

func TestCalculateSortsByDateThenID(t *testing.T) {
	// The sell is listed first but dated after the buy; and two same-day
	// trades must replay in id order.
	p := calc(
		domain.Trade{ID: 9, Type: domain.TradeSell, Symbol: "ORD", Quantity: dec("5"), Price: dec("20"), Date: day(2)},
		domain.Trade{ID: 1, Type: domain.TradeBuy, Symbol: "ORD", Quantity: dec("5"), Price: dec("10"), Date: day(1)},
		domain.Trade{ID: 2, Type: domain.TradeBuy, Symbol: "ORD", Quantity: dec("5"), Price: dec("14"), Date: day(2)},
	)

	require.Len(t, p.Holdings, 1)
	h := p.Holdings[0]
	assert.True(t, h.Quantity.Equal(dec("5")), "qty %s", h.Quantity)
	// Buys 50 + 70 = 120 over 10 units, sell removes 5 at avg 12.
	assert.True(t, h.AvgPrice.Equal(dec("12")), "avg %s", h.AvgPrice)
	assert.Empty(t, p.Oversold)
}

func TestCalculateSeparatesAssetTypes(t *testing.T) {
	p := calc(
		domain.Trade{ID: 1, Type: domain.TradeBuy, Symbol: "GLD", AssetType: "stock", Quantity: dec("1"), Price: dec("100"), Date: day(1)},
		domain.Trade{ID: 2, Type: domain.TradeBuy, Symbol: "GLD", AssetType: "fund", Quantity: dec("2"), Price: dec("50"), Date: day(1)},
	)

	require.Len(t, p.Holdings, 2)
	assert.Equal(t, "stock", p.Holdings[0].AssetType)
	assert.Equal(t, "fund", p.Holdings[1].AssetType)
}

func TestCalculateConvertsToDisplayCurrency(t *testing.T) {
	p := Calculate([]domain.Trade{
		{ID: 1, Type: domain.TradeBuy, Symbol: "USDV", Quantity: dec("2"), Price: dec("250000"), Date: day(1)},
	}, decimal.NewFromInt(25000), currency.USD)

	require.Len(t, p.Holdings, 1)
	assert.True(t, p.Holdings[0].AvgPrice.Equal(dec("10")))
	assert.True(t, p.Summary.NetCashFlow.Equal(dec("-20")))
}

func TestCalculateMockMarketPriceMeansZeroPL(t *testing.T) {
	p := calc(
		domain.Trade{ID: 1, Type: domain.TradeBuy, Symbol: "ABC", Quantity: dec("3"), Price: dec("7"), Date: day(1)},
	)

	require.Len(t, p.Holdings, 1)
	assert.True(t, p.Holdings[0].MarketPrice.Equal(p.Holdings[0].AvgPrice))
	assert.True(t, p.Holdings[0].PLPercent.IsZero())
	assert.True(t, p.Summary.TotalPLPercent.IsZero())
	assert.True(t, p.Summary.TotalInvested.Equal(p.Summary.TotalCurrentValue))
}
