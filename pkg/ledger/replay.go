package ledger

import (
	"github.com/parfin-app/parfin/pkg/currency"
	"github.com/parfin-app/parfin/pkg/domain"
	"github.com/shopspring/decimal"
)

// Input carries everything a replay needs. Balances are computed over
// Transactions; the period aggregates and chart over PeriodTransactions
// (nil means the full list). Trades contribute their net cash flow to the
// Investment fund's bank balance.
type Input struct {
	Transactions       []domain.Transaction
	PeriodTransactions []domain.Transaction
	Trades             []domain.Trade
	Rate               decimal.Decimal
	Display            currency.Code
}

// Replay folds the input into a balance snapshot.
//
// Malformed records degrade instead of failing: an unknown source becomes
// cash, an unknown category lands in the general pool, and a missing rate
// falls back to the default. A single bad row never aborts the aggregation.
func Replay(in Input) Snapshot {
	var s Snapshot
	rate := currency.SanitizeRate(in.Rate)

	for _, t := range in.Transactions {
		applyBalance(&s, t, rate, in.Display)
	}

	s.Investment.Bank = s.Investment.Bank.Add(tradeCashFlow(in.Trades, rate, in.Display))

	period := in.PeriodTransactions
	if period == nil {
		period = in.Transactions
	}
	for _, t := range period {
		applyPeriod(&s, t, rate, in.Display)
	}

	return s
}

func applyBalance(s *Snapshot, t domain.Transaction, rate decimal.Decimal, display currency.Code) {
	amount := currency.Convert(t.Amount, t.Currency, display, rate)
	source := domain.NormalizeMethod(t.Source)
	bucket := domain.Classify(t.Category)

	switch t.Type {
	case domain.TypeIncome:
		// Fund-category income is earned as fund money and bypasses the
		// general pool.
		s.bucket(bucket).add(source, amount)

	case domain.TypeExpense:
		if t.Fund.IsFund() {
			s.bucket(t.Fund).sub(source, amount)
			return
		}
		s.Total.sub(source, amount)
		if bucket.IsFund() {
			// Legacy shorthand: an expense tagged with a fund name is an
			// allocation into that fund. General shrinks, fund grows.
			s.bucket(bucket).add(source, amount)
		}

	case domain.TypeAllocation:
		s.bucket(bucket).sub(source, amount)
		destination := domain.NormalizeMethod(t.Destination)
		s.bucket(domain.Classify(t.DestinationCategory)).add(destination, amount)
	}
}

func applyPeriod(s *Snapshot, t domain.Transaction, rate decimal.Decimal, display currency.Code) {
	amount := currency.Convert(t.Amount, t.Currency, display, rate)
	source := domain.NormalizeMethod(t.Source)

	switch t.Type {
	case domain.TypeIncome:
		s.PeriodIncome.add(source, amount)

	case domain.TypeExpense:
		// Legacy fund-named expenses are allocations in disguise; counting
		// them as spending would double-book the month.
		if domain.Classify(t.Category).IsFund() {
			return
		}
		s.PeriodExpense.add(source, amount)
		s.Chart.add(t.Category, source, amount)
	}
}

func (c *ChartData) add(category domain.Category, method domain.PaymentMethod, amount decimal.Decimal) {
	idx := -1
	for i, label := range c.Labels {
		if label == category {
			idx = i
			break
		}
	}
	if idx == -1 {
		c.Labels = append(c.Labels, category)
		c.Cash = append(c.Cash, decimal.Zero)
		c.Bank = append(c.Bank, decimal.Zero)
		idx = len(c.Labels) - 1
	}
	if method == domain.MethodBank {
		c.Bank[idx] = c.Bank[idx].Add(amount)
		return
	}
	c.Cash[idx] = c.Cash[idx].Add(amount)
}

// tradeCashFlow sums the signed cash impact of every trade. Trade prices are
// recorded in VND; the assumption that all investment cash moves via bank is
// carried over from the original ledger.
func tradeCashFlow(trades []domain.Trade, rate decimal.Decimal, display currency.Code) decimal.Decimal {
	flow := decimal.Zero
	for _, trade := range trades {
		flow = flow.Add(tradeImpact(trade, rate, display))
	}
	return flow
}

func tradeImpact(t domain.Trade, rate decimal.Decimal, display currency.Code) decimal.Decimal {
	price := currency.Convert(t.Price, currency.VND, display, rate)
	fee := currency.Convert(t.Fee, currency.VND, display, rate)
	tax := currency.Convert(t.Tax, currency.VND, display, rate)
	gross := t.Quantity.Mul(price)

	switch t.Type {
	case domain.TradeBuy:
		return gross.Add(fee).Neg()
	case domain.TradeSell:
		return gross.Sub(fee).Sub(tax)
	case domain.TradeDividend:
		return gross.Sub(tax)
	default:
		return decimal.Zero
	}
}
