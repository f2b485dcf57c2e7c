// Package ledger derives balance snapshots by replaying transaction and
// investment records. The replay is a pure fold: no shared state, identical
// inputs produce identical snapshots, and transaction order never changes
// the result.
package ledger

import (
	"github.com/parfin-app/parfin/pkg/domain"
	"github.com/shopspring/decimal"
)

// FundBalance is the cash/bank split of one pool, in the display currency.
type FundBalance struct {
	Cash decimal.Decimal
	Bank decimal.Decimal
}

// Total returns cash + bank.
func (f FundBalance) Total() decimal.Decimal {
	return f.Cash.Add(f.Bank)
}

func (f *FundBalance) add(method domain.PaymentMethod, amount decimal.Decimal) {
	if method == domain.MethodBank {
		f.Bank = f.Bank.Add(amount)
		return
	}
	f.Cash = f.Cash.Add(amount)
}

func (f *FundBalance) sub(method domain.PaymentMethod, amount decimal.Decimal) {
	f.add(method, amount.Neg())
}

// PeriodTotal is a period income or expense aggregate, split by payment
// method.
type PeriodTotal struct {
	Cash decimal.Decimal
	Bank decimal.Decimal
}

// Total returns cash + bank.
func (p PeriodTotal) Total() decimal.Decimal {
	return p.Cash.Add(p.Bank)
}

func (p *PeriodTotal) add(method domain.PaymentMethod, amount decimal.Decimal) {
	if method == domain.MethodBank {
		p.Bank = p.Bank.Add(amount)
		return
	}
	p.Cash = p.Cash.Add(amount)
}

// ChartData groups period expenses by category, split by payment method.
// Labels keep first-seen order so the series stay aligned.
type ChartData struct {
	Labels []domain.Category
	Cash   []decimal.Decimal
	Bank   []decimal.Decimal
}

// Snapshot is the derived account state: one balance per pool plus the
// period aggregates. All amounts are in the display currency and final; they
// must not be converted again downstream.
type Snapshot struct {
	Total      FundBalance
	Saving     FundBalance
	Support    FundBalance
	Investment FundBalance
	Together   FundBalance

	PeriodIncome  PeriodTotal
	PeriodExpense PeriodTotal

	Chart ChartData
}

// bucket returns the balance accumulator for b.
func (s *Snapshot) bucket(b domain.FundBucket) *FundBalance {
	switch b {
	case domain.BucketSaving:
		return &s.Saving
	case domain.BucketSupport:
		return &s.Support
	case domain.BucketInvestment:
		return &s.Investment
	case domain.BucketTogether:
		return &s.Together
	default:
		return &s.Total
	}
}

// GrandTotal sums every pool, cash and bank.
func (s Snapshot) GrandTotal() decimal.Decimal {
	return s.Total.Total().
		Add(s.Saving.Total()).
		Add(s.Support.Total()).
		Add(s.Investment.Total()).
		Add(s.Together.Total())
}
