package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/parfin-app/parfin/pkg/currency"
	"github.com/parfin-app/parfin/pkg/ledger"
	"github.com/parfin-app/parfin/pkg/portfolio"
	"github.com/parfin-app/parfin/pkg/repository"
)

// StatsQuery selects the window and display currency for an overview.
type StatsQuery struct {
	Period      ledger.Period
	CustomStart time.Time
	CustomEnd   time.Time
	Display     currency.Code
}

// StatsService computes balance overviews and portfolios. It is a thin
// orchestration layer: fetch, then hand everything to the pure ledger and
// portfolio folds.
type StatsService struct {
	transactions repository.TransactionRepository
	investments  repository.InvestmentRepository
	settings     *SettingsService
	logger       *slog.Logger
	now          func() time.Time
}

func NewStatsService(
	transactions repository.TransactionRepository,
	investments repository.InvestmentRepository,
	settings *SettingsService,
	logger *slog.Logger,
) *StatsService {
	return &StatsService{
		transactions: transactions,
		investments:  investments,
		settings:     settings,
		logger:       logger,
		now:          time.Now,
	}
}

// Overview replays the whole ledger for global balances and the selected
// window for period aggregates, in the requested display currency.
func (s *StatsService) Overview(ctx context.Context, userID int64, q StatsQuery) (ledger.Overview, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return ledger.Overview{}, err
	}

	all, err := s.transactions.List(ctx, userID, repository.TransactionFilter{})
	if err != nil {
		return ledger.Overview{}, err
	}
	trades, err := s.investments.List(ctx, userID)
	if err != nil {
		return ledger.Overview{}, err
	}

	start, end := s.resolveRange(q)
	periodTxs := all[:0:0]
	for _, t := range all {
		if ledger.InRange(t.Date, start, end) {
			periodTxs = append(periodTxs, t)
		}
	}

	snapshot := ledger.Replay(ledger.Input{
		Transactions:       all,
		PeriodTransactions: periodTxs,
		Trades:             trades,
		Rate:               settings.ExchangeRateUSDVND,
		Display:            q.Display,
	})
	return snapshot.Overview(), nil
}

// Portfolio replays all trades into the current holdings view.
func (s *StatsService) Portfolio(ctx context.Context, userID int64, display currency.Code) (portfolio.Portfolio, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return portfolio.Portfolio{}, err
	}
	trades, err := s.investments.List(ctx, userID)
	if err != nil {
		return portfolio.Portfolio{}, err
	}

	p := portfolio.Calculate(trades, settings.ExchangeRateUSDVND, display)
	if len(p.Oversold) > 0 {
		s.logger.Warn("sell trades exceed held quantity", "symbols", p.Oversold)
	}
	return p, nil
}

func (s *StatsService) resolveRange(q StatsQuery) (start, end time.Time) {
	if q.Period == ledger.PeriodCustom {
		return q.CustomStart, q.CustomEnd
	}
	return ledger.PeriodRange(q.Period, s.now())
}
