package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/parfin-app/parfin/pkg/domain"
	"github.com/parfin-app/parfin/pkg/repository"
)

// FixedItemService owns recurring-transaction templates and their
// materialization into real transactions.
type FixedItemService struct {
	items        repository.FixedItemRepository
	transactions repository.TransactionRepository
	logger       *slog.Logger
}

func NewFixedItemService(
	items repository.FixedItemRepository,
	transactions repository.TransactionRepository,
	logger *slog.Logger,
) *FixedItemService {
	return &FixedItemService{items: items, transactions: transactions, logger: logger}
}

func (s *FixedItemService) List(ctx context.Context, userID int64) ([]domain.FixedItem, error) {
	return s.items.List(ctx, userID)
}

func (s *FixedItemService) Create(ctx context.Context, f *domain.FixedItem) error {
	if err := validateFixedItem(*f); err != nil {
		return err
	}
	return s.items.Create(ctx, f)
}

func (s *FixedItemService) Update(ctx context.Context, f domain.FixedItem) error {
	if err := validateFixedItem(f); err != nil {
		return err
	}
	if _, err := s.items.Get(ctx, f.UserID, f.ID); err != nil {
		return err
	}
	return s.items.Update(ctx, f)
}

func (s *FixedItemService) Delete(ctx context.Context, userID, id int64) error {
	return s.items.Delete(ctx, userID, id)
}

// Generate materializes every fixed item into a transaction effective on
// date and returns how many were created.
func (s *FixedItemService) Generate(ctx context.Context, userID int64, date time.Time) (int, error) {
	items, err := s.items.List(ctx, userID)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, nil
	}

	txs := make([]domain.Transaction, len(items))
	for i, item := range items {
		txs[i] = item.Materialize(date)
	}
	if err := s.transactions.CreateBatch(ctx, txs); err != nil {
		return 0, err
	}

	s.logger.Info("fixed items generated", "count", len(txs), "date", date.Format("2006-01-02"))
	return len(txs), nil
}

func validateFixedItem(f domain.FixedItem) error {
	if !f.Type.IsValid() {
		return domain.ErrInvalidTransactionType
	}
	if !f.Amount.IsPositive() {
		return domain.ErrAmountMustBePositive
	}
	if f.Type == domain.TypeAllocation && f.DestinationCategory == "" {
		return domain.ErrAllocationNeedsDestination
	}
	return nil
}
