// Package service wires the ledger core to persistence and exposes the
// application's use cases.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/parfin-app/parfin/pkg/domain"
	"github.com/parfin-app/parfin/pkg/repository"
)

// TransactionService owns the transaction lifecycle. Validation happens
// here, at the boundary; the replay itself never rejects records.
type TransactionService struct {
	repo   repository.TransactionRepository
	logger *slog.Logger
}

func NewTransactionService(repo repository.TransactionRepository, logger *slog.Logger) *TransactionService {
	return &TransactionService{repo: repo, logger: logger}
}

// List returns transactions matching the filter, newest first (repository
// ordering).
func (s *TransactionService) List(ctx context.Context, userID int64, filter repository.TransactionFilter) ([]domain.Transaction, error) {
	return s.repo.List(ctx, userID, filter)
}

// MonthFilter builds a filter covering one calendar month from a "YYYY-MM"
// string; the legacy query parameter the first frontend shipped with.
func MonthFilter(month string) (repository.TransactionFilter, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return repository.TransactionFilter{}, fmt.Errorf("invalid month %q: %w", month, err)
	}
	return repository.TransactionFilter{
		Start: start,
		End:   start.AddDate(0, 1, -1),
	}, nil
}

// Create validates and stores a new transaction.
func (s *TransactionService) Create(ctx context.Context, t *domain.Transaction) error {
	if err := validateTransaction(*t); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return err
	}
	s.logger.Info("transaction created",
		"id", t.ID, "type", t.Type, "category", t.Category, "amount", t.Amount)
	return nil
}

// Update replaces the stored transaction identified by t.ID.
func (s *TransactionService) Update(ctx context.Context, t domain.Transaction) error {
	if err := validateTransaction(t); err != nil {
		return err
	}
	if _, err := s.repo.Get(ctx, t.UserID, t.ID); err != nil {
		return err
	}
	return s.repo.Update(ctx, t)
}

// Delete removes a transaction.
func (s *TransactionService) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.Delete(ctx, userID, id)
}

func validateTransaction(t domain.Transaction) error {
	if !t.Type.IsValid() {
		return domain.ErrInvalidTransactionType
	}
	if !t.Amount.IsPositive() {
		return domain.ErrAmountMustBePositive
	}
	if t.Type == domain.TypeAllocation && t.DestinationCategory == "" {
		return domain.ErrAllocationNeedsDestination
	}
	return nil
}
