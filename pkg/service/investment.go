package service

import (
	"context"
	"log/slog"

	"github.com/parfin-app/parfin/pkg/domain"
	"github.com/parfin-app/parfin/pkg/repository"
)

// InvestmentService owns the trade lifecycle. Trades are append-only: they
// can be created and deleted but never edited in place.
type InvestmentService struct {
	repo   repository.InvestmentRepository
	logger *slog.Logger
}

func NewInvestmentService(repo repository.InvestmentRepository, logger *slog.Logger) *InvestmentService {
	return &InvestmentService{repo: repo, logger: logger}
}

func (s *InvestmentService) List(ctx context.Context, userID int64) ([]domain.Trade, error) {
	return s.repo.List(ctx, userID)
}

func (s *InvestmentService) Create(ctx context.Context, t *domain.Trade) error {
	if !t.Type.IsValid() {
		return domain.ErrInvalidTradeType
	}
	if t.Quantity.IsNegative() || t.Price.IsNegative() {
		return domain.ErrAmountMustBePositive
	}
	if t.AssetType == "" {
		t.AssetType = domain.DefaultAssetType
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return err
	}
	s.logger.Info("trade recorded",
		"id", t.ID, "symbol", t.Symbol, "type", t.Type, "quantity", t.Quantity)
	return nil
}

func (s *InvestmentService) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.Delete(ctx, userID, id)
}
