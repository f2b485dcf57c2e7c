// Package repository defines the persistence interfaces the services depend
// on. Implementations live in infra.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/parfin-app/parfin/pkg/domain"
)

// TransactionFilter narrows a transaction listing. Zero values mean "no
// constraint".
type TransactionFilter struct {
	Start    time.Time
	End      time.Time
	Category domain.Category
	Type     domain.TransactionType
}

// TransactionRepository persists cash movements.
type TransactionRepository interface {
	List(ctx context.Context, userID int64, filter TransactionFilter) ([]domain.Transaction, error)
	Get(ctx context.Context, userID, id int64) (domain.Transaction, error)
	Create(ctx context.Context, t *domain.Transaction) error
	CreateBatch(ctx context.Context, ts []domain.Transaction) error
	Update(ctx context.Context, t domain.Transaction) error
	Delete(ctx context.Context, userID, id int64) error
}

// InvestmentRepository persists investment trades. Trades are only ever
// created and deleted, never edited.
type InvestmentRepository interface {
	List(ctx context.Context, userID int64) ([]domain.Trade, error)
	Create(ctx context.Context, t *domain.Trade) error
	Delete(ctx context.Context, userID, id int64) error
}

// FixedItemRepository persists recurring-transaction templates.
type FixedItemRepository interface {
	List(ctx context.Context, userID int64) ([]domain.FixedItem, error)
	Get(ctx context.Context, userID, id int64) (domain.FixedItem, error)
	Create(ctx context.Context, f *domain.FixedItem) error
	Update(ctx context.Context, f domain.FixedItem) error
	Delete(ctx context.Context, userID, id int64) error
}

// SettingsRepository persists the household key/value settings.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// UserRepository persists users.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}
