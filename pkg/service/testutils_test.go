package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/parfin-app/parfin/pkg/domain"
	"github.com/parfin-app/parfin/pkg/ledger"
	"github.com/parfin-app/parfin/pkg/repository"
)

// In-memory repositories for service tests.

type fakeTransactionRepo struct {
	txs    []domain.Transaction
	nextID int64
}

func (r *fakeTransactionRepo) List(_ context.Context, userID int64, f repository.TransactionFilter) ([]domain.Transaction, error) {
	var out []domain.Transaction
	for _, t := range r.txs {
		if t.UserID != userID {
			continue
		}
		if !ledger.InRange(t.Date, f.Start, f.End) {
			continue
		}
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		if f.Type != "" && t.Type != f.Type {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTransactionRepo) Get(_ context.Context, userID, id int64) (domain.Transaction, error) {
	for _, t := range r.txs {
		if t.UserID == userID && t.ID == id {
			return t, nil
		}
	}
	return domain.Transaction{}, domain.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) Create(_ context.Context, t *domain.Transaction) error {
	r.nextID++
	t.ID = r.nextID
	r.txs = append(r.txs, *t)
	return nil
}

func (r *fakeTransactionRepo) CreateBatch(ctx context.Context, ts []domain.Transaction) error {
	for i := range ts {
		if err := r.Create(ctx, &ts[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, t domain.Transaction) error {
	for i := range r.txs {
		if r.txs[i].ID == t.ID && r.txs[i].UserID == t.UserID {
			r.txs[i] = t
			return nil
		}
	}
	return domain.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) Delete(_ context.Context, userID, id int64) error {
	for i := range r.txs {
		if r.txs[i].ID == id && r.txs[i].UserID == userID {
			r.txs = append(r.txs[:i], r.txs[i+1:]...)
			return nil
		}
	}
	return domain.ErrTransactionNotFound
}

type fakeInvestmentRepo struct {
	trades []domain.Trade
	nextID int64
}

func (r *fakeInvestmentRepo) List(_ context.Context, userID int64) ([]domain.Trade, error) {
	var out []domain.Trade
	for _, t := range r.trades {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeInvestmentRepo) Create(_ context.Context, t *domain.Trade) error {
	r.nextID++
	t.ID = r.nextID
	r.trades = append(r.trades, *t)
	return nil
}

func (r *fakeInvestmentRepo) Delete(_ context.Context, userID, id int64) error {
	for i := range r.trades {
		if r.trades[i].ID == id && r.trades[i].UserID == userID {
			r.trades = append(r.trades[:i], r.trades[i+1:]...)
			return nil
		}
	}
	return domain.ErrTradeNotFound
}

type fakeFixedItemRepo struct {
	items  []domain.FixedItem
	nextID int64
}

func (r *fakeFixedItemRepo) List(_ context.Context, userID int64) ([]domain.FixedItem, error) {
	var out []domain.FixedItem
	for _, f := range r.items {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFixedItemRepo) Get(_ context.Context, userID, id int64) (domain.FixedItem, error) {
	for _, f := range r.items {
		if f.UserID == userID && f.ID == id {
			return f, nil
		}
	}
	return domain.FixedItem{}, domain.ErrFixedItemNotFound
}

func (r *fakeFixedItemRepo) Create(_ context.Context, f *domain.FixedItem) error {
	r.nextID++
	f.ID = r.nextID
	r.items = append(r.items, *f)
	return nil
}

func (r *fakeFixedItemRepo) Update(_ context.Context, f domain.FixedItem) error {
	for i := range r.items {
		if r.items[i].ID == f.ID && r.items[i].UserID == f.UserID {
			r.items[i] = f
			return nil
		}
	}
	return domain.ErrFixedItemNotFound
}

func (r *fakeFixedItemRepo) Delete(_ context.Context, userID, id int64) error {
	for i := range r.items {
		if r.items[i].ID == id && r.items[i].UserID == userID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrFixedItemNotFound
}

type fakeSettingsRepo struct {
	values map[string]string
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{values: map[string]string{}}
}

func (r *fakeSettingsRepo) Get(_ context.Context, key string) (string, error) {
	return r.values[key], nil
}

func (r *fakeSettingsRepo) Set(_ context.Context, key, value string) error {
	r.values[key] = value
	return nil
}

type fakeUserRepo struct {
	users map[string]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]domain.User{}}
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (domain.User, error) {
	if u, ok := r.users[username]; ok {
		return u, nil
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (r *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	if _, ok := r.users[u.Username]; ok {
		return domain.ErrUserExists
	}
	r.users[u.Username] = *u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	for name, u := range r.users {
		if u.ID == id {
			delete(r.users, name)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func testLogger() *slog.Logger {
	return slog.Default()
}
