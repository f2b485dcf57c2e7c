// Package testutils provides in-memory repositories and a fully wired app
// for handler tests.
package testutils

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/parfin-app/parfin/pkg/config"
	"github.com/parfin-app/parfin/pkg/domain"
	"github.com/parfin-app/parfin/pkg/ledger"
	"github.com/parfin-app/parfin/pkg/repository"
	"github.com/parfin-app/parfin/pkg/service"
	"github.com/parfin-app/parfin/webapi"
	"github.com/shopspring/decimal"
)

// Fixture bundles the app, its services and the backing stores so tests can
// seed data and inspect effects.
type Fixture struct {
	Cfg      *config.AppConfig
	Services webapi.Services

	Transactions *MemTransactionRepo
	Investments  *MemInvestmentRepo
	FixedItems   *MemFixedItemRepo
	Settings     *MemSettingsRepo
	Users        *MemUserRepo
}

// NewApp wires a fiber app over in-memory repositories, with an admin user
// already registered.
func NewApp() (*fiber.App, *Fixture) {
	cfg := &config.AppConfig{
		Jwt:       config.JwtConfig{Secret: "test-secret", Expiry: time.Hour},
		RateLimit: config.RateLimitConfig{MaxRequests: 1000, Window: time.Minute},
	}
	logger := slog.Default()

	f := &Fixture{
		Cfg:          cfg,
		Transactions: &MemTransactionRepo{},
		Investments:  &MemInvestmentRepo{},
		FixedItems:   &MemFixedItemRepo{},
		Settings:     &MemSettingsRepo{Values: map[string]string{}},
		Users:        &MemUserRepo{ByName: map[string]domain.User{}},
	}

	settingsSvc := service.NewSettingsService(f.Settings, decimal.NewFromInt(25000), logger)
	f.Services = webapi.Services{
		Auth:         service.NewAuthService(f.Users, cfg.Jwt, logger),
		Users:        service.NewUserService(f.Users, logger),
		Transactions: service.NewTransactionService(f.Transactions, logger),
		Investments:  service.NewInvestmentService(f.Investments, logger),
		FixedItems:   service.NewFixedItemService(f.FixedItems, f.Transactions, logger),
		Settings:     settingsSvc,
		Stats:        service.NewStatsService(f.Transactions, f.Investments, settingsSvc, logger),
	}

	_ = f.Services.Users.EnsureAdmin(context.Background(), "admin", "admin123")

	return webapi.NewApp(cfg, f.Services), f
}

// Token returns a signed bearer token for the named registered user.
func (f *Fixture) Token(username string) string {
	u, err := f.Users.GetByUsername(context.Background(), username)
	if err != nil {
		return ""
	}
	token, _ := f.Services.Auth.GenerateToken(u)
	return token
}

// MemTransactionRepo is an in-memory TransactionRepository.
type MemTransactionRepo struct {
	Txs    []domain.Transaction
	nextID int64
}

func (r *MemTransactionRepo) List(_ context.Context, userID int64, f repository.TransactionFilter) ([]domain.Transaction, error) {
	var out []domain.Transaction
	for _, t := range r.Txs {
		if t.UserID != userID || !ledger.InRange(t.Date, f.Start, f.End) {
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

func (r *MemTransactionRepo) Get(_ context.Context, userID, id int64) (domain.Transaction, error) {
	for _, t := range r.Txs {
		if t.UserID == userID && t.ID == id {
			return t, nil
		}
	}
	return domain.Transaction{}, domain.ErrTransactionNotFound
}

func (r *MemTransactionRepo) Create(_ context.Context, t *domain.Transaction) error {
	r.nextID++
	t.ID = r.nextID
	r.Txs = append(r.Txs, *t)
	return nil
}

func (r *MemTransactionRepo) CreateBatch(ctx context.Context, ts []domain.Transaction) error {
	for i := range ts {
		if err := r.Create(ctx, &ts[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *MemTransactionRepo) Update(_ context.Context, t domain.Transaction) error {
	for i := range r.Txs {
		if r.Txs[i].ID == t.ID && r.Txs[i].UserID == t.UserID {
			r.Txs[i] = t
			return nil
		}
	}
	return domain.ErrTransactionNotFound
}

func (r *MemTransactionRepo) Delete(_ context.Context, userID, id int64) error {
	for i := range r.Txs {
		if r.Txs[i].ID == id && r.Txs[i].UserID == userID {
			r.Txs = append(r.Txs[:i], r.Txs[i+1:]...)
			return nil
		}
	}
	return domain.ErrTransactionNotFound
}

// MemInvestmentRepo is an in-memory InvestmentRepository.
type MemInvestmentRepo struct {
	Trades []domain.Trade
	nextID int64
}

func (r *MemInvestmentRepo) List(_ context.Context, userID int64) ([]domain.Trade, error) {
	var out []domain.Trade
	for _, t := range r.Trades {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *MemInvestmentRepo) Create(_ context.Context, t *domain.Trade) error {
	r.nextID++
	t.ID = r.nextID
	r.Trades = append(r.Trades, *t)
	return nil
}

func (r *MemInvestmentRepo) Delete(_ context.Context, userID, id int64) error {
	for i := range r.Trades {
		if r.Trades[i].ID == id && r.Trades[i].UserID == userID {
			r.Trades = append(r.Trades[:i], r.Trades[i+1:]...)
			return nil
		}
	}
	return domain.ErrTradeNotFound
}

// MemFixedItemRepo is an in-memory FixedItemRepository.
type MemFixedItemRepo struct {
	Items  []domain.FixedItem
	nextID int64
}

func (r *MemFixedItemRepo) List(_ context.Context, userID int64) ([]domain.FixedItem, error) {
	var out []domain.FixedItem
	for _, f := range r.Items {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *MemFixedItemRepo) Get(_ context.Context, userID, id int64) (domain.FixedItem, error) {
	for _, f := range r.Items {
		if f.UserID == userID && f.ID == id {
			return f, nil
		}
	}
	return domain.FixedItem{}, domain.ErrFixedItemNotFound
}

func (r *MemFixedItemRepo) Create(_ context.Context, f *domain.FixedItem) error {
	r.nextID++
	f.ID = r.nextID
	r.Items = append(r.Items, *f)
	return nil
}

func (r *MemFixedItemRepo) Update(_ context.Context, f domain.FixedItem) error {
	for i := range r.Items {
		if r.Items[i].ID == f.ID && r.Items[i].UserID == f.UserID {
			r.Items[i] = f
			return nil
		}
	}
	return domain.ErrFixedItemNotFound
}

func (r *MemFixedItemRepo) Delete(_ context.Context, userID, id int64) error {
	for i := range r.Items {
		if r.Items[i].ID == id && r.Items[i].UserID == userID {
			r.Items = append(r.Items[:i], r.Items[i+1:]...)
			return nil
		}
	}
	return domain.ErrFixedItemNotFound
}

// MemSettingsRepo is an in-memory SettingsRepository.
type MemSettingsRepo struct {
	Values map[string]string
}

func (r *MemSettingsRepo) Get(_ context.Context, key string) (string, error) {
	return r.Values[key], nil
}

func (r *MemSettingsRepo) Set(_ context.Context, key, value string) error {
	r.Values[key] = value
	return nil
}

// MemUserRepo is an in-memory UserRepository.
type MemUserRepo struct {
	ByName map[string]domain.User
}

func (r *MemUserRepo) GetByUsername(_ context.Context, username string) (domain.User, error) {
	if u, ok := r.ByName[username]; ok {
		return u, nil
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (r *MemUserRepo) List(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.ByName {
		out = append(out, u)
	}
	return out, nil
}

func (r *MemUserRepo) Create(_ context.Context, u *domain.User) error {
	if _, ok := r.ByName[u.Username]; ok {
		return domain.ErrUserExists
	}
	r.ByName[u.Username] = *u
	return nil
}

func (r *MemUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	for name, u := range r.ByName {
		if u.ID == id {
			delete(r.ByName, name)
			return nil
		}
	}
	return domain.ErrUserNotFound
}
