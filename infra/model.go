package infra

import (
	"time"

	"github.com/google/uuid"
	"github.com/parfin-app/parfin/pkg/currency"
	"github.com/parfin-app/parfin/pkg/domain"
	"github.com/shopspring/decimal"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Username  string    `gorm:"uniqueIndex;not null;size:50"`
	Password  string    `gorm:"not null"`
	Role      string    `gorm:"type:varchar(10);not null;default:'user'"`
	CreatedAt time.Time
}

type Transaction struct {
	ID                  int64 `gorm:"primaryKey;autoIncrement"`
	UserID              int64 `gorm:"index;not null"`
	Type                string
	Category            string
	DestinationCategory string
	Amount              decimal.Decimal `gorm:"type:decimal(20,8)"`
	Currency            string          `gorm:"type:varchar(3);not null;default:'VND'"`
	Source              string
	Destination         string
	Fund                int
	Date                time.Time `gorm:"index"`
	Description         string
	CreatedAt           time.Time
}

type FixedItem struct {
	ID                  int64 `gorm:"primaryKey;autoIncrement"`
	UserID              int64 `gorm:"index;not null"`
	Type                string
	Category            string
	DestinationCategory string
	Amount              decimal.Decimal `gorm:"type:decimal(20,8)"`
	Currency            string          `gorm:"type:varchar(3);not null;default:'VND'"`
	Source              string
	Destination         string
	Fund                int
	Description         string
	CreatedAt           time.Time
}

type InvestmentTransaction struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	UserID    int64 `gorm:"index;not null"`
	Date      time.Time
	Symbol    string `gorm:"size:20;not null"`
	AssetType string `gorm:"size:20"`
	Type      string
	Quantity  decimal.Decimal `gorm:"type:decimal(20,8)"`
	Price     decimal.Decimal `gorm:"type:decimal(20,8)"`
	Fee       decimal.Decimal `gorm:"type:decimal(20,8)"`
	Tax       decimal.Decimal `gorm:"type:decimal(20,8)"`
	CreatedAt time.Time
}

type Setting struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value string
}

func (u User) toDomain() domain.User {
	return domain.User{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.Password,
		Role:         domain.Role(u.Role),
		CreatedAt:    u.CreatedAt,
	}
}

func userFromDomain(u domain.User) User {
	return User{
		ID:       u.ID,
		Username: u.Username,
		Password: u.PasswordHash,
		Role:     string(u.Role),
	}
}

func (t Transaction) toDomain() domain.Transaction {
	return domain.Transaction{
		ID:                  t.ID,
		UserID:              t.UserID,
		Type:                domain.TransactionType(t.Type),
		Category:            domain.Category(t.Category),
		DestinationCategory: domain.Category(t.DestinationCategory),
		Amount:              t.Amount,
		Currency:            currency.Normalize(currency.Code(t.Currency)),
		Source:              domain.PaymentMethod(t.Source),
		Destination:         domain.PaymentMethod(t.Destination),
		Fund:                domain.FundBucket(t.Fund),
		Date:                t.Date,
		Description:         t.Description,
	}
}

func transactionFromDomain(t domain.Transaction) Transaction {
	return Transaction{
		ID:                  t.ID,
		UserID:              t.UserID,
		Type:                string(t.Type),
		Category:            string(t.Category),
		DestinationCategory: string(t.DestinationCategory),
		Amount:              t.Amount,
		Currency:            string(t.Currency),
		Source:              string(t.Source),
		Destination:         string(t.Destination),
		Fund:                int(t.Fund),
		Date:                t.Date,
		Description:         t.Description,
	}
}

func (f FixedItem) toDomain() domain.FixedItem {
	return domain.FixedItem{
		ID:                  f.ID,
		UserID:              f.UserID,
		Type:                domain.TransactionType(f.Type),
		Category:            domain.Category(f.Category),
		DestinationCategory: domain.Category(f.DestinationCategory),
		Amount:              f.Amount,
		Currency:            currency.Normalize(currency.Code(f.Currency)),
		Source:              domain.PaymentMethod(f.Source),
		Destination:         domain.PaymentMethod(f.Destination),
		Fund:                domain.FundBucket(f.Fund),
		Description:         f.Description,
	}
}

func fixedItemFromDomain(f domain.FixedItem) FixedItem {
	return FixedItem{
		ID:                  f.ID,
		UserID:              f.UserID,
		Type:                string(f.Type),
		Category:            string(f.Category),
		DestinationCategory: string(f.DestinationCategory),
		Amount:              f.Amount,
		Currency:            string(f.Currency),
		Source:              string(f.Source),
		Destination:         string(f.Destination),
		Fund:                int(f.Fund),
		Description:         f.Description,
	}
}

func (t InvestmentTransaction) toDomain() domain.Trade {
	assetType := t.AssetType
	if assetType == "" {
		assetType = domain.DefaultAssetType
	}
	return domain.Trade{
		ID:        t.ID,
		UserID:    t.UserID,
		Date:      t.Date,
		Symbol:    t.Symbol,
		AssetType: assetType,
		Type:      domain.TradeType(t.Type),
		Quantity:  t.Quantity,
		Price:     t.Price,
		Fee:       t.Fee,
		Tax:       t.Tax,
	}
}

func tradeFromDomain(t domain.Trade) InvestmentTransaction {
	return InvestmentTransaction{
		ID:        t.ID,
		UserID:    t.UserID,
		Date:      t.Date,
		Symbol:    t.Symbol,
		AssetType: t.AssetType,
		Type:      string(t.Type),
		Quantity:  t.Quantity,
		Price:     t.Price,
		Fee:       t.Fee,
		Tax:       t.Tax,
	}
}
