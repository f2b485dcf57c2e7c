package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Role controls access to the user-management endpoints.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is a household member who can sign in.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// Settings holds the household-level configuration the ledger depends on.
type Settings struct {
	// ExchangeRateUSDVND is the USD→VND rate; zero means unconfigured and
	// callers fall back to the default.
	ExchangeRateUSDVND decimal.Decimal
	// Language is the preferred display locale, "vi" or "en".
	Language string
}
