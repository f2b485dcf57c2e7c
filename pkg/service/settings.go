package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/parfin-app/parfin/pkg/domain"
	"github.com/parfin-app/parfin/pkg/repository"
	"github.com/shopspring/decimal"
)

// Settings keys, stored as rows in the key/value settings table.
const (
	SettingExchangeRate = "exchange_rate_usd_vnd"
	SettingLanguage     = "language"
)

// SettingsService reads and writes household configuration. A missing or
// unparsable exchange rate degrades to the configured default instead of
// failing; the tool must work before first configuration.
type SettingsService struct {
	repo        repository.SettingsRepository
	defaultRate decimal.Decimal
	logger      *slog.Logger
}

func NewSettingsService(repo repository.SettingsRepository, defaultRate decimal.Decimal, logger *slog.Logger) *SettingsService {
	if !defaultRate.IsPositive() {
		defaultRate = decimal.NewFromInt(25000)
	}
	return &SettingsService{repo: repo, defaultRate: defaultRate, logger: logger}
}

// Get returns the current settings with defaults applied.
func (s *SettingsService) Get(ctx context.Context) (domain.Settings, error) {
	settings := domain.Settings{
		ExchangeRateUSDVND: s.defaultRate,
		Language:           "vi",
	}

	if raw, err := s.repo.Get(ctx, SettingExchangeRate); err == nil && raw != "" {
		if rate, perr := decimal.NewFromString(raw); perr == nil && rate.IsPositive() {
			settings.ExchangeRateUSDVND = rate
		} else {
			s.logger.Warn("stored exchange rate is not a positive number, using default",
				"value", raw, "default", s.defaultRate)
		}
	}

	if lang, err := s.repo.Get(ctx, SettingLanguage); err == nil && lang != "" {
		settings.Language = lang
	}

	return settings, nil
}

// UpdateRate persists a new USD→VND exchange rate.
func (s *SettingsService) UpdateRate(ctx context.Context, rate decimal.Decimal) error {
	if !rate.IsPositive() {
		return domain.ErrInvalidExchangeRate
	}
	return s.repo.Set(ctx, SettingExchangeRate, rate.String())
}

// UpdateLanguage persists the preferred display language.
func (s *SettingsService) UpdateLanguage(ctx context.Context, lang string) error {
	if lang != "vi" && lang != "en" {
		return errors.New("language must be vi or en")
	}
	return s.repo.Set(ctx, SettingLanguage, lang)
}
