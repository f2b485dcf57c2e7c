package service

import (
	"context"
	"testing"

	"github.com/parfin-app/parfin/pkg/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsService() (*SettingsService, *fakeSettingsRepo) {
	repo := newFakeSettingsRepo()
	return NewSettingsService(repo, decimal.NewFromInt(25000), testLogger()), repo
}

func TestSettingsDefaults(t *testing.T) {
	svc, _ := newSettingsService()

	s, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, s.ExchangeRateUSDVND.Equal(decimal.NewFromInt(25000)))
	assert.Equal(t, "vi", s.Language)
}

func TestSettingsBadStoredRateFallsBack(t *testing.T) {
	svc, repo := newSettingsService()
	repo.values[SettingExchangeRate] = "not-a-number"

	s, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, s.ExchangeRateUSDVND.Equal(decimal.NewFromInt(25000)))
}

func TestUpdateRate(t *testing.T) {
	svc, repo := newSettingsService()
	ctx := context.Background()

	assert.ErrorIs(t, svc.UpdateRate(ctx, decimal.Zero), domain.ErrInvalidExchangeRate)
	assert.ErrorIs(t, svc.UpdateRate(ctx, decimal.NewFromInt(-1)), domain.ErrInvalidExchangeRate)

	require.NoError(t, svc.UpdateRate(ctx, decimal.NewFromInt(26500)))
	assert.Equal(t, "26500", repo.values[SettingExchangeRate])

	s, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.True(t, s.ExchangeRateUSDVND.Equal(decimal.NewFromInt(26500)))
}

func TestUpdateLanguage(t *testing.T) {
	svc, _ := newSettingsService()
	ctx := context.Background()

	assert.Error(t, svc.UpdateLanguage(ctx, "fr"))
	require.NoError(t, svc.UpdateLanguage(ctx, "en"))

	s, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "en", s.Language)
}
