package service

import (
	"context"
	"testing"
	"time"

	"github.com/parfin-app/parfin/pkg/currency"
	"github.com/parfin-app/parfin/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixedItemService() (*FixedItemService, *fakeFixedItemRepo, *fakeTransactionRepo) {
	items := &fakeFixedItemRepo{}
	txs := &fakeTransactionRepo{}
	return NewFixedItemService(items, txs, testLogger()), items, txs
}

func validFixedItem() domain.FixedItem {
	return domain.FixedItem{
		UserID:      1,
		Type:        domain.TypeExpense,
		Category:    domain.CategoryBills,
		Amount:      dec("500000"),
		Currency:    currency.VND,
		Source:      domain.MethodBank,
		Description: "rent",
	}
}

func TestFixedItemCreateValidates(t *testing.T) {
	svc, repo, _ := newFixedItemService()
	ctx := context.Background()

	item := validFixedItem()
	item.Amount = dec("0")
	assert.ErrorIs(t, svc.Create(ctx, &item), domain.ErrAmountMustBePositive)

	item = validFixedItem()
	item.Type = "weekly"
	assert.ErrorIs(t, svc.Create(ctx, &item), domain.ErrInvalidTransactionType)

	item = validFixedItem()
	require.NoError(t, svc.Create(ctx, &item))
	assert.NotZero(t, item.ID)
	assert.Len(t, repo.items, 1)
}

func TestFixedItemUpdateUnknownID(t *testing.T) {
	svc, _, _ := newFixedItemService()

	item := validFixedItem()
	item.ID = 42
	assert.ErrorIs(t, svc.Update(context.Background(), item), domain.ErrFixedItemNotFound)
}

func TestGenerateMaterializesAllItems(t *testing.T) {
	svc, _, txRepo := newFixedItemService()
	ctx := context.Background()

	rent := validFixedItem()
	require.NoError(t, svc.Create(ctx, &rent))

	salary := validFixedItem()
	salary.Type = domain.TypeIncome
	salary.Category = domain.CategorySalary
	salary.Amount = dec("20000000")
	require.NoError(t, svc.Create(ctx, &salary))

	date := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	n, err := svc.Generate(ctx, 1, date)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, txRepo.txs, 2)
	for _, tx := range txRepo.txs {
		assert.Equal(t, date, tx.Date)
		assert.Equal(t, int64(1), tx.UserID)
	}
}

func TestGenerateWithNoItems(t *testing.T) {
	svc, _, txRepo := newFixedItemService()

	n, err := svc.Generate(context.Background(), 1, time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, txRepo.txs)
}
