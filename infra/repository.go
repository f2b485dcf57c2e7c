package infra

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/parfin-app/parfin/pkg/domain"
	"github.com/parfin-app/parfin/pkg/repository"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository returns the postgres-backed transaction store.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) List(ctx context.Context, userID int64, f repository.TransactionFilter) ([]domain.Transaction, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if !f.Start.IsZero() {
		q = q.Where("date >= ?", f.Start)
	}
	if !f.End.IsZero() {
		q = q.Where("date <= ?", f.End)
	}
	if f.Category != "" {
		q = q.Where("category = ?", string(f.Category))
	}
	if f.Type != "" {
		q = q.Where("type = ?", string(f.Type))
	}

	var models []Transaction
	if err := q.Order("date, id").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Transaction, len(models))
	for i, m := range models {
		out[i] = m.toDomain()
	}
	return out, nil
}

func (r *transactionRepository) Get(ctx context.Context, userID, id int64) (domain.Transaction, error) {
	var m Transaction
	err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Transaction{}, domain.ErrTransactionNotFound
	}
	if err != nil {
		return domain.Transaction{}, err
	}
	return m.toDomain(), nil
}

func (r *transactionRepository) Create(ctx context.Context, t *domain.Transaction) error {
	m := transactionFromDomain(*t)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	t.ID = m.ID
	return nil
}

func (r *transactionRepository) CreateBatch(ctx context.Context, ts []domain.Transaction) error {
	if len(ts) == 0 {
		return nil
	}
	models := make([]Transaction, len(ts))
	for i, t := range ts {
		models[i] = transactionFromDomain(t)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&models).Error
	})
}

func (r *transactionRepository) Update(ctx context.Context, t domain.Transaction) error {
	m := transactionFromDomain(t)
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", t.UserID, t.ID).
		Select("*").Omit("id", "user_id", "created_at").
		Updates(&m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

func (r *transactionRepository) Delete(ctx context.Context, userID, id int64) error {
	result := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).Delete(&Transaction{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

type investmentRepository struct {
	db *gorm.DB
}

// NewInvestmentRepository returns the postgres-backed trade store.
func NewInvestmentRepository(db *gorm.DB) repository.InvestmentRepository {
	return &investmentRepository{db: db}
}

func (r *investmentRepository) List(ctx context.Context, userID int64) ([]domain.Trade, error) {
	var models []InvestmentTransaction
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("date, id").Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Trade, len(models))
	for i, m := range models {
		out[i] = m.toDomain()
	}
	return out, nil
}

func (r *investmentRepository) Create(ctx context.Context, t *domain.Trade) error {
	m := tradeFromDomain(*t)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	t.ID = m.ID
	return nil
}

func (r *investmentRepository) Delete(ctx context.Context, userID, id int64) error {
	result := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).Delete(&InvestmentTransaction{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTradeNotFound
	}
	return nil
}

type fixedItemRepository struct {
	db *gorm.DB
}

// NewFixedItemRepository returns the postgres-backed fixed-item store.
func NewFixedItemRepository(db *gorm.DB) repository.FixedItemRepository {
	return &fixedItemRepository{db: db}
}

func (r *fixedItemRepository) List(ctx context.Context, userID int64) ([]domain.FixedItem, error) {
	var models []FixedItem
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.FixedItem, len(models))
	for i, m := range models {
		out[i] = m.toDomain()
	}
	return out, nil
}

func (r *fixedItemRepository) Get(ctx context.Context, userID, id int64) (domain.FixedItem, error) {
	var m FixedItem
	err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.FixedItem{}, domain.ErrFixedItemNotFound
	}
	if err != nil {
		return domain.FixedItem{}, err
	}
	return m.toDomain(), nil
}

func (r *fixedItemRepository) Create(ctx context.Context, f *domain.FixedItem) error {
	m := fixedItemFromDomain(*f)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	f.ID = m.ID
	return nil
}

func (r *fixedItemRepository) Update(ctx context.Context, f domain.FixedItem) error {
	m := fixedItemFromDomain(f)
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", f.UserID, f.ID).
		Select("*").Omit("id", "user_id", "created_at").
		Updates(&m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrFixedItemNotFound
	}
	return nil
}

func (r *fixedItemRepository) Delete(ctx context.Context, userID, id int64) error {
	result := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).Delete(&FixedItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrFixedItemNotFound
	}
	return nil
}

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository returns the postgres-backed key/value settings store.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context, key string) (string, error) {
	var m Setting
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return m.Value, nil
}

func (r *settingsRepository) Set(ctx context.Context, key, value string) error {
	m := Setting{Key: key, Value: value}
	return r.db.WithContext(ctx).Save(&m).Error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns the postgres-backed user store.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	var m User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return m.toDomain(), nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	var models []User
	if err := r.db.WithContext(ctx).Order("created_at").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]domain.User, len(models))
	for i, m := range models {
		out[i] = m.toDomain()
	}
	return out, nil
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	m := userFromDomain(*u)
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
