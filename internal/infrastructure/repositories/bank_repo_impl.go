package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"kyc-chain.backend/internal/domain/entities"
	domainerrors "kyc-chain.backend/internal/domain/errors"
	"kyc-chain.backend/internal/domain/repositories"
	"kyc-chain.backend/internal/infrastructure/models"
	"kyc-chain.backend/pkg/utils"
)

// bankRepo implements repositories.BankRepository
type bankRepo struct {
	db *gorm.DB
}

// NewBankRepository creates a new bank repository
func NewBankRepository(db *gorm.DB) repositories.BankRepository {
	return &bankRepo{db: db}
}

// Create registers a new bank, unapproved by default
func (r *bankRepo) Create(ctx context.Context, bank *entities.Bank) error {
	m := models.Bank{
		Name:       bank.Name,
		Address:    bank.Address,
		IsApproved: bank.IsApproved,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	bank.ID = m.ID
	bank.CreatedAt = m.CreatedAt
	return nil
}

// GetByAddress gets a bank by its address
func (r *bankRepo) GetByAddress(ctx context.Context, address string) (*entities.Bank, error) {
	var m models.Bank
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("address = ?", address).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// SetApproval toggles the bank-wide approval flag
func (r *bankRepo) SetApproval(ctx context.Context, address string, approved bool) error {
	res := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Bank{}).Where("address = ?", address).Update("is_approved", approved)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List returns registered banks ordered by registration id
func (r *bankRepo) List(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Bank, int64, error) {
	var ms []models.Bank
	var totalCount int64

	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Bank{})
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("id asc")
	if pagination.Limit > 0 {
		query = query.Limit(pagination.Limit).Offset(pagination.CalculateOffset())
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	banks := make([]*entities.Bank, 0, len(ms))
	for _, m := range ms {
		model := m
		banks = append(banks, r.toEntity(&model))
	}
	return banks, totalCount, nil
}

// Count returns the number of registered banks
func (r *bankRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Bank{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *bankRepo) toEntity(m *models.Bank) *entities.Bank {
	return &entities.Bank{
		ID:         m.ID,
		Name:       m.Name,
		Address:    m.Address,
		IsApproved: m.IsApproved,
		CreatedAt:  m.CreatedAt,
	}
}
