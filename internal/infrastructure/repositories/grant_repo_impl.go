package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kyc-chain.backend/internal/domain/entities"
	domainerrors "kyc-chain.backend/internal/domain/errors"
	"kyc-chain.backend/internal/domain/repositories"
	"kyc-chain.backend/internal/infrastructure/models"
	"kyc-chain.backend/pkg/utils"
)

// grantRepo implements repositories.GrantRepository
type grantRepo struct {
	db *gorm.DB
}

// NewGrantRepository creates a new grant repository
func NewGrantRepository(db *gorm.DB) repositories.GrantRepository {
	return &grantRepo{db: db}
}

// Get returns the grant row for the pair, active or not
func (r *grantRepo) Get(ctx context.Context, bankAddress, kycID string) (*entities.Grant, error) {
	var m models.Grant
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("bank_address = ? AND kyc_id = ?", bankAddress, kycID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Upsert creates the grant row or re-activates an existing one
func (r *grantRepo) Upsert(ctx context.Context, grant *entities.Grant) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	res := db.Model(&models.Grant{}).
		Where("bank_address = ? AND kyc_id = ?", grant.BankAddress, grant.KycID).
		Update("is_authorized", grant.IsAuthorized)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	if grant.ID == uuid.Nil {
		grant.ID = utils.GenerateUUIDv7()
	}
	m := models.Grant{
		ID:           grant.ID,
		BankAddress:  grant.BankAddress,
		KycID:        grant.KycID,
		IsAuthorized: grant.IsAuthorized,
	}
	if err := db.Create(&m).Error; err != nil {
		return err
	}
	grant.CreatedAt = m.CreatedAt
	grant.UpdatedAt = m.UpdatedAt
	return nil
}

// Deactivate clears the authorization flag, keeping the row for audit
func (r *grantRepo) Deactivate(ctx context.Context, bankAddress, kycID string) error {
	res := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Grant{}).
		Where("bank_address = ? AND kyc_id = ?", bankAddress, kycID).
		Update("is_authorized", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// IsActive reports whether an active grant exists for the pair
func (r *grantRepo) IsActive(ctx context.Context, bankAddress, kycID string) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Grant{}).
		Where("bank_address = ? AND kyc_id = ? AND is_authorized = ?", bankAddress, kycID, true).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByBank returns a bank's grant rows, optionally only active ones
func (r *grantRepo) ListByBank(ctx context.Context, bankAddress string, activeOnly bool) ([]*entities.Grant, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Where("bank_address = ?", bankAddress)
	if activeOnly {
		query = query.Where("is_authorized = ?", true)
	}

	var ms []models.Grant
	if err := query.Order("created_at asc").Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

// ListByKycID returns every grant row touching a customer
func (r *grantRepo) ListByKycID(ctx context.Context, kycID string) ([]*entities.Grant, error) {
	var ms []models.Grant
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("kyc_id = ?", kycID).
		Order("created_at asc").Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *grantRepo) toEntity(m *models.Grant) *entities.Grant {
	return &entities.Grant{
		ID:           m.ID,
		BankAddress:  m.BankAddress,
		KycID:        m.KycID,
		IsAuthorized: m.IsAuthorized,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *grantRepo) toEntities(ms []models.Grant) []*entities.Grant {
	grants := make([]*entities.Grant, 0, len(ms))
	for _, m := range ms {
		model := m
		grants = append(grants, r.toEntity(&model))
	}
	return grants
}
