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

// accessRequestRepo implements repositories.AccessRequestRepository
type accessRequestRepo struct {
	db *gorm.DB
}

// NewAccessRequestRepository creates a new access request repository
func NewAccessRequestRepository(db *gorm.DB) repositories.AccessRequestRepository {
	return &accessRequestRepo{db: db}
}

// Create queues a pending request for a (bank, customer) pair
func (r *accessRequestRepo) Create(ctx context.Context, request *entities.AccessRequest) error {
	if request.ID == uuid.Nil {
		request.ID = utils.GenerateUUIDv7()
	}
	m := models.AccessRequest{
		ID:          request.ID,
		BankAddress: request.BankAddress,
		KycID:       request.KycID,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrRequestExists
		}
		return err
	}
	request.CreatedAt = m.CreatedAt
	return nil
}

// Delete consumes a pending request. Missing rows are not an error: grants
// may be issued proactively without a prior request.
func (r *accessRequestRepo) Delete(ctx context.Context, bankAddress, kycID string) error {
	return GetDB(ctx, r.db).WithContext(ctx).
		Where("bank_address = ? AND kyc_id = ?", bankAddress, kycID).
		Delete(&models.AccessRequest{}).Error
}

// Exists reports whether a pending request exists for the pair
func (r *accessRequestRepo) Exists(ctx context.Context, bankAddress, kycID string) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.AccessRequest{}).
		Where("bank_address = ? AND kyc_id = ?", bankAddress, kycID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByBank returns a bank's pending requests in submission order
func (r *accessRequestRepo) ListByBank(ctx context.Context, bankAddress string) ([]*entities.AccessRequest, error) {
	var ms []models.AccessRequest
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("bank_address = ?", bankAddress).
		Order("created_at asc").Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return toRequestEntities(ms), nil
}

// ListPending returns every pending request across banks
func (r *accessRequestRepo) ListPending(ctx context.Context) ([]*entities.AccessRequest, error) {
	var ms []models.AccessRequest
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("created_at asc").Find(&ms).Error; err != nil {
		return nil, err
	}
	return toRequestEntities(ms), nil
}

func toRequestEntities(ms []models.AccessRequest) []*entities.AccessRequest {
	requests := make([]*entities.AccessRequest, 0, len(ms))
	for _, m := range ms {
		requests = append(requests, &entities.AccessRequest{
			ID:          m.ID,
			BankAddress: m.BankAddress,
			KycID:       m.KycID,
			CreatedAt:   m.CreatedAt,
		})
	}
	return requests
}
