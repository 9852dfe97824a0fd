package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kyc-chain.backend/internal/domain/entities"
	"kyc-chain.backend/internal/domain/repositories"
	"kyc-chain.backend/internal/infrastructure/models"
	"kyc-chain.backend/pkg/utils"
)

// recordRepo implements repositories.RecordRepository
type recordRepo struct {
	db *gorm.DB
}

// NewRecordRepository creates a new record repository
func NewRecordRepository(db *gorm.DB) repositories.RecordRepository {
	return &recordRepo{db: db}
}

// Append adds a document reference. There is no update or delete.
func (r *recordRepo) Append(ctx context.Context, record *entities.Record) error {
	if record.ID == uuid.Nil {
		record.ID = utils.GenerateUUIDv7()
	}
	m := models.Record{
		ID:           record.ID,
		KycID:        record.KycID,
		RecordType:   record.RecordType,
		DocumentHash: record.DocumentHash,
		Timestamp:    record.Timestamp,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(&m).Error
}

// ListByKycID returns the full ordered record sequence for a customer
func (r *recordRepo) ListByKycID(ctx context.Context, kycID string) ([]*entities.Record, error) {
	var ms []models.Record
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("kyc_id = ?", kycID).Order("timestamp asc, id asc").Find(&ms).Error; err != nil {
		return nil, err
	}

	records := make([]*entities.Record, 0, len(ms))
	for _, m := range ms {
		records = append(records, &entities.Record{
			ID:           m.ID,
			KycID:        m.KycID,
			RecordType:   m.RecordType,
			DocumentHash: m.DocumentHash,
			Timestamp:    m.Timestamp,
		})
	}
	return records, nil
}

// CountByKycID returns the number of records for a customer
func (r *recordRepo) CountByKycID(ctx context.Context, kycID string) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Record{}).Where("kyc_id = ?", kycID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
