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

// historyRepo implements repositories.HistoryRepository
type historyRepo struct {
	db *gorm.DB
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *gorm.DB) repositories.HistoryRepository {
	return &historyRepo{db: db}
}

// Append adds a verdict entry. Entries are immutable once written.
func (r *historyRepo) Append(ctx context.Context, entry *entities.HistoryEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = utils.GenerateUUIDv7()
	}
	m := models.HistoryEntry{
		ID:             entry.ID,
		KycID:          entry.KycID,
		BankName:       entry.BankName,
		Remarks:        entry.Remarks,
		Verdict:        int(entry.Verdict),
		CredentialHash: entry.CredentialHash,
		Timestamp:      entry.Timestamp,
		PrevHash:       entry.PrevHash,
		EntryHash:      entry.EntryHash,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(&m).Error
}

// ListByKycID returns a customer's verdict log in append order
func (r *historyRepo) ListByKycID(ctx context.Context, kycID string) ([]*entities.HistoryEntry, error) {
	var ms []models.HistoryEntry
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("kyc_id = ?", kycID).
		Order("created_at asc, id asc").Find(&ms).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*entities.HistoryEntry, 0, len(ms))
	for _, m := range ms {
		model := m
		entries = append(entries, r.toEntity(&model))
	}
	return entries, nil
}

// CountByKycID returns the history length for a customer
func (r *historyRepo) CountByKycID(ctx context.Context, kycID string) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.HistoryEntry{}).Where("kyc_id = ?", kycID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetLatest returns the newest entry for a customer, the chain head
func (r *historyRepo) GetLatest(ctx context.Context, kycID string) (*entities.HistoryEntry, error) {
	var m models.HistoryEntry
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("kyc_id = ?", kycID).
		Order("created_at desc, id desc").First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// ListKycIDs returns the distinct customers that have history entries
func (r *historyRepo) ListKycIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.HistoryEntry{}).
		Distinct("kyc_id").Order("kyc_id asc").Pluck("kyc_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *historyRepo) toEntity(m *models.HistoryEntry) *entities.HistoryEntry {
	return &entities.HistoryEntry{
		ID:             m.ID,
		KycID:          m.KycID,
		BankName:       m.BankName,
		Remarks:        m.Remarks,
		Verdict:        entities.KycStatus(m.Verdict),
		CredentialHash: m.CredentialHash,
		Timestamp:      m.Timestamp,
		PrevHash:       m.PrevHash,
		EntryHash:      m.EntryHash,
	}
}
