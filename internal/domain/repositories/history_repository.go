package repositories

import (
	"context"

	"kyc-chain.backend/internal/domain/entities"
)

// HistoryRepository defines the append-only verdict log
type HistoryRepository interface {
	Append(ctx context.Context, entry *entities.HistoryEntry) error
	ListByKycID(ctx context.Context, kycID string) ([]*entities.HistoryEntry, error)
	CountByKycID(ctx context.Context, kycID string) (int64, error)
	GetLatest(ctx context.Context, kycID string) (*entities.HistoryEntry, error)
	ListKycIDs(ctx context.Context) ([]string, error)
}
