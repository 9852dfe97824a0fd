package repositories

import (
	"context"

	"kyc-chain.backend/internal/domain/entities"
)

// AccessRequestRepository defines the pending request queue
type AccessRequestRepository interface {
	Create(ctx context.Context, request *entities.AccessRequest) error
	Delete(ctx context.Context, bankAddress, kycID string) error
	Exists(ctx context.Context, bankAddress, kycID string) (bool, error)
	ListByBank(ctx context.Context, bankAddress string) ([]*entities.AccessRequest, error)
	ListPending(ctx context.Context) ([]*entities.AccessRequest, error)
}

// GrantRepository defines the bank x customer authorization matrix
type GrantRepository interface {
	Get(ctx context.Context, bankAddress, kycID string) (*entities.Grant, error)
	Upsert(ctx context.Context, grant *entities.Grant) error
	Deactivate(ctx context.Context, bankAddress, kycID string) error
	IsActive(ctx context.Context, bankAddress, kycID string) (bool, error)
	ListByBank(ctx context.Context, bankAddress string, activeOnly bool) ([]*entities.Grant, error)
	ListByKycID(ctx context.Context, kycID string) ([]*entities.Grant, error)
}
