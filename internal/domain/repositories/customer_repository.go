package repositories

import (
	"context"

	"kyc-chain.backend/internal/domain/entities"
	"kyc-chain.backend/pkg/utils"
)

// CustomerRepository defines customer registry data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entities.Customer) error
	GetByKycID(ctx context.Context, kycID string) (*entities.Customer, error)
	GetByPAN(ctx context.Context, pan string) (*entities.Customer, error)
	UpdateStatus(ctx context.Context, kycID string, status entities.KycStatus) error
	List(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Customer, int64, error)
	Count(ctx context.Context) (int64, error)
}

// RecordRepository defines the append-only document reference store
type RecordRepository interface {
	Append(ctx context.Context, record *entities.Record) error
	ListByKycID(ctx context.Context, kycID string) ([]*entities.Record, error)
	CountByKycID(ctx context.Context, kycID string) (int64, error)
}
