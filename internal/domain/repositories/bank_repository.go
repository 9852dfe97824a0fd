package repositories

import (
	"context"

	"kyc-chain.backend/internal/domain/entities"
	"kyc-chain.backend/pkg/utils"
)

// BankRepository defines bank registry data operations
type BankRepository interface {
	Create(ctx context.Context, bank *entities.Bank) error
	GetByAddress(ctx context.Context, address string) (*entities.Bank, error)
	SetApproval(ctx context.Context, address string, approved bool) error
	List(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Bank, int64, error)
	Count(ctx context.Context) (int64, error)
}
