package repositories

import (
	"context"

	"kyc-chain.backend/internal/domain/entities"
)

// RoleRepository defines owner and admin-set data operations
type RoleRepository interface {
	GetOwner(ctx context.Context) (*entities.Owner, error)
	SetOwner(ctx context.Context, address string) error
	AddAdmin(ctx context.Context, admin *entities.Admin) error
	RemoveAdmin(ctx context.Context, address string) error
	IsAdmin(ctx context.Context, address string) (bool, error)
	ListAdmins(ctx context.Context) ([]*entities.Admin, error)
}
