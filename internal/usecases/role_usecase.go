package usecases

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"kyc-chain.backend/internal/domain/entities"
	domainerrors "kyc-chain.backend/internal/domain/errors"
	"kyc-chain.backend/internal/domain/repositories"
	"kyc-chain.backend/pkg/logger"
	"kyc-chain.backend/pkg/metrics"
)

// RoleUsecase manages the owner identity and the admin set
type RoleUsecase struct {
	roleRepo repositories.RoleRepository
	guard    *AccessControl
	metrics  *metrics.Metrics
}

// NewRoleUsecase creates a new role usecase
func NewRoleUsecase(roleRepo repositories.RoleRepository, guard *AccessControl, m *metrics.Metrics) *RoleUsecase {
	return &RoleUsecase{
		roleRepo: roleRepo,
		guard:    guard,
		metrics:  m,
	}
}

// AddAdmin adds an address to the admin set. Owner only.
func (u *RoleUsecase) AddAdmin(ctx context.Context, actor, address string) (admin *entities.Admin, err error) {
	defer func() { u.metrics.Observe("addAdmin", err) }()

	actor, err = u.guard.NormalizeActor(actor)
	if err != nil {
		return nil, err
	}
	address, err = u.guard.NormalizeActor(address)
	if err != nil {
		return nil, err
	}

	if err := u.guard.RequireOwner(ctx, actor); err != nil {
		return nil, err
	}

	isAdmin, err := u.roleRepo.IsAdmin(ctx, address)
	if err != nil {
		return nil, err
	}
	if isAdmin {
		return nil, domainerrors.ErrAlreadyExists
	}

	admin = &entities.Admin{
		Address: address,
		AddedBy: actor,
	}
	if err := u.roleRepo.AddAdmin(ctx, admin); err != nil {
		return nil, err
	}

	logger.Info(ctx, "admin added", zap.String("address", address), zap.String("by", actor))
	return admin, nil
}

// RemoveAdmin removes an address from the admin set. Owner only.
func (u *RoleUsecase) RemoveAdmin(ctx context.Context, actor, address string) (err error) {
	defer func() { u.metrics.Observe("removeAdmin", err) }()

	actor, err = u.guard.NormalizeActor(actor)
	if err != nil {
		return err
	}
	address, err = u.guard.NormalizeActor(address)
	if err != nil {
		return err
	}

	if err := u.guard.RequireOwner(ctx, actor); err != nil {
		return err
	}

	if err := u.roleRepo.RemoveAdmin(ctx, address); err != nil {
		return err
	}

	logger.Info(ctx, "admin removed", zap.String("address", address), zap.String("by", actor))
	return nil
}

// ListAdmins returns the admin set
func (u *RoleUsecase) ListAdmins(ctx context.Context) ([]*entities.Admin, error) {
	return u.roleRepo.ListAdmins(ctx)
}

// GetOwner returns the current owner
func (u *RoleUsecase) GetOwner(ctx context.Context) (*entities.Owner, error) {
	return u.roleRepo.GetOwner(ctx)
}

// TransferOwner hands the owner identity to a new address. Only the owner
// itself may do this; the surrounding UI never calls it but it is part of
// the capability contract.
func (u *RoleUsecase) TransferOwner(ctx context.Context, actor, newOwner string) (err error) {
	defer func() { u.metrics.Observe("transferOwner", err) }()

	actor, err = u.guard.NormalizeActor(actor)
	if err != nil {
		return err
	}
	newOwner, err = u.guard.NormalizeActor(newOwner)
	if err != nil {
		return err
	}

	if err := u.guard.RequireOwner(ctx, actor); err != nil {
		return err
	}

	if err := u.roleRepo.SetOwner(ctx, newOwner); err != nil {
		return err
	}

	logger.Info(ctx, "ownership transferred", zap.String("from", actor), zap.String("to", newOwner))
	return nil
}

// Bootstrap installs the configured owner on first start. An existing
// owner row wins over the configured address.
func (u *RoleUsecase) Bootstrap(ctx context.Context, ownerAddress string) error {
	address, err := u.guard.NormalizeActor(ownerAddress)
	if err != nil {
		return err
	}

	_, err = u.roleRepo.GetOwner(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}

	if err := u.roleRepo.SetOwner(ctx, address); err != nil {
		return err
	}
	logger.Info(ctx, "owner bootstrapped", zap.String("address", address))
	return nil
}
