package usecases

import (
	"context"
	"errors"

	"kyc-chain.backend/internal/domain/entities"
	domainerrors "kyc-chain.backend/internal/domain/errors"
	"kyc-chain.backend/internal/domain/repositories"
	"kyc-chain.backend/pkg/crypto"
)

// AccessControl resolves caller roles and enforces the capability rules that
// gate every engine operation. Checks are pure lookups against the role and
// bank registries plus the grant matrix; they never mutate state.
type AccessControl struct {
	roleRepo  repositories.RoleRepository
	bankRepo  repositories.BankRepository
	grantRepo repositories.GrantRepository
}

// NewAccessControl creates the capability checker
func NewAccessControl(
	roleRepo repositories.RoleRepository,
	bankRepo repositories.BankRepository,
	grantRepo repositories.GrantRepository,
) *AccessControl {
	return &AccessControl{
		roleRepo:  roleRepo,
		bankRepo:  bankRepo,
		grantRepo: grantRepo,
	}
}

// NormalizeActor validates the actor address and returns its checksummed
// form. Every entry point funnels through this before any lookup.
func (a *AccessControl) NormalizeActor(actor string) (string, error) {
	address, err := crypto.NormalizeAddress(actor)
	if err != nil {
		return "", domainerrors.ErrInvalidAddress
	}
	return address, nil
}

// ResolveRole returns the actor's role. Owner takes precedence over admin,
// admin over bank; unknown addresses resolve to customer-grade access.
func (a *AccessControl) ResolveRole(ctx context.Context, actor string) (entities.Role, error) {
	owner, err := a.roleRepo.GetOwner(ctx)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return entities.RoleNone, err
	}
	if owner != nil && owner.Address == actor {
		return entities.RoleOwner, nil
	}

	isAdmin, err := a.roleRepo.IsAdmin(ctx, actor)
	if err != nil {
		return entities.RoleNone, err
	}
	if isAdmin {
		return entities.RoleAdmin, nil
	}

	if _, err := a.bankRepo.GetByAddress(ctx, actor); err == nil {
		return entities.RoleBank, nil
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return entities.RoleNone, err
	}

	return entities.RoleCustomer, nil
}

// RequireOwner fails Unauthorized unless actor is the owner
func (a *AccessControl) RequireOwner(ctx context.Context, actor string) error {
	owner, err := a.roleRepo.GetOwner(ctx)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.ErrUnauthorized
		}
		return err
	}
	if owner.Address != actor {
		return domainerrors.ErrUnauthorized
	}
	return nil
}

// RequireAdmin fails Unauthorized unless actor is an admin. The owner is
// not implicitly an admin; the roles are disjoint capabilities.
func (a *AccessControl) RequireAdmin(ctx context.Context, actor string) error {
	isAdmin, err := a.roleRepo.IsAdmin(ctx, actor)
	if err != nil {
		return err
	}
	if !isAdmin {
		return domainerrors.ErrUnauthorized
	}
	return nil
}

// IsAdmin reports admin-set membership without failing
func (a *AccessControl) IsAdmin(ctx context.Context, actor string) (bool, error) {
	return a.roleRepo.IsAdmin(ctx, actor)
}

// RequireApprovedBank fails unless actor is a registered bank whose
// approval flag is set. Approval is the global kill switch above
// per-customer grants.
func (a *AccessControl) RequireApprovedBank(ctx context.Context, actor string) (*entities.Bank, error) {
	bank, err := a.bankRepo.GetByAddress(ctx, actor)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}
		return nil, err
	}
	if !bank.IsApproved {
		return nil, domainerrors.ErrBankNotApproved
	}
	return bank, nil
}

// RequireBankAuthorized fails unless actor is an approved bank holding an
// active grant for the customer.
func (a *AccessControl) RequireBankAuthorized(ctx context.Context, actor, kycID string) (*entities.Bank, error) {
	bank, err := a.RequireApprovedBank(ctx, actor)
	if err != nil {
		return nil, err
	}

	active, err := a.grantRepo.IsActive(ctx, bank.Address, kycID)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, domainerrors.ErrUnauthorized
	}
	return bank, nil
}

// IsAuthorized is the read-only predicate combining bank approval with an
// active grant for the pair.
func (a *AccessControl) IsAuthorized(ctx context.Context, kycID, bankAddress string) (bool, error) {
	bank, err := a.bankRepo.GetByAddress(ctx, bankAddress)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if !bank.IsApproved {
		return false, nil
	}
	return a.grantRepo.IsActive(ctx, bank.Address, kycID)
}
