package usecases

import (
	"context"

	"go.uber.org/zap"

	"kyc-chain.backend/internal/domain/entities"
	domainerrors "kyc-chain.backend/internal/domain/errors"
	"kyc-chain.backend/internal/domain/repositories"
	"kyc-chain.backend/pkg/logger"
	"kyc-chain.backend/pkg/metrics"
)

// AccessUsecase manages the request queue and the authorization matrix
type AccessUsecase struct {
	customerRepo repositories.CustomerRepository
	bankRepo     repositories.BankRepository
	requestRepo  repositories.AccessRequestRepository
	grantRepo    repositories.GrantRepository
	guard        *AccessControl
	uow          repositories.UnitOfWork
	locks        *KeyedMutex
	metrics      *metrics.Metrics
}

// NewAccessUsecase creates a new access usecase
func NewAccessUsecase(
	customerRepo repositories.CustomerRepository,
	bankRepo repositories.BankRepository,
	requestRepo repositories.AccessRequestRepository,
	grantRepo repositories.GrantRepository,
	guard *AccessControl,
	uow repositories.UnitOfWork,
	locks *KeyedMutex,
	m *metrics.Metrics,
) *AccessUsecase {
	return &AccessUsecase{
		customerRepo: customerRepo,
		bankRepo:     bankRepo,
		requestRepo:  requestRepo,
		grantRepo:    grantRepo,
		guard:        guard,
		uow:          uow,
		locks:        locks,
		metrics:      m,
	}
}

// RequestAccess queues a pending request from the calling bank for a
// customer. Rejects the pair with RequestExists when either a pending
// request or an active grant already covers it; the dual check prevents
// duplicate work and silent re-grants.
func (u *AccessUsecase) RequestAccess(ctx context.Context, actor, kycID string) (request *entities.AccessRequest, err error) {
	defer func() { u.metrics.Observe("requestAccess", err) }()

	actor, err = u.guard.NormalizeActor(actor)
	if err != nil {
		return nil, err
	}

	bank, err := u.guard.RequireApprovedBank(ctx, actor)
	if err != nil {
		return nil, err
	}

	u.locks.Lock(kycID)
	defer u.locks.Unlock(kycID)

	if _, err := u.customerRepo.GetByKycID(ctx, kycID); err != nil {
		return nil, err
	}

	active, err := u.grantRepo.IsActive(ctx, bank.Address, kycID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, domainerrors.ErrRequestExists
	}

	pending, err := u.requestRepo.Exists(ctx, bank.Address, kycID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, domainerrors.ErrRequestExists
	}

	request = &entities.AccessRequest{
		BankAddress: bank.Address,
		KycID:       kycID,
	}
	if err := u.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	logger.Info(ctx, "access requested",
		zap.String("bank", bank.Address),
		zap.String("kyc_id", kycID),
	)
	return request, nil
}

// GrantAccess activates a grant for (bank, customer) and consumes any
// matching pending request. Admin only; the bank must be approved.
// Re-granting an already-active pair is a no-op success.
func (u *AccessUsecase) GrantAccess(ctx context.Context, actor, kycID, bankAddress string) (grant *entities.Grant, err error) {
	defer func() { u.metrics.Observe("grantAccess", err) }()

	actor, err = u.guard.NormalizeActor(actor)
	if err != nil {
		return nil, err
	}
	bankAddress, err = u.guard.NormalizeActor(bankAddress)
	if err != nil {
		return nil, err
	}

	if err := u.guard.RequireAdmin(ctx, actor); err != nil {
		return nil, err
	}

	bank, err := u.bankRepo.GetByAddress(ctx, bankAddress)
	if err != nil {
		return nil, err
	}
	if !bank.IsApproved {
		return nil, domainerrors.ErrBankNotApproved
	}

	u.locks.Lock(kycID)
	defer u.locks.Unlock(kycID)

	if _, err := u.customerRepo.GetByKycID(ctx, kycID); err != nil {
		return nil, err
	}

	grant = &entities.Grant{
		BankAddress:  bank.Address,
		KycID:        kycID,
		IsAuthorized: true,
	}

	// A grant may be issued proactively; a missing request is fine.
	// Consuming the request and writing the grant commit together, so a
	// failed upsert cannot swallow the pending request.
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.requestRepo.Delete(txCtx, bank.Address, kycID); err != nil {
			return err
		}
		return u.grantRepo.Upsert(txCtx, grant)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "access granted",
		zap.String("bank", bank.Address),
		zap.String("kyc_id", kycID),
		zap.String("by", actor),
	)
	return grant, nil
}

// RevokeAccess deactivates an existing grant, keeping the row for audit.
// Admin only; fails NotFound when no grant row exists for the pair.
func (u *AccessUsecase) RevokeAccess(ctx context.Context, actor, kycID, bankAddress string) (err error) {
	defer func() { u.metrics.Observe("revokeAccess", err) }()

	actor, err = u.guard.NormalizeActor(actor)
	if err != nil {
		return err
	}
	bankAddress, err = u.guard.NormalizeActor(bankAddress)
	if err != nil {
		return err
	}

	if err := u.guard.RequireAdmin(ctx, actor); err != nil {
		return err
	}

	u.locks.Lock(kycID)
	defer u.locks.Unlock(kycID)

	if _, err := u.grantRepo.Get(ctx, bankAddress, kycID); err != nil {
		return err
	}

	if err := u.grantRepo.Deactivate(ctx, bankAddress, kycID); err != nil {
		return err
	}

	logger.Info(ctx, "access revoked",
		zap.String("bank", bankAddress),
		zap.String("kyc_id", kycID),
		zap.String("by", actor),
	)
	return nil
}

// IsAuthorized is the public predicate: bank approved AND grant active
func (u *AccessUsecase) IsAuthorized(ctx context.Context, kycID, bankAddress string) (bool, error) {
	bankAddress, err := u.guard.NormalizeActor(bankAddress)
	if err != nil {
		return false, err
	}
	return u.guard.IsAuthorized(ctx, kycID, bankAddress)
}

// ListPendingRequests returns every pending request. Admin only.
func (u *AccessUsecase) ListPendingRequests(ctx context.Context, actor string) ([]*entities.AccessRequest, error) {
	actor, err := u.guard.NormalizeActor(actor)
	if err != nil {
		return nil, err
	}
	if err := u.guard.RequireAdmin(ctx, actor); err != nil {
		return nil, err
	}
	return u.requestRepo.ListPending(ctx)
}

// ListGrantsForCustomer returns the audit view of a customer's grant rows.
// Admin only; revoked rows are included.
func (u *AccessUsecase) ListGrantsForCustomer(ctx context.Context, actor, kycID string) ([]*entities.Grant, error) {
	actor, err := u.guard.NormalizeActor(actor)
	if err != nil {
		return nil, err
	}
	if err := u.guard.RequireAdmin(ctx, actor); err != nil {
		return nil, err
	}

	if _, err := u.customerRepo.GetByKycID(ctx, kycID); err != nil {
		return nil, err
	}
	return u.grantRepo.ListByKycID(ctx, kycID)
}
