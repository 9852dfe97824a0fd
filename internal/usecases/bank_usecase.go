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
	"kyc-chain.backend/pkg/utils"
)

// BankUsecase manages the bank registry
type BankUsecase struct {
	bankRepo    repositories.BankRepository
	requestRepo repositories.AccessRequestRepository
	grantRepo   repositories.GrantRepository
	guard       *AccessControl
	metrics     *metrics.Metrics
}

// NewBankUsecase creates a new bank usecase
func NewBankUsecase(
	bankRepo repositories.BankRepository,
	requestRepo repositories.AccessRequestRepository,
	grantRepo repositories.GrantRepository,
	guard *AccessControl,
	m *metrics.Metrics,
) *BankUsecase {
	return &BankUsecase{
		bankRepo:    bankRepo,
		requestRepo: requestRepo,
		grantRepo:   grantRepo,
		guard:       guard,
		metrics:     m,
	}
}

// AddBank registers a bank. Admin only; the bank starts unapproved.
func (u *BankUsecase) AddBank(ctx context.Context, actor string, input *entities.AddBankInput) (bank *entities.Bank, err error) {
	defer func() { u.metrics.Observe("addBank", err) }()

	actor, err = u.guard.NormalizeActor(actor)
	if err != nil {
		return nil, err
	}
	address, err := u.guard.NormalizeActor(input.Address)
	if err != nil {
		return nil, err
	}

	if err := u.guard.RequireAdmin(ctx, actor); err != nil {
		return nil, err
	}

	if _, err := u.bankRepo.GetByAddress(ctx, address); err == nil {
		return nil, domainerrors.ErrAlreadyExists
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	bank = &entities.Bank{
		Name:       input.Name,
		Address:    address,
		IsApproved: false,
	}
	if err := u.bankRepo.Create(ctx, bank); err != nil {
		return nil, err
	}

	logger.Info(ctx, "bank registered",
		zap.String("name", bank.Name),
		zap.String("address", bank.Address),
		zap.String("by", actor),
	)
	return bank, nil
}

// SetApproval toggles a bank's approval flag. Admin only. Removing
// approval cuts the bank off from all customer data regardless of grants.
func (u *BankUsecase) SetApproval(ctx context.Context, actor, address string, approved bool) (err error) {
	defer func() { u.metrics.Observe("setBankApproval", err) }()

	actor, err = u.guard.NormalizeActor(actor)
	if err != nil {
		return err
	}
	address, err = u.guard.NormalizeActor(address)
	if err != nil {
		return err
	}

	if err := u.guard.RequireAdmin(ctx, actor); err != nil {
		return err
	}

	if err := u.bankRepo.SetApproval(ctx, address, approved); err != nil {
		return err
	}

	logger.Info(ctx, "bank approval changed",
		zap.String("address", address),
		zap.Bool("approved", approved),
		zap.String("by", actor),
	)
	return nil
}

// GetBank returns a bank with its pending requests and active approvals,
// matching the registry's public bank view.
func (u *BankUsecase) GetBank(ctx context.Context, address string) (*entities.Bank, error) {
	address, err := u.guard.NormalizeActor(address)
	if err != nil {
		return nil, err
	}

	bank, err := u.bankRepo.GetByAddress(ctx, address)
	if err != nil {
		return nil, err
	}

	requests, err := u.requestRepo.ListByBank(ctx, bank.Address)
	if err != nil {
		return nil, err
	}
	for _, req := range requests {
		bank.RequestList = append(bank.RequestList, req.KycID)
	}

	grants, err := u.grantRepo.ListByBank(ctx, bank.Address, true)
	if err != nil {
		return nil, err
	}
	for _, grant := range grants {
		bank.Approvals = append(bank.Approvals, grant.KycID)
	}

	return bank, nil
}

// ListBanks returns the public bank listing
func (u *BankUsecase) ListBanks(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Bank, int64, error) {
	return u.bankRepo.List(ctx, pagination)
}

// BankCount returns the number of registered banks
func (u *BankUsecase) BankCount(ctx context.Context) (int64, error) {
	return u.bankRepo.Count(ctx)
}
