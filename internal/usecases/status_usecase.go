package usecases

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"kyc-chain.backend/internal/domain/entities"
	domainerrors "kyc-chain.backend/internal/domain/errors"
	"kyc-chain.backend/internal/domain/repositories"
	"kyc-chain.backend/pkg/logger"
	"kyc-chain.backend/pkg/metrics"
)

// StatusUsecase drives the KYC status state machine and its tamper-evident
// history log.
type StatusUsecase struct {
	customerRepo repositories.CustomerRepository
	historyRepo  repositories.HistoryRepository
	guard        *AccessControl
	uow          repositories.UnitOfWork
	locks        *KeyedMutex
	metrics      *metrics.Metrics
}

// NewStatusUsecase creates a new status usecase
func NewStatusUsecase(
	customerRepo repositories.CustomerRepository,
	historyRepo repositories.HistoryRepository,
	guard *AccessControl,
	uow repositories.UnitOfWork,
	locks *KeyedMutex,
	m *metrics.Metrics,
) *StatusUsecase {
	return &StatusUsecase{
		customerRepo: customerRepo,
		historyRepo:  historyRepo,
		guard:        guard,
		uow:          uow,
		locks:        locks,
		metrics:      m,
	}
}

// UpdateStatus records a verdict against a customer. The caller must be an
// authorized, approved bank for that customer or an admin acting as
// override. The verdict must be reachable from the current status; Revoked
// is terminal and re-affirming the current verdict is rejected. On success
// one history entry is appended and the customer status moves to verdict,
// atomically.
func (u *StatusUsecase) UpdateStatus(ctx context.Context, actor, kycID string, input *entities.UpdateStatusInput) (entry *entities.HistoryEntry, err error) {
	defer func() { u.metrics.Observe("updateStatus", err) }()

	actor, err = u.guard.NormalizeActor(actor)
	if err != nil {
		return nil, err
	}

	if !input.Verdict.Valid() {
		return nil, domainerrors.ErrInvalidInput
	}

	u.locks.Lock(kycID)
	defer u.locks.Unlock(kycID)

	customer, err := u.customerRepo.GetByKycID(ctx, kycID)
	if err != nil {
		return nil, err
	}

	isAdmin, err := u.guard.IsAdmin(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		if _, err := u.guard.RequireBankAuthorized(ctx, actor, kycID); err != nil {
			return nil, err
		}
	}

	if !customer.Status.CanTransitionTo(input.Verdict) {
		return nil, domainerrors.ErrInvalidTransition
	}

	prevHash := GenesisHash
	latest, err := u.historyRepo.GetLatest(ctx, kycID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if latest != nil {
		prevHash = latest.EntryHash
	}

	entry = &entities.HistoryEntry{
		KycID:          kycID,
		BankName:       input.BankName,
		Remarks:        input.Remarks,
		Verdict:        input.Verdict,
		CredentialHash: input.CredentialHash,
		Timestamp:      time.Unix(input.Timestamp, 0).UTC(),
		PrevHash:       prevHash,
	}
	entry.EntryHash = ComputeEntryHash(prevHash, entry)

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.historyRepo.Append(txCtx, entry); err != nil {
			return err
		}
		return u.customerRepo.UpdateStatus(txCtx, kycID, input.Verdict)
	})
	if err != nil {
		return nil, err
	}

	if u.metrics != nil {
		u.metrics.HistoryEntriesTotal.Inc()
	}

	logger.Info(ctx, "kyc status updated",
		zap.String("kyc_id", kycID),
		zap.String("from", customer.Status.String()),
		zap.String("to", input.Verdict.String()),
		zap.String("by", actor),
	)
	return entry, nil
}

// ListHistory returns a customer's verdict log. Admins see every log; a
// bank must be approved and hold an active grant for the customer.
func (u *StatusUsecase) ListHistory(ctx context.Context, actor, kycID string) ([]*entities.HistoryEntry, error) {
	actor, err := u.guard.NormalizeActor(actor)
	if err != nil {
		return nil, err
	}

	if _, err := u.customerRepo.GetByKycID(ctx, kycID); err != nil {
		return nil, err
	}

	isAdmin, err := u.guard.IsAdmin(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		if _, err := u.guard.RequireBankAuthorized(ctx, actor, kycID); err != nil {
			return nil, err
		}
	}

	return u.historyRepo.ListByKycID(ctx, kycID)
}

// HistoryCount returns the history length for a customer
func (u *StatusUsecase) HistoryCount(ctx context.Context, actor, kycID string) (int64, error) {
	actor, err := u.guard.NormalizeActor(actor)
	if err != nil {
		return 0, err
	}

	if _, err := u.customerRepo.GetByKycID(ctx, kycID); err != nil {
		return 0, err
	}

	isAdmin, err := u.guard.IsAdmin(ctx, actor)
	if err != nil {
		return 0, err
	}
	if !isAdmin {
		if _, err := u.guard.RequireBankAuthorized(ctx, actor, kycID); err != nil {
			return 0, err
		}
	}

	return u.historyRepo.CountByKycID(ctx, kycID)
}

// VerifyHistory recomputes the hash chain for one customer and returns the
// index of the first broken entry, or -1 when intact.
func (u *StatusUsecase) VerifyHistory(ctx context.Context, kycID string) (int, error) {
	entries, err := u.historyRepo.ListByKycID(ctx, kycID)
	if err != nil {
		return 0, err
	}
	return VerifyChain(entries), nil
}

// HistoryKycIDs lists the customers that have at least one history entry
func (u *StatusUsecase) HistoryKycIDs(ctx context.Context) ([]string, error) {
	return u.historyRepo.ListKycIDs(ctx)
}
