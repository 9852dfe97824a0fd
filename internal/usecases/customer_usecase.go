package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"kyc-chain.backend/internal/domain/entities"
	domainerrors "kyc-chain.backend/internal/domain/errors"
	"kyc-chain.backend/internal/domain/repositories"
	"kyc-chain.backend/pkg/logger"
	"kyc-chain.backend/pkg/metrics"
	"kyc-chain.backend/pkg/utils"
)

// Seed record types for the two documents supplied at onboarding
const (
	recordTypeIdentityProof = "Identity Proof"
	recordTypeAddressProof  = "Address Proof"
)

// CustomerUsecase manages the customer registry and its document records
type CustomerUsecase struct {
	customerRepo repositories.CustomerRepository
	recordRepo   repositories.RecordRepository
	guard        *AccessControl
	uow          repositories.UnitOfWork
	locks        *KeyedMutex
	metrics      *metrics.Metrics
}

// NewCustomerUsecase creates a new customer usecase
func NewCustomerUsecase(
	customerRepo repositories.CustomerRepository,
	recordRepo repositories.RecordRepository,
	guard *AccessControl,
	uow repositories.UnitOfWork,
	locks *KeyedMutex,
	m *metrics.Metrics,
) *CustomerUsecase {
	return &CustomerUsecase{
		customerRepo: customerRepo,
		recordRepo:   recordRepo,
		guard:        guard,
		uow:          uow,
		locks:        locks,
		metrics:      m,
	}
}

// AddCustomer onboards a customer with status Pending and seeds the record
// store with the two supplied document hashes. Admin only; kycId and pan
// must both be globally unique, checked inside one transaction.
func (u *CustomerUsecase) AddCustomer(ctx context.Context, actor string, input *entities.AddCustomerInput) (customer *entities.Customer, err error) {
	defer func() { u.metrics.Observe("addCustomer", err) }()

	actor, err = u.guard.NormalizeActor(actor)
	if err != nil {
		return nil, err
	}

	if err := u.guard.RequireAdmin(ctx, actor); err != nil {
		return nil, err
	}

	customer = &entities.Customer{
		KycID:          input.KycID,
		Name:           input.Name,
		PAN:            input.PAN,
		Status:         entities.KycStatusPending,
		CredentialHash: input.CredentialHash,
	}
	if input.Email != "" {
		customer.Email = null.StringFrom(input.Email)
	}
	if input.Phone != "" {
		customer.Phone = null.StringFrom(input.Phone)
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if _, err := u.customerRepo.GetByKycID(txCtx, input.KycID); err == nil {
			return domainerrors.Conflict("kycId already exists", domainerrors.ErrAlreadyExists)
		} else if !errors.Is(err, domainerrors.ErrNotFound) {
			return err
		}

		if _, err := u.customerRepo.GetByPAN(txCtx, input.PAN); err == nil {
			return domainerrors.Conflict("pan already exists", domainerrors.ErrAlreadyExists)
		} else if !errors.Is(err, domainerrors.ErrNotFound) {
			return err
		}

		if err := u.customerRepo.Create(txCtx, customer); err != nil {
			return err
		}

		now := time.Now()
		seeds := []*entities.Record{
			{KycID: input.KycID, RecordType: recordTypeIdentityProof, DocumentHash: input.Doc1Hash, Timestamp: now},
			{KycID: input.KycID, RecordType: recordTypeAddressProof, DocumentHash: input.Doc2Hash, Timestamp: now},
		}
		for _, record := range seeds {
			if err := u.recordRepo.Append(txCtx, record); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "customer onboarded",
		zap.String("kyc_id", customer.KycID),
		zap.String("by", actor),
	)
	return customer, nil
}

// AddRecord appends a document reference to a customer. Admin only.
func (u *CustomerUsecase) AddRecord(ctx context.Context, actor, kycID string, input *entities.AddRecordInput) (record *entities.Record, err error) {
	defer func() { u.metrics.Observe("addRecord", err) }()

	actor, err = u.guard.NormalizeActor(actor)
	if err != nil {
		return nil, err
	}

	if err := u.guard.RequireAdmin(ctx, actor); err != nil {
		return nil, err
	}

	u.locks.Lock(kycID)
	defer u.locks.Unlock(kycID)

	if _, err := u.customerRepo.GetByKycID(ctx, kycID); err != nil {
		return nil, err
	}

	record = &entities.Record{
		KycID:        kycID,
		RecordType:   input.RecordType,
		DocumentHash: input.DocumentHash,
		Timestamp:    time.Now(),
	}
	if err := u.recordRepo.Append(ctx, record); err != nil {
		return nil, err
	}

	logger.Info(ctx, "record appended",
		zap.String("kyc_id", kycID),
		zap.String("record_type", record.RecordType),
		zap.String("by", actor),
	)
	return record, nil
}

// GetCustomer returns a customer by KYC id
func (u *CustomerUsecase) GetCustomer(ctx context.Context, kycID string) (*entities.Customer, error) {
	return u.customerRepo.GetByKycID(ctx, kycID)
}

// ListCustomers returns the public customer listing
func (u *CustomerUsecase) ListCustomers(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Customer, int64, error) {
	return u.customerRepo.List(ctx, pagination)
}

// CustomerCount returns the number of customers
func (u *CustomerUsecase) CustomerCount(ctx context.Context) (int64, error) {
	return u.customerRepo.Count(ctx)
}

// ListRecords returns a customer's full record sequence. Record hashes are
// not sensitive; the documents behind them live in an external store.
func (u *CustomerUsecase) ListRecords(ctx context.Context, kycID string) ([]*entities.Record, error) {
	if _, err := u.customerRepo.GetByKycID(ctx, kycID); err != nil {
		return nil, err
	}
	return u.recordRepo.ListByKycID(ctx, kycID)
}

// RecordCount returns the number of records for a customer
func (u *CustomerUsecase) RecordCount(ctx context.Context, kycID string) (int64, error) {
	if _, err := u.customerRepo.GetByKycID(ctx, kycID); err != nil {
		return 0, err
	}
	return u.recordRepo.CountByKycID(ctx, kycID)
}
