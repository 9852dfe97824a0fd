package usecases_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"kyc-chain.backend/internal/domain/entities"
	"kyc-chain.backend/pkg/utils"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(context.Context) error) error {
	m.Called(ctx, fn)
	return fn(ctx)
}

// Mock RoleRepository
type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) GetOwner(ctx context.Context) (*entities.Owner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Owner), args.Error(1)
}

func (m *MockRoleRepository) SetOwner(ctx context.Context, address string) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *MockRoleRepository) AddAdmin(ctx context.Context, admin *entities.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockRoleRepository) RemoveAdmin(ctx context.Context, address string) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *MockRoleRepository) IsAdmin(ctx context.Context, address string) (bool, error) {
	args := m.Called(ctx, address)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoleRepository) ListAdmins(ctx context.Context) ([]*entities.Admin, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Admin), args.Error(1)
}

// Mock BankRepository
type MockBankRepository struct {
	mock.Mock
}

func (m *MockBankRepository) Create(ctx context.Context, bank *entities.Bank) error {
	args := m.Called(ctx, bank)
	return args.Error(0)
}

func (m *MockBankRepository) GetByAddress(ctx context.Context, address string) (*entities.Bank, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Bank), args.Error(1)
}

func (m *MockBankRepository) SetApproval(ctx context.Context, address string, approved bool) error {
	args := m.Called(ctx, address, approved)
	return args.Error(0)
}

func (m *MockBankRepository) List(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Bank, int64, error) {
	args := m.Called(ctx, pagination)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Bank), args.Get(1).(int64), args.Error(2)
}

func (m *MockBankRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *entities.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) GetByKycID(ctx context.Context, kycID string) (*entities.Customer, error) {
	args := m.Called(ctx, kycID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByPAN(ctx context.Context, pan string) (*entities.Customer, error) {
	args := m.Called(ctx, pan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Customer), args.Error(1)
}

func (m *MockCustomerRepository) UpdateStatus(ctx context.Context, kycID string, status entities.KycStatus) error {
	args := m.Called(ctx, kycID, status)
	return args.Error(0)
}

func (m *MockCustomerRepository) List(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Customer, int64, error) {
	args := m.Called(ctx, pagination)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Customer), args.Get(1).(int64), args.Error(2)
}

func (m *MockCustomerRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock RecordRepository
type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) Append(ctx context.Context, record *entities.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRecordRepository) ListByKycID(ctx context.Context, kycID string) ([]*entities.Record, error) {
	args := m.Called(ctx, kycID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Record), args.Error(1)
}

func (m *MockRecordRepository) CountByKycID(ctx context.Context, kycID string) (int64, error) {
	args := m.Called(ctx, kycID)
	return args.Get(0).(int64), args.Error(1)
}

// Mock AccessRequestRepository
type MockAccessRequestRepository struct {
	mock.Mock
}

func (m *MockAccessRequestRepository) Create(ctx context.Context, request *entities.AccessRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockAccessRequestRepository) Delete(ctx context.Context, bankAddress, kycID string) error {
	args := m.Called(ctx, bankAddress, kycID)
	return args.Error(0)
}

func (m *MockAccessRequestRepository) Exists(ctx context.Context, bankAddress, kycID string) (bool, error) {
	args := m.Called(ctx, bankAddress, kycID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccessRequestRepository) ListByBank(ctx context.Context, bankAddress string) ([]*entities.AccessRequest, error) {
	args := m.Called(ctx, bankAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.AccessRequest), args.Error(1)
}

func (m *MockAccessRequestRepository) ListPending(ctx context.Context) ([]*entities.AccessRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.AccessRequest), args.Error(1)
}

// Mock GrantRepository
type MockGrantRepository struct {
	mock.Mock
}

func (m *MockGrantRepository) Get(ctx context.Context, bankAddress, kycID string) (*entities.Grant, error) {
	args := m.Called(ctx, bankAddress, kycID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Grant), args.Error(1)
}

func (m *MockGrantRepository) Upsert(ctx context.Context, grant *entities.Grant) error {
	args := m.Called(ctx, grant)
	return args.Error(0)
}

func (m *MockGrantRepository) Deactivate(ctx context.Context, bankAddress, kycID string) error {
	args := m.Called(ctx, bankAddress, kycID)
	return args.Error(0)
}

func (m *MockGrantRepository) IsActive(ctx context.Context, bankAddress, kycID string) (bool, error) {
	args := m.Called(ctx, bankAddress, kycID)
	return args.Bool(0), args.Error(1)
}

func (m *MockGrantRepository) ListByBank(ctx context.Context, bankAddress string, activeOnly bool) ([]*entities.Grant, error) {
	args := m.Called(ctx, bankAddress, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Grant), args.Error(1)
}

func (m *MockGrantRepository) ListByKycID(ctx context.Context, kycID string) ([]*entities.Grant, error) {
	args := m.Called(ctx, kycID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Grant), args.Error(1)
}

// Mock HistoryRepository
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) Append(ctx context.Context, entry *entities.HistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockHistoryRepository) ListByKycID(ctx context.Context, kycID string) ([]*entities.HistoryEntry, error) {
	args := m.Called(ctx, kycID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.HistoryEntry), args.Error(1)
}

func (m *MockHistoryRepository) CountByKycID(ctx context.Context, kycID string) (int64, error) {
	args := m.Called(ctx, kycID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHistoryRepository) GetLatest(ctx context.Context, kycID string) (*entities.HistoryEntry, error) {
	args := m.Called(ctx, kycID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.HistoryEntry), args.Error(1)
}

func (m *MockHistoryRepository) ListKycIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
