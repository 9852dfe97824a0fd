package usecases_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"kyc-chain.backend/internal/domain/entities"
	domainerrors "kyc-chain.backend/internal/domain/errors"
	"kyc-chain.backend/internal/usecases"
)

type customerFixture struct {
	roleRepo     *MockRoleRepository
	customerRepo *MockCustomerRepository
	recordRepo   *MockRecordRepository
	uow          *MockUnitOfWork
	uc           *usecases.CustomerUsecase
}

func newCustomerFixture() *customerFixture {
	f := &customerFixture{
		roleRepo:     new(MockRoleRepository),
		customerRepo: new(MockCustomerRepository),
		recordRepo:   new(MockRecordRepository),
		uow:          new(MockUnitOfWork),
	}
	guard := usecases.NewAccessControl(f.roleRepo, new(MockBankRepository), new(MockGrantRepository))
	f.uc = usecases.NewCustomerUsecase(f.customerRepo, f.recordRepo, guard, f.uow, usecases.NewKeyedMutex(), nil)
	return f
}

func aliceInput() *entities.AddCustomerInput {
	return &entities.AddCustomerInput{
		Name:           "Alice Johnson",
		PAN:            "ABCDE1234F",
		KycID:          "KYC001",
		Doc1Hash:       "QmX1abc...def123",
		Doc2Hash:       "QmY2def...ghi456",
		CredentialHash: "0x0000000000000000000000000000000000000000000000000000000000000000",
	}
}

func TestCustomerUsecase_AddCustomer(t *testing.T) {
	f := newCustomerFixture()
	ctx := context.Background()

	f.roleRepo.On("IsAdmin", ctx, adminAddr).Return(true, nil)
	f.uow.On("Do", ctx, mock.Anything).Return(nil)
	f.customerRepo.On("GetByKycID", ctx, "KYC001").Return(nil, domainerrors.ErrNotFound).Once()
	f.customerRepo.On("GetByPAN", ctx, "ABCDE1234F").Return(nil, domainerrors.ErrNotFound).Once()
	f.customerRepo.On("Create", ctx, mock.AnythingOfType("*entities.Customer")).Return(nil).Once()
	f.recordRepo.On("Append", ctx, mock.AnythingOfType("*entities.Record")).Return(nil).Twice()

	customer, err := f.uc.AddCustomer(ctx, adminAddr, aliceInput())
	assert.NoError(t, err)
	assert.Equal(t, entities.KycStatusPending, customer.Status)
	assert.Equal(t, "KYC001", customer.KycID)
	assert.False(t, customer.Email.Valid)
	f.customerRepo.AssertExpectations(t)
	f.recordRepo.AssertNumberOfCalls(t, "Append", 2)
}

func TestCustomerUsecase_AddCustomer_WithContactDetails(t *testing.T) {
	f := newCustomerFixture()
	ctx := context.Background()

	f.roleRepo.On("IsAdmin", ctx, adminAddr).Return(true, nil)
	f.uow.On("Do", ctx, mock.Anything).Return(nil)
	f.customerRepo.On("GetByKycID", ctx, "KYC001").Return(nil, domainerrors.ErrNotFound).Once()
	f.customerRepo.On("GetByPAN", ctx, "ABCDE1234F").Return(nil, domainerrors.ErrNotFound).Once()
	f.customerRepo.On("Create", ctx, mock.AnythingOfType("*entities.Customer")).Return(nil).Once()
	f.recordRepo.On("Append", ctx, mock.AnythingOfType("*entities.Record")).Return(nil).Twice()

	input := aliceInput()
	input.Email = "alice@example.com"
	input.Phone = "+911234567890"

	customer, err := f.uc.AddCustomer(ctx, adminAddr, input)
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", customer.Email.String)
	assert.Equal(t, "+911234567890", customer.Phone.String)
}

func TestCustomerUsecase_AddCustomer_DuplicateKycID(t *testing.T) {
	f := newCustomerFixture()
	ctx := context.Background()

	f.roleRepo.On("IsAdmin", ctx, adminAddr).Return(true, nil)
	f.uow.On("Do", ctx, mock.Anything).Return(nil)
	f.customerRepo.On("GetByKycID", ctx, "KYC001").Return(&entities.Customer{KycID: "KYC001"}, nil).Once()

	_, err := f.uc.AddCustomer(ctx, adminAddr, aliceInput())
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
	var appErr *domainerrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, "kycId already exists", appErr.Message)
	f.customerRepo.AssertNotCalled(t, "Create")
}

func TestCustomerUsecase_AddCustomer_DuplicatePAN(t *testing.T) {
	f := newCustomerFixture()
	ctx := context.Background()

	f.roleRepo.On("IsAdmin", ctx, adminAddr).Return(true, nil)
	f.uow.On("Do", ctx, mock.Anything).Return(nil)
	f.customerRepo.On("GetByKycID", ctx, "KYC001").Return(nil, domainerrors.ErrNotFound).Once()
	f.customerRepo.On("GetByPAN", ctx, "ABCDE1234F").Return(&entities.Customer{KycID: "KYC009"}, nil).Once()

	_, err := f.uc.AddCustomer(ctx, adminAddr, aliceInput())
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
	var appErr *domainerrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, "pan already exists", appErr.Message)
	f.customerRepo.AssertNotCalled(t, "Create")
}

func TestCustomerUsecase_AddCustomer_NotAdmin(t *testing.T) {
	f := newCustomerFixture()
	ctx := context.Background()

	f.roleRepo.On("IsAdmin", ctx, strayAddr).Return(false, nil)

	_, err := f.uc.AddCustomer(ctx, strayAddr, aliceInput())
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestCustomerUsecase_AddRecord(t *testing.T) {
	f := newCustomerFixture()
	ctx := context.Background()

	f.roleRepo.On("IsAdmin", ctx, adminAddr).Return(true, nil)
	f.customerRepo.On("GetByKycID", ctx, "KYC001").Return(&entities.Customer{KycID: "KYC001"}, nil).Once()
	f.recordRepo.On("Append", ctx, mock.AnythingOfType("*entities.Record")).Return(nil).Once()

	record, err := f.uc.AddRecord(ctx, adminAddr, "KYC001", &entities.AddRecordInput{
		RecordType:   "Financial Statement",
		DocumentHash: "QmC6pqr...stu678",
	})
	assert.NoError(t, err)
	assert.Equal(t, "KYC001", record.KycID)
	assert.Equal(t, "Financial Statement", record.RecordType)
}

func TestCustomerUsecase_AddRecord_UnknownCustomer(t *testing.T) {
	f := newCustomerFixture()
	ctx := context.Background()

	f.roleRepo.On("IsAdmin", ctx, adminAddr).Return(true, nil)
	f.customerRepo.On("GetByKycID", ctx, "KYC404").Return(nil, domainerrors.ErrNotFound).Once()

	_, err := f.uc.AddRecord(ctx, adminAddr, "KYC404", &entities.AddRecordInput{
		RecordType:   "Identity Proof",
		DocumentHash: "Qm...",
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	f.recordRepo.AssertNotCalled(t, "Append")
}

func TestCustomerUsecase_ListRecords_UnknownCustomer(t *testing.T) {
	f := newCustomerFixture()
	ctx := context.Background()

	f.customerRepo.On("GetByKycID", ctx, "KYC404").Return(nil, domainerrors.ErrNotFound).Once()

	_, err := f.uc.ListRecords(ctx, "KYC404")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
