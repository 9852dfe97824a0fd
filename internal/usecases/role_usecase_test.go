package usecases_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"kyc-chain.backend/internal/domain/entities"
	domainerrors "kyc-chain.backend/internal/domain/errors"
	"kyc-chain.backend/internal/usecases"
)

// Hardhat demo accounts, already EIP-55 checksummed
const (
	ownerAddr  = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	adminAddr  = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	bankAddr   = "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC"
	otherAddr  = "0x90F79bf6EB2c4f870365E785982E1f101E93b906"
	strayAddr  = "0x15d34AAf54267DB7D7c367839AAf71A00a2C6A65"
	secondBank = "0x9965507D1a55bcC2695C58ba16FB37d819B0A4dc"
)

func newRoleFixture() (*MockRoleRepository, *usecases.RoleUsecase) {
	roleRepo := new(MockRoleRepository)
	guard := usecases.NewAccessControl(roleRepo, new(MockBankRepository), new(MockGrantRepository))
	return roleRepo, usecases.NewRoleUsecase(roleRepo, guard, nil)
}

func TestRoleUsecase_AddAdmin(t *testing.T) {
	roleRepo, uc := newRoleFixture()
	ctx := context.Background()

	roleRepo.On("GetOwner", ctx).Return(&entities.Owner{Address: ownerAddr}, nil)
	roleRepo.On("IsAdmin", ctx, adminAddr).Return(false, nil).Once()
	roleRepo.On("AddAdmin", ctx, &entities.Admin{Address: adminAddr, AddedBy: ownerAddr}).Return(nil).Once()

	admin, err := uc.AddAdmin(ctx, ownerAddr, adminAddr)
	assert.NoError(t, err)
	assert.Equal(t, adminAddr, admin.Address)
	assert.Equal(t, ownerAddr, admin.AddedBy)
	roleRepo.AssertExpectations(t)
}

func TestRoleUsecase_AddAdmin_NotOwner(t *testing.T) {
	roleRepo, uc := newRoleFixture()
	ctx := context.Background()

	roleRepo.On("GetOwner", ctx).Return(&entities.Owner{Address: ownerAddr}, nil)

	_, err := uc.AddAdmin(ctx, adminAddr, otherAddr)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	roleRepo.AssertNotCalled(t, "AddAdmin")
}

func TestRoleUsecase_AddAdmin_AlreadyAdmin(t *testing.T) {
	roleRepo, uc := newRoleFixture()
	ctx := context.Background()

	roleRepo.On("GetOwner", ctx).Return(&entities.Owner{Address: ownerAddr}, nil)
	roleRepo.On("IsAdmin", ctx, adminAddr).Return(true, nil).Once()

	_, err := uc.AddAdmin(ctx, ownerAddr, adminAddr)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestRoleUsecase_AddAdmin_InvalidAddress(t *testing.T) {
	_, uc := newRoleFixture()

	_, err := uc.AddAdmin(context.Background(), ownerAddr, "not-an-address")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAddress)
}

func TestRoleUsecase_RemoveAdmin(t *testing.T) {
	roleRepo, uc := newRoleFixture()
	ctx := context.Background()

	roleRepo.On("GetOwner", ctx).Return(&entities.Owner{Address: ownerAddr}, nil)
	roleRepo.On("RemoveAdmin", ctx, adminAddr).Return(nil).Once()

	err := uc.RemoveAdmin(ctx, ownerAddr, adminAddr)
	assert.NoError(t, err)
	roleRepo.AssertExpectations(t)
}

func TestRoleUsecase_RemoveAdmin_NotOwner(t *testing.T) {
	roleRepo, uc := newRoleFixture()
	ctx := context.Background()

	roleRepo.On("GetOwner", ctx).Return(&entities.Owner{Address: ownerAddr}, nil)

	err := uc.RemoveAdmin(ctx, strayAddr, adminAddr)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	roleRepo.AssertNotCalled(t, "RemoveAdmin")
}

func TestRoleUsecase_TransferOwner(t *testing.T) {
	roleRepo, uc := newRoleFixture()
	ctx := context.Background()

	roleRepo.On("GetOwner", ctx).Return(&entities.Owner{Address: ownerAddr}, nil)
	roleRepo.On("SetOwner", ctx, otherAddr).Return(nil).Once()

	err := uc.TransferOwner(ctx, ownerAddr, otherAddr)
	assert.NoError(t, err)
	roleRepo.AssertExpectations(t)
}

func TestRoleUsecase_Bootstrap_FreshRegistry(t *testing.T) {
	roleRepo, uc := newRoleFixture()
	ctx := context.Background()

	roleRepo.On("GetOwner", ctx).Return(nil, domainerrors.ErrNotFound).Once()
	roleRepo.On("SetOwner", ctx, ownerAddr).Return(nil).Once()

	err := uc.Bootstrap(ctx, ownerAddr)
	assert.NoError(t, err)
	roleRepo.AssertExpectations(t)
}

func TestRoleUsecase_Bootstrap_ExistingOwnerWins(t *testing.T) {
	roleRepo, uc := newRoleFixture()
	ctx := context.Background()

	roleRepo.On("GetOwner", ctx).Return(&entities.Owner{Address: otherAddr}, nil).Once()

	err := uc.Bootstrap(ctx, ownerAddr)
	assert.NoError(t, err)
	roleRepo.AssertNotCalled(t, "SetOwner")
}
