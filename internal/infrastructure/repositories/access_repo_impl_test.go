package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kyc-chain.backend/internal/domain/entities"
	domainerrors "kyc-chain.backend/internal/domain/errors"
	"kyc-chain.backend/internal/infrastructure/repositories"
)

func TestAccessRequestRepo_CreateAndExists(t *testing.T) {
	repo := repositories.NewAccessRequestRepository(newTestDB(t))
	ctx := context.Background()

	ok, err := repo.Exists(ctx, bankAddr, "KYC001")
	require.NoError(t, err)
	assert.False(t, ok)

	request := &entities.AccessRequest{BankAddress: bankAddr, KycID: "KYC001"}
	require.NoError(t, repo.Create(ctx, request))
	assert.NotZero(t, request.ID)

	ok, err = repo.Exists(ctx, bankAddr, "KYC001")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAccessRequestRepo_Create_DuplicatePair(t *testing.T) {
	repo := repositories.NewAccessRequestRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.AccessRequest{BankAddress: bankAddr, KycID: "KYC001"}))
	err := repo.Create(ctx, &entities.AccessRequest{BankAddress: bankAddr, KycID: "KYC001"})
	assert.ErrorIs(t, err, domainerrors.ErrRequestExists)

	// Same customer from a different bank is a distinct pair
	require.NoError(t, repo.Create(ctx, &entities.AccessRequest{BankAddress: secondBank, KycID: "KYC001"}))
}

func TestAccessRequestRepo_Delete(t *testing.T) {
	repo := repositories.NewAccessRequestRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.AccessRequest{BankAddress: bankAddr, KycID: "KYC001"}))
	require.NoError(t, repo.Delete(ctx, bankAddr, "KYC001"))

	ok, err := repo.Exists(ctx, bankAddr, "KYC001")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent pair is not an error
	require.NoError(t, repo.Delete(ctx, bankAddr, "KYC001"))
}

func TestAccessRequestRepo_Listing(t *testing.T) {
	repo := repositories.NewAccessRequestRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.AccessRequest{BankAddress: bankAddr, KycID: "KYC001"}))
	require.NoError(t, repo.Create(ctx, &entities.AccessRequest{BankAddress: bankAddr, KycID: "KYC002"}))
	require.NoError(t, repo.Create(ctx, &entities.AccessRequest{BankAddress: secondBank, KycID: "KYC001"}))

	byBank, err := repo.ListByBank(ctx, bankAddr)
	require.NoError(t, err)
	require.Len(t, byBank, 2)
	assert.Equal(t, "KYC001", byBank[0].KycID)
	assert.Equal(t, "KYC002", byBank[1].KycID)

	pending, err := repo.ListPending(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 3)
}

func TestGrantRepo_UpsertCreatesThenReactivates(t *testing.T) {
	repo := repositories.NewGrantRepository(newTestDB(t))
	ctx := context.Background()

	grant := &entities.Grant{BankAddress: bankAddr, KycID: "KYC001", IsAuthorized: true}
	require.NoError(t, repo.Upsert(ctx, grant))
	firstID := grant.ID
	require.NotZero(t, firstID)

	active, err := repo.IsActive(ctx, bankAddr, "KYC001")
	require.NoError(t, err)
	assert.True(t, active)

	require.NoError(t, repo.Deactivate(ctx, bankAddr, "KYC001"))
	active, err = repo.IsActive(ctx, bankAddr, "KYC001")
	require.NoError(t, err)
	assert.False(t, active)

	// Re-granting flips the existing row back on instead of inserting
	require.NoError(t, repo.Upsert(ctx, &entities.Grant{BankAddress: bankAddr, KycID: "KYC001", IsAuthorized: true}))

	rows, err := repo.ListByKycID(ctx, "KYC001")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, firstID, rows[0].ID)
	assert.True(t, rows[0].IsAuthorized)
}

func TestGrantRepo_Deactivate_NoRow(t *testing.T) {
	repo := repositories.NewGrantRepository(newTestDB(t))
	assert.ErrorIs(t, repo.Deactivate(context.Background(), bankAddr, "KYC001"), domainerrors.ErrNotFound)
}

func TestGrantRepo_Get(t *testing.T) {
	repo := repositories.NewGrantRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Get(ctx, bankAddr, "KYC001")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	require.NoError(t, repo.Upsert(ctx, &entities.Grant{BankAddress: bankAddr, KycID: "KYC001", IsAuthorized: true}))
	got, err := repo.Get(ctx, bankAddr, "KYC001")
	require.NoError(t, err)
	assert.Equal(t, bankAddr, got.BankAddress)
	assert.True(t, got.IsAuthorized)
}

func TestGrantRepo_ListByBank_ActiveOnly(t *testing.T) {
	repo := repositories.NewGrantRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &entities.Grant{BankAddress: bankAddr, KycID: "KYC001", IsAuthorized: true}))
	require.NoError(t, repo.Upsert(ctx, &entities.Grant{BankAddress: bankAddr, KycID: "KYC002", IsAuthorized: true}))
	require.NoError(t, repo.Deactivate(ctx, bankAddr, "KYC002"))

	all, err := repo.ListByBank(ctx, bankAddr, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := repo.ListByBank(ctx, bankAddr, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "KYC001", active[0].KycID)
}
