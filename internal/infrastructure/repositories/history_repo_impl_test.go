package repositories_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kyc-chain.backend/internal/domain/entities"
	domainerrors "kyc-chain.backend/internal/domain/errors"
	domainrepos "kyc-chain.backend/internal/domain/repositories"
	"kyc-chain.backend/internal/infrastructure/repositories"
	"kyc-chain.backend/internal/usecases"
)

func appendEntries(t *testing.T, repo domainrepos.HistoryRepository, kycID string, n int) {
	t.Helper()
	prevHash := usecases.GenesisHash
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		entry := &entities.HistoryEntry{
			KycID:          kycID,
			BankName:       "Global Trust Bank",
			Remarks:        fmt.Sprintf("review %d", i),
			Verdict:        entities.KycStatusAccepted,
			CredentialHash: "0x1100000000000000000000000000000000000000000000000000000000000000",
			Timestamp:      base.Add(time.Duration(i) * time.Minute),
			PrevHash:       prevHash,
		}
		entry.EntryHash = usecases.ComputeEntryHash(prevHash, entry)
		require.NoError(t, repo.Append(context.Background(), entry))
		prevHash = entry.EntryHash
	}
}

func TestHistoryRepo_AppendAndList(t *testing.T) {
	repo := repositories.NewHistoryRepository(newTestDB(t))
	ctx := context.Background()

	appendEntries(t, repo, "KYC001", 3)

	entries, err := repo.ListByKycID(ctx, "KYC001")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, usecases.GenesisHash, entries[0].PrevHash)
	for i := 1; i < len(entries); i++ {
		assert.Equal(t, entries[i-1].EntryHash, entries[i].PrevHash)
	}

	count, err := repo.CountByKycID(ctx, "KYC001")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestHistoryRepo_GetLatest(t *testing.T) {
	repo := repositories.NewHistoryRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.GetLatest(ctx, "KYC001")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	appendEntries(t, repo, "KYC001", 3)

	latest, err := repo.GetLatest(ctx, "KYC001")
	require.NoError(t, err)
	assert.Equal(t, "review 2", latest.Remarks)
}

func TestHistoryRepo_ListKycIDs(t *testing.T) {
	repo := repositories.NewHistoryRepository(newTestDB(t))
	ctx := context.Background()

	appendEntries(t, repo, "KYC002", 2)
	appendEntries(t, repo, "KYC001", 1)

	ids, err := repo.ListKycIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"KYC001", "KYC002"}, ids)
}
