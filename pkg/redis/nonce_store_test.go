package redis

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddr = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"

func withMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	return mr
}

func TestNonceStore_IssueAndConsume(t *testing.T) {
	withMiniredis(t)
	store := NewNonceStore(5 * time.Minute)
	ctx := context.Background()

	message, err := store.Issue(ctx, testAddr)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(message, "KYC Registry sign-in\n"))
	assert.Contains(t, message, testAddr)

	require.NoError(t, store.Consume(ctx, testAddr, message))

	// One-shot: the same challenge cannot be consumed twice
	assert.ErrorIs(t, store.Consume(ctx, testAddr, message), ErrNonceNotFound)
}

func TestNonceStore_WrongMessage(t *testing.T) {
	withMiniredis(t)
	store := NewNonceStore(5 * time.Minute)
	ctx := context.Background()

	_, err := store.Issue(ctx, testAddr)
	require.NoError(t, err)

	err = store.Consume(ctx, testAddr, store.Message(testAddr, "forged-nonce"))
	assert.ErrorIs(t, err, ErrNonceNotFound)
}

func TestNonceStore_NoChallenge(t *testing.T) {
	withMiniredis(t)
	store := NewNonceStore(5 * time.Minute)

	err := store.Consume(context.Background(), testAddr, store.Message(testAddr, "nonce"))
	assert.ErrorIs(t, err, ErrNonceNotFound)
}

func TestNonceStore_Expires(t *testing.T) {
	mr := withMiniredis(t)
	store := NewNonceStore(time.Minute)
	ctx := context.Background()

	message, err := store.Issue(ctx, testAddr)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	assert.ErrorIs(t, store.Consume(ctx, testAddr, message), ErrNonceNotFound)
}

func TestNonceStore_FreshNoncePerChallenge(t *testing.T) {
	withMiniredis(t)
	store := NewNonceStore(5 * time.Minute)
	ctx := context.Background()

	first, err := store.Issue(ctx, testAddr)
	require.NoError(t, err)
	second, err := store.Issue(ctx, testAddr)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	// Re-issuing invalidates the earlier challenge
	assert.ErrorIs(t, store.Consume(ctx, testAddr, first), ErrNonceNotFound)
	require.NoError(t, store.Consume(ctx, testAddr, second))
}
