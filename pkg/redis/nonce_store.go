package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"kyc-chain.backend/pkg/crypto"
)

// ErrNonceNotFound is returned when the nonce is missing or already consumed
var ErrNonceNotFound = errors.New("login nonce not found")

const noncePrefix = "login_nonce:"

// NonceStore issues one-shot login challenges for wallet-signature
// authentication. A nonce is bound to the requesting address and consumed
// on first use.
type NonceStore struct {
	ttl time.Duration
}

var (
	setNonceValue = Set
	getNonceValue = Get
	delNonceValue = Del
)

// NewNonceStore creates a nonce store with the given challenge TTL
func NewNonceStore(ttl time.Duration) *NonceStore {
	return &NonceStore{ttl: ttl}
}

// Issue creates a new challenge for the address and returns the message the
// wallet must sign.
func (s *NonceStore) Issue(ctx context.Context, address string) (string, error) {
	nonce, err := crypto.GenerateRandomToken(16)
	if err != nil {
		return "", err
	}

	if err := setNonceValue(ctx, noncePrefix+address, nonce, s.ttl); err != nil {
		return "", err
	}

	return s.Message(address, nonce), nil
}

// Consume validates that message matches the stored challenge for address
// and removes it.
func (s *NonceStore) Consume(ctx context.Context, address, message string) error {
	nonce, err := getNonceValue(ctx, noncePrefix+address)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return ErrNonceNotFound
		}
		return err
	}

	if s.Message(address, nonce) != message {
		return ErrNonceNotFound
	}

	return delNonceValue(ctx, noncePrefix+address)
}

// Message renders the canonical sign-in message for a nonce
func (s *NonceStore) Message(address, nonce string) string {
	return fmt.Sprintf("KYC Registry sign-in\nAddress: %s\nNonce: %s", address, nonce)
}
