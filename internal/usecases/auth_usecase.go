package usecases

import (
	"context"
	"errors"
	"time"

	"kyc-chain.backend/internal/domain/entities"
	domainerrors "kyc-chain.backend/internal/domain/errors"
	"kyc-chain.backend/pkg/crypto"
	"kyc-chain.backend/pkg/jwt"
	"kyc-chain.backend/pkg/redis"
)

// AuthUsecase issues wallet-login challenges and exchanges signed
// challenges for session tokens. Identity is the wallet address itself;
// there is no password store.
type AuthUsecase struct {
	nonces     *redis.NonceStore
	jwtService *jwt.JWTService
	guard      *AccessControl
}

// AuthResponse is the result of a successful login
type AuthResponse struct {
	AccessToken string        `json:"accessToken"`
	Address     string        `json:"address"`
	Role        entities.Role `json:"role"`
	ExpiresAt   time.Time     `json:"expiresAt"`
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(nonces *redis.NonceStore, jwtService *jwt.JWTService, guard *AccessControl) *AuthUsecase {
	return &AuthUsecase{
		nonces:     nonces,
		jwtService: jwtService,
		guard:      guard,
	}
}

// Challenge issues a single-use message the wallet must sign to log in.
func (u *AuthUsecase) Challenge(ctx context.Context, address string) (string, error) {
	normalized, err := u.guard.NormalizeActor(address)
	if err != nil {
		return "", err
	}

	return u.nonces.Issue(ctx, normalized)
}

// Login verifies a personal_sign signature over the issued challenge and
// returns a session token carrying the caller's current role. The nonce
// is consumed on success so a captured signature cannot be replayed.
func (u *AuthUsecase) Login(ctx context.Context, address, message, signature string) (*AuthResponse, error) {
	normalized, err := u.guard.NormalizeActor(address)
	if err != nil {
		return nil, err
	}

	if err := u.nonces.Consume(ctx, normalized, message); err != nil {
		if errors.Is(err, redis.ErrNonceNotFound) {
			return nil, domainerrors.ErrTokenExpired
		}
		return nil, err
	}

	if err := crypto.VerifyPersonalSign(message, signature, normalized); err != nil {
		return nil, domainerrors.ErrInvalidSignature
	}

	role, err := u.guard.ResolveRole(ctx, normalized)
	if err != nil {
		return nil, err
	}

	token, err := u.jwtService.GenerateToken(normalized, string(role))
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		AccessToken: token,
		Address:     normalized,
		Role:        role,
		ExpiresAt:   time.Now().Add(u.jwtService.Expiry()),
	}, nil
}
