package crypto

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signMessage(t *testing.T, message string) (string, string) {
	t.Helper()
	key, err := ethcrypto.GenerateKey()
	require.NoError(t, err)

	sig, err := ethcrypto.Sign(accounts.TextHash([]byte(message)), key)
	require.NoError(t, err)
	// Match what wallets emit
	sig[64] += 27

	address := ethcrypto.PubkeyToAddress(key.PublicKey).Hex()
	return address, "0x" + hex.EncodeToString(sig)
}

func TestNormalizeAddress(t *testing.T) {
	checksummed := "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

	got, err := NormalizeAddress(checksummed)
	require.NoError(t, err)
	assert.Equal(t, checksummed, got)

	// Lowercase input normalizes to the same checksummed form
	got, err = NormalizeAddress("0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266")
	require.NoError(t, err)
	assert.Equal(t, checksummed, got)

	_, err = NormalizeAddress("not-an-address")
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = NormalizeAddress("0x1234")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestRecoverPersonalSignAddress(t *testing.T) {
	message := "KYC Registry sign-in\nAddress: 0xabc\nNonce: deadbeef"
	address, signature := signMessage(t, message)

	recovered, err := RecoverPersonalSignAddress(message, signature)
	require.NoError(t, err)
	assert.Equal(t, address, recovered)

	// A different message recovers a different address
	recovered, err = RecoverPersonalSignAddress("something else", signature)
	require.NoError(t, err)
	assert.NotEqual(t, address, recovered)
}

func TestRecoverPersonalSignAddress_Malformed(t *testing.T) {
	_, err := RecoverPersonalSignAddress("msg", "0xzz")
	assert.ErrorIs(t, err, ErrInvalidSignature)

	_, err = RecoverPersonalSignAddress("msg", "0x1234")
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyPersonalSign(t *testing.T) {
	message := "challenge"
	address, signature := signMessage(t, message)

	require.NoError(t, VerifyPersonalSign(message, signature, address))

	// Case-insensitive on the expected address
	require.NoError(t, VerifyPersonalSign(message, signature, strings.ToLower(address)))

	otherAddr, _ := signMessage(t, message)
	assert.ErrorIs(t, VerifyPersonalSign(message, signature, otherAddr), ErrInvalidSignature)
}

func TestAPIKeyHashing(t *testing.T) {
	key, err := GenerateAPIKey()
	require.NoError(t, err)
	assert.Len(t, key, 64)

	hash, err := HashAPIKey(key)
	require.NoError(t, err)
	assert.NotEqual(t, key, hash)

	assert.True(t, CheckAPIKey(key, hash))
	assert.False(t, CheckAPIKey("wrong", hash))
}
