package crypto

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

var (
	ErrInvalidSignature = errors.New("invalid signature")
	ErrInvalidAddress   = errors.New("invalid address")
)

// NormalizeAddress validates a hex address and returns its EIP-55
// checksummed form. All registry keys go through this so lookups are
// case-insensitive.
func NormalizeAddress(address string) (string, error) {
	if !common.IsHexAddress(address) {
		return "", ErrInvalidAddress
	}
	return common.HexToAddress(address).Hex(), nil
}

// RecoverPersonalSignAddress recovers the signer address from an EIP-191
// personal_sign signature over message.
func RecoverPersonalSignAddress(message string, signature string) (string, error) {
	sig, err := hex.DecodeString(strings.TrimPrefix(signature, "0x"))
	if err != nil {
		return "", ErrInvalidSignature
	}
	if len(sig) != 65 {
		return "", ErrInvalidSignature
	}

	// Wallets produce V as 27/28; go-ethereum expects 0/1.
	if sig[64] >= 27 {
		sig[64] -= 27
	}

	hash := accounts.TextHash([]byte(message))
	pub, err := ethcrypto.SigToPub(hash, sig)
	if err != nil {
		return "", ErrInvalidSignature
	}
	return ethcrypto.PubkeyToAddress(*pub).Hex(), nil
}

// VerifyPersonalSign checks that signature over message was produced by
// address.
func VerifyPersonalSign(message, signature, address string) error {
	recovered, err := RecoverPersonalSignAddress(message, signature)
	if err != nil {
		return err
	}
	want, err := NormalizeAddress(address)
	if err != nil {
		return err
	}
	if recovered != want {
		return ErrInvalidSignature
	}
	return nil
}
