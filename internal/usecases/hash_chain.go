package usecases

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"kyc-chain.backend/internal/domain/entities"
)

// GenesisHash is the PrevHash of the first history entry of every customer
var GenesisHash = common.Hash{}.Hex()

// ComputeEntryHash derives the Keccak-256 link for a history entry from its
// predecessor's hash and every verdict field. Rewriting any stored entry
// breaks all hashes after it.
func ComputeEntryHash(prevHash string, entry *entities.HistoryEntry) string {
	ts := make([]byte, 8)
	binary.BigEndian.PutUint64(ts, uint64(entry.Timestamp.Unix()))

	hash := ethcrypto.Keccak256(
		common.HexToHash(prevHash).Bytes(),
		[]byte(entry.KycID),
		[]byte(entry.BankName),
		[]byte(entry.Remarks),
		[]byte{byte(entry.Verdict)},
		ts,
		[]byte(entry.CredentialHash),
	)
	return common.BytesToHash(hash).Hex()
}

// VerifyChain walks a customer's history in order and reports the index of
// the first entry whose stored hash does not match its recomputed value,
// or -1 when the chain is intact.
func VerifyChain(entries []*entities.HistoryEntry) int {
	prev := GenesisHash
	for i, entry := range entries {
		if entry.PrevHash != prev {
			return i
		}
		if ComputeEntryHash(prev, entry) != entry.EntryHash {
			return i
		}
		prev = entry.EntryHash
	}
	return -1
}
