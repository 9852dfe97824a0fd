package entities

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry is one verdict appended to a customer's status log. Entries
// are immutable; each one carries a Keccak-256 link to its predecessor so
// the per-customer log is tamper-evident.
type HistoryEntry struct {
	ID             uuid.UUID `json:"id"`
	KycID          string    `json:"kycId"`
	BankName       string    `json:"bankName"`
	Remarks        string    `json:"remarks"`
	Verdict        KycStatus `json:"verdict"`
	CredentialHash string    `json:"credentialHash"`
	Timestamp      time.Time `json:"timestamp"`
	PrevHash       string    `json:"prevHash"`
	EntryHash      string    `json:"entryHash"`
}

// UpdateStatusInput is the payload for recording a verdict
type UpdateStatusInput struct {
	BankName       string    `json:"bankName" binding:"required"`
	Remarks        string    `json:"remarks" binding:"required"`
	Timestamp      int64     `json:"timestamp" binding:"required"`
	Verdict        KycStatus `json:"verdict"`
	CredentialHash string    `json:"credentialHash" binding:"required"`
}
