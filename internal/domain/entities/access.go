package entities

import (
	"time"

	"github.com/google/uuid"
)

// AccessRequest is a bank's pending request to read and verify a customer's
// record. It exists only while pending and is consumed when an admin grants
// access.
type AccessRequest struct {
	ID          uuid.UUID `json:"id"`
	BankAddress string    `json:"bankAddress"`
	KycID       string    `json:"kycId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Grant is one row of the bank x customer authorization matrix. Revocation
// flips IsAuthorized rather than deleting the row so the audit trail
// survives.
type Grant struct {
	ID           uuid.UUID `json:"id"`
	BankAddress  string    `json:"bankAddress"`
	KycID        string    `json:"kycId"`
	IsAuthorized bool      `json:"isAuthorized"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// GrantInput is the payload for granting or revoking access
type GrantInput struct {
	KycID       string `json:"kycId" binding:"required"`
	BankAddress string `json:"bankAddress" binding:"required"`
}

// RequestAccessInput carries the target customer; the requesting bank is the
// authenticated actor.
type RequestAccessInput struct {
	KycID string `json:"kycId" binding:"required"`
}
