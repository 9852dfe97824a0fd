package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// KycStatus is a customer's verification status. Values mirror the on-chain
// enum so history entries stay comparable across systems.
type KycStatus int

const (
	KycStatusPending  KycStatus = 0
	KycStatusAccepted KycStatus = 1
	KycStatusRejected KycStatus = 2
	KycStatusRevoked  KycStatus = 3
)

func (s KycStatus) String() string {
	switch s {
	case KycStatusPending:
		return "Pending"
	case KycStatusAccepted:
		return "Accepted"
	case KycStatusRejected:
		return "Rejected"
	case KycStatusRevoked:
		return "Revoked"
	default:
		return "Unknown"
	}
}

// Valid reports whether the value is a member of the status enum
func (s KycStatus) Valid() bool {
	return s >= KycStatusPending && s <= KycStatusRevoked
}

// CanTransitionTo reports whether the status machine permits moving from s
// to next. Pending fans out to Accepted or Rejected; both of those collapse
// into the terminal Revoked. Self-loops and lateral Accepted/Rejected moves
// are rejected.
func (s KycStatus) CanTransitionTo(next KycStatus) bool {
	switch s {
	case KycStatusPending:
		return next == KycStatusAccepted || next == KycStatusRejected
	case KycStatusAccepted, KycStatusRejected:
		return next == KycStatusRevoked
	default:
		return false
	}
}

// Terminal reports whether no outgoing transition exists
func (s KycStatus) Terminal() bool {
	return s == KycStatusRevoked
}

// Customer is a KYC identity record keyed by KycID. KycID and PAN are both
// globally unique; the record is never deleted, only revoked.
type Customer struct {
	KycID          string      `json:"kycId"`
	Name           string      `json:"name"`
	PAN            string      `json:"pan"`
	Status         KycStatus   `json:"kycStatus"`
	CredentialHash string      `json:"credentialHash"`
	Email          null.String `json:"email,omitempty"`
	Phone          null.String `json:"phone,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// AddCustomerInput is the payload for onboarding a customer. The two
// document hashes seed the customer's record list.
type AddCustomerInput struct {
	Name           string `json:"name" binding:"required"`
	PAN            string `json:"pan" binding:"required"`
	KycID          string `json:"kycId" binding:"required"`
	Doc1Hash       string `json:"doc1Hash" binding:"required"`
	Doc2Hash       string `json:"doc2Hash" binding:"required"`
	CredentialHash string `json:"credentialHash" binding:"required"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
}
