package entities

import "time"

// Bank represents a registered bank. Address is the natural key; a bank must
// be approved by an admin before it may touch any customer data, regardless
// of per-customer grants.
type Bank struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	IsApproved bool      `json:"isApproved"`
	CreatedAt  time.Time `json:"createdAt"`

	// Populated on detail reads
	RequestList []string `json:"requestList,omitempty"`
	Approvals   []string `json:"approvals,omitempty"`
}

// AddBankInput is the payload for registering a bank
type AddBankInput struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
}

// SetApprovalInput toggles the bank-wide kill switch
type SetApprovalInput struct {
	Address  string `json:"address" binding:"required"`
	Approved *bool  `json:"approved" binding:"required"`
}
