package entities

import "time"

// Role is the resolved role of a calling actor
type Role string

const (
	RoleOwner    Role = "OWNER"
	RoleAdmin    Role = "ADMIN"
	RoleBank     Role = "BANK"
	RoleCustomer Role = "CUSTOMER"
	RoleNone     Role = "NONE"
)

// Actor identifies the caller of an engine operation. Every mutating call
// carries one; the engine resolves its role against the registries before
// touching any store.
type Actor struct {
	Address string `json:"address"`
}

// Admin is a member of the admin set, managed exclusively by the owner
type Admin struct {
	Address   string    `json:"address"`
	AddedBy   string    `json:"addedBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// Owner is the single root identity; transferable only by itself
type Owner struct {
	Address   string    `json:"address"`
	UpdatedAt time.Time `json:"updatedAt"`
}
