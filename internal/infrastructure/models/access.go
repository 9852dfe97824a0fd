package models

import (
	"time"

	"github.com/google/uuid"
)

type AccessRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	BankAddress string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_request_pair"`
	KycID       string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_request_pair"`
	CreatedAt   time.Time
}

// Grant rows are never deleted; revocation clears IsAuthorized so the
// audit trail stays intact.
type Grant struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	BankAddress  string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_grant_pair"`
	KycID        string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_grant_pair"`
	IsAuthorized bool      `gorm:"default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
