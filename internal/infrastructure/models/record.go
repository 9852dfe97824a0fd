package models

import (
	"time"

	"github.com/google/uuid"
)

// Record rows are append-only; there is no update or delete path.
type Record struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	KycID        string    `gorm:"type:varchar(64);not null;index"`
	RecordType   string    `gorm:"type:varchar(100);not null"`
	DocumentHash string    `gorm:"type:varchar(128);not null"`
	Timestamp    time.Time `gorm:"not null"`
	CreatedAt    time.Time
}
