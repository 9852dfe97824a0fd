package models

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry rows are append-only. EntryHash chains over PrevHash so any
// rewrite of an earlier row breaks every hash after it.
type HistoryEntry struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	KycID          string    `gorm:"type:varchar(64);not null;index"`
	BankName       string    `gorm:"type:varchar(255);not null"`
	Remarks        string    `gorm:"type:text;not null"`
	Verdict        int       `gorm:"not null"`
	CredentialHash string    `gorm:"type:varchar(128);not null"`
	Timestamp      time.Time `gorm:"not null"`
	PrevHash       string    `gorm:"type:varchar(66);not null"`
	EntryHash      string    `gorm:"type:varchar(66);not null"`
	CreatedAt      time.Time
}
