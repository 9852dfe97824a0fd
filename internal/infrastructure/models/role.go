package models

import (
	"time"
)

// Owner holds the single root identity. The table carries exactly one row;
// ownership transfer updates it in place.
type Owner struct {
	ID        uint   `gorm:"primaryKey;autoIncrement:false;default:1"`
	Address   string `gorm:"type:varchar(64);not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Admin struct {
	Address   string `gorm:"type:varchar(64);primaryKey"`
	AddedBy   string `gorm:"type:varchar(64);not null"`
	CreatedAt time.Time
}
