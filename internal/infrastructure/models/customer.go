package models

import (
	"time"
)

type Customer struct {
	KycID          string  `gorm:"type:varchar(64);primaryKey"`
	Name           string  `gorm:"type:varchar(255);not null"`
	PAN            string  `gorm:"column:pan;type:varchar(32);not null;uniqueIndex"`
	Status         int     `gorm:"not null;default:0"`
	CredentialHash string  `gorm:"type:varchar(128);not null"`
	Email          *string `gorm:"type:varchar(255)"`
	Phone          *string `gorm:"type:varchar(32)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
