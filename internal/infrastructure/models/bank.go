package models

import (
	"time"
)

type Bank struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	Name       string `gorm:"type:varchar(255);not null"`
	Address    string `gorm:"type:varchar(64);not null;uniqueIndex"`
	IsApproved bool   `gorm:"default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
