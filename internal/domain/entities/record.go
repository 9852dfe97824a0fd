package entities

import (
	"time"

	"github.com/google/uuid"
)

// Record is a content-addressed document reference attached to a customer.
// Records are append-only; corrections are made by appending a new record.
type Record struct {
	ID           uuid.UUID `json:"id"`
	KycID        string    `json:"kycId"`
	RecordType   string    `json:"recordType"`
	DocumentHash string    `json:"documentHash"`
	Timestamp    time.Time `json:"timestamp"`
}

// AddRecordInput is the payload for appending a document reference
type AddRecordInput struct {
	RecordType   string `json:"recordType" binding:"required"`
	DocumentHash string `json:"documentHash" binding:"required"`
}
