package domain

import (
	"encoding/json"
	"time"
)

// AuditLog records a ledger mutation for debugging and traceability. Writes
// are best effort and happen outside the ledger transaction.
type AuditLog struct {
	ID           string
	Action       AuditAction
	ResourceType string
	ResourceID   int64
	BeforeState  JSON
	AfterState   JSON
	Status       AuditStatus
	ErrorMessage string
	CreatedAt    time.Time
}

// JSON is a type alias for JSON data
type JSON map[string]any

// AuditAction represents different types of auditable actions
type AuditAction string

const (
	AuditActionAccountCreate AuditAction = "account.create"
	AuditActionAccountUpdate AuditAction = "account.update"
	AuditActionAccountDelete AuditAction = "account.delete"

	AuditActionPaymentCreate AuditAction = "payment.create"
	AuditActionPaymentUpdate AuditAction = "payment.update"
	AuditActionPaymentDelete AuditAction = "payment.delete"
)

// AuditStatus represents the status of an audited action
type AuditStatus string

const (
	AuditStatusSuccess AuditStatus = "success"
	AuditStatusError   AuditStatus = "error"
)

// MarshalState converts a domain object to JSON for audit logging
func MarshalState(v any) JSON {
	if v == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return JSON{"error": "failed to marshal state"}
	}

	var result JSON
	if err := json.Unmarshal(data, &result); err != nil {
		return JSON{"error": "failed to unmarshal state"}
	}

	return result
}
