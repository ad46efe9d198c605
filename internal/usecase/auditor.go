package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iho/payledger/internal/domain"
)

// Auditor writes best-effort audit log entries for ledger mutations. Failures
// are logged and never fail the mutation; entries are written after commit,
// outside the ledger transaction.
type Auditor struct {
	repo AuditRepository
}

// NewAuditor creates a new Auditor. A nil repo disables auditing.
func NewAuditor(repo AuditRepository) *Auditor {
	return &Auditor{repo: repo}
}

// Record writes one audit entry.
func (a *Auditor) Record(ctx context.Context, action domain.AuditAction, resourceType string, resourceID int64, before, after any) {
	if a == nil || a.repo == nil {
		return
	}

	entry := &domain.AuditLog{
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		BeforeState:  domain.MarshalState(before),
		AfterState:   domain.MarshalState(after),
		Status:       domain.AuditStatusSuccess,
		CreatedAt:    time.Now().UTC(),
	}

	if err := a.repo.Create(ctx, entry); err != nil {
		log.Warn().Err(err).Str("action", string(action)).Msg("failed to write audit log")
	}
}
