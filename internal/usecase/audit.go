package usecase

import (
	"context"
	"log"
	"time"

	"repairtrack/internal/domain/entities"
	"repairtrack/internal/usecase/interfaces"

	"github.com/google/uuid"
)

func newAuditEntry(requestID, actor string, category entities.AuditCategory, action, details string, metadata map[string]string) entities.AuditLogEntry {
	return entities.AuditLogEntry{
		ID:        uuid.NewString(),
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Actor:     actor,
		Category:  category,
		Action:    action,
		Details:   details,
		Metadata:  metadata,
	}
}

// appendAudit records an audit entry. Audit emission never blocks or rolls
// back the primary state transition: failures are logged and dropped.
func appendAudit(ctx context.Context, repo interfaces.IAuditLogRepository, entry entities.AuditLogEntry) {
	if repo == nil {
		return
	}
	if _, err := repo.Append(ctx, entry); err != nil {
		log.Printf("[audit][usecase] append failed request_id=%s category=%s err=%v", entry.RequestID, entry.Category, err)
	}
}

// notify delivers a fire-and-forget notification. Failures are logged only.
func notify(ctx context.Context, n interfaces.INotifier, kind, title, message, recipient, requestID string, extra map[string]string) {
	if n == nil {
		return
	}
	if err := n.Notify(ctx, kind, title, message, recipient, requestID, extra); err != nil {
		log.Printf("[notify][usecase] delivery failed request_id=%s kind=%s err=%v", requestID, kind, err)
	}
}
