package interfaces

import (
	"context"
	"repairtrack/internal/domain/entities"
)

// IAuditLogRepository abstracts the append-only audit trail. Entries are
// never mutated or deleted after creation.

type IAuditLogRepository interface {
	Append(ctx context.Context, entry entities.AuditLogEntry) (entities.AuditLogEntry, error)
	ListByRequestID(ctx context.Context, requestID string) ([]entities.AuditLogEntry, error)
}
