package interfaces

import (
	"context"

	"warebill/internal/domain/entities"
)

// IAuditRepository abstracts the append-only audit trail.
//
// Entries for successful links are written inside the link transaction by
// IAssignmentRepository; Append covers failure entries and unlink trails.

type IAuditRepository interface {
	Append(ctx context.Context, e entities.AuditEntry) error
	ListByBill(ctx context.Context, billID string) ([]entities.AuditEntry, error)
	ListByContainer(ctx context.Context, containerID string) ([]entities.AuditEntry, error)
}
