package interfaces

import (
	"context"

	"warebill/internal/domain/entities"
)

// IAssignmentRepository abstracts the assignment and claim tables, including
// the multi-table transactional commits the linking engine relies on.
//
// CommitLink is the write side of engine step 6: claim insert (container not
// already held), assignment insert, bill counter/status update (capacity not
// exceeded, bill not completed) and the success audit entry commit as one
// unit or not at all. The engine pre-checks the same conditions under the
// per-bill lock, so ErrConflict here indicates a cross-instance race rather
// than a caller mistake.
type IAssignmentRepository interface {
	GetClaim(ctx context.Context, containerID string) (entities.ContainerClaim, error)
	Get(ctx context.Context, billID, containerID string) (entities.Assignment, error)
	CountByBill(ctx context.Context, billID string) (int, error)
	ListByBill(ctx context.Context, billID string) ([]entities.Assignment, error)
	// CommitLink atomically writes claim + assignment + bill update + audit.
	CommitLink(ctx context.Context, a entities.Assignment, audit entities.AuditEntry) error
	// CommitUnlink atomically removes claim + assignment and rolls the bill
	// counters back, with the unlink audit entry.
	CommitUnlink(ctx context.Context, a entities.Assignment, audit entities.AuditEntry) error
	// ReleaseClaim deletes the container's claim if it is held by billID.
	// Used when a bill completes and by the reconciler's orphan sweep.
	ReleaseClaim(ctx context.Context, containerID, billID string) error
}
