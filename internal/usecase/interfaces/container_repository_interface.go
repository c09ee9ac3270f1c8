package interfaces

import (
	"context"
	"errors"

	"warebill/internal/domain/entities"
)

// ErrConflict is returned by repositories when a storage-level condition
// failed: a unique key already taken, a capacity condition breached, or a
// claim held by someone else. Adapters map their driver-specific conflict
// errors (DynamoDB ConditionalCheckFailed / TransactionCanceled) to it so use
// cases stay driver-agnostic.
var ErrConflict = errors.New("storage condition conflict")

// IContainerRepository abstracts DynamoDB persistence for Container.
//
// Lookups return the zero value (empty ID) when nothing matches; errors are
// reserved for storage failures.

type IContainerRepository interface {
	// Create inserts the container guarded by the unique normalized code.
	// A concurrent first scan of the same code makes the loser fail with
	// ErrConflict; the caller re-reads instead of erroring.
	Create(ctx context.Context, c entities.Container) (entities.Container, error)
	GetByCode(ctx context.Context, code string) (entities.Container, error)
	GetByID(ctx context.Context, id string) (entities.Container, error)
	// AttachChild sets the child's parent and bumps the parent's child_count
	// and weight_kg in one transaction. ErrConflict when the child already
	// belongs to a different parent.
	AttachChild(ctx context.Context, parentCode, childCode string, weightKg float64) (entities.Container, error)
}
