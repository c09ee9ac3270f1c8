package interfaces

import (
	"context"

	"warebill/internal/domain/entities"
)

// IDashboardCache abstracts the read-side cache for bill aggregates.
//
// The linking engine asks it to drop a bill's snapshot after a successful
// link. That call is fire-and-forget and best-effort: a failed or delayed
// invalidation must never affect the engine's correctness guarantees, so the
// engine ignores the returned error beyond logging it. Reads tolerate
// staleness up to the cache TTL; the tables stay the source of truth.
type IDashboardCache interface {
	GetBill(ctx context.Context, billID string) (entities.Bill, bool)
	SetBill(ctx context.Context, b entities.Bill)
	InvalidateBill(ctx context.Context, billID string) error
}
