package interfaces

import (
	"context"

	"warebill/internal/domain/entities"
)

// IBillRepository abstracts DynamoDB persistence for Bill.
//
// The bill-code claim item written alongside the bill makes bill codes unique
// without a second table; Complete is a conditional terminal transition.

type IBillRepository interface {
	// Create persists the bill plus its bill-code claim in one transaction.
	// ErrConflict when the code is already taken.
	Create(ctx context.Context, b entities.Bill) (entities.Bill, error)
	GetByID(ctx context.Context, id string) (entities.Bill, error)
	GetByCode(ctx context.Context, billCode string) (entities.Bill, error)
	// Complete moves the bill to completed. ErrConflict when it already is.
	Complete(ctx context.Context, id string) (entities.Bill, error)
	// UpdateLinkedCount overwrites the denormalized counter; used only by the
	// reconciliation pass after recounting the authoritative assignments.
	UpdateLinkedCount(ctx context.Context, id string, linkedCount int) (entities.Bill, error)
	ListAll(ctx context.Context) ([]entities.Bill, error)
}
