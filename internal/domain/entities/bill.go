package entities

import "time"

// BillStatus is the bill lifecycle: new -> processing -> completed.
// The first successful link moves a bill to processing; completed is terminal
// and refuses further links. No back-transitions.

type BillStatus string

const (
	BillStatusNew        BillStatus = "new"
	BillStatusProcessing BillStatus = "processing"
	BillStatusCompleted  BillStatus = "completed"
)

// Bill is a capacity-bounded batch of parent containers.
//
// Storage model (DynamoDB):
//   - PK: id
//   - bill_code uniqueness is enforced by a companion code-claim item written
//     in the same transaction as the bill itself.
//
// LinkedCount is denormalized from the assignment records; the linking engine
// maintains it write-through in the same transaction and the reconciliation
// pass corrects any drift. Capacity is immutable after creation.
type Bill struct {
	ID              string     `json:"id"`
	BillCode        string     `json:"bill_code"`
	Status          BillStatus `json:"status"`
	Capacity        int        `json:"capacity"`
	LinkedCount     int        `json:"linked_count"`
	TotalWeight     float64    `json:"total_weight"`
	TotalChildUnits int        `json:"total_child_units"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Active reports whether the bill still accepts/holds exclusive links.
func (b Bill) Active() bool {
	return b.Status == BillStatusNew || b.Status == BillStatusProcessing
}
