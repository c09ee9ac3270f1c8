package entities

import "time"

// AuditEntry is one immutable record of a linking attempt, successful or not.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (bill_id-index): bill_id
//   - GSI (container_id-index): container_id
//
// Append-only; never mutated or deleted during normal operation. ContainerID
// and BillID may be empty when the attempt failed before resolution.
type AuditEntry struct {
	ID          string      `json:"id"`
	OccurredAt  time.Time   `json:"occurred_at"`
	ActorID     string      `json:"actor_id"`
	ContainerID string      `json:"container_id,omitempty"`
	BillID      string      `json:"bill_id,omitempty"`
	Outcome     LinkOutcome `json:"outcome"`
	Message     string      `json:"message"`
}
