package entities

import "time"

// Assignment is the join record of one parent container linked to one bill.
//
// Storage model (DynamoDB):
//   - PK: id = "<bill_id>#<container_id>"
//   - GSI (bill_id-index): bill_id, the authoritative per-bill count
//   - GSI (container_id-index): container_id, for traceability
//
// Assignments are created only by the linking engine, never updated, and
// deleted only by explicit unlink. They survive bill completion. While the
// owning bill is active, a companion claim row keyed by container id makes a
// second active assignment for the same container impossible.
type Assignment struct {
	ID            string    `json:"id"`
	BillID        string    `json:"bill_id"`
	ContainerID   string    `json:"container_id"`
	ContainerCode string    `json:"container_code"`
	ChildUnits    int       `json:"child_units"`
	WeightKg      float64   `json:"weight_kg"`
	ActorID       string    `json:"actor_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// ContainerClaim marks a container as held by an active bill. One claim per
// container at most; inserted with the assignment, removed on unlink or when
// the bill completes.
type ContainerClaim struct {
	ContainerID string    `json:"container_id"`
	BillID      string    `json:"bill_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// AssignmentID builds the composite assignment key.
func AssignmentID(billID, containerID string) string {
	return billID + "#" + containerID
}
