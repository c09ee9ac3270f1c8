package entities

import "time"

// ContainerKind distinguishes the two levels of the container hierarchy.
// A parent container is what gets linked to a bill; child units are the
// scanned goods stacked on a parent.

type ContainerKind string

const (
	ContainerKindParent ContainerKind = "parent"
	ContainerKindChild  ContainerKind = "child"
)

// ContainerStatus tracks how far along the floor a container is.

type ContainerStatus string

const (
	ContainerStatusPending    ContainerStatus = "pending"
	ContainerStatusInProgress ContainerStatus = "in_progress"
	ContainerStatusCompleted  ContainerStatus = "completed"
)

// Container is a physical unit tracked by a scanned code.
//
// Storage model (DynamoDB):
//   - PK: code, normalized uppercase. This is the uniqueness constraint that
//     makes resolve-or-create idempotent under concurrent first scans.
//   - GSI (id-index): id
//
// Codes are compared case-insensitively and stored normalized. Containers are
// created on first scan and never hard-deleted in normal operation.
type Container struct {
	ID         string          `json:"id"`
	Code       string          `json:"code"`
	Kind       ContainerKind   `json:"kind"`
	ParentCode string          `json:"parent_code,omitempty"`
	ChildCount int             `json:"child_count"`
	WeightKg   float64         `json:"weight_kg"`
	Status     ContainerStatus `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
