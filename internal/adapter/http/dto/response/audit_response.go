package response

import (
	"time"

	"warebill/internal/domain/entities"
)

type AuditEntryResponse struct {
	ID          string    `json:"id"`
	OccurredAt  time.Time `json:"occurred_at"`
	ActorID     string    `json:"actor_id"`
	ContainerID string    `json:"container_id,omitempty"`
	BillID      string    `json:"bill_id,omitempty"`
	Outcome     string    `json:"outcome"`
	Message     string    `json:"message"`
}

func FromAuditEntry(e entities.AuditEntry) AuditEntryResponse {
	return AuditEntryResponse{
		ID:          e.ID,
		OccurredAt:  e.OccurredAt,
		ActorID:     e.ActorID,
		ContainerID: e.ContainerID,
		BillID:      e.BillID,
		Outcome:     string(e.Outcome),
		Message:     e.Message,
	}
}

func FromAuditEntries(entries []entities.AuditEntry) []AuditEntryResponse {
	out := make([]AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromAuditEntry(e))
	}
	return out
}
