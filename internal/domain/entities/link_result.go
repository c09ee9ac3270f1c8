package entities

// LinkOutcome is the typed result taxonomy of the linking engine. Outcomes are
// kinds, not error classes: the caller decides policy. Only lock_timeout and
// storage_error may indicate a transient condition worth a caller-side retry;
// every other outcome is permanent for the given input.

type LinkOutcome string

const (
	OutcomeSuccess               LinkOutcome = "success"
	OutcomeUnlinked              LinkOutcome = "unlinked"
	OutcomeContainerNotFound     LinkOutcome = "container_not_found"
	OutcomeWrongKind             LinkOutcome = "wrong_kind"
	OutcomeBillNotFound          LinkOutcome = "bill_not_found"
	OutcomeBillClosed            LinkOutcome = "bill_closed"
	OutcomeAlreadyLinkedSameBill LinkOutcome = "already_linked_same_bill"
	OutcomeAlreadyLinkedOther    LinkOutcome = "already_linked_other_bill"
	OutcomeCapacityReached       LinkOutcome = "capacity_reached"
	OutcomeNotLinked             LinkOutcome = "not_linked"
	OutcomeLockTimeout           LinkOutcome = "lock_timeout"
	OutcomeStorageError          LinkOutcome = "storage_error"
)

// Transient reports whether the outcome may clear on retry with backoff.
func (o LinkOutcome) Transient() bool {
	return o == OutcomeLockTimeout || o == OutcomeStorageError
}

// Ok reports whether the outcome leaves the caller in the desired state.
// already_linked_same_bill is a success-style idempotent no-op, not a failure.
func (o LinkOutcome) Ok() bool {
	return o == OutcomeSuccess || o == OutcomeUnlinked || o == OutcomeAlreadyLinkedSameBill
}

// LinkResult is the structured result returned to the calling layer.
// The counter fields are populated on success (and on the idempotent
// already_linked_same_bill no-op) so scanners can display progress.
type LinkResult struct {
	Outcome               LinkOutcome `json:"outcome"`
	Message               string      `json:"message"`
	ChildUnitsOnContainer int         `json:"child_units_on_container,omitempty"`
	LinkedCountAfter      int         `json:"linked_count_after,omitempty"`
	Capacity              int         `json:"capacity,omitempty"`
}
