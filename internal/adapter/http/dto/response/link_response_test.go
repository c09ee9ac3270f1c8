package response

import (
	"testing"

	"warebill/internal/domain/entities"
)

func TestFromLinkResult(t *testing.T) {
	r := entities.LinkResult{
		Outcome:               entities.OutcomeSuccess,
		Message:               "container linked",
		ChildUnitsOnContainer: 8,
		LinkedCountAfter:      5,
		Capacity:              30,
	}

	res := FromLinkResult(r)
	if res.Outcome != "success" || res.Message != "container linked" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.ChildUnitsOnContainer != 8 || res.LinkedCountAfter != 5 || res.Capacity != 30 {
		t.Fatalf("unexpected counters: %+v", res)
	}
}

func TestFromAuditEntries(t *testing.T) {
	entries := []entities.AuditEntry{
		{ID: "a-1", ActorID: "operator-7", Outcome: entities.OutcomeSuccess},
		{ID: "a-2", ActorID: "anonymous", Outcome: entities.OutcomeCapacityReached, Message: "bill is full"},
	}

	out := FromAuditEntries(entries)
	if len(out) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out))
	}
	if out[0].ID != "a-1" || out[0].Outcome != "success" {
		t.Fatalf("unexpected first entry: %+v", out[0])
	}
	if out[1].ActorID != "anonymous" || out[1].Message != "bill is full" {
		t.Fatalf("unexpected second entry: %+v", out[1])
	}

	if got := FromAuditEntries(nil); len(got) != 0 {
		t.Fatalf("expected empty slice, got %+v", got)
	}
}
