package request

import "testing"

func TestCreateContainerRequest_Resolvers(t *testing.T) {
	r := CreateContainerRequest{Code: " pb-0000123 ", Kind: "  Parent "}
	if got := r.ResolveCode(); got != "pb-0000123" {
		t.Fatalf("expected pb-0000123, got %q", got)
	}
	if got := r.ResolveKind(); got != "parent" {
		t.Fatalf("expected parent, got %q", got)
	}

	r2 := CreateContainerRequest{Kind: "CHILD"}
	if got := r2.ResolveKind(); got != "child" {
		t.Fatalf("expected child, got %q", got)
	}
}

func TestAttachChildRequest_ResolveCode(t *testing.T) {
	r := AttachChildRequest{Code: "  cu1234567  ", WeightKg: 12.5}
	if got := r.ResolveCode(); got != "cu1234567" {
		t.Fatalf("expected cu1234567, got %q", got)
	}
}
