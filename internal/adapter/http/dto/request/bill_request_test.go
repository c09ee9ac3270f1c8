package request

import "testing"

func TestCreateBillRequest_ResolveBillCode(t *testing.T) {
	r := CreateBillRequest{BillCode: "  bol-2024-001  "}
	if got := r.ResolveBillCode(); got != "bol-2024-001" {
		t.Fatalf("expected bol-2024-001, got %q", got)
	}

	r2 := CreateBillRequest{BillCode: "   "}
	if got := r2.ResolveBillCode(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestLinkRequest_ResolveContainerCode(t *testing.T) {
	r := LinkRequest{ContainerCode: "  SB12345 "}
	if got := r.ResolveContainerCode(); got != "SB12345" {
		t.Fatalf("expected SB12345, got %q", got)
	}
}
