package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"warebill/internal/domain/entities"
)

func newReconciler(f *engineFixture) *ReconciliationUseCase {
	return NewReconciliationUseCase(
		&fakeBillRepository{s: f.store},
		&fakeAssignmentRepository{s: f.store},
		f.cache,
		f.locks,
	)
}

func TestReconcileAll(t *testing.T) {
	ctx := context.Background()

	t.Run("clean state is left alone", func(t *testing.T) {
		f := newEngineFixture(time.Second)
		seedOpenBill(f, "bill-1", "BILL-A", 5)
		seedParent(f, "cont-1", "SB12345", 0, 0)
		if res := f.engine.LinkContainerToBill(ctx, "bill-1", "SB12345", "operator-7"); res.Outcome != entities.OutcomeSuccess {
			t.Fatalf("setup link outcome = %s", res.Outcome)
		}

		stats, err := newReconciler(f).ReconcileAll(ctx)
		if err != nil {
			t.Fatalf("ReconcileAll: %v", err)
		}
		if stats.BillsChecked != 1 || stats.DriftsFixed != 0 || stats.ClaimsReleased != 0 || stats.Errors != 0 {
			t.Errorf("stats = %+v, want 1 checked and nothing touched", stats)
		}
	})

	t.Run("overcounted bill is corrected from the assignment table", func(t *testing.T) {
		f := newEngineFixture(time.Second)
		seedOpenBill(f, "bill-1", "BILL-A", 10)
		for _, code := range []string{"SB10001", "SB10002"} {
			seedParent(f, "cont-"+code, code, 0, 0)
			if res := f.engine.LinkContainerToBill(ctx, "bill-1", code, "operator-7"); res.Outcome != entities.OutcomeSuccess {
				t.Fatalf("setup link %s outcome = %s", code, res.Outcome)
			}
		}

		// Corrupt the denormalized counter the way a lost rollback would.
		f.store.mu.Lock()
		b := f.store.bills["bill-1"]
		b.LinkedCount = 7
		f.store.bills["bill-1"] = b
		f.store.mu.Unlock()

		stats, err := newReconciler(f).ReconcileAll(ctx)
		if err != nil {
			t.Fatalf("ReconcileAll: %v", err)
		}
		if stats.DriftsFixed != 1 {
			t.Errorf("drifts fixed = %d, want 1", stats.DriftsFixed)
		}
		if got := f.store.getBill("bill-1").LinkedCount; got != 2 {
			t.Errorf("linked_count after reconcile = %d, want 2", got)
		}
	})

	t.Run("undercounted bill is corrected too", func(t *testing.T) {
		f := newEngineFixture(time.Second)
		seedOpenBill(f, "bill-1", "BILL-A", 10)
		seedParent(f, "cont-1", "SB12345", 0, 0)
		if res := f.engine.LinkContainerToBill(ctx, "bill-1", "SB12345", "operator-7"); res.Outcome != entities.OutcomeSuccess {
			t.Fatalf("setup link outcome = %s", res.Outcome)
		}
		f.store.mu.Lock()
		b := f.store.bills["bill-1"]
		b.LinkedCount = 0
		f.store.bills["bill-1"] = b
		f.store.mu.Unlock()

		if _, err := newReconciler(f).ReconcileAll(ctx); err != nil {
			t.Fatalf("ReconcileAll: %v", err)
		}
		if got := f.store.getBill("bill-1").LinkedCount; got != 1 {
			t.Errorf("linked_count after reconcile = %d, want 1", got)
		}
	})

	t.Run("orphan claims of a completed bill are released", func(t *testing.T) {
		f := newEngineFixture(time.Second)
		seedOpenBill(f, "bill-1", "BILL-A", 5)
		seedOpenBill(f, "bill-2", "BILL-B", 5)
		seedParent(f, "cont-1", "SB12345", 0, 0)
		if res := f.engine.LinkContainerToBill(ctx, "bill-1", "SB12345", "operator-7"); res.Outcome != entities.OutcomeSuccess {
			t.Fatalf("setup link outcome = %s", res.Outcome)
		}

		// Complete bill-1 without releasing its claims, as a crash mid
		// completion would.
		f.store.mu.Lock()
		b := f.store.bills["bill-1"]
		b.Status = entities.BillStatusCompleted
		f.store.bills["bill-1"] = b
		f.store.mu.Unlock()

		stats, err := newReconciler(f).ReconcileAll(ctx)
		if err != nil {
			t.Fatalf("ReconcileAll: %v", err)
		}
		if stats.ClaimsReleased != 1 {
			t.Errorf("claims released = %d, want 1", stats.ClaimsReleased)
		}

		// The swept container is linkable again.
		if res := f.engine.LinkContainerToBill(ctx, "bill-2", "SB12345", "operator-8"); res.Outcome != entities.OutcomeSuccess {
			t.Errorf("relink after sweep outcome = %s, want success", res.Outcome)
		}
	})

	t.Run("listing failure aborts the pass", func(t *testing.T) {
		f := newEngineFixture(time.Second)
		f.store.failOn["bill.ListAll"] = errors.New("dynamodb unavailable")

		if _, err := newReconciler(f).ReconcileAll(ctx); err == nil {
			t.Fatal("want error when the bill scan fails")
		}
	})

	t.Run("per-bill failures are counted, not fatal", func(t *testing.T) {
		f := newEngineFixture(time.Second)
		seedOpenBill(f, "bill-1", "BILL-A", 5)
		f.store.failOn["assignment.CountByBill"] = errors.New("dynamodb unavailable")

		stats, err := newReconciler(f).ReconcileAll(ctx)
		if err != nil {
			t.Fatalf("ReconcileAll: %v", err)
		}
		if stats.Errors != 1 {
			t.Errorf("errors = %d, want 1", stats.Errors)
		}
	})
}
