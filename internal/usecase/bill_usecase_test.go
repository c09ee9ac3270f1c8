package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"warebill/internal/domain/entities"
)

func newBillUseCaseFixture() (*engineFixture, *BillUseCase) {
	f := newEngineFixture(time.Second)
	uc := NewBillUseCase(
		&fakeBillRepository{s: f.store},
		&fakeAssignmentRepository{s: f.store},
		f.cache,
		f.locks,
	)
	return f, uc
}

func TestBillUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a new bill with its capacity", func(t *testing.T) {
		_, uc := newBillUseCaseFixture()

		b, err := uc.Create(ctx, "bill-2024-001", 25)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if b.ID == "" || b.BillCode != "BILL-2024-001" || b.Capacity != 25 {
			t.Errorf("created = %+v, want uppercased code and capacity 25", b)
		}
		if b.Status != entities.BillStatusNew || b.LinkedCount != 0 {
			t.Errorf("created status/count = %s/%d, want new/0", b.Status, b.LinkedCount)
		}
	})

	t.Run("rejects empty codes and non-positive capacities", func(t *testing.T) {
		_, uc := newBillUseCaseFixture()

		if _, err := uc.Create(ctx, "   ", 5); !errors.Is(err, ErrInvalidBillCode) {
			t.Errorf("empty code err = %v, want ErrInvalidBillCode", err)
		}
		if _, err := uc.Create(ctx, "BILL-A", 0); !errors.Is(err, ErrInvalidBillCapacity) {
			t.Errorf("capacity 0 err = %v, want ErrInvalidBillCapacity", err)
		}
		if _, err := uc.Create(ctx, "BILL-A", -3); !errors.Is(err, ErrInvalidBillCapacity) {
			t.Errorf("negative capacity err = %v, want ErrInvalidBillCapacity", err)
		}
	})

	t.Run("bill codes are unique", func(t *testing.T) {
		_, uc := newBillUseCaseFixture()

		if _, err := uc.Create(ctx, "BILL-A", 5); err != nil {
			t.Fatalf("first Create: %v", err)
		}
		if _, err := uc.Create(ctx, "bill-a", 9); !errors.Is(err, ErrBillCodeTaken) {
			t.Errorf("duplicate code err = %v, want ErrBillCodeTaken", err)
		}
	})
}

func TestBillUseCase_Complete(t *testing.T) {
	ctx := context.Background()

	t.Run("completes and frees the bill's containers", func(t *testing.T) {
		f, uc := newBillUseCaseFixture()
		seedOpenBill(f, "bill-1", "BILL-A", 5)
		seedOpenBill(f, "bill-2", "BILL-B", 5)
		seedParent(f, "cont-1", "SB12345", 0, 0)
		if res := f.engine.LinkContainerToBill(ctx, "bill-1", "SB12345", "operator-7"); res.Outcome != entities.OutcomeSuccess {
			t.Fatalf("setup link outcome = %s", res.Outcome)
		}

		completed, err := uc.Complete(ctx, "bill-1")
		if err != nil {
			t.Fatalf("Complete: %v", err)
		}
		if completed.Status != entities.BillStatusCompleted {
			t.Errorf("status = %s, want completed", completed.Status)
		}
		// Assignment history survives completion.
		if got := f.store.assignmentCount("bill-1"); got != 1 {
			t.Errorf("assignments after completion = %d, want 1", got)
		}
		// The claim does not: the container can join the next bill.
		if res := f.engine.LinkContainerToBill(ctx, "bill-2", "SB12345", "operator-8"); res.Outcome != entities.OutcomeSuccess {
			t.Errorf("relink after completion outcome = %s, want success", res.Outcome)
		}
	})

	t.Run("completing twice fails", func(t *testing.T) {
		f, uc := newBillUseCaseFixture()
		seedOpenBill(f, "bill-1", "BILL-A", 5)

		if _, err := uc.Complete(ctx, "bill-1"); err != nil {
			t.Fatalf("first Complete: %v", err)
		}
		if _, err := uc.Complete(ctx, "bill-1"); !errors.Is(err, ErrBillAlreadyCompleted) {
			t.Errorf("second Complete err = %v, want ErrBillAlreadyCompleted", err)
		}
	})

	t.Run("unknown bill", func(t *testing.T) {
		_, uc := newBillUseCaseFixture()
		if _, err := uc.Complete(ctx, "bill-404"); !errors.Is(err, ErrBillNotFound) {
			t.Errorf("err = %v, want ErrBillNotFound", err)
		}
	})
}

func TestBillUseCase_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("serves from the cache when warm", func(t *testing.T) {
		f, uc := newBillUseCaseFixture()
		seedOpenBill(f, "bill-1", "BILL-A", 5)

		first, err := uc.GetByID(ctx, "bill-1")
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}

		// Mutate storage behind the cache; the warm read must not see it.
		f.store.mu.Lock()
		b := f.store.bills["bill-1"]
		b.Capacity = 99
		f.store.bills["bill-1"] = b
		f.store.mu.Unlock()

		second, err := uc.GetByID(ctx, "bill-1")
		if err != nil {
			t.Fatalf("GetByID warm: %v", err)
		}
		if second.Capacity != first.Capacity {
			t.Errorf("warm read capacity = %d, want cached %d", second.Capacity, first.Capacity)
		}

		// After invalidation the fresh value comes through.
		if err := f.cache.InvalidateBill(ctx, "bill-1"); err != nil {
			t.Fatalf("InvalidateBill: %v", err)
		}
		third, err := uc.GetByID(ctx, "bill-1")
		if err != nil {
			t.Fatalf("GetByID cold: %v", err)
		}
		if third.Capacity != 99 {
			t.Errorf("cold read capacity = %d, want 99", third.Capacity)
		}
	})

	t.Run("unknown bill", func(t *testing.T) {
		_, uc := newBillUseCaseFixture()
		if _, err := uc.GetByID(ctx, "bill-404"); !errors.Is(err, ErrBillNotFound) {
			t.Errorf("err = %v, want ErrBillNotFound", err)
		}
	})
}

func TestBillUseCase_GetByCode(t *testing.T) {
	ctx := context.Background()
	f, uc := newBillUseCaseFixture()
	seedOpenBill(f, "bill-1", "BILL-A", 5)

	b, err := uc.GetByCode(ctx, "  bill-a ")
	if err != nil {
		t.Fatalf("GetByCode: %v", err)
	}
	if b.ID != "bill-1" {
		t.Errorf("resolved id = %s, want bill-1", b.ID)
	}

	if _, err := uc.GetByCode(ctx, "BILL-NOPE"); !errors.Is(err, ErrBillNotFound) {
		t.Errorf("unknown code err = %v, want ErrBillNotFound", err)
	}
}
