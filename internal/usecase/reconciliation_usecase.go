package usecase

import (
	"context"
	"log"

	"warebill/internal/domain/entities"
	"warebill/internal/usecase/interfaces"
	"warebill/pkg/keyedmutex"
)

// ReconcileStats summarizes one reconciliation pass.
type ReconcileStats struct {
	BillsChecked   int
	DriftsFixed    int
	ClaimsReleased int
	Errors         int
}

// IReconciliationUseCase recomputes each bill's denormalized linked_count
// from the assignment table and repairs any drift, and sweeps claims still
// held by completed bills. Assignments are the source of truth; the counter
// is a convenience that must never be trusted blindly.

type IReconciliationUseCase interface {
	ReconcileAll(ctx context.Context) (ReconcileStats, error)
}

type ReconciliationUseCase struct {
	bills       interfaces.IBillRepository
	assignments interfaces.IAssignmentRepository
	cache       interfaces.IDashboardCache
	locks       *keyedmutex.KeyedMutex
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(
	bills interfaces.IBillRepository,
	assignments interfaces.IAssignmentRepository,
	cache interfaces.IDashboardCache,
	locks *keyedmutex.KeyedMutex,
) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		bills:       bills,
		assignments: assignments,
		cache:       cache,
		locks:       locks,
	}
}

// ReconcileAll walks every bill once. A bill is only corrected under its key
// lock, and the count is taken again inside the lock so an in-flight link
// between the first read and the fix cannot be misread as drift. Errors on
// one bill are logged and counted; the pass keeps going.
func (u *ReconciliationUseCase) ReconcileAll(ctx context.Context) (ReconcileStats, error) {
	var stats ReconcileStats

	bills, err := u.bills.ListAll(ctx)
	if err != nil {
		return stats, err
	}

	for _, bill := range bills {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}
		stats.BillsChecked++

		if bill.Status == entities.BillStatusCompleted {
			released, err := u.sweepClaims(ctx, bill)
			if err != nil {
				stats.Errors++
				log.Printf("[reconcile][usecase] claim sweep failed bill_id=%s err=%v", bill.ID, err)
			}
			stats.ClaimsReleased += released
		}

		actual, err := u.assignments.CountByBill(ctx, bill.ID)
		if err != nil {
			stats.Errors++
			log.Printf("[reconcile][usecase] count failed bill_id=%s err=%v", bill.ID, err)
			continue
		}
		if actual == bill.LinkedCount {
			continue
		}

		if err := u.fixDrift(ctx, bill); err != nil {
			stats.Errors++
			log.Printf("[reconcile][usecase] drift fix failed bill_id=%s err=%v", bill.ID, err)
			continue
		}
		stats.DriftsFixed++
	}

	log.Printf("[reconcile][usecase] pass done bills=%d drifts_fixed=%d claims_released=%d errors=%d",
		stats.BillsChecked, stats.DriftsFixed, stats.ClaimsReleased, stats.Errors)
	return stats, nil
}

func (u *ReconciliationUseCase) fixDrift(ctx context.Context, bill entities.Bill) error {
	release, err := u.locks.Lock(ctx, bill.ID)
	if err != nil {
		return err
	}
	defer release()

	// Recount inside the lock: the earlier read may have raced a commit.
	actual, err := u.assignments.CountByBill(ctx, bill.ID)
	if err != nil {
		return err
	}
	fresh, err := u.bills.GetByID(ctx, bill.ID)
	if err != nil {
		return err
	}
	if fresh.ID == "" || fresh.LinkedCount == actual {
		return nil
	}

	drift := fresh.LinkedCount - actual
	if _, err := u.bills.UpdateLinkedCount(ctx, fresh.ID, actual); err != nil {
		return err
	}
	log.Printf("[reconcile][usecase] drift corrected bill_id=%s stored=%d actual=%d drift=%d",
		fresh.ID, fresh.LinkedCount, actual, drift)

	if u.cache != nil {
		if err := u.cache.InvalidateBill(ctx, fresh.ID); err != nil {
			log.Printf("[reconcile][usecase] cache invalidation failed bill_id=%s err=%v", fresh.ID, err)
		}
	}
	return nil
}

// sweepClaims releases claims a completed bill is still holding. Completion
// releases them inline, but a crash between the status flip and the claim
// deletes can leave containers stuck; this makes them linkable again.
func (u *ReconciliationUseCase) sweepClaims(ctx context.Context, bill entities.Bill) (int, error) {
	assignments, err := u.assignments.ListByBill(ctx, bill.ID)
	if err != nil {
		return 0, err
	}

	released := 0
	for _, a := range assignments {
		claim, err := u.assignments.GetClaim(ctx, a.ContainerID)
		if err != nil {
			return released, err
		}
		if claim.ContainerID == "" || claim.BillID != bill.ID {
			continue
		}
		if err := u.assignments.ReleaseClaim(ctx, a.ContainerID, bill.ID); err != nil {
			return released, err
		}
		released++
		log.Printf("[reconcile][usecase] orphan claim released container_id=%s bill_id=%s", a.ContainerID, bill.ID)
	}
	return released, nil
}
