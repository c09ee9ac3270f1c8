package worker

import (
	"context"
	"log"
	"time"

	"warebill/internal/usecase"
)

// ReconciliationWorker runs the counter reconciliation pass on a fixed
// interval until its context is cancelled. One pass at a time; a pass that
// overruns the interval simply delays the next tick.
type ReconciliationWorker struct {
	reconciler usecase.IReconciliationUseCase
	interval   time.Duration
}

func NewReconciliationWorker(reconciler usecase.IReconciliationUseCase, interval time.Duration) *ReconciliationWorker {
	return &ReconciliationWorker{reconciler: reconciler, interval: interval}
}

// Start launches the loop in its own goroutine and returns immediately.
// A panicking pass is logged and the loop keeps ticking.
func (w *ReconciliationWorker) Start(ctx context.Context) {
	if w.interval <= 0 {
		log.Printf("[reconcile][worker] disabled (interval <= 0)")
		return
	}
	go func() {
		log.Printf("[reconcile][worker] started interval=%s", w.interval)
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Printf("[reconcile][worker] stopped")
				return
			case <-ticker.C:
				w.runOnce(ctx)
			}
		}
	}()
}

func (w *ReconciliationWorker) runOnce(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[reconcile][worker] pass panicked: %v", r)
		}
	}()

	stats, err := w.reconciler.ReconcileAll(ctx)
	if err != nil {
		log.Printf("[reconcile][worker] pass failed: %v", err)
		return
	}
	if stats.DriftsFixed > 0 || stats.ClaimsReleased > 0 || stats.Errors > 0 {
		log.Printf("[reconcile][worker] pass stats bills=%d drifts_fixed=%d claims_released=%d errors=%d",
			stats.BillsChecked, stats.DriftsFixed, stats.ClaimsReleased, stats.Errors)
	}
}
