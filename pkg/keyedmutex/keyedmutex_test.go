package keyedmutex

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	km := New(time.Second)

	const workers = 20
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := km.Lock(context.Background(), "bill-1")
			if err != nil {
				t.Errorf("unexpected lock error: %v", err)
				return
			}
			defer release()
			// Unsynchronized increment; the race detector flags any overlap.
			v := counter
			counter = v + 1
		}()
	}
	wg.Wait()

	if counter != workers {
		t.Fatalf("expected %d increments, got %d", workers, counter)
	}
	if km.Len() != 0 {
		t.Fatalf("expected lock table pruned, got %d entries", km.Len())
	}
}

func TestKeyedMutex_DifferentKeysDoNotContend(t *testing.T) {
	km := New(100 * time.Millisecond)

	releaseA, err := km.Lock(context.Background(), "bill-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer releaseA()

	// bill-b must acquire instantly even while bill-a is held.
	start := time.Now()
	releaseB, err := km.Lock(context.Background(), "bill-b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	releaseB()
	if time.Since(start) > 50*time.Millisecond {
		t.Fatalf("independent key blocked for %v", time.Since(start))
	}
}

func TestKeyedMutex_Timeout(t *testing.T) {
	km := New(30 * time.Millisecond)

	release, err := km.Lock(context.Background(), "bill-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = km.Lock(context.Background(), "bill-1")
	if !errors.Is(err, ErrAcquireTimeout) {
		t.Fatalf("expected ErrAcquireTimeout, got %v", err)
	}

	release()
	if km.Len() != 0 {
		t.Fatalf("expected lock table pruned, got %d entries", km.Len())
	}
}

func TestKeyedMutex_ContextCancel(t *testing.T) {
	km := New(time.Second)

	release, err := km.Lock(context.Background(), "bill-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	_, err = km.Lock(ctx, "bill-1")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestKeyedMutex_ReleaseIdempotent(t *testing.T) {
	km := New(time.Second)

	release, err := km.Lock(context.Background(), "bill-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	release()
	release() // second call must be a no-op, not a double unlock

	release2, err := km.Lock(context.Background(), "bill-1")
	if err != nil {
		t.Fatalf("unexpected error after re-lock: %v", err)
	}
	release2()
}
