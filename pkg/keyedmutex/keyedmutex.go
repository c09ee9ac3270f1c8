// Package keyedmutex provides mutual exclusion scoped to a string key.
//
// The linking engine serializes all attempts against one bill through the
// bill's key while attempts against different bills proceed in parallel.
// Acquisition blocks with a bounded wait; the lock table holds an entry only
// while a key is locked or contended, so idle keys cost nothing.
package keyedmutex

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrAcquireTimeout = errors.New("keyedmutex: acquire timed out")

type entry struct {
	ch   chan struct{} // capacity 1; holding the token means holding the lock
	refs int           // holders + waiters; entry is pruned at zero
}

// KeyedMutex is a table of per-key locks. The zero value is not usable; call New.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[string]*entry
	timeout time.Duration
}

// New creates a lock table with the given default acquisition timeout.
// A non-positive timeout means wait as long as the caller's context allows.
func New(timeout time.Duration) *KeyedMutex {
	return &KeyedMutex{
		entries: make(map[string]*entry),
		timeout: timeout,
	}
}

// Lock acquires the lock for key, blocking up to the configured timeout (and
// no longer than ctx allows). It returns a release function; there is no
// separate unlock path to leak. Release is idempotent.
func (k *KeyedMutex) Lock(ctx context.Context, key string) (release func(), err error) {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		e.ch <- struct{}{}
		k.entries[key] = e
	}
	e.refs++
	k.mu.Unlock()

	if k.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, k.timeout)
		defer cancel()
	}

	select {
	case <-e.ch:
		var once sync.Once
		return func() {
			once.Do(func() {
				e.ch <- struct{}{}
				k.drop(key, e)
			})
		}, nil
	case <-ctx.Done():
		k.drop(key, e)
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, ErrAcquireTimeout
		}
		return nil, ctx.Err()
	}
}

func (k *KeyedMutex) drop(key string, e *entry) {
	k.mu.Lock()
	e.refs--
	if e.refs == 0 {
		delete(k.entries, key)
	}
	k.mu.Unlock()
}

// Len reports the number of live (locked or contended) keys.
func (k *KeyedMutex) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}
