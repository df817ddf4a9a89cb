// Package lock serializes balance mutations for the same customer inside one process.
// Cross-process safety still comes from the database; this only keeps two requests
// for one phone from racing for the same row.
package lock

import (
	"context"
	"sync"
)

type keyMutex struct {
	ch   chan struct{}
	refs int
}

// KeyLock hands out one mutex per key and forgets it once nobody holds or waits on it.
type KeyLock struct {
	mu    sync.Mutex
	locks map[string]*keyMutex
}

func NewKeyLock() *KeyLock {
	return &KeyLock{locks: make(map[string]*keyMutex)}
}

func (kl *KeyLock) acquire(key string) *keyMutex {
	kl.mu.Lock()
	defer kl.mu.Unlock()
	m, ok := kl.locks[key]
	if !ok {
		m = &keyMutex{ch: make(chan struct{}, 1)}
		kl.locks[key] = m
	}
	m.refs++
	return m
}

func (kl *KeyLock) release(key string, m *keyMutex) {
	kl.mu.Lock()
	defer kl.mu.Unlock()
	m.refs--
	if m.refs == 0 {
		delete(kl.locks, key)
	}
}

// Lock blocks until the key is free or ctx is done. The returned func unlocks.
func (kl *KeyLock) Lock(ctx context.Context, key string) (func(), error) {
	m := kl.acquire(key)
	select {
	case m.ch <- struct{}{}:
		return func() {
			<-m.ch
			kl.release(key, m)
		}, nil
	case <-ctx.Done():
		kl.release(key, m)
		return nil, ctx.Err()
	}
}

// WithLock runs fn while holding the key.
func (kl *KeyLock) WithLock(ctx context.Context, key string, fn func() error) error {
	unlock, err := kl.Lock(ctx, key)
	if err != nil {
		return err
	}
	defer unlock()
	return fn()
}

// Len reports how many keys are currently held or awaited.
func (kl *KeyLock) Len() int {
	kl.mu.Lock()
	defer kl.mu.Unlock()
	return len(kl.locks)
}
