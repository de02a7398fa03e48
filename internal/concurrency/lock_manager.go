// Package concurrency provides in-process keyed locking.
package concurrency

import (
	"sync"
)

// LockManager handles named locks
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Lock blocks until key is free and returns the matching unlock func.
// The returned func is safe to call more than once.
func (lm *LockManager) Lock(key string) func() {
	mu := lm.GetLock(key)
	mu.Lock()
	var once sync.Once
	return func() { once.Do(mu.Unlock) }
}
