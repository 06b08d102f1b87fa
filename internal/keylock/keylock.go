package keylock

import "sync"

// KeyLock provides one mutex per string key. The bid intake path uses
// it to serialize read-compute-append per product, so the minimum
// increment is always checked against the ledger state that the append
// will land on. Entries are kept for the life of the process; the key
// space is bounded by the product catalog.
type KeyLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates an empty KeyLock
func New() *KeyLock {
	return &KeyLock{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for key, creating it on first use, and
// returns the function that releases it.
func (l *KeyLock) Lock(key string) (unlock func()) {
	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
