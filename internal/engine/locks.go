package engine

import "sync"

// LockTable hands out process-wide named locks. Locks are created
// lazily on first use and never removed; the name space stays small,
// one entry per cycle kind.
type LockTable struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewLockTable creates an empty lock table.
func NewLockTable() *LockTable {
	return &LockTable{locks: make(map[string]*sync.Mutex)}
}

// TryAcquire attempts to take the named lock without blocking,
// reporting whether it was acquired. When acquired, the returned
// release function must be called exactly once.
func (t *LockTable) TryAcquire(name string) (release func(), ok bool) {
	t.mu.Lock()
	l := t.locks[name]
	if l == nil {
		l = &sync.Mutex{}
		t.locks[name] = l
	}
	t.mu.Unlock()

	if !l.TryLock() {
		return nil, false
	}
	return l.Unlock, true
}
