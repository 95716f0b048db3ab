// Package pathlock serializes mutating operations on individual paths.
//
// Handlers that write into the served tree (uploads, renames, deletes) take
// the lock for the cleaned target path, so two concurrent uploads to the
// same file cannot interleave while writes to unrelated paths proceed in
// parallel. Locks are reference counted and removed from the table once the
// last holder releases them, so the table only ever holds in-flight paths.
package pathlock

import "sync"

// PathLock hands out one mutex per path, on demand.
type PathLock struct {
	mu    sync.Mutex
	inUse map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func New() *PathLock {
	return &PathLock{inUse: make(map[string]*entry)}
}

// Lock blocks until the lock for path is held by the caller.
func (pl *PathLock) Lock(path string) {
	pl.mu.Lock()
	e, ok := pl.inUse[path]
	if !ok {
		e = &entry{}
		pl.inUse[path] = e
	}
	e.refs++
	pl.mu.Unlock()

	e.mu.Lock()
}

// Unlock releases the lock for path. The entry is dropped from the table
// when no other goroutine is holding or waiting on it.
func (pl *PathLock) Unlock(path string) {
	pl.mu.Lock()
	e, ok := pl.inUse[path]
	if !ok {
		pl.mu.Unlock()
		return
	}
	e.refs--
	if e.refs == 0 {
		delete(pl.inUse, path)
	}
	pl.mu.Unlock()

	e.mu.Unlock()
}
