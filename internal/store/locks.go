package store

import "sync"

// keyedMutex serializes writers per verse id. SQLite gives us a single
// writer at the file level, but the read-modify-write in ApplyReview
// spans two statements: without the per-id lock a concurrent writer
// could slip between the read and the update and its scheduling change
// would be silently overwritten.
//
// Entries are reference counted and evicted when the last holder
// unlocks, so the map stays bounded by the number of verses currently
// being written rather than growing with every id ever touched.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*verseLock
}

type verseLock struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*verseLock)}
}

// Lock acquires the mutex for key, creating it on first use.
func (k *keyedMutex) Lock(key string) {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &verseLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()
}

// Unlock releases the mutex for key and drops the entry once no other
// goroutine holds or waits on it.
func (k *keyedMutex) Unlock(key string) {
	k.mu.Lock()
	l := k.locks[key]
	l.refs--
	if l.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()

	l.mu.Unlock()
}
