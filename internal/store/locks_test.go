package store

import (
	"sync"
	"testing"
)

func TestKeyedMutex_MutualExclusionPerKey(t *testing.T) {
	km := newKeyedMutex()

	const goroutines = 50
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			km.Lock("verse-a")
			counter++
			km.Unlock("verse-a")
		}()
	}
	wg.Wait()

	if counter != goroutines {
		t.Errorf("counter = %d, want %d (lost increments mean broken exclusion)", counter, goroutines)
	}
}

func TestKeyedMutex_KeysAreIndependent(t *testing.T) {
	km := newKeyedMutex()

	// Holding one key must not block another.
	km.Lock("verse-a")
	done := make(chan struct{})
	go func() {
		km.Lock("verse-b")
		km.Unlock("verse-b")
		close(done)
	}()
	<-done
	km.Unlock("verse-a")
}

func TestKeyedMutex_EvictsIdleEntries(t *testing.T) {
	km := newKeyedMutex()

	const goroutines = 20
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		key := "verse-" + string(rune('a'+i%5))
		wg.Add(1)
		go func() {
			defer wg.Done()
			km.Lock(key)
			km.Unlock(key)
		}()
	}
	wg.Wait()

	km.mu.Lock()
	size := len(km.locks)
	km.mu.Unlock()
	if size != 0 {
		t.Errorf("lock map holds %d entries after all unlocks, want 0", size)
	}
}
