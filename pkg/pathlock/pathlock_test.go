package pathlock_test

import (
	"sync"
	"testing"

	"github.com/filebox/filebox/pkg/pathlock"
)

func TestMutualExclusion(t *testing.T) {
	pl := pathlock.New()

	var counter int
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pl.Lock("/same/path")
			counter++
			pl.Unlock("/same/path")
		}()
	}
	wg.Wait()

	if counter != 100 {
		t.Errorf("counter = %d, want 100", counter)
	}
}

func TestIndependentPaths(t *testing.T) {
	pl := pathlock.New()

	paths := []string{"/a", "/b", "/c"}
	var wg sync.WaitGroup
	for _, p := range paths {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				pl.Lock(path)
				pl.Unlock(path)
			}
		}(p)
	}
	wg.Wait()
}

func TestUnlockUnknownPath(t *testing.T) {
	pl := pathlock.New()
	// Must not panic or deadlock.
	pl.Unlock("/never/locked")
}
