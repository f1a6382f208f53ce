package keylock_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/raid-planner/internal/pkg/keylock"
)

func TestLockSerializesSameKey(t *testing.T) {
	var m keylock.Map
	var wg sync.WaitGroup
	counter := 0

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := m.Lock("group-1")
			defer unlock()
			v := counter
			counter = v + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestDifferentKeysDoNotBlock(t *testing.T) {
	var m keylock.Map
	unlockA := m.Lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlock := m.Lock("b")
		unlock()
		close(done)
	}()
	<-done
}

func TestUnlockReleasesKeys(t *testing.T) {
	var m keylock.Map
	for i := 0; i < 10000; i++ {
		unlock := m.Lock(fmt.Sprintf("group-%d", i))
		unlock()
	}

	assert.Equal(t, 0, m.Len())
}

func TestKeyKeptUntilLastHolderUnlocks(t *testing.T) {
	var m keylock.Map
	unlock := m.Lock("group-1")

	acquired := make(chan func())
	go func() {
		acquired <- m.Lock("group-1")
	}()

	unlock()
	second := <-acquired
	assert.Equal(t, 1, m.Len())

	second()
	second()
	assert.Equal(t, 0, m.Len())
}
