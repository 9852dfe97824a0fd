package usecases

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	locks := NewKeyedMutex()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			locks.Lock("KYC001")
			defer locks.Unlock("KYC001")
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	locks := NewKeyedMutex()

	locks.Lock("KYC001")

	done := make(chan struct{})
	go func() {
		locks.Lock("KYC002")
		locks.Unlock("KYC002")
		close(done)
	}()

	// A different key must not block behind KYC001.
	<-done
	locks.Unlock("KYC001")
}

func TestKeyedMutex_DropsEntryWhenUnreferenced(t *testing.T) {
	locks := NewKeyedMutex()

	locks.Lock("KYC001")
	locks.Unlock("KYC001")

	locks.mu.Lock()
	defer locks.mu.Unlock()
	assert.Empty(t, locks.locks)
}

func TestKeyedMutex_UnlockUnknownKeyIsHarmless(t *testing.T) {
	locks := NewKeyedMutex()
	assert.NotPanics(t, func() { locks.Unlock("never-locked") })
}
