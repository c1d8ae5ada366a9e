package clock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickIsMonotone(t *testing.T) {
	var c Clock
	prev := c.Value()
	for i := 0; i < 100; i++ {
		next := c.Tick()
		require.Greater(t, next, prev)
		prev = next
	}
}

func TestObserveTakesMaxPlusOne(t *testing.T) {
	var c Clock
	c.Tick() // value = 1

	got := c.Observe(10)
	assert.Equal(t, uint64(11), got)

	// A smaller received value still strictly advances the clock.
	got = c.Observe(1)
	assert.Equal(t, uint64(12), got)
}

func TestObserveZeroStillAdvances(t *testing.T) {
	var c Clock
	before := c.Value()
	after := c.Observe(0)
	assert.Greater(t, after, before)
}

func TestClockIsConcurrencySafe(t *testing.T) {
	var c Clock
	var wg sync.WaitGroup
	const goroutines = 50
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			c.Tick()
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(goroutines), c.Value())
}
