package ext

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestLock_Serializes(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	counter := 0

	var g errgroup.Group
	for range 100 {
		g.Go(func() error {
			Lock(&mu, func() int {
				counter++
				return counter
			})
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, 100, counter)
}

func TestLock_ReturnsValue(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	assert.Equal(t, "done", Lock(&mu, func() string { return "done" }))
}

func TestLock_ReleasesOnPanic(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	assert.Panics(t, func() {
		LockDo(&mu, func() { panic("boom") })
	})

	require.True(t, mu.TryLock())
	mu.Unlock()
}

func TestLock_NilArguments(t *testing.T) {
	t.Parallel()

	var mu *sync.Mutex
	assert.PanicsWithError(t, "argument 'locker' must not be nil", func() {
		LockDo(mu, func() {})
	})
	assert.PanicsWithError(t, "argument 'fn' must not be nil", func() {
		LockDo(&sync.Mutex{}, nil)
	})
	assert.PanicsWithError(t, "argument 'locker' must not be nil", func() {
		LockDo(nil, nil)
	})
}
