package database

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lshigami/Tally/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateSerialises(t *testing.T) {
	g := newGate(0)

	var inFlight, maxInFlight int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := g.Run(context.Background(), "test", func(context.Context) error {
				n := atomic.AddInt32(&inFlight, 1)
				for {
					m := atomic.LoadInt32(&maxInFlight)
					if n <= m || atomic.CompareAndSwapInt32(&maxInFlight, m, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&inFlight, -1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), maxInFlight)
}

func TestGateReportsContention(t *testing.T) {
	g := newGate(20 * time.Millisecond)

	held := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = g.Run(context.Background(), "holder", func(context.Context) error {
			close(held)
			<-release
			return nil
		})
	}()
	<-held
	defer close(release)

	called := false
	err := g.Run(context.Background(), "waiter", func(context.Context) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrLockContention)
	assert.False(t, called)
}

func TestGateDetachesCancellation(t *testing.T) {
	g := newGate(0)
	ctx, cancel := context.WithCancel(context.Background())

	err := g.Run(ctx, "op", func(inner context.Context) error {
		cancel()
		return inner.Err()
	})
	assert.NoError(t, err)
}

func TestGatePropagatesError(t *testing.T) {
	g := newGate(0)
	boom := errors.New("boom")
	assert.ErrorIs(t, g.Run(context.Background(), "op", func(context.Context) error { return boom }), boom)
}
