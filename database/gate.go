package database

import (
	"context"
	"time"

	"github.com/lshigami/Tally/config"
	"github.com/lshigami/Tally/internal/apperr"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"
)

// Gate serialises every store operation in the process: at most one runs at
// a time. It replaces a mutex so a waiter can give up and report contention.
type Gate struct {
	sem     *semaphore.Weighted
	timeout time.Duration
}

func NewGate(cfg *config.Config) *Gate {
	return newGate(cfg.Store.LockTimeout)
}

func newGate(timeout time.Duration) *Gate {
	return &Gate{sem: semaphore.NewWeighted(1), timeout: timeout}
}

// Run waits for the gate, then calls fn while holding it. Once fn starts it
// runs to completion: the context it receives is detached from ctx's
// cancellation.
func (g *Gate) Run(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	waitCtx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	if err := g.sem.Acquire(waitCtx, 1); err != nil {
		log.Warn().Err(err).Str("op", op).Msg("Store gate not acquired")
		return apperr.LockContention(op, err)
	}
	defer g.sem.Release(1)

	return fn(context.WithoutCancel(ctx))
}
