package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// SweepFunc is one idempotent pass of a periodic task.
type SweepFunc func(ctx context.Context) error

// Sweeper runs a SweepFunc on a fixed interval. Each sweep is single-flight:
// if a sweep is still running when the ticker fires, the tick is dropped
// rather than queued. Sweepers do not coordinate with each other; safety
// comes from each sweep being idempotent against the store.
type Sweeper struct {
	name     string
	interval time.Duration
	timeout  time.Duration
	fn       SweepFunc
	log      zerolog.Logger

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewSweeper creates a sweeper. timeout bounds a single sweep; zero means
// the sweep inherits no deadline.
func NewSweeper(name string, interval, timeout time.Duration, fn SweepFunc, log zerolog.Logger) *Sweeper {
	return &Sweeper{
		name:     name,
		interval: interval,
		timeout:  timeout,
		fn:       fn,
		log:      log,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the sweep loop. The first sweep runs immediately.
func (s *Sweeper) Start() {
	go s.run()
}

// Stop signals the loop to exit and waits for any in-flight sweep.
func (s *Sweeper) Stop() {
	close(s.stop)
	<-s.done
}

func (s *Sweeper) run() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Sweeper) sweep() {
	if !s.mu.TryLock() {
		s.log.Warn().Str("sweeper", s.name).Msg("previous sweep still running, skipping tick")
		return
	}
	defer s.mu.Unlock()

	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	if err := s.fn(ctx); err != nil {
		s.log.Error().Err(err).
			Str("sweeper", s.name).
			Dur("elapsed", time.Since(start)).
			Msg("sweep failed")
		return
	}
	s.log.Debug().
		Str("sweeper", s.name).
		Dur("elapsed", time.Since(start)).
		Msg("sweep done")
}
