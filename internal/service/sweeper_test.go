package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSweeper_RunsImmediatelyAndOnInterval(t *testing.T) {
	var count atomic.Int32
	s := NewSweeper("test", 20*time.Millisecond, 0, func(_ context.Context) error {
		count.Add(1)
		return nil
	}, zerolog.Nop())

	s.Start()
	time.Sleep(70 * time.Millisecond)
	s.Stop()

	// One immediate sweep plus at least two ticks.
	assert.GreaterOrEqual(t, count.Load(), int32(3))
}

func TestSweeper_SingleFlightDropsOverlappingTicks(t *testing.T) {
	var count atomic.Int32
	block := make(chan struct{})
	s := NewSweeper("test", 10*time.Millisecond, 0, func(_ context.Context) error {
		count.Add(1)
		<-block
		return nil
	}, zerolog.Nop())

	s.Start()
	time.Sleep(60 * time.Millisecond)
	close(block)
	s.Stop()

	assert.LessOrEqual(t, count.Load(), int32(2), "ticks during a running sweep are dropped, not queued")
}

func TestSweeper_StopWaitsForInFlightSweep(t *testing.T) {
	var finished atomic.Bool
	started := make(chan struct{})
	s := NewSweeper("test", time.Hour, 0, func(_ context.Context) error {
		close(started)
		time.Sleep(30 * time.Millisecond)
		finished.Store(true)
		return nil
	}, zerolog.Nop())

	s.Start()
	<-started
	s.Stop()

	assert.True(t, finished.Load(), "Stop must not return while a sweep is running")
}

func TestSweeper_TimeoutBoundsSweep(t *testing.T) {
	var deadlineSet atomic.Bool
	s := NewSweeper("test", time.Hour, 50*time.Millisecond, func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		deadlineSet.Store(ok)
		return errors.New("sweep failed")
	}, zerolog.Nop())

	s.Start()
	time.Sleep(20 * time.Millisecond)
	s.Stop()

	assert.True(t, deadlineSet.Load())
}
