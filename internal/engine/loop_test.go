package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoopStopsFromCallback(t *testing.T) {
	loop := NewLoop()
	loop.Interval = 0
	loop.ReportEvery = 2

	ticks := 0
	reports := 0
	loop.OnTick = func(tick uint64) {
		ticks++
		if tick >= 5 {
			loop.Stop()
		}
	}
	loop.OnReport = func(uint64) { reports++ }

	done := make(chan struct{})
	go func() {
		loop.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop")
	}
	assert.Equal(t, 5, ticks)
	assert.Equal(t, 2, reports, "reports at ticks 2 and 4")
}

func TestLoopStopsFromAnotherGoroutine(t *testing.T) {
	loop := NewLoop()
	loop.Interval = time.Millisecond

	started := make(chan struct{})
	var once sync.Once
	loop.OnTick = func(uint64) {
		once.Do(func() { close(started) })
	}

	done := make(chan struct{})
	go func() {
		loop.Run()
		close(done)
	}()

	<-started
	loop.Stop()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not honor Stop from another goroutine")
	}
}
