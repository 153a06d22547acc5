// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/glxbind/glxbind/xevent"
)

// fakeSource queues events up front and blocks in wait until woken or the
// timeout passes.
type fakeSource struct {
	events  []xevent.Event
	waitErr error

	woken    chan struct{}
	wakeOnce sync.Once
}

func newFakeSource(events ...xevent.Event) *fakeSource {
	return &fakeSource{events: events, woken: make(chan struct{})}
}

func (s *fakeSource) SelectInput(w xevent.Window, m xevent.Mask) {}

func (s *fakeSource) CheckWindowEvent(w xevent.Window) (xevent.Event, bool) {
	for i, e := range s.events {
		if e.Window == w {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return e, true
		}
	}
	return xevent.Event{}, false
}

func (s *fakeSource) createWindow(width, height int) (xevent.Window, error) { return 1, nil }
func (s *fakeSource) destroyWindow(w xevent.Window)                         {}
func (s *fakeSource) Close()                                                {}

func (s *fakeSource) wait(timeout time.Duration) error {
	if s.waitErr != nil {
		return s.waitErr
	}
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case <-s.woken:
	case <-t.C:
	}
	return nil
}

func (s *fakeSource) wake() {
	s.wakeOnce.Do(func() { close(s.woken) })
}

func TestRunStopsOnCancel(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	src := newFakeSource(
		xevent.Event{Type: xevent.Expose, Window: 7},
		xevent.Event{Type: xevent.KeyPress, Window: 8},
		xevent.Event{Type: xevent.ClientMessage, Window: 7, Format: 32, Data: [5]uint64{0x42}},
	)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		// The interval is far longer than the test; only wake can end the wait.
		done <- run(ctx, zap.New(core), src, 7, time.Hour)
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}
	entries := logs.FilterMessage("event").All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 events for window 7, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["event"]; got != "Expose" {
		t.Errorf("expected Expose first, got %v", got)
	}
	if got := entries[1].ContextMap()["event"]; got != "ClientMessage(0x42)" {
		t.Errorf("expected ClientMessage(0x42), got %v", got)
	}
}

func TestRunReturnsWaitError(t *testing.T) {
	src := newFakeSource()
	src.waitErr = errors.New("connection closed")
	err := run(context.Background(), zap.NewNop(), src, 1, time.Hour)
	if err == nil || err.Error() != "connection closed" {
		t.Fatalf("expected the wait error, got %v", err)
	}
}
