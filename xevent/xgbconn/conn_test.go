// SPDX-License-Identifier: Unlicense OR MIT

package xgbconn

import (
	"testing"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/glxbind/glxbind/xevent"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		ev  xgb.Event
		typ xevent.Type
		win xevent.Window
	}{
		{xproto.KeyPressEvent{Sequence: 3, Event: 10, Child: 11, Root: 1}, xevent.KeyPress, 10},
		{xproto.KeyReleaseEvent{Event: 10}, xevent.KeyRelease, 10},
		{xproto.ButtonPressEvent{Event: 12}, xevent.ButtonPress, 12},
		{xproto.MotionNotifyEvent{Event: 13}, xevent.MotionNotify, 13},
		{xproto.LeaveNotifyEvent{Event: 14}, xevent.LeaveNotify, 14},
		{xproto.FocusOutEvent{Event: 15}, xevent.FocusOut, 15},
		{xproto.ExposeEvent{Window: 16}, xevent.Expose, 16},
		{xproto.NoExposureEvent{Drawable: 17}, xevent.NoExpose, 17},
		{xproto.CreateNotifyEvent{Parent: 18, Window: 99}, xevent.CreateNotify, 18},
		{xproto.MapRequestEvent{Parent: 19, Window: 99}, xevent.MapRequest, 19},
		{xproto.ConfigureNotifyEvent{Event: 20, Window: 99}, xevent.ConfigureNotify, 20},
		{xproto.ConfigureRequestEvent{Parent: 21, Window: 99}, xevent.ConfigureRequest, 21},
		{xproto.PropertyNotifyEvent{Window: 22}, xevent.PropertyNotify, 22},
		{xproto.SelectionRequestEvent{Owner: 23, Requestor: 99}, xevent.SelectionRequest, 23},
		{xproto.SelectionNotifyEvent{Requestor: 24}, xevent.SelectionNotify, 24},
		{xproto.MappingNotifyEvent{}, xevent.MappingNotify, xevent.None},
	}
	for _, test := range tests {
		e, ok := translate(test.ev)
		if !ok {
			t.Errorf("%T: not translated", test.ev)
			continue
		}
		if e.Type != test.typ || e.Window != test.win {
			t.Errorf("%T: expected %v on %d, got %v on %d", test.ev, test.typ, test.win, e.Type, e.Window)
		}
	}
}

func TestTranslateClientMessage(t *testing.T) {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: 5,
		Type:   300,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{0x1234, 1, 2, 3, 4}),
	}
	e, ok := translate(ev)
	if !ok {
		t.Fatal("client message not translated")
	}
	if e.Type != xevent.ClientMessage || e.Window != 5 || e.MessageType != 300 || e.Format != 32 {
		t.Errorf("unexpected event %+v", e)
	}
	if got, exp := xevent.DecodeEventType(&e), (xevent.Message{Data: 0x1234}); got != exp {
		t.Errorf("expected %v got %v", exp, got)
	}
}

func TestTranslateClientMessageSignExtends(t *testing.T) {
	// Xlib stores the 32 bit words in longs, sign extended.
	tests := []struct {
		word uint32
		exp  uint64
	}{
		{0x7fffffff, 0x7fffffff},
		{0x80000000, 0xffffffff80000000},
		{0xffffffff, 0xffffffffffffffff},
	}
	for _, test := range tests {
		ev := xproto.ClientMessageEvent{
			Format: 32,
			Window: 5,
			Data:   xproto.ClientMessageDataUnionData32New([]uint32{test.word, 0, 0, 0, test.word}),
		}
		e, ok := translate(ev)
		if !ok {
			t.Fatal("client message not translated")
		}
		if got, exp := xevent.DecodeEventType(&e), (xevent.Message{Data: test.exp}); got != exp {
			t.Errorf("%#x: expected %v got %v", test.word, exp, got)
		}
		if e.Data[4] != test.exp {
			t.Errorf("%#x: expected last word %#x got %#x", test.word, test.exp, e.Data[4])
		}
	}
}

func TestBacklog(t *testing.T) {
	c := &Conn{backlog: []xevent.Event{
		{Type: xevent.Expose, Window: 1},
		{Type: xevent.KeyPress, Window: 2},
		{Type: xevent.KeyRelease, Window: 1},
	}}
	e, ok := c.takeBacklog(1)
	if !ok || e.Type != xevent.Expose {
		t.Fatalf("expected Expose, got %+v", e)
	}
	e, ok = c.takeBacklog(1)
	if !ok || e.Type != xevent.KeyRelease {
		t.Fatalf("expected KeyRelease, got %+v", e)
	}
	if _, ok := c.takeBacklog(1); ok {
		t.Fatal("backlog for window 1 should be empty")
	}
	if len(c.backlog) != 1 || c.backlog[0].Window != 2 {
		t.Errorf("unexpected backlog %+v", c.backlog)
	}
}

func TestBacklogBounded(t *testing.T) {
	c := &Conn{}
	for i := 0; i < maxBacklog+10; i++ {
		c.keep(xevent.Event{Type: xevent.MappingNotify, Serial: uint64(i)})
	}
	if len(c.backlog) != maxBacklog {
		t.Fatalf("expected %d kept events, got %d", maxBacklog, len(c.backlog))
	}
	// The oldest events are dropped first.
	e, ok := c.takeBacklog(xevent.None)
	if !ok || e.Serial != 10 {
		t.Errorf("expected serial 10 first, got %+v", e)
	}
}
