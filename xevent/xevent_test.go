// SPDX-License-Identifier: Unlicense OR MIT

package xevent

import "testing"

// fakeConn is an in-memory event queue.
type fakeConn struct {
	masks map[Window]Mask
	queue []Event
	polls int
}

func (c *fakeConn) SelectInput(w Window, m Mask) {
	if c.masks == nil {
		c.masks = make(map[Window]Mask)
	}
	c.masks[w] = m
}

func (c *fakeConn) CheckWindowEvent(w Window) (Event, bool) {
	c.polls++
	for i, e := range c.queue {
		if e.Window == w {
			c.queue = append(c.queue[:i], c.queue[i+1:]...)
			return e, true
		}
	}
	return Event{}, false
}

func TestSetEventMask(t *testing.T) {
	c := new(fakeConn)
	SetEventMask(c, 7, []Bit{3, 5})
	if got, exp := c.masks[7], Mask(1<<3|1<<5); got != exp {
		t.Errorf("expected mask %#b got %#b", exp, got)
	}
	SetEventMask(c, 7, nil)
	if got := c.masks[7]; got != 0 {
		t.Errorf("empty bit list installed %#b", got)
	}
	SetEventMask(c, 7, []Bit{ExposureBit, ExposureBit, KeyPressBit})
	if got, exp := c.masks[7], Mask(1<<15|1); got != exp {
		t.Errorf("expected mask %#b got %#b", exp, got)
	}
}

func TestMask(t *testing.T) {
	m := MaskOf(StructureNotifyBit, FocusChangeBit)
	if !m.Has(StructureNotifyBit) || !m.Has(FocusChangeBit) || m.Has(KeyPressBit) {
		t.Errorf("unexpected mask %#b", m)
	}
	if MaskOf() != 0 {
		t.Error("MaskOf() must be empty")
	}
}

func TestParseBit(t *testing.T) {
	for b := KeyPressBit; b <= OwnerGrabButtonBit; b++ {
		got, err := ParseBit(b.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != b {
			t.Errorf("ParseBit(%q) = %d, expected %d", b.String(), got, b)
		}
	}
	if _, err := ParseBit("NoSuchMask"); err == nil {
		t.Error("expected error for unknown bit name")
	}
}

func TestPollNextEvent(t *testing.T) {
	c := &fakeConn{queue: []Event{
		{Type: Expose, Window: 2},
		{Type: KeyPress, Window: 1},
		{Type: KeyRelease, Window: 1},
	}}
	e := PollNextEvent(c, 1)
	if e == nil || e.Type != KeyPress {
		t.Fatalf("expected KeyPress on window 1, got %+v", e)
	}
	// The returned event is a copy, not a view into the queue.
	e.Type = ButtonPress
	if e2 := PollNextEvent(c, 1); e2 == nil || e2.Type != KeyRelease {
		t.Fatalf("expected KeyRelease on window 1, got %+v", e2)
	}
	for i := 0; i < 3; i++ {
		if e := PollNextEvent(c, 1); e != nil {
			t.Fatalf("poll %d: expected no event, got %+v", i, e)
		}
	}
	// Events for other windows stay queued.
	if len(c.queue) != 1 || c.queue[0].Window != 2 {
		t.Errorf("unexpected queue %+v", c.queue)
	}
}

func TestPollEmptyQueue(t *testing.T) {
	c := new(fakeConn)
	for i := 0; i < 5; i++ {
		if e := PollNextEvent(c, 42); e != nil {
			t.Fatalf("expected nil event, got %+v", e)
		}
	}
	if c.polls != 5 {
		t.Errorf("expected 5 polls, got %d", c.polls)
	}
}

func TestDecodeEventType(t *testing.T) {
	tests := []struct {
		typ Type
		exp Variant
	}{
		{KeyPress, Kind(1)},
		{KeyPress, KindKeyPress},
		{KeyRelease, KindKeyRelease},
		{Expose, KindExpose},
		{ConfigureNotify, KindConfigureNotify},
		{ColormapNotify, Kind(31)},
		{MappingNotify, Kind(32)},
		{MappingNotify, KindMappingNotify},
		{GenericEvent, KindGenericEvent},
		{LASTEvent, KindLastEvent},
		{0, KindUnknown},
		{1, KindUnknown},
		{37, KindUnknown},
		{-4, KindUnknown},
		{1000, KindUnknown},
	}
	for _, test := range tests {
		got := DecodeEventType(&Event{Type: test.typ})
		if got != test.exp {
			t.Errorf("DecodeEventType(%v): expected %v got %v", test.typ, test.exp, got)
		}
	}
}

func TestDecodeEveryCoreType(t *testing.T) {
	for typ := KeyPress; typ <= ColormapNotify; typ++ {
		k, ok := DecodeEventType(&Event{Type: typ}).(Kind)
		if !ok || int(k) != int(typ)-1 {
			t.Errorf("%v decoded to %v", typ, k)
		}
		if k.String() != typ.String() {
			t.Errorf("kind name %q does not match type name %q", k, typ)
		}
	}
}

func TestDecodeClientMessage(t *testing.T) {
	e := &Event{Type: ClientMessage, Format: 32, Data: [5]uint64{0x1234, 5, 6}}
	got := DecodeEventType(e)
	if exp := (Message{Data: 0x1234}); got != exp {
		t.Errorf("expected %v got %v", exp, got)
	}
	if _, isKind := got.(Kind); isKind {
		t.Error("ClientMessage must not decode to a Kind")
	}
}

func TestNames(t *testing.T) {
	tests := []struct {
		got, exp string
	}{
		{KindUnknown.String(), "Unknown"},
		{KindMappingNotify.String(), "MappingNotify"},
		{KindLastEvent.String(), "LASTEvent"},
		{Kind(200).String(), "Kind(200)"},
		{Type(99).String(), "Type(99)"},
		{Message{Data: 0x10}.String(), "ClientMessage(0x10)"},
		{Bit(40).String(), "Bit(40)"},
	}
	for _, test := range tests {
		if test.got != test.exp {
			t.Errorf("expected %q got %q", test.exp, test.got)
		}
	}
}
