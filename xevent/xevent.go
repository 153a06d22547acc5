// SPDX-License-Identifier: Unlicense OR MIT

/*
Package xevent selects and polls X window system events for one window and
decodes them into a closed set of variants.

The connection itself, and its event queue, belong to a backend: package
xlib wraps libX11, package xgbconn speaks the X protocol directly. Neither
the backends nor this package lock; a connection must be used from one
goroutine at a time.

A typical loop drains every queued event for a window:

	xevent.SetEventMask(conn, win, []xevent.Bit{xevent.KeyPressBit, xevent.ExposureBit})
	for e := xevent.PollNextEvent(conn, win); e != nil; e = xevent.PollNextEvent(conn, win) {
		switch v := xevent.DecodeEventType(e).(type) {
		case xevent.Message:
			...
		case xevent.Kind:
			...
		}
	}
*/
package xevent

// Conn is a connection to an X server.
type Conn interface {
	// SelectInput replaces the event mask of w.
	SelectInput(w Window, m Mask)
	// CheckWindowEvent removes and returns the first queued event reported
	// on w, leaving other events queued. It does not block; ok is false if
	// no such event is queued.
	CheckWindowEvent(w Window) (e Event, ok bool)
}

// SetEventMask subscribes w to the events of the given mask bits and
// unsubscribes it from all others.
func SetEventMask(c Conn, w Window, bits []Bit) {
	c.SelectInput(w, MaskOf(bits...))
}

// PollNextEvent returns the next queued event for w, or nil if there is
// none. It never blocks.
func PollNextEvent(c Conn, w Window) *Event {
	e, ok := c.CheckWindowEvent(w)
	if !ok {
		return nil
	}
	return &e
}
