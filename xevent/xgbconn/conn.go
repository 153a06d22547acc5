// SPDX-License-Identifier: Unlicense OR MIT

// Package xgbconn implements xevent.Conn on top of the pure Go X protocol
// client github.com/BurntSushi/xgb. It needs no libX11.
package xgbconn

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"go.uber.org/zap"

	"github.com/glxbind/glxbind/xevent"
)

// Conn is an X connection. Unlike Xlib, xgb has a single event queue that
// cannot be searched, so events read for other windows are kept in a
// backlog until they are asked for.
type Conn struct {
	c       *xgb.Conn
	xu      *xgbutil.XUtil
	backlog []xevent.Event
}

// Dial connects to the named display, or to $DISPLAY if name is empty.
func Dial(name string) (*Conn, error) {
	c, err := xgb.NewConnDisplay(name)
	if err != nil {
		return nil, fmt.Errorf("xgbconn: connect to %q: %w", name, err)
	}
	return &Conn{c: c}, nil
}

// Close closes the connection.
func (c *Conn) Close() {
	c.c.Close()
}

// X returns the underlying xgb connection.
func (c *Conn) X() *xgb.Conn {
	return c.c
}

// CreateWindow creates and maps a top level window on the default screen.
func (c *Conn) CreateWindow(width, height int) (xevent.Window, error) {
	scr := xproto.Setup(c.c).DefaultScreen(c.c)
	wid, err := xproto.NewWindowId(c.c)
	if err != nil {
		return xevent.None, fmt.Errorf("xgbconn: allocate window id: %w", err)
	}
	err = xproto.CreateWindowChecked(c.c, scr.RootDepth, wid, scr.Root,
		0, 0, uint16(width), uint16(height), 0,
		xproto.WindowClassInputOutput, scr.RootVisual,
		xproto.CwBackPixel, []uint32{scr.WhitePixel}).Check()
	if err != nil {
		return xevent.None, fmt.Errorf("xgbconn: create window: %w", err)
	}
	if err := xproto.MapWindowChecked(c.c, wid).Check(); err != nil {
		return xevent.None, fmt.Errorf("xgbconn: map window %d: %w", wid, err)
	}
	return xevent.Window(wid), nil
}

// SetTitle sets both the ICCCM and the EWMH (UTF-8) name of w.
func (c *Conn) SetTitle(w xevent.Window, title string) error {
	if c.xu == nil {
		xu, err := xgbutil.NewConnXgb(c.c)
		if err != nil {
			return fmt.Errorf("xgbconn: %w", err)
		}
		c.xu = xu
	}
	if err := icccm.WmNameSet(c.xu, xproto.Window(w), title); err != nil {
		return fmt.Errorf("xgbconn: set WM_NAME: %w", err)
	}
	if err := ewmh.WmNameSet(c.xu, xproto.Window(w), title); err != nil {
		return fmt.Errorf("xgbconn: set _NET_WM_NAME: %w", err)
	}
	return nil
}

// DestroyWindow destroys w. Errors are reported asynchronously.
func (c *Conn) DestroyWindow(w xevent.Window) {
	xproto.DestroyWindow(c.c, xproto.Window(w))
}

// SelectInput implements xevent.Conn. Errors are reported asynchronously,
// as with XSelectInput.
func (c *Conn) SelectInput(w xevent.Window, m xevent.Mask) {
	xproto.ChangeWindowAttributes(c.c, xproto.Window(w), xproto.CwEventMask, []uint32{uint32(m)})
}

// CheckWindowEvent implements xevent.Conn.
func (c *Conn) CheckWindowEvent(w xevent.Window) (xevent.Event, bool) {
	if e, ok := c.takeBacklog(w); ok {
		return e, true
	}
	for {
		ev, xerr := c.c.PollForEvent()
		if ev == nil && xerr == nil {
			return xevent.Event{}, false
		}
		if xerr != nil {
			Logger().Warn("x protocol error", zap.Error(xerr))
			continue
		}
		e, ok := translate(ev)
		if !ok {
			Logger().Debug("dropping untranslatable event", zap.String("event", ev.String()))
			continue
		}
		if e.Window == w {
			return e, true
		}
		c.keep(e)
	}
}

// maxBacklog bounds the events kept for windows nobody polls.
const maxBacklog = 1024

// keep keeps e for a later CheckWindowEvent on its window, dropping the
// oldest kept event when the backlog is full.
func (c *Conn) keep(e xevent.Event) {
	if len(c.backlog) >= maxBacklog {
		old := c.backlog[0]
		Logger().Debug("backlog full, dropping event",
			zap.Stringer("type", old.Type), zap.Uint32("window", uint32(old.Window)))
		copy(c.backlog, c.backlog[1:])
		c.backlog = c.backlog[:len(c.backlog)-1]
	}
	c.backlog = append(c.backlog, e)
}

func (c *Conn) takeBacklog(w xevent.Window) (xevent.Event, bool) {
	for i, e := range c.backlog {
		if e.Window == w {
			copy(c.backlog[i:], c.backlog[i+1:])
			c.backlog = c.backlog[:len(c.backlog)-1]
			return e, true
		}
	}
	return xevent.Event{}, false
}

// translate converts an xgb event to an xevent.Event. The window is the one
// Xlib reports in the window field of XAnyEvent; KeymapNotify and
// MappingNotify carry none.
func translate(ev xgb.Event) (xevent.Event, bool) {
	var (
		t   xevent.Type
		w   xproto.Window
		seq uint16
	)
	switch ev := ev.(type) {
	case xproto.KeyPressEvent:
		t, w, seq = xevent.KeyPress, ev.Event, ev.Sequence
	case xproto.KeyReleaseEvent:
		t, w, seq = xevent.KeyRelease, ev.Event, ev.Sequence
	case xproto.ButtonPressEvent:
		t, w, seq = xevent.ButtonPress, ev.Event, ev.Sequence
	case xproto.ButtonReleaseEvent:
		t, w, seq = xevent.ButtonRelease, ev.Event, ev.Sequence
	case xproto.MotionNotifyEvent:
		t, w, seq = xevent.MotionNotify, ev.Event, ev.Sequence
	case xproto.EnterNotifyEvent:
		t, w, seq = xevent.EnterNotify, ev.Event, ev.Sequence
	case xproto.LeaveNotifyEvent:
		t, w, seq = xevent.LeaveNotify, ev.Event, ev.Sequence
	case xproto.FocusInEvent:
		t, w, seq = xevent.FocusIn, ev.Event, ev.Sequence
	case xproto.FocusOutEvent:
		t, w, seq = xevent.FocusOut, ev.Event, ev.Sequence
	case xproto.ExposeEvent:
		t, w, seq = xevent.Expose, ev.Window, ev.Sequence
	case xproto.GraphicsExposureEvent:
		t, w, seq = xevent.GraphicsExpose, xproto.Window(ev.Drawable), ev.Sequence
	case xproto.NoExposureEvent:
		t, w, seq = xevent.NoExpose, xproto.Window(ev.Drawable), ev.Sequence
	case xproto.VisibilityNotifyEvent:
		t, w, seq = xevent.VisibilityNotify, ev.Window, ev.Sequence
	case xproto.CreateNotifyEvent:
		t, w, seq = xevent.CreateNotify, ev.Parent, ev.Sequence
	case xproto.DestroyNotifyEvent:
		t, w, seq = xevent.DestroyNotify, ev.Event, ev.Sequence
	case xproto.UnmapNotifyEvent:
		t, w, seq = xevent.UnmapNotify, ev.Event, ev.Sequence
	case xproto.MapNotifyEvent:
		t, w, seq = xevent.MapNotify, ev.Event, ev.Sequence
	case xproto.MapRequestEvent:
		t, w, seq = xevent.MapRequest, ev.Parent, ev.Sequence
	case xproto.ReparentNotifyEvent:
		t, w, seq = xevent.ReparentNotify, ev.Event, ev.Sequence
	case xproto.ConfigureNotifyEvent:
		t, w, seq = xevent.ConfigureNotify, ev.Event, ev.Sequence
	case xproto.ConfigureRequestEvent:
		t, w, seq = xevent.ConfigureRequest, ev.Parent, ev.Sequence
	case xproto.GravityNotifyEvent:
		t, w, seq = xevent.GravityNotify, ev.Event, ev.Sequence
	case xproto.ResizeRequestEvent:
		t, w, seq = xevent.ResizeRequest, ev.Window, ev.Sequence
	case xproto.CirculateNotifyEvent:
		t, w, seq = xevent.CirculateNotify, ev.Event, ev.Sequence
	case xproto.CirculateRequestEvent:
		t, w, seq = xevent.CirculateRequest, ev.Event, ev.Sequence
	case xproto.PropertyNotifyEvent:
		t, w, seq = xevent.PropertyNotify, ev.Window, ev.Sequence
	case xproto.SelectionClearEvent:
		t, w, seq = xevent.SelectionClear, ev.Owner, ev.Sequence
	case xproto.SelectionRequestEvent:
		t, w, seq = xevent.SelectionRequest, ev.Owner, ev.Sequence
	case xproto.SelectionNotifyEvent:
		t, w, seq = xevent.SelectionNotify, ev.Requestor, ev.Sequence
	case xproto.ColormapNotifyEvent:
		t, w, seq = xevent.ColormapNotify, ev.Window, ev.Sequence
	case xproto.MappingNotifyEvent:
		t, seq = xevent.MappingNotify, ev.Sequence
	case xproto.KeymapNotifyEvent:
		t = xevent.KeymapNotify
	case xproto.ClientMessageEvent:
		e := xevent.Event{
			Type:        xevent.ClientMessage,
			Serial:      uint64(ev.Sequence),
			Window:      xevent.Window(ev.Window),
			MessageType: xevent.Atom(ev.Type),
			Format:      int32(ev.Format),
		}
		// xgb decodes every member of the data union; Data32 lines up with
		// the long array of XClientMessageEvent, which Xlib sign extends.
		for i := 0; i < len(e.Data) && i < len(ev.Data.Data32); i++ {
			e.Data[i] = uint64(int64(int32(ev.Data.Data32[i])))
		}
		return e, true
	default:
		return xevent.Event{}, false
	}
	return xevent.Event{Type: t, Serial: uint64(seq), Window: xevent.Window(w)}, true
}
