// SPDX-License-Identifier: Unlicense OR MIT

//go:build (linux && !android && !nox11) || freebsd || openbsd
// +build linux,!android,!nox11 freebsd openbsd

// Package xlib implements xevent.Conn with libX11.
package xlib

/*
#cgo LDFLAGS: -lX11
#cgo freebsd openbsd CFLAGS: -I/usr/X11R6/include -I/usr/local/include
#cgo freebsd openbsd LDFLAGS: -L/usr/X11R6/lib -L/usr/local/lib
#include <stdlib.h>
#include <X11/Xlib.h>

static Bool glxbind_match_window(Display *dpy, XEvent *ev, XPointer arg) {
	return ev->xany.window == (Window)arg;
}

static Bool glxbind_check_window_event(Display *dpy, Window win, XEvent *ev) {
	return XCheckIfEvent(dpy, ev, glxbind_match_window, (XPointer)win);
}
*/
import "C"
import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/glxbind/glxbind/xevent"
)

// Display is a connection to an X server through libX11.
type Display struct {
	x   *C.Display
	xev *C.XEvent
}

var (
	x11Threads sync.Once
	x11Err     error
)

// Open connects to the named display, or to $DISPLAY if name is empty.
func Open(name string) (*Display, error) {
	x11Threads.Do(func() {
		if C.XInitThreads() == 0 {
			x11Err = errors.New("xlib: threads init failed")
		}
	})
	if x11Err != nil {
		return nil, x11Err
	}
	var cname *C.char
	if name != "" {
		cname = C.CString(name)
		defer C.free(unsafe.Pointer(cname))
	}
	dpy := C.XOpenDisplay(cname)
	if dpy == nil {
		return nil, fmt.Errorf("xlib: cannot connect to the X server %q", name)
	}
	return &Display{x: dpy, xev: new(C.XEvent)}, nil
}

// Close closes the connection. Calling it again has no effect.
func (d *Display) Close() {
	if d.x == nil {
		return
	}
	C.XCloseDisplay(d.x)
	d.x = nil
}

// Fd returns the file descriptor of the connection, for use with poll.
func (d *Display) Fd() int {
	return int(C.XConnectionNumber(d.x))
}

// Flush sends buffered requests to the server.
func (d *Display) Flush() {
	C.XFlush(d.x)
}

// Pending returns the number of events received but not yet removed from
// the queue, for any window.
func (d *Display) Pending() int {
	return int(C.XPending(d.x))
}

// CreateWindow creates and maps a top level window on the default screen.
func (d *Display) CreateWindow(width, height int) xevent.Window {
	scr := C.XDefaultScreen(d.x)
	win := C.XCreateSimpleWindow(d.x, C.XDefaultRootWindow(d.x),
		0, 0, C.uint(width), C.uint(height), 0,
		C.XBlackPixel(d.x, scr), C.XWhitePixel(d.x, scr))
	C.XMapWindow(d.x, win)
	C.XFlush(d.x)
	return xevent.Window(win)
}

// DestroyWindow destroys w and flushes the request.
func (d *Display) DestroyWindow(w xevent.Window) {
	C.XDestroyWindow(d.x, C.Window(w))
	C.XFlush(d.x)
}

// SelectInput implements xevent.Conn.
func (d *Display) SelectInput(w xevent.Window, m xevent.Mask) {
	C.XSelectInput(d.x, C.Window(w), C.long(m))
}

// CheckWindowEvent implements xevent.Conn with XCheckIfEvent.
func (d *Display) CheckWindowEvent(w xevent.Window) (xevent.Event, bool) {
	if C.glxbind_check_window_event(d.x, C.Window(w), d.xev) != C.True {
		return xevent.Event{}, false
	}
	return convertEvent(d.xev), true
}

func convertEvent(xev *C.XEvent) xevent.Event {
	xany := (*C.XAnyEvent)(unsafe.Pointer(xev))
	e := xevent.Event{
		Type:      xevent.Type(xany._type),
		Serial:    uint64(xany.serial),
		SendEvent: xany.send_event != C.False,
		Window:    xevent.Window(xany.window),
	}
	if e.Type == xevent.ClientMessage {
		cevt := (*C.XClientMessageEvent)(unsafe.Pointer(xev))
		e.MessageType = xevent.Atom(cevt.message_type)
		e.Format = int32(cevt.format)
		l := (*[5]C.long)(unsafe.Pointer(&cevt.data))
		for i, v := range l {
			e.Data[i] = uint64(v)
		}
	}
	return e
}
