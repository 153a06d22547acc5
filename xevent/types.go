// SPDX-License-Identifier: Unlicense OR MIT

package xevent

import "fmt"

// Type is the native event type code, as in the type field of an XEvent.
type Type int32

// Event type codes of the core X protocol.
const (
	KeyPress         Type = 2
	KeyRelease       Type = 3
	ButtonPress      Type = 4
	ButtonRelease    Type = 5
	MotionNotify     Type = 6
	EnterNotify      Type = 7
	LeaveNotify      Type = 8
	FocusIn          Type = 9
	FocusOut         Type = 10
	KeymapNotify     Type = 11
	Expose           Type = 12
	GraphicsExpose   Type = 13
	NoExpose         Type = 14
	VisibilityNotify Type = 15
	CreateNotify     Type = 16
	DestroyNotify    Type = 17
	UnmapNotify      Type = 18
	MapNotify        Type = 19
	MapRequest       Type = 20
	ReparentNotify   Type = 21
	ConfigureNotify  Type = 22
	ConfigureRequest Type = 23
	GravityNotify    Type = 24
	ResizeRequest    Type = 25
	CirculateNotify  Type = 26
	CirculateRequest Type = 27
	PropertyNotify   Type = 28
	SelectionClear   Type = 29
	SelectionRequest Type = 30
	SelectionNotify  Type = 31
	ColormapNotify   Type = 32
	ClientMessage    Type = 33
	MappingNotify    Type = 34
	GenericEvent     Type = 35
	LASTEvent        Type = 36
)

var typeNames = [...]string{
	KeyPress:         "KeyPress",
	KeyRelease:       "KeyRelease",
	ButtonPress:      "ButtonPress",
	ButtonRelease:    "ButtonRelease",
	MotionNotify:     "MotionNotify",
	EnterNotify:      "EnterNotify",
	LeaveNotify:      "LeaveNotify",
	FocusIn:          "FocusIn",
	FocusOut:         "FocusOut",
	KeymapNotify:     "KeymapNotify",
	Expose:           "Expose",
	GraphicsExpose:   "GraphicsExpose",
	NoExpose:         "NoExpose",
	VisibilityNotify: "VisibilityNotify",
	CreateNotify:     "CreateNotify",
	DestroyNotify:    "DestroyNotify",
	UnmapNotify:      "UnmapNotify",
	MapNotify:        "MapNotify",
	MapRequest:       "MapRequest",
	ReparentNotify:   "ReparentNotify",
	ConfigureNotify:  "ConfigureNotify",
	ConfigureRequest: "ConfigureRequest",
	GravityNotify:    "GravityNotify",
	ResizeRequest:    "ResizeRequest",
	CirculateNotify:  "CirculateNotify",
	CirculateRequest: "CirculateRequest",
	PropertyNotify:   "PropertyNotify",
	SelectionClear:   "SelectionClear",
	SelectionRequest: "SelectionRequest",
	SelectionNotify:  "SelectionNotify",
	ColormapNotify:   "ColormapNotify",
	ClientMessage:    "ClientMessage",
	MappingNotify:    "MappingNotify",
	GenericEvent:     "GenericEvent",
	LASTEvent:        "LASTEvent",
}

func (t Type) String() string {
	if t >= KeyPress && t <= LASTEvent {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int32(t))
}

// Window is an X window identifier.
type Window uint32

// None is the null window.
const None Window = 0

// Atom is an interned X atom.
type Atom uint32

// Event is a copy of one native event record. It holds no pointers; it is
// safe to retain and copy after the connection that produced it is closed.
type Event struct {
	Type Type
	// Serial is the number of the last request processed by the server.
	Serial uint64
	// SendEvent is set for events generated by a SendEvent request.
	SendEvent bool
	// Window is the window the event was reported relative to.
	Window Window

	// The remaining fields are only meaningful for ClientMessage events.
	MessageType Atom
	Format      int32
	Data        [5]uint64
}
