// SPDX-License-Identifier: Unlicense OR MIT

package xevent

import "fmt"

// Variant is a decoded event type. It is either a Kind or a Message.
type Variant interface {
	fmt.Stringer
	isVariant()
}

// Kind is a decoded event type without payload. Its ordinals are fixed:
// KindUnknown is 0 and the kinds follow the native type order, with
// ClientMessage decoding to Message instead of a Kind.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindKeyPress
	KindKeyRelease
	KindButtonPress
	KindButtonRelease
	KindMotionNotify
	KindEnterNotify
	KindLeaveNotify
	KindFocusIn
	KindFocusOut
	KindKeymapNotify
	KindExpose
	KindGraphicsExpose
	KindNoExpose
	KindVisibilityNotify
	KindCreateNotify
	KindDestroyNotify
	KindUnmapNotify
	KindMapNotify
	KindMapRequest
	KindReparentNotify
	KindConfigureNotify
	KindConfigureRequest
	KindGravityNotify
	KindResizeRequest
	KindCirculateNotify
	KindCirculateRequest
	KindPropertyNotify
	KindSelectionClear
	KindSelectionRequest
	KindSelectionNotify
	KindColormapNotify
	KindMappingNotify
	KindGenericEvent
	KindLastEvent
)

// Message is the decoded ClientMessage. Data is the first data word of the
// message, uninterpreted.
type Message struct {
	Data uint64
}

func (Kind) isVariant()    {}
func (Message) isVariant() {}

func (k Kind) String() string {
	switch {
	case k == KindUnknown:
		return "Unknown"
	case k <= KindColormapNotify:
		return Type(k + 1).String()
	case k <= KindLastEvent:
		return Type(k + 2).String()
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

func (m Message) String() string {
	return fmt.Sprintf("ClientMessage(%#x)", m.Data)
}

// DecodeEventType maps the native type of e to its Variant.
func DecodeEventType(e *Event) Variant {
	switch t := e.Type; {
	case t >= KeyPress && t <= ColormapNotify:
		// Kind 0 is reserved for unknown events.
		return Kind(t - 1)
	case t == ClientMessage:
		return Message{Data: e.Data[0]}
	case t >= MappingNotify && t <= LASTEvent:
		// Shifted by one more for the ClientMessage slot.
		return Kind(t - 2)
	default:
		return KindUnknown
	}
}
