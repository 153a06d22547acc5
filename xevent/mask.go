// SPDX-License-Identifier: Unlicense OR MIT

package xevent

import "fmt"

// Bit is the index of one bit of an event mask.
type Bit uint

const (
	KeyPressBit Bit = iota
	KeyReleaseBit
	ButtonPressBit
	ButtonReleaseBit
	EnterWindowBit
	LeaveWindowBit
	PointerMotionBit
	PointerMotionHintBit
	Button1MotionBit
	Button2MotionBit
	Button3MotionBit
	Button4MotionBit
	Button5MotionBit
	ButtonMotionBit
	KeymapStateBit
	ExposureBit
	VisibilityChangeBit
	StructureNotifyBit
	ResizeRedirectBit
	SubstructureNotifyBit
	SubstructureRedirectBit
	FocusChangeBit
	PropertyChangeBit
	ColormapChangeBit
	OwnerGrabButtonBit
)

var bitNames = [...]string{
	KeyPressBit:             "KeyPress",
	KeyReleaseBit:           "KeyRelease",
	ButtonPressBit:          "ButtonPress",
	ButtonReleaseBit:        "ButtonRelease",
	EnterWindowBit:          "EnterWindow",
	LeaveWindowBit:          "LeaveWindow",
	PointerMotionBit:        "PointerMotion",
	PointerMotionHintBit:    "PointerMotionHint",
	Button1MotionBit:        "Button1Motion",
	Button2MotionBit:        "Button2Motion",
	Button3MotionBit:        "Button3Motion",
	Button4MotionBit:        "Button4Motion",
	Button5MotionBit:        "Button5Motion",
	ButtonMotionBit:         "ButtonMotion",
	KeymapStateBit:          "KeymapState",
	ExposureBit:             "Exposure",
	VisibilityChangeBit:     "VisibilityChange",
	StructureNotifyBit:      "StructureNotify",
	ResizeRedirectBit:       "ResizeRedirect",
	SubstructureNotifyBit:   "SubstructureNotify",
	SubstructureRedirectBit: "SubstructureRedirect",
	FocusChangeBit:          "FocusChange",
	PropertyChangeBit:       "PropertyChange",
	ColormapChangeBit:       "ColormapChange",
	OwnerGrabButtonBit:      "OwnerGrabButton",
}

func (b Bit) String() string {
	if int(b) < len(bitNames) {
		return bitNames[b]
	}
	return fmt.Sprintf("Bit(%d)", uint(b))
}

// ParseBit returns the bit named name, without the Mask suffix used by
// Xlib ("Exposure" for ExposureMask).
func ParseBit(name string) (Bit, error) {
	for i, n := range bitNames {
		if n == name {
			return Bit(i), nil
		}
	}
	return 0, fmt.Errorf("xevent: unknown event mask bit %q", name)
}

// Mask is a set of event categories a window receives.
type Mask uint32

// MaskOf returns the mask with exactly the given bits set. Bits are not
// validated.
func MaskOf(bits ...Bit) Mask {
	var m Mask
	for _, b := range bits {
		m |= 1 << b
	}
	return m
}

// Has reports whether b is set in m.
func (m Mask) Has(b Bit) bool {
	return m&(1<<b) != 0
}
