// SPDX-License-Identifier: Unlicense OR MIT

package gl

import "fmt"

// Error is a code reported by glGetError or glCheckFramebufferStatus.
type Error struct {
	// Op is the query that produced the code.
	Op   string
	Code Enum
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (%#x)", e.Op, EnumName(e.Code), uint32(e.Code))
}

// EnumName returns the symbolic name of the error and framebuffer status
// codes, or a hex string for anything else.
func EnumName(e Enum) string {
	switch e {
	case NO_ERROR:
		return "NO_ERROR"
	case INVALID_ENUM:
		return "INVALID_ENUM"
	case INVALID_VALUE:
		return "INVALID_VALUE"
	case INVALID_OPERATION:
		return "INVALID_OPERATION"
	case OUT_OF_MEMORY:
		return "OUT_OF_MEMORY"
	case INVALID_FRAMEBUFFER_OPERATION:
		return "INVALID_FRAMEBUFFER_OPERATION"
	case FRAMEBUFFER_COMPLETE:
		return "FRAMEBUFFER_COMPLETE"
	case FRAMEBUFFER_UNDEFINED:
		return "FRAMEBUFFER_UNDEFINED"
	case FRAMEBUFFER_INCOMPLETE_ATTACHMENT:
		return "FRAMEBUFFER_INCOMPLETE_ATTACHMENT"
	case FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT:
		return "FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT"
	case FRAMEBUFFER_INCOMPLETE_DIMENSIONS:
		return "FRAMEBUFFER_INCOMPLETE_DIMENSIONS"
	case FRAMEBUFFER_INCOMPLETE_MULTISAMPLE:
		return "FRAMEBUFFER_INCOMPLETE_MULTISAMPLE"
	case FRAMEBUFFER_UNSUPPORTED:
		return "FRAMEBUFFER_UNSUPPORTED"
	default:
		return fmt.Sprintf("%#x", uint32(e))
	}
}
