// SPDX-License-Identifier: Unlicense OR MIT

package gl

// Object names as allocated by the driver. The zero value names the default
// object of each kind.
type (
	Framebuffer  struct{ V uint32 }
	Renderbuffer struct{ V uint32 }
	Texture      struct{ V uint32 }
)

func (f Framebuffer) Valid() bool {
	return f.V != 0
}

func (r Renderbuffer) Valid() bool {
	return r.V != 0
}

func (t Texture) Valid() bool {
	return t.V != 0
}
