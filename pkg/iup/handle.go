// Package iup provides the host-side view of native IUP elements.
package iup

import "github.com/go-iup/iup/pkg/native"

// Handle wraps a native IUP element pointer for use from Go.
//
// A Handle is a value; copying it copies only the pointer. The element's
// lifecycle stays fully owned by IUP — destroying it invalidates every
// Handle wrapping it.
type Handle struct {
	ptr native.Ihandle
}

// Wrap presents a raw native element pointer as a Handle.
func Wrap(ih native.Ihandle) Handle {
	return Handle{ptr: ih}
}

// Pointer returns the underlying native element pointer.
func (h Handle) Pointer() native.Ihandle {
	return h.ptr
}

// Valid reports whether the handle wraps a non-zero element pointer.
func (h Handle) Valid() bool {
	return h.ptr != 0
}

// Attribute returns the string attribute stored under name, or "".
func (h Handle) Attribute(name string) string {
	return native.Lib().GetStrAttribute(h.ptr, name)
}

// SetAttribute stores a string attribute under name. The value is copied
// by the toolkit.
func (h Handle) SetAttribute(name, value string) {
	native.Lib().SetStrAttribute(h.ptr, name, value)
}

// Destroy destroys the element and its children. IUP delivers the
// destruction notifications that release any bound callbacks.
func (h Handle) Destroy() {
	native.Lib().Destroy(h.ptr)
}
