// Package native provides low-level access to the IUP C library.
//
// The binding layer talks to IUP exclusively through the Library interface,
// so tests can substitute an in-memory implementation. The default Library
// loads the system libiup through purego on first use.
package native

import (
	"sync"

	"github.com/go-iup/iup/pkg/errors"
)

// Ihandle is an opaque pointer to a native IUP element.
//
// Handles are allocated and freed by IUP itself; the binding never owns
// them. The zero value means "no element".
type Ihandle uintptr

// Library is the subset of IUP entry points the binding layer depends on.
type Library interface {
	// GetAttribute returns the raw pointer-sized value stored on ih under
	// name, or 0 when the attribute is unset.
	GetAttribute(ih Ihandle, name string) uintptr

	// SetAttribute stores a raw pointer-sized value on ih under name.
	// IUP keeps the value verbatim. A zero value clears the attribute.
	SetAttribute(ih Ihandle, name string, value uintptr)

	// GetStrAttribute returns the string attribute stored on ih under name,
	// or "" when unset.
	GetStrAttribute(ih Ihandle, name string) string

	// SetStrAttribute stores a copy of value on ih under name
	// (IupSetStrAttribute semantics, so the Go string may be collected
	// afterwards).
	SetStrAttribute(ih Ihandle, name, value string)

	// SetCallback installs fn as the native callback entry for name on ih.
	// A zero fn clears the entry.
	SetCallback(ih Ihandle, name string, fn uintptr)

	// Destroy destroys the element and its children (IupDestroy).
	Destroy(ih Ihandle)
}

var (
	libMu sync.RWMutex
	lib   Library
)

// SetLibrary overrides the Library used by the binding layer.
// Pass nil to restore the default lazy-loaded libiup.
func SetLibrary(l Library) {
	libMu.Lock()
	lib = l
	libMu.Unlock()
}

// current returns the active Library without triggering a load.
func current() Library {
	libMu.RLock()
	defer libMu.RUnlock()
	return lib
}

// Lib returns the active Library, loading the system libiup on first use.
// A load failure is reported to the error handler and panics: nothing in
// the binding can work without the native library.
func Lib() Library {
	if l := current(); l != nil {
		return l
	}

	libMu.Lock()
	defer libMu.Unlock()
	if lib == nil {
		l, err := load()
		if err != nil {
			bindErr := &errors.BindError{
				Op:         "native.Lib",
				Kind:       errors.KindNative,
				Err:        err,
				StackTrace: errors.CaptureStack(),
			}
			errors.Report(bindErr)
			panic(bindErr)
		}
		lib = l
	}
	return lib
}
