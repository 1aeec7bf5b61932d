//go:build darwin || linux || freebsd

package native

import (
	"fmt"
	"os"

	"github.com/ebitengine/purego"
)

// iupLibrary implements Library on top of the system libiup, with every
// entry point bound through purego.
//
// IupGetAttribute is registered twice: once returning the raw char* bit
// pattern (attribute slots smuggle pointers, so the value must round-trip
// untouched) and once for reading real string attributes.
type iupLibrary struct {
	open            func(argc, argv uintptr) int32
	getAttribute    func(ih uintptr, name string) uintptr
	setAttribute    func(ih uintptr, name string, value uintptr)
	setStrAttribute func(ih uintptr, name, value string)
	setCallback     func(ih uintptr, name string, fn uintptr)
	destroy         func(ih uintptr)
}

// iupOpenError is IUP_ERROR, returned by IupOpen when initialization fails.
// IUP_OPENED (-1, already initialized) is not a failure.
const iupOpenError = 1

// libraryName returns the candidate shared-object name for this platform.
// The IUP_LIBRARY environment variable overrides it.
func libraryName() string {
	if path := os.Getenv("IUP_LIBRARY"); path != "" {
		return path
	}
	return defaultLibraryName
}

// load opens libiup, binds the entry points the binding layer needs, and
// initializes the toolkit.
func load() (Library, error) {
	path := libraryName()
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	l := &iupLibrary{}
	purego.RegisterLibFunc(&l.open, handle, "IupOpen")
	purego.RegisterLibFunc(&l.getAttribute, handle, "IupGetAttribute")
	purego.RegisterLibFunc(&l.setAttribute, handle, "IupSetAttribute")
	purego.RegisterLibFunc(&l.setStrAttribute, handle, "IupSetStrAttribute")
	purego.RegisterLibFunc(&l.setCallback, handle, "IupSetCallback")
	purego.RegisterLibFunc(&l.destroy, handle, "IupDestroy")

	if rc := l.open(0, 0); rc == iupOpenError {
		return nil, fmt.Errorf("IupOpen failed for %s", path)
	}
	return l, nil
}

func (l *iupLibrary) GetAttribute(ih Ihandle, name string) uintptr {
	return l.getAttribute(uintptr(ih), name)
}

func (l *iupLibrary) SetAttribute(ih Ihandle, name string, value uintptr) {
	l.setAttribute(uintptr(ih), name, value)
}

func (l *iupLibrary) GetStrAttribute(ih Ihandle, name string) string {
	return GoString(l.getAttribute(uintptr(ih), name))
}

func (l *iupLibrary) SetStrAttribute(ih Ihandle, name, value string) {
	l.setStrAttribute(uintptr(ih), name, value)
}

func (l *iupLibrary) SetCallback(ih Ihandle, name string, fn uintptr) {
	l.setCallback(uintptr(ih), name, fn)
}

func (l *iupLibrary) Destroy(ih Ihandle) {
	l.destroy(uintptr(ih))
}
