package native

import "unsafe"

// GoString copies a NUL-terminated C string into a Go string.
// It returns "" for a zero pointer. Trampolines use it for char* arguments,
// which purego callbacks deliver as raw pointers.
func GoString(p uintptr) string {
	if p == 0 {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Pointer(p + uintptr(n))) != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
}
