package native

import (
	"testing"
	"unsafe"
)

func TestMemoryAttributeRoundTrip(t *testing.T) {
	m := NewMemory()
	ih := Ihandle(0x1000)

	if got := m.GetAttribute(ih, "_IUPGO_FBOX_ACTION"); got != 0 {
		t.Fatalf("unset attribute = %#x, want 0", got)
	}

	m.SetAttribute(ih, "_IUPGO_FBOX_ACTION", 0xdead)
	if got := m.GetAttribute(ih, "_IUPGO_FBOX_ACTION"); got != 0xdead {
		t.Fatalf("attribute = %#x, want 0xdead", got)
	}

	// Zero clears the slot.
	m.SetAttribute(ih, "_IUPGO_FBOX_ACTION", 0)
	if got := m.GetAttribute(ih, "_IUPGO_FBOX_ACTION"); got != 0 {
		t.Fatalf("cleared attribute = %#x, want 0", got)
	}
	if got := m.AttributeCount(ih); got != 0 {
		t.Fatalf("AttributeCount = %d, want 0", got)
	}
}

func TestMemoryAttributesArePerHandle(t *testing.T) {
	m := NewMemory()
	a, b := Ihandle(1), Ihandle(2)

	m.SetAttribute(a, "_IUPGO_FBOX_ACTION", 7)
	if got := m.GetAttribute(b, "_IUPGO_FBOX_ACTION"); got != 0 {
		t.Fatalf("attribute leaked across handles: %#x", got)
	}
}

func TestMemoryCallbackTable(t *testing.T) {
	m := NewMemory()
	ih := Ihandle(0x2000)

	m.SetCallback(ih, "ACTION", 0xbeef)
	if got := m.Callback(ih, "ACTION"); got != 0xbeef {
		t.Fatalf("callback = %#x, want 0xbeef", got)
	}

	m.SetCallback(ih, "ACTION", 0)
	if got := m.Callback(ih, "ACTION"); got != 0 {
		t.Fatalf("cleared callback = %#x, want 0", got)
	}
}

func TestMemoryStrAttributes(t *testing.T) {
	m := NewMemory()
	ih := Ihandle(0x3000)

	m.SetStrAttribute(ih, "TITLE", "hello")
	if got := m.GetStrAttribute(ih, "TITLE"); got != "hello" {
		t.Fatalf("TITLE = %q, want %q", got, "hello")
	}
}

func TestMemoryDestroyRecords(t *testing.T) {
	m := NewMemory()
	m.Destroy(Ihandle(1))
	m.Destroy(Ihandle(2))

	got := m.Destroyed()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("Destroyed() = %v, want [1 2]", got)
	}
}

func TestInstallMemoryRestoresPrevious(t *testing.T) {
	prev := NewMemory()
	SetLibrary(prev)
	defer SetLibrary(nil)

	var cleanups []func()
	m := InstallMemory(func(fn func()) { cleanups = append(cleanups, fn) })

	if Lib() != Library(m) {
		t.Fatal("InstallMemory did not install the fake")
	}

	for _, fn := range cleanups {
		fn()
	}
	if Lib() != Library(prev) {
		t.Fatal("cleanup did not restore the previous library")
	}
}

func TestGoString(t *testing.T) {
	buf := []byte("hello\x00trailing")
	p := uintptr(unsafe.Pointer(&buf[0]))
	if got := GoString(p); got != "hello" {
		t.Fatalf("GoString = %q, want %q", got, "hello")
	}

	empty := []byte{0}
	if got := GoString(uintptr(unsafe.Pointer(&empty[0]))); got != "" {
		t.Fatalf("GoString(empty) = %q, want \"\"", got)
	}

	if got := GoString(0); got != "" {
		t.Fatalf("GoString(0) = %q, want \"\"", got)
	}
}
