package iup

import (
	"testing"

	"github.com/go-iup/iup/pkg/native"
)

func TestWrapRoundTrip(t *testing.T) {
	ih := native.Ihandle(0xcafe)
	h := Wrap(ih)
	if h.Pointer() != ih {
		t.Fatalf("Pointer() = %#x, want %#x", h.Pointer(), ih)
	}
	if !h.Valid() {
		t.Fatal("expected wrapped handle to be valid")
	}
	if Wrap(0).Valid() {
		t.Fatal("expected zero handle to be invalid")
	}
}

func TestHandleAttributes(t *testing.T) {
	mem := native.InstallMemory(t.Cleanup)
	h := Wrap(native.Ihandle(0x10))

	h.SetAttribute("TITLE", "Button")
	if got := h.Attribute("TITLE"); got != "Button" {
		t.Fatalf("Attribute(TITLE) = %q, want %q", got, "Button")
	}
	if got := mem.GetStrAttribute(h.Pointer(), "TITLE"); got != "Button" {
		t.Fatalf("library saw %q, want %q", got, "Button")
	}
}

func TestHandleDestroy(t *testing.T) {
	mem := native.InstallMemory(t.Cleanup)
	h := Wrap(native.Ihandle(0x20))

	h.Destroy()
	got := mem.Destroyed()
	if len(got) != 1 || got[0] != h.Pointer() {
		t.Fatalf("Destroyed() = %v, want [%#x]", got, h.Pointer())
	}
}

func TestResultString(t *testing.T) {
	tests := []struct {
		r    Result
		want string
	}{
		{Ignore, "ignore"},
		{Default, "default"},
		{Close, "close"},
		{Continue, "continue"},
		{Result(0), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("Result(%d).String() = %q, want %q", tt.r, got, tt.want)
		}
	}
}
