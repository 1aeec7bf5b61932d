package callback

import (
	"testing"

	"github.com/go-iup/iup/pkg/iup"
	"github.com/go-iup/iup/pkg/native"
)

func TestOnDestroyReleasesOtherBindingsFirst(t *testing.T) {
	mem := native.InstallMemory(t.Cleanup)
	ih := native.Ihandle(0x200)
	h := iup.Wrap(ih)

	actionCalls := 0
	Action.Set(h, func(iup.Handle) iup.Result { actionCalls++; return iup.Default })

	destroyCalls := 0
	Destroy.Set(h, func(got iup.Handle) {
		destroyCalls++
		if got.Pointer() != ih {
			t.Errorf("destroy handler saw %#x, want %#x", got.Pointer(), ih)
		}
		// By the time the destroy handler runs, every slot is already
		// reclaimed, its own included.
		if mem.GetAttribute(ih, Action.Key()) != 0 {
			t.Error("ACTION slot still populated during destroy handler")
		}
		if mem.GetAttribute(ih, Destroy.Key()) != 0 {
			t.Error("DESTROY_CB slot still populated during destroy handler")
		}
	})

	OnDestroy(ih)

	if destroyCalls != 1 {
		t.Fatalf("destroy handler ran %d times, want 1", destroyCalls)
	}
	if actionCalls != 0 {
		t.Fatalf("action handler ran %d times during teardown, want 0", actionCalls)
	}
	if mem.AttributeCount(ih) != 0 {
		t.Fatalf("%d binding attributes left after teardown", mem.AttributeCount(ih))
	}
}

func TestOnDestroyWithOnlyDestroyHandler(t *testing.T) {
	native.InstallMemory(t.Cleanup)
	ih := native.Ihandle(0x201)

	destroyCalls := 0
	Destroy.Set(iup.Wrap(ih), func(iup.Handle) { destroyCalls++ })

	// No ACTION bound: its release is a silent no-op.
	OnDestroy(ih)

	if destroyCalls != 1 {
		t.Fatalf("destroy handler ran %d times, want 1", destroyCalls)
	}
	if _, ok := Destroy.Release(ih); ok {
		t.Fatal("destroy slot still populated after teardown")
	}
}

func TestOnDestroyIsIdempotentPerHandle(t *testing.T) {
	native.InstallMemory(t.Cleanup)
	ih := native.Ihandle(0x202)

	destroyCalls := 0
	Destroy.Set(iup.Wrap(ih), func(iup.Handle) { destroyCalls++ })

	OnDestroy(ih)
	OnDestroy(ih)

	if destroyCalls != 1 {
		t.Fatalf("destroy handler ran %d times across repeated teardowns, want 1", destroyCalls)
	}
}

func TestOnDestroyWithNoBindings(t *testing.T) {
	native.InstallMemory(t.Cleanup)

	// Must not panic or touch anything.
	OnDestroy(native.Ihandle(0x203))
}

func TestOnDestroyLeavesOtherHandlesAlone(t *testing.T) {
	mem := native.InstallMemory(t.Cleanup)
	a, b := native.Ihandle(0x204), native.Ihandle(0x205)

	Action.Set(iup.Wrap(a), func(iup.Handle) iup.Result { return iup.Default })
	Action.Set(iup.Wrap(b), func(iup.Handle) iup.Result { return iup.Default })

	OnDestroy(a)

	if mem.GetAttribute(a, Action.Key()) != 0 {
		t.Error("destroyed handle still has a bound closure")
	}
	if mem.GetAttribute(b, Action.Key()) == 0 {
		t.Error("teardown of one handle released another handle's closure")
	}
}

func TestRegisteredOrderEndsWithDestroy(t *testing.T) {
	names := Registered()
	if len(names) == 0 {
		t.Fatal("no callbacks registered")
	}
	if last := names[len(names)-1]; last != "DESTROY_CB" {
		t.Fatalf("last registered callback = %q, want DESTROY_CB", last)
	}
	for _, name := range names[:len(names)-1] {
		if name == "DESTROY_CB" {
			t.Fatal("DESTROY_CB listed before the end")
		}
	}
}

func TestTeardownHookSurvivesRelease(t *testing.T) {
	mem := native.InstallMemory(t.Cleanup)
	ih := native.Ihandle(0x206)
	h := iup.Wrap(ih)

	Action.Set(h, func(iup.Handle) iup.Result { return iup.Default })
	KAny.Set(h, func(iup.Handle, int) iup.Result { return iup.Default })
	Action.Release(ih)

	// K_ANY is still bound, so the teardown hook must stay installed.
	if mem.Callback(ih, "LDESTROY_CB") == 0 {
		t.Fatal("teardown hook removed while a handler is still bound")
	}
}
