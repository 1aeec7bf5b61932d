package callback

import (
	"sync"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"

	"github.com/go-iup/iup/pkg/iup"
	"github.com/go-iup/iup/pkg/native"
)

// ldestroyName is IUP's internal binding-free notification. IUP fires it
// before the user-facing DESTROY_CB, while bound closures are still valid.
const ldestroyName = "LDESTROY_CB"

var (
	teardownOnce  sync.Once
	teardownEntry uintptr
)

// ensureTeardown installs the teardown hook on ih. Every Set re-installs
// the same entry, which is harmless and keeps the hook present as long as
// any handler is.
func ensureTeardown(lib native.Library, ih native.Ihandle) {
	teardownOnce.Do(func() {
		teardownEntry = purego.NewCallback(func(raw uintptr) int32 {
			OnDestroy(native.Ihandle(raw))
			return int32(iup.Default)
		})
	})
	lib.SetCallback(ih, ldestroyName, teardownEntry)
}

// OnDestroy releases every closure bound to ih. IUP calls it, through the
// LDESTROY_CB hook, exactly once per element and before the element's
// storage is reclaimed.
//
// The destroy binding must be released strictly last: its closure is the
// one piece of user code that still runs during teardown, and releasing
// the other bindings first guarantees none of them can fire after their
// state is gone. Because IUP frees binding state before it would fire the
// user-facing destroy callback, the coordinator invokes the reclaimed
// destroy closure itself, exactly once, after its slot is cleared.
func OnDestroy(ih native.Ihandle) {
	ordered, destroy := registry.snapshot()

	for _, b := range ordered {
		b.drop(ih)
	}
	if destroy != nil {
		destroy.dropAndInvoke(ih)
	}

	Logger().Debug("teardown complete", zap.Uintptr("ihandle", uintptr(ih)))
}
