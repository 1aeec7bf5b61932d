// Package callback implements the closure binding protocol between Go and
// IUP's C callback mechanism.
//
// Each supported callback name is declared once as a Callback, which owns
// the slot-management protocol shared by every bound event: the Go closure
// is boxed in a cgo.Handle, the handle's bit pattern is stored in the
// element's attribute table under a reserved binding key, and a native
// trampoline recovers and invokes the closure when IUP fires the event.
// The attribute slot is the single source of truth for whether a handler
// is installed.
//
//	callback.Action.Set(btn, func(h iup.Handle) iup.Result {
//		fmt.Println("pressed")
//		return iup.Default
//	})
//
// Installing a handler replaces (and returns) the previous one. Installing
// nil uninstalls. When an element is destroyed, OnDestroy reclaims every
// bound closure; the destroy handler is reclaimed last and invoked by the
// coordinator itself, because IUP frees binding state (LDESTROY_CB) before
// it fires the user-facing DESTROY_CB.
//
// The concrete callback set lives in callbacks_gen.go and is produced by
// cmd/iupgen from callbacks.yaml.
package callback
