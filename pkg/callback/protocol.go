package callback

import (
	"fmt"
	"reflect"
	"runtime/cgo"
	"sync"

	"go.uber.org/zap"

	"github.com/go-iup/iup/pkg/errors"
	"github.com/go-iup/iup/pkg/iup"
	"github.com/go-iup/iup/pkg/native"
)

// Callback binds one named IUP callback to Go closures of type F, which
// must be a function type.
//
// The bound closure lives in the element's attribute table under the
// callback's binding key, boxed in a cgo.Handle. The handle's integer bit
// pattern is what native code stores and hands back verbatim; the slot is
// the single owner of the box, and zero or one closure exists per
// (element, name) pair at any time.
type Callback[F any] struct {
	name string
	key  string

	// makeEntry builds the native trampoline for this callback's C
	// signature. It runs once, on first install.
	makeEntry func() uintptr
	entryOnce sync.Once
	entry     uintptr

	// invoke is set only for the destroy-role callback; the teardown
	// coordinator uses it to run the reclaimed closure.
	invoke func(fn F, ih native.Ihandle)
}

// New declares the binding for one named IUP callback. It panics if name
// was already declared; the callback set is fixed at package init.
func New[F any](name string, makeEntry func() uintptr) *Callback[F] {
	c := &Callback[F]{name: name, key: bindingKey(name), makeEntry: makeEntry}
	registry.add(c, false)
	return c
}

// NewDestroy declares the binding for the toolkit's destroy notification.
//
// The destroy closure never reaches its native trampoline: IUP frees
// binding state before firing the user-facing destroy callback, so the
// teardown coordinator reclaims the closure and runs it through invoke.
func NewDestroy[F any](name string, makeEntry func() uintptr, invoke func(fn F, ih native.Ihandle)) *Callback[F] {
	c := &Callback[F]{name: name, key: bindingKey(name), makeEntry: makeEntry, invoke: invoke}
	registry.add(c, true)
	return c
}

// Name returns the native callback name, e.g. "ACTION".
func (c *Callback[F]) Name() string {
	return c.name
}

// Key returns the attribute-store binding key, e.g. "_IUPGO_FBOX_ACTION".
func (c *Callback[F]) Key() string {
	return c.key
}

// Set installs fn as the handler for this callback on h, replacing any
// previous handler. A nil fn uninstalls. The previous handler, if any, is
// returned so the caller can inspect or re-chain it.
//
// h must wrap a live element; that is the caller's responsibility.
func (c *Callback[F]) Set(h iup.Handle, fn F) (prev F, hadPrev bool) {
	ih := h.Pointer()
	prev, hadPrev = c.Release(ih)
	if isNilFunc(fn) {
		return prev, hadPrev
	}

	lib := native.Lib()
	box := cgo.NewHandle(fn)
	lib.SetAttribute(ih, c.key, uintptr(box))
	lib.SetCallback(ih, c.name, c.nativeEntry())
	ensureTeardown(lib, ih)

	Logger().Debug("handler installed",
		zap.String("callback", c.name),
		zap.Uintptr("ihandle", uintptr(ih)),
		zap.Bool("replaced", hadPrev))
	return prev, hadPrev
}

// Release detaches the handler bound to ih and returns ownership of it to
// the caller, clearing both the attribute slot and the native callback
// entry. It is idempotent: with no handler bound it returns the zero F and
// false, with no side effects.
func (c *Callback[F]) Release(ih native.Ihandle) (F, bool) {
	var zero F
	lib := native.Lib()
	raw := lib.GetAttribute(ih, c.key)
	if raw == 0 {
		return zero, false
	}

	box := cgo.Handle(raw)
	fn := box.Value().(F)
	lib.SetAttribute(ih, c.key, 0)
	lib.SetCallback(ih, c.name, 0)
	box.Delete()

	Logger().Debug("handler released",
		zap.String("callback", c.name),
		zap.Uintptr("ihandle", uintptr(ih)))
	return fn, true
}

// Borrow returns the handler bound to ih without taking ownership.
// Dispatch trampolines call it while the native event is on the stack.
//
// An empty slot here means a trampoline fired with no stored closure,
// which can only come from a Set/Release pairing bug inside the binding.
// That state is not recoverable — the native side holds a function pointer
// the binding no longer backs — so Borrow reports the violation and panics.
func (c *Callback[F]) Borrow(ih native.Ihandle) F {
	raw := native.Lib().GetAttribute(ih, c.key)
	if raw == 0 {
		err := &errors.BindError{
			Op:         "callback.Borrow",
			Kind:       errors.KindDispatch,
			Callback:   c.name,
			Err:        fmt.Errorf("trampoline fired with empty slot %s", c.key),
			StackTrace: errors.CaptureStack(),
		}
		errors.Report(err)
		panic(err)
	}
	return cgo.Handle(raw).Value().(F)
}

// nativeEntry returns the trampoline entry point, creating it on first use.
func (c *Callback[F]) nativeEntry() uintptr {
	c.entryOnce.Do(func() {
		c.entry = c.makeEntry()
	})
	return c.entry
}

// binding interface for the teardown coordinator.

func (c *Callback[F]) callbackName() string {
	return c.name
}

func (c *Callback[F]) drop(ih native.Ihandle) {
	c.Release(ih)
}

func (c *Callback[F]) dropAndInvoke(ih native.Ihandle) {
	fn, ok := c.Release(ih)
	if !ok || c.invoke == nil {
		return
	}
	c.invoke(fn, ih)
}

// isNilFunc reports whether fn, a value of function kind, is nil.
func isNilFunc(fn any) bool {
	if fn == nil {
		return true
	}
	v := reflect.ValueOf(fn)
	return v.Kind() == reflect.Func && v.IsNil()
}
