package callback

import (
	"fmt"
	"sync"

	"github.com/go-iup/iup/pkg/native"
)

// ReservedPrefix is the attribute namespace reserved for this binding.
//
// IUP reserves the "_IUP" attribute prefix for internal use and for
// bindings, so "_IUPGO_FBOX_" can never collide with IUP's own keys or
// with user attributes. The stored value is the closure box for one
// callback name.
const ReservedPrefix = "_IUPGO_FBOX_"

// bindingKey derives the attribute-store key for a callback name.
func bindingKey(name string) string {
	return ReservedPrefix + name
}

// binding is the type-erased view of a Callback used by the teardown
// coordinator.
type binding interface {
	callbackName() string
	drop(ih native.Ihandle)
	dropAndInvoke(ih native.Ihandle)
}

// bindingRegistry records every declared callback so OnDestroy can release
// them all. Declarations happen at package init; the registry is read-only
// afterwards.
type bindingRegistry struct {
	mu      sync.RWMutex
	ordered []binding
	byName  map[string]binding
	destroy binding
}

var registry = &bindingRegistry{byName: make(map[string]binding)}

func (r *bindingRegistry) add(b binding, destroyRole bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := b.callbackName()
	if _, dup := r.byName[name]; dup {
		panic(fmt.Sprintf("iup: callback %q declared twice", name))
	}
	r.byName[name] = b

	if destroyRole {
		if r.destroy != nil {
			panic(fmt.Sprintf("iup: destroy callback already declared as %q",
				r.destroy.callbackName()))
		}
		r.destroy = b
		return
	}
	r.ordered = append(r.ordered, b)
}

func (r *bindingRegistry) snapshot() (ordered []binding, destroy binding) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ordered, r.destroy
}

// Registered returns the names of all declared callbacks, non-destroy
// bindings first in declaration order, the destroy binding last.
func Registered() []string {
	ordered, destroy := registry.snapshot()
	names := make([]string, 0, len(ordered)+1)
	for _, b := range ordered {
		names = append(names, b.callbackName())
	}
	if destroy != nil {
		names = append(names, destroy.callbackName())
	}
	return names
}
