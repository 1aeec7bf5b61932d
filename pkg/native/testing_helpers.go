package native

import "sync"

// Memory is an in-memory Library for tests. It mimics IUP's per-handle
// attribute hash table and callback table closely enough to exercise the
// binding protocol without a native toolkit.
type Memory struct {
	mu        sync.Mutex
	attrs     map[Ihandle]map[string]uintptr
	strs      map[Ihandle]map[string]string
	callbacks map[Ihandle]map[string]uintptr
	destroyed []Ihandle
}

// NewMemory creates an empty in-memory library.
func NewMemory() *Memory {
	return &Memory{
		attrs:     make(map[Ihandle]map[string]uintptr),
		strs:      make(map[Ihandle]map[string]string),
		callbacks: make(map[Ihandle]map[string]uintptr),
	}
}

// InstallMemory installs a fresh Memory library and restores the previous
// Library when the test finishes. The cleanup function should be
// testing.T.Cleanup or equivalent.
//
//	mem := native.InstallMemory(t.Cleanup)
func InstallMemory(cleanup func(func())) *Memory {
	m := NewMemory()
	prev := current()
	SetLibrary(m)
	cleanup(func() { SetLibrary(prev) })
	return m
}

func (m *Memory) GetAttribute(ih Ihandle, name string) uintptr {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.attrs[ih][name]
}

func (m *Memory) SetAttribute(ih Ihandle, name string, value uintptr) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if value == 0 {
		delete(m.attrs[ih], name)
		return
	}
	if m.attrs[ih] == nil {
		m.attrs[ih] = make(map[string]uintptr)
	}
	m.attrs[ih][name] = value
}

func (m *Memory) GetStrAttribute(ih Ihandle, name string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.strs[ih][name]
}

func (m *Memory) SetStrAttribute(ih Ihandle, name, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.strs[ih] == nil {
		m.strs[ih] = make(map[string]string)
	}
	m.strs[ih][name] = value
}

func (m *Memory) SetCallback(ih Ihandle, name string, fn uintptr) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if fn == 0 {
		delete(m.callbacks[ih], name)
		return
	}
	if m.callbacks[ih] == nil {
		m.callbacks[ih] = make(map[string]uintptr)
	}
	m.callbacks[ih][name] = fn
}

func (m *Memory) Destroy(ih Ihandle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.destroyed = append(m.destroyed, ih)
}

// Callback returns the native callback entry installed for name, or 0.
func (m *Memory) Callback(ih Ihandle, name string) uintptr {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callbacks[ih][name]
}

// AttributeCount returns the number of raw attributes stored on ih.
func (m *Memory) AttributeCount(ih Ihandle) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.attrs[ih])
}

// Destroyed returns the handles passed to Destroy, in order.
func (m *Memory) Destroyed() []Ihandle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Ihandle(nil), m.destroyed...)
}
