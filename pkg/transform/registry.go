package transform

import (
	"fmt"
	"sort"
	"sync"
)

var (
	regMu    sync.RWMutex
	registry = map[string]Func{}
)

// Register makes a transformer function available under name, so definition
// files can reference transformers compiled into the binary. Registering the
// same name twice is a programming error and panics.
func Register(name string, fn Func) {
	if fn == nil {
		panic("transform: Register with nil function")
	}
	regMu.Lock()
	defer regMu.Unlock()
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("transform: Register called twice for %q", name))
	}
	registry[name] = fn
}

// Lookup returns the transformer registered under name.
func Lookup(name string) (Func, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	fn, ok := registry[name]
	return fn, ok
}

// Registered lists the registered transformer names.
func Registered() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
