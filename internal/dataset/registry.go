package dataset

import (
	"fmt"
	"sync"
)

var (
	registry   = make(map[string]Source)
	regOrder   []string
	registryMu sync.RWMutex
)

// Register adds a source to the registry.
// Panics if a source with the same key is already registered.
func Register(src Source) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[src.Key]; exists {
		panic(fmt.Sprintf("dataset already registered: %s", src.Key))
	}
	if src.Label == "" {
		src.Label = src.Key
	}

	registry[src.Key] = src
	regOrder = append(regOrder, src.Key)
}

// Get returns a source by key.
// Returns false if not found.
func Get(key string) (Source, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	src, ok := registry[key]
	return src, ok
}

// All returns all registered sources in registration order.
func All() []Source {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]Source, 0, len(regOrder))
	for _, key := range regOrder {
		result = append(result, registry[key])
	}
	return result
}

// Count returns the number of registered sources.
func Count() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}

// Replace swaps the entire registry for the given sources, preserving
// their order. Used when a manifest overrides the built-in set, and by
// tests. Panics on duplicate keys.
func Replace(sources []Source) {
	registryMu.Lock()
	registry = make(map[string]Source, len(sources))
	regOrder = regOrder[:0]
	registryMu.Unlock()

	for _, src := range sources {
		Register(src)
	}
}
