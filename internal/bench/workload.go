package bench

import (
	"fmt"
	"sort"
	"sync"
)

// WorkFunc is one unit of work applied to a single dataset item.
type WorkFunc func(v float64) (float64, error)

// Workload is a named unit of work. The name is what crosses the process
// boundary: worker processes resolve it against the registry, since a
// closure cannot be shipped to a child process.
type Workload struct {
	Name string
	Fn   WorkFunc
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]WorkFunc)
)

// RegisterWorkload makes a workload resolvable by name in worker processes.
// Registration must happen before any process-backed run, typically in init.
func RegisterWorkload(name string, fn WorkFunc) error {
	if name == "" {
		return fmt.Errorf("workload name must not be empty")
	}
	if fn == nil {
		return fmt.Errorf("workload %q has nil function", name)
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[name]; exists {
		return fmt.Errorf("workload %q already registered", name)
	}
	registry[name] = fn
	return nil
}

// LookupWorkload resolves a registered workload by name.
func LookupWorkload(name string) (Workload, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	fn, ok := registry[name]
	if !ok {
		return Workload{}, fmt.Errorf("unknown workload: %s", name)
	}
	return Workload{Name: name, Fn: fn}, nil
}

// WorkloadNames returns the registered workload names, sorted.
func WorkloadNames() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
