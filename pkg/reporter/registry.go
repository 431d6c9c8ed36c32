package reporter

import (
	"fmt"
	"slices"
	"sync"

	"github.com/yaklabco/lintreport/internal/logging"
)

// Factory builds a reporter from options.
type Factory func(opts Options) Reporter

// Linter is the side of the linter that reporters are registered with.
type Linter interface {
	RegisterReporter(name string, factory Factory)
}

// registry holds the built-in reporter factories.
type registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// builtins is the registry that Initialize hands to a linter.
// Reporters in this package add themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for reporter registration
var builtins = &registry{factories: make(map[string]Factory)}

// Register adds a built-in reporter factory. It panics on an empty name,
// a nil factory or a duplicate name, since all three are programming errors
// caught at init time.
func Register(name string, factory Factory) {
	if name == "" {
		panic("reporter: Register with empty name")
	}
	if factory == nil {
		panic(fmt.Sprintf("reporter: Register %q with nil factory", name))
	}

	builtins.mu.Lock()
	defer builtins.mu.Unlock()

	if _, dup := builtins.factories[name]; dup {
		panic(fmt.Sprintf("reporter: Register called twice for %q", name))
	}
	builtins.factories[name] = factory
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	builtins.mu.RLock()
	defer builtins.mu.RUnlock()
	factory, ok := builtins.factories[name]
	return factory, ok
}

// Names returns all registered reporter names in sorted order.
func Names() []string {
	builtins.mu.RLock()
	defer builtins.mu.RUnlock()

	names := make([]string, 0, len(builtins.factories))
	for name := range builtins.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Initialize registers every built-in reporter with linter.
func Initialize(linter Linter) {
	logger := logging.Default()
	for _, name := range Names() {
		factory, ok := Lookup(name)
		if !ok {
			continue
		}
		linter.RegisterReporter(name, factory)
		logger.Debug("reporter registered", logging.FieldReporter, name)
	}
}
