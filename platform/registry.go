package platform

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/hostbridge/bridge"
)

// Common registry errors.
var (
	// ErrNotRegistered is returned when no platform has the requested name.
	ErrNotRegistered = errors.New("platform: not registered")

	// ErrNotAvailable is returned when no registered platform can be created.
	ErrNotAvailable = errors.New("platform: no platform available")
)

// Registration priorities. Higher wins in Default.
const (
	// PriorityNative is used by platforms that drive a real compositor.
	PriorityNative = 500

	// PriorityFallback is used by platforms that work everywhere, such as
	// the in-memory headless platform.
	PriorityFallback = 0
)

// Platform is a named host implementation.
type Platform interface {
	bridge.Platform

	// Name returns the registered platform name.
	Name() string
}

// Factory creates a platform instance. It returns an error when the
// platform cannot run in the current environment.
type Factory func() (Platform, error)

type entry struct {
	name     string
	priority int
	factory  Factory
}

// registry holds registered platforms.
var (
	registryMu sync.RWMutex
	platforms  = make(map[string]entry)
)

// Register registers a platform factory with the given name and priority.
// This is typically called from init() functions in platform packages.
// If a platform with the same name is already registered, it is replaced.
func Register(name string, priority int, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	platforms[name] = entry{name: name, priority: priority, factory: factory}
}

// Unregister removes a platform from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(platforms, name)
}

// Available returns the registered platform names, highest priority first.
func Available() []string {
	ordered := byPriority()
	names := make([]string, len(ordered))
	for i, e := range ordered {
		names[i] = e.name
	}
	return names
}

// IsRegistered checks if a platform with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := platforms[name]
	return ok
}

// Get creates the platform registered under name.
func Get(name string) (Platform, error) {
	registryMu.RLock()
	e, ok := platforms[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotRegistered, name)
	}
	return e.factory()
}

// Default creates the highest priority platform that is available.
// Platforms of equal priority are tried in name order.
func Default() (Platform, error) {
	var errs []error
	for _, e := range byPriority() {
		p, err := e.factory()
		if err == nil && p != nil {
			return p, nil
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", e.name, err))
		}
	}
	return nil, errors.Join(append([]error{ErrNotAvailable}, errs...)...)
}

// MustDefault returns the default platform or panics.
func MustDefault() Platform {
	p, err := Default()
	if err != nil {
		panic(err)
	}
	return p
}

// byPriority returns a snapshot of the registry sorted by descending
// priority, then name.
func byPriority() []entry {
	registryMu.RLock()
	ordered := make([]entry, 0, len(platforms))
	for _, e := range platforms {
		ordered = append(ordered, e)
	}
	registryMu.RUnlock()

	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].priority != ordered[j].priority {
			return ordered[i].priority > ordered[j].priority
		}
		return ordered[i].name < ordered[j].name
	})
	return ordered
}
