// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/gpufilter/gl"
)

var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
	// Priority order for Default (first that initializes wins).
	backendPriority = []string{Desktop, Dynamic}
)

// Register registers a backend factory with the given name, replacing any
// previous registration. It is typically called from init().
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns the registered backend names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Get creates the named backend.
func Get(name string, load Loader) (gl.Functions, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	fns, err := factory(load)
	if err != nil {
		return nil, fmt.Errorf("backend %s: %w", name, err)
	}
	return fns, nil
}

// Default creates the best available hardware backend and reports its name.
// Priority order: desktop > dynamic, then any other registered backend in
// name order. The software backend is never chosen here; request it with Get.
func Default(load Loader) (gl.Functions, string, error) {
	names := Available()
	order := slices.Clone(backendPriority)
	for _, name := range names {
		if name != Software && !slices.Contains(order, name) {
			order = append(order, name)
		}
	}

	var errs []error
	for _, name := range order {
		if !slices.Contains(names, name) {
			continue
		}
		fns, err := Get(name, load)
		if err == nil {
			return fns, name, nil
		}
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, "", fmt.Errorf("%w: %w", ErrBackendNotAvailable, errors.Join(errs...))
	}
	return nil, "", ErrBackendNotAvailable
}
