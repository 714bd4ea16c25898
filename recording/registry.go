// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
)

// BackendFactory returns a fresh backend, ready for Begin.
type BackendFactory func() Backend

// ErrUnknownBackend is returned by NewBackend for unregistered names.
var ErrUnknownBackend = errors.New("recording: unknown backend")

// ErrNotWritable is returned by Export for backends without WriteTo.
var ErrNotWritable = errors.New("recording: backend cannot write output")

// backends maps output format names ("png", "svg", "pdf") to factories.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

// Register makes an output format available under name. Backend packages
// call it from init, so importing one for side effects is enough:
//
//	import _ "github.com/gogpu/turtle/recording/backends/svg"
//
// Two formats cannot share a name; Register panics on a duplicate name or
// a nil factory.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("recording: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	backends[name] = factory
}

// Unregister forgets the format registered as name, if any.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend returns a new backend for the named format. Unknown names
// wrap ErrUnknownBackend; usually the backend package was not imported.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownBackend, name)
	}
	return factory(), nil
}

// MustBackend is like NewBackend but panics for unknown names.
func MustBackend(name string) Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Backends lists the registered format names in sorted order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a format called name can be exported.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Export replays rec to a fresh backend of the given name and writes the
// result to w.
func Export(rec *Recording, name string, w io.Writer) error {
	b, err := NewBackend(name)
	if err != nil {
		return err
	}
	wb, ok := b.(WriterBackend)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotWritable, name)
	}
	if err := rec.Playback(wb); err != nil {
		return fmt.Errorf("recording: %s playback: %w", name, err)
	}
	if _, err := wb.WriteTo(w); err != nil {
		return fmt.Errorf("recording: %s write: %w", name, err)
	}
	return nil
}
