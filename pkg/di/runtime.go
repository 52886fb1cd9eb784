// Package di wires the shared dependencies commands resolve at runtime.
package di

import "github.com/samber/do/v2"

// Injector is the dependency container commands resolve from.
type Injector = do.Injector

// Provider registers a dependency with the injector.
type Provider func(Injector)

// Runtime wraps the root injector shared by the root command and tests.
type Runtime struct {
	injector do.Injector
}

// New constructs a runtime and applies the given providers.
func New(providers ...Provider) *Runtime {
	injector := do.New()

	for _, provide := range providers {
		provide(injector)
	}

	return &Runtime{injector: injector}
}

// Injector exposes the underlying container.
func (r *Runtime) Injector() Injector {
	return r.injector
}
