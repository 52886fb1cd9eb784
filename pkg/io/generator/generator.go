// Package generator defines the interface implemented by file generators.
package generator

// Generator is implemented by specific file generators (site config, content
// pages, workflow). The Options type parameter allows each implementation to
// define its own options structure.
type Generator[T any, Options any] interface {
	Generate(model T, opts Options) (string, error)
}
