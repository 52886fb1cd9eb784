// Package yamlgenerator generates YAML files from typed models.
package yamlgenerator

import (
	"fmt"

	"github.com/hugoinit/hugoinit/pkg/fsutil"
	"github.com/hugoinit/hugoinit/pkg/io/marshaller"
)

// Options configures a single generation run.
type Options struct {
	// Output is the file path to write to. If empty, the generated content
	// is returned without being written.
	Output string
	// Force overwrites an existing file at Output.
	Force bool
}

// Generator marshals a model to YAML and optionally writes it to a file.
type Generator[T any] struct {
	Marshaller marshaller.Marshaller[T]
}

// NewGenerator creates and returns a new YAML Generator instance.
func NewGenerator[T any]() *Generator[T] {
	return &Generator[T]{
		Marshaller: marshaller.NewYAMLMarshaller[T](),
	}
}

// Generate serializes the model and writes it to opts.Output when set.
func (g *Generator[T]) Generate(model T, opts Options) (string, error) {
	out, err := g.Marshaller.Marshal(model)
	if err != nil {
		return "", fmt.Errorf("marshal model: %w", err)
	}

	if opts.Output != "" {
		result, err := fsutil.TryWriteFile(out, opts.Output, opts.Force)
		if err != nil {
			return "", fmt.Errorf("write generated file: %w", err)
		}

		return result, nil
	}

	return out, nil
}
