// Package frontmattergenerator generates content documents consisting of a
// YAML front-matter block and no body.
package frontmattergenerator

import (
	"fmt"

	"github.com/hugoinit/hugoinit/pkg/fsutil"
	yamlgenerator "github.com/hugoinit/hugoinit/pkg/io/generator/yaml"
	"github.com/hugoinit/hugoinit/pkg/io/marshaller"
)

const delimiter = "---\n"

// Generator marshals a model into a front-matter document and optionally
// writes it to a file.
type Generator[T any] struct {
	Marshaller marshaller.Marshaller[T]
}

// NewGenerator creates and returns a new front-matter Generator instance.
func NewGenerator[T any]() *Generator[T] {
	return &Generator[T]{
		Marshaller: marshaller.NewYAMLMarshaller[T](),
	}
}

// Generate serializes the model between front-matter delimiters and writes
// it to opts.Output when set.
func (g *Generator[T]) Generate(model T, opts yamlgenerator.Options) (string, error) {
	out, err := g.Marshaller.Marshal(model)
	if err != nil {
		return "", fmt.Errorf("marshal front matter: %w", err)
	}

	document := delimiter + out + delimiter

	if opts.Output != "" {
		result, err := fsutil.TryWriteFile(document, opts.Output, opts.Force)
		if err != nil {
			return "", fmt.Errorf("write content document: %w", err)
		}

		return result, nil
	}

	return document, nil
}
