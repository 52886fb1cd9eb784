// Package marshaller provides serialization of typed models to text formats.
package marshaller

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Marshaller serializes a model of type T to a string.
type Marshaller[T any] interface {
	Marshal(model T) (string, error)
}

// YAMLMarshaller marshals models to YAML, preserving struct field order.
type YAMLMarshaller[T any] struct{}

// NewYAMLMarshaller creates and returns a new YAMLMarshaller instance.
func NewYAMLMarshaller[T any]() *YAMLMarshaller[T] {
	return &YAMLMarshaller[T]{}
}

// Marshal serializes the model to YAML with two-space indentation.
func (m *YAMLMarshaller[T]) Marshal(model T) (string, error) {
	var builder strings.Builder

	encoder := yaml.NewEncoder(&builder)
	encoder.SetIndent(2)

	err := encoder.Encode(model)
	if err != nil {
		return "", fmt.Errorf("marshal model to yaml: %w", err)
	}

	err = encoder.Close()
	if err != nil {
		return "", fmt.Errorf("finalize yaml encoding: %w", err)
	}

	return builder.String(), nil
}
