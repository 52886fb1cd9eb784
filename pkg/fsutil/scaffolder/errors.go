package scaffolder

import "errors"

var (
	// ErrConfigGeneration is returned when the site configuration cannot be
	// generated.
	ErrConfigGeneration = errors.New("failed to generate site configuration")

	// ErrContentGeneration is returned when a content stub cannot be
	// generated.
	ErrContentGeneration = errors.New("failed to generate content page")

	// ErrFooterGeneration is returned when the footer partial cannot be
	// written.
	ErrFooterGeneration = errors.New("failed to write footer partial")

	// ErrWorkflowGeneration is returned when the deploy workflow cannot be
	// generated.
	ErrWorkflowGeneration = errors.New("failed to generate deploy workflow")
)
