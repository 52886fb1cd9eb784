// Package prompt collects interactive free-text input for provisioning.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrInputRequired is returned when the user submits empty or
// whitespace-only input. Empty input is a user error and is not retried.
var ErrInputRequired = errors.New("input must not be empty")

// Prompter reads labelled free-text answers from an input stream.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter reading from in and echoing labels to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Text prints the label and reads a single line of input. Surrounding
// whitespace is trimmed; an empty result is an error.
func (p *Prompter) Text(label string) (string, error) {
	_, err := fmt.Fprintf(p.out, "%s: ", label)
	if err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input for %s: %w", label, err)
	}

	value := strings.TrimSpace(line)
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrInputRequired, label)
	}

	return value, nil
}

// IsInteractive reports whether stdin is connected to a terminal. The
// provisioner warns when it is not, since prompts assume a human answering.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
