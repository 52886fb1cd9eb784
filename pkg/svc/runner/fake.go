package runner

import (
	"context"
	"sync"
)

// FakeRunner is a scriptable CommandRunner for tests. It records every
// command it receives and fails commands whose rendered string matches a
// configured failure.
type FakeRunner struct {
	mu       sync.Mutex
	commands []Command
	failures map[string]error
	results  map[string]Result

	// OnCommand, when set, observes every command before the scripted
	// result is returned. Tests use it to simulate side effects such as
	// the site generator creating a directory.
	OnCommand func(Command)
}

// NewFakeRunner creates an empty FakeRunner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		failures: make(map[string]error),
		results:  make(map[string]Result),
	}
}

// FailOn makes any command whose String() equals rendered return err.
func (f *FakeRunner) FailOn(rendered string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.failures[rendered] = err
}

// ResultFor sets the result returned for a command whose String() equals
// rendered.
func (f *FakeRunner) ResultFor(rendered string, result Result) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.results[rendered] = result
}

// Commands returns a copy of all commands received so far.
func (f *FakeRunner) Commands() []Command {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Command, len(f.commands))
	copy(out, f.commands)

	return out
}

// Strings returns the rendered form of all received commands, in order.
func (f *FakeRunner) Strings() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]string, 0, len(f.commands))
	for _, cmd := range f.commands {
		out = append(out, cmd.String())
	}

	return out
}

// Run records the command and returns the scripted result or failure.
func (f *FakeRunner) Run(_ context.Context, cmd Command) (Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.commands = append(f.commands, cmd)

	if f.OnCommand != nil {
		f.OnCommand(cmd)
	}

	rendered := cmd.String()

	if err, ok := f.failures[rendered]; ok {
		return Result{}, err
	}

	return f.results[rendered], nil
}
