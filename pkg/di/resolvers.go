package di

import (
	"fmt"

	"github.com/hugoinit/hugoinit/pkg/io/configmanager"
	"github.com/hugoinit/hugoinit/pkg/svc/detector"
	"github.com/hugoinit/hugoinit/pkg/svc/runner"
	"github.com/hugoinit/hugoinit/pkg/utils/timer"
	"github.com/samber/do/v2"
)

// ResolveTimer retrieves the timer dependency from the injector.
func ResolveTimer(injector Injector) (timer.Timer, error) {
	tmr, err := do.Invoke[timer.Timer](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve timer dependency: %w", err)
	}

	return tmr, nil
}

// ResolveCommandRunner retrieves the command runner dependency from the
// injector.
func ResolveCommandRunner(injector Injector) (runner.CommandRunner, error) {
	cmdRunner, err := do.Invoke[runner.CommandRunner](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve command runner dependency: %w", err)
	}

	return cmdRunner, nil
}

// ResolveDetector retrieves the toolchain detector dependency from the
// injector.
func ResolveDetector(injector Injector) (*detector.Detector, error) {
	det, err := do.Invoke[*detector.Detector](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve detector dependency: %w", err)
	}

	return det, nil
}

// ResolveSettings retrieves the resolved tool settings from the injector.
func ResolveSettings(injector Injector) (configmanager.Settings, error) {
	settings, err := do.Invoke[configmanager.Settings](injector)
	if err != nil {
		return configmanager.Settings{}, fmt.Errorf("resolve settings dependency: %w", err)
	}

	return settings, nil
}
