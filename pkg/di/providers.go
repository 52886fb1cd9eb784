package di

import (
	"github.com/hugoinit/hugoinit/pkg/io/configmanager"
	"github.com/hugoinit/hugoinit/pkg/svc/detector"
	"github.com/hugoinit/hugoinit/pkg/svc/runner"
	"github.com/hugoinit/hugoinit/pkg/utils/timer"
	"github.com/samber/do/v2"
)

// NewRuntime constructs the shared runtime container used by the root
// command and tests. It registers default implementations for the timer,
// the command runner, the toolchain detector, and the settings loader.
func NewRuntime() *Runtime {
	return New(
		provideTimer,
		provideCommandRunner,
		provideDetector,
		provideSettings,
	)
}

func provideTimer(i Injector) {
	do.Provide(i, func(Injector) (timer.Timer, error) {
		return timer.New(), nil
	})
}

func provideCommandRunner(i Injector) {
	do.Provide(i, func(Injector) (runner.CommandRunner, error) {
		return runner.NewOSRunner(), nil
	})
}

func provideDetector(i Injector) {
	do.Provide(i, func(Injector) (*detector.Detector, error) {
		return detector.New(), nil
	})
}

// provideSettings defers the viper load until first resolution, which
// happens before the provisioner changes the working directory.
func provideSettings(i Injector) {
	do.Provide(i, func(Injector) (configmanager.Settings, error) {
		return configmanager.Load()
	})
}
