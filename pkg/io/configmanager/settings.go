// Package configmanager loads the tool's ambient settings: theme source,
// submodule path, and git naming defaults. Values come from built-in
// defaults, an optional hugoinit.yaml in the working directory, and
// HUGOINIT_-prefixed environment variables, in increasing precedence.
//
// The two provisioning inputs (website name and GitHub username) are
// deliberately not configurable here; they are collected interactively.
package configmanager

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds the resolved tool settings.
type Settings struct {
	Theme ThemeSettings `mapstructure:"theme"`
	Git   GitSettings   `mapstructure:"git"`
}

// ThemeSettings describes the theme referenced by a provisioned site.
type ThemeSettings struct {
	// Name is the theme name referenced from hugo.yaml.
	Name string `mapstructure:"name"`
	// Repository is the git URL added as a submodule.
	Repository string `mapstructure:"repository"`
	// SubmodulePath is the path the submodule is registered at.
	SubmodulePath string `mapstructure:"submodulePath"`
}

// GitSettings describes the git naming defaults used in generated files and
// next-step instructions.
type GitSettings struct {
	// DefaultBranch is the branch the deploy workflow triggers on.
	DefaultBranch string `mapstructure:"defaultBranch"`
	// RemoteName is the remote used in the printed push instructions.
	RemoteName string `mapstructure:"remoteName"`
}

// ConfigFileName is the optional settings file read from the working
// directory (hugoinit.yaml).
const ConfigFileName = "hugoinit"

// Load resolves the settings from defaults, the optional config file, and
// the environment.
func Load() (Settings, error) {
	v := viper.New()

	v.SetDefault("theme.name", "PaperMod")
	v.SetDefault("theme.repository", "https://github.com/adityatelange/hugo-PaperMod.git")
	v.SetDefault("theme.submodulePath", "themes/PaperMod")
	v.SetDefault("git.defaultBranch", "main")
	v.SetDefault("git.remoteName", "origin")

	v.SetEnvPrefix("HUGOINIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(ConfigFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	var settings Settings

	err = v.Unmarshal(&settings)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	return settings, nil
}
