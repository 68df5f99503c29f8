package profile

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// LintProfile represents the configuration for a lint run.
type LintProfile struct {
	Name      string   `yaml:"name"`
	GOOS      string   `yaml:"goos"`
	GOARCH    string   `yaml:"goarch"`
	Analyzers []string `yaml:"analyzers"` // Empty means every registered analyzer.
	Tests     bool     `yaml:"tests"`     // Also analyze test files.
}

// Default returns the profile used when no profile file is given.
func Default() *LintProfile {
	return &LintProfile{
		Name:   "default",
		GOOS:   runtime.GOOS,
		GOARCH: runtime.GOARCH,
	}
}

// LoadProfile loads a lint profile from a YAML file.
func LoadProfile(filename string) (*LintProfile, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}
	defer file.Close()

	profile := Default()
	if err := yaml.NewDecoder(file).Decode(profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	if profile.GOOS == "" {
		profile.GOOS = runtime.GOOS
	}
	if profile.GOARCH == "" {
		profile.GOARCH = runtime.GOARCH
	}
	return profile, nil
}
