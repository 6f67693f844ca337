// FILE: fixtures/fixtures.go
// Package fixtures – YAML-declared RunConfig loading, used by
// cmd/ticksimdemo for its config file. Config parsing is
// kept out of the ticksim core package itself; it is an external
// collaborator, per spec §6.
package fixtures

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/corvidquant/ticksim"
)

// Load reads a YAML file into a ticksim.RunConfig.
func Load(path string) (ticksim.RunConfig, error) {
	var rc ticksim.RunConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return rc, err
	}
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return rc, err
	}
	return rc, nil
}

// Parse decodes YAML bytes into a ticksim.RunConfig, for tests that embed
// fixture text inline rather than reading from disk.
func Parse(data []byte) (ticksim.RunConfig, error) {
	var rc ticksim.RunConfig
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return rc, err
	}
	return rc, nil
}
