// Package config loads optional runtime settings from a .wisp.yaml
// file via goccy/go-yaml: a call-depth safety valve and a tracer
// output knob. TraceToStderr is purely cosmetic; MaxCallDepth turns an
// otherwise-unbounded recursive program into a catchable RuntimeError
// instead of a host stack overflow. It is the one config field that
// changes program behaviour: any method call nested deeper than the
// limit fails, including in a program that would otherwise terminate.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds the settings wisp's CLI reads before running a program.
type Config struct {
	// MaxCallDepth bounds MethodBody recursion depth as a safety valve
	// against runaway recursion (spec §9); zero means unbounded.
	MaxCallDepth int `yaml:"max_call_depth"`

	// TraceToStderr controls where `wisp run --trace` sends its JSON
	// step lines: stderr (default, true) or stdout (false).
	TraceToStderr bool `yaml:"trace_to_stderr"`
}

// Default returns the configuration used when no .wisp.yaml is found.
func Default() Config {
	return Config{MaxCallDepth: 0, TraceToStderr: true}
}

// Load reads and parses the YAML file at path, overlaying it onto
// Default(). A missing file is not an error: Load returns Default()
// unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDefaultFile looks for .wisp.yaml in dir, returning Default() if
// it is absent.
func LoadDefaultFile(dir string) (Config, error) {
	return Load(dir + "/.wisp.yaml")
}
