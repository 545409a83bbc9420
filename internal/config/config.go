// internal/config/config.go
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is an optional YAML file carrying defaults for analysis runs, so a
// lab can pin window size, method, and output format per project instead of
// repeating flags. Explicit flags always win over profile values.
type Profile struct {
	WindowSize  int    `yaml:"window_size"`
	Method      string `yaml:"method"`
	Output      string `yaml:"output"`
	Threads     int    `yaml:"threads"`
	SkipInvalid bool   `yaml:"skip_invalid"`
	Sort        bool   `yaml:"sort"`
}

// Load reads and parses a profile file. Unknown keys are rejected so typos
// fail loudly rather than being silently ignored.
func Load(path string) (Profile, error) {
	var p Profile
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read profile: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return p, fmt.Errorf("parse profile %s: %w", path, err)
	}
	if p.WindowSize < 0 {
		return p, fmt.Errorf("profile %s: window_size must be >= 0", path)
	}
	if p.Threads < 0 {
		return p, fmt.Errorf("profile %s: threads must be >= 0", path)
	}
	return p, nil
}
