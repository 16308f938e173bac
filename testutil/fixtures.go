// Package testutil loads shared transition fixtures for tests and benchmarks.
package testutil

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Case is one row of a transition fixture table.
type Case struct {
	Name      string `yaml:"name"`
	X         uint16 `yaml:"x"`
	Y         uint16 `yaml:"y"`
	Threshold uint16 `yaml:"threshold"`
	WantX     uint16 `yaml:"want_x"`
	WantY     uint16 `yaml:"want_y"`
	WantErr   string `yaml:"want_err"` // "", "overflow" or "underflow"
}

// LoadCases reads a YAML list of Case from path.
func LoadCases(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var cases []Case
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("yaml unmarshal %s: %w", path, err)
	}
	for i, c := range cases {
		switch c.WantErr {
		case "", "overflow", "underflow":
		default:
			return nil, fmt.Errorf("case %d (%s): unknown want_err %q", i, c.Name, c.WantErr)
		}
	}
	return cases, nil
}
