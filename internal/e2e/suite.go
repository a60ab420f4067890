package e2e

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed scenarios.yaml
var defaultSuite []byte

type Suite struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// DefaultSuite returns the scenarios shipped with the binary.
func DefaultSuite() (*Suite, error) {
	return ParseSuite(defaultSuite)
}

// LoadSuite reads a suite file, falling back to the embedded suite when path
// is empty.
func LoadSuite(path string) (*Suite, error) {
	if path == "" {
		return DefaultSuite()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite: %w", err)
	}
	return ParseSuite(data)
}

func ParseSuite(data []byte) (*Suite, error) {
	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("decode suite: %w", err)
	}
	if len(suite.Scenarios) == 0 {
		return nil, fmt.Errorf("suite has no scenarios")
	}
	seen := make(map[string]bool, len(suite.Scenarios))
	for _, sc := range suite.Scenarios {
		if err := sc.Validate(); err != nil {
			return nil, err
		}
		if seen[sc.FullName()] {
			return nil, fmt.Errorf("duplicate scenario %q", sc.FullName())
		}
		seen[sc.FullName()] = true
	}
	return &suite, nil
}

// Filter keeps the scenarios whose full name contains substr, ignoring case.
// An empty substr keeps everything.
func (s *Suite) Filter(substr string) []Scenario {
	if substr == "" {
		return s.Scenarios
	}
	needle := strings.ToLower(substr)
	var out []Scenario
	for _, sc := range s.Scenarios {
		if strings.Contains(strings.ToLower(sc.FullName()), needle) {
			out = append(out, sc)
		}
	}
	return out
}
