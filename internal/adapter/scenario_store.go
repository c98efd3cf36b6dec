// Package adapter provides file system adapters for calculo.
package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	m "gooze.dev/pkg/calculo/internal/model"
)

// ErrInvalidScenario reports a scenario file entry that cannot be turned into inputs.
var ErrInvalidScenario = errors.New("invalid scenario")

// ScenarioStore loads and saves scenario files.
type ScenarioStore interface {
	LoadScenarios(path m.Path) ([]m.Scenario, error)
	SaveScenarios(path m.Path, scenarios []m.Scenario) error
}

// scenarioFile is the YAML layout of a scenario file.
type scenarioFile struct {
	Scenarios []scenarioEntry `yaml:"scenarios"`
}

type scenarioEntry struct {
	Name   string    `yaml:"name,omitempty"`
	Inputs []float64 `yaml:"inputs,flow"`
	Expect string    `yaml:"expect,omitempty"`
}

// LocalScenarioStore implements ScenarioStore on the local file system.
type LocalScenarioStore struct{}

// NewLocalScenarioStore creates a new LocalScenarioStore.
func NewLocalScenarioStore() *LocalScenarioStore {
	return &LocalScenarioStore{}
}

// LoadScenarios reads a YAML scenario file.
func (s *LocalScenarioStore) LoadScenarios(path m.Path) ([]m.Scenario, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file %s: %w", path, err)
	}

	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file %s: %w", path, err)
	}

	scenarios := make([]m.Scenario, 0, len(file.Scenarios))

	for i, entry := range file.Scenarios {
		scenario, err := entry.toScenario(i)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		scenarios = append(scenarios, scenario)
	}

	slog.Debug("loaded scenarios", "path", path, "count", len(scenarios))

	return scenarios, nil
}

// SaveScenarios writes scenarios to a YAML file, replacing any existing content.
func (s *LocalScenarioStore) SaveScenarios(path m.Path, scenarios []m.Scenario) error {
	file := scenarioFile{Scenarios: make([]scenarioEntry, 0, len(scenarios))}

	for _, scenario := range scenarios {
		entry := scenarioEntry{
			Name: scenario.Name,
			Inputs: []float64{
				scenario.Inputs.A, scenario.Inputs.B, scenario.Inputs.C, scenario.Inputs.D,
			},
		}
		if scenario.Expect != nil {
			entry.Expect = scenario.Expect.String()
		}

		file.Scenarios = append(file.Scenarios, entry)
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("failed to encode scenarios: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("failed to write scenario file %s: %w", path, err)
	}

	return nil
}

func (e scenarioEntry) toScenario(index int) (m.Scenario, error) {
	name := e.Name
	if name == "" {
		name = "#" + strconv.Itoa(index)
	}

	if len(e.Inputs) != 4 {
		return m.Scenario{}, fmt.Errorf("%w %q: want 4 inputs, got %d", ErrInvalidScenario, name, len(e.Inputs))
	}

	scenario := m.Scenario{
		Name: name,
		Inputs: m.Inputs{
			A: e.Inputs[0],
			B: e.Inputs[1],
			C: e.Inputs[2],
			D: e.Inputs[3],
		},
	}

	if e.Expect != "" {
		verdict, ok := m.ParseVerdict(e.Expect)
		if !ok {
			return m.Scenario{}, fmt.Errorf("%w %q: unknown expectation %q", ErrInvalidScenario, name, e.Expect)
		}

		scenario.Expect = &verdict
	}

	return scenario, nil
}
