package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the run-configuration surface, loaded from a YAML params
// file. Absent keys keep their defaults; unrecognized method_params
// keys are accepted and ignored downstream.
type Config struct {
	SolutionSize         int                `yaml:"solution_size"`
	LowerBound           float64            `yaml:"lower_bound"`
	UpperBound           float64            `yaml:"upper_bound"`
	PopSize              int                `yaml:"pop_size"`
	MaxIterations        int                `yaml:"max_iterations"`
	Method               string             `yaml:"method"`
	MethodParams         map[string]float64 `yaml:"method_params"`
	VerbosityLevel       int                `yaml:"verbosity_level"`
	Seed                 int64              `yaml:"seed"`
	EarlyStoppingCounter int                `yaml:"early_stopping_counter"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		SolutionSize:         10,
		LowerBound:           -10,
		UpperBound:           10,
		PopSize:              10,
		MaxIterations:        1,
		Method:               "random",
		VerbosityLevel:       0,
		Seed:                 42,
		EarlyStoppingCounter: 10,
	}
}

// Load reads a YAML params file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}
