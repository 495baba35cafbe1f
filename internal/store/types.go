package store

import "time"

// RunConfig echoes the configuration a run was launched with, so a
// persisted result is interpretable on its own.
type RunConfig struct {
	Method               string  `json:"method"`
	SolutionSize         int     `json:"solutionSize"`
	LowerBound           float64 `json:"lowerBound"`
	UpperBound           float64 `json:"upperBound"`
	PopSize              int     `json:"popSize"`
	MaxIterations        int     `json:"maxIterations"`
	Seed                 int64   `json:"seed"`
	VerbosityLevel       int     `json:"verbosityLevel,omitempty"`
	EarlyStoppingCounter int     `json:"earlyStoppingCounter,omitempty"`
}

// RunResult is the persisted outcome of one optimization run.
type RunResult struct {
	RunID          string    `json:"runId"`
	Method         string    `json:"method"`
	BestX          []float64 `json:"bestX"`
	BestFitness    float64   `json:"bestFitness"`
	InitialFitness float64   `json:"initialFitness"`
	Generations    int       `json:"generations"`
	EarlyStopped   bool      `json:"earlyStopped"`
	Fevals         int       `json:"fevals"`
	Timestamp      time.Time `json:"timestamp"`
	Config         RunConfig `json:"config"`
}

// RunInfo is run metadata without the solution vector, used for
// listing runs without loading full results.
type RunInfo struct {
	RunID        string    `json:"runId"`
	Method       string    `json:"method"`
	BestFitness  float64   `json:"bestFitness"`
	Generations  int       `json:"generations"`
	EarlyStopped bool      `json:"earlyStopped"`
	Fevals       int       `json:"fevals"`
	Timestamp    time.Time `json:"timestamp"`
}

// ToInfo converts a full RunResult to its metadata.
func (r *RunResult) ToInfo() RunInfo {
	return RunInfo{
		RunID:        r.RunID,
		Method:       r.Method,
		BestFitness:  r.BestFitness,
		Generations:  r.Generations,
		EarlyStopped: r.EarlyStopped,
		Fevals:       r.Fevals,
		Timestamp:    r.Timestamp,
	}
}
