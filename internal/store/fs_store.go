package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// FSStore implements the Store interface using filesystem-based
// persistence. Runs are stored under <baseDir>/runs/<runID>/ as a
// result.json plus an optional trace.jsonl.
//
// Thread-safety: atomic file operations (rename) are used throughout,
// no locks required.
type FSStore struct {
	baseDir string
}

// NewFSStore creates a filesystem-based store. The base directory is
// created if it doesn't exist.
func NewFSStore(baseDir string) (*FSStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}
	return &FSStore{baseDir: baseDir}, nil
}

func (fs *FSStore) runDir(runID string) string {
	return filepath.Join(fs.baseDir, "runs", runID)
}

func (fs *FSStore) resultPath(runID string) string {
	return filepath.Join(fs.runDir(runID), "result.json")
}

// SaveResult atomically saves a run result using the temp file +
// rename pattern.
func (fs *FSStore) SaveResult(runID string, result *RunResult) error {
	if runID == "" {
		return fmt.Errorf("runID cannot be empty")
	}
	if result == nil {
		return fmt.Errorf("result cannot be nil")
	}

	if err := os.MkdirAll(fs.runDir(runID), 0755); err != nil {
		return fmt.Errorf("failed to create run directory: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}

	tempPath := fs.resultPath(runID) + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp result file: %w", err)
	}

	finalPath := fs.resultPath(runID)
	if err := os.Rename(tempPath, finalPath); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename result file: %w", err)
	}

	slog.Debug("run result saved", "runID", runID, "path", finalPath)
	return nil
}

// LoadResult retrieves the result for the given run.
func (fs *FSStore) LoadResult(runID string) (*RunResult, error) {
	if runID == "" {
		return nil, fmt.Errorf("runID cannot be empty")
	}

	path := fs.resultPath(runID)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &NotFoundError{RunID: runID}
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat result file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read result file: %w", err)
	}

	var result RunResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to deserialize result: %w", err)
	}
	return &result, nil
}

// ListRuns returns metadata for all persisted runs.
func (fs *FSStore) ListRuns() ([]RunInfo, error) {
	runsDir := filepath.Join(fs.baseDir, "runs")

	if _, err := os.Stat(runsDir); os.IsNotExist(err) {
		return []RunInfo{}, nil
	}

	entries, err := os.ReadDir(runsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan runs directory: %w", err)
	}

	infos := make([]RunInfo, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		result, err := fs.LoadResult(entry.Name())
		if err != nil {
			// Skip unreadable or partial runs instead of failing the listing.
			slog.Warn("skipping unreadable run", "runID", entry.Name(), "error", err)
			continue
		}
		infos = append(infos, result.ToInfo())
	}
	return infos, nil
}

// DeleteRun removes the run directory including result and trace.
func (fs *FSStore) DeleteRun(runID string) error {
	if runID == "" {
		return fmt.Errorf("runID cannot be empty")
	}

	dir := fs.runDir(runID)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return &NotFoundError{RunID: runID}
	} else if err != nil {
		return fmt.Errorf("failed to stat run directory: %w", err)
	}

	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to delete run directory: %w", err)
	}

	slog.Debug("run deleted", "runID", runID)
	return nil
}
