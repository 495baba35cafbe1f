package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// TraceEntry is a single convergence record, serialized as one JSON
// line in trace.jsonl.
type TraceEntry struct {
	Generation  int       `json:"generation"`
	Fevals      int       `json:"fevals"`
	BestFitness float64   `json:"bestFitness"`
	Improvement float64   `json:"improvement"`
	Timestamp   time.Time `json:"timestamp"`
}

// TraceWriter appends convergence records to a JSONL file. It uses
// buffered I/O and is safe for concurrent use.
type TraceWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *bufio.Writer
	path   string
}

// NewTraceWriter creates a trace writer for the given run. The trace
// file is created at <baseDir>/runs/<runID>/trace.jsonl, truncating
// any previous trace.
func NewTraceWriter(baseDir, runID string) (*TraceWriter, error) {
	runDir := filepath.Join(baseDir, "runs", runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create run directory: %w", err)
	}

	path := filepath.Join(runDir, "trace.jsonl")
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace file: %w", err)
	}

	return &TraceWriter{
		file:   file,
		writer: bufio.NewWriterSize(file, 64*1024),
		path:   path,
	}, nil
}

// Write appends a trace entry. The entry is buffered until Flush or Close.
func (tw *TraceWriter) Write(entry TraceEntry) error {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to serialize trace entry: %w", err)
	}
	if _, err := tw.writer.Write(data); err != nil {
		return fmt.Errorf("failed to write trace entry: %w", err)
	}
	if err := tw.writer.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write trace newline: %w", err)
	}
	return nil
}

// Flush writes buffered entries to disk.
func (tw *TraceWriter) Flush() error {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	return tw.writer.Flush()
}

// Close flushes and closes the trace file.
func (tw *TraceWriter) Close() error {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if err := tw.writer.Flush(); err != nil {
		tw.file.Close()
		return fmt.Errorf("failed to flush trace: %w", err)
	}
	return tw.file.Close()
}

// Path returns the trace file path.
func (tw *TraceWriter) Path() string {
	return tw.path
}

// ReadTrace loads all trace entries for a run, in file order.
func ReadTrace(baseDir, runID string) ([]TraceEntry, error) {
	path := filepath.Join(baseDir, "runs", runID, "trace.jsonl")

	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, &NotFoundError{RunID: runID}
	} else if err != nil {
		return nil, fmt.Errorf("failed to open trace file: %w", err)
	}
	defer file.Close()

	var entries []TraceEntry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry TraceEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			return nil, fmt.Errorf("failed to parse trace line: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read trace file: %w", err)
	}
	return entries, nil
}
