// Package contract provides interfaces and shared utilities for magarea's internal architecture.
package contract

import (
	"time"

	"github.com/huangsam/magarea/schema"
)

// HistoryManager defines the interface for managing the run history store.
// This allows the history layer to be mocked for testing.
type HistoryManager interface {
	GetHistoryStore() HistoryStore
}

// HistoryStore defines the interface for tracking runs and storing their estimates.
type HistoryStore interface {
	// BeginRun creates a new run and returns its unique ID
	BeginRun(command string, startTime time.Time, configParams map[string]any) (int64, error)

	// RecordEstimate stores one evaluated estimate under a run
	RecordEstimate(runID int64, seq int, estimate schema.Estimate) error

	// EndRun updates the run with completion data
	EndRun(runID int64, endTime time.Time, totalEstimates int) error

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// GetAllRuns returns every stored run ordered by ID
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllEstimates returns every stored estimate ordered by run and sequence
	GetAllEstimates() ([]schema.EstimateRecord, error)

	// Close closes the underlying connection
	Close() error
}
