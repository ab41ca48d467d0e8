package schema

import "time"

// RunRecord represents a row from the magarea_runs table.
type RunRecord struct {
	RunID          int64
	Command        string
	StartTime      time.Time
	EndTime        *time.Time
	RunDurationMs  *int32
	TotalEstimates int32
	ConfigParams   *string
}

// EstimateRecord represents a row from the magarea_estimates table.
type EstimateRecord struct {
	RunID       int64
	Seq         int32
	Kind        string
	InputValue  *float64
	Rake        *float64
	Regime      string
	Mechanism   string
	Median      *float64
	StdDev      *float64
	Description string
}

// ToEstimateRecord converts an estimate for storage under the given run.
func ToEstimateRecord(runID int64, seq int32, e Estimate) EstimateRecord {
	return EstimateRecord{
		RunID:       runID,
		Seq:         seq,
		Kind:        string(e.Kind),
		InputValue:  e.Input,
		Rake:        e.Rake.Ptr(),
		Regime:      string(e.Regime),
		Mechanism:   e.Mechanism,
		Median:      e.Median,
		StdDev:      e.StdDev,
		Description: e.Description,
	}
}
