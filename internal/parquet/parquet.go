// Package parquet provides data structures and functions for exporting magarea
// runs and estimates to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/magarea/schema"
	"github.com/parquet-go/parquet-go"
)

// Run represents a single recorded magarea command invocation.
// This struct maps to the magarea_runs database table.
type Run struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// Command is the subcommand that produced the run (mag, area, stddev, ...)
	Command string `parquet:"command,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// TotalEstimates is the number of estimates produced by this run
	TotalEstimates int32 `parquet:"total_estimates,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// Estimate represents one evaluated quantity.
// This struct maps to the magarea_estimates database table and to the parquet output mode.
type Estimate struct {
	RunID       int64    `parquet:"run_id,snappy"`
	Seq         int32    `parquet:"seq,snappy"`
	Kind        string   `parquet:"kind,dict,snappy"`
	InputValue  *float64 `parquet:"input_value,optional,snappy"`
	Rake        *float64 `parquet:"rake,optional,snappy"`
	Regime      string   `parquet:"regime,dict,snappy"`
	Mechanism   string   `parquet:"mechanism,dict,snappy"`
	Median      *float64 `parquet:"median,optional,snappy"`
	StdDev      *float64 `parquet:"std_dev,optional,snappy"`
	Description string   `parquet:"description,dict,snappy"`
}

// writeParquet writes a slice of rows to a Parquet file.
// The schema is derived from the struct tags of T.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WriteRunsParquet writes a slice of Run structs to a Parquet file.
func WriteRunsParquet(data []Run, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteEstimatesParquet writes a slice of Estimate structs to a Parquet file.
func WriteEstimatesParquet(data []Estimate, outputPath string) error {
	return writeParquet(data, outputPath)
}

// ConvertRunRecords converts schema.RunRecord to Run for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []Run {
	result := make([]Run, len(records))
	for i, record := range records {
		result[i] = Run{
			RunID:          record.RunID,
			Command:        record.Command,
			StartTime:      record.StartTime,
			EndTime:        record.EndTime,
			RunDurationMs:  record.RunDurationMs,
			TotalEstimates: record.TotalEstimates,
			ConfigParams:   record.ConfigParams,
		}
	}
	return result
}

// ConvertEstimateRecords converts schema.EstimateRecord to Estimate for Parquet export.
func ConvertEstimateRecords(records []schema.EstimateRecord) []Estimate {
	result := make([]Estimate, len(records))
	for i, record := range records {
		result[i] = Estimate{
			RunID:       record.RunID,
			Seq:         record.Seq,
			Kind:        record.Kind,
			InputValue:  record.InputValue,
			Rake:        record.Rake,
			Regime:      record.Regime,
			Mechanism:   record.Mechanism,
			Median:      record.Median,
			StdDev:      record.StdDev,
			Description: record.Description,
		}
	}
	return result
}

// ConvertEstimates converts in-memory estimates for the parquet output mode.
// They carry no run, so RunID is zero.
func ConvertEstimates(estimates []schema.Estimate) []Estimate {
	records := make([]schema.EstimateRecord, len(estimates))
	for i, e := range estimates {
		records[i] = schema.ToEstimateRecord(0, int32(i+1), e)
	}
	return ConvertEstimateRecords(records)
}
