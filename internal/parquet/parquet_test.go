package parquet

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/magarea/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRuns() []Run {
	now := time.Now()
	end := now.Add(15 * time.Millisecond)
	duration := int32(15)
	params := `{"regime":"crustal","rake":"90"}`
	return []Run{
		{RunID: 1, Command: "mag", StartTime: now, EndTime: &end, RunDurationMs: &duration, TotalEstimates: 2, ConfigParams: &params},
		{RunID: 2, Command: "describe", StartTime: now.Add(time.Minute)}, // nullable fields left nil
	}
}

func TestStructTags(t *testing.T) {
	tests := []struct {
		name    string
		model   any
		columns []string
	}{
		{"run", new(Run), []string{"run_id", "command", "start_time", "end_time", "run_duration_ms", "total_estimates", "config_params"}},
		{"estimate", new(Estimate), []string{"run_id", "seq", "kind", "input_value", "rake", "regime", "mechanism", "median", "std_dev", "description"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := parquet.SchemaOf(tt.model)
			require.NotNil(t, s)
			for _, colName := range tt.columns {
				_, ok := s.Lookup(colName)
				assert.True(t, ok, "Column %s should exist in schema", colName)
			}
		})
	}
}

func TestWriteRunsParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "runs.parquet")
	data := sampleRuns()
	require.NoError(t, WriteRunsParquet(data, outputPath))

	readData, err := parquet.ReadFile[Run](outputPath)
	require.NoError(t, err)
	require.Len(t, readData, len(data))

	assert.Equal(t, int64(1), readData[0].RunID)
	assert.Equal(t, "mag", readData[0].Command)
	require.NotNil(t, readData[0].RunDurationMs)
	assert.Equal(t, int32(15), *readData[0].RunDurationMs)
	assert.Nil(t, readData[1].EndTime)
	assert.Nil(t, readData[1].ConfigParams)
}

func TestWriteEstimatesParquet(t *testing.T) {
	area := 500.0
	median := 6.73
	estimates := []schema.Estimate{
		{
			Kind:        schema.MagKind,
			Input:       &area,
			Rake:        schema.NewRake(90),
			Regime:      schema.CrustalRegime,
			Mechanism:   string(schema.ReverseMechanism),
			Median:      &median,
			StdDev:      schema.FloatPtr(0.121, true),
			Description: "Thingbaijam et al.(2017) for shallow reverse-faulting events",
		},
		{
			Kind:        schema.StdDevKind,
			Rake:        schema.UndefinedRake(),
			Regime:      schema.CrustalRegime,
			Mechanism:   schema.NotAvailable,
			Description: "Thingbaijam et al.(2017) for not available events",
		},
	}

	outputPath := filepath.Join(t.TempDir(), "estimates.parquet")
	rows := ConvertEstimates(estimates)
	require.NoError(t, WriteEstimatesParquet(rows, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	readData, err := parquet.ReadFile[Estimate](outputPath)
	require.NoError(t, err)
	require.Len(t, readData, 2)

	assert.Equal(t, int32(1), readData[0].Seq)
	assert.Equal(t, "mag", readData[0].Kind)
	require.NotNil(t, readData[0].Median)
	assert.Equal(t, median, *readData[0].Median)
	require.NotNil(t, readData[0].Rake)
	assert.Equal(t, 90.0, *readData[0].Rake)

	assert.Nil(t, readData[1].InputValue)
	assert.Nil(t, readData[1].Rake)
	assert.Nil(t, readData[1].Median)
	assert.Nil(t, readData[1].StdDev)
	assert.Equal(t, schema.NotAvailable, readData[1].Mechanism)
}

func TestWriteParquet_InvalidPath(t *testing.T) {
	err := WriteRunsParquet(sampleRuns(), "/nonexistent/dir/runs.parquet")
	assert.Error(t, err)
}

func TestWriteParquet_EmptyData(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.parquet")
	require.NoError(t, WriteEstimatesParquet([]Estimate{}, outputPath))
	readData, err := parquet.ReadFile[Estimate](outputPath)
	require.NoError(t, err)
	assert.Empty(t, readData)
}

func TestConvertRunRecords(t *testing.T) {
	now := time.Now()
	records := []schema.RunRecord{{RunID: 3, Command: "table", StartTime: now, TotalEstimates: 16}}
	runs := ConvertRunRecords(records)
	require.Len(t, runs, 1)
	assert.Equal(t, int64(3), runs[0].RunID)
	assert.Equal(t, "table", runs[0].Command)
	assert.Equal(t, int32(16), runs[0].TotalEstimates)
	assert.True(t, now.Equal(runs[0].StartTime))
}
