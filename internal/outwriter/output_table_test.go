package outwriter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/magarea/internal/contract"
	"github.com/huangsam/magarea/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleScalingTable() schema.ScalingTable {
	return schema.ScalingTable{
		Kind: schema.MagKind,
		Scenarios: []schema.Scenario{
			{Name: "reverse", Event: schema.Event{Rake: schema.NewRake(90), Regime: schema.CrustalRegime}},
			{Name: "interface", Event: schema.Event{Rake: schema.NewRake(90), Regime: schema.InterfaceRegime}},
		},
		Rows: []schema.ScalingRow{
			{Input: 1, Values: []*float64{schema.FloatPtr(4.158, true), schema.FloatPtr(3.469, true)}},
			{Input: 500, Values: []*float64{schema.FloatPtr(6.730, true), nil}},
		},
		StdDevs: []*float64{schema.FloatPtr(0.121, true), schema.FloatPtr(0.15, true)},
	}
}

func TestScalingHeader(t *testing.T) {
	table := sampleScalingTable()
	assert.Equal(t, []string{"area", "reverse", "interface"}, scalingHeader(table))

	table.Kind = schema.AreaKind
	assert.Equal(t, "magnitude", scalingHeader(table)[0])
}

func TestWriteScalingCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeScalingCSV(&buf, sampleScalingTable(), createFormatter(3)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4) // header + 2 rows + sigma
	assert.Equal(t, "area,reverse,interface", lines[0])
	assert.Equal(t, "1.000,4.158,3.469", lines[1])
	assert.Equal(t, "500.000,6.730,N/A", lines[2])
	assert.Equal(t, "sigma,0.121,0.150", lines[3])
}

func TestWriteScalingTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeScalingTable(&buf, sampleScalingTable(), createFormatter(2), time.Millisecond))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "📐 Median magnitude by rupture area"))
	assert.Contains(t, out, "sigma")
	assert.Contains(t, out, "for 2 scenarios")
}

func TestPrintScalingTableParquet(t *testing.T) {
	cfg := &contract.Config{Output: schema.ParquetOut, OutputFile: "ignored.parquet", Precision: 3}
	err := PrintScalingTable(sampleScalingTable(), cfg, time.Millisecond)
	assert.Error(t, err)
}
