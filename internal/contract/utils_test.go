package contract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/magarea/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetColorLabel(t *testing.T) {
	labels := []string{
		string(schema.StrikeSlipMechanism),
		string(schema.ReverseMechanism),
		string(schema.NormalMechanism),
		string(schema.InterfaceMechanism),
		schema.NotAvailable,
	}
	for _, label := range labels {
		t.Run(label, func(t *testing.T) {
			assert.Contains(t, GetColorLabel(label), label)
		})
	}
}

func TestSelectOutputFile(t *testing.T) {
	f, err := SelectOutputFile("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, f)

	path := filepath.Join(t.TempDir(), "out.csv")
	f, err = SelectOutputFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestGetHistoryDBFilePath(t *testing.T) {
	path := GetHistoryDBFilePath()
	assert.True(t, strings.HasSuffix(path, ".magarea_history.db"))
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input   string
		want    bool
		wantErr bool
	}{
		{"yes", true, false},
		{"TRUE", true, false},
		{"1", true, false},
		{"no", false, false},
		{"False", false, false},
		{"0", false, false},
		{"", false, true},
		{"maybe", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFloatList(t *testing.T) {
	got, err := ParseFloatList("1, 500,1e4,,")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 500, 1e4}, got)

	got, err = ParseFloatList("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = ParseFloatList("1,two")
	assert.Error(t, err)
}

func TestFormatFloat(t *testing.T) {
	v := func(f float64) *float64 { return &f }
	tests := []struct {
		name      string
		value     *float64
		precision int
		want      string
	}{
		{"nil", nil, 3, "N/A"},
		{"plain", v(6.7348), 3, "6.735"},
		{"zero", v(0), 2, "0.00"},
		{"large", v(1234567), 2, "1.23e+06"},
		{"small", v(0.0001234), 2, "1.23e-04"},
		{"negative", v(-2.5), 1, "-2.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFloat(tt.value, tt.precision))
		})
	}
}
