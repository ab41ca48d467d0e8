package outwriter

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/magarea/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFormatter(t *testing.T) {
	tests := []struct {
		name      string
		precision int
		value     *float64
		expected  string
	}{
		{name: "precision 2", precision: 2, value: floatPtr(3.14159), expected: "3.14"},
		{name: "precision 4", precision: 4, value: floatPtr(3.14159), expected: "3.1416"},
		{name: "negative value", precision: 2, value: floatPtr(-42.567), expected: "-42.57"},
		{name: "nil value", precision: 3, value: nil, expected: "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, createFormatter(tt.precision)(tt.value))
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", buf.String())
}

func TestWriteCSVWithHeader(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"x", "y"}, func(w *csv.Writer) error {
		return w.Write([]string{"1", "2"})
	})
	require.NoError(t, err)
	assert.Equal(t, "x,y\n1,2\n", buf.String())
}

func TestWriteWithFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.txt")
	err := writeWithFile(out, func(w io.Writer) error {
		_, err := io.WriteString(w, "hello")
		return err
	}, "Wrote text")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestGetMaxDescriptionWidth(t *testing.T) {
	assert.Equal(t, 20, GetMaxDescriptionWidth(&contract.Config{Width: 60}))
	assert.Equal(t, 40, GetMaxDescriptionWidth(&contract.Config{Width: 130}))
	assert.Equal(t, 80, GetMaxDescriptionWidth(&contract.Config{Width: 400}))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate(strings.Repeat("abcdefghij", 3), 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}

func floatPtr(v float64) *float64 {
	return &v
}
