// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"github.com/huangsam/magarea/internal/contract"
	"github.com/huangsam/magarea/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteEstimates prints evaluated estimates using the configured output format.
func (ow *OutWriter) WriteEstimates(estimates []schema.Estimate, cfg *contract.Config, duration time.Duration) error {
	return PrintEstimates(estimates, cfg, duration)
}

// WriteTable prints a scaling table using the configured output format.
func (ow *OutWriter) WriteTable(table schema.ScalingTable, cfg *contract.Config, duration time.Duration) error {
	return PrintScalingTable(table, cfg, duration)
}

// WriteCoeffs prints the regression coefficients using the configured output format.
func (ow *OutWriter) WriteCoeffs(cfg *contract.Config) error {
	return PrintCoefficients(cfg)
}

// GetMaxDescriptionWidth calculates the maximum width for the description column
// in table output based on terminal width.
func GetMaxDescriptionWidth(cfg *contract.Config) int {
	termWidth := cfg.Width
	if termWidth <= 0 {
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Index, input, kind, rake, regime, mechanism, median and stddev with borders
	baseWidth := 90

	available := termWidth - baseWidth
	if available < 20 {
		return 20
	}
	if available > 80 {
		return 80
	}
	return available
}

// truncate shortens s to max runes, marking the cut with "...".
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
