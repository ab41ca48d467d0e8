package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/magarea/schema"
)

// Color variables for console output.
var (
	StrikeSlipColor   = color.New(color.FgCyan)
	ReverseColor      = color.New(color.FgRed, color.Bold)
	NormalColor       = color.New(color.FgYellow)
	InterfaceColor    = color.New(color.FgMagenta, color.Bold)
	NotAvailableColor = color.New(color.Faint)
)

// GetColorLabel returns a colored mechanism label for console output (table).
func GetColorLabel(mechanism string) string {
	switch schema.Mechanism(mechanism) {
	case schema.StrikeSlipMechanism:
		return StrikeSlipColor.Sprint(mechanism)
	case schema.ReverseMechanism:
		return ReverseColor.Sprint(mechanism)
	case schema.NormalMechanism:
		return NormalColor.Sprint(mechanism)
	case schema.InterfaceMechanism:
		return InterfaceColor.Sprint(mechanism)
	default:
		return NotAvailableColor.Sprint(mechanism)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for run history.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".magarea_history.db"
	}
	return filepath.Join(homeDir, ".magarea_history.db")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// ParseFloatList parses a comma-separated list of numbers. Blank entries are skipped.
func ParseFloatList(s string) ([]float64, error) {
	var out []float64
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", part)
		}
		out = append(out, v)
	}
	return out, nil
}

// FormatFloat renders a value with the given precision, or "N/A" when nil.
// Large and small magnitudes switch to exponent notation.
func FormatFloat(v *float64, precision int) string {
	if v == nil {
		return "N/A"
	}
	abs := *v
	if abs < 0 {
		abs = -abs
	}
	if abs != 0 && (abs >= 1e6 || abs < 1e-3) {
		return strconv.FormatFloat(*v, 'e', precision, 64)
	}
	return strconv.FormatFloat(*v, 'f', precision, 64)
}
