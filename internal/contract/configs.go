package contract

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/huangsam/magarea/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = 3
	MaxPrecision     = 6
	DefaultRegime    = string(schema.CrustalRegime)
	DefaultKind      = string(schema.MagKind)
)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for an evaluation.
// This struct remains the "final, validated" config.
type Config struct {
	Regime schema.Regime
	Rake   schema.Rake
	Values []float64 // areas or magnitudes, depending on the command
	Kind   schema.EstimateKind

	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int  // Terminal width override (0 = auto-detect)
	UseColors  bool // Enable colored mechanism labels in table output

	HistoryBackend   schema.DatabaseBackend // empty means history is disabled
	HistoryDBConnect string                 // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	ValueArgs []string

	// --- Fields from rootCmd.PersistentFlags() ---
	Regime           string `mapstructure:"regime"`
	Rake             string `mapstructure:"rake"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Precision        int    `mapstructure:"precision"`
	Width            int    `mapstructure:"width"`
	Color            string `mapstructure:"color"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`

	// --- Fields from tableCmd.Flags() ---
	Kind   string `mapstructure:"kind"`
	Values string `mapstructure:"values"`
}

// Event returns the rake and regime as an event value.
func (c *Config) Event() schema.Event {
	return schema.Event{Rake: c.Rake, Regime: c.Regime}
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Values != nil {
		clone.Values = slices.Clone(c.Values)
	}
	return &clone
}

// HistoryEnabled reports whether runs should be recorded.
func (c *Config) HistoryEnabled() bool {
	return c.HistoryBackend != "" && c.HistoryBackend != schema.NoneBackend
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateEventInputs(cfg, input); err != nil {
		return err
	}
	if err := validateOutputInputs(cfg, input); err != nil {
		return err
	}
	if err := processValues(cfg, input); err != nil {
		return err
	}
	return validateBackendConfig(cfg, input)
}

// validateEventInputs resolves the regime and rake.
func validateEventInputs(cfg *Config, input *ConfigRawInput) error {
	regime := input.Regime
	if regime == "" {
		regime = DefaultRegime
	}
	r, err := schema.ParseRegime(regime)
	if err != nil {
		return err
	}
	cfg.Regime = r

	rake, err := schema.ParseRake(input.Rake)
	if err != nil {
		return err
	}
	cfg.Rake = rake
	return nil
}

// validateOutputInputs processes and validates all presentation fields.
func validateOutputInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Precision < 1 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 1 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	if input.Width < 0 {
		return fmt.Errorf("width must not be negative (received %d)", input.Width)
	}
	return nil
}

// processValues parses positional values, falling back to the --values list.
func processValues(cfg *Config, input *ConfigRawInput) error {
	kind := input.Kind
	if kind == "" {
		kind = DefaultKind
	}
	cfg.Kind = schema.EstimateKind(strings.ToLower(kind))
	if _, ok := schema.ValidEstimateKinds[cfg.Kind]; !ok {
		return fmt.Errorf("invalid kind '%s'. must be mag or area", input.Kind)
	}

	if len(input.ValueArgs) > 0 {
		values := make([]float64, 0, len(input.ValueArgs))
		for _, arg := range input.ValueArgs {
			v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", arg, err)
			}
			values = append(values, v)
		}
		cfg.Values = values
		return nil
	}

	values, err := ParseFloatList(input.Values)
	if err != nil {
		return fmt.Errorf("invalid --values: %w", err)
	}
	cfg.Values = values
	return nil
}

// validateBackendConfig validates the history backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if cfg.HistoryBackend == "" {
		return nil
	}
	if _, ok := schema.ValidDatabaseBackends[cfg.HistoryBackend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
	}
	cfg.HistoryDBConnect = input.HistoryDBConnect
	return ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect)
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// ProcessProfilingConfig enables profiling when a prefix is provided.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}
