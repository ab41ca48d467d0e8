// Package core has the magnitude-area regression and the command logic built on it.
package core

import (
	"context"
	"errors"
	"time"

	"github.com/huangsam/magarea/internal/contract"
	"github.com/huangsam/magarea/internal/outwriter"
	"github.com/huangsam/magarea/schema"
)

// ExecutorFunc defines the function signature for executing commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error

// ErrNoValues is returned when an evaluation command receives no inputs.
var ErrNoValues = errors.New("at least one value is required")

// NewMagAreaRelFromConfig returns a relation set to the configured rake and regime.
// An empty regime keeps the crustal default.
func NewMagAreaRelFromConfig(cfg *contract.Config) (*MagAreaRel, error) {
	m := NewMagAreaRel()
	if cfg.Regime != "" {
		if err := m.SetRegime(string(cfg.Regime)); err != nil {
			return nil, err
		}
	}
	if deg, ok := cfg.Rake.Degrees(); ok {
		if err := m.SetRake(deg); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// GetMagResults evaluates the median magnitude for every configured area.
func GetMagResults(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) ([]schema.Estimate, time.Duration, error) {
	return evaluate(ctx, cfg, mgr, "mag", func(m *MagAreaRel) ([]schema.Estimate, error) {
		if len(cfg.Values) == 0 {
			return nil, ErrNoValues
		}
		estimates := make([]schema.Estimate, 0, len(cfg.Values))
		for _, area := range cfg.Values {
			estimates = append(estimates, estimateMag(m, area))
		}
		return estimates, nil
	})
}

// GetAreaResults evaluates the median rupture area for every configured magnitude.
func GetAreaResults(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) ([]schema.Estimate, time.Duration, error) {
	return evaluate(ctx, cfg, mgr, "area", func(m *MagAreaRel) ([]schema.Estimate, error) {
		if len(cfg.Values) == 0 {
			return nil, ErrNoValues
		}
		estimates := make([]schema.Estimate, 0, len(cfg.Values))
		for _, mag := range cfg.Values {
			estimates = append(estimates, estimateArea(m, mag))
		}
		return estimates, nil
	})
}

// GetStdDevResults reports the standard deviation for the configured event.
func GetStdDevResults(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) ([]schema.Estimate, time.Duration, error) {
	return evaluate(ctx, cfg, mgr, "stddev", func(m *MagAreaRel) ([]schema.Estimate, error) {
		return []schema.Estimate{estimateStdDev(m)}, nil
	})
}

// GetDescribeResults reports the mechanism and description for the configured event.
func GetDescribeResults(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) ([]schema.Estimate, time.Duration, error) {
	return evaluate(ctx, cfg, mgr, "describe", func(m *MagAreaRel) ([]schema.Estimate, error) {
		return []schema.Estimate{newEstimate(m, schema.DescKind)}, nil
	})
}

// GetTableResults builds the scaling table for the configured kind and values.
func GetTableResults(ctx context.Context, cfg *contract.Config, _ contract.HistoryManager) (schema.ScalingTable, time.Duration, error) {
	start := time.Now()
	if !shouldSuppressHeader(ctx) {
		outwriter.LogRunHeader(cfg, "table")
	}
	table, err := BuildScalingTable(cfg.Kind, cfg.Values)
	if err != nil {
		return schema.ScalingTable{}, 0, err
	}
	return table, time.Since(start), nil
}

// evaluate runs a single evaluation command and records it in the run history.
func evaluate(
	ctx context.Context,
	cfg *contract.Config,
	mgr contract.HistoryManager,
	command string,
	run func(*MagAreaRel) ([]schema.Estimate, error),
) ([]schema.Estimate, time.Duration, error) {
	start := time.Now()
	if !shouldSuppressHeader(ctx) {
		outwriter.LogRunHeader(cfg, command)
	}

	m, err := NewMagAreaRelFromConfig(cfg)
	if err != nil {
		return nil, 0, err
	}
	estimates, err := run(m)
	if err != nil {
		return nil, 0, err
	}

	recordRun(ctx, cfg, mgr, command, start, estimates)
	return estimates, time.Since(start), nil
}

// ExecuteMag prints the median magnitude for each area.
func ExecuteMag(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error {
	return executeEstimates(ctx, cfg, mgr, GetMagResults)
}

// ExecuteArea prints the median rupture area for each magnitude.
func ExecuteArea(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error {
	return executeEstimates(ctx, cfg, mgr, GetAreaResults)
}

// ExecuteStdDev prints the standard deviation for the configured event.
func ExecuteStdDev(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error {
	return executeEstimates(ctx, cfg, mgr, GetStdDevResults)
}

// ExecuteDescribe prints the mechanism and description for the configured event.
func ExecuteDescribe(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error {
	return executeEstimates(ctx, cfg, mgr, GetDescribeResults)
}

// ExecuteTable prints the scaling table.
func ExecuteTable(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error {
	table, duration, err := GetTableResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteTable(table, cfg, duration)
}

// ExecuteCoeffs prints the regression coefficients.
func ExecuteCoeffs(_ context.Context, cfg *contract.Config, _ contract.HistoryManager) error {
	return outwriter.NewOutWriter().WriteCoeffs(cfg)
}

type estimatesFunc func(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) ([]schema.Estimate, time.Duration, error)

func executeEstimates(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager, get estimatesFunc) error {
	estimates, duration, err := get(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteEstimates(estimates, cfg, duration)
}
