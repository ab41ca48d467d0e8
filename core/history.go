package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/magarea/internal/contract"
	"github.com/huangsam/magarea/schema"
)

// recordRun stores a finished evaluation in the run history.
// Tracking failures are logged and never fail the command.
func recordRun(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager, command string, start time.Time, estimates []schema.Estimate) {
	if mgr == nil || !cfg.HistoryEnabled() {
		return
	}
	store := mgr.GetHistoryStore()
	if store == nil {
		return
	}

	runID, err := store.BeginRun(command, start, configParams(cfg))
	if err != nil {
		logTrackingError("BeginRun", command, err)
		return
	}
	ctx = withRunID(ctx, runID)

	recorded := recordEstimates(ctx, store, estimates)

	if err := store.EndRun(runID, time.Now(), recorded); err != nil {
		logTrackingError("EndRun", command, err)
	}
}

// recordEstimates writes each estimate under the run stored in ctx and returns how many succeeded.
func recordEstimates(ctx context.Context, store contract.HistoryStore, estimates []schema.Estimate) int {
	runID, ok := getRunID(ctx)
	if !ok {
		return 0
	}
	recorded := 0
	for i, e := range estimates {
		if err := store.RecordEstimate(runID, i+1, e); err != nil {
			logTrackingError("RecordEstimate", string(e.Kind), err)
			continue
		}
		recorded++
	}
	return recorded
}

// configParams captures the inputs of a run for later inspection.
func configParams(cfg *contract.Config) map[string]any {
	return map[string]any{
		"regime":    string(cfg.Regime),
		"rake":      cfg.Rake.Ptr(),
		"values":    cfg.Values,
		"kind":      string(cfg.Kind),
		"precision": cfg.Precision,
		"output":    string(cfg.Output),
	}
}

// logTrackingError logs history tracking errors to stderr without disrupting the run.
func logTrackingError(operation, subject string, err error) {
	contract.LogWarn(fmt.Sprintf("History tracking failed for %s on %s", operation, subject), err)
}
