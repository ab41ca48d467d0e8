package history

import (
	"errors"
	"fmt"

	"github.com/huangsam/magarea/internal/contract"
	"github.com/huangsam/magarea/internal/parquet"
)

// ExportPaths returns the Parquet files written for an export prefix.
func ExportPaths(outputFile string) (runsFile, estimatesFile string) {
	return outputFile + ".runs.parquet", outputFile + ".estimates.parquet"
}

// ExecuteHistoryExport exports all runs and estimates of a store to Parquet files.
func ExecuteHistoryExport(store contract.HistoryStore, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}
	if store == nil {
		return errors.New("history is disabled. Set --history-backend to export runs")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no history data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.TotalRuns)
	fmt.Printf("Total estimate records: %d\n", status.TableSizes[estimatesTable])

	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}
	estimates, err := store.GetAllEstimates()
	if err != nil {
		return fmt.Errorf("failed to retrieve estimates: %w", err)
	}

	runsFile, estimatesFile := ExportPaths(outputFile)

	parquetRuns := parquet.ConvertRunRecords(runs)
	if err := parquet.WriteRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(parquetRuns), runsFile)

	parquetEstimates := parquet.ConvertEstimateRecords(estimates)
	if err := parquet.WriteEstimatesParquet(parquetEstimates, estimatesFile); err != nil {
		return fmt.Errorf("failed to write estimates: %w", err)
	}
	fmt.Printf("Exported %d estimates to: %s\n", len(parquetEstimates), estimatesFile)

	return nil
}
