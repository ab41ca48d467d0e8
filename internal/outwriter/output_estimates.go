package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/huangsam/magarea/internal/contract"
	"github.com/huangsam/magarea/internal/parquet"
	"github.com/huangsam/magarea/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// ErrParquetNeedsFile is returned when parquet output is requested without a file.
var ErrParquetNeedsFile = errors.New("parquet output requires --output-file")

// estimateCSVHeader is the column order shared by CSV and text output.
var estimateCSVHeader = []string{"input", "kind", "rake", "regime", "mechanism", "median", "stddev", "description"}

// PrintEstimates outputs the estimates, dispatching based on the output format configured.
func PrintEstimates(estimates []schema.Estimate, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, estimates)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeEstimatesCSV(w, estimates, fmtFloat)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeEstimatesParquet(estimates, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeEstimatesTable(w, estimates, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
	return nil
}

// writeEstimatesParquet writes estimates to a Parquet file.
func writeEstimatesParquet(estimates []schema.Estimate, outputFile string) error {
	if outputFile == "" {
		return ErrParquetNeedsFile
	}
	if err := parquet.WriteEstimatesParquet(parquet.ConvertEstimates(estimates), outputFile); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", outputFile)
	return nil
}

// writeEstimatesCSV writes the estimates in CSV format.
func writeEstimatesCSV(w io.Writer, estimates []schema.Estimate, fmtFloat func(*float64) string) error {
	return writeCSVWithHeader(w, estimateCSVHeader, func(csvWriter *csv.Writer) error {
		for _, e := range estimates {
			rec := []string{
				fmtFloat(e.Input),
				string(e.Kind),
				e.Rake.String(),
				string(e.Regime),
				e.Mechanism,
				fmtFloat(e.Median),
				fmtFloat(e.StdDev),
				e.Description,
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeEstimatesTable generates and writes the human-readable table.
func writeEstimatesTable(w io.Writer, estimates []schema.Estimate, cfg *contract.Config, fmtFloat func(*float64) string, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"#", "Input", "Kind", "Rake", "Regime", "Mechanism", "Median", "StdDev", "Description"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	descWidth := GetMaxDescriptionWidth(cfg)
	data := make([][]string, 0, len(estimates))
	for i, e := range estimates {
		mechanism := e.Mechanism
		if cfg.UseColors {
			mechanism = contract.GetColorLabel(mechanism)
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			fmtFloat(e.Input),
			string(e.Kind),
			e.Rake.String(),
			string(e.Regime),
			mechanism,
			fmtFloat(e.Median),
			fmtFloat(e.StdDev),
			truncate(e.Description, descWidth),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	backend := cfg.HistoryBackend
	if backend == "" {
		backend = schema.NoneBackend
	}
	if _, err := fmt.Fprintf(w, "Showing %d estimates\n", len(estimates)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Evaluation completed in %v. History backend: %s\n", duration, backend); err != nil {
		return err
	}
	return nil
}
