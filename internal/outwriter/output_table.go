package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/huangsam/magarea/internal/contract"
	"github.com/huangsam/magarea/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintScalingTable outputs a scaling table, dispatching based on the output format configured.
func PrintScalingTable(table schema.ScalingTable, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, table)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScalingCSV(w, table, fmtFloat)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return errors.New("parquet output is not supported for scaling tables")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScalingTable(w, table, fmtFloat, duration)
		}, "Wrote table")
	}
	return nil
}

// scalingHeader names the input column after the table kind.
func scalingHeader(table schema.ScalingTable) []string {
	inputName := "area"
	if table.Kind == schema.AreaKind {
		inputName = "magnitude"
	}
	header := []string{inputName}
	for _, sc := range table.Scenarios {
		header = append(header, sc.Name)
	}
	return header
}

// scalingRows renders the grid body followed by the sigma row.
func scalingRows(table schema.ScalingTable, fmtFloat func(*float64) string) [][]string {
	data := make([][]string, 0, len(table.Rows)+1)
	for _, row := range table.Rows {
		input := row.Input
		rec := []string{fmtFloat(&input)}
		for _, v := range row.Values {
			rec = append(rec, fmtFloat(v))
		}
		data = append(data, rec)
	}
	sigma := []string{"sigma"}
	for _, s := range table.StdDevs {
		sigma = append(sigma, fmtFloat(s))
	}
	return append(data, sigma)
}

// writeScalingCSV writes the scaling table in CSV format.
func writeScalingCSV(w io.Writer, table schema.ScalingTable, fmtFloat func(*float64) string) error {
	return writeCSVWithHeader(w, scalingHeader(table), func(csvWriter *csv.Writer) error {
		for _, rec := range scalingRows(table, fmtFloat) {
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeScalingTable generates and writes the human-readable scaling table.
func writeScalingTable(w io.Writer, table schema.ScalingTable, fmtFloat func(*float64) string, duration time.Duration) error {
	title := "📐 Median magnitude by rupture area (km²)"
	if table.Kind == schema.AreaKind {
		title = "📐 Median rupture area (km²) by magnitude"
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}

	tbl := tablewriter.NewWriter(w)
	tbl.Header(scalingHeader(table))
	tbl.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	if err := tbl.Bulk(scalingRows(table, fmtFloat)); err != nil {
		return err
	}
	if err := tbl.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Table built in %v for %d scenarios\n", duration, len(table.Scenarios))
	return err
}
