package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/magarea/internal/contract"
	"github.com/huangsam/magarea/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

var coeffsCSVHeader = []string{"mechanism", "label", "mag_a", "mag_b", "area_a", "area_b", "std_dev"}

// PrintCoefficients displays the regression constants in the configured format.
func PrintCoefficients(cfg *contract.Config) error {
	model := schema.GetCoefficientsRenderModel()

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, model)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCoeffsCSV(w, model)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errors.New("parquet output is not supported for coefficients")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCoeffsText(w, model)
		}, "Wrote text")
	}
}

func coeffsRows(model schema.CoefficientsRenderModel) [][]string {
	num := func(v float64) string { return fmt.Sprintf("%.3f", v) }
	data := make([][]string, 0, len(model.Coefficients))
	for _, c := range model.Coefficients {
		data = append(data, []string{
			string(c.Mechanism),
			schema.MechanismLabel(c.Mechanism),
			num(c.MagFromArea.A),
			num(c.MagFromArea.B),
			num(c.AreaFromMag.A),
			num(c.AreaFromMag.B),
			num(c.StdDev),
		})
	}
	return data
}

func writeCoeffsCSV(w io.Writer, model schema.CoefficientsRenderModel) error {
	return writeCSVWithHeader(w, coeffsCSVHeader, func(csvWriter *csv.Writer) error {
		for _, rec := range coeffsRows(model) {
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeCoeffsText(w io.Writer, model schema.CoefficientsRenderModel) error {
	var sb strings.Builder
	sb.WriteString(model.Title + "\n")
	sb.WriteString(strings.Repeat("=", 40) + "\n")
	sb.WriteString(model.Description + "\n\n")
	sb.WriteString("Formulas:\n")
	fmt.Fprintf(&sb, "  mag:  %s\n", model.Formulas[string(schema.MagKind)])
	fmt.Fprintf(&sb, "  area: %s\n\n", model.Formulas[string(schema.AreaKind)])
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Mechanism", "Label", "Mag a", "Mag b", "Area a", "Area b", "Sigma"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	if err := table.Bulk(coeffsRows(model)); err != nil {
		return err
	}
	return table.Render()
}
