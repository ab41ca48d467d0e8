package core

import (
	"fmt"

	"github.com/huangsam/magarea/schema"
)

// ReferenceScenarios are the columns of the scaling table.
var ReferenceScenarios = []schema.Scenario{
	{Name: "reverse", Event: schema.Event{Rake: schema.NewRake(90), Regime: schema.CrustalRegime}},
	{Name: "normal", Event: schema.Event{Rake: schema.NewRake(-90), Regime: schema.CrustalRegime}},
	{Name: "strike-slip", Event: schema.Event{Rake: schema.NewRake(0), Regime: schema.CrustalRegime}},
	{Name: "interface", Event: schema.Event{Rake: schema.NewRake(90), Regime: schema.InterfaceRegime}},
}

// BuildScalingTable evaluates every value under every reference scenario.
// Empty values fall back to the default areas or magnitudes for the kind.
func BuildScalingTable(kind schema.EstimateKind, values []float64) (schema.ScalingTable, error) {
	return buildScalingTable(TMG2017{}, kind, values)
}

func buildScalingTable(rel MagAreaRelationship, kind schema.EstimateKind, values []float64) (schema.ScalingTable, error) {
	if _, ok := schema.ValidEstimateKinds[kind]; !ok {
		return schema.ScalingTable{}, fmt.Errorf("invalid table kind %q (must be mag or area)", kind)
	}
	if len(values) == 0 {
		values = schema.DefaultTableAreas
		if kind == schema.AreaKind {
			values = schema.DefaultTableMags
		}
	}

	table := schema.ScalingTable{
		Kind:      kind,
		Scenarios: ReferenceScenarios,
		Rows:      make([]schema.ScalingRow, 0, len(values)),
		StdDevs:   make([]*float64, 0, len(ReferenceScenarios)),
	}
	for _, v := range values {
		row := schema.ScalingRow{Input: v, Values: make([]*float64, 0, len(ReferenceScenarios))}
		for _, sc := range ReferenceScenarios {
			var median float64
			var ok bool
			if kind == schema.MagKind {
				median, ok = rel.MedianMag(v, sc.Event)
			} else {
				median, ok = rel.MedianArea(v, sc.Event)
			}
			row.Values = append(row.Values, schema.FloatPtr(median, ok))
		}
		table.Rows = append(table.Rows, row)
	}
	for _, sc := range ReferenceScenarios {
		table.StdDevs = append(table.StdDevs, schema.FloatPtr(rel.MagStdDev(sc.Event)))
	}
	return table, nil
}
