package core

import (
	"github.com/huangsam/magarea/schema"
)

// mechanismName returns the mechanism of the event, or NotAvailable.
func mechanismName(ev schema.Event) string {
	if mech, ok := Classify(ev); ok {
		return string(mech)
	}
	return schema.NotAvailable
}

// newEstimate fills the fields shared by every estimate kind.
func newEstimate(m *MagAreaRel, kind schema.EstimateKind) schema.Estimate {
	ev := m.Event()
	return schema.Estimate{
		Kind:        kind,
		Rake:        ev.Rake,
		Regime:      ev.Regime,
		Mechanism:   mechanismName(ev),
		StdDev:      schema.FloatPtr(m.MagStdDev()),
		Description: m.Description(),
	}
}

// estimateMag evaluates the median magnitude for an area under the current state.
func estimateMag(m *MagAreaRel, area float64) schema.Estimate {
	e := newEstimate(m, schema.MagKind)
	e.Input = &area
	e.Median = schema.FloatPtr(m.MedianMag(area))
	return e
}

// estimateArea evaluates the median area for a magnitude under the current state.
func estimateArea(m *MagAreaRel, mag float64) schema.Estimate {
	e := newEstimate(m, schema.AreaKind)
	e.Input = &mag
	e.Median = schema.FloatPtr(m.MedianArea(mag))
	return e
}

// estimateStdDev reports only the standard deviation under the current state.
func estimateStdDev(m *MagAreaRel) schema.Estimate {
	return newEstimate(m, schema.StdDevKind)
}
