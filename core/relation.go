package core

import (
	"math"

	"github.com/huangsam/magarea/schema"
)

// MagAreaRelationship is a magnitude-area scaling relation evaluated for explicit events.
// Every method reports false in its second return when the event has no mechanism.
type MagAreaRelationship interface {
	// MedianMag returns the median moment magnitude for a rupture area in km².
	MedianMag(area float64, ev schema.Event) (float64, bool)

	// MedianArea returns the median rupture area in km² for a moment magnitude.
	MedianArea(mag float64, ev schema.Event) (float64, bool)

	// MagStdDev returns the standard deviation of magnitude.
	MagStdDev(ev schema.Event) (float64, bool)

	// AreaStdDev returns the standard deviation of log10 area.
	AreaStdDev(ev schema.Event) (float64, bool)

	// Describe returns a human-readable description of the selected branch.
	Describe(ev schema.Event) string

	// Name returns the short name of the relation.
	Name() string
}

// TMG2017 is the Thingbaijam, Mai & Goda (2017) relation.
// It holds no state and is safe for concurrent use.
type TMG2017 struct{}

var _ MagAreaRelationship = TMG2017{}

func (TMG2017) coefficients(ev schema.Event) (schema.Coefficients, bool) {
	mech, ok := Classify(ev)
	if !ok {
		return schema.Coefficients{}, false
	}
	return schema.CoefficientsFor(mech)
}

// MedianMag evaluates Mw = a + b*log10(area). Non-positive areas are not rejected.
func (t TMG2017) MedianMag(area float64, ev schema.Event) (float64, bool) {
	c, ok := t.coefficients(ev)
	if !ok {
		return math.NaN(), false
	}
	return c.MagFromArea.A + c.MagFromArea.B*math.Log10(area), true
}

// MedianArea evaluates A = 10^(a + b*mag).
func (t TMG2017) MedianArea(mag float64, ev schema.Event) (float64, bool) {
	c, ok := t.coefficients(ev)
	if !ok {
		return math.NaN(), false
	}
	return math.Pow(10, c.AreaFromMag.A+c.AreaFromMag.B*mag), true
}

// MagStdDev returns the fixed sigma of the selected branch.
func (t TMG2017) MagStdDev(ev schema.Event) (float64, bool) {
	c, ok := t.coefficients(ev)
	if !ok {
		return math.NaN(), false
	}
	return c.StdDev, true
}

// AreaStdDev is identical to MagStdDev for this relation.
func (t TMG2017) AreaStdDev(ev schema.Event) (float64, bool) {
	return t.MagStdDev(ev)
}

// Describe names the selected branch.
func (t TMG2017) Describe(ev schema.Event) string {
	label := schema.NotAvailable
	if mech, ok := Classify(ev); ok {
		label = schema.MechanismLabel(mech)
	}
	return t.Name() + " for " + label + " events"
}

// Name returns the model label.
func (TMG2017) Name() string {
	return schema.ModelName
}
