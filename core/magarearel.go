package core

import (
	"math"

	"github.com/huangsam/magarea/schema"
)

// MagAreaRel is a stateful convenience wrapper around a MagAreaRelationship.
// It keeps a current rake and regime that persist between calls.
// A MagAreaRel must not be mutated from multiple goroutines.
type MagAreaRel struct {
	rel   MagAreaRelationship
	event schema.Event
}

// NewMagAreaRel returns a relation set to the crustal regime with an undefined rake.
func NewMagAreaRel() *MagAreaRel {
	return &MagAreaRel{rel: TMG2017{}, event: schema.DefaultEvent()}
}

// Event returns the current rake and regime.
func (m *MagAreaRel) Event() schema.Event {
	return m.event
}

// SetRegime validates and stores a regime. The state is unchanged on error.
func (m *MagAreaRel) SetRegime(regime string) error {
	r, err := schema.ParseRegime(regime)
	if err != nil {
		return err
	}
	m.event = m.event.WithRegime(r)
	return nil
}

// SetRake stores a rake angle in degrees. NaN clears the rake.
func (m *MagAreaRel) SetRake(rake float64) error {
	r := schema.NewRake(rake)
	if err := r.Validate(); err != nil {
		return err
	}
	m.event = m.event.WithRake(r)
	return nil
}

// ClearRake marks the rake as undefined.
func (m *MagAreaRel) ClearRake() {
	m.event = m.event.WithRake(schema.UndefinedRake())
}

// apply validates both inputs before replacing the current event.
func (m *MagAreaRel) apply(rake float64, regime string) error {
	ev, err := schema.NewEvent(schema.NewRake(rake), regime)
	if err != nil {
		return err
	}
	m.event = ev
	return nil
}

// MedianMag returns the median magnitude for an area in km² under the current state.
func (m *MagAreaRel) MedianMag(area float64) (float64, bool) {
	return m.rel.MedianMag(area, m.event)
}

// MedianMagFor sets rake and regime, then returns the median magnitude.
func (m *MagAreaRel) MedianMagFor(area, rake float64, regime string) (float64, bool, error) {
	if err := m.apply(rake, regime); err != nil {
		return math.NaN(), false, err
	}
	v, ok := m.MedianMag(area)
	return v, ok, nil
}

// MedianArea returns the median area in km² for a magnitude under the current state.
func (m *MagAreaRel) MedianArea(mag float64) (float64, bool) {
	return m.rel.MedianArea(mag, m.event)
}

// MedianAreaFor sets rake and regime, then returns the median area.
func (m *MagAreaRel) MedianAreaFor(mag, rake float64, regime string) (float64, bool, error) {
	if err := m.apply(rake, regime); err != nil {
		return math.NaN(), false, err
	}
	v, ok := m.MedianArea(mag)
	return v, ok, nil
}

// MagStdDev returns the magnitude standard deviation under the current state.
func (m *MagAreaRel) MagStdDev() (float64, bool) {
	return m.rel.MagStdDev(m.event)
}

// AreaStdDev returns the area standard deviation under the current state.
func (m *MagAreaRel) AreaStdDev() (float64, bool) {
	return m.rel.AreaStdDev(m.event)
}

// MagStdDevFor sets rake and regime, then returns the magnitude standard deviation.
func (m *MagAreaRel) MagStdDevFor(rake float64, regime string) (float64, bool, error) {
	if err := m.apply(rake, regime); err != nil {
		return math.NaN(), false, err
	}
	v, ok := m.MagStdDev()
	return v, ok, nil
}

// AreaStdDevFor sets rake and regime, then returns the area standard deviation.
func (m *MagAreaRel) AreaStdDevFor(rake float64, regime string) (float64, bool, error) {
	if err := m.apply(rake, regime); err != nil {
		return math.NaN(), false, err
	}
	v, ok := m.AreaStdDev()
	return v, ok, nil
}

// Description describes the branch selected by the current rake and regime.
func (m *MagAreaRel) Description() string {
	return m.rel.Describe(m.event)
}
