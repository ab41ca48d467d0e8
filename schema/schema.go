// Package schema has models, enums and fixed data for all parts of magarea.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sentinel errors for invalid event parameters.
var (
	ErrInvalidRegime = errors.New("invalid regime")
	ErrInvalidRake   = errors.New("invalid rake")
)

// Rake bounds in degrees.
const (
	MinRake = -180.0
	MaxRake = 180.0
)

// Rake is a fault rake angle in degrees that may be explicitly undefined.
// The zero value is undefined.
type Rake struct {
	degrees float64
	defined bool
}

// NewRake returns a defined rake. NaN yields an undefined rake.
func NewRake(degrees float64) Rake {
	if math.IsNaN(degrees) {
		return Rake{}
	}
	return Rake{degrees: degrees, defined: true}
}

// UndefinedRake returns a rake with no value.
func UndefinedRake() Rake {
	return Rake{}
}

// Degrees returns the rake angle and whether it is defined.
func (r Rake) Degrees() (float64, bool) {
	return r.degrees, r.defined
}

// IsDefined reports whether the rake holds a value.
func (r Rake) IsDefined() bool {
	return r.defined
}

// Ptr returns a pointer to the rake angle, or nil when undefined.
func (r Rake) Ptr() *float64 {
	if !r.defined {
		return nil
	}
	v := r.degrees
	return &v
}

// String returns the rake angle, or "N/A" when undefined.
func (r Rake) String() string {
	if !r.defined {
		return "N/A"
	}
	return strconv.FormatFloat(r.degrees, 'g', -1, 64)
}

// MarshalJSON encodes an undefined rake as null.
func (r Rake) MarshalJSON() ([]byte, error) {
	if !r.defined {
		return []byte("null"), nil
	}
	return json.Marshal(r.degrees)
}

// UnmarshalJSON decodes null into an undefined rake.
func (r *Rake) UnmarshalJSON(data []byte) error {
	var v *float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v == nil {
		*r = Rake{}
		return nil
	}
	*r = NewRake(*v)
	return nil
}

// Validate checks a defined rake lies within [-180, 180] degrees.
// An undefined rake is always accepted.
func (r Rake) Validate() error {
	if !r.defined {
		return nil
	}
	if r.degrees < MinRake || r.degrees > MaxRake {
		return fmt.Errorf("%w: %v is outside [%v, %v] degrees", ErrInvalidRake, r.degrees, MinRake, MaxRake)
	}
	return nil
}

// ParseRake parses a rake string. Empty strings and "nan" yield an undefined rake.
func ParseRake(s string) (Rake, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") || strings.EqualFold(s, "n/a") {
		return UndefinedRake(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Rake{}, fmt.Errorf("%w: %q is not a number", ErrInvalidRake, s)
	}
	r := NewRake(v)
	if err := r.Validate(); err != nil {
		return Rake{}, err
	}
	return r, nil
}

// ParseRegime validates a regime name case-insensitively.
func ParseRegime(s string) (Regime, error) {
	regime := Regime(strings.ToLower(s))
	if _, ok := ValidRegimes[regime]; !ok {
		return "", fmt.Errorf("%w: %q must be crustal or interface", ErrInvalidRegime, s)
	}
	return regime, nil
}

// Event bundles the rake and regime that select a regression branch.
type Event struct {
	Rake   Rake   `json:"rake"`
	Regime Regime `json:"regime"`
}

// NewEvent validates the inputs and returns an Event.
func NewEvent(rake Rake, regime string) (Event, error) {
	r, err := ParseRegime(regime)
	if err != nil {
		return Event{}, err
	}
	if err := rake.Validate(); err != nil {
		return Event{}, err
	}
	return Event{Rake: rake, Regime: r}, nil
}

// DefaultEvent returns a crustal event with undefined rake.
func DefaultEvent() Event {
	return Event{Rake: UndefinedRake(), Regime: CrustalRegime}
}

// WithRake returns a copy of the event with a new rake.
func (e Event) WithRake(rake Rake) Event {
	e.Rake = rake
	return e
}

// WithRegime returns a copy of the event with a new regime.
func (e Event) WithRegime(regime Regime) Event {
	e.Regime = regime
	return e
}
