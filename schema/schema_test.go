package schema

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegime(t *testing.T) {
	tests := []struct {
		input   string
		want    Regime
		wantErr bool
	}{
		{"crustal", CrustalRegime, false},
		{"interface", InterfaceRegime, false},
		{"CRUSTAL", CrustalRegime, false},     // case-insensitive
		{"Interface", InterfaceRegime, false}, // mixed case
		{"oceanic", "", true},
		{"", "", true},
		{" crustal", "", true}, // no trimming
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRegime(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidRegime))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRake(t *testing.T) {
	tests := []struct {
		input       string
		wantDefined bool
		wantValue   float64
		wantErr     bool
	}{
		{"", false, 0, false},
		{"nan", false, 0, false},
		{"NaN", false, 0, false},
		{"N/A", false, 0, false},
		{"90", true, 90, false},
		{"-180", true, -180, false},
		{"180", true, 180, false},
		{" 45 ", true, 45, false},
		{"181", false, 0, true},
		{"-270", false, 0, true},
		{"steep", false, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRake(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidRake))
				return
			}
			require.NoError(t, err)
			v, ok := got.Degrees()
			assert.Equal(t, tt.wantDefined, ok)
			if ok {
				assert.Equal(t, tt.wantValue, v)
			}
		})
	}
}

func TestRake(t *testing.T) {
	t.Run("zero value is undefined", func(t *testing.T) {
		var r Rake
		assert.False(t, r.IsDefined())
		assert.Nil(t, r.Ptr())
		assert.Equal(t, "N/A", r.String())
		assert.NoError(t, r.Validate())
	})

	t.Run("NaN is undefined", func(t *testing.T) {
		r := NewRake(math.NaN())
		assert.False(t, r.IsDefined())
	})

	t.Run("defined value", func(t *testing.T) {
		r := NewRake(-90)
		require.NotNil(t, r.Ptr())
		assert.Equal(t, -90.0, *r.Ptr())
		assert.Equal(t, "-90", r.String())
	})

	t.Run("out of range", func(t *testing.T) {
		err := NewRake(200).Validate()
		assert.ErrorIs(t, err, ErrInvalidRake)
	})

	t.Run("json", func(t *testing.T) {
		data, err := json.Marshal(Event{Rake: UndefinedRake(), Regime: CrustalRegime})
		require.NoError(t, err)
		assert.JSONEq(t, `{"rake":null,"regime":"crustal"}`, string(data))

		var ev Event
		require.NoError(t, json.Unmarshal([]byte(`{"rake":45.5,"regime":"interface"}`), &ev))
		v, ok := ev.Rake.Degrees()
		assert.True(t, ok)
		assert.Equal(t, 45.5, v)
		assert.Equal(t, InterfaceRegime, ev.Regime)
	})
}

func TestNewEvent(t *testing.T) {
	ev, err := NewEvent(NewRake(90), "Crustal")
	require.NoError(t, err)
	assert.Equal(t, CrustalRegime, ev.Regime)

	_, err = NewEvent(NewRake(90), "oceanic")
	assert.ErrorIs(t, err, ErrInvalidRegime)

	_, err = NewEvent(NewRake(-181), "crustal")
	assert.ErrorIs(t, err, ErrInvalidRake)

	def := DefaultEvent()
	assert.Equal(t, CrustalRegime, def.Regime)
	assert.False(t, def.Rake.IsDefined())

	changed := def.WithRake(NewRake(10)).WithRegime(InterfaceRegime)
	assert.False(t, def.Rake.IsDefined(), "WithRake must not modify the receiver")
	assert.Equal(t, CrustalRegime, def.Regime)
	assert.True(t, changed.Rake.IsDefined())
	assert.Equal(t, InterfaceRegime, changed.Regime)
}

func TestCoefficientsFor(t *testing.T) {
	tests := []struct {
		mech   Mechanism
		mag    LogLinear
		area   LogLinear
		stdDev float64
	}{
		{StrikeSlipMechanism, LogLinear{3.701, 1.062}, LogLinear{-3.486, 0.942}, 0.184},
		{ReverseMechanism, LogLinear{4.158, 0.953}, LogLinear{-4.362, 1.049}, 0.121},
		{NormalMechanism, LogLinear{3.157, 1.238}, LogLinear{-2.551, 0.808}, 0.181},
		{InterfaceMechanism, LogLinear{3.469, 1.054}, LogLinear{-3.292, 0.949}, 0.150},
	}

	for _, tt := range tests {
		t.Run(string(tt.mech), func(t *testing.T) {
			c, ok := CoefficientsFor(tt.mech)
			require.True(t, ok)
			assert.Equal(t, tt.mech, c.Mechanism)
			assert.Equal(t, tt.mag, c.MagFromArea)
			assert.Equal(t, tt.area, c.AreaFromMag)
			assert.Equal(t, tt.stdDev, c.StdDev)
		})
	}

	_, ok := CoefficientsFor("thrust")
	assert.False(t, ok)
}

func TestAllCoefficients(t *testing.T) {
	all := AllCoefficients()
	require.Len(t, all, len(AllMechanisms))
	for i, m := range AllMechanisms {
		assert.Equal(t, m, all[i].Mechanism)
	}
}

func TestMechanismLabel(t *testing.T) {
	assert.Equal(t, "strike-slip", MechanismLabel(StrikeSlipMechanism))
	assert.Equal(t, "shallow reverse-faulting", MechanismLabel(ReverseMechanism))
	assert.Equal(t, "normal-faulting", MechanismLabel(NormalMechanism))
	assert.Equal(t, "interface", MechanismLabel(InterfaceMechanism))
	assert.Equal(t, NotAvailable, MechanismLabel(""))
}

func TestToEstimateRecord(t *testing.T) {
	in := 500.0
	median := 6.73
	e := Estimate{
		Kind:        MagKind,
		Input:       &in,
		Rake:        NewRake(90),
		Regime:      CrustalRegime,
		Mechanism:   string(ReverseMechanism),
		Median:      &median,
		StdDev:      FloatPtr(0.121, true),
		Description: "x",
	}
	rec := ToEstimateRecord(7, 2, e)
	assert.Equal(t, int64(7), rec.RunID)
	assert.Equal(t, int32(2), rec.Seq)
	assert.Equal(t, "mag", rec.Kind)
	require.NotNil(t, rec.Rake)
	assert.Equal(t, 90.0, *rec.Rake)
	assert.Equal(t, 0.121, *rec.StdDev)

	e.Rake = UndefinedRake()
	e.Median = nil
	rec = ToEstimateRecord(7, 3, e)
	assert.Nil(t, rec.Rake)
	assert.Nil(t, rec.Median)
}

func TestFloatPtr(t *testing.T) {
	assert.Nil(t, FloatPtr(1, false))
	p := FloatPtr(2.5, true)
	require.NotNil(t, p)
	assert.Equal(t, 2.5, *p)
}
