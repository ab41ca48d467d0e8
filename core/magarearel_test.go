package core

import (
	"math"
	"testing"

	"github.com/huangsam/magarea/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMagAreaRelIsUndefined(t *testing.T) {
	m := NewMagAreaRel()
	assert.Equal(t, schema.DefaultEvent(), m.Event())

	_, ok := m.MedianMag(500)
	assert.False(t, ok)
	_, ok = m.MedianArea(6)
	assert.False(t, ok)
	_, ok = m.MagStdDev()
	assert.False(t, ok)
	_, ok = m.AreaStdDev()
	assert.False(t, ok)
	assert.Contains(t, m.Description(), "not available")

	require.NoError(t, m.SetRegime("interface"))
	_, ok = m.MedianMag(500)
	assert.False(t, ok)
	_, ok = m.MedianArea(9)
	assert.False(t, ok)
	_, ok = m.MagStdDev()
	assert.False(t, ok)
	_, ok = m.AreaStdDev()
	assert.False(t, ok)
	assert.Equal(t, "Thingbaijam et al.(2017) for not available events", m.Description())
}

func TestMagAreaRelSetters(t *testing.T) {
	m := NewMagAreaRel()
	require.NoError(t, m.SetRake(90))

	mag, ok := m.MedianMag(500)
	require.True(t, ok)
	assert.InDelta(t, 4.158+0.953*math.Log10(500), mag, 1e-12)
	assert.Equal(t, "Thingbaijam et al.(2017) for shallow reverse-faulting events", m.Description())

	require.NoError(t, m.SetRegime("INTERFACE"))
	assert.Equal(t, schema.InterfaceRegime, m.Event().Regime)
	assert.Equal(t, "Thingbaijam et al.(2017) for interface events", m.Description())

	require.NoError(t, m.SetRake(-90))
	mag, ok = m.MedianMag(500)
	require.True(t, ok)
	assert.InDelta(t, 3.469+1.054*math.Log10(500), mag, 1e-12)

	m.ClearRake()
	assert.False(t, m.Event().Rake.IsDefined())
	_, ok = m.MedianMag(500)
	assert.False(t, ok)
	assert.Contains(t, m.Description(), "not available")

	require.NoError(t, m.SetRegime("crustal"))
	_, ok = m.MedianMag(500)
	assert.False(t, ok)
}

func TestMagAreaRelStatePersists(t *testing.T) {
	m := NewMagAreaRel()
	require.NoError(t, m.SetRake(-90))

	first, ok := m.MedianMag(100)
	require.True(t, ok)
	second, ok := m.MedianMag(100)
	require.True(t, ok)
	assert.Equal(t, first, second)

	_, _, err := m.MedianMagFor(100, 90, "crustal")
	require.NoError(t, err)
	third, ok := m.MedianMag(100)
	require.True(t, ok)
	assert.NotEqual(t, first, third, "the last *For call leaves its rake behind")
}

func TestMagAreaRelSetRegimeInvalid(t *testing.T) {
	m := NewMagAreaRel()
	require.NoError(t, m.SetRegime("interface"))

	err := m.SetRegime("oceanic")
	require.ErrorIs(t, err, schema.ErrInvalidRegime)
	assert.Equal(t, schema.InterfaceRegime, m.Event().Regime)
}

func TestMagAreaRelSetRake(t *testing.T) {
	m := NewMagAreaRel()
	require.NoError(t, m.SetRake(90))

	err := m.SetRake(200)
	require.ErrorIs(t, err, schema.ErrInvalidRake)
	deg, ok := m.Event().Rake.Degrees()
	require.True(t, ok)
	assert.Equal(t, 90.0, deg)

	require.NoError(t, m.SetRake(math.NaN()))
	assert.False(t, m.Event().Rake.IsDefined())
}

func TestMagAreaRelForOverloads(t *testing.T) {
	m := NewMagAreaRel()

	mag, ok, err := m.MedianMagFor(500, 90, "crustal")
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 4.158+0.953*math.Log10(500), mag, 1e-12)

	area, ok, err := m.MedianAreaFor(7, -90, "crustal")
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, math.Pow(10, -2.551+0.808*7), area, 1e-9)

	sigma, ok, err := m.MagStdDevFor(0, "crustal")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0.184, sigma)

	sigma, ok, err = m.AreaStdDevFor(-90, "interface")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0.150, sigma)

	_, ok, err = m.MagStdDevFor(math.NaN(), "crustal")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMagAreaRelForOverloadsValidateFirst(t *testing.T) {
	m := NewMagAreaRel()
	require.NoError(t, m.SetRake(90))
	before := m.Event()

	_, ok, err := m.MedianMagFor(500, 0, "oceanic")
	require.ErrorIs(t, err, schema.ErrInvalidRegime)
	assert.False(t, ok)
	assert.Equal(t, before, m.Event())

	_, ok, err = m.MedianAreaFor(6, 181, "crustal")
	require.ErrorIs(t, err, schema.ErrInvalidRake)
	assert.False(t, ok)
	assert.Equal(t, before, m.Event())

	_, _, err = m.AreaStdDevFor(-400, "interface")
	require.ErrorIs(t, err, schema.ErrInvalidRake)
	assert.Equal(t, before, m.Event())
}

func TestMagAreaRelStdDevsMatch(t *testing.T) {
	m := NewMagAreaRel()
	for _, regime := range []string{"crustal", "interface"} {
		for rake := -180.0; rake <= 180; rake += 15 {
			magSigma, magOK, err := m.MagStdDevFor(rake, regime)
			require.NoError(t, err)
			areaSigma, areaOK, err := m.AreaStdDevFor(rake, regime)
			require.NoError(t, err)
			assert.Equal(t, magOK, areaOK)
			assert.Equal(t, magSigma, areaSigma, "rake %v regime %s", rake, regime)
		}
	}
}
