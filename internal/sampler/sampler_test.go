package sampler_test

import (
	"testing"

	"github.com/UnknownOlympus/artemis/internal/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays a fixed sequence of fractions, each mapped onto the
// requested interval. Lets tests steer which latitude tier gets drawn.
type scriptedSource struct {
	fractions []float64
	idx       int
}

func (s *scriptedSource) Uniform(minVal, maxVal float64) float64 {
	f := s.fractions[s.idx%len(s.fractions)]
	s.idx++
	return minVal + f*(maxVal-minVal)
}

func TestSample_BoundsForAllSeeds(t *testing.T) {
	seeds := []uint64{0, 1, 7, 42, 1337, 987654321}

	for _, seed := range seeds {
		src := sampler.NewSeededSource(seed, seed+1)
		smp, err := sampler.NewSampler(sampler.DefaultTiers(), src)
		require.NoError(t, err)

		for range 2000 {
			coords := smp.Sample()
			assert.GreaterOrEqual(t, coords.Latitude, -90.0)
			assert.LessOrEqual(t, coords.Latitude, 90.0)
			assert.GreaterOrEqual(t, coords.Longitude, -180.0)
			assert.LessOrEqual(t, coords.Longitude, 180.0)
		}
	}
}

func TestSample_TemperateBandFraction(t *testing.T) {
	const samples = 20000

	tiers := sampler.DefaultTiers()
	src := sampler.NewSeededSource(11, 12)
	smp, err := sampler.NewSampler(tiers, src)
	require.NoError(t, err)

	inBand := 0
	for range samples {
		coords := smp.Sample()
		if coords.Latitude >= tiers.TemperateMin && coords.Latitude <= tiers.TemperateMax {
			inBand++
		}
	}

	fraction := float64(inBand) / float64(samples)

	// The tropical band lies inside the temperate band, and a share of the
	// unconstrained draws lands there too.
	restWeight := 1.0 - tiers.TemperateWeight - tiers.TropicalWeight
	bandShare := (tiers.TemperateMax - tiers.TemperateMin) / 180.0
	expected := tiers.TemperateWeight + tiers.TropicalWeight + restWeight*bandShare

	assert.GreaterOrEqual(t, fraction, tiers.TemperateWeight)
	assert.InDelta(t, expected, fraction, 0.02)
}

func TestSample_TierSelection(t *testing.T) {
	tiers := sampler.DefaultTiers()

	t.Run("temperate tier", func(t *testing.T) {
		// lon fraction, tier roll 0.5 (< 0.75), lat fraction 0.5
		src := &scriptedSource{fractions: []float64{0.5, 0.5, 0.5}}
		smp, err := sampler.NewSampler(tiers, src)
		require.NoError(t, err)

		coords := smp.Sample()
		assert.InDelta(t, 10.0, coords.Latitude, 1e-9) // midpoint of [-40, 60]
		assert.InDelta(t, 0.0, coords.Longitude, 1e-9)
	})

	t.Run("tropical tier", func(t *testing.T) {
		// tier roll 0.8 falls between 0.75 and 0.90
		src := &scriptedSource{fractions: []float64{0.5, 0.8, 0.0}}
		smp, err := sampler.NewSampler(tiers, src)
		require.NoError(t, err)

		coords := smp.Sample()
		assert.InDelta(t, -23.5, coords.Latitude, 1e-9)
	})

	t.Run("unconstrained tier", func(t *testing.T) {
		// tier roll 0.95 exceeds both weights
		src := &scriptedSource{fractions: []float64{0.5, 0.95, 1.0}}
		smp, err := sampler.NewSampler(tiers, src)
		require.NoError(t, err)

		coords := smp.Sample()
		assert.InDelta(t, 90.0, coords.Latitude, 1e-9)
	})
}

func TestNewSampler_Validation(t *testing.T) {
	src := sampler.NewSeededSource(1, 2)

	t.Run("weights exceed one", func(t *testing.T) {
		tiers := sampler.DefaultTiers()
		tiers.TropicalWeight = 0.5

		_, err := sampler.NewSampler(tiers, src)
		require.ErrorIs(t, err, sampler.ErrTiersOverflow)
	})

	t.Run("temperate tier not dominant", func(t *testing.T) {
		tiers := sampler.DefaultTiers()
		tiers.TemperateWeight = 0.2
		tiers.TropicalWeight = 0.1

		_, err := sampler.NewSampler(tiers, src)
		require.ErrorIs(t, err, sampler.ErrTiersNotDominant)
	})

	t.Run("negative weight", func(t *testing.T) {
		tiers := sampler.DefaultTiers()
		tiers.TropicalWeight = -0.1

		_, err := sampler.NewSampler(tiers, src)
		require.ErrorIs(t, err, sampler.ErrTiersNegative)
	})

	t.Run("band outside latitude range", func(t *testing.T) {
		tiers := sampler.DefaultTiers()
		tiers.TemperateMax = 95

		_, err := sampler.NewSampler(tiers, src)
		require.ErrorIs(t, err, sampler.ErrTiersInvalidBands)
	})

	t.Run("inverted band", func(t *testing.T) {
		tiers := sampler.DefaultTiers()
		tiers.TropicalMin = 30
		tiers.TropicalMax = -30

		_, err := sampler.NewSampler(tiers, src)
		require.ErrorIs(t, err, sampler.ErrTiersInvalidBands)
	})
}

func TestSeededSource_Deterministic(t *testing.T) {
	first := sampler.NewSeededSource(5, 6)
	second := sampler.NewSeededSource(5, 6)

	for range 100 {
		assert.InDelta(t, first.Uniform(-180, 180), second.Uniform(-180, 180), 1e-12)
	}
}

func TestSource_UniformStaysInInterval(t *testing.T) {
	src := sampler.NewSource()

	for range 1000 {
		v := src.Uniform(-23.5, 23.5)
		assert.GreaterOrEqual(t, v, -23.5)
		assert.LessOrEqual(t, v, 23.5)
	}
}
