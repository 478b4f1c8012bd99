// Package sampler draws random candidate coordinates biased toward populated
// latitude bands. Longitude is always uniform; latitude comes from a weighted
// mixture of bands, because uniform sampling over the globe wastes most draws
// on ocean or polar terrain.
package sampler

import (
	"errors"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/UnknownOlympus/artemis/internal/models"
)

// Source is an abstract random source yielding uniform draws over a closed
// interval. It is injected so the sampler stays deterministic under test.
type Source interface {
	Uniform(minVal, maxVal float64) float64
}

// Tiers describes the latitude mixture. Each weight is the probability of
// drawing the latitude uniformly from the matching band; the remaining
// probability draws from the full [-90, 90] range.
type Tiers struct {
	TemperateWeight float64 // TemperateWeight is the probability of the temperate band.
	TemperateMin    float64 // TemperateMin is the southern edge of the temperate band.
	TemperateMax    float64 // TemperateMax is the northern edge of the temperate band.
	TropicalWeight  float64 // TropicalWeight is the probability of the tropical band.
	TropicalMin     float64 // TropicalMin is the southern edge of the tropical band.
	TropicalMax     float64 // TropicalMax is the northern edge of the tropical band.
}

// DefaultTiers returns the production latitude mixture: 75% temperate band
// [-40, 60], 15% tropics [-23.5, 23.5], 10% anywhere on the globe.
func DefaultTiers() Tiers {
	return Tiers{
		TemperateWeight: 0.75,
		TemperateMin:    -40,
		TemperateMax:    60,
		TropicalWeight:  0.15,
		TropicalMin:     -23.5,
		TropicalMax:     23.5,
	}
}

// Common errors for tier validation.
var (
	ErrTiersOverflow     = errors.New("tier weights must not exceed 1.0")
	ErrTiersNotDominant  = errors.New("temperate tier must carry the largest weight")
	ErrTiersNegative     = errors.New("tier weights must not be negative")
	ErrTiersInvalidBands = errors.New("tier latitude bands must lie inside [-90, 90] with min < max")
)

// Sampler draws candidate coordinates from an injected random source.
type Sampler struct {
	tiers Tiers
	src   Source
}

// NewSampler creates a Sampler with the given tier mixture and random source.
// It returns an error if the weights do not describe a valid mixture or the
// bands fall outside the valid latitude range.
func NewSampler(tiers Tiers, src Source) (*Sampler, error) {
	if tiers.TemperateWeight < 0 || tiers.TropicalWeight < 0 {
		return nil, ErrTiersNegative
	}

	const maxTotal = 1.0
	rest := maxTotal - tiers.TemperateWeight - tiers.TropicalWeight
	if rest < -1e-9 {
		return nil, ErrTiersOverflow
	}

	if tiers.TemperateWeight < tiers.TropicalWeight || tiers.TemperateWeight < rest {
		return nil, ErrTiersNotDominant
	}

	if !validBand(tiers.TemperateMin, tiers.TemperateMax) || !validBand(tiers.TropicalMin, tiers.TropicalMax) {
		return nil, ErrTiersInvalidBands
	}

	return &Sampler{tiers: tiers, src: src}, nil
}

func validBand(minLat, maxLat float64) bool {
	const maxLatitude = 90.0
	return minLat >= -maxLatitude && maxLat <= maxLatitude && minLat < maxLat
}

// Sample draws one candidate coordinate. Longitude is uniform over
// [-180, 180]; latitude is drawn from the configured band mixture.
func (s *Sampler) Sample() models.Coordinates {
	const (
		maxLatitude  = 90.0
		maxLongitude = 180.0
	)

	lon := s.src.Uniform(-maxLongitude, maxLongitude)

	var lat float64
	roll := s.src.Uniform(0, 1)
	switch {
	case roll < s.tiers.TemperateWeight:
		lat = s.src.Uniform(s.tiers.TemperateMin, s.tiers.TemperateMax)
	case roll < s.tiers.TemperateWeight+s.tiers.TropicalWeight:
		lat = s.src.Uniform(s.tiers.TropicalMin, s.tiers.TropicalMax)
	default:
		lat = s.src.Uniform(-maxLatitude, maxLatitude)
	}

	return models.Coordinates{Latitude: lat, Longitude: lon}
}

// pcgSource is the default Source, a PCG generator behind a mutex so a single
// instance can be shared by concurrent selection requests.
type pcgSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource returns a thread-safe random Source seeded from the global
// generator.
func NewSource() Source {
	return &pcgSource{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededSource returns a thread-safe random Source with a fixed seed, for
// reproducible runs.
func NewSeededSource(seed1, seed2 uint64) Source {
	return &pcgSource{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// Uniform returns a uniformly distributed value in [minVal, maxVal].
func (p *pcgSource) Uniform(minVal, maxVal float64) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	v := minVal + p.rng.Float64()*(maxVal-minVal)
	// Float64 is in [0, 1); clamp against rounding on wide intervals.
	return math.Min(v, maxVal)
}
