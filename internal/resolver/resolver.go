// Package resolver classifies candidate coordinates as habitable or not by
// consulting a reverse-geocoding provider, and formats the display name for
// accepted candidates.
package resolver

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/UnknownOlympus/artemis/internal/geocoding"
	"github.com/UnknownOlympus/artemis/internal/metrics"
	"github.com/UnknownOlympus/artemis/internal/models"
)

// ErrUninhabited is returned when a coordinate does not resolve to a named,
// land-based place. Provider failures map to this error too: a failed lookup
// is indistinguishable from open ocean as far as the selection loop cares.
var ErrUninhabited = errors.New("coordinate does not resolve to an inhabited place")

// Resolver turns a coordinate into a display name, or rejects it as
// uninhabited. It depends on an injected reverse-geocoding provider so it can
// be tested with deterministic fakes.
type Resolver struct {
	provider     geocoding.Provider // provider is the reverse-geocoding oracle
	providerName string             // providerName labels oracle metrics
	metrics      *metrics.Metrics   // metrics tracks oracle latency and errors
	keywords     []string           // keywords flag ocean/sea geocode results
	homeCountry  string             // homeCountry suppresses the redundant country suffix
	log          *slog.Logger       // log is the logger for logging operations
}

// NewResolver creates a Resolver around the given provider. The keyword list
// drives the uninhabited filter; homeCountry controls name formatting for
// domestic localities.
func NewResolver(
	provider geocoding.Provider,
	providerName string,
	m *metrics.Metrics,
	keywords []string,
	homeCountry string,
	log *slog.Logger,
) *Resolver {
	return &Resolver{
		provider:     provider,
		providerName: providerName,
		metrics:      m,
		keywords:     keywords,
		homeCountry:  homeCountry,
		log:          log,
	}
}

// Resolve queries the provider for the coordinate and returns a display name
// when the point is a named, inhabited place. It returns ErrUninhabited when
// the provider fails, resolves nothing usable, or the result trips the
// uninhabited filter. Resolve never returns any other error: a single failed
// lookup is always recoverable by retrying with a fresh candidate.
func (r *Resolver) Resolve(ctx context.Context, coords models.Coordinates) (string, error) {
	startTime := time.Now()
	place, err := r.provider.ReverseGeocode(ctx, coords)
	duration := time.Since(startTime).Seconds()
	r.metrics.RequestSeconds.WithLabelValues(r.providerName).Observe(duration)

	if err != nil {
		if !errors.Is(err, geocoding.ErrNoResult) {
			r.metrics.OracleErrors.Inc()
		}
		r.log.DebugContext(ctx, "Reverse geocode attempt failed",
			"lat", coords.Latitude, "lon", coords.Longitude, "error", err)
		return "", ErrUninhabited
	}

	name := r.displayName(place)
	if name == "" || r.uninhabited(place) {
		return "", ErrUninhabited
	}

	return name, nil
}

// displayName builds the human-readable name with a priority cascade:
// locality, then sublocality, then administrative area, then country. A
// locality in the home country gets its administrative area appended instead
// of the country, which avoids "Springfield, United States" for the common
// case and adds state detail.
func (r *Resolver) displayName(place *models.Place) string {
	switch {
	case place.Locality != "":
		if place.Country == r.homeCountry {
			return join(place.Locality, place.AdminArea)
		}
		return join(place.Locality, place.Country)
	case place.Sublocality != "":
		return join(place.Sublocality, place.Country)
	case place.AdminArea != "":
		return join(place.AdminArea, place.Country)
	default:
		return place.Country
	}
}

// uninhabited reports whether the geocode result describes a point nobody
// lives at: either the provider resolved nothing below country level, or any
// field mentions an ocean or sea. A substring heuristic, not a landmask;
// occasional misclassification is acceptable.
func (r *Resolver) uninhabited(place *models.Place) bool {
	if place.Locality == "" && place.Sublocality == "" && place.AdminArea == "" {
		return true
	}

	combined := strings.ToLower(strings.Join(
		[]string{place.Locality, place.Sublocality, place.AdminArea, place.Country}, " "))
	for _, keyword := range r.keywords {
		if strings.Contains(combined, strings.ToLower(keyword)) {
			return true
		}
	}

	return false
}

func join(primary, secondary string) string {
	if secondary == "" {
		return primary
	}

	return primary + ", " + secondary
}
