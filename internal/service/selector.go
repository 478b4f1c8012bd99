package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/artemis/internal/catalog"
	"github.com/UnknownOlympus/artemis/internal/metrics"
	"github.com/UnknownOlympus/artemis/internal/models"
	"github.com/UnknownOlympus/artemis/internal/sampler"
)

// CoordinateSampler draws candidate coordinates for the selection loop.
type CoordinateSampler interface {
	Sample() models.Coordinates
}

// NameResolver classifies a candidate coordinate and produces its display
// name when the point is inhabited.
type NameResolver interface {
	Resolve(ctx context.Context, coords models.Coordinates) (string, error)
}

// Selector runs the location selection loop: sample a candidate, resolve it,
// accept or retry, bounded by an attempt ceiling, with the curated fallback
// catalog as the terminal path. It always produces a valid TargetLocation
// unless the surrounding request is cancelled.
type Selector struct {
	log         *slog.Logger      // Logger for logging service activities
	sampler     CoordinateSampler // Weighted coordinate sampler
	resolver    NameResolver      // Habitability resolver backed by the geocoding provider
	catalog     *catalog.Catalog  // Curated fallback locations
	src         sampler.Source    // Random source for picking a fallback entry
	metrics     *metrics.Metrics  // Metrics for tracking selection outcomes
	maxAttempts int               // Attempt ceiling before falling back
}

// NewSelector creates a new instance of Selector. It takes a logger, a
// coordinate sampler, a habitability resolver, the fallback catalog, a random
// source for fallback picks, metrics for monitoring, and the attempt ceiling.
func NewSelector(
	log *slog.Logger,
	smp CoordinateSampler,
	res NameResolver,
	cat *catalog.Catalog,
	src sampler.Source,
	m *metrics.Metrics,
	maxAttempts int,
) *Selector {
	return &Selector{
		log:         log,
		sampler:     smp,
		resolver:    res,
		catalog:     cat,
		src:         src,
		metrics:     m,
		maxAttempts: maxAttempts,
	}
}

// SelectTarget produces a fresh TargetLocation. Attempts run strictly
// sequentially so at most one geocode request is in flight at a time; each
// attempt must finish before the next candidate is drawn. When the ceiling is
// exhausted without an accepted candidate, a random catalog entry is returned
// instead, so the caller always gets a target within bounded latency.
//
// The only failure mode is cancellation of ctx: an abandoned selection
// returns an error and no TargetLocation.
func (s *Selector) SelectTarget(ctx context.Context) (*models.TargetLocation, error) {
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("selection abandoned: %w", err)
		}

		candidate := s.sampler.Sample()

		name, err := s.resolver.Resolve(ctx, candidate)
		if err != nil {
			s.log.DebugContext(ctx, "Candidate rejected",
				"attempt", attempt, "lat", candidate.Latitude, "lon", candidate.Longitude)
			continue
		}

		s.log.InfoContext(ctx, "Candidate accepted",
			"attempt", attempt, "name", name, "lat", candidate.Latitude, "lon", candidate.Longitude)
		s.metrics.SelectionsTotal.WithLabelValues("resolved").Inc()
		s.metrics.SelectionAttempts.Observe(float64(attempt))

		return &models.TargetLocation{Name: name, Coordinates: candidate}, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("selection abandoned: %w", err)
	}

	entry := s.catalog.Random(s.src)
	s.log.InfoContext(ctx, "Attempt ceiling exhausted, using fallback catalog",
		"attempts", s.maxAttempts, "name", entry.Name)
	s.metrics.SelectionsTotal.WithLabelValues("fallback").Inc()
	s.metrics.SelectionAttempts.Observe(float64(s.maxAttempts))

	return &models.TargetLocation{Name: entry.Name, Coordinates: entry.Coordinates}, nil
}
