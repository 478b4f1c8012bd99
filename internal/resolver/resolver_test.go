package resolver_test

import (
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/artemis/internal/metrics"
	"github.com/UnknownOlympus/artemis/internal/models"
	"github.com/UnknownOlympus/artemis/internal/resolver"
	"github.com/UnknownOlympus/artemis/test/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKeywords = []string{"ocean", "sea", "pacific", "atlantic", "indian", "arctic", "southern"}

func newResolver(t *testing.T, provider *mocks.Provider) *resolver.Resolver {
	t.Helper()

	reg := prometheus.NewRegistry()
	return resolver.NewResolver(
		provider, "test", metrics.NewMetrics(reg), testKeywords, "United States", slog.Default(),
	)
}

func TestResolve(t *testing.T) {
	coords := models.Coordinates{Latitude: 48.85, Longitude: 2.35}

	t.Run("locality with foreign country", func(t *testing.T) {
		provider := mocks.NewProvider(t)
		res := newResolver(t, provider)
		place := &models.Place{Locality: "Reykjavik", Country: "Iceland"}

		provider.On("ReverseGeocode", t.Context(), coords).Return(place, nil).Once()

		name, err := res.Resolve(t.Context(), coords)

		require.NoError(t, err)
		assert.Equal(t, "Reykjavik, Iceland", name)
	})

	t.Run("locality in home country uses administrative area", func(t *testing.T) {
		provider := mocks.NewProvider(t)
		res := newResolver(t, provider)
		place := &models.Place{Locality: "Springfield", AdminArea: "Illinois", Country: "United States"}

		provider.On("ReverseGeocode", t.Context(), coords).Return(place, nil).Once()

		name, err := res.Resolve(t.Context(), coords)

		require.NoError(t, err)
		assert.Equal(t, "Springfield, Illinois", name)
	})

	t.Run("locality in home country without administrative area", func(t *testing.T) {
		provider := mocks.NewProvider(t)
		res := newResolver(t, provider)
		place := &models.Place{Locality: "Springfield", Country: "United States"}

		provider.On("ReverseGeocode", t.Context(), coords).Return(place, nil).Once()

		name, err := res.Resolve(t.Context(), coords)

		require.NoError(t, err)
		assert.Equal(t, "Springfield", name)
	})

	t.Run("sublocality fallback appends country", func(t *testing.T) {
		provider := mocks.NewProvider(t)
		res := newResolver(t, provider)
		place := &models.Place{Sublocality: "Shibuya", Country: "Japan"}

		provider.On("ReverseGeocode", t.Context(), coords).Return(place, nil).Once()

		name, err := res.Resolve(t.Context(), coords)

		require.NoError(t, err)
		assert.Equal(t, "Shibuya, Japan", name)
	})

	t.Run("administrative area fallback appends country", func(t *testing.T) {
		provider := mocks.NewProvider(t)
		res := newResolver(t, provider)
		place := &models.Place{AdminArea: "Bavaria", Country: "Germany"}

		provider.On("ReverseGeocode", t.Context(), coords).Return(place, nil).Once()

		name, err := res.Resolve(t.Context(), coords)

		require.NoError(t, err)
		assert.Equal(t, "Bavaria, Germany", name)
	})

	t.Run("country alone is uninhabited", func(t *testing.T) {
		provider := mocks.NewProvider(t)
		res := newResolver(t, provider)
		place := &models.Place{Country: "France"}

		provider.On("ReverseGeocode", t.Context(), coords).Return(place, nil).Once()

		name, err := res.Resolve(t.Context(), coords)

		require.ErrorIs(t, err, resolver.ErrUninhabited)
		assert.Empty(t, name)
	})

	t.Run("ocean keyword rejects regardless of other fields", func(t *testing.T) {
		provider := mocks.NewProvider(t)
		res := newResolver(t, provider)
		place := &models.Place{Locality: "Honolulu", AdminArea: "North Pacific", Country: "United States"}

		provider.On("ReverseGeocode", t.Context(), coords).Return(place, nil).Once()

		name, err := res.Resolve(t.Context(), coords)

		require.ErrorIs(t, err, resolver.ErrUninhabited)
		assert.Empty(t, name)
	})

	t.Run("keyword matching is case-insensitive", func(t *testing.T) {
		provider := mocks.NewProvider(t)
		res := newResolver(t, provider)
		place := &models.Place{AdminArea: "PACIFIC Islands", Country: "Kiribati"}

		provider.On("ReverseGeocode", t.Context(), coords).Return(place, nil).Once()

		_, err := res.Resolve(t.Context(), coords)

		require.ErrorIs(t, err, resolver.ErrUninhabited)
	})

	t.Run("provider failure is recovered as uninhabited", func(t *testing.T) {
		provider := mocks.NewProvider(t)
		res := newResolver(t, provider)

		provider.On("ReverseGeocode", t.Context(), coords).Return(nil, assert.AnError).Once()

		name, err := res.Resolve(t.Context(), coords)

		require.ErrorIs(t, err, resolver.ErrUninhabited)
		assert.Empty(t, name)
	})
}
