package geocoding

import (
	"context"
	"errors"
	"net/http"

	"github.com/UnknownOlympus/artemis/internal/models"
)

// Provider is an interface that defines a method for reverse geocoding a
// coordinate. The ReverseGeocode method takes a context and a coordinate as
// input, and returns the descriptive place attributes for that point, or an
// error if the lookup fails or resolves nothing.
type Provider interface {
	ReverseGeocode(ctx context.Context, coords models.Coordinates) (*models.Place, error)
}

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ErrNoResult is returned when a provider responds successfully but resolves
// no place for the coordinate (open ocean, poles, unmapped terrain).
var ErrNoResult = errors.New("provider resolved no place for the coordinate")
