package geocoding

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/artemis/internal/models"
	"googlemaps.github.io/maps"
)

// GoogleProvider is a struct that holds the client for Google Maps API
// and a logger for logging purposes. It is used to interact with the
// Google Maps reverse-geocoding services.
type GoogleProvider struct {
	client GoogleAPIClient // client is the Google Maps API client
	log    *slog.Logger    // log is the logger for logging operations
}

type GoogleAPIClient interface {
	ReverseGeocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// NewGoogleProvider initializes a new GoogleProvider with the given API client and logger.
func NewGoogleProvider(client GoogleAPIClient, log *slog.Logger) *GoogleProvider {
	return &GoogleProvider{client: client, log: log}
}

// ReverseGeocode takes a context and a coordinate as input, and returns the
// place attributes (locality, sublocality, administrative area, country) of
// the point using the Google Maps Geocoding API. Results are scanned in API
// order, most specific first, and the first component of each type wins.
// If the coordinate cannot be reverse geocoded or the response is empty, it
// returns ErrNoResult.
func (gp *GoogleProvider) ReverseGeocode(
	ctx context.Context,
	coords models.Coordinates,
) (*models.Place, error) {
	gp.log.DebugContext(ctx, "Reverse geocoding using Google Maps",
		"lat", coords.Latitude, "lon", coords.Longitude)

	req := maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: coords.Latitude, Lng: coords.Longitude},
	}
	results, err := gp.client.ReverseGeocode(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("failed to reverse geocode coordinate: %w", err)
	}

	if len(results) == 0 {
		return nil, ErrNoResult
	}

	place := extractPlace(results)
	if place.IsEmpty() {
		return nil, ErrNoResult
	}

	return place, nil
}

// extractPlace walks the address components of every result and picks the
// first long name seen for each component type of interest.
func extractPlace(results []maps.GeocodingResult) *models.Place {
	var place models.Place

	for _, result := range results {
		for _, component := range result.AddressComponents {
			for _, typ := range component.Types {
				switch typ {
				case "locality":
					if place.Locality == "" {
						place.Locality = component.LongName
					}
				case "sublocality":
					if place.Sublocality == "" {
						place.Sublocality = component.LongName
					}
				case "administrative_area_level_1":
					if place.AdminArea == "" {
						place.AdminArea = component.LongName
					}
				case "country":
					if place.Country == "" {
						place.Country = component.LongName
					}
				}
			}
		}
	}

	return &place
}
