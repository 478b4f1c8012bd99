package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/UnknownOlympus/artemis/internal/models"
	"golang.org/x/time/rate"
)

// NominatimBaseURL -- Nominatim reverse-geocoding endpoint.
const NominatimBaseURL = "https://nominatim.openstreetmap.org/reverse"

// NominatimProvider implements the Provider interface using OpenStreetMap's
// Nominatim API. This is a free geocoding service with usage limits
// (1 request/second for fair use), enforced here with a rate limiter.
type NominatimProvider struct {
	client  HTTPClient    // HTTP client for making requests
	baseURL string        // Base URL for the Nominatim API
	log     *slog.Logger  // Logger for logging operations
	limiter *rate.Limiter // Rate limiter per Nominatim usage policy
	// userAgent is required by Nominatim usage policy
	userAgent string
}

// nominatimResponse represents the JSON response from the Nominatim reverse
// endpoint. Ocean points come back with status 200 and an error message
// instead of an address.
type nominatimResponse struct {
	Error   string `json:"error"` // Set when the point resolves to nothing.
	Address struct {
		City          string `json:"city"`
		Town          string `json:"town"`
		Village       string `json:"village"`
		Hamlet        string `json:"hamlet"`
		Suburb        string `json:"suburb"`
		Neighbourhood string `json:"neighbourhood"`
		State         string `json:"state"`
		Region        string `json:"region"`
		Country       string `json:"country"`
	} `json:"address"`
}

// NewNominatimProvider creates a new Nominatim reverse-geocoding provider.
// Uses the public Nominatim API endpoint by default.
func NewNominatimProvider(rateLimit int, log *slog.Logger) *NominatimProvider {
	const timeout = 10
	return &NominatimProvider{
		client: &http.Client{
			Timeout: timeout * time.Second,
		},
		baseURL: NominatimBaseURL,
		log:     log,
		limiter: rate.NewLimiter(rate.Limit(rateLimit), rateLimit),
		// User-Agent MUST include valid contact info per Nominatim usage policy:
		// https://operations.osmfoundation.org/policies/nominatim/
		userAgent: "Artemis-Target-Service/1.0 (https://github.com/UnknownOlympus/artemis)",
	}
}

// NewNominatimProviderWithClient creates a Nominatim provider with a custom HTTP client.
// Useful for testing with mocked HTTP clients.
func NewNominatimProviderWithClient(client HTTPClient, limiter *rate.Limiter, log *slog.Logger) *NominatimProvider {
	return &NominatimProvider{
		client:    client,
		baseURL:   NominatimBaseURL,
		log:       log,
		limiter:   limiter,
		userAgent: "Artemis-Target-Service/1.0 (https://github.com/UnknownOlympus/artemis)",
	}
}

// ReverseGeocode converts a coordinate to place attributes using the Nominatim
// reverse API. It respects Nominatim's usage policy by including a User-Agent
// header and waiting on the rate limiter before each request.
func (np *NominatimProvider) ReverseGeocode(
	ctx context.Context,
	coords models.Coordinates,
) (*models.Place, error) {
	if err := np.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait interrupted: %w", err)
	}

	np.log.DebugContext(ctx, "Reverse geocoding using Nominatim",
		"lat", coords.Latitude, "lon", coords.Longitude)

	reqURL, err := url.Parse(np.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	query := reqURL.Query()
	query.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	query.Set("format", "json")
	query.Set("addressdetails", "1")   // Include detailed address breakdown
	query.Set("zoom", "10")            // City-level detail is enough
	query.Set("accept-language", "en") // Keep names consistent across regions
	reqURL.RawQuery = query.Encode()

	np.log.DebugContext(ctx, "Nominatim request URL", "url", reqURL.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set required headers per Nominatim usage policy
	req.Header.Set("User-Agent", np.userAgent)
	req.Header.Set("Accept-Language", "en")

	resp, err := np.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute reverse geocoding request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		np.log.ErrorContext(ctx, "Nominatim API error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("nominatim API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	np.log.DebugContext(ctx, "Nominatim raw response", "body", string(body))

	var result nominatimResponse
	if err = json.Unmarshal(body, &result); err != nil {
		np.log.ErrorContext(ctx, "Failed to parse Nominatim response", "error", err, "body", string(body))
		return nil, fmt.Errorf("failed to decode nominatim response: %w", err)
	}

	// Nominatim reports unresolvable points (open ocean) as a 200 with an
	// error field.
	if result.Error != "" {
		return nil, ErrNoResult
	}

	place := &models.Place{
		Locality:    firstNonEmpty(result.Address.City, result.Address.Town, result.Address.Village, result.Address.Hamlet),
		Sublocality: firstNonEmpty(result.Address.Suburb, result.Address.Neighbourhood),
		AdminArea:   firstNonEmpty(result.Address.State, result.Address.Region),
		Country:     result.Address.Country,
	}

	if place.IsEmpty() {
		return nil, ErrNoResult
	}

	np.log.DebugContext(ctx, "Nominatim found result",
		"locality", place.Locality, "admin_area", place.AdminArea, "country", place.Country)

	return place, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
