package models

// Coordinates represents a geographical point defined by its latitude and longitude.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`  // Latitude of the geographical point, in degrees.
	Longitude float64 `json:"longitude"` // Longitude of the geographical point, in degrees.
}

// Valid reports whether the coordinates fall inside the WGS84 ranges:
// latitude in [-90, 90] and longitude in [-180, 180].
func (c Coordinates) Valid() bool {
	const (
		maxLatitude  = 90.0
		maxLongitude = 180.0
	)

	return c.Latitude >= -maxLatitude && c.Latitude <= maxLatitude &&
		c.Longitude >= -maxLongitude && c.Longitude <= maxLongitude
}
