package models

// Place represents the descriptive attributes a reverse-geocoding provider
// returns for a coordinate. Every field is optional; an empty string means the
// provider did not resolve that level of detail.
type Place struct {
	Locality    string // Locality is the city, town or village name.
	Sublocality string // Sublocality is a district or suburb inside the locality.
	AdminArea   string // AdminArea is the first-level administrative division (state, province, oblast).
	Country     string // Country is the country name.
}

// IsEmpty reports whether the provider resolved no attributes at all.
func (p Place) IsEmpty() bool {
	return p.Locality == "" && p.Sublocality == "" && p.AdminArea == "" && p.Country == ""
}
