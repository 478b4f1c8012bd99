// Package catalog holds the curated fallback locations and the uninhabited
// keyword list. Both are data, not code: they ship with sane defaults and can
// be swapped out with a YAML file without touching the selection algorithm.
package catalog

import (
	"errors"
	"fmt"

	"github.com/UnknownOlympus/artemis/internal/models"
	"github.com/UnknownOlympus/artemis/internal/sampler"
	"github.com/spf13/viper"
)

// Entry is a single curated fallback location: a display name with a known
// good coordinate.
type Entry struct {
	Name        string             `mapstructure:"name"`
	Coordinates models.Coordinates `mapstructure:"coordinates"`
}

// Catalog is a fixed, ordered, read-only set of fallback entries plus the
// keyword list used by the uninhabited filter.
type Catalog struct {
	entries  []Entry
	keywords []string
}

// Common errors for catalog loading.
var (
	ErrEmptyCatalog       = errors.New("fallback catalog must contain at least one entry")
	ErrEmptyEntryName     = errors.New("fallback catalog entry has an empty name")
	ErrInvalidEntryCoords = errors.New("fallback catalog entry has coordinates outside the valid range")
)

// defaultKeywords flags geocode results describing oceans and seas. Matching
// is a lower-cased substring check, a heuristic rather than a landmask.
var defaultKeywords = []string{"ocean", "sea", "pacific", "atlantic", "indian", "arctic", "southern"}

// defaultEntries is the built-in curated list, used when no catalog file is
// configured.
var defaultEntries = []Entry{
	{Name: "Tokyo, Japan", Coordinates: models.Coordinates{Latitude: 35.6762, Longitude: 139.6503}},
	{Name: "Paris, France", Coordinates: models.Coordinates{Latitude: 48.8566, Longitude: 2.3522}},
	{Name: "New York, New York", Coordinates: models.Coordinates{Latitude: 40.7128, Longitude: -74.0060}},
	{Name: "Cairo, Egypt", Coordinates: models.Coordinates{Latitude: 30.0444, Longitude: 31.2357}},
	{Name: "Sydney, Australia", Coordinates: models.Coordinates{Latitude: -33.8688, Longitude: 151.2093}},
	{Name: "Reykjavik, Iceland", Coordinates: models.Coordinates{Latitude: 64.1466, Longitude: -21.9426}},
	{Name: "Nairobi, Kenya", Coordinates: models.Coordinates{Latitude: -1.2921, Longitude: 36.8219}},
	{Name: "Lima, Peru", Coordinates: models.Coordinates{Latitude: -12.0464, Longitude: -77.0428}},
	{Name: "Mumbai, India", Coordinates: models.Coordinates{Latitude: 19.0760, Longitude: 72.8777}},
	{Name: "Toronto, Canada", Coordinates: models.Coordinates{Latitude: 43.6532, Longitude: -79.3832}},
	{Name: "Berlin, Germany", Coordinates: models.Coordinates{Latitude: 52.5200, Longitude: 13.4050}},
	{Name: "Buenos Aires, Argentina", Coordinates: models.Coordinates{Latitude: -34.6037, Longitude: -58.3816}},
}

// fileSchema mirrors the YAML catalog file layout.
type fileSchema struct {
	Entries  []Entry  `mapstructure:"entries"`
	Keywords []string `mapstructure:"keywords"`
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{entries: defaultEntries, keywords: defaultKeywords}
}

// Load reads a catalog from a YAML file. A missing keywords list falls back
// to the built-in one; entries are mandatory and validated.
func Load(path string) (*Catalog, error) {
	vpr := viper.New()
	vpr.SetConfigFile(path)
	vpr.SetConfigType("yaml")

	if err := vpr.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var schema fileSchema
	if err := vpr.Unmarshal(&schema); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog file: %w", err)
	}

	if len(schema.Entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	for _, entry := range schema.Entries {
		if entry.Name == "" {
			return nil, ErrEmptyEntryName
		}
		if !entry.Coordinates.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidEntryCoords, entry.Name)
		}
	}

	keywords := schema.Keywords
	if len(keywords) == 0 {
		keywords = defaultKeywords
	}

	return &Catalog{entries: schema.Entries, keywords: keywords}, nil
}

// Entries returns the catalog entries in order.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Keywords returns the uninhabited keyword list.
func (c *Catalog) Keywords() []string {
	return c.keywords
}

// Random returns a uniformly chosen catalog entry using the given source.
func (c *Catalog) Random(src sampler.Source) Entry {
	idx := int(src.Uniform(0, float64(len(c.entries))))
	if idx >= len(c.entries) {
		idx = len(c.entries) - 1
	}

	return c.entries[idx]
}
