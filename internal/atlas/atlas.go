// Package atlas holds the static country reference data: names, ISO codes,
// centroid coordinates, and polygon geometry for map rendering. The catalog
// is loaded once at startup and is read-only afterwards, so it is safe to
// share across sessions without synchronization.
package atlas

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

//go:embed countries.geojson
var defaultData []byte

// Feature types accepted from the source dataset. Dependencies and disputed
// territories carry other type values and are filtered out.
var validTypes = map[string]bool{
	"Country":           true,
	"Sovereign country": true,
}

var ErrNoCountries = errors.New("no usable country features")

type Country struct {
	Name     string
	Code     string // ISO 3166-1 alpha-2, uppercase
	Lat      float64
	Lng      float64
	Geometry orb.Geometry
}

type Catalog struct {
	countries []Country
	byName    map[string]int
}

// Load parses a GeoJSON FeatureCollection into a catalog. Features without a
// name, ISO code, or valid geometry are skipped; duplicate names keep the
// first occurrence. Countries come out sorted by name.
func Load(data []byte) (*Catalog, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parsing country geojson: %w", err)
	}

	seen := make(map[string]bool)
	var countries []Country
	for _, f := range fc.Features {
		name := strings.TrimSpace(f.Properties.MustString("name", ""))
		code := strings.TrimSpace(f.Properties.MustString("iso_a2", ""))
		typ := f.Properties.MustString("type", "Country")
		if name == "" || code == "" || !validTypes[typ] || seen[name] {
			continue
		}
		if f.Geometry == nil {
			continue
		}
		centroid, area := planar.CentroidArea(f.Geometry)
		if area == 0 {
			continue
		}
		seen[name] = true
		countries = append(countries, Country{
			Name:     name,
			Code:     strings.ToUpper(code),
			Lat:      centroid.Lat(),
			Lng:      centroid.Lon(),
			Geometry: f.Geometry,
		})
	}

	if len(countries) == 0 {
		return nil, ErrNoCountries
	}

	sort.Slice(countries, func(i, j int) bool {
		return countries[i].Name < countries[j].Name
	})
	byName := make(map[string]int, len(countries))
	for i, c := range countries {
		byName[c.Name] = i
	}

	return &Catalog{countries: countries, byName: byName}, nil
}

// Open loads a catalog from a GeoJSON file on disk.
func Open(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading country file: %w", err)
	}
	return Load(data)
}

// Default loads the embedded world dataset.
func Default() (*Catalog, error) {
	return Load(defaultData)
}

func (c *Catalog) Len() int {
	return len(c.countries)
}

// Names returns all country names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.countries))
	for i, country := range c.countries {
		names[i] = country.Name
	}
	return names
}

func (c *Catalog) Lookup(name string) (Country, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Country{}, false
	}
	return c.countries[i], true
}

// At returns the country at index i in sorted-name order.
func (c *Catalog) At(i int) Country {
	return c.countries[i]
}
