// Package preset stores named, reusable query criteria in a TOML catalog so
// frequent queries can be replayed by name instead of retyped flag by flag.
package preset

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/orbitalmech/neoscope/internal/filter"
)

// DefaultPath is the conventional location for the preset catalog.
const DefaultPath = ".neoscope/presets.toml"

// dateLayout is how dates are written in the catalog.
const dateLayout = "2006-01-02"

// Preset is one named set of query bounds. Dates are stored as YYYY-MM-DD
// strings; numeric and boolean bounds stay pointers so that an absent bound
// and a zero bound remain distinguishable in the file.
type Preset struct {
	Name  string `toml:"name"`
	Limit int    `toml:"limit,omitempty"`

	Date      string `toml:"date,omitempty"`
	StartDate string `toml:"start_date,omitempty"`
	EndDate   string `toml:"end_date,omitempty"`

	DistanceMin *float64 `toml:"distance_min,omitempty"`
	DistanceMax *float64 `toml:"distance_max,omitempty"`
	VelocityMin *float64 `toml:"velocity_min,omitempty"`
	VelocityMax *float64 `toml:"velocity_max,omitempty"`
	DiameterMin *float64 `toml:"diameter_min,omitempty"`
	DiameterMax *float64 `toml:"diameter_max,omitempty"`

	Hazardous *bool `toml:"hazardous,omitempty"`
}

// Criteria converts the preset into filter criteria, parsing its dates.
func (p Preset) Criteria() (filter.Criteria, error) {
	c := filter.Criteria{
		DistanceMin: p.DistanceMin,
		DistanceMax: p.DistanceMax,
		VelocityMin: p.VelocityMin,
		VelocityMax: p.VelocityMax,
		DiameterMin: p.DiameterMin,
		DiameterMax: p.DiameterMax,
		Hazardous:   p.Hazardous,
	}

	dates := []struct {
		raw  string
		dest **time.Time
	}{
		{p.Date, &c.Date},
		{p.StartDate, &c.StartDate},
		{p.EndDate, &c.EndDate},
	}
	for _, d := range dates {
		if d.raw == "" {
			continue
		}
		t, err := time.ParseInLocation(dateLayout, d.raw, time.UTC)
		if err != nil {
			return filter.Criteria{}, fmt.Errorf("preset %q: bad date %q: %w", p.Name, d.raw, err)
		}
		parsed := t
		*d.dest = &parsed
	}

	return c, nil
}

// Catalog is the full preset file.
type Catalog struct {
	Presets []Preset `toml:"preset"`
}

// Find returns the preset with the given name, if present.
func (c *Catalog) Find(name string) (Preset, bool) {
	for _, p := range c.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Load reads a preset catalog from the given path. A missing file returns an
// empty catalog and no error, so callers can proceed without presets.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Catalog{}, nil
		}
		return nil, fmt.Errorf("reading presets: %w", err)
	}

	var cat Catalog
	if err := toml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parsing presets: %w", err)
	}
	return &cat, nil
}

// Save writes the catalog to the given path, creating parent directories as
// needed.
func Save(path string, cat *Catalog) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	data, err := toml.Marshal(cat)
	if err != nil {
		return fmt.Errorf("marshaling presets: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing presets: %w", err)
	}
	return nil
}
