package overpass

import (
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
)

// LatLon is a raw coordinate pair as returned by the Overpass API.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Element is a single tagged geographic feature from an Overpass response.
// Lat/Lon are only present on nodes (and on ways when the server inlines
// them), so they are pointers to preserve presence semantics.
type Element struct {
	ID       int64             `json:"id"`
	Type     string            `json:"type"`
	Lat      *float64          `json:"lat,omitempty"`
	Lon      *float64          `json:"lon,omitempty"`
	Center   *LatLon           `json:"center,omitempty"`
	Tags     map[string]string `json:"tags,omitempty"`
	Geometry []LatLon          `json:"geometry,omitempty"`
}

// Name returns the element's name tag, or "" when untagged or unnamed.
func (e Element) Name() string {
	return e.Tags["name"]
}

// Location resolves a representative coordinate for the element. Preference
// order: the server-computed center, then the element's own lat/lon for
// non-node geometries, then a centroid computed from inline geometry.
// ok is false when none of these are available.
func (e Element) Location() (lat, lon float64, ok bool) {
	if e.Center != nil {
		return e.Center.Lat, e.Center.Lon, true
	}

	if e.Type != "node" && e.Lat != nil && e.Lon != nil {
		return *e.Lat, *e.Lon, true
	}

	if len(e.Geometry) > 0 {
		return e.geometryCentroid()
	}

	return 0, 0, false
}

// geometryCentroid computes a centroid from the element's inline geometry
// nodes. Single-point geometries resolve to the point itself.
func (e Element) geometryCentroid() (lat, lon float64, ok bool) {
	if len(e.Geometry) == 1 {
		return e.Geometry[0].Lat, e.Geometry[0].Lon, true
	}

	flat := make([]float64, 0, len(e.Geometry)*2)
	for _, p := range e.Geometry {
		flat = append(flat, p.Lon, p.Lat)
	}

	line := geom.NewLineStringFlat(geom.XY, flat)
	c, err := xy.Centroid(line)
	if err != nil {
		return 0, 0, false
	}

	return c.Y(), c.X(), true
}
