package model

import (
	"fmt"
	"strings"
)

// AreaType is the semantic classification of an outdoor recreation area.
type AreaType string

const (
	AreaTypeNationalPark          AreaType = "National Park"
	AreaTypeStatePark             AreaType = "State Park"
	AreaTypeNationalProtectedArea AreaType = "National Protected Area"
	AreaTypeProtectedArea         AreaType = "Protected Area"
	AreaTypeNatureReserve         AreaType = "Nature Reserve"
	AreaTypeStateForest           AreaType = "State Forest"
	AreaTypeForest                AreaType = "Forest"
	AreaTypeMountainPark          AreaType = "Mountain Park"
	AreaTypeForestPark            AreaType = "Forest Park"
	AreaTypeWildernessArea        AreaType = "Wilderness Area"
	AreaTypePark                  AreaType = "Park"
	AreaTypeOutdoorArea           AreaType = "Outdoor Area"
)

// Area is a named outdoor recreation area classified from a raw geographic
// feature. Immutable once built; DistanceKm is measured from the query
// coordinate of the run that produced it.
type Area struct {
	Name       string   `json:"name"`
	Type       AreaType `json:"type"`
	DistanceKm float64  `json:"distance_km"`
	Lat        float64  `json:"lat"`
	Lon        float64  `json:"lon"`
}

// CommunityInfo is the administrative region extracted from a reverse
// geocoding response. Absent fields are omitted rather than zero-filled.
type CommunityInfo struct {
	City     string `json:"city,omitempty"`
	County   string `json:"county,omitempty"`
	State    string `json:"state,omitempty"`
	Country  string `json:"country,omitempty"`
	Postcode string `json:"postcode,omitempty"`
}

// Report is the outcome of one location resolution run.
type Report struct {
	RunID            string           `json:"run_id"`
	Latitude         float64          `json:"latitude"`
	Longitude        float64          `json:"longitude"`
	CoordinateSource CoordinateSource `json:"coordinate_source,omitempty"`
	SegmentName      string           `json:"segment_name,omitempty"`
	DisplayName      string           `json:"display_name,omitempty"`
	Community        *CommunityInfo   `json:"community,omitempty"`
	Areas            []Area           `json:"areas,omitempty"`
	Selected         *Area            `json:"selected,omitempty"`
}

// orUnknown substitutes "Unknown" for empty values in the summary.
func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

// Summary renders the human-readable run summary.
func (r *Report) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Activity location: %.5f, %.5f\n", r.Latitude, r.Longitude)

	if r.Community != nil {
		fmt.Fprintf(&b, "State: %s\n", orUnknown(r.Community.State))
		fmt.Fprintf(&b, "Community: %s\n", orUnknown(r.Community.City))
		fmt.Fprintf(&b, "County: %s\n", orUnknown(r.Community.County))
		fmt.Fprintf(&b, "Country: %s\n", orUnknown(r.Community.Country))
	}

	if r.Selected != nil {
		fmt.Fprintf(&b, "Location: %s (%s)\n", r.Selected.Name, r.Selected.Type)
		fmt.Fprintf(&b, "Distance: %.1f km\n", r.Selected.DistanceKm)
	} else {
		b.WriteString("Location: Unknown\n")
	}

	return b.String()
}
