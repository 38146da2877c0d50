package model

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"

	"github.com/sells-group/locate-cli/internal/geo"
)

// ErrMissingCoordinates indicates that no usable coordinate pair could be
// extracted from the activity or its segment efforts. It is fatal to a run.
var ErrMissingCoordinates = eris.New("no valid coordinates found in activity or segment data")

// Segment is a named sub-route within an activity.
type Segment struct {
	Name        string    `json:"name"`
	StartLatLng []float64 `json:"start_latlng"`
}

// SegmentEffort is one recorded traversal of a segment during an activity.
type SegmentEffort struct {
	Segment *Segment `json:"segment"`
}

// Activity is the recorded activity to resolve a location for. Only the
// fields the coordinate extractor needs are modeled; everything else in the
// source record is ignored.
type Activity struct {
	Name           string          `json:"name"`
	SegmentEfforts []SegmentEffort `json:"segment_efforts"`
	StartLatLng    []float64       `json:"start_latlng"`
}

// CoordinateSource identifies which part of the activity record a
// coordinate was extracted from.
type CoordinateSource string

const (
	// CoordinateSourceSegment means the coordinate came from the middle
	// segment effort's segment start.
	CoordinateSourceSegment CoordinateSource = "segment"
	// CoordinateSourceActivity means the coordinate came from the
	// activity's own start position.
	CoordinateSourceActivity CoordinateSource = "activity_start"
)

// ExtractedCoordinate is the coordinate chosen to represent the activity's
// location, along with where it came from.
type ExtractedCoordinate struct {
	Coordinate  geo.Coordinate
	Source      CoordinateSource
	SegmentName string
}

// StartCoordinate selects the coordinate pair that best represents where
// the activity happened. It prefers the start of the middle segment effort,
// since mid-route points are less likely to land on a parking lot or
// trailhead than the activity's own start, and falls back to the activity
// start position. Returns ErrMissingCoordinates when neither source carries
// a well-formed pair.
func (a *Activity) StartCoordinate() (ExtractedCoordinate, error) {
	if n := len(a.SegmentEfforts); n > 0 {
		mid := a.SegmentEfforts[n/2]
		if seg := mid.Segment; seg != nil && len(seg.StartLatLng) == 2 {
			return ExtractedCoordinate{
				Coordinate:  geo.Coordinate{Lat: seg.StartLatLng[0], Lon: seg.StartLatLng[1]},
				Source:      CoordinateSourceSegment,
				SegmentName: seg.Name,
			}, nil
		}
	}

	if len(a.StartLatLng) == 2 {
		return ExtractedCoordinate{
			Coordinate: geo.Coordinate{Lat: a.StartLatLng[0], Lon: a.StartLatLng[1]},
			Source:     CoordinateSourceActivity,
		}, nil
	}

	return ExtractedCoordinate{}, ErrMissingCoordinates
}

// LoadActivity reads an activity record from a JSON file.
func LoadActivity(path string) (*Activity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "model: read activity file")
	}

	var a Activity
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, eris.Wrap(err, "model: parse activity file")
	}

	return &a, nil
}
