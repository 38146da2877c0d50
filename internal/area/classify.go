// Package area classifies raw geographic features into typed outdoor
// recreation areas and selects the most likely one for a query point.
package area

import (
	"strings"

	"github.com/sells-group/locate-cli/internal/model"
	"github.com/sells-group/locate-cli/pkg/overpass"
)

// Classify maps one raw feature to a typed Area. ok is false when the
// feature must be skipped: it has no name tag, or no resolvable coordinate
// to rank it by. DistanceKm is left zero; the ranker fills it in.
func Classify(e overpass.Element) (model.Area, bool) {
	name := e.Name()
	if name == "" {
		return model.Area{}, false
	}

	lat, lon, ok := e.Location()
	if !ok {
		return model.Area{}, false
	}

	return model.Area{
		Name: name,
		Type: classifyType(e.Tags, name),
		Lat:  lat,
		Lon:  lon,
	}, true
}

// classifyType walks a fixed first-match ladder from most to least specific
// tagging. The order is load-bearing: features frequently carry several of
// these tags at once, and the stronger designation must win.
func classifyType(tags map[string]string, name string) model.AreaType {
	switch {
	case tags["boundary"] == "national_park":
		return model.AreaTypeNationalPark

	case tags["boundary"] == "protected_area":
		title := strings.ToLower(tags["protection_title"])
		switch {
		case strings.Contains(title, "state"):
			return model.AreaTypeStatePark
		case strings.Contains(title, "national"):
			return model.AreaTypeNationalProtectedArea
		default:
			return model.AreaTypeProtectedArea
		}

	case tags["leisure"] == "nature_reserve":
		return model.AreaTypeNatureReserve

	case tags["landuse"] == "forest":
		return model.AreaTypeStateForest

	case tags["natural"] == "forest":
		return model.AreaTypeForest

	case tags["leisure"] == "park":
		return parkTypeFromName(name)

	default:
		return model.AreaTypeOutdoorArea
	}
}

// parkTypeFromName refines a generic leisure=park by keywords in the
// feature's own name.
func parkTypeFromName(name string) model.AreaType {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "state"):
		return model.AreaTypeStatePark
	case strings.Contains(lower, "mountain"):
		return model.AreaTypeMountainPark
	case strings.Contains(lower, "forest"):
		return model.AreaTypeForestPark
	case strings.Contains(lower, "wilderness"):
		return model.AreaTypeWildernessArea
	default:
		return model.AreaTypePark
	}
}
