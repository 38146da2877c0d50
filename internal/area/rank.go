package area

import (
	"sort"

	"github.com/sells-group/locate-cli/internal/geo"
	"github.com/sells-group/locate-cli/internal/model"
)

// priorityTypes are the classifications treated as stronger location
// signals than a generic park.
var priorityTypes = map[model.AreaType]bool{
	model.AreaTypeProtectedArea: true,
	model.AreaTypeNatureReserve: true,
	model.AreaTypeStatePark:     true,
	model.AreaTypeNationalPark:  true,
	model.AreaTypeStateForest:   true,
	model.AreaTypeForest:        true,
}

// Rank computes each area's distance from origin and returns the list
// sorted ascending by distance. The input slice is not modified.
func Rank(origin geo.Coordinate, areas []model.Area) []model.Area {
	ranked := make([]model.Area, len(areas))
	for i, a := range areas {
		a.DistanceKm = geo.Distance(origin, geo.Coordinate{Lat: a.Lat, Lon: a.Lon})
		ranked[i] = a
	}

	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	return ranked
}

// SelectMostLikely picks the single most likely area from a distance-sorted
// candidate list. A priority-type area within maxPriorityKm beats any closer
// generic area; failing that, the nearest candidate overall wins. Returns
// nil for an empty list.
func SelectMostLikely(ranked []model.Area, maxPriorityKm float64) *model.Area {
	if len(ranked) == 0 {
		return nil
	}

	for i := range ranked {
		if priorityTypes[ranked[i].Type] && ranked[i].DistanceKm <= maxPriorityKm {
			return &ranked[i]
		}
	}

	return &ranked[0]
}
