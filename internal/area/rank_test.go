package area

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/locate-cli/internal/geo"
	"github.com/sells-group/locate-cli/internal/model"
)

func TestRank_SortsAscendingByDistance(t *testing.T) {
	t.Parallel()

	origin := geo.Coordinate{Lat: 40.0, Lon: -105.0}
	areas := []model.Area{
		{Name: "far", Lat: 41.0, Lon: -105.0},
		{Name: "near", Lat: 40.01, Lon: -105.0},
		{Name: "mid", Lat: 40.5, Lon: -105.0},
	}

	ranked := Rank(origin, areas)

	require.Len(t, ranked, 3)
	assert.Equal(t, "near", ranked[0].Name)
	assert.Equal(t, "mid", ranked[1].Name)
	assert.Equal(t, "far", ranked[2].Name)
	assert.Less(t, ranked[0].DistanceKm, ranked[1].DistanceKm)
	assert.Less(t, ranked[1].DistanceKm, ranked[2].DistanceKm)

	// Input order untouched.
	assert.Equal(t, "far", areas[0].Name)
	assert.Zero(t, areas[0].DistanceKm)
}

func TestSelectMostLikely_PriorityBeatsProximity(t *testing.T) {
	t.Parallel()

	ranked := []model.Area{
		{Name: "Civic Park", Type: model.AreaTypePark, DistanceKm: 0.5},
		{Name: "Betasso Preserve", Type: model.AreaTypeNatureReserve, DistanceKm: 2.9},
	}

	got := SelectMostLikely(ranked, 3.0)
	require.NotNil(t, got)
	assert.Equal(t, "Betasso Preserve", got.Name)
}

func TestSelectMostLikely_PriorityTooFarFallsBackToNearest(t *testing.T) {
	t.Parallel()

	ranked := []model.Area{
		{Name: "Civic Park", Type: model.AreaTypePark, DistanceKm: 0.5},
		{Name: "Distant Reserve", Type: model.AreaTypeNatureReserve, DistanceKm: 12.0},
	}

	got := SelectMostLikely(ranked, 3.0)
	require.NotNil(t, got)
	assert.Equal(t, "Civic Park", got.Name)
}

func TestSelectMostLikely_AllNonPriorityReturnsNearest(t *testing.T) {
	t.Parallel()

	ranked := []model.Area{
		{Name: "Dog Park", Type: model.AreaTypePark, DistanceKm: 1.1},
		{Name: "Mountain Overlook", Type: model.AreaTypeMountainPark, DistanceKm: 2.0},
	}

	got := SelectMostLikely(ranked, 3.0)
	require.NotNil(t, got)
	assert.Equal(t, "Dog Park", got.Name)
}

func TestSelectMostLikely_FirstQualifyingPriorityWins(t *testing.T) {
	t.Parallel()

	ranked := []model.Area{
		{Name: "Closer Forest", Type: model.AreaTypeForest, DistanceKm: 1.0},
		{Name: "Farther Reserve", Type: model.AreaTypeNatureReserve, DistanceKm: 2.0},
	}

	got := SelectMostLikely(ranked, 3.0)
	require.NotNil(t, got)
	assert.Equal(t, "Closer Forest", got.Name)
}

func TestSelectMostLikely_Empty(t *testing.T) {
	t.Parallel()

	assert.Nil(t, SelectMostLikely(nil, 3.0))
	assert.Nil(t, SelectMostLikely([]model.Area{}, 3.0))
}
