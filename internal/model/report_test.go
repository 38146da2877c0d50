package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportSummary_Full(t *testing.T) {
	t.Parallel()

	r := Report{
		Latitude:  40.0150,
		Longitude: -105.2705,
		Community: &CommunityInfo{
			City:    "Boulder",
			County:  "Boulder County",
			State:   "Colorado",
			Country: "United States",
		},
		Selected: &Area{Name: "Betasso Preserve", Type: AreaTypeNatureReserve, DistanceKm: 2.4},
	}

	s := r.Summary()
	assert.Contains(t, s, "State: Colorado")
	assert.Contains(t, s, "Community: Boulder")
	assert.Contains(t, s, "Location: Betasso Preserve (Nature Reserve)")
	assert.Contains(t, s, "Distance: 2.4 km")
}

func TestReportSummary_NoAreaFound(t *testing.T) {
	t.Parallel()

	r := Report{Latitude: 40.0, Longitude: -105.0}

	s := r.Summary()
	assert.Contains(t, s, "Location: Unknown")
	assert.NotContains(t, s, "State:")
}

func TestReportSummary_PartialCommunity(t *testing.T) {
	t.Parallel()

	r := Report{
		Community: &CommunityInfo{State: "Colorado"},
	}

	s := r.Summary()
	assert.Contains(t, s, "State: Colorado")
	assert.Contains(t, s, "Community: Unknown")
}
