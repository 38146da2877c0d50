package overpass

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		assert.Contains(t, r.PostForm.Get("data"), "[out:json]")

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"elements": [
				{
					"type": "relation",
					"id": 42,
					"center": {"lat": 40.01, "lon": -105.34},
					"tags": {"name": "Betasso Preserve", "leisure": "nature_reserve"}
				},
				{
					"type": "node",
					"id": 7,
					"lat": 40.02,
					"lon": -105.30
				}
			]
		}`)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	resp, err := client.Query(context.Background(), OutdoorAreasQuery(40.0, -105.3, 100, 30))

	require.NoError(t, err)
	require.Len(t, resp.Elements, 2)
	assert.Equal(t, "Betasso Preserve", resp.Elements[0].Name())
	assert.Equal(t, "nature_reserve", resp.Elements[0].Tags["leisure"])
	assert.Empty(t, resp.Elements[1].Name())
}

func TestQuery_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	_, err := client.Query(context.Background(), "[out:json];")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestQuery_BadJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "runtime error: too many requests")
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	_, err := client.Query(context.Background(), "[out:json];")

	assert.Error(t, err)
}

func TestNearbyOutdoorAreas(t *testing.T) {
	t.Parallel()

	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotQuery = r.PostForm.Get("data")
		_, _ = io.WriteString(w, `{"elements": []}`)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL), WithQueryTimeout(25))
	elements, err := client.NearbyOutdoorAreas(context.Background(), 40.0, -105.3, 100)

	require.NoError(t, err)
	assert.Empty(t, elements)
	assert.Contains(t, gotQuery, "around:100000")
	assert.Contains(t, gotQuery, "[timeout:25]")
}

func TestOutdoorAreasQuery_Selectors(t *testing.T) {
	t.Parallel()

	ql := OutdoorAreasQuery(40.0, -105.3, 50, 30)

	assert.Contains(t, ql, "around:50000")
	assert.Contains(t, ql, `relation["boundary"="national_park"]`)
	assert.Contains(t, ql, `relation["boundary"="protected_area"]`)
	assert.Contains(t, ql, `relation["leisure"="nature_reserve"]`)
	assert.Contains(t, ql, `relation["landuse"="forest"]["name"]`)
	assert.Contains(t, ql, `relation["natural"="forest"]["name"]`)
	assert.Contains(t, ql, `relation["leisure"="park"]["name"]`)
	assert.Contains(t, ql, `way["boundary"="national_park"]`)
	assert.Contains(t, ql, `way["leisure"="park"]["name"]`)
	assert.Contains(t, ql, "out center;")
}

func floatPtr(f float64) *float64 { return &f }

func TestElementLocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		element Element
		wantLat float64
		wantLon float64
		wantOK  bool
	}{
		{
			name:    "center preferred",
			element: Element{Type: "way", Center: &LatLon{Lat: 40.1, Lon: -105.1}, Lat: floatPtr(39.0), Lon: floatPtr(-104.0)},
			wantLat: 40.1, wantLon: -105.1, wantOK: true,
		},
		{
			name:    "way with own coordinates",
			element: Element{Type: "way", Lat: floatPtr(40.2), Lon: floatPtr(-105.2)},
			wantLat: 40.2, wantLon: -105.2, wantOK: true,
		},
		{
			name:    "geometry centroid",
			element: Element{Type: "way", Geometry: []LatLon{{Lat: 40.0, Lon: -105.0}, {Lat: 40.0, Lon: -105.2}}},
			wantLat: 40.0, wantLon: -105.1, wantOK: true,
		},
		{
			name:    "single geometry point",
			element: Element{Type: "way", Geometry: []LatLon{{Lat: 40.3, Lon: -105.3}}},
			wantLat: 40.3, wantLon: -105.3, wantOK: true,
		},
		{
			name:    "nothing resolvable",
			element: Element{Type: "relation"},
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lat, lon, ok := tt.element.Location()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.wantLat, lat, 1e-6)
				assert.InDelta(t, tt.wantLon, lon, 1e-6)
			}
		})
	}
}
