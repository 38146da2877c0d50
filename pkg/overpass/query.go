package overpass

import (
	"fmt"
	"strings"
)

// outdoorSelectors are the tag filters used to find named outdoor
// recreation areas. Each is queried as both a relation and a way.
var outdoorSelectors = []string{
	`["boundary"="national_park"]`,
	`["boundary"="protected_area"]`,
	`["leisure"="nature_reserve"]`,
	`["landuse"="forest"]["name"]`,
	`["natural"="forest"]["name"]`,
	`["leisure"="park"]["name"]`,
}

// OutdoorAreasQuery builds the Overpass QL query that finds parks, forests,
// and protected areas within radiusKm of the given coordinate. Results
// carry a server-computed center point.
func OutdoorAreasQuery(lat, lon float64, radiusKm int, timeoutSecs int) string {
	radiusM := radiusKm * 1000

	var b strings.Builder
	fmt.Fprintf(&b, "[out:json][timeout:%d];\n(\n", timeoutSecs)
	for _, kind := range []string{"relation", "way"} {
		for _, sel := range outdoorSelectors {
			fmt.Fprintf(&b, "  %s%s(around:%d,%f,%f);\n", kind, sel, radiusM, lat, lon)
		}
	}
	b.WriteString(");\nout center;\n")

	return b.String()
}
