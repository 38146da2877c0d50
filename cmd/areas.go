package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/locate-cli/internal/area"
	"github.com/sells-group/locate-cli/internal/geo"
	"github.com/sells-group/locate-cli/internal/model"
)

var (
	areasLat    float64
	areasLon    float64
	areasRadius int
	areasOutput string
)

var areasCmd = &cobra.Command{
	Use:   "areas",
	Short: "List nearby outdoor areas for a coordinate",
	Long:  "Queries named parks, forests, and protected areas around a coordinate and lists them classified and sorted by distance.",
	RunE: func(cmd *cobra.Command, args []string) error {
		radius := areasRadius
		if radius == 0 {
			radius = cfg.Overpass.RadiusKm
		}

		elements, err := newAreaSource(cfg).NearbyOutdoorAreas(cmd.Context(), areasLat, areasLon, radius)
		if err != nil {
			return eris.Wrap(err, "query outdoor areas")
		}

		candidates := make([]model.Area, 0, len(elements))
		for _, e := range elements {
			if a, ok := area.Classify(e); ok {
				candidates = append(candidates, a)
			}
		}

		ranked := area.Rank(geo.Coordinate{Lat: areasLat, Lon: areasLon}, candidates)
		return writeOutput(os.Stdout, ranked, areasOutput)
	},
}

func init() {
	areasCmd.Flags().Float64Var(&areasLat, "lat", 0, "latitude (required)")
	areasCmd.Flags().Float64Var(&areasLon, "lon", 0, "longitude (required)")
	areasCmd.Flags().IntVar(&areasRadius, "radius", 0, "search radius in km (default from config)")
	areasCmd.Flags().StringVarP(&areasOutput, "output", "o", "json", "output format: json or yaml")
	_ = areasCmd.MarkFlagRequired("lat")
	_ = areasCmd.MarkFlagRequired("lon")
	rootCmd.AddCommand(areasCmd)
}
