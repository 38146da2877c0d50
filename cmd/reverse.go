package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var (
	reverseLat    float64
	reverseLon    float64
	reverseOutput string
)

var reverseCmd = &cobra.Command{
	Use:   "reverse",
	Short: "Reverse-geocode a coordinate",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := newGeocoder(cfg).Reverse(cmd.Context(), reverseLat, reverseLon)
		if err != nil {
			return eris.Wrap(err, "reverse geocode")
		}

		return writeOutput(os.Stdout, result, reverseOutput)
	},
}

func init() {
	reverseCmd.Flags().Float64Var(&reverseLat, "lat", 0, "latitude (required)")
	reverseCmd.Flags().Float64Var(&reverseLon, "lon", 0, "longitude (required)")
	reverseCmd.Flags().StringVarP(&reverseOutput, "output", "o", "json", "output format: json or yaml")
	_ = reverseCmd.MarkFlagRequired("lat")
	_ = reverseCmd.MarkFlagRequired("lon")
	rootCmd.AddCommand(reverseCmd)
}
