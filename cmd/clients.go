package main

import (
	"github.com/sells-group/locate-cli/internal/config"
	"github.com/sells-group/locate-cli/internal/pipeline"
	"github.com/sells-group/locate-cli/pkg/nominatim"
	"github.com/sells-group/locate-cli/pkg/overpass"
)

// newGeocoder builds the Nominatim client from config.
func newGeocoder(cfg *config.Config) nominatim.Client {
	return nominatim.NewClient(
		nominatim.WithBaseURL(cfg.Nominatim.BaseURL),
		nominatim.WithUserAgent(cfg.Nominatim.UserAgent),
		nominatim.WithZoom(cfg.Nominatim.Zoom),
		nominatim.WithRateLimit(cfg.Nominatim.RateRPS),
	)
}

// newAreaSource builds the Overpass client from config.
func newAreaSource(cfg *config.Config) overpass.Client {
	return overpass.NewClient(
		overpass.WithBaseURL(cfg.Overpass.BaseURL),
		overpass.WithQueryTimeout(cfg.Overpass.TimeoutSecs),
	)
}

// newPipeline wires the full location resolution pipeline from config.
func newPipeline(cfg *config.Config) *pipeline.Pipeline {
	return pipeline.New(cfg, newGeocoder(cfg), newAreaSource(cfg))
}
