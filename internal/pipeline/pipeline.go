// Package pipeline orchestrates one location resolution run: coordinate
// extraction, reverse geocoding, the nearby-area query, classification,
// ranking, and selection.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/locate-cli/internal/area"
	"github.com/sells-group/locate-cli/internal/config"
	"github.com/sells-group/locate-cli/internal/geo"
	"github.com/sells-group/locate-cli/internal/model"
	"github.com/sells-group/locate-cli/pkg/nominatim"
	"github.com/sells-group/locate-cli/pkg/overpass"
)

// Geocoder is the reverse-geocoding collaborator.
type Geocoder interface {
	Reverse(ctx context.Context, lat, lon float64) (*nominatim.ReverseResult, error)
}

// AreaSource is the spatial-query collaborator.
type AreaSource interface {
	NearbyOutdoorAreas(ctx context.Context, lat, lon float64, radiusKm int) ([]overpass.Element, error)
}

// Pipeline resolves activity coordinates into location context. Both
// network calls run sequentially; failures in either degrade the report
// rather than aborting the run.
type Pipeline struct {
	cfg      *config.Config
	geocoder Geocoder
	areas    AreaSource
	sleep    func(time.Duration)
}

// New creates a Pipeline with all dependencies.
func New(cfg *config.Config, gc Geocoder, as AreaSource) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		geocoder: gc,
		areas:    as,
		sleep:    time.Sleep,
	}
}

// Run resolves the location of one activity record. The only fatal error
// is a missing coordinate pair.
func (p *Pipeline) Run(ctx context.Context, activity *model.Activity) (*model.Report, error) {
	ext, err := activity.StartCoordinate()
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: extract coordinates")
	}

	switch ext.Source {
	case model.CoordinateSourceSegment:
		zap.L().Info("using coordinates from segment",
			zap.String("segment", ext.SegmentName),
		)
	default:
		zap.L().Info("using activity start coordinates (no segment coordinates available)")
	}

	report, err := p.Locate(ctx, ext.Coordinate)
	if err != nil {
		return nil, err
	}

	report.CoordinateSource = ext.Source
	report.SegmentName = ext.SegmentName
	return report, nil
}

// Locate resolves location context for a bare coordinate. It always
// returns a report; missing community info or an empty area list mean the
// corresponding service was unavailable or had nothing nearby.
func (p *Pipeline) Locate(ctx context.Context, coord geo.Coordinate) (*model.Report, error) {
	runID := uuid.New().String()
	log := zap.L().With(
		zap.String("run_id", runID),
		zap.Float64("lat", coord.Lat),
		zap.Float64("lon", coord.Lon),
	)
	log.Info("pipeline: resolving location")

	report := &model.Report{
		RunID:     runID,
		Latitude:  coord.Lat,
		Longitude: coord.Lon,
	}

	p.reverseGeocode(ctx, coord, report, log)

	// Courtesy pause toward the second service.
	if delay := p.cfg.Locate.CourtesyDelayMs; delay > 0 {
		p.sleep(time.Duration(delay) * time.Millisecond)
	}

	p.findOutdoorAreas(ctx, coord, report, log)

	if report.Selected != nil {
		log.Info("pipeline: location resolved",
			zap.String("name", report.Selected.Name),
			zap.String("type", string(report.Selected.Type)),
			zap.Float64("distance_km", report.Selected.DistanceKm),
		)
	} else {
		log.Info("pipeline: no outdoor areas found within search radius")
	}

	return report, nil
}

// reverseGeocode fills in community info, degrading to absent data when the
// geocoding service fails.
func (p *Pipeline) reverseGeocode(ctx context.Context, coord geo.Coordinate, report *model.Report, log *zap.Logger) {
	result, err := p.geocoder.Reverse(ctx, coord.Lat, coord.Lon)
	if err != nil {
		log.Warn("pipeline: geocoding unavailable, continuing without community info", zap.Error(err))
		return
	}

	report.DisplayName = result.DisplayName
	report.Community = &model.CommunityInfo{
		City:     result.Address.Locality(),
		County:   result.Address.County,
		State:    result.Address.State,
		Country:  result.Address.Country,
		Postcode: result.Address.Postcode,
	}
}

// findOutdoorAreas queries, classifies, ranks, and selects nearby outdoor
// areas, degrading to an empty list when the area service fails.
func (p *Pipeline) findOutdoorAreas(ctx context.Context, coord geo.Coordinate, report *model.Report, log *zap.Logger) {
	elements, err := p.areas.NearbyOutdoorAreas(ctx, coord.Lat, coord.Lon, p.cfg.Overpass.RadiusKm)
	if err != nil {
		log.Warn("pipeline: area query unavailable, continuing without outdoor areas", zap.Error(err))
		return
	}

	candidates := make([]model.Area, 0, len(elements))
	for _, e := range elements {
		if a, ok := area.Classify(e); ok {
			candidates = append(candidates, a)
		}
	}

	ranked := area.Rank(coord, candidates)
	report.Areas = ranked
	report.Selected = area.SelectMostLikely(ranked, p.cfg.Locate.PriorityMaxKm)

	log.Debug("pipeline: classified outdoor areas",
		zap.Int("raw_elements", len(elements)),
		zap.Int("candidates", len(candidates)),
	)
}
