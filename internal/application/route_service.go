package application

import (
	"context"
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/harsh15-create/real-unfoldindia-backend/internal/domain/route"
)

// PlaceResolver converts a free-text place name to coordinates.
type PlaceResolver interface {
	Resolve(ctx context.Context, name string) (route.Coordinate, error)
}

// RouteProvider fetches alternative routes between two coordinates.
type RouteProvider interface {
	Alternatives(ctx context.Context, from, to route.Coordinate) ([]route.Candidate, error)
}

// RouteSummaryDTO is the compact distance/duration summary of one route.
type RouteSummaryDTO struct {
	DistanceKm    float64 `json:"distance_km"`
	DurationHours float64 `json:"duration_hours"`
}

// BreakdownDTO exposes the safety metrics and penalty adjustments behind a score.
type BreakdownDTO struct {
	HighwayRatio             float64            `json:"highway_ratio"`
	TurnDensity              float64            `json:"turn_density"`
	LongestIsolatedSegmentKm float64            `json:"longest_isolated_segment_km"`
	TrafficLevel             route.TrafficLevel `json:"traffic_level"`
	Penalties                route.Penalties    `json:"penalties"`
}

// RouteDTO is the response representation of one scored, ranked route.
type RouteDTO struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	DistanceKm      float64            `json:"distance_km"`
	DurationMinutes float64            `json:"duration_minutes"`
	SafetyScore     float64            `json:"safety_score"`
	RoadSummary     string             `json:"road_summary"`
	TrafficLevel    route.TrafficLevel `json:"traffic_level"`
	RoadQuality     route.RoadQuality  `json:"road_quality"`
	Geometry        route.Geometry     `json:"geometry"`
	Steps           []route.Step       `json:"steps"`
	RouteSummary    RouteSummaryDTO    `json:"route_summary"`
	Breakdown       BreakdownDTO       `json:"breakdown"`
}

// RouteResult is the full response for one route-planning request.
type RouteResult struct {
	Routes            []RouteDTO       `json:"routes"`
	OriginCoords      route.Coordinate `json:"origin_coords"`
	DestinationCoords route.Coordinate `json:"destination_coords"`
	Status            string           `json:"status"`
	Error             *string          `json:"error"`
}

// RouteService orchestrates the route-safety pipeline: place resolution,
// alternative retrieval, per-candidate scoring, ranking, and assembly.
type RouteService struct {
	resolver PlaceResolver
	provider RouteProvider
	logger   *zap.Logger
}

// NewRouteService creates a new RouteService.
func NewRouteService(resolver PlaceResolver, provider RouteProvider, logger *zap.Logger) *RouteService {
	return &RouteService{
		resolver: resolver,
		provider: provider,
		logger:   logger,
	}
}

// PlanRoutes resolves both endpoints, fetches up to three alternatives,
// scores each independently, and returns them ranked by safety score
// descending with positional labels. Each stage fails fast with its own
// error kind; no stage is retried and no partial result is returned.
func (s *RouteService) PlanRoutes(ctx context.Context, origin, destination string, mode route.Mode) (*RouteResult, error) {
	from, err := s.resolver.Resolve(ctx, origin)
	if err != nil {
		return nil, err
	}
	to, err := s.resolver.Resolve(ctx, destination)
	if err != nil {
		return nil, err
	}

	candidates, err := s.provider.Alternatives(ctx, from, to)
	if err != nil {
		return nil, err
	}

	routes := make([]RouteDTO, len(candidates))
	for i, c := range candidates {
		routes[i] = toRouteDTO(i, c, route.Score(c, mode))
	}
	rankRoutes(routes)

	s.logger.Info("planned routes",
		zap.String("origin", origin),
		zap.String("destination", destination),
		zap.String("mode", mode.String()),
		zap.Int("alternatives", len(routes)),
		zap.Float64("best_score", routes[0].SafetyScore),
	)

	return &RouteResult{
		Routes:            routes,
		OriginCoords:      from,
		DestinationCoords: to,
		Status:            "success",
	}, nil
}

// rankRoutes sorts by safety score descending (stable, so equal scores keep
// provider order) and assigns positional labels.
func rankRoutes(routes []RouteDTO) {
	sort.SliceStable(routes, func(i, j int) bool {
		return routes[i].SafetyScore > routes[j].SafetyScore
	})
	for i := range routes {
		routes[i].Name = routeLabel(i)
	}
}

var routeLabels = [...]string{"Recommended Route", "Scenic Route", "Shortest Route"}

// routeLabel names a route by its rank position.
func routeLabel(position int) string {
	if position < len(routeLabels) {
		return routeLabels[position]
	}
	return fmt.Sprintf("Route %d", position+1)
}

// toRouteDTO assembles the response view of one scored candidate. IDs follow
// provider order, before ranking.
func toRouteDTO(index int, c route.Candidate, a route.Assessment) RouteDTO {
	return RouteDTO{
		ID:              fmt.Sprintf("route_%d", index+1),
		DistanceKm:      a.DistanceKm,
		DurationMinutes: math.Round(c.Duration / 60),
		SafetyScore:     a.Score,
		RoadSummary:     a.DominantRoad,
		TrafficLevel:    a.Traffic,
		RoadQuality:     a.Quality,
		Geometry:        c.Geometry,
		Steps:           navigationSteps(c),
		RouteSummary: RouteSummaryDTO{
			DistanceKm:    a.DistanceKm,
			DurationHours: a.DurationHours,
		},
		Breakdown: BreakdownDTO{
			HighwayRatio:             a.HighwayRatio,
			TurnDensity:              a.TurnDensity,
			LongestIsolatedSegmentKm: a.LongestIsolatedKm,
			TrafficLevel:             a.Traffic,
			Penalties:                a.Penalties,
		},
	}
}

// navigationSteps projects the maneuver steps for turn-by-turn display,
// normalizing nil slices so the JSON stays array-valued.
func navigationSteps(c route.Candidate) []route.Step {
	steps := c.Steps()
	if steps == nil {
		return []route.Step{}
	}
	for i := range steps {
		if steps[i].Maneuver.Location == nil {
			steps[i].Maneuver.Location = []float64{}
		}
	}
	return steps
}
