package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/harsh15-create/real-unfoldindia-backend/internal/apperr"
	"github.com/harsh15-create/real-unfoldindia-backend/internal/domain/route"
)

// maxAlternatives caps the number of candidates considered per request.
const maxAlternatives = 3

// Client fetches alternative driving routes from an OSRM instance. A single
// failed call is terminal for the request; no retries.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewClient creates a Client with a fixed per-call timeout.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// osrmResponse mirrors the subset of the OSRM route response the pipeline
// consumes. Typed once here; nothing downstream sees raw payloads.
type osrmResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Routes  []osrmRoute `json:"routes"`
}

type osrmRoute struct {
	Distance float64        `json:"distance"`
	Duration float64        `json:"duration"`
	Legs     []osrmLeg      `json:"legs"`
	Geometry route.Geometry `json:"geometry"`
}

type osrmLeg struct {
	Steps []route.Step `json:"steps"`
}

// Alternatives requests up to three alternative routes with full geometry
// and per-step maneuvers. Transport errors, non-success statuses, and empty
// route sets all surface as routing-unavailable.
func (c *Client) Alternatives(ctx context.Context, from, to route.Coordinate) ([]route.Candidate, error) {
	// OSRM takes coordinates in lng,lat order.
	url := fmt.Sprintf("%s/%f,%f;%f,%f?alternatives=true&overview=full&geometries=geojson&steps=true",
		c.baseURL, from.Lng, from.Lat, to.Lng, to.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperr.NewRoutingUnavailable("failed to build routing request", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("routing request failed", zap.Error(err))
		return nil, apperr.NewRoutingUnavailable("routing service unreachable", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("routing returned non-success status", zap.Int("status", resp.StatusCode))
		return nil, apperr.NewRoutingUnavailable(
			fmt.Sprintf("routing service returned status %d", resp.StatusCode), nil)
	}

	var body osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, apperr.NewRoutingUnavailable("failed to decode routing response", err)
	}

	if body.Code != "Ok" {
		msg := body.Message
		if msg == "" {
			msg = "unknown error"
		}
		return nil, apperr.NewRoutingUnavailable("routing error: "+msg, nil)
	}
	if len(body.Routes) == 0 {
		return nil, apperr.NewRoutingUnavailable("no routes found between these locations", nil)
	}

	routes := body.Routes
	if len(routes) > maxAlternatives {
		routes = routes[:maxAlternatives]
	}

	candidates := make([]route.Candidate, len(routes))
	for i, r := range routes {
		legs := make([]route.Leg, len(r.Legs))
		for j, leg := range r.Legs {
			legs[j] = route.Leg{Steps: leg.Steps}
		}
		geometry := r.Geometry
		if geometry.Type == "" {
			geometry = route.Geometry{Type: "LineString", Coordinates: [][]float64{}}
		}
		candidates[i] = route.Candidate{
			Distance: r.Distance,
			Duration: r.Duration,
			Legs:     legs,
			Geometry: geometry,
		}
	}
	return candidates, nil
}
