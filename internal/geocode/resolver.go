package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/harsh15-create/real-unfoldindia-backend/internal/apperr"
	"github.com/harsh15-create/real-unfoldindia-backend/internal/domain/route"
)

const userAgent = "UnfoldIndia/1.0 (travel-app)"

// Resolver maps free-text place names to coordinates via Nominatim, backed
// by a process-wide cache seeded with well-known Indian cities. Cache
// entries never expire; first-time lookups of the same name are deduplicated
// per key.
type Resolver struct {
	baseURL string
	client  *http.Client
	cache   *gocache.Cache
	group   singleflight.Group
	logger  *zap.Logger
}

// NewResolver creates a Resolver with a seeded cache and a fixed per-call timeout.
func NewResolver(baseURL string, timeout time.Duration, logger *zap.Logger) *Resolver {
	c := gocache.New(gocache.NoExpiration, 0)
	for name, coord := range seedCities {
		c.Set(name, coord, gocache.NoExpiration)
	}
	return &Resolver{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		cache:   c,
		logger:  logger,
	}
}

// Resolve converts a place name to coordinates. The cache is keyed on the
// trimmed, lower-cased name; a hit returns without any external call. Any
// transport or empty-result failure surfaces as a place-not-found error and
// is never retried.
func (r *Resolver) Resolve(ctx context.Context, name string) (route.Coordinate, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	if v, ok := r.cache.Get(key); ok {
		return v.(route.Coordinate), nil
	}

	v, err, _ := r.group.Do(key, func() (interface{}, error) {
		// A concurrent caller may have populated the key while this one
		// waited its turn.
		if v, ok := r.cache.Get(key); ok {
			return v, nil
		}
		coord, err := r.lookup(ctx, name)
		if err != nil {
			return nil, err
		}
		r.cache.Set(key, coord, gocache.NoExpiration)
		return coord, nil
	})
	if err != nil {
		return route.Coordinate{}, err
	}
	return v.(route.Coordinate), nil
}

// nominatimResult is one match from the Nominatim search endpoint. Nominatim
// serializes coordinates as strings.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (r *Resolver) lookup(ctx context.Context, name string) (route.Coordinate, error) {
	params := url.Values{}
	params.Set("q", name+", India")
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("countrycodes", "in")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return route.Coordinate{}, apperr.NewPlaceNotFound(name, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Warn("geocoding request failed", zap.String("place", name), zap.Error(err))
		return route.Coordinate{}, apperr.NewPlaceNotFound(name, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		r.logger.Warn("geocoding returned non-success status",
			zap.String("place", name),
			zap.Int("status", resp.StatusCode),
		)
		return route.Coordinate{}, apperr.NewPlaceNotFound(name, fmt.Errorf("nominatim status %d", resp.StatusCode))
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return route.Coordinate{}, apperr.NewPlaceNotFound(name, err)
	}
	if len(results) == 0 {
		return route.Coordinate{}, apperr.NewPlaceNotFound(name, nil)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return route.Coordinate{}, apperr.NewPlaceNotFound(name, err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return route.Coordinate{}, apperr.NewPlaceNotFound(name, err)
	}

	return route.Coordinate{Lat: lat, Lng: lng}, nil
}
