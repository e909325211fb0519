package routing_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/harsh15-create/real-unfoldindia-backend/internal/apperr"
	"github.com/harsh15-create/real-unfoldindia-backend/internal/domain/route"
	"github.com/harsh15-create/real-unfoldindia-backend/internal/routing"
)

const osrmRouteJSON = `{
	"distance": 280000,
	"duration": 14400,
	"geometry": {"type": "LineString", "coordinates": [[77.209, 28.6139], [75.7873, 26.9124]]},
	"legs": [{"steps": [
		{"distance": 250000, "duration": 12000, "name": "NH 48", "ref": "NH 48",
		 "maneuver": {"type": "depart", "modifier": "", "location": [77.209, 28.6139]}},
		{"distance": 30000, "duration": 2400, "name": "Tonk Road", "ref": "",
		 "maneuver": {"type": "arrive", "modifier": "left", "location": [75.7873, 26.9124]}}
	]}]
}`

func osrmServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "true", q.Get("alternatives"))
		assert.Equal(t, "true", q.Get("steps"))
		assert.Equal(t, "geojson", q.Get("geometries"))
		assert.Equal(t, "full", q.Get("overview"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func newClient(t *testing.T, baseURL string) *routing.Client {
	t.Helper()
	return routing.NewClient(baseURL, 2*time.Second, zap.NewNop())
}

var (
	delhi  = route.Coordinate{Lat: 28.6139, Lng: 77.2090}
	jaipur = route.Coordinate{Lat: 26.9124, Lng: 75.7873}
)

func TestAlternativesDecodesTypedCandidates(t *testing.T) {
	body := fmt.Sprintf(`{"code": "Ok", "routes": [%s]}`, osrmRouteJSON)
	srv := osrmServer(t, http.StatusOK, body)
	defer srv.Close()

	candidates, err := newClient(t, srv.URL).Alternatives(context.Background(), delhi, jaipur)
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	c := candidates[0]
	assert.Equal(t, 280000.0, c.Distance)
	assert.Equal(t, 14400.0, c.Duration)
	assert.Equal(t, "LineString", c.Geometry.Type)
	require.Len(t, c.Geometry.Coordinates, 2)

	steps := c.Steps()
	require.Len(t, steps, 2)
	assert.Equal(t, "NH 48", steps[0].Name)
	assert.Equal(t, "depart", steps[0].Maneuver.Type)
	assert.Equal(t, []float64{75.7873, 26.9124}, steps[1].Maneuver.Location)
}

func TestAlternativesCapsAtThree(t *testing.T) {
	routes := strings.Repeat(osrmRouteJSON+",", 4)
	body := fmt.Sprintf(`{"code": "Ok", "routes": [%s]}`, strings.TrimSuffix(routes, ","))
	srv := osrmServer(t, http.StatusOK, body)
	defer srv.Close()

	candidates, err := newClient(t, srv.URL).Alternatives(context.Background(), delhi, jaipur)
	require.NoError(t, err)
	assert.Len(t, candidates, 3)
}

func TestAlternativesNonOkCodeIsRoutingUnavailable(t *testing.T) {
	srv := osrmServer(t, http.StatusOK, `{"code": "NoRoute", "message": "Impossible route between points", "routes": []}`)
	defer srv.Close()

	_, err := newClient(t, srv.URL).Alternatives(context.Background(), delhi, jaipur)
	require.Error(t, err)
	assert.Equal(t, apperr.KindRoutingUnavailable, apperr.KindOf(err))
}

func TestAlternativesEmptyRoutesIsRoutingUnavailable(t *testing.T) {
	srv := osrmServer(t, http.StatusOK, `{"code": "Ok", "routes": []}`)
	defer srv.Close()

	_, err := newClient(t, srv.URL).Alternatives(context.Background(), delhi, jaipur)
	require.Error(t, err)
	assert.Equal(t, apperr.KindRoutingUnavailable, apperr.KindOf(err))
}

func TestAlternativesUpstreamStatusIsRoutingUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL).Alternatives(context.Background(), delhi, jaipur)
	require.Error(t, err)
	assert.Equal(t, apperr.KindRoutingUnavailable, apperr.KindOf(err))
}

func TestAlternativesTransportErrorIsRoutingUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := newClient(t, srv.URL).Alternatives(context.Background(), delhi, jaipur)
	require.Error(t, err)
	assert.Equal(t, apperr.KindRoutingUnavailable, apperr.KindOf(err))
}
