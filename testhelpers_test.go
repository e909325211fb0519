//go:build integration

package main_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/harsh15-create/real-unfoldindia-backend/internal/application"
	"github.com/harsh15-create/real-unfoldindia-backend/internal/chat"
	"github.com/harsh15-create/real-unfoldindia-backend/internal/geocode"
	"github.com/harsh15-create/real-unfoldindia-backend/internal/handler"
	"github.com/harsh15-create/real-unfoldindia-backend/internal/middleware"
	"github.com/harsh15-create/real-unfoldindia-backend/internal/routing"
)

// upstreams holds fake external collaborators.
type upstreams struct {
	Nominatim *httptest.Server
	OSRM      *httptest.Server
	Groq      *httptest.Server
	Cleanup   func()
}

// setupUpstreams starts fake Nominatim, OSRM, and Groq endpoints serving
// canned happy-path responses.
func setupUpstreams(t *testing.T) *upstreams {
	t.Helper()

	nominatim := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"lat": "21.2514", "lon": "81.6296"}]`)
	}))

	osrm := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, osrmHappyResponse)
	}))

	groq := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices": [{"message": {"content": "Start early to beat the traffic."}}]}`)
	}))

	return &upstreams{
		Nominatim: nominatim,
		OSRM:      osrm,
		Groq:      groq,
		Cleanup: func() {
			nominatim.Close()
			osrm.Close()
			groq.Close()
		},
	}
}

// setupEngine wires the same component graph as cmd/server against the given
// upstream endpoints.
func setupEngine(t *testing.T, u *upstreams) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()

	resolver := geocode.NewResolver(u.Nominatim.URL, 2*time.Second, log)
	router := routing.NewClient(u.OSRM.URL, 2*time.Second, log)
	chatClient := chat.NewClient("test-key", u.Groq.URL, 2*time.Second, log)

	routeService := application.NewRouteService(resolver, router, log)

	engine := gin.New()
	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS([]string{"*"}))
	engine.Use(middleware.SecurityHeaders())

	handler.NewHealthHandler("unfoldindia-backend").RegisterRoutes(engine)
	handler.NewRouteHandler(routeService).RegisterRoutes(&engine.RouterGroup)
	handler.NewChatHandler(chatClient).RegisterRoutes(&engine.RouterGroup)

	return engine
}

// osrmHappyResponse carries two alternatives: a slower local-road route first
// and a highway-heavy route second, so ranking is observable end to end.
const osrmHappyResponse = `{
	"code": "Ok",
	"routes": [
		{
			"distance": 120000,
			"duration": 5400,
			"geometry": {"type": "LineString", "coordinates": [[81.6296, 21.2514], [79.0882, 21.1458]]},
			"legs": [{"steps": [
				{"distance": 20000, "duration": 1800, "name": "Ring Road", "ref": "",
				 "maneuver": {"type": "depart", "modifier": "", "location": [81.6296, 21.2514]}},
				{"distance": 60000, "duration": 1800, "name": "Old Dhamtari Road", "ref": "",
				 "maneuver": {"type": "turn", "modifier": "left", "location": [81.3, 21.0]}},
				{"distance": 40000, "duration": 1800, "name": "Main Road", "ref": "",
				 "maneuver": {"type": "arrive", "modifier": "", "location": [79.0882, 21.1458]}}
			]}]
		},
		{
			"distance": 100000,
			"duration": 3600,
			"geometry": {"type": "LineString", "coordinates": [[81.6296, 21.2514], [79.0882, 21.1458]]},
			"legs": [{"steps": [
				{"distance": 80000, "duration": 2700, "name": "NH 53", "ref": "NH 53",
				 "maneuver": {"type": "depart", "modifier": "", "location": [81.6296, 21.2514]}},
				{"distance": 20000, "duration": 900, "name": "Station Road", "ref": "",
				 "maneuver": {"type": "arrive", "modifier": "", "location": [79.0882, 21.1458]}}
			]}]
		}
	]
}`
