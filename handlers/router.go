package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mihuman/flight-route-finder/services"
)

type RouterConfig struct {
	LogFormat   string
	Origins     []string
	Credentials bool
}

// NewRouter builds the public API.
func NewRouter(cfg RouterConfig, flightsService *services.FlightsService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), Logger(cfg.LogFormat), CORS(cfg.Origins, cfg.Credentials))
	NewFlightsHandler(flightsService).RegisterRoutes(r)
	return r
}

// NewAdminRouter builds the metrics and health API.
func NewAdminRouter(flightsService *services.FlightsService, gatherer prometheus.Gatherer) *mux.Router {
	router := mux.NewRouter()
	NewAdminHandler(flightsService, gatherer).RegisterRoutes(router)
	return router
}
