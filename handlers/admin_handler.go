package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mihuman/flight-route-finder/services"
)

// AdminHandler serves operational endpoints on a separate listener.
type AdminHandler struct {
	flightsService *services.FlightsService
	gatherer       prometheus.Gatherer
}

func NewAdminHandler(flightsService *services.FlightsService, gatherer prometheus.Gatherer) *AdminHandler {
	return &AdminHandler{flightsService: flightsService, gatherer: gatherer}
}

func (h *AdminHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/healthz", h.Healthz).Methods("GET")
	router.HandleFunc("/graph/stats", h.GraphStats).Methods("GET")
	router.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})).Methods("GET")
}

func (h *AdminHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "ok",
	})
}

func (h *AdminHandler) GraphStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.flightsService.Stats())
}
