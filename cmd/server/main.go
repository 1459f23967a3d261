// Command server serves flight route searches over HTTP.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/mihuman/flight-route-finder/config"
	"github.com/mihuman/flight-route-finder/graphs"
	"github.com/mihuman/flight-route-finder/handlers"
	"github.com/mihuman/flight-route-finder/metrics"
	"github.com/mihuman/flight-route-finder/services"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Println("Loading routing data...")
	dataset, err := graphs.LoadDataset(cfg.DataDir, cfg.DataFormat)
	if err != nil {
		log.Fatalf("Failed to load required routing data: %v", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	searchMetrics := metrics.NewSearch(reg)
	searchMetrics.SetGraphEdges(dataset.EdgesByMode())

	flightsService := services.NewFlightsService(dataset, services.Options{
		Defaults: cfg.DefaultBudgets,
		Timeout:  cfg.SearchTimeout,
		Metrics:  searchMetrics,
	})
	log.Printf("Default budgets: %d flight hops, %d ground switches; search timeout %s",
		cfg.DefaultBudgets.MaxFlightHops, cfg.DefaultBudgets.MaxGroundSwitches, cfg.SearchTimeout)

	public := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: handlers.NewRouter(handlers.RouterConfig{
			LogFormat:   cfg.LogFormat,
			Origins:     cfg.Origins,
			Credentials: cfg.Credentials,
		}, flightsService),
		ReadHeaderTimeout: 5 * time.Second,
	}
	admin := &http.Server{
		Addr:              ":" + cfg.AdminPort,
		Handler:           handlers.NewAdminRouter(flightsService, reg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serve := func(name string, srv *http.Server) {
		log.Printf("%s server starting on %s", name, srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start %s server: %v", name, err)
		}
	}
	go serve("Flights", public)
	go serve("Admin", admin)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, srv := range []*http.Server{public, admin} {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown of %s: %v", srv.Addr, err)
		}
	}
	log.Println("Server stopped")
}
