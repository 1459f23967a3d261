package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/mihuman/flight-route-finder/graphs"
	"github.com/mihuman/flight-route-finder/metrics"
	"github.com/mihuman/flight-route-finder/models"
	"github.com/mihuman/flight-route-finder/routing"
)

// Options configures a FlightsService. Zero budgets are valid limits, so
// callers that want the standard ones pass routing.DefaultBudgets().
type Options struct {
	Defaults routing.Budgets
	Timeout  time.Duration
	Metrics  *metrics.Search
}

// FlightsService resolves airport codes, runs budgeted route searches and
// assembles the response. It is safe for concurrent use.
type FlightsService struct {
	dataset  *graphs.Dataset
	engine   *routing.Engine[int64, routing.NodeState]
	defaults routing.Budgets
	timeout  time.Duration
	metrics  *metrics.Search

	// identical concurrent searches share one engine run
	inflight singleflight.Group
}

func NewFlightsService(dataset *graphs.Dataset, opts Options) *FlightsService {
	return &FlightsService{
		dataset:  dataset,
		engine:   routing.NewRouteEngine(dataset.Routes),
		defaults: opts.Defaults,
		timeout:  opts.Timeout,
		metrics:  opts.Metrics,
	}
}

// Budgets fills unset limits of b with the service defaults.
func (s *FlightsService) Budgets(b models.Budgets) routing.Budgets {
	resolved := s.defaults
	if b.MaxFlightHops != nil {
		resolved.MaxFlightHops = *b.MaxFlightHops
	}
	if b.MaxGroundSwitches != nil {
		resolved.MaxGroundSwitches = *b.MaxGroundSwitches
	}
	return resolved
}

// Find returns the cheapest route between the airports with codes from
// and to. Failures are *Error values carrying their HTTP status, except
// for context cancellation which is returned as is.
func (s *FlightsService) Find(ctx context.Context, from, to string, b models.Budgets) (*models.RoutingResult, error) {
	fromAp, ok := s.dataset.Airports.ByCode(from)
	if !ok {
		return nil, airportNotFound(from)
	}
	toAp, ok := s.dataset.Airports.ByCode(to)
	if !ok {
		return nil, airportNotFound(to)
	}

	budgets := s.Budgets(b)
	start := time.Now()
	result, err := s.search(ctx, fromAp.ID, toAp.ID, budgets)
	elapsed := time.Since(start)
	if err != nil {
		outcome := metrics.OutcomeError
		if errors.Is(err, ErrSearchTimeout) {
			outcome = metrics.OutcomeTimeout
		}
		s.metrics.ObserveSearch(outcome, elapsed)
		log.Printf("[%s] search %s -> %s failed after %s: %v", RequestID(ctx), from, to, elapsed, err)
		return nil, err
	}

	routed, err := s.buildResult(fromAp, toAp, result)
	switch {
	case errors.Is(err, ErrRouteNotFound):
		s.metrics.ObserveSearch(metrics.OutcomeNotFound, elapsed)
	case err != nil:
		s.metrics.ObserveSearch(metrics.OutcomeError, elapsed)
	default:
		s.metrics.ObserveSearch(metrics.OutcomeFound, elapsed)
	}
	if err != nil {
		log.Printf("[%s] search %s -> %s (hops=%d, switches=%d): %v",
			RequestID(ctx), from, to, budgets.MaxFlightHops, budgets.MaxGroundSwitches, err)
		return nil, err
	}

	log.Printf("[%s] search %s -> %s (hops=%d, switches=%d): %d segments, %.2f km in %s",
		RequestID(ctx), from, to, budgets.MaxFlightHops, budgets.MaxGroundSwitches,
		len(routed.Segments), routed.TotalDistance, elapsed)
	return routed, nil
}

// search runs the engine under the service timeout. On expiry the result
// is abandoned; the engine run itself finishes in the background.
func (s *FlightsService) search(ctx context.Context, from, to int64, b routing.Budgets) (routing.Result[int64], error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	key := fmt.Sprintf("%d:%d:%d:%d", from, to, b.MaxFlightHops, b.MaxGroundSwitches)
	ch := s.inflight.DoChan(key, func() (any, error) {
		return s.engine.Path(from, to, b), nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return routing.Result[int64]{}, res.Err
		}
		return res.Val.(routing.Result[int64]), nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return routing.Result[int64]{}, ErrSearchTimeout
		}
		return routing.Result[int64]{}, ctx.Err()
	}
}

func (s *FlightsService) buildResult(from, to models.Airport, result routing.Result[int64]) (*models.RoutingResult, error) {
	if len(result.Path) < 2 {
		return nil, ErrRouteNotFound
	}

	airports := make(map[int64]models.Airport, len(result.Path))
	for _, id := range result.Path {
		a, ok := s.dataset.Airports.ByID(id)
		if !ok {
			log.Printf("ERROR: airport %d on route has no metadata", id)
			return nil, ErrRetrieval
		}
		airports[id] = a
	}

	steps, err := routing.Segments(s.dataset.Routes, result.Path)
	if err != nil {
		log.Printf("ERROR: %v", err)
		return nil, ErrRetrieval
	}
	segments := make([]models.Segment, 0, len(steps))
	for _, step := range steps {
		segments = append(segments, models.Segment{
			From:     step.From,
			To:       step.To,
			Distance: step.Edge.Cost,
			Type:     step.Edge.Mode.String(),
		})
	}

	return &models.RoutingResult{
		Airports:      airports,
		From:          from.ID,
		To:            to.ID,
		Segments:      segments,
		TotalDistance: routing.Round2(result.Cost),
	}, nil
}

// Stats summarizes the loaded dataset.
func (s *FlightsService) Stats() models.GraphStats {
	byMode := make(map[string]int)
	for mode, n := range s.dataset.EdgesByMode() {
		byMode[mode.String()] = n
	}
	return models.GraphStats{
		Airports: s.dataset.Airports.Len(),
		Nodes:    s.dataset.Routes.Len(),
		Edges:    s.dataset.Routes.EdgeCount(),
		ByMode:   byMode,
	}
}
