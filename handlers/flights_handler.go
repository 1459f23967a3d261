package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/mihuman/flight-route-finder/models"
	"github.com/mihuman/flight-route-finder/services"
)

const msgMissingAirports = "'from' and/or 'to' airport not defined."

// query parameter names by FindQuery field
var queryParams = map[string]string{
	"MaxHops":     "max_hops",
	"MaxStops":    "max_stops",
	"MaxSwitches": "max_switches",
}

type FlightsHandler struct {
	flightsService *services.FlightsService
}

func NewFlightsHandler(flightsService *services.FlightsService) *FlightsHandler {
	return &FlightsHandler{flightsService: flightsService}
}

func (h *FlightsHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.Index)
	r.GET("/health", h.Health)

	flights := r.Group("/flights")
	flights.GET("/find", h.Find)
	flights.GET("/find/geojson", h.FindGeoJSON)
}

func (h *FlightsHandler) Index(c *gin.Context) {
	c.Status(http.StatusOK)
}

func (h *FlightsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "airports": h.flightsService.Stats().Airports})
}

// Find serves GET /flights/find.
func (h *FlightsHandler) Find(c *gin.Context) {
	result, ok := h.find(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.RoutingResponse{Result: *result})
}

// FindGeoJSON serves the same search as a GeoJSON FeatureCollection.
func (h *FlightsHandler) FindGeoJSON(c *gin.Context) {
	result, ok := h.find(c)
	if !ok {
		return
	}
	raw, err := services.FeatureCollection(result).MarshalJSON()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/geo+json", raw)
}

func (h *FlightsHandler) find(c *gin.Context) (*models.RoutingResult, bool) {
	var q models.FindQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, validationError(err))
		return nil, false
	}
	budgets, err := parseBudgets(q)
	if err != nil {
		abortWithError(c, err)
		return nil, false
	}

	ctx := services.WithRequestID(c.Request.Context(), c.GetString(requestIDKey))
	result, err := h.flightsService.Find(ctx, q.From, q.To, budgets)
	if err != nil {
		abortWithError(c, err)
		return nil, false
	}
	return result, true
}

func invalidParam(name string) *services.Error {
	return &services.Error{
		Status:  http.StatusUnprocessableEntity,
		Message: fmt.Sprintf("'%s' has to be a number equal to or greater than zero.", name),
	}
}

// validationError maps the first failed FindQuery constraint to its
// client-facing message.
func validationError(err error) *services.Error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if name, ok := queryParams[verrs[0].StructField()]; ok {
			return invalidParam(name)
		}
	}
	return &services.Error{Status: http.StatusUnprocessableEntity, Message: msgMissingAirports}
}

// parseBudgets resolves the search limits of q. max_hops counts flights;
// the legacy max_stops counts layovers and allows one more flight than
// its value. max_hops wins when both are set.
func parseBudgets(q models.FindQuery) (models.Budgets, error) {
	var b models.Budgets

	if q.MaxHops != "" {
		n, err := strconv.Atoi(q.MaxHops)
		if err != nil || n < 0 {
			return b, invalidParam("max_hops")
		}
		b.MaxFlightHops = &n
	}
	if q.MaxStops != "" {
		n, err := strconv.Atoi(q.MaxStops)
		if err != nil || n < 0 {
			return b, invalidParam("max_stops")
		}
		if b.MaxFlightHops == nil {
			hops := n + 1
			b.MaxFlightHops = &hops
		}
	}
	if q.MaxSwitches != "" {
		n, err := strconv.Atoi(q.MaxSwitches)
		if err != nil || n < 0 {
			return b, invalidParam("max_switches")
		}
		b.MaxGroundSwitches = &n
	}
	return b, nil
}

func abortWithError(c *gin.Context, err error) {
	var svcErr *services.Error
	switch {
	case errors.As(err, &svcErr):
		c.AbortWithStatusJSON(svcErr.Status, models.ApiError{Error: svcErr.Message})
	case errors.Is(err, context.Canceled):
		c.Abort()
	default:
		log.Printf("ERROR: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ApiError{Error: services.ErrRetrieval.Message})
	}
}
