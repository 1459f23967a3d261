package services

import (
	"fmt"
	"net/http"
)

// Error is a failure with the HTTP status it should be reported with.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	ErrRouteNotFound = &Error{Status: http.StatusBadRequest, Message: "Cannot find route."}
	ErrRetrieval     = &Error{Status: http.StatusInternalServerError, Message: "There was a problem retrieving results."}
	ErrSearchTimeout = &Error{Status: http.StatusGatewayTimeout, Message: "Route search timed out."}
)

func airportNotFound(code string) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("Cannot find airport with the code '%s'.", code),
	}
}
