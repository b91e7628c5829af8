package server

import (
	"errors"
	"net/http"

	"github.com/andrei/hirescope/internal/barem"
	"github.com/andrei/hirescope/internal/catalog"
	"github.com/andrei/hirescope/internal/scoring"
)

// HTTPStatus maps the core packages' error types onto response codes.
// Upstream failures mirror the backend's status where it carries meaning;
// decode and transport failures surface as 502 because the backend, not this
// service, is at fault.
func HTTPStatus(err error) int {
	var (
		notFound  *catalog.NotFoundError
		sumErr    *barem.SumError
		upstream  *scoring.UpstreamError
		decodeErr *scoring.DecodeError
		reqErr    *scoring.RequestError
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &sumErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &upstream):
		return upstream.StatusCode
	case errors.As(err, &decodeErr), errors.As(err, &reqErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
