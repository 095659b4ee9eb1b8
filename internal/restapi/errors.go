package restapi

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/Briscoooe/irish-rail-rest-api/internal/irishrail"
	"github.com/Briscoooe/irish-rail-rest-api/internal/logging"
	"github.com/Briscoooe/irish-rail-rest-api/internal/models"
	"github.com/Briscoooe/irish-rail-rest-api/internal/xmlfeed"
)

// statusClientClosedRequest is recorded for requests abandoned by the client.
const statusClientClosedRequest = 499

func (api *RestAPI) logger(r *http.Request) *slog.Logger {
	return logging.FromContext(r.Context())
}

// invalidAPIKeyResponse sends a 401 Unauthorized response
func (api *RestAPI) invalidAPIKeyResponse(w http.ResponseWriter, r *http.Request) {
	response := models.NewErrorResponse(http.StatusUnauthorized, "permission denied")
	response.Version = 1
	api.sendStatus(w, r, http.StatusUnauthorized, response)
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(api.logger(r), "request failed", err, slog.String("path", r.URL.Path))
	api.sendStatus(w, r, http.StatusInternalServerError,
		models.NewErrorResponse(http.StatusInternalServerError, "internal server error"))
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}
	api.sendStatus(w, r, http.StatusBadRequest, response)
}

// feedErrorResponse maps a failed extractor call onto an HTTP status.
func (api *RestAPI) feedErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var (
		transportErr *irishrail.TransportError
		malformedErr *xmlfeed.MalformedDocumentError
		coercionErr  *xmlfeed.CoercionError
		netErr       net.Error
	)

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		logging.LogError(api.logger(r), "feed request timed out", err, slog.String("path", r.URL.Path))
		api.sendStatus(w, r, http.StatusGatewayTimeout,
			models.NewErrorResponse(http.StatusGatewayTimeout, "upstream feed timeout"))
	case errors.Is(err, context.Canceled):
		// Client went away; nobody is left to read a body.
		api.logger(r).Info("request cancelled", slog.String("path", r.URL.Path))
		w.WriteHeader(statusClientClosedRequest)
	case errors.Is(err, irishrail.ErrInvalidArgument):
		api.sendStatus(w, r, http.StatusBadRequest, models.NewErrorResponse(http.StatusBadRequest, err.Error()))
	case errors.As(err, &transportErr), errors.As(err, &malformedErr), errors.As(err, &coercionErr):
		logging.LogError(api.logger(r), "upstream feed error", err, slog.String("path", r.URL.Path))
		api.sendStatus(w, r, http.StatusBadGateway,
			models.NewErrorResponse(http.StatusBadGateway, "upstream feed error"))
	default:
		api.serverErrorResponse(w, r, err)
	}
}
