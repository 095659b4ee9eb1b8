package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/stations", validateAPIKey(api, api.listStationsHandler))
	router.Handler(http.MethodGet, "/stations/:code", validateAPIKey(api, api.stationTimetableHandler))
	router.Handler(http.MethodGet, "/search/stations", validateAPIKey(api, api.searchStationsHandler))
	router.Handler(http.MethodGet, "/trains", validateAPIKey(api, api.listTrainsHandler))
	router.Handler(http.MethodGet, "/trains/:code/movements", validateAPIKey(api, api.trainMovementsHandler))
	router.HandlerFunc(http.MethodGet, "/healthz", api.healthHandler)

	router.NotFound = http.HandlerFunc(api.sendNotFound)
}

// Handler returns the routed API wrapped in the middleware chain. Requests
// pass through logging, security headers, CORS, rate limiting and
// compression, in that order.
func (api *RestAPI) Handler() http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)

	var handler http.Handler = router
	handler = CompressionMiddleware(handler)
	if api.rateLimiter != nil {
		handler = api.rateLimiter.Handler(handler)
	}
	handler = NewCORSMiddleware(api.Config.AllowedOrigins)(handler)
	handler = api.WithSecurityHeaders(handler)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	return handler
}
