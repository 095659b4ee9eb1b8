package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractIDFromParams returns a path parameter such as a station or train
// code, without surrounding spaces or a trailing ".json".
func ExtractIDFromParams(r *http.Request, paramName string) string {
	params := httprouter.ParamsFromContext(r.Context())
	rawID := strings.TrimSpace(params.ByName(paramName))
	return strings.TrimSuffix(rawID, ".json")
}
