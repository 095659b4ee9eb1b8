package restapi

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Briscoooe/irish-rail-rest-api/internal/logging"
	"github.com/Briscoooe/irish-rail-rest-api/internal/models"
)

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	api.sendStatus(w, r, http.StatusOK, response)
}

// sendStatus encodes body before writing the header, so a body that cannot be
// encoded turns into a 500 instead of a truncated response.
func (api *RestAPI) sendStatus(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		logging.LogError(api.logger(r), "failed to encode response", err, slog.Int("status", status))
		status = http.StatusInternalServerError
		buf.Reset()
		_ = json.NewEncoder(&buf).Encode(models.NewErrorResponse(status, "internal server error"))
	}

	setJSONResponseType(w)
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		api.logger(r).Debug("failed to write response", slog.String("error", err.Error()))
	}
}

func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request) {
	api.sendStatus(w, r, http.StatusNotFound, models.NewErrorResponse(http.StatusNotFound, "resource not found"))
}

func setJSONResponseType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
}
