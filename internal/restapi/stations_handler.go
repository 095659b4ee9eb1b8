package restapi

import (
	"net/http"

	"github.com/Briscoooe/irish-rail-rest-api/internal/irishrail"
	"github.com/Briscoooe/irish-rail-rest-api/internal/models"
	"github.com/Briscoooe/irish-rail-rest-api/internal/utils"
)

func (api *RestAPI) listStationsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Check if context is already cancelled
	if ctx.Err() != nil {
		api.feedErrorResponse(w, r, ctx.Err())
		return
	}

	stationType, fieldErrors := utils.ParseStationTypeParam(r.URL.Query(), "type", nil)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	stations, err := api.Feed.ListStations(ctx, stationType)
	if err != nil {
		api.feedErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewListResponse(stations))
}

func (api *RestAPI) searchStationsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if ctx.Err() != nil {
		api.feedErrorResponse(w, r, ctx.Err())
		return
	}

	text, err := utils.ValidateAndSanitizeQuery(r.URL.Query().Get("text"))
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"text": {err.Error()}})
		return
	}

	results, err := api.Feed.SearchStations(ctx, text)
	if err != nil {
		api.feedErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewListResponse(results))
}

func (api *RestAPI) stationTimetableHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if ctx.Err() != nil {
		api.feedErrorResponse(w, r, ctx.Err())
		return
	}

	fieldErrors := make(map[string][]string)

	code := utils.ExtractIDFromParams(r, "code")
	if err := utils.ValidateID(code); err != nil {
		fieldErrors["code"] = append(fieldErrors["code"], err.Error())
	}

	numMins, fieldErrors := utils.ParseIntParam(r.URL.Query(), "num_mins",
		irishrail.MaxNumMins, irishrail.MinNumMins, irishrail.MaxNumMins, fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	timetable, err := api.Feed.GetStationTimetable(ctx, code, numMins)
	if err != nil {
		api.feedErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewListResponse(timetable))
}
