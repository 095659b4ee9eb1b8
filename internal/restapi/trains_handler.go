package restapi

import (
	"net/http"

	"github.com/Briscoooe/irish-rail-rest-api/internal/models"
	"github.com/Briscoooe/irish-rail-rest-api/internal/utils"
)

func (api *RestAPI) listTrainsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if ctx.Err() != nil {
		api.feedErrorResponse(w, r, ctx.Err())
		return
	}

	trainType, fieldErrors := utils.ParseStationTypeParam(r.URL.Query(), "type", nil)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	trains, err := api.Feed.ListTrains(ctx, trainType)
	if err != nil {
		api.feedErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewListResponse(trains))
}

func (api *RestAPI) trainMovementsHandler(w http.ResponseWriter, r *http.Request) {
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

	date, fieldErrors := utils.ParseDateParam(r.URL.Query(), "date", fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	movements, err := api.Feed.GetTrainMovements(ctx, code, date)
	if err != nil {
		api.feedErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewListResponse(movements))
}
