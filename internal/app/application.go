package app

import (
	"context"
	"log/slog"

	"github.com/Briscoooe/irish-rail-rest-api/internal/appconf"
	"github.com/Briscoooe/irish-rail-rest-api/internal/models"
	"github.com/Briscoooe/irish-rail-rest-api/internal/xmlfeed"
)

// Feed is the realtime rail feed as seen by the HTTP handlers.
// *irishrail.Client implements it.
type Feed interface {
	ListStations(ctx context.Context, stationType models.StationType) ([]models.Station, error)
	SearchStations(ctx context.Context, text string) ([]models.StationSearchResult, error)
	GetStationTimetable(ctx context.Context, stationCode string, numMins int) ([]models.StationTimetableItem, error)
	ListTrains(ctx context.Context, trainType models.StationType) ([]models.Train, error)
	GetTrainMovements(ctx context.Context, trainCode string, date xmlfeed.Date) ([]models.TrainMovement, error)
}

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config appconf.Config
	Logger *slog.Logger
	Feed   Feed
}
