package irishrail

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Briscoooe/irish-rail-rest-api/internal/models"
	"github.com/Briscoooe/irish-rail-rest-api/internal/xmlfeed"
)

// Bounds of the timetable look-ahead window, in minutes.
const (
	MinNumMins = 5
	MaxNumMins = 90
)

var ErrInvalidArgument = errors.New("invalid argument")

// ListStations returns every station of the given type sorted by name.
func (c *Client) ListStations(ctx context.Context, stationType models.StationType) ([]models.Station, error) {
	params := url.Values{"StationType": {stationType.Code()}}
	records, err := c.records(ctx, "getAllStationsXML_WithStationType", params, stationTable)
	if err != nil {
		return nil, err
	}

	stations, err := decodeAll(records, decodeStation)
	if err != nil {
		return nil, err
	}
	sortByName(stations, func(s models.Station) *string { return s.Name })
	return stations, nil
}

// SearchStations returns the stations whose name contains text, sorted by name.
func (c *Client) SearchStations(ctx context.Context, text string) ([]models.StationSearchResult, error) {
	params := url.Values{"StationText": {text}}
	records, err := c.records(ctx, "getStationsFilterXML", params, stationSearchTable)
	if err != nil {
		return nil, err
	}

	results, err := decodeAll(records, func(dec *xmlfeed.RecordDecoder) models.StationSearchResult {
		return models.StationSearchResult{
			Name: dec.Text("name"),
			Code: dec.Text("code"),
		}
	})
	if err != nil {
		return nil, err
	}
	sortByName(results, func(r models.StationSearchResult) *string { return r.Name })
	return results, nil
}

// GetStationTimetable returns the trains due at a station in the next
// numMins minutes, in feed order.
func (c *Client) GetStationTimetable(ctx context.Context, stationCode string, numMins int) ([]models.StationTimetableItem, error) {
	if numMins < MinNumMins || numMins > MaxNumMins {
		return nil, fmt.Errorf("%w: num_mins must be between %d and %d, got %d", ErrInvalidArgument, MinNumMins, MaxNumMins, numMins)
	}

	params := url.Values{
		"StationCode": {stationCode},
		"NumMins":     {strconv.Itoa(numMins)},
	}
	records, err := c.records(ctx, "getStationDataByCodeXML_WithNumMins", params, timetableTable)
	if err != nil {
		return nil, err
	}
	return decodeAll(records, decodeTimetableItem)
}

func decodeStation(dec *xmlfeed.RecordDecoder) models.Station {
	return models.Station{
		Name:      dec.Text("name"),
		Alias:     dec.Text("alias"),
		Latitude:  dec.Decimal("latitude"),
		Longitude: dec.Decimal("longitude"),
		Code:      dec.Text("code"),
		ID:        dec.Text("id"),
	}
}

func decodeTimetableItem(dec *xmlfeed.RecordDecoder) models.StationTimetableItem {
	return models.StationTimetableItem{
		TrainCode:       dec.Text("train_code"),
		StationFullName: dec.Text("station_full_name"),
		StationCode:     dec.Text("station_code"),
		QueryTime:       dec.TimeOfDay("query_time", xmlfeed.HourMinuteSecond),
		TrainDate:       dec.Date("train_date", xmlfeed.DayMonthYear),
		Origin:          dec.Text("origin"),
		Destination:     dec.Text("destination"),
		OriginTime:      dec.TimeOfDay("origin_time", xmlfeed.HourMinute),
		DestinationTime: dec.TimeOfDay("destination_time", xmlfeed.HourMinute),
		Status:          dec.Text("status"),
		LastLocation:    dec.Text("last_location"),
		DueIn:           dec.Integer("due_in"),
		Late:            dec.Integer("late"),
		ExpArrival:      dec.TimeOfDay("exp_arrival", xmlfeed.HourMinute),
		ExpDepart:       dec.TimeOfDay("exp_depart", xmlfeed.HourMinute),
		SchArrival:      dec.TimeOfDay("sch_arrival", xmlfeed.HourMinute),
		SchDepart:       dec.TimeOfDay("sch_depart", xmlfeed.HourMinute),
		Direction:       dec.Text("direction"),
		TrainType:       dec.Text("train_type"),
		LocationType:    xmlfeed.Decode(dec, "location_type", models.ParseLocationType),
	}
}
