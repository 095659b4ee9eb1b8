package irishrail

import (
	"context"
	"net/url"

	"github.com/Briscoooe/irish-rail-rest-api/internal/models"
	"github.com/Briscoooe/irish-rail-rest-api/internal/xmlfeed"
)

// ListTrains returns the trains currently running or due to run, in feed order.
func (c *Client) ListTrains(ctx context.Context, stationType models.StationType) ([]models.Train, error) {
	params := url.Values{"TrainType": {stationType.Code()}}
	records, err := c.records(ctx, "getCurrentTrainsXML_WithTrainType", params, trainTable)
	if err != nil {
		return nil, err
	}
	return decodeAll(records, decodeTrain)
}

// GetTrainMovements returns every stop of a train's journey on date, in the
// order the feed lists them.
func (c *Client) GetTrainMovements(ctx context.Context, trainCode string, date xmlfeed.Date) ([]models.TrainMovement, error) {
	params := url.Values{
		"TrainId":   {trainCode},
		"TrainDate": {date.Format(xmlfeed.DayMonthYear)},
	}
	records, err := c.records(ctx, "getTrainMovementsXML", params, movementTable)
	if err != nil {
		return nil, err
	}
	return decodeAll(records, decodeMovement)
}

func decodeTrain(dec *xmlfeed.RecordDecoder) models.Train {
	return models.Train{
		Status:        xmlfeed.Decode(dec, "status", models.ParseTrainStatus),
		Latitude:      dec.Decimal("latitude"),
		Longitude:     dec.Decimal("longitude"),
		Code:          dec.Text("code"),
		Date:          dec.Date("date", xmlfeed.DayMonthYear),
		PublicMessage: dec.Text("public_message"),
		Direction:     dec.Text("direction"),
	}
}

func decodeMovement(dec *xmlfeed.RecordDecoder) models.TrainMovement {
	return models.TrainMovement{
		Code:               dec.Text("code"),
		Date:               dec.Date("date", xmlfeed.DayMonthYear),
		LocationCode:       dec.Text("location_code"),
		LocationFullName:   dec.Text("location_full_name"),
		LocationOrder:      dec.Integer("location_order"),
		LocationType:       xmlfeed.Decode(dec, "location_type", models.ParseLocationType),
		TrainOrigin:        dec.Text("train_origin"),
		TrainDestination:   dec.Text("train_destination"),
		ScheduledArrival:   dec.TimeOfDay("scheduled_arrival", xmlfeed.HourMinuteSecond),
		ScheduledDeparture: dec.TimeOfDay("scheduled_departure", xmlfeed.HourMinuteSecond),
		ExpectedArrival:    dec.TimeOfDay("expected_arrival", xmlfeed.HourMinuteSecond),
		ExpectedDeparture:  dec.TimeOfDay("expected_departure", xmlfeed.HourMinuteSecond),
		Arrival:            dec.Text("arrival"),
		Departure:          dec.Text("departure"),
		AutoArrival:        dec.Boolean("auto_arrival"),
		AutoDepart:         dec.Boolean("auto_depart"),
		StopType:           decodeStopType(dec),
	}
}

func decodeStopType(dec *xmlfeed.RecordDecoder) *models.StopType {
	if code := dec.Text("stop_type"); code != nil && *code == models.StopTypePlaceholder {
		return nil
	}
	return xmlfeed.Decode(dec, "stop_type", models.ParseStopType)
}
