package models

import "github.com/Briscoooe/irish-rail-rest-api/internal/xmlfeed"

type Train struct {
	Status        *TrainStatus  `json:"status"`
	Latitude      *float64      `json:"latitude"`
	Longitude     *float64      `json:"longitude"`
	Code          *string       `json:"code"`
	Date          *xmlfeed.Date `json:"date"`
	PublicMessage *string       `json:"public_message"`
	Direction     *string       `json:"direction"`
}

// TrainMovement is one stop of a train's journey on a given date. Arrival and
// Departure are the actual times as free text and may read "n/a".
type TrainMovement struct {
	Code               *string            `json:"code"`
	Date               *xmlfeed.Date      `json:"date"`
	LocationCode       *string            `json:"location_code"`
	LocationFullName   *string            `json:"location_full_name"`
	LocationOrder      *int               `json:"location_order"`
	LocationType       *LocationType      `json:"location_type"`
	TrainOrigin        *string            `json:"train_origin"`
	TrainDestination   *string            `json:"train_destination"`
	ScheduledArrival   *xmlfeed.TimeOfDay `json:"scheduled_arrival"`
	ScheduledDeparture *xmlfeed.TimeOfDay `json:"scheduled_departure"`
	ExpectedArrival    *xmlfeed.TimeOfDay `json:"expected_arrival"`
	ExpectedDeparture  *xmlfeed.TimeOfDay `json:"expected_departure"`
	Arrival            *string            `json:"arrival"`
	Departure          *string            `json:"departure"`
	AutoArrival        *bool              `json:"auto_arrival"`
	AutoDepart         *bool              `json:"auto_depart"`
	StopType           *StopType          `json:"stop_type"`
}
