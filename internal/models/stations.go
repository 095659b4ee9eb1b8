package models

import "github.com/Briscoooe/irish-rail-rest-api/internal/xmlfeed"

type Station struct {
	Name      *string  `json:"name"`
	Alias     *string  `json:"alias"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Code      *string  `json:"code"`
	ID        *string  `json:"id"`
}

// StationSearchResult is the reduced projection of Station returned by text search.
type StationSearchResult struct {
	Name *string `json:"name"`
	Code *string `json:"code"`
}

// StationTimetableItem is one train due at a station within the requested window.
// DueIn and Late are minutes; Late is negative for early trains.
type StationTimetableItem struct {
	TrainCode       *string            `json:"train_code"`
	StationFullName *string            `json:"station_full_name"`
	StationCode     *string            `json:"station_code"`
	QueryTime       *xmlfeed.TimeOfDay `json:"query_time"`
	TrainDate       *xmlfeed.Date      `json:"train_date"`
	Origin          *string            `json:"origin"`
	Destination     *string            `json:"destination"`
	OriginTime      *xmlfeed.TimeOfDay `json:"origin_time"`
	DestinationTime *xmlfeed.TimeOfDay `json:"destination_time"`
	Status          *string            `json:"status"`
	LastLocation    *string            `json:"last_location"`
	DueIn           *int               `json:"due_in"`
	Late            *int               `json:"late"`
	ExpArrival      *xmlfeed.TimeOfDay `json:"exp_arrival"`
	ExpDepart       *xmlfeed.TimeOfDay `json:"exp_depart"`
	SchArrival      *xmlfeed.TimeOfDay `json:"sch_arrival"`
	SchDepart       *xmlfeed.TimeOfDay `json:"sch_depart"`
	Direction       *string            `json:"direction"`
	TrainType       *string            `json:"train_type"`
	LocationType    *LocationType      `json:"location_type"`
}
