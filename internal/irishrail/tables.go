package irishrail

import "github.com/Briscoooe/irish-rail-rest-api/internal/xmlfeed"

// Namespace of every element in the realtime feed.
const Namespace xmlfeed.Namespace = "http://api.irishrail.ie/realtime/"

var stationTable = xmlfeed.Table{
	{Element: "StationDesc", Field: "name"},
	{Element: "StationAlias", Field: "alias"},
	{Element: "StationLatitude", Field: "latitude"},
	{Element: "StationLongitude", Field: "longitude"},
	{Element: "StationCode", Field: "code"},
	{Element: "StationId", Field: "id"},
}

var stationSearchTable = xmlfeed.Table{
	{Element: "StationDesc", Field: "name"},
	{Element: "StationCode", Field: "code"},
}

var timetableTable = xmlfeed.Table{
	{Element: "Traincode", Field: "train_code"},
	{Element: "Stationfullname", Field: "station_full_name"},
	{Element: "Stationcode", Field: "station_code"},
	{Element: "Querytime", Field: "query_time"},
	{Element: "Traindate", Field: "train_date"},
	{Element: "Origin", Field: "origin"},
	{Element: "Destination", Field: "destination"},
	{Element: "Origintime", Field: "origin_time"},
	{Element: "Destinationtime", Field: "destination_time"},
	{Element: "Status", Field: "status"},
	{Element: "Lastlocation", Field: "last_location"},
	{Element: "Duein", Field: "due_in"},
	{Element: "Late", Field: "late"},
	{Element: "Exparrival", Field: "exp_arrival"},
	{Element: "Expdepart", Field: "exp_depart"},
	{Element: "Scharrival", Field: "sch_arrival"},
	{Element: "Schdepart", Field: "sch_depart"},
	{Element: "Direction", Field: "direction"},
	{Element: "Traintype", Field: "train_type"},
	{Element: "Locationtype", Field: "location_type"},
}

var trainTable = xmlfeed.Table{
	{Element: "TrainCode", Field: "code"},
	{Element: "TrainDate", Field: "date"},
	{Element: "TrainStatus", Field: "status"},
	{Element: "TrainLatitude", Field: "latitude"},
	{Element: "TrainLongitude", Field: "longitude"},
	{Element: "PublicMessage", Field: "public_message"},
	{Element: "Direction", Field: "direction"},
}

var movementTable = xmlfeed.Table{
	{Element: "TrainCode", Field: "code"},
	{Element: "TrainDate", Field: "date"},
	{Element: "LocationCode", Field: "location_code"},
	{Element: "LocationFullName", Field: "location_full_name"},
	{Element: "LocationOrder", Field: "location_order"},
	{Element: "LocationType", Field: "location_type"},
	{Element: "TrainOrigin", Field: "train_origin"},
	{Element: "TrainDestination", Field: "train_destination"},
	{Element: "ScheduledArrival", Field: "scheduled_arrival"},
	{Element: "ScheduledDeparture", Field: "scheduled_departure"},
	{Element: "ExpectedArrival", Field: "expected_arrival"},
	{Element: "ExpectedDeparture", Field: "expected_departure"},
	{Element: "Arrival", Field: "arrival"},
	{Element: "Departure", Field: "departure"},
	{Element: "AutoArrival", Field: "auto_arrival"},
	{Element: "AutoDepart", Field: "auto_depart"},
	{Element: "StopType", Field: "stop_type"},
}
