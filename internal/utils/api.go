package utils

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/Briscoooe/irish-rail-rest-api/internal/models"
	"github.com/Briscoooe/irish-rail-rest-api/internal/xmlfeed"
)

func invalidField(key string) string {
	return fmt.Sprintf("Invalid field value for field %q.", key)
}

// ParseIntParam retrieves an integer from the query parameters. A missing
// value yields def; a value that is not an integer or lies outside
// [min, max] is recorded in fieldErrors.
func ParseIntParam(params url.Values, key string, def, min, max int, fieldErrors map[string][]string) (int, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return def, fieldErrors
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], invalidField(key))
		return def, fieldErrors
	}
	if n < min || n > max {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("%s must be between %d and %d", key, min, max))
		return def, fieldErrors
	}
	return n, fieldErrors
}

// ParseStationTypeParam retrieves a station type code (A, S, D or M) from the
// query parameters. A missing value means all station types.
func ParseStationTypeParam(params url.Values, key string, fieldErrors map[string][]string) (models.StationType, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return models.StationTypeAll, fieldErrors
	}

	stationType, err := models.ParseStationType(val)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], invalidField(key))
	}
	return stationType, fieldErrors
}

// ParseDateParam retrieves a required YYYY-MM-DD date from the query parameters.
func ParseDateParam(params url.Values, key string, fieldErrors map[string][]string) (xmlfeed.Date, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("%s is required", key))
		return xmlfeed.Date{}, fieldErrors
	}

	date, err := xmlfeed.ParseDate(&val, xmlfeed.ISODate)
	if err != nil || date == nil {
		fieldErrors[key] = append(fieldErrors[key], "invalid date format, use YYYY-MM-DD")
		return xmlfeed.Date{}, fieldErrors
	}
	return *date, fieldErrors
}
