package models

import (
	"errors"
	"fmt"
)

// ErrUnknownCode is returned when a feed code does not name any variant.
var ErrUnknownCode = errors.New("unknown code")

// codeSet maps the one-letter feed codes of an enumeration to its variants,
// which are the indexes of codes and names.
type codeSet struct {
	kind  string
	codes []string
	names []string
}

func (c codeSet) parse(code string) (int, error) {
	for i, known := range c.codes {
		if known == code {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w for %s: %q", ErrUnknownCode, c.kind, code)
}

func (c codeSet) code(i int) string {
	if i < 0 || i >= len(c.codes) {
		return ""
	}
	return c.codes[i]
}

func (c codeSet) name(i int) string {
	if i < 0 || i >= len(c.names) {
		return fmt.Sprintf("%s(%d)", c.kind, i)
	}
	return c.names[i]
}

// StationType filters stations and trains by service.
type StationType int

const (
	StationTypeAll StationType = iota
	StationTypeSuburban
	StationTypeDART
	StationTypeMainline
)

var stationTypes = codeSet{
	kind:  "station type",
	codes: []string{"A", "S", "D", "M"},
	names: []string{"All", "Suburban", "DART", "Mainline"},
}

func ParseStationType(code string) (StationType, error) {
	i, err := stationTypes.parse(code)
	return StationType(i), err
}

// Code returns the feed code, e.g. "D" for StationTypeDART.
func (t StationType) Code() string { return stationTypes.code(int(t)) }

func (t StationType) String() string { return stationTypes.name(int(t)) }

func (t StationType) MarshalText() ([]byte, error) { return []byte(t.Code()), nil }

func (t *StationType) UnmarshalText(text []byte) error {
	v, err := ParseStationType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// LocationType is the role a station plays in a train's journey.
type LocationType int

const (
	LocationTypeOrigin LocationType = iota
	LocationTypeTimingPoint
	LocationTypeStop
	LocationTypeDestination
)

var locationTypes = codeSet{
	kind:  "location type",
	codes: []string{"O", "T", "S", "D"},
	names: []string{"Origin", "TimingPoint", "Stop", "Destination"},
}

func ParseLocationType(code string) (LocationType, error) {
	i, err := locationTypes.parse(code)
	return LocationType(i), err
}

func (t LocationType) Code() string { return locationTypes.code(int(t)) }

func (t LocationType) String() string { return locationTypes.name(int(t)) }

func (t LocationType) MarshalText() ([]byte, error) { return []byte(t.Code()), nil }

func (t *LocationType) UnmarshalText(text []byte) error {
	v, err := ParseLocationType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// StopType marks the current and next stop of a running train.
type StopType int

const (
	StopTypeCurrent StopType = iota
	StopTypeNext
)

// StopTypePlaceholder is sent by the feed for stops that are neither current
// nor next. It decodes to a null stop type.
const StopTypePlaceholder = "-"

var stopTypes = codeSet{
	kind:  "stop type",
	codes: []string{"C", "N"},
	names: []string{"Current", "Next"},
}

func ParseStopType(code string) (StopType, error) {
	i, err := stopTypes.parse(code)
	return StopType(i), err
}

func (t StopType) Code() string { return stopTypes.code(int(t)) }

func (t StopType) String() string { return stopTypes.name(int(t)) }

func (t StopType) MarshalText() ([]byte, error) { return []byte(t.Code()), nil }

func (t *StopType) UnmarshalText(text []byte) error {
	v, err := ParseStopType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// TrainStatus tells whether a train has started its journey.
type TrainStatus int

const (
	TrainStatusNotRunning TrainStatus = iota
	TrainStatusRunning
)

var trainStatuses = codeSet{
	kind:  "train status",
	codes: []string{"N", "R"},
	names: []string{"NotRunning", "Running"},
}

func ParseTrainStatus(code string) (TrainStatus, error) {
	i, err := trainStatuses.parse(code)
	return TrainStatus(i), err
}

func (s TrainStatus) Code() string { return trainStatuses.code(int(s)) }

func (s TrainStatus) String() string { return trainStatuses.name(int(s)) }

func (s TrainStatus) MarshalText() ([]byte, error) { return []byte(s.Code()), nil }

func (s *TrainStatus) UnmarshalText(text []byte) error {
	v, err := ParseTrainStatus(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
