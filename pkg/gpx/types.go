package gpx

import (
	"fmt"
	"strconv"
)

// Latitude in decimal degrees, WGS84.
type Latitude float64

const (
	MinLatitude Latitude = -90
	MaxLatitude Latitude = 90
)

func ParseLatitude(text string) (Latitude, error) {
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &SchemaViolationError{Element: "latitude", Reason: fmt.Sprintf("%q is not a valid decimal", text)}
	}

	if value < float64(MinLatitude) || value > float64(MaxLatitude) {
		return 0, &RangeViolationError{Field: "latitude", Value: value, Min: float64(MinLatitude), Max: float64(MaxLatitude)}
	}

	return Latitude(value), nil
}

func (latitude Latitude) String() string {
	return formatDecimal(float64(latitude))
}

// Longitude in decimal degrees, WGS84. Values past the antimeridian (eg. 181)
// are rejected rather than wrapped, GPX defines no wrap semantics.
type Longitude float64

const (
	MinLongitude Longitude = -180
	MaxLongitude Longitude = 180
)

func ParseLongitude(text string) (Longitude, error) {
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &SchemaViolationError{Element: "longitude", Reason: fmt.Sprintf("%q is not a valid decimal", text)}
	}

	if value < float64(MinLongitude) || value > float64(MaxLongitude) {
		return 0, &RangeViolationError{Field: "longitude", Value: value, Min: float64(MinLongitude), Max: float64(MaxLongitude)}
	}

	return Longitude(value), nil
}

func (longitude Longitude) String() string {
	return formatDecimal(float64(longitude))
}

// Degrees is a bearing, used for magnetic variation. The schema interval is
// [0, 360) - 360 itself is out of range.
type Degrees float64

const (
	MinDegrees Degrees = 0
	MaxDegrees Degrees = 360
)

func ParseDegrees(text string) (Degrees, error) {
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &SchemaViolationError{Element: "degrees", Reason: fmt.Sprintf("%q is not a valid decimal", text)}
	}

	if value < float64(MinDegrees) || value >= float64(MaxDegrees) {
		return 0, &RangeViolationError{Field: "degrees", Value: value, Min: float64(MinDegrees), Max: float64(MaxDegrees)}
	}

	return Degrees(value), nil
}

func (degrees Degrees) String() string {
	return formatDecimal(float64(degrees))
}

// DGPSStation is a differential GPS station ID.
type DGPSStation int

const (
	MinDGPSStation DGPSStation = 0
	MaxDGPSStation DGPSStation = 1023
)

func ParseDGPSStation(text string) (DGPSStation, error) {
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, &SchemaViolationError{Element: "dgpsid", Reason: fmt.Sprintf("%q is not a valid integer", text)}
	}

	if value < int(MinDGPSStation) || value > int(MaxDGPSStation) {
		return 0, &RangeViolationError{Field: "dgpsid", Value: float64(value), Min: float64(MinDGPSStation), Max: float64(MaxDGPSStation)}
	}

	return DGPSStation(value), nil
}

func (station DGPSStation) String() string {
	return strconv.Itoa(int(station))
}

// Fix is the type of GPS fix a point was recorded with.
type Fix string

const (
	FixNone Fix = "none"
	Fix2D   Fix = "2d"
	Fix3D   Fix = "3d"
	FixDGPS Fix = "dgps"
	FixPPS  Fix = "pps"
)

func ParseFix(text string) (Fix, error) {
	switch Fix(text) {
	case FixNone, Fix2D, Fix3D, FixDGPS, FixPPS:
		return Fix(text), nil
	}

	return "", &SchemaViolationError{Element: "fix", Reason: fmt.Sprintf("%q is not a valid fix type", text)}
}

func (fix Fix) String() string {
	return string(fix)
}

// formatDecimal is the exact inverse of strconv.ParseFloat for any value the
// parse accepts - the shortest text that round-trips to the same float64.
func formatDecimal(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

func parseDecimal(text string, elementName string) (float64, error) {
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &SchemaViolationError{Element: elementName, Reason: fmt.Sprintf("%q is not a valid decimal", text)}
	}

	return value, nil
}

func parseInteger(text string, elementName string) (int, error) {
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, &SchemaViolationError{Element: elementName, Reason: fmt.Sprintf("%q is not a valid integer", text)}
	}

	return value, nil
}
