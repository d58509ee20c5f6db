package traildata

import "math"

const earthRadiusMeters = 6371000

// Location is a GeoJSON point, coordinates ordered longitude then latitude.
type Location struct {
	Type        string    `json:"type" groups:"basic"`
	Coordinates []float64 `json:"coordinates" groups:"basic"`
}

func NewLocation(longitude float64, latitude float64) *Location {
	return &Location{
		Type:        "Point",
		Coordinates: []float64{longitude, latitude},
	}
}

// Distance is the great-circle distance to the other location in meters.
func (l *Location) Distance(other *Location) float64 {
	lon1 := l.Coordinates[0] * math.Pi / 180
	lat1 := l.Coordinates[1] * math.Pi / 180
	lon2 := other.Coordinates[0] * math.Pi / 180
	lat2 := other.Coordinates[1] * math.Pi / 180

	sinLat := math.Sin((lat2 - lat1) / 2)
	sinLon := math.Sin((lon2 - lon1) / 2)

	a := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(a))
}

// Geometry is a GeoJSON line string tracing a whole track.
type Geometry struct {
	Type        string      `json:"type" groups:"basic"`
	Coordinates [][]float64 `json:"coordinates" groups:"detailed"`
}

func NewLineString(coordinates [][]float64) Geometry {
	return Geometry{
		Type:        "LineString",
		Coordinates: coordinates,
	}
}

// Length sums the great-circle distances between consecutive points,
// in meters.
func (g *Geometry) Length() float64 {
	total := float64(0)

	for i := 1; i < len(g.Coordinates); i++ {
		previous := Location{Coordinates: g.Coordinates[i-1]}
		current := Location{Coordinates: g.Coordinates[i]}

		total += previous.Distance(&current)
	}

	return total
}
