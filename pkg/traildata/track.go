package traildata

import "time"

// Track is the canonical stored form of an imported GPX track.
type Track struct {
	PrimaryIdentifier string `groups:"basic"`

	CreationDateTime     time.Time `groups:"detailed"`
	ModificationDateTime time.Time `groups:"detailed"`

	DataSource *DataSource `groups:"internal"`

	Name        string   `groups:"basic"`
	Description string   `groups:"basic"`
	Keywords    []string `groups:"basic"`
	Creator     string   `groups:"detailed"`

	Geometry Geometry `groups:"detailed"`

	Bounds *TrackBounds `groups:"basic"`

	Stats TrackStats `groups:"basic"`
}

// TrackBounds is the lat/lon box around the recorded geometry.
type TrackBounds struct {
	MinLatitude  float64 `groups:"basic"`
	MinLongitude float64 `groups:"basic"`
	MaxLatitude  float64 `groups:"basic"`
	MaxLongitude float64 `groups:"basic"`
}

type TrackStats struct {
	PointCount   int     `groups:"basic"`
	SegmentCount int     `groups:"basic"`
	Distance     float64 `groups:"basic"` // meters

	StartTime time.Time `groups:"basic"`
	EndTime   time.Time `groups:"basic"`
}
