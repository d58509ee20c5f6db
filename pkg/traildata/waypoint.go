package traildata

import "time"

// Waypoint is a standalone stored point of interest.
type Waypoint struct {
	PrimaryIdentifier string `groups:"basic"`

	CreationDateTime     time.Time `groups:"detailed"`
	ModificationDateTime time.Time `groups:"detailed"`

	DataSource *DataSource `groups:"internal"`

	Name        string `groups:"basic"`
	Description string `groups:"basic"`
	Symbol      string `groups:"basic"`
	Type        string `groups:"basic"`

	Location  *Location `groups:"basic"`
	Elevation *float64  `groups:"basic"`
}
