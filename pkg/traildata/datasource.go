package traildata

type DataSource struct {
	OriginalFormat string `groups:"internal"` // eg. gpx
	Provider       string `groups:"internal"`
	Dataset        string `groups:"internal"`
	Identifier     string `groups:"internal"`
}
