package gpx

import (
	"encoding/xml"
	"fmt"
)

// Bounds is the lat/lon extent of a document or entity. The schema does not
// require min <= max so neither do we - a computed extent from an external
// collaborator may legally be degenerate.
type Bounds struct {
	MinLatitude  Latitude
	MinLongitude Longitude
	MaxLatitude  Latitude
	MaxLongitude Longitude
}

// WorldBounds covers the entire legal coordinate range.
var WorldBounds = Bounds{
	MinLatitude:  MinLatitude,
	MinLongitude: MinLongitude,
	MaxLatitude:  MaxLatitude,
	MaxLongitude: MaxLongitude,
}

func LoadBounds(element *Element, settings *ReaderSettings) (*Bounds, error) {
	if element == nil {
		return nil, nil
	}

	minLatText, err := requiredAttr(element, "bounds", "minlat")
	if err != nil {
		return nil, err
	}
	minLonText, err := requiredAttr(element, "bounds", "minlon")
	if err != nil {
		return nil, err
	}
	maxLatText, err := requiredAttr(element, "bounds", "maxlat")
	if err != nil {
		return nil, err
	}
	maxLonText, err := requiredAttr(element, "bounds", "maxlon")
	if err != nil {
		return nil, err
	}

	bounds := Bounds{}

	if bounds.MinLatitude, err = ParseLatitude(minLatText); err != nil {
		return nil, err
	}
	if bounds.MinLongitude, err = ParseLongitude(minLonText); err != nil {
		return nil, err
	}
	if bounds.MaxLatitude, err = ParseLatitude(maxLatText); err != nil {
		return nil, err
	}
	if bounds.MaxLongitude, err = ParseLongitude(maxLonText); err != nil {
		return nil, err
	}

	return &bounds, nil
}

func (bounds *Bounds) Save(encoder *xml.Encoder) error {
	start := xml.StartElement{
		Name: xml.Name{Local: "bounds"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "minlat"}, Value: bounds.MinLatitude.String()},
			{Name: xml.Name{Local: "minlon"}, Value: bounds.MinLongitude.String()},
			{Name: xml.Name{Local: "maxlat"}, Value: bounds.MaxLatitude.String()},
			{Name: xml.Name{Local: "maxlon"}, Value: bounds.MaxLongitude.String()},
		},
	}

	if err := encoder.EncodeToken(start); err != nil {
		return err
	}

	return encoder.EncodeToken(start.End())
}

func (bounds *Bounds) String() string {
	return fmt.Sprintf("Bounds{(%s, %s) - (%s, %s)}",
		bounds.MinLongitude, bounds.MinLatitude, bounds.MaxLongitude, bounds.MaxLatitude)
}
