package gpx

import "encoding/xml"

// Track is a recorded trace, split into segments wherever the receiver lost
// its fix or was switched off.
type Track struct {
	Name        *string
	Comment     *string
	Description *string
	Source      *string
	Links       []*Link
	Number      *uint
	Type        *string
	Extensions  *Extensions

	Segments []*TrackSegment
}

type TrackSegment struct {
	Points     []*Waypoint
	Extensions *Extensions
}

func LoadTrack(element *Element, settings *ReaderSettings) (*Track, error) {
	if element == nil {
		return nil, nil
	}

	track := &Track{}

	for _, child := range element.Children {
		switch child.Name.Local {
		case "name":
			name := child.CharData
			track.Name = &name
		case "cmt":
			comment := child.CharData
			track.Comment = &comment
		case "desc":
			description := child.CharData
			track.Description = &description
		case "src":
			source := child.CharData
			track.Source = &source
		case "link":
			link, err := LoadLink(child, settings)
			if err != nil {
				return nil, err
			}
			track.Links = append(track.Links, link)
		case "number":
			number, err := parseNumber(child.CharData)
			if err != nil {
				return nil, err
			}
			track.Number = &number
		case "type":
			trackType := child.CharData
			track.Type = &trackType
		case "extensions":
			extensions, err := loadExtensions(child, settings)
			if err != nil {
				return nil, err
			}
			track.Extensions = extensions
		case "trkseg":
			segment, err := LoadTrackSegment(child, settings)
			if err != nil {
				return nil, err
			}
			track.Segments = append(track.Segments, segment)
		}
	}

	return track, nil
}

func LoadTrackSegment(element *Element, settings *ReaderSettings) (*TrackSegment, error) {
	if element == nil {
		return nil, nil
	}

	segment := &TrackSegment{}

	for _, child := range element.Children {
		switch child.Name.Local {
		case "trkpt":
			point, err := LoadWaypoint(child, settings)
			if err != nil {
				return nil, err
			}
			segment.Points = append(segment.Points, point)
		case "extensions":
			extensions, err := loadExtensions(child, settings)
			if err != nil {
				return nil, err
			}
			segment.Extensions = extensions
		}
	}

	return segment, nil
}

func (track *Track) Save(encoder *xml.Encoder, settings *WriterSettings) error {
	start := xml.StartElement{Name: xml.Name{Local: "trk"}}

	if err := encoder.EncodeToken(start); err != nil {
		return err
	}

	if err := saveRouteHeader(encoder, track.Name, track.Comment, track.Description, track.Source, track.Links, track.Number, track.Type); err != nil {
		return err
	}

	if err := saveExtensions(track.Extensions, encoder, settings); err != nil {
		return err
	}

	for _, segment := range track.Segments {
		if err := segment.Save(encoder, settings); err != nil {
			return err
		}
	}

	return encoder.EncodeToken(start.End())
}

func (segment *TrackSegment) Save(encoder *xml.Encoder, settings *WriterSettings) error {
	start := xml.StartElement{Name: xml.Name{Local: "trkseg"}}

	if err := encoder.EncodeToken(start); err != nil {
		return err
	}

	for _, point := range segment.Points {
		if err := point.Save(encoder, "trkpt", settings); err != nil {
			return err
		}
	}

	if err := saveExtensions(segment.Extensions, encoder, settings); err != nil {
		return err
	}

	return encoder.EncodeToken(start.End())
}
