package gpx

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"time"
)

// Waypoint is a single recorded point. The same shape is used for standalone
// waypoints (wpt), route points (rtept) and track points (trkpt) - only the
// element name differs. Latitude and longitude are the only mandatory fields.
type Waypoint struct {
	Latitude  Latitude
	Longitude Longitude

	Elevation         *float64
	Time              *time.Time
	MagneticVariation *Degrees
	GeoidHeight       *float64

	Name        *string
	Comment     *string
	Description *string
	Source      *string
	Links       []*Link
	Symbol      *string
	Type        *string

	Fix           *Fix
	Satellites    *int
	HDOP          *float64
	VDOP          *float64
	PDOP          *float64
	AgeOfDGPSData *float64
	DGPSStationID *DGPSStation

	Extensions *Extensions
}

func LoadWaypoint(element *Element, settings *ReaderSettings) (*Waypoint, error) {
	if element == nil {
		return nil, nil
	}

	elementName := element.Name.Local

	latText, err := requiredAttr(element, elementName, "lat")
	if err != nil {
		return nil, err
	}
	lonText, err := requiredAttr(element, elementName, "lon")
	if err != nil {
		return nil, err
	}

	waypoint := &Waypoint{}

	if waypoint.Latitude, err = ParseLatitude(latText); err != nil {
		return nil, err
	}
	if waypoint.Longitude, err = ParseLongitude(lonText); err != nil {
		return nil, err
	}

	for _, child := range element.Children {
		switch child.Name.Local {
		case "ele":
			elevation, err := parseDecimal(child.CharData, "ele")
			if err != nil {
				return nil, err
			}
			waypoint.Elevation = &elevation
		case "time":
			timestamp, err := parseTimestamp(child.CharData, settings)
			if err != nil {
				return nil, err
			}
			waypoint.Time = &timestamp
		case "magvar":
			variation, err := ParseDegrees(child.CharData)
			if err != nil {
				return nil, err
			}
			waypoint.MagneticVariation = &variation
		case "geoidheight":
			height, err := parseDecimal(child.CharData, "geoidheight")
			if err != nil {
				return nil, err
			}
			waypoint.GeoidHeight = &height
		case "name":
			name := child.CharData
			waypoint.Name = &name
		case "cmt":
			comment := child.CharData
			waypoint.Comment = &comment
		case "desc":
			description := child.CharData
			waypoint.Description = &description
		case "src":
			source := child.CharData
			waypoint.Source = &source
		case "link":
			link, err := LoadLink(child, settings)
			if err != nil {
				return nil, err
			}
			waypoint.Links = append(waypoint.Links, link)
		case "sym":
			symbol := child.CharData
			waypoint.Symbol = &symbol
		case "type":
			waypointType := child.CharData
			waypoint.Type = &waypointType
		case "fix":
			fix, err := ParseFix(child.CharData)
			if err != nil {
				return nil, err
			}
			waypoint.Fix = &fix
		case "sat":
			satellites, err := parseInteger(child.CharData, "sat")
			if err != nil {
				return nil, err
			}
			waypoint.Satellites = &satellites
		case "hdop":
			hdop, err := parseDecimal(child.CharData, "hdop")
			if err != nil {
				return nil, err
			}
			waypoint.HDOP = &hdop
		case "vdop":
			vdop, err := parseDecimal(child.CharData, "vdop")
			if err != nil {
				return nil, err
			}
			waypoint.VDOP = &vdop
		case "pdop":
			pdop, err := parseDecimal(child.CharData, "pdop")
			if err != nil {
				return nil, err
			}
			waypoint.PDOP = &pdop
		case "ageofdgpsdata":
			age, err := parseDecimal(child.CharData, "ageofdgpsdata")
			if err != nil {
				return nil, err
			}
			waypoint.AgeOfDGPSData = &age
		case "dgpsid":
			station, err := ParseDGPSStation(child.CharData)
			if err != nil {
				return nil, err
			}
			waypoint.DGPSStationID = &station
		case "extensions":
			extensions, err := loadExtensions(child, settings)
			if err != nil {
				return nil, err
			}
			waypoint.Extensions = extensions
		}
	}

	return waypoint, nil
}

// Save emits the waypoint under the given element name (wpt, rtept or trkpt)
// with children in schema order.
func (waypoint *Waypoint) Save(encoder *xml.Encoder, name string, settings *WriterSettings) error {
	start := xml.StartElement{
		Name: xml.Name{Local: name},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "lat"}, Value: waypoint.Latitude.String()},
			{Name: xml.Name{Local: "lon"}, Value: waypoint.Longitude.String()},
		},
	}

	if err := encoder.EncodeToken(start); err != nil {
		return err
	}

	if waypoint.Elevation != nil {
		if err := writeLeaf(encoder, "ele", formatDecimal(*waypoint.Elevation)); err != nil {
			return err
		}
	}
	if waypoint.Time != nil {
		if err := writeLeaf(encoder, "time", formatTimestamp(*waypoint.Time)); err != nil {
			return err
		}
	}
	if waypoint.MagneticVariation != nil {
		if err := writeLeaf(encoder, "magvar", waypoint.MagneticVariation.String()); err != nil {
			return err
		}
	}
	if waypoint.GeoidHeight != nil {
		if err := writeLeaf(encoder, "geoidheight", formatDecimal(*waypoint.GeoidHeight)); err != nil {
			return err
		}
	}
	if waypoint.Name != nil {
		if err := writeLeaf(encoder, "name", *waypoint.Name); err != nil {
			return err
		}
	}
	if waypoint.Comment != nil {
		if err := writeLeaf(encoder, "cmt", *waypoint.Comment); err != nil {
			return err
		}
	}
	if waypoint.Description != nil {
		if err := writeLeaf(encoder, "desc", *waypoint.Description); err != nil {
			return err
		}
	}
	if waypoint.Source != nil {
		if err := writeLeaf(encoder, "src", *waypoint.Source); err != nil {
			return err
		}
	}
	for _, link := range waypoint.Links {
		if err := link.Save(encoder); err != nil {
			return err
		}
	}
	if waypoint.Symbol != nil {
		if err := writeLeaf(encoder, "sym", *waypoint.Symbol); err != nil {
			return err
		}
	}
	if waypoint.Type != nil {
		if err := writeLeaf(encoder, "type", *waypoint.Type); err != nil {
			return err
		}
	}
	if waypoint.Fix != nil {
		if err := writeLeaf(encoder, "fix", waypoint.Fix.String()); err != nil {
			return err
		}
	}
	if waypoint.Satellites != nil {
		if err := writeLeaf(encoder, "sat", strconv.Itoa(*waypoint.Satellites)); err != nil {
			return err
		}
	}
	if waypoint.HDOP != nil {
		if err := writeLeaf(encoder, "hdop", formatDecimal(*waypoint.HDOP)); err != nil {
			return err
		}
	}
	if waypoint.VDOP != nil {
		if err := writeLeaf(encoder, "vdop", formatDecimal(*waypoint.VDOP)); err != nil {
			return err
		}
	}
	if waypoint.PDOP != nil {
		if err := writeLeaf(encoder, "pdop", formatDecimal(*waypoint.PDOP)); err != nil {
			return err
		}
	}
	if waypoint.AgeOfDGPSData != nil {
		if err := writeLeaf(encoder, "ageofdgpsdata", formatDecimal(*waypoint.AgeOfDGPSData)); err != nil {
			return err
		}
	}
	if waypoint.DGPSStationID != nil {
		if err := writeLeaf(encoder, "dgpsid", waypoint.DGPSStationID.String()); err != nil {
			return err
		}
	}

	if err := saveExtensions(waypoint.Extensions, encoder, settings); err != nil {
		return err
	}

	return encoder.EncodeToken(start.End())
}

func (waypoint *Waypoint) String() string {
	return fmt.Sprintf("Waypoint{%s, %s}", waypoint.Longitude, waypoint.Latitude)
}
