package gpx

import (
	"encoding/xml"
	"strconv"
)

// Route is an ordered list of waypoints leading somewhere.
type Route struct {
	Name        *string
	Comment     *string
	Description *string
	Source      *string
	Links       []*Link
	Number      *uint
	Type        *string
	Extensions  *Extensions

	Points []*Waypoint
}

func LoadRoute(element *Element, settings *ReaderSettings) (*Route, error) {
	if element == nil {
		return nil, nil
	}

	route := &Route{}

	for _, child := range element.Children {
		switch child.Name.Local {
		case "name":
			name := child.CharData
			route.Name = &name
		case "cmt":
			comment := child.CharData
			route.Comment = &comment
		case "desc":
			description := child.CharData
			route.Description = &description
		case "src":
			source := child.CharData
			route.Source = &source
		case "link":
			link, err := LoadLink(child, settings)
			if err != nil {
				return nil, err
			}
			route.Links = append(route.Links, link)
		case "number":
			number, err := parseNumber(child.CharData)
			if err != nil {
				return nil, err
			}
			route.Number = &number
		case "type":
			routeType := child.CharData
			route.Type = &routeType
		case "extensions":
			extensions, err := loadExtensions(child, settings)
			if err != nil {
				return nil, err
			}
			route.Extensions = extensions
		case "rtept":
			point, err := LoadWaypoint(child, settings)
			if err != nil {
				return nil, err
			}
			route.Points = append(route.Points, point)
		}
	}

	return route, nil
}

func (route *Route) Save(encoder *xml.Encoder, settings *WriterSettings) error {
	start := xml.StartElement{Name: xml.Name{Local: "rte"}}

	if err := encoder.EncodeToken(start); err != nil {
		return err
	}

	if err := saveRouteHeader(encoder, route.Name, route.Comment, route.Description, route.Source, route.Links, route.Number, route.Type); err != nil {
		return err
	}

	if err := saveExtensions(route.Extensions, encoder, settings); err != nil {
		return err
	}

	for _, point := range route.Points {
		if err := point.Save(encoder, "rtept", settings); err != nil {
			return err
		}
	}

	return encoder.EncodeToken(start.End())
}

// Routes and tracks share the same header element sequence.
func saveRouteHeader(encoder *xml.Encoder, name, comment, description, source *string, links []*Link, number *uint, entityType *string) error {
	if name != nil {
		if err := writeLeaf(encoder, "name", *name); err != nil {
			return err
		}
	}
	if comment != nil {
		if err := writeLeaf(encoder, "cmt", *comment); err != nil {
			return err
		}
	}
	if description != nil {
		if err := writeLeaf(encoder, "desc", *description); err != nil {
			return err
		}
	}
	if source != nil {
		if err := writeLeaf(encoder, "src", *source); err != nil {
			return err
		}
	}
	for _, link := range links {
		if err := link.Save(encoder); err != nil {
			return err
		}
	}
	if number != nil {
		if err := writeLeaf(encoder, "number", strconv.FormatUint(uint64(*number), 10)); err != nil {
			return err
		}
	}
	if entityType != nil {
		if err := writeLeaf(encoder, "type", *entityType); err != nil {
			return err
		}
	}

	return nil
}

func parseNumber(text string) (uint, error) {
	number, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, &SchemaViolationError{Element: "number", Reason: "not a valid non-negative integer"}
	}

	return uint(number), nil
}
