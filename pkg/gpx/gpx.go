package gpx

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html/charset"
)

const Namespace = "http://www.topografix.com/GPX/1/1"
const SchemaVersion = "1.1"

// Document is a whole GPX file.
type Document struct {
	Version string
	Creator string

	Metadata   *Metadata
	Waypoints  []*Waypoint
	Routes     []*Route
	Tracks     []*Track
	Extensions *Extensions
}

func (document *Document) Validate() error {
	if document.Version != SchemaVersion {
		return &SchemaViolationError{Element: "gpx", Field: "version", Reason: fmt.Sprintf("must be %s but is %q", SchemaVersion, document.Version)}
	}
	if document.Creator == "" {
		return &SchemaViolationError{Element: "gpx", Field: "creator", Reason: "required attribute missing"}
	}

	return nil
}

// LoadDocument reconstructs a document from a materialised gpx element tree.
func LoadDocument(element *Element, settings *ReaderSettings) (*Document, error) {
	if element == nil {
		return nil, nil
	}

	document := &Document{}

	for _, attr := range element.Attr {
		switch attr.Name.Local {
		case "version":
			document.Version = attr.Value
		case "creator":
			document.Creator = attr.Value
		}
	}

	if err := document.Validate(); err != nil {
		return nil, err
	}

	for _, child := range element.Children {
		if err := document.loadChild(child, settings); err != nil {
			return nil, err
		}
	}

	return document, nil
}

func (document *Document) loadChild(child *Element, settings *ReaderSettings) error {
	switch child.Name.Local {
	case "metadata":
		metadata, err := LoadMetadata(child, settings)
		if err != nil {
			return err
		}
		document.Metadata = metadata
	case "wpt":
		waypoint, err := LoadWaypoint(child, settings)
		if err != nil {
			return err
		}
		document.Waypoints = append(document.Waypoints, waypoint)
	case "rte":
		route, err := LoadRoute(child, settings)
		if err != nil {
			return err
		}
		document.Routes = append(document.Routes, route)
	case "trk":
		track, err := LoadTrack(child, settings)
		if err != nil {
			return err
		}
		document.Tracks = append(document.Tracks, track)
	case "extensions":
		extensions, err := loadExtensions(child, settings)
		if err != nil {
			return err
		}
		document.Extensions = extensions
	}

	return nil
}

// ParseXMLFile walks the token stream, materialising one top-level entity
// subtree at a time.
func ParseXMLFile(reader io.Reader, settings *ReaderSettings) (*Document, error) {
	if settings == nil {
		settings = DefaultReaderSettings()
	}

	document := Document{}
	foundRoot := false

	d := xml.NewDecoder(reader)
	d.CharsetReader = charset.NewReaderLabel
	for {
		tok, err := d.Token()
		if tok == nil || err == io.EOF {
			// EOF means we're done.
			break
		} else if err != nil {
			return nil, err
		}

		switch ty := tok.(type) {
		case xml.StartElement:
			if !foundRoot {
				if ty.Name.Local != "gpx" {
					return nil, &SchemaViolationError{Element: ty.Name.Local, Reason: "document root must be gpx"}
				}

				foundRoot = true

				for i := 0; i < len(ty.Attr); i++ {
					attr := ty.Attr[i]

					switch attr.Name.Local {
					case "version":
						document.Version = attr.Value
					case "creator":
						document.Creator = attr.Value
					}
				}

				validate := document.Validate()
				if validate != nil {
					return nil, validate
				}
			} else {
				element, err := decodeTree(d, ty)
				if err != nil {
					return nil, err
				}

				if err := document.loadChild(element, settings); err != nil {
					return nil, err
				}
			}
		default:
		}
	}

	if !foundRoot {
		return nil, &SchemaViolationError{Element: "gpx", Reason: "document has no gpx root element"}
	}

	log.Debug().Msgf("Successfully parsed document from %q", document.Creator)
	log.Debug().Msgf(" - Contains %d waypoints", len(document.Waypoints))
	log.Debug().Msgf(" - Contains %d routes", len(document.Routes))
	log.Debug().Msgf(" - Contains %d tracks", len(document.Tracks))

	return &document, nil
}

func (document *Document) Save(encoder *xml.Encoder, settings *WriterSettings) error {
	start := xml.StartElement{
		Name: xml.Name{Local: "gpx"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "xmlns"}, Value: Namespace},
			{Name: xml.Name{Local: "version"}, Value: document.Version},
			{Name: xml.Name{Local: "creator"}, Value: document.Creator},
		},
	}

	if err := encoder.EncodeToken(start); err != nil {
		return err
	}

	if document.Metadata != nil {
		if err := document.Metadata.Save(encoder, settings); err != nil {
			return err
		}
	}

	for _, waypoint := range document.Waypoints {
		if err := waypoint.Save(encoder, "wpt", settings); err != nil {
			return err
		}
	}

	for _, route := range document.Routes {
		if err := route.Save(encoder, settings); err != nil {
			return err
		}
	}

	for _, track := range document.Tracks {
		if err := track.Save(encoder, settings); err != nil {
			return err
		}
	}

	if err := saveExtensions(document.Extensions, encoder, settings); err != nil {
		return err
	}

	return encoder.EncodeToken(start.End())
}

// Write serialises the document as a complete XML file.
func (document *Document) Write(writer io.Writer, settings *WriterSettings) error {
	if settings == nil {
		settings = DefaultWriterSettings()
	}

	if _, err := io.WriteString(writer, xml.Header); err != nil {
		return err
	}

	encoder := xml.NewEncoder(writer)
	if err := document.Save(encoder, settings); err != nil {
		return err
	}

	return encoder.Flush()
}
