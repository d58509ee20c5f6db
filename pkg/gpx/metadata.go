package gpx

import (
	"encoding/xml"
	"time"
)

// Metadata is the document-level header: who made it, when, and what it
// covers. Every field is optional.
type Metadata struct {
	Name        *string
	Description *string
	Author      *Person
	Copyright   *Copyright
	Links       []*Link
	Time        *time.Time
	Keywords    *string
	Bounds      *Bounds
	Extensions  *Extensions
}

func LoadMetadata(element *Element, settings *ReaderSettings) (*Metadata, error) {
	if element == nil {
		return nil, nil
	}

	metadata := &Metadata{}

	for _, child := range element.Children {
		switch child.Name.Local {
		case "name":
			name := child.CharData
			metadata.Name = &name
		case "desc":
			description := child.CharData
			metadata.Description = &description
		case "author":
			author, err := LoadPerson(child, settings)
			if err != nil {
				return nil, err
			}
			metadata.Author = author
		case "copyright":
			copyright, err := LoadCopyright(child, settings)
			if err != nil {
				return nil, err
			}
			metadata.Copyright = copyright
		case "link":
			link, err := LoadLink(child, settings)
			if err != nil {
				return nil, err
			}
			metadata.Links = append(metadata.Links, link)
		case "time":
			timestamp, err := parseTimestamp(child.CharData, settings)
			if err != nil {
				return nil, err
			}
			metadata.Time = &timestamp
		case "keywords":
			keywords := child.CharData
			metadata.Keywords = &keywords
		case "bounds":
			bounds, err := LoadBounds(child, settings)
			if err != nil {
				return nil, err
			}
			metadata.Bounds = bounds
		case "extensions":
			extensions, err := loadExtensions(child, settings)
			if err != nil {
				return nil, err
			}
			metadata.Extensions = extensions
		}
	}

	return metadata, nil
}

func (metadata *Metadata) Save(encoder *xml.Encoder, settings *WriterSettings) error {
	start := xml.StartElement{Name: xml.Name{Local: "metadata"}}

	if err := encoder.EncodeToken(start); err != nil {
		return err
	}

	if metadata.Name != nil {
		if err := writeLeaf(encoder, "name", *metadata.Name); err != nil {
			return err
		}
	}

	if metadata.Description != nil {
		if err := writeLeaf(encoder, "desc", *metadata.Description); err != nil {
			return err
		}
	}

	if metadata.Author != nil {
		if err := metadata.Author.Save(encoder, "author"); err != nil {
			return err
		}
	}

	if metadata.Copyright != nil {
		if err := metadata.Copyright.Save(encoder); err != nil {
			return err
		}
	}

	for _, link := range metadata.Links {
		if err := link.Save(encoder); err != nil {
			return err
		}
	}

	if metadata.Time != nil {
		if err := writeLeaf(encoder, "time", formatTimestamp(*metadata.Time)); err != nil {
			return err
		}
	}

	if metadata.Keywords != nil {
		if err := writeLeaf(encoder, "keywords", *metadata.Keywords); err != nil {
			return err
		}
	}

	if metadata.Bounds != nil {
		if err := metadata.Bounds.Save(encoder); err != nil {
			return err
		}
	}

	if err := saveExtensions(metadata.Extensions, encoder, settings); err != nil {
		return err
	}

	return encoder.EncodeToken(start.End())
}
