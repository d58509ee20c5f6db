package gpx

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

// Copyright holds the author attribute plus optional year and license URL.
type Copyright struct {
	Author  string
	Year    *int
	License *string
}

func LoadCopyright(element *Element, settings *ReaderSettings) (*Copyright, error) {
	if element == nil {
		return nil, nil
	}

	author, err := requiredAttr(element, "copyright", "author")
	if err != nil {
		return nil, err
	}

	copyright := &Copyright{Author: author}

	for _, child := range element.Children {
		switch child.Name.Local {
		case "year":
			year, err := parseInteger(child.CharData, "year")
			if err != nil {
				return nil, err
			}
			copyright.Year = &year
		case "license":
			license := child.CharData
			copyright.License = &license
		}
	}

	return copyright, nil
}

func (copyright *Copyright) Save(encoder *xml.Encoder) error {
	start := xml.StartElement{
		Name: xml.Name{Local: "copyright"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "author"}, Value: copyright.Author},
		},
	}

	if err := encoder.EncodeToken(start); err != nil {
		return err
	}

	if copyright.Year != nil {
		if err := writeLeaf(encoder, "year", strconv.Itoa(*copyright.Year)); err != nil {
			return err
		}
	}

	if copyright.License != nil {
		if err := writeLeaf(encoder, "license", *copyright.License); err != nil {
			return err
		}
	}

	return encoder.EncodeToken(start.End())
}

func (copyright *Copyright) String() string {
	return fmt.Sprintf("Copyright{%s}", copyright.Author)
}
