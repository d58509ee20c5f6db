package gpx

import (
	"encoding/xml"
	"fmt"
)

// Link is a hyperlink to external information about an entity.
type Link struct {
	HRef string
	Text *string
	Type *string
}

func LoadLink(element *Element, settings *ReaderSettings) (*Link, error) {
	if element == nil {
		return nil, nil
	}

	href, err := requiredAttr(element, "link", "href")
	if err != nil {
		return nil, err
	}

	link := &Link{HRef: href}

	for _, child := range element.Children {
		switch child.Name.Local {
		case "text":
			text := child.CharData
			link.Text = &text
		case "type":
			mimeType := child.CharData
			link.Type = &mimeType
		}
	}

	return link, nil
}

func (link *Link) Save(encoder *xml.Encoder) error {
	start := xml.StartElement{
		Name: xml.Name{Local: "link"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "href"}, Value: link.HRef},
		},
	}

	if err := encoder.EncodeToken(start); err != nil {
		return err
	}

	if link.Text != nil {
		if err := writeLeaf(encoder, "text", *link.Text); err != nil {
			return err
		}
	}

	if link.Type != nil {
		if err := writeLeaf(encoder, "type", *link.Type); err != nil {
			return err
		}
	}

	return encoder.EncodeToken(start.End())
}

func (link *Link) String() string {
	text := ""
	if link.Text != nil {
		text = *link.Text
	}

	return fmt.Sprintf("Link{%s %q}", link.HRef, text)
}
