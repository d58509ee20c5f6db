package gpx

import (
	"encoding/xml"
	"strings"
)

// Element is a fully materialised XML element subtree. Loads walk it by GPX
// local name and ignore anything else, so foreign-namespace children survive
// a parse untouched and can be re-emitted as-is.
type Element struct {
	Name     xml.Name
	Attr     []xml.Attr
	CharData string
	Children []*Element
}

func decodeTree(d *xml.Decoder, start xml.StartElement) (*Element, error) {
	element := &Element{
		Name: start.Name,
		Attr: stripNamespaceDeclarations(start.Attr),
	}

	var text strings.Builder

	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}

		switch ty := tok.(type) {
		case xml.StartElement:
			child, err := decodeTree(d, ty)
			if err != nil {
				return nil, err
			}
			element.Children = append(element.Children, child)
		case xml.CharData:
			text.Write(ty)
		case xml.EndElement:
			element.CharData = text.String()

			// Indentation between child elements isn't content
			if len(element.Children) > 0 && strings.TrimSpace(element.CharData) == "" {
				element.CharData = ""
			}

			return element, nil
		}
	}
}

// The decoder has already resolved prefixes into Name.Space, the encoder
// re-declares namespaces itself, so keeping the declaration attributes around
// would emit them twice.
func stripNamespaceDeclarations(attributes []xml.Attr) []xml.Attr {
	var kept []xml.Attr

	for _, attr := range attributes {
		if attr.Name.Space == "xmlns" || (attr.Name.Space == "" && attr.Name.Local == "xmlns") {
			continue
		}
		kept = append(kept, attr)
	}

	return kept
}

func (element *Element) Encode(encoder *xml.Encoder) error {
	start := xml.StartElement{Name: element.Name, Attr: element.Attr}

	if err := encoder.EncodeToken(start); err != nil {
		return err
	}

	if element.CharData != "" {
		if err := encoder.EncodeToken(xml.CharData(element.CharData)); err != nil {
			return err
		}
	}

	for _, child := range element.Children {
		if err := child.Encode(encoder); err != nil {
			return err
		}
	}

	return encoder.EncodeToken(start.End())
}

func (element *Element) Attribute(name string) (string, bool) {
	for _, attr := range element.Attr {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}

	return "", false
}

func (element *Element) Child(name string) *Element {
	for _, child := range element.Children {
		if child.Name.Local == name {
			return child
		}
	}

	return nil
}

func (element *Element) ChildrenNamed(name string) []*Element {
	var matched []*Element

	for _, child := range element.Children {
		if child.Name.Local == name {
			matched = append(matched, child)
		}
	}

	return matched
}

func requiredAttr(element *Element, elementName string, attrName string) (string, error) {
	value, ok := element.Attribute(attrName)
	if !ok {
		return "", &SchemaViolationError{Element: elementName, Field: attrName, Reason: "required attribute missing"}
	}

	return value, nil
}

func writeLeaf(encoder *xml.Encoder, name string, value string) error {
	return encoder.EncodeElement(value, xml.StartElement{Name: xml.Name{Local: name}})
}
