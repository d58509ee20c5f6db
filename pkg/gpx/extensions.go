package gpx

import "encoding/xml"

// Extensions is the converted payload of an extensions element. Exactly one
// side of the variant is populated: Raw holds the untouched child elements
// (default reader), Value holds whatever a custom reader produced.
type Extensions struct {
	Raw   []*Element
	Value interface{}
}

// ExtensionReader converts extension child elements both ways. The core
// schema never interprets their contents - a custom reader can map known
// third-party extensions (Garmin etc.) into typed values, everything it
// doesn't recognise should stay raw.
type ExtensionReader interface {
	FromElements(elements []*Element) (*Extensions, error)
	ToElements(extensions *Extensions) ([]*Element, error)
}

// RawExtensionReader is the default identity passthrough: it stores the raw
// elements verbatim and re-emits them unchanged. It cannot fail.
type RawExtensionReader struct{}

func (RawExtensionReader) FromElements(elements []*Element) (*Extensions, error) {
	if len(elements) == 0 {
		return nil, nil
	}

	return &Extensions{Raw: elements}, nil
}

func (RawExtensionReader) ToElements(extensions *Extensions) ([]*Element, error) {
	if extensions == nil {
		return nil, nil
	}

	return extensions.Raw, nil
}

func loadExtensions(element *Element, settings *ReaderSettings) (*Extensions, error) {
	if element == nil {
		return nil, nil
	}

	extensions, err := settings.extensionReader().FromElements(element.Children)
	if err != nil {
		return nil, &ExtensionConversionError{Err: err}
	}

	return extensions, nil
}

func saveExtensions(extensions *Extensions, encoder *xml.Encoder, settings *WriterSettings) error {
	if extensions == nil {
		return nil
	}

	elements, err := settings.extensionReader().ToElements(extensions)
	if err != nil {
		return &ExtensionConversionError{Err: err}
	}

	if len(elements) == 0 {
		return nil
	}

	start := xml.StartElement{Name: xml.Name{Local: "extensions"}}
	if err := encoder.EncodeToken(start); err != nil {
		return err
	}

	for _, element := range elements {
		if err := element.Encode(encoder); err != nil {
			return err
		}
	}

	return encoder.EncodeToken(start.End())
}
