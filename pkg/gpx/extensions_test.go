package gpx

import (
	"encoding/xml"
	"errors"
	"testing"
)

func TestExtensionOpacity(t *testing.T) {
	source := `<extensions><gpxx:TrackExtension xmlns:gpxx="http://www.garmin.com/xmlschemas/GpxExtensions/v3" kind="line"><gpxx:DisplayColor>Red</gpxx:DisplayColor></gpxx:TrackExtension></extensions>`

	extensions, err := loadExtensions(parseTestElement(t, source), DefaultReaderSettings())
	if err != nil {
		t.Fatalf("load extensions: %v", err)
	}

	if len(extensions.Raw) != 1 {
		t.Fatalf("expected 1 raw extension element, got %d", len(extensions.Raw))
	}
	if extensions.Value != nil {
		t.Fatalf("default reader must not produce a typed value")
	}

	saved := encodeToString(t, func(encoder *xml.Encoder) error {
		return saveExtensions(extensions, encoder, DefaultWriterSettings())
	})

	reloaded, err := loadExtensions(parseTestElement(t, saved), DefaultReaderSettings())
	if err != nil {
		t.Fatalf("reload extensions: %v", err)
	}

	original := extensions.Raw[0]
	copied := reloaded.Raw[0]

	if copied.Name.Local != "TrackExtension" || copied.Name.Space != "http://www.garmin.com/xmlschemas/GpxExtensions/v3" {
		t.Fatalf("extension element name not preserved: %v", copied.Name)
	}
	if len(copied.Attr) != 1 || copied.Attr[0].Name.Local != "kind" || copied.Attr[0].Value != "line" {
		t.Fatalf("extension attributes not preserved: %v", copied.Attr)
	}
	if len(copied.Children) != 1 {
		t.Fatalf("expected 1 nested element, got %d", len(copied.Children))
	}
	if copied.Children[0].Name.Local != original.Children[0].Name.Local {
		t.Fatalf("nested element name not preserved: %v", copied.Children[0].Name)
	}
	if copied.Children[0].CharData != "Red" {
		t.Fatalf("nested element text not preserved: %q", copied.Children[0].CharData)
	}
}

func TestEmptyExtensionsStayAbsent(t *testing.T) {
	extensions, err := loadExtensions(parseTestElement(t, `<extensions></extensions>`), DefaultReaderSettings())
	if err != nil {
		t.Fatalf("load empty extensions: %v", err)
	}
	if extensions != nil {
		t.Fatalf("empty extensions element must load as nil, got %v", extensions)
	}

	saved := encodeToString(t, func(encoder *xml.Encoder) error {
		return saveExtensions(nil, encoder, DefaultWriterSettings())
	})
	if saved != "" {
		t.Fatalf("absent extensions must emit nothing, got %s", saved)
	}
}

type countingExtensionReader struct {
	fail bool
}

func (reader countingExtensionReader) FromElements(elements []*Element) (*Extensions, error) {
	if reader.fail {
		return nil, errors.New("unsupported extension")
	}

	return &Extensions{Value: len(elements)}, nil
}

func (reader countingExtensionReader) ToElements(extensions *Extensions) ([]*Element, error) {
	return nil, nil
}

func TestCustomExtensionReader(t *testing.T) {
	settings := &ReaderSettings{ExtensionReader: countingExtensionReader{}}

	extensions, err := loadExtensions(parseTestElement(t, `<extensions><a/><b/></extensions>`), settings)
	if err != nil {
		t.Fatalf("load extensions: %v", err)
	}
	if extensions.Value != 2 {
		t.Fatalf("expected typed value 2, got %v", extensions.Value)
	}

	failing := &ReaderSettings{ExtensionReader: countingExtensionReader{fail: true}}
	_, err = loadExtensions(parseTestElement(t, `<extensions><a/></extensions>`), failing)

	var conversionError *ExtensionConversionError
	if !errors.As(err, &conversionError) {
		t.Fatalf("expected ExtensionConversionError, got %v", err)
	}
}
