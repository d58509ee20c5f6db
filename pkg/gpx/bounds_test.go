package gpx

import (
	"bytes"
	"encoding/xml"
	"errors"
	"strings"
	"testing"
)

func parseTestElement(t *testing.T, source string) *Element {
	t.Helper()

	d := xml.NewDecoder(strings.NewReader(source))
	for {
		tok, err := d.Token()
		if err != nil {
			t.Fatalf("decoding test element: %v", err)
		}

		if start, ok := tok.(xml.StartElement); ok {
			element, err := decodeTree(d, start)
			if err != nil {
				t.Fatalf("building test element tree: %v", err)
			}
			return element
		}
	}
}

func encodeToString(t *testing.T, save func(*xml.Encoder) error) string {
	t.Helper()

	var buffer bytes.Buffer
	encoder := xml.NewEncoder(&buffer)
	if err := save(encoder); err != nil {
		t.Fatalf("saving element: %v", err)
	}
	if err := encoder.Flush(); err != nil {
		t.Fatalf("flushing encoder: %v", err)
	}

	return buffer.String()
}

func TestLoadBounds(t *testing.T) {
	element := parseTestElement(t, `<bounds minlat="1.5" minlon="-2.25" maxlat="3.5" maxlon="4.25"/>`)

	bounds, err := LoadBounds(element, DefaultReaderSettings())
	if err != nil {
		t.Fatalf("load bounds: %v", err)
	}

	if bounds.MinLatitude != 1.5 || bounds.MinLongitude != -2.25 {
		t.Fatalf("expected min (-2.25, 1.5), got (%s, %s)", bounds.MinLongitude, bounds.MinLatitude)
	}
	if bounds.MaxLatitude != 3.5 || bounds.MaxLongitude != 4.25 {
		t.Fatalf("expected max (4.25, 3.5), got (%s, %s)", bounds.MaxLongitude, bounds.MaxLatitude)
	}
}

func TestLoadBoundsNilPropagation(t *testing.T) {
	bounds, err := LoadBounds(nil, DefaultReaderSettings())
	if err != nil {
		t.Fatalf("nil element must not error: %v", err)
	}
	if bounds != nil {
		t.Fatalf("nil element must load as nil, got %v", bounds)
	}
}

func TestLoadBoundsMissingMandatoryAttribute(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"missing maxlat", `<bounds minlat="1.5" minlon="-2.25" maxlon="4.25"/>`},
		{"missing minlon", `<bounds minlat="1.5" maxlat="3.5" maxlon="4.25"/>`},
		{"empty element", `<bounds/>`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := LoadBounds(parseTestElement(t, test.source), DefaultReaderSettings())
			if err == nil {
				t.Fatalf("expected error for %s", test.name)
			}

			var schemaError *SchemaViolationError
			if !errors.As(err, &schemaError) {
				t.Fatalf("expected SchemaViolationError, got %v", err)
			}
		})
	}
}

func TestLoadBoundsOutOfRange(t *testing.T) {
	element := parseTestElement(t, `<bounds minlat="1.5" minlon="-200" maxlat="3.5" maxlon="4.25"/>`)

	_, err := LoadBounds(element, DefaultReaderSettings())
	var rangeError *RangeViolationError
	if !errors.As(err, &rangeError) {
		t.Fatalf("expected RangeViolationError, got %v", err)
	}
}

func TestBoundsSaveOrder(t *testing.T) {
	bounds := &Bounds{MinLatitude: 1.5, MinLongitude: -2.25, MaxLatitude: 3.5, MaxLongitude: 4.25}

	saved := encodeToString(t, bounds.Save)
	expected := `<bounds minlat="1.5" minlon="-2.25" maxlat="3.5" maxlon="4.25"></bounds>`
	if saved != expected {
		t.Fatalf("expected %s, got %s", expected, saved)
	}
}

func TestBoundsRoundTrip(t *testing.T) {
	original := &Bounds{MinLatitude: -90, MinLongitude: 179.9999999, MaxLatitude: 12.3456789012345, MaxLongitude: -0.000001}

	reloaded, err := LoadBounds(parseTestElement(t, encodeToString(t, original.Save)), DefaultReaderSettings())
	if err != nil {
		t.Fatalf("reload bounds: %v", err)
	}

	if *reloaded != *original {
		t.Fatalf("round trip changed bounds: expected %s, got %s", original, reloaded)
	}
}

func TestBoundsMinMaxNotEnforced(t *testing.T) {
	// The schema doesn't require min <= max, so neither does the load
	element := parseTestElement(t, `<bounds minlat="50" minlon="10" maxlat="-50" maxlon="-10"/>`)

	bounds, err := LoadBounds(element, DefaultReaderSettings())
	if err != nil {
		t.Fatalf("inverted bounds must load: %v", err)
	}
	if bounds.MinLatitude != 50 || bounds.MaxLatitude != -50 {
		t.Fatalf("inverted bounds must be preserved, got %s", bounds)
	}
}

func TestWorldBounds(t *testing.T) {
	if WorldBounds.MinLatitude != MinLatitude || WorldBounds.MaxLatitude != MaxLatitude {
		t.Fatalf("world bounds latitude range wrong: %s", &WorldBounds)
	}
	if WorldBounds.MinLongitude != MinLongitude || WorldBounds.MaxLongitude != MaxLongitude {
		t.Fatalf("world bounds longitude range wrong: %s", &WorldBounds)
	}
}
