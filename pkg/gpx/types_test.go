package gpx

import (
	"errors"
	"testing"
)

func TestLatitudeLongitudeRoundTrip(t *testing.T) {
	values := []float64{
		0, 1.5, -2.25, 4.25, 90, -90, 179.9999999, -180, 180,
		0.1, 51.50532, -0.108407, 1e-17, 33.333333333333336,
	}

	for _, value := range values {
		if value >= float64(MinLatitude) && value <= float64(MaxLatitude) {
			latitude := Latitude(value)
			parsed, err := ParseLatitude(latitude.String())
			if err != nil {
				t.Fatalf("parse latitude %s: %v", latitude, err)
			}
			if parsed != latitude {
				t.Fatalf("latitude round trip: expected %v, got %v", latitude, parsed)
			}
		}

		longitude := Longitude(value)
		parsed, err := ParseLongitude(longitude.String())
		if err != nil {
			t.Fatalf("parse longitude %s: %v", longitude, err)
		}
		if parsed != longitude {
			t.Fatalf("longitude round trip: expected %v, got %v", longitude, parsed)
		}
	}
}

func TestRangeRejection(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		parse    func(string) error
		outRange bool
	}{
		{"longitude over", "181", func(s string) error { _, err := ParseLongitude(s); return err }, true},
		{"longitude under", "-180.001", func(s string) error { _, err := ParseLongitude(s); return err }, true},
		{"latitude under", "-91", func(s string) error { _, err := ParseLatitude(s); return err }, true},
		{"latitude over", "90.5", func(s string) error { _, err := ParseLatitude(s); return err }, true},
		{"degrees full circle", "360", func(s string) error { _, err := ParseDegrees(s); return err }, true},
		{"degrees negative", "-1", func(s string) error { _, err := ParseDegrees(s); return err }, true},
		{"dgps station over", "1024", func(s string) error { _, err := ParseDGPSStation(s); return err }, true},
		{"latitude not a number", "north", func(s string) error { _, err := ParseLatitude(s); return err }, false},
		{"longitude not a number", "", func(s string) error { _, err := ParseLongitude(s); return err }, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.parse(test.text)
			if err == nil {
				t.Fatalf("expected error parsing %q", test.text)
			}

			var rangeError *RangeViolationError
			var schemaError *SchemaViolationError
			if test.outRange {
				if !errors.As(err, &rangeError) {
					t.Fatalf("expected RangeViolationError, got %v", err)
				}
			} else {
				if !errors.As(err, &schemaError) {
					t.Fatalf("expected SchemaViolationError, got %v", err)
				}
			}
		})
	}
}

func TestBoundaryValuesInclusive(t *testing.T) {
	if _, err := ParseLongitude("180"); err != nil {
		t.Fatalf("longitude 180 should be legal: %v", err)
	}
	if _, err := ParseLongitude("-180"); err != nil {
		t.Fatalf("longitude -180 should be legal: %v", err)
	}
	if _, err := ParseLatitude("90"); err != nil {
		t.Fatalf("latitude 90 should be legal: %v", err)
	}
	if _, err := ParseLatitude("-90"); err != nil {
		t.Fatalf("latitude -90 should be legal: %v", err)
	}
	if _, err := ParseDGPSStation("1023"); err != nil {
		t.Fatalf("dgps station 1023 should be legal: %v", err)
	}
}

func TestParseFix(t *testing.T) {
	for _, valid := range []string{"none", "2d", "3d", "dgps", "pps"} {
		fix, err := ParseFix(valid)
		if err != nil {
			t.Fatalf("parse fix %q: %v", valid, err)
		}
		if fix.String() != valid {
			t.Fatalf("expected fix %q, got %q", valid, fix)
		}
	}

	if _, err := ParseFix("4d"); err == nil {
		t.Fatalf("expected error for unknown fix type")
	}
}
