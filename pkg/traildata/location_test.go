package traildata

import (
	"math"
	"testing"
)

func TestLocationDistance(t *testing.T) {
	london := NewLocation(-0.1276, 51.5072)
	paris := NewLocation(2.3522, 48.8566)

	distance := london.Distance(paris)

	// Roughly 344km between the two city centres
	if math.Abs(distance-344000) > 2000 {
		t.Fatalf("expected ~344km, got %fm", distance)
	}

	if london.Distance(london) != 0 {
		t.Fatalf("distance to self must be zero")
	}
}

func TestGeometryLength(t *testing.T) {
	geometry := NewLineString([][]float64{
		{-0.1276, 51.5072},
		{2.3522, 48.8566},
		{-0.1276, 51.5072},
	})

	single := NewLocation(-0.1276, 51.5072)
	leg := single.Distance(NewLocation(2.3522, 48.8566))

	length := geometry.Length()
	if math.Abs(length-2*leg) > 1e-6 {
		t.Fatalf("expected %f, got %f", 2*leg, length)
	}

	empty := NewLineString(nil)
	if empty.Length() != 0 {
		t.Fatalf("empty line string must have zero length")
	}
}
