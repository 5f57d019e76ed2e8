package world

import (
	"image/color"
	"math"
	"shapeanim/batch"
	"testing"
)

func TestNewWheelGeometry(t *testing.T) {
	w, err := NewWheel(testBounds, 400, 280, 50, 3, 1, 0, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if w.Kind != KindWheel {
		t.Fatalf("Kind = %v, want %v", w.Kind, KindWheel)
	}
	if w.X != 400 || w.Y != 280 {
		t.Fatalf("position = (%v, %v), want (400, 280)", w.X, w.Y)
	}

	// Three spokes, each a line plus its outer disc, then the hub.
	shapes := w.Shapes()
	if len(shapes) != 7 {
		t.Fatalf("len(shapes) = %d, want 7", len(shapes))
	}

	wantColors := []color.RGBA{
		{R: 255, A: 255},
		{G: 255, A: 255},
		{B: 255, A: 255},
	}
	third := 2 * math.Pi / 3
	for n := 0; n < 3; n++ {
		spoke, disc := shapes[2*n], shapes[2*n+1]

		if spoke.Kind != batch.KindLine {
			t.Fatalf("shapes[%d].Kind = %v, want %v", 2*n, spoke.Kind, batch.KindLine)
		}
		if disc.Kind != batch.KindEllipse {
			t.Fatalf("shapes[%d].Kind = %v, want %v", 2*n+1, disc.Kind, batch.KindEllipse)
		}

		if spoke.X1 != 0 || spoke.Y1 != 0 {
			t.Errorf("spoke %d starts at (%v, %v), want the origin", n, spoke.X1, spoke.Y1)
		}
		endX := 50 * math.Cos(float64(n)*third)
		endY := 50 * math.Sin(float64(n)*third)
		if !almostEqual(spoke.X2, endX) || !almostEqual(spoke.Y2, endY) {
			t.Errorf("spoke %d ends at (%v, %v), want (%v, %v)", n, spoke.X2, spoke.Y2, endX, endY)
		}
		if !almostEqual(spoke.Width, 5) {
			t.Errorf("spoke %d width = %v, want 5", n, spoke.Width)
		}
		if spoke.Color != wantColors[n] {
			t.Errorf("spoke %d color = %v, want %v", n, spoke.Color, wantColors[n])
		}

		if got := math.Hypot(disc.CX, disc.CY); !almostEqual(got, 60) {
			t.Errorf("disc %d distance = %v, want 60", n, got)
		}
		if !almostEqual(disc.RX, 15) || !almostEqual(disc.RY, 15) {
			t.Errorf("disc %d radii = (%v, %v), want (15, 15)", n, disc.RX, disc.RY)
		}
		if disc.Color != spoke.Color {
			t.Errorf("disc %d color = %v, want the spoke color %v", n, disc.Color, spoke.Color)
		}
	}

	hub := shapes[6]
	if hub.Kind != batch.KindEllipse || hub.CX != 0 || hub.CY != 0 {
		t.Fatalf("hub = %v at (%v, %v), want ellipse at the origin", hub.Kind, hub.CX, hub.CY)
	}
	if !almostEqual(hub.RX, 7.5) || !almostEqual(hub.RY, 7.5) {
		t.Errorf("hub radii = (%v, %v), want (7.5, 7.5)", hub.RX, hub.RY)
	}
	if (hub.Color != color.RGBA{A: 255}) {
		t.Errorf("hub color = %v, want opaque black", hub.Color)
	}
}

func TestNewWheelPaletteCycles(t *testing.T) {
	w, err := NewWheel(testBounds, 0, 0, 50, 5, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	shapes := w.Shapes()
	if len(shapes) != 11 {
		t.Fatalf("len(shapes) = %d, want 11", len(shapes))
	}
	// Spokes 3 and 4 wrap back to red and green.
	if (shapes[6].Color != color.RGBA{R: 255, A: 255}) {
		t.Errorf("spoke 3 color = %v, want red", shapes[6].Color)
	}
	if (shapes[8].Color != color.RGBA{G: 255, A: 255}) {
		t.Errorf("spoke 4 color = %v, want green", shapes[8].Color)
	}
}

func TestNewWheelSingleSpoke(t *testing.T) {
	w, err := NewWheel(testBounds, 0, 0, 40, 1, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	shapes := w.Shapes()
	if len(shapes) != 3 {
		t.Fatalf("len(shapes) = %d, want 3", len(shapes))
	}
	if !almostEqual(shapes[0].X2, 40) || !almostEqual(shapes[0].Y2, 0) {
		t.Fatalf("spoke ends at (%v, %v), want (40, 0)", shapes[0].X2, shapes[0].Y2)
	}
}

func TestNewWheelRejectsBadArguments(t *testing.T) {
	cases := []struct {
		name   string
		radius float64
		spokes int
	}{
		{"zero spokes", 50, 0},
		{"negative spokes", 50, -2},
		{"zero radius", 0, 3},
		{"negative radius", -10, 3},
	}
	for _, tc := range cases {
		if _, err := NewWheel(testBounds, 0, 0, tc.radius, tc.spokes, 0, 0, 0); err == nil {
			t.Errorf("%s: NewWheel returned no error", tc.name)
		}
	}
}
