package world

import (
	"fmt"
	"image/color"
	"math"
	"shapeanim/batch"
)

// Spoke and disc proportions, all relative to the wheel radius.
const (
	spokeWidthRatio   = 0.1
	outerDiscDistance = 1.2
	outerDiscRatio    = 0.3
	hubDiscRatio      = 0.15
)

var (
	wheelPalette = []color.RGBA{
		{R: 255, A: 255},
		{G: 255, A: 255},
		{B: 255, A: 255},
	}
	wheelHubColor = color.RGBA{A: 255}
)

// NewWheel builds a wheel at the local origin: for each of the given spokes
// a radial line capped with an outer disc, with the palette cycling red,
// green, blue, and one black hub disc over the spoke roots. The entity is
// positioned only after the geometry is complete, so rotation stays centered
// on the hub.
func NewWheel(b Bounds, x, y, radius float64, spokes int, dx, dy, dAngle float64) (*Entity, error) {
	if spokes < 1 {
		return nil, fmt.Errorf("wheel needs at least one spoke, got %d", spokes)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("wheel radius must be positive, got %v", radius)
	}

	e := newEntity(KindWheel, b)
	e.DX = dx
	e.DY = dy
	e.DAngle = dAngle

	stepAngle := 2 * math.Pi / float64(spokes)
	for n := 0; n < spokes; n++ {
		a := float64(n) * stepAngle
		endX := radius * math.Cos(a)
		endY := radius * math.Sin(a)
		clr := wheelPalette[n%len(wheelPalette)]

		e.list.Append(batch.NewLine(0, 0, endX, endY, clr, spokeWidthRatio*radius))
		e.list.Append(batch.NewEllipseFilled(
			outerDiscDistance*endX, outerDiscDistance*endY,
			outerDiscRatio*radius, outerDiscRatio*radius, clr))
	}

	// center disc last, over the spoke roots
	e.list.Append(batch.NewEllipseFilled(0, 0, hubDiscRatio*radius, hubDiscRatio*radius, wheelHubColor))

	e.X = x
	e.Y = y
	return e, nil
}
