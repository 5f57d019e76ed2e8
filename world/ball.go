package world

import (
	"image/color"
	"shapeanim/batch"
)

// NewBouncingBall builds a ball: one filled ellipse of the given radii at the
// local origin, bouncing off the world edges.
func NewBouncingBall(b Bounds, x, y, width, height, dx, dy float64, clr color.RGBA) *Entity {
	e := newEntity(KindBouncingBall, b)
	e.Width = width
	e.Height = height
	e.DX = dx
	e.DY = dy
	e.Color = clr

	e.list.Append(batch.NewEllipseFilled(0, 0, width, height, clr))

	e.X = x
	e.Y = y
	return e
}
