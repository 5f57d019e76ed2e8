package world

import (
	"image/color"
	"shapeanim/batch"
)

// A flake that drops below the bottom edge re-enters this far above the top.
const snowRespawnMargin = 10

// NewSnowDrop builds one falling flake: a filled ellipse at the local origin.
// dy is a fall speed, subtracted from y each tick; dx is a lateral drift that
// reverses every five ticks.
func NewSnowDrop(b Bounds, x, y, width, height, angle, dx, dy, dAngle float64, clr color.RGBA) *Entity {
	e := newEntity(KindSnowDrop, b)
	e.X = x
	e.Y = y
	e.Width = width
	e.Height = height
	e.Angle = angle
	e.DX = dx
	e.DY = dy
	e.DAngle = dAngle
	e.Color = clr

	e.list.Append(batch.NewEllipseFilled(0, 0, width, height, clr))
	return e
}

func (e *Entity) advanceSnow() {
	e.X += e.DX
	e.count++

	// lateral oscillation
	if e.count > 4 {
		e.DX = -e.DX
		e.count = 0
	}

	e.Y -= e.DY
	if e.Y < 0 {
		e.Y = e.bounds.Height + snowRespawnMargin
	}
}
