package world

import (
	"image/color"
	"shapeanim/batch"

	"github.com/segmentio/ksuid"
)

// Bounds is the rectangle entities move in, in pixels. y grows upward from
// the bottom edge.
type Bounds struct {
	Width  float64
	Height float64
}

// Kind selects the per-tick behavior of an entity.
type Kind uint8

const (
	KindSnowDrop Kind = iota
	KindWheel
	KindBouncingBall
)

func (k Kind) String() string {
	switch k {
	case KindSnowDrop:
		return "snow"
	case KindWheel:
		return "wheel"
	case KindBouncingBall:
		return "ball"
	}
	return "unknown"
}

// An Entity is one animated figure: kinematic state plus the retained shapes
// that draw it. Geometry is built once, at construction, in local coordinates
// around the origin; moving the entity only moves its list transform.
type Entity struct {
	ID    string
	Kind  Kind
	Color color.RGBA

	X, Y          float64
	Width, Height float64
	Angle         float64 // radians, counter-clockwise

	DX     float64
	DY     float64
	DAngle float64

	count  int // lateral oscillation counter, used by snow
	bounds Bounds
	list   *batch.ShapeList
}

func newEntity(kind Kind, b Bounds) *Entity {
	return &Entity{
		ID:     ksuid.New().String(),
		Kind:   kind,
		bounds: b,
		list:   batch.NewShapeList(),
	}
}

// Advance steps the entity by one tick.
func (e *Entity) Advance() {
	switch e.Kind {
	case KindSnowDrop:
		e.advanceSnow()
	default:
		e.advanceLinear()
	}
}

func (e *Entity) advanceLinear() {
	e.X += e.DX
	e.Y += e.DY
	e.Angle += e.DAngle

	// Bounce off the edges. Each check also keys on direction, so one
	// crossing flips a delta exactly once.
	if e.X < 0 && e.DX < 0 {
		e.DX = -e.DX
	}
	if e.Y < 0 && e.DY < 0 {
		e.DY = -e.DY
	}
	if e.X > e.bounds.Width && e.DX > 0 {
		e.DX = -e.DX
	}
	if e.Y > e.bounds.Height && e.DY > 0 {
		e.DY = -e.DY
	}
}

// Draw places the entity's shapes at its current position and angle and
// renders them onto dst.
func (e *Entity) Draw(dst batch.Canvas) {
	e.list.CenterX = e.X
	e.list.CenterY = e.Y
	e.list.Angle = e.Angle
	e.list.Draw(dst)
}

// Shapes exposes the retained primitives in append order.
func (e *Entity) Shapes() []*batch.Shape { return e.list.Shapes() }
