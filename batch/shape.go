package batch

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// ellipseSegments is the perimeter resolution of tessellated ellipses.
const ellipseSegments = 32

type Kind uint8

const (
	KindLine Kind = iota
	KindEllipse
	KindEllipseOutline
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindEllipse:
		return "ellipse"
	case KindEllipseOutline:
		return "ellipse-outline"
	}
	return "unknown"
}

// A Shape is a single primitive tessellated once, at construction, into
// triangles in local coordinates. The descriptor fields stay as written;
// only the owning list's transform moves a shape on screen.
type Shape struct {
	Kind  Kind
	Color color.RGBA

	// Line endpoints (KindLine). Width is the stroke width of a line or the
	// border width of an outline.
	X1, Y1, X2, Y2 float64
	Width          float64

	// Ellipse center and radii (KindEllipse, KindEllipseOutline).
	CX, CY, RX, RY float64

	vertices []ebiten.Vertex
	indices  []uint16
}

func vertex(x, y float64, clr color.RGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(clr.R) / 255,
		ColorG: float32(clr.G) / 255,
		ColorB: float32(clr.B) / 255,
		ColorA: float32(clr.A) / 255,
	}
}

// NewLine returns a line segment from (x1, y1) to (x2, y2) drawn as a quad
// of the given stroke width. A zero-length segment keeps its descriptor but
// tessellates to nothing.
func NewLine(x1, y1, x2, y2 float64, clr color.RGBA, width float64) *Shape {
	s := &Shape{
		Kind:  KindLine,
		Color: clr,
		X1:    x1, Y1: y1, X2: x2, Y2: y2,
		Width: width,
	}

	length := math.Hypot(x2-x1, y2-y1)
	if length == 0 || width <= 0 {
		return s
	}

	// Perpendicular offset of half the stroke width.
	nx := -(y2 - y1) / length * width / 2
	ny := (x2 - x1) / length * width / 2
	s.vertices = []ebiten.Vertex{
		vertex(x1+nx, y1+ny, clr),
		vertex(x1-nx, y1-ny, clr),
		vertex(x2+nx, y2+ny, clr),
		vertex(x2-nx, y2-ny, clr),
	}
	s.indices = []uint16{0, 1, 2, 1, 3, 2}
	return s
}

// NewEllipseFilled returns a filled ellipse of radii (rx, ry) centered on
// (cx, cy), tessellated as a fan around the center.
func NewEllipseFilled(cx, cy, rx, ry float64, clr color.RGBA) *Shape {
	s := &Shape{
		Kind:  KindEllipse,
		Color: clr,
		CX:    cx, CY: cy, RX: rx, RY: ry,
	}
	if rx <= 0 || ry <= 0 {
		return s
	}

	s.vertices = make([]ebiten.Vertex, 0, ellipseSegments+1)
	s.indices = make([]uint16, 0, ellipseSegments*3)
	s.vertices = append(s.vertices, vertex(cx, cy, clr))
	for i := 0; i < ellipseSegments; i++ {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		s.vertices = append(s.vertices, vertex(cx+rx*math.Cos(a), cy+ry*math.Sin(a), clr))
		next := uint16((i+1)%ellipseSegments + 1)
		s.indices = append(s.indices, 0, uint16(i+1), next)
	}
	return s
}

// NewEllipseOutline returns the edge of an ellipse as a ring of the given
// border width straddling the (rx, ry) perimeter.
func NewEllipseOutline(cx, cy, rx, ry float64, clr color.RGBA, border float64) *Shape {
	s := &Shape{
		Kind:  KindEllipseOutline,
		Color: clr,
		CX:    cx, CY: cy, RX: rx, RY: ry,
		Width: border,
	}
	if rx <= 0 || ry <= 0 || border <= 0 {
		return s
	}

	orx, ory := rx+border/2, ry+border/2
	irx, iry := math.Max(rx-border/2, 0), math.Max(ry-border/2, 0)
	s.vertices = make([]ebiten.Vertex, 0, ellipseSegments*2)
	s.indices = make([]uint16, 0, ellipseSegments*6)
	for i := 0; i < ellipseSegments; i++ {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		cos, sin := math.Cos(a), math.Sin(a)
		s.vertices = append(s.vertices,
			vertex(cx+orx*cos, cy+ory*sin, clr),
			vertex(cx+irx*cos, cy+iry*sin, clr),
		)
		o := uint16(2 * i)
		n := uint16(2 * ((i + 1) % ellipseSegments))
		s.indices = append(s.indices, o, o+1, n, o+1, n+1, n)
	}
	return s
}
