package batch

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Canvas is the surface a list renders onto. *ebiten.Image satisfies it;
// tests substitute a recorder.
type Canvas interface {
	Fill(clr color.Color)
	DrawTriangles(vertices []ebiten.Vertex, indices []uint16, img *ebiten.Image, options *ebiten.DrawTrianglesOptions)
	Bounds() image.Rectangle
}

var _ Canvas = (*ebiten.Image)(nil)

// The source texture for every triangle: the center texel of a small white
// image, inset so filtering never samples past its edge.
var (
	emptyImage    = ebiten.NewImage(3, 3)
	emptySubImage = emptyImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	emptyImage.Fill(color.White)
}

// A ShapeList owns an ordered set of shapes and renders them as one unit.
// Shape geometry stays in local coordinates; CenterX, CenterY and Angle place
// the whole list in the world each frame. World coordinates have y growing
// upward from the bottom edge; Draw projects onto the canvas' y-down pixel
// grid.
type ShapeList struct {
	CenterX float64
	CenterY float64
	Angle   float64 // radians, counter-clockwise

	shapes   []*Shape
	vertices []ebiten.Vertex
	indices  []uint16
	scratch  []ebiten.Vertex
}

func NewShapeList() *ShapeList {
	return &ShapeList{}
}

// Append adds s after every shape already in the list. Later shapes paint
// over earlier ones.
func (l *ShapeList) Append(s *Shape) {
	base := uint16(len(l.vertices))
	l.shapes = append(l.shapes, s)
	l.vertices = append(l.vertices, s.vertices...)
	for _, i := range s.indices {
		l.indices = append(l.indices, base+i)
	}
}

// Len reports the number of appended shapes.
func (l *ShapeList) Len() int { return len(l.shapes) }

func (l *ShapeList) Shapes() []*Shape { return l.shapes }

// geom is the local-to-screen transform for a canvas of the given height:
// flip the y axis, spin by -Angle (screen rotation runs clockwise), then move
// to the list's world position.
func (l *ShapeList) geom(height float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(1, -1)
	g.Rotate(-l.Angle)
	g.Translate(l.CenterX, height-l.CenterY)
	return g
}

// Draw renders every shape in a single DrawTriangles call under the current
// transform. The retained local vertices are never written to; the
// transformed copies live in a scratch buffer reused across frames.
func (l *ShapeList) Draw(dst Canvas) {
	if len(l.indices) == 0 {
		return
	}

	g := l.geom(float64(dst.Bounds().Dy()))
	if cap(l.scratch) < len(l.vertices) {
		l.scratch = make([]ebiten.Vertex, len(l.vertices))
	}
	l.scratch = l.scratch[:len(l.vertices)]
	for i, v := range l.vertices {
		x, y := g.Apply(float64(v.DstX), float64(v.DstY))
		v.DstX = float32(x)
		v.DstY = float32(y)
		l.scratch[i] = v
	}
	dst.DrawTriangles(l.scratch, l.indices, emptySubImage, &ebiten.DrawTrianglesOptions{})
}
