package scene

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"shapeanim/batch"
	"shapeanim/utils"
	"shapeanim/world"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ErrQuit reports a clean keyboard exit out of ebiten.RunGame.
var ErrQuit = errors.New("quit")

const deg = math.Pi / 180

const wheelSpokes = 3

// The overlay averages tick timings over the last second at the default rate.
const timingWindow = 30

// Scene owns the animated world and drives the fixed-rate loop.
type Scene struct {
	cfg *utils.Config
	bg  color.RGBA

	world *world.World

	debug       bool
	updateTimes *timingBuffer
	drawTimes   *timingBuffer
}

var _ ebiten.Game = (*Scene)(nil)

// New composes the demo: a backdrop of falling snow, four wheels crossing
// from the edges, and two bouncing balls. With LegacySetup on, the wheel and
// ball block is rebuilt after every single snow drop instead of once.
func New(cfg *utils.Config, rng *rand.Rand) (*Scene, error) {
	s := &Scene{
		cfg: cfg,
		bg: color.RGBA{
			cfg.Scene.Background.R,
			cfg.Scene.Background.G,
			cfg.Scene.Background.B,
			255,
		},
		world:       world.NewWorld(),
		debug:       true,
		updateTimes: newTimingBuffer(timingWindow),
		drawTimes:   newTimingBuffer(timingWindow),
	}

	b := world.Bounds{
		Width:  float64(cfg.Window.Width),
		Height: float64(cfg.Window.Height),
	}

	for n := 0; n < cfg.Scene.SnowDrops; n++ {
		s.world.AddEntity(newSnowDrop(b, rng, n))
		if cfg.Scene.LegacySetup {
			if err := s.addFixtures(b); err != nil {
				return nil, err
			}
		}
	}
	if !cfg.Scene.LegacySetup {
		if err := s.addFixtures(b); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// newSnowDrop samples the n-th flake. Odd flakes start out drifting left,
// and every tenth one is doubled in size.
func newSnowDrop(b world.Bounds, rng *rand.Rand, n int) *world.Entity {
	x := float64(rng.Intn(int(b.Width)))
	y := float64(rng.Intn(int(b.Height)))
	width := float64(2 + rng.Intn(4))
	height := float64(2 + rng.Intn(4))

	dx := float64(5+rng.Intn(3)) / 10
	dy := float64(5+rng.Intn(3)) / 10

	if n%2 > 0 {
		dx = -dx
	}
	if n%10 == 0 {
		width = 2 * width
		height = 2 * height
	}

	return world.NewSnowDrop(b, x, y, width, height, 0, dx, dy, 0,
		color.RGBA{255, 255, 255, 255})
}

// addFixtures adds the fixed cast: two large wheels rolling in from the
// sides, two small wheels crossing vertically, and two balls launched from
// the bottom corners.
func (s *Scene) addFixtures(b world.Bounds) error {
	cx, cy := b.Width/2, b.Height/2

	wheels := []struct {
		x, y, radius   float64
		dx, dy, dAngle float64
	}{
		{0, cy, 150, 1, 0, 1 * deg},
		{b.Width, cy, 150, -1, 0, -1 * deg},
		{cx, b.Height, 80, 0, -2, 4 * deg},
		{cx, 0, 80, 0, 2, -4 * deg},
	}
	for _, w := range wheels {
		wheel, err := world.NewWheel(b, w.x, w.y, w.radius, wheelSpokes, w.dx, w.dy, w.dAngle)
		if err != nil {
			return fmt.Errorf("wheel at (%v, %v): %w", w.x, w.y, err)
		}
		s.world.AddEntity(wheel)
	}

	s.world.AddEntity(world.NewBouncingBall(b, 0, 0, 80, 100, 4, 4, color.RGBA{255, 0, 0, 255}))
	s.world.AddEntity(world.NewBouncingBall(b, b.Width, 0, 80, 100, -4, 4, color.RGBA{0, 255, 0, 255}))
	return nil
}

// Update advances every entity by one tick. Escape or Q quits, D toggles the
// debug overlay.
func (s *Scene) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ErrQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		s.debug = !s.debug
	}

	start := time.Now()
	s.world.Update()
	s.updateTimes.Add(time.Since(start))
	return nil
}

func (s *Scene) debugString() string {
	return strings.Join([]string{
		fmt.Sprintf("TPS: %0.02f, FPS: %0.02f", ebiten.CurrentTPS(), ebiten.CurrentFPS()),
		fmt.Sprintf("Shapes: %d", s.world.Len()),
		fmt.Sprintf("Update: %v, Draw: %v", s.updateTimes.Average(), s.drawTimes.Average()),
	}, "\n")
}

func (s *Scene) Draw(screen *ebiten.Image) {
	start := time.Now()
	s.draw(screen)
	s.drawTimes.Add(time.Since(start))

	if !s.debug {
		return
	}
	ebitenutil.DebugPrint(screen, s.debugString())
	h := float64(s.cfg.Window.Height)
	s.world.ForEachEntity(func(shape *world.Entity) {
		if shape.Kind == world.KindSnowDrop {
			return
		}
		label := fmt.Sprintf("%s %s\n(%0.0f,%0.0f)", shape.Kind, shape.ID[:4], shape.X, shape.Y)
		ebitenutil.DebugPrintAt(screen, label, int(shape.X), int(h-shape.Y)+16)
	})
}

// draw is the render path proper: clear, then every entity in order. Tests
// drive it with a recording canvas instead of the screen.
func (s *Scene) draw(dst batch.Canvas) {
	dst.Fill(s.bg)
	s.world.Draw(dst)
}

func (s *Scene) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return s.cfg.Window.Width, s.cfg.Window.Height
}

// Shapes exposes the entity collection in update order.
func (s *Scene) Shapes() []*world.Entity { return s.world.Entities() }
