package export

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/lao-tseu-is-alive/go-boids/pkg/flock"
	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
	"golang.org/x/image/vector"
)

// Canvas renders agents offscreen, one arrow-head polygon per agent,
// rotated along its velocity.
type Canvas struct {
	img        *image.RGBA
	background *image.Uniform

	raster *vector.Rasterizer
	masks  map[int]*image.Alpha
	paint  image.Uniform
}

// NewCanvas allocates a width x height frame painted with background on Clear.
func NewCanvas(width, height int, background color.RGBA) *Canvas {
	return &Canvas{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		background: image.NewUniform(background),
		raster:     vector.NewRasterizer(0, 0),
		masks:      make(map[int]*image.Alpha),
	}
}

// Image is the frame buffer, valid until the next Clear or Draw.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Clear fills the frame with the background color.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), c.background, image.Point{}, draw.Src)
}

// DrawSimulation draws every species, in list order.
func (c *Canvas) DrawSimulation(sim *flock.Simulation) {
	for _, sp := range sim.Species() {
		c.DrawStore(sp.Store())
	}
}

// DrawStore draws the agents of st in index order.
func (c *Canvas) DrawStore(st *flock.Store) {
	for i := range st.Positions() {
		p, v := st.Positions()[i], st.Velocities()[i]
		c.drawAgent(p, v.Angle(), float64(st.Sizes()[i]), st.Colors()[i])
	}
}

// BoidShape returns the outline of an agent of the given size facing +x,
// centered on the origin: nose, upper wing, notch, lower wing.
func BoidShape(size float64) [4]geometry.Vector2D {
	h, q := size/2, size/4
	return [4]geometry.Vector2D{{X: h}, {X: -h, Y: -q}, {X: -q}, {X: -h, Y: q}}
}

func (c *Canvas) drawAgent(p geometry.Vector2D, angle, size float64, clr color.RGBA) {
	// the farthest shape point is sqrt(h²+q²) ≈ 1.12h from the center
	r := int(math.Ceil(size*0.56)) + 1
	side := 2 * r
	mask := c.mask(side)

	x0, y0 := int(math.Floor(p.X))-r, int(math.Floor(p.Y))-r
	local := p.Sub(geometry.Vector2D{X: float64(x0), Y: float64(y0)})

	c.raster.Reset(side, side)
	c.raster.DrawOp = draw.Src
	for i, pt := range BoidShape(size) {
		q := local.Add(pt.Rotate(angle))
		if i == 0 {
			c.raster.MoveTo(float32(q.X), float32(q.Y))
		} else {
			c.raster.LineTo(float32(q.X), float32(q.Y))
		}
	}
	c.raster.ClosePath()
	c.raster.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	c.paint.C = clr
	dst := image.Rect(x0, y0, x0+side, y0+side)
	draw.DrawMask(c.img, dst, &c.paint, image.Point{}, mask, image.Point{}, draw.Over)
}

func (c *Canvas) mask(side int) *image.Alpha {
	m, ok := c.masks[side]
	if !ok {
		m = image.NewAlpha(image.Rect(0, 0, side, side))
		c.masks[side] = m
	}
	return m
}
