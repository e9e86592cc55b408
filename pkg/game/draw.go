package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-boids/pkg/export"
	"github.com/lao-tseu-is-alive/go-boids/pkg/flock"
	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
)

// agents drawn per DrawTriangles call; 4 vertices and 6 indices each keeps
// both counts below the uint16 index range
const batchSize = 8192

var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

// agentBatch holds the vertex buffers reused from frame to frame.
type agentBatch struct {
	vertices []ebiten.Vertex
	indices  []uint16
}

// appendAgent adds the two triangles of one agent, tinted with its color.
func (b *agentBatch) appendAgent(p geometry.Vector2D, angle, size float64, clr color.RGBA) {
	base := uint16(len(b.vertices))
	r, g, bl := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255
	for _, pt := range export.BoidShape(size) {
		q := p.Add(pt.Rotate(angle))
		b.vertices = append(b.vertices, ebiten.Vertex{
			DstX:   float32(q.X),
			DstY:   float32(q.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: bl,
			ColorA: 1,
		})
	}
	// nose, upper wing, notch + nose, notch, lower wing
	b.indices = append(b.indices, base, base+1, base+2, base, base+2, base+3)
}

func (b *agentBatch) reset() {
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}

// drawStore renders every agent of st as a filled arrow facing its velocity.
func (b *agentBatch) drawStore(screen *ebiten.Image, st *flock.Store) {
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	b.reset()
	for i := range st.Positions() {
		p, v := st.Positions()[i], st.Velocities()[i]
		b.appendAgent(p, v.Angle(), float64(st.Sizes()[i]), st.Colors()[i])
		if len(b.vertices) == 4*batchSize {
			screen.DrawTriangles(b.vertices, b.indices, whiteImage, op)
			b.reset()
		}
	}
	if len(b.indices) > 0 {
		screen.DrawTriangles(b.vertices, b.indices, whiteImage, op)
	}
}
