package export

import (
	"bytes"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"

	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// FrameEncoder is the actor collecting rendered frames into an animated GIF.
//
// It accepts a *wrapperspb.BytesValue holding the RGBA pixels of one frame
// (Width*Height*4 bytes, row major) and answers an *emptypb.Empty with the
// encoded GIF as a *wrapperspb.BytesValue. Frames received after the answer
// start a new animation.
type FrameEncoder struct {
	Width, Height int
	Delay         int // hundredths of a second per frame

	anim *gif.GIF
}

// NewFrameEncoder returns an encoder for frames of the given size, shown for
// delay hundredths of a second each.
func NewFrameEncoder(width, height, delay int) *FrameEncoder {
	return &FrameEncoder{Width: width, Height: height, Delay: delay}
}

func (e *FrameEncoder) PreStart(ctx *actor.Context) error {
	e.anim = &gif.GIF{}
	return nil
}

func (e *FrameEncoder) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
		ctx.Logger().Debugf("%s ready for %dx%d frames", ctx.Self().Name(), e.Width, e.Height)
	case *wrapperspb.BytesValue:
		if err := e.add(msg.GetValue()); err != nil {
			ctx.Logger().Errorf("dropping frame %d: %v", len(e.anim.Image)+1, err)
		}
	case *emptypb.Empty:
		ctx.Response(wrapperspb.Bytes(e.flush(ctx)))
	default:
		ctx.Unhandled()
	}
}

func (e *FrameEncoder) PostStop(ctx *actor.Context) error {
	e.anim = nil
	return nil
}

// Quantize maps an RGBA frame onto the Plan 9 palette with Floyd-Steinberg dithering.
func Quantize(src image.Image) *image.Paletted {
	dst := image.NewPaletted(src.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(dst, dst.Bounds(), src, src.Bounds().Min)
	return dst
}

func (e *FrameEncoder) add(pix []byte) error {
	if len(pix) != e.Width*e.Height*4 {
		return errFrameSize(len(pix), e.Width, e.Height)
	}
	src := &image.RGBA{Pix: pix, Stride: 4 * e.Width, Rect: image.Rect(0, 0, e.Width, e.Height)}
	e.anim.Image = append(e.anim.Image, Quantize(src))
	e.anim.Delay = append(e.anim.Delay, e.Delay)
	return nil
}

// flush encodes the collected frames and resets the animation. An empty
// or failed animation yields nil.
func (e *FrameEncoder) flush(ctx *actor.ReceiveContext) []byte {
	anim := e.anim
	e.anim = &gif.GIF{}
	if len(anim.Image) == 0 {
		return nil
	}
	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, anim); err != nil {
		ctx.Logger().Errorf("encoding %d frames: %v", len(anim.Image), err)
		return nil
	}
	ctx.Logger().Debugf("encoded %d frames into %d bytes", len(anim.Image), buf.Len())
	return buf.Bytes()
}
