package imageio

import (
	"fmt"
	"image"

	"github.com/darkframe/lutforge/internal/engine"
	"github.com/disintegration/imaging"
)

// ToBuffer converts any decoded image into the engine's interleaved RGBA
// layout. The source image is copied, never aliased.
func ToBuffer(img image.Image) (*engine.Buffer, error) {
	nrgba := imaging.Clone(img)
	b := nrgba.Bounds()
	return engine.NewBuffer(b.Dx(), b.Dy(), nrgba.Pix)
}

// ToImage wraps a buffer as an *image.NRGBA sharing the same pixel data.
func ToImage(buf *engine.Buffer) *image.NRGBA {
	return &image.NRGBA{
		Pix:    buf.Pix,
		Stride: buf.Width * 4,
		Rect:   image.Rect(0, 0, buf.Width, buf.Height),
	}
}

// Save encodes a buffer to path. The format is chosen by file extension
// (.png, .jpg, .jpeg, .gif, .bmp, .tif, .tiff).
func Save(buf *engine.Buffer, path string) error {
	if buf == nil {
		return fmt.Errorf("nil buffer")
	}
	if err := imaging.Save(ToImage(buf), path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// Fit downscales a buffer so its longest edge is at most maxEdge, preserving
// aspect ratio. Buffers already within the bound are returned unchanged.
func Fit(buf *engine.Buffer, maxEdge int) (*engine.Buffer, error) {
	if maxEdge <= 0 {
		return nil, fmt.Errorf("invalid max edge %d", maxEdge)
	}
	if buf.Width <= maxEdge && buf.Height <= maxEdge {
		return buf, nil
	}
	scaled := imaging.Fit(ToImage(buf), maxEdge, maxEdge, imaging.Lanczos)
	return ToBuffer(scaled)
}
