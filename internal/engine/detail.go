package engine

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/blur"
)

// clarityRadius picks the Gaussian radius for the local-contrast base so the
// effect scales with image size.
func clarityRadius(width, height int) float64 {
	edge := width
	if height > edge {
		edge = height
	}
	r := float64(edge) * 0.01
	if r < 2 {
		r = 2
	}
	return r
}

// blurredLuminance renders the buffer's luminance plane and returns a
// Gaussian-blurred copy of it, one value per pixel in [0,1].
func blurredLuminance(buf *Buffer) []float64 {
	gray := image.NewGray(image.Rect(0, 0, buf.Width, buf.Height))
	for i, j := 0, 0; i < len(buf.Pix); i, j = i+4, j+1 {
		lum := Luminance(float64(buf.Pix[i])/255, float64(buf.Pix[i+1])/255, float64(buf.Pix[i+2])/255)
		gray.Pix[j] = denorm(lum)
	}

	blurred := blur.Gaussian(gray, clarityRadius(buf.Width, buf.Height))

	out := make([]float64, buf.Width*buf.Height)
	for j := range out {
		out[j] = float64(blurred.Pix[j*4]) / 255
	}
	return out
}

// applyDetail runs the spatial second pass: clarity (blur-based local
// contrast in the midtones), dehaze (contrast expansion around middle gray),
// and vignette (radial falloff from the image center). It mutates buf in
// place; callers only invoke it when at least one of the three fields is
// non-zero.
func applyDetail(buf *Buffer, adj *Adjustments) {
	var base []float64
	if adj.Clarity != 0 {
		base = blurredLuminance(buf)
	}

	invW := 1 / math.Max(float64(buf.Width)-1, 1)
	invH := 1 / math.Max(float64(buf.Height)-1, 1)
	dehazeFactor := 1 + adj.Dehaze*0.4

	for y := 0; y < buf.Height; y++ {
		yNorm := (float64(y)*invH - 0.5) * 2
		for x := 0; x < buf.Width; x++ {
			i := (y*buf.Width + x) * 4
			r := float64(buf.Pix[i]) / 255
			g := float64(buf.Pix[i+1]) / 255
			b := float64(buf.Pix[i+2]) / 255

			if adj.Clarity != 0 {
				lum := Luminance(r, g, b)
				// Weight toward midtones so deep shadows and highlights
				// keep their shape.
				mid := 1 - math.Min(math.Abs(lum-0.5)*2, 1)
				boost := adj.Clarity * 0.6 * mid * (lum - base[y*buf.Width+x])
				r += boost
				g += boost
				b += boost
			}

			if adj.Dehaze != 0 {
				r = (r-0.5)*dehazeFactor + 0.5
				g = (g-0.5)*dehazeFactor + 0.5
				b = (b-0.5)*dehazeFactor + 0.5
			}

			if adj.Vignette != 0 {
				xNorm := (float64(x)*invW - 0.5) * 2
				dist := math.Min(math.Sqrt(xNorm*xNorm+yNorm*yNorm)*0.7071, 1)
				f := 1 - adj.Vignette*dist*dist
				r *= f
				g *= f
				b *= f
			}

			buf.Pix[i] = denorm(r)
			buf.Pix[i+1] = denorm(g)
			buf.Pix[i+2] = denorm(b)
		}
	}
}
