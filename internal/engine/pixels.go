package engine

import (
	"fmt"
	"math"
)

// Buffer is an interleaved 8-bit RGBA pixel buffer, row-major.
//
// Invariant: len(Pix) == Width*Height*4. The buffer is owned by the caller;
// processing functions never mutate their input and return a fresh buffer of
// identical shape.
type Buffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewBuffer wraps pixel data in a Buffer after checking the shape invariant.
func NewBuffer(width, height int, pix []uint8) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}
	if len(pix) != width*height*4 {
		return nil, fmt.Errorf("pixel data length %d does not match %dx%d RGBA (want %d)",
			len(pix), width, height, width*height*4)
	}
	return &Buffer{Width: width, Height: height, Pix: pix}, nil
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// denorm converts a normalized channel back to 8 bits, rounding and clamping
// out-of-gamut values instead of failing.
func denorm(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v*255))))
}

// pipelineConsts holds the per-image constants of the per-pixel pipeline so
// they are computed once, not per pixel.
type pipelineConsts struct {
	exposureMult   float64
	contrastFactor float64
	tempNorm       float64
	tintNorm       float64
	satFactor      float64
	highlights     float64
	shadows        float64
	whites         float64
	blacks         float64
	vibrance       float64
}

func newPipelineConsts(a *Adjustments) pipelineConsts {
	contrast := a.Contrast
	return pipelineConsts{
		exposureMult:   math.Pow(2, a.Exposure),
		contrastFactor: (259 * (contrast*255 + 255)) / (255 * (259 - contrast*255)),
		tempNorm:       a.Temperature / 100,
		tintNorm:       a.Tint / 100,
		satFactor:      1 + a.Saturation,
		highlights:     a.Highlights,
		shadows:        a.Shadows,
		whites:         a.Whites,
		blacks:         a.Blacks,
		vibrance:       a.Vibrance,
	}
}

// adjustPixel runs the tonal pipeline on one normalized RGB triple:
// exposure, contrast, highlight/shadow split tone, whites/blacks,
// temperature/tint, then saturation/vibrance.
func adjustPixel(r, g, b float64, k *pipelineConsts) (float64, float64, float64) {
	// Exposure: each stop doubles the signal.
	r *= k.exposureMult
	g *= k.exposureMult
	b *= k.exposureMult

	// Contrast around middle gray. At Contrast=0 the factor is exactly 1.
	r = k.contrastFactor*(r-0.5) + 0.5
	g = k.contrastFactor*(g-0.5) + 0.5
	b = k.contrastFactor*(b-0.5) + 0.5

	// Split tone on the current luminance: brighten/darken highlights above
	// middle gray, shadows below it.
	lum := Luminance(r, g, b)
	if lum > 0.5 {
		f := 1 + k.highlights*(lum-0.5)*2
		r *= f
		g *= f
		b *= f
	} else {
		f := 1 + k.shadows*(0.5-lum)*2
		r *= f
		g *= f
		b *= f
	}

	// Whites lift the bright end, blacks the dark end, keyed off the red
	// channel like the reference pipeline.
	wf := 1 + k.whites*r
	bf := 1 + k.blacks*(1-r)
	r *= wf * bf
	g *= wf * bf
	b *= wf * bf

	// Temperature shifts the blue-orange axis, tint the green axis.
	r *= 1 + k.tempNorm*0.3
	g *= 1 + k.tintNorm*0.2
	b *= 1 - k.tempNorm*0.3

	// Saturation scales the distance from gray; vibrance gives weakly
	// saturated pixels a larger share of the boost.
	gray := Luminance(r, g, b)
	rs := gray + (r-gray)*k.satFactor
	gs := gray + (g-gray)*k.satFactor
	bs := gray + (b-gray)*k.satFactor
	if k.vibrance != 0 {
		currentSat := math.Max(math.Abs(rs-gray), math.Max(math.Abs(gs-gray), math.Abs(bs-gray)))
		vf := 1 + k.vibrance*(1-currentSat)
		rs = gray + (rs-gray)*vf
		gs = gray + (gs-gray)*vf
		bs = gray + (bs-gray)*vf
	}

	return rs, gs, bs
}

// Process applies the tonal/color adjustments to a buffer and returns a new
// buffer of identical shape. Alpha is passed through untouched. With all
// adjustments at zero the output is bit-identical to the input.
//
// After the tonal pass each pixel runs through the same HSL mixer and
// tone-range color grading that LUT export samples, so a grade looks the
// same whether it is baked into a LUT or applied to the image directly.
//
// The per-pixel pass is O(W*H) with no allocation beyond the output buffer.
// The clarity/dehaze/vignette detail pass (when those fields are non-zero)
// runs afterwards on the already-adjusted pixels.
func Process(buf *Buffer, adj Adjustments) (*Buffer, error) {
	if buf == nil {
		return nil, fmt.Errorf("nil buffer")
	}
	if len(buf.Pix) != buf.Width*buf.Height*4 {
		return nil, fmt.Errorf("pixel data length %d does not match %dx%d RGBA",
			len(buf.Pix), buf.Width, buf.Height)
	}
	if err := adj.Validate(); err != nil {
		return nil, err
	}

	k := newPipelineConsts(&adj)
	grade := adj.HSL != (HSLMix{}) || adj.ColorGrading != (ColorGrading{})
	out := &Buffer{Width: buf.Width, Height: buf.Height, Pix: make([]uint8, len(buf.Pix))}

	for i := 0; i < len(buf.Pix); i += 4 {
		r := float64(buf.Pix[i]) / 255
		g := float64(buf.Pix[i+1]) / 255
		b := float64(buf.Pix[i+2]) / 255

		r, g, b = adjustPixel(r, g, b, &k)
		if grade {
			r, g, b = ApplyHSLMix(r, g, b, adj.HSL)
			r, g, b = ApplyColorGrading(r, g, b, adj.ColorGrading)
		}

		out.Pix[i] = denorm(r)
		out.Pix[i+1] = denorm(g)
		out.Pix[i+2] = denorm(b)
		out.Pix[i+3] = buf.Pix[i+3]
	}

	if adj.Clarity != 0 || adj.Dehaze != 0 || adj.Vignette != 0 {
		applyDetail(out, &adj)
	}

	return out, nil
}
