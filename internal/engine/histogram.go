package engine

import (
	"fmt"
	"math"
)

// Histogram holds 256-bin counts for the red, green, and blue channels plus
// Rec.601 luminance. For any buffer the bins of each channel sum to the pixel
// count.
type Histogram struct {
	Red       [256]uint32 `json:"red"`
	Green     [256]uint32 `json:"green"`
	Blue      [256]uint32 `json:"blue"`
	Luminance [256]uint32 `json:"luminance"`
}

// Generate computes the four-channel histogram of a buffer in a single pass.
func Generate(buf *Buffer) (*Histogram, error) {
	if buf == nil {
		return nil, fmt.Errorf("nil buffer")
	}
	if len(buf.Pix) != buf.Width*buf.Height*4 {
		return nil, fmt.Errorf("pixel data length %d does not match %dx%d RGBA",
			len(buf.Pix), buf.Width, buf.Height)
	}

	h := &Histogram{}
	for i := 0; i < len(buf.Pix); i += 4 {
		r := buf.Pix[i]
		g := buf.Pix[i+1]
		b := buf.Pix[i+2]
		h.Red[r]++
		h.Green[g]++
		h.Blue[b]++

		lum := int(math.Round(0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)))
		if lum > 255 {
			lum = 255
		}
		h.Luminance[lum]++
	}
	return h, nil
}

// ToneDistribution counts how many pixels fall into each tone range, using
// the same luminance bucketing as color grading.
func (h *Histogram) ToneDistribution() (shadows, midtones, highlights uint64) {
	for bin, n := range h.Luminance {
		switch ClassifyTone(float64(bin) / 255) {
		case ToneShadows:
			shadows += uint64(n)
		case ToneMidtones:
			midtones += uint64(n)
		case ToneHighlights:
			highlights += uint64(n)
		}
	}
	return shadows, midtones, highlights
}
