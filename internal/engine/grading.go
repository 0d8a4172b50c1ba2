package engine

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ApplyColorGrading adds the tone-range RGB offsets to a normalized [0,1]
// triple. The tone range is classified from the input triple's luminance;
// offsets are percentages of full scale and each output channel is clamped
// to [0,1]. With all offsets at zero this is the identity (modulo the clamp).
func ApplyColorGrading(r, g, b float64, cg ColorGrading) (float64, float64, float64) {
	offset := cg.Offset(ClassifyTone(Luminance(r, g, b)))
	return clamp01(r + offset.Red/100),
		clamp01(g + offset.Green/100),
		clamp01(b + offset.Blue/100)
}

// hueRangeShift returns the HSL shift of the fixed color range containing
// the given hue (degrees). Range boundaries: red wraps 345..15, then
// orange, yellow to 75, green to 165, aqua to 195, blue to 255, purple to
// 285, magenta back to 345.
func hueRangeShift(hue float64, mix HSLMix) HSLShift {
	h := math.Mod(math.Mod(hue, 360)+360, 360)
	switch {
	case h >= 345 || h < 15:
		return mix.Red
	case h < 45:
		return mix.Orange
	case h < 75:
		return mix.Yellow
	case h < 165:
		return mix.Green
	case h < 195:
		return mix.Aqua
	case h < 255:
		return mix.Blue
	case h < 285:
		return mix.Purple
	default:
		return mix.Magenta
	}
}

// ApplyHSLMix applies the 8-range HSL offsets to a normalized [0,1] triple:
// the pixel's hue selects one range, whose hue/saturation/lightness offsets
// are added in HSL space before converting back to clamped RGB. Pure function
// of its inputs; identity when every shift is zero.
func ApplyHSLMix(r, g, b float64, mix HSLMix) (float64, float64, float64) {
	if mix == (HSLMix{}) {
		return clamp01(r), clamp01(g), clamp01(b)
	}

	h, s, l := colorful.Color{R: clamp01(r), G: clamp01(g), B: clamp01(b)}.Hsl()
	shift := hueRangeShift(h, mix)

	h = math.Mod(math.Mod(h+shift.Hue, 360)+360, 360)
	s = clamp01(s + shift.Saturation/100)
	l = clamp01(l + shift.Lightness/100)

	c := colorful.Hsl(h, s, l).Clamped()
	return c.R, c.G, c.B
}

// TransformFunc maps one normalized RGB triple to another. Implementations
// must be pure and keep outputs in [0,1].
type TransformFunc func(r, g, b float64) (float64, float64, float64)

// GradingTransform composes the HSL mixer and the tone-range color grading
// into the single per-color mapping that LUT export samples. HSL shifts run
// first, then grading offsets, mirroring the interactive pipeline.
func GradingTransform(adj Adjustments) TransformFunc {
	return func(r, g, b float64) (float64, float64, float64) {
		r, g, b = ApplyHSLMix(r, g, b, adj.HSL)
		return ApplyColorGrading(r, g, b, adj.ColorGrading)
	}
}
