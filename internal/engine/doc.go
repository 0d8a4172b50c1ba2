// Package engine implements the numeric color-transform pipeline at the heart
// of lutforge: parametric tonal/color adjustments over raw RGBA buffers,
// tone-range color grading, an 8-range HSL mixer, histogram generation, and
// the color-wheel coordinate math that drives interactive grading controls.
//
// # Value Conventions
//
// Pixel buffers are interleaved 8-bit RGBA, row-major, with
// len(Pix) == Width*Height*4. All internal math happens on channels
// normalized to [0,1]; results are rounded and clamped back to 8 bits.
// Adjustment fields use the following scales:
//   - Exposure: stops, typically [-5,5]
//   - Contrast, Highlights, Shadows, Whites, Blacks, Saturation, Vibrance,
//     Clarity, Dehaze, Vignette: normalized [-1,1]
//   - Temperature, Tint: [-100,100]
//   - HSL hue offsets: degrees [-180,180]; saturation/lightness [-100,100]
//   - Color grading offsets: [-100,100] per channel
//
// All fields default to zero, which is the identity transform.
//
// # Tone Ranges
//
// Pixels are bucketed into shadows/midtones/highlights by Rec.601 luminance
// with hard thresholds at 0.33 and 0.67. The hard cut produces visible
// banding at the boundaries; that matches the reference behavior and is kept
// deliberately rather than smoothed.
//
// # Thread Safety
//
// Every function in this package is a pure function of its inputs and is safe
// to call concurrently. Process and Generate never retain or mutate their
// input buffer.
package engine
