package engine

import "fmt"

// Adjustments holds the full parametric edit applied to an image. The zero
// value is the identity: every field at 0 leaves pixels unchanged.
type Adjustments struct {
	Exposure   float64 `json:"exposure"`   // stops, [-5,5]
	Contrast   float64 `json:"contrast"`   // [-1,1]
	Highlights float64 `json:"highlights"` // [-1,1]
	Shadows    float64 `json:"shadows"`    // [-1,1]
	Whites     float64 `json:"whites"`     // [-1,1]
	Blacks     float64 `json:"blacks"`     // [-1,1]
	Saturation float64 `json:"saturation"` // [-1,1]
	Vibrance   float64 `json:"vibrance"`   // [-1,1]

	Temperature float64 `json:"temperature"` // [-100,100], blue-orange axis
	Tint        float64 `json:"tint"`        // [-100,100], green-magenta axis

	Clarity  float64 `json:"clarity"`  // [-1,1], midtone local contrast
	Dehaze   float64 `json:"dehaze"`   // [-1,1]
	Vignette float64 `json:"vignette"` // [-1,1], positive darkens corners

	HSL          HSLMix       `json:"hsl"`
	ColorGrading ColorGrading `json:"color_grading"`
}

// HSLShift is a hue/saturation/lightness offset for one of the eight fixed
// color ranges. Hue is a degree offset, saturation and lightness are
// percentage offsets.
type HSLShift struct {
	Hue        float64 `json:"hue"`        // [-180,180]
	Saturation float64 `json:"saturation"` // [-100,100]
	Lightness  float64 `json:"lightness"`  // [-100,100]
}

// HSLMix carries per-range HSL offsets for the eight fixed hue ranges.
type HSLMix struct {
	Red     HSLShift `json:"red"`
	Orange  HSLShift `json:"orange"`
	Yellow  HSLShift `json:"yellow"`
	Green   HSLShift `json:"green"`
	Aqua    HSLShift `json:"aqua"`
	Blue    HSLShift `json:"blue"`
	Purple  HSLShift `json:"purple"`
	Magenta HSLShift `json:"magenta"`
}

// RGBOffset is a per-channel additive offset in percent of full scale.
type RGBOffset struct {
	Red   float64 `json:"red"`   // [-100,100]
	Green float64 `json:"green"` // [-100,100]
	Blue  float64 `json:"blue"`  // [-100,100]
}

// ColorGrading holds one RGB offset per tone range.
type ColorGrading struct {
	Shadows    RGBOffset `json:"shadows"`
	Midtones   RGBOffset `json:"midtones"`
	Highlights RGBOffset `json:"highlights"`
}

// Offset returns the RGB offset for the given tone range.
func (cg ColorGrading) Offset(r ToneRange) RGBOffset {
	switch r {
	case ToneShadows:
		return cg.Shadows
	case ToneHighlights:
		return cg.Highlights
	default:
		return cg.Midtones
	}
}

// Clone returns a snapshot of the adjustments that does not alias the live
// value. Saved snapshots (history entries, presets) must use Clone so later
// edits cannot retroactively change them.
//
// Adjustments contains no reference types, so a plain copy is a deep copy;
// Clone exists to make the snapshot intent explicit at call sites.
func (a Adjustments) Clone() Adjustments {
	return a
}

// ValidationError reports an adjustment or option value outside its declared
// range, or an unsupported enum value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks every field against its declared range. The contrast bound
// also keeps the contrast-factor denominator 255*(259-contrast*255) strictly
// positive, so the pipeline can never divide by zero.
func (a Adjustments) Validate() error {
	if a.Exposure < -5 || a.Exposure > 5 {
		return &ValidationError{Field: "exposure", Reason: "must be in [-5,5] stops"}
	}
	unit := []struct {
		name string
		v    float64
	}{
		{"contrast", a.Contrast},
		{"highlights", a.Highlights},
		{"shadows", a.Shadows},
		{"whites", a.Whites},
		{"blacks", a.Blacks},
		{"saturation", a.Saturation},
		{"vibrance", a.Vibrance},
		{"clarity", a.Clarity},
		{"dehaze", a.Dehaze},
		{"vignette", a.Vignette},
	}
	for _, f := range unit {
		if f.v < -1 || f.v > 1 {
			return &ValidationError{Field: f.name, Reason: "must be in [-1,1]"}
		}
	}
	if a.Temperature < -100 || a.Temperature > 100 {
		return &ValidationError{Field: "temperature", Reason: "must be in [-100,100]"}
	}
	if a.Tint < -100 || a.Tint > 100 {
		return &ValidationError{Field: "tint", Reason: "must be in [-100,100]"}
	}

	shifts := []struct {
		name string
		s    HSLShift
	}{
		{"hsl.red", a.HSL.Red}, {"hsl.orange", a.HSL.Orange},
		{"hsl.yellow", a.HSL.Yellow}, {"hsl.green", a.HSL.Green},
		{"hsl.aqua", a.HSL.Aqua}, {"hsl.blue", a.HSL.Blue},
		{"hsl.purple", a.HSL.Purple}, {"hsl.magenta", a.HSL.Magenta},
	}
	for _, f := range shifts {
		if f.s.Hue < -180 || f.s.Hue > 180 {
			return &ValidationError{Field: f.name + ".hue", Reason: "must be in [-180,180]"}
		}
		if f.s.Saturation < -100 || f.s.Saturation > 100 {
			return &ValidationError{Field: f.name + ".saturation", Reason: "must be in [-100,100]"}
		}
		if f.s.Lightness < -100 || f.s.Lightness > 100 {
			return &ValidationError{Field: f.name + ".lightness", Reason: "must be in [-100,100]"}
		}
	}

	offsets := []struct {
		name string
		o    RGBOffset
	}{
		{"color_grading.shadows", a.ColorGrading.Shadows},
		{"color_grading.midtones", a.ColorGrading.Midtones},
		{"color_grading.highlights", a.ColorGrading.Highlights},
	}
	for _, f := range offsets {
		for _, c := range []struct {
			name string
			v    float64
		}{{"red", f.o.Red}, {"green", f.o.Green}, {"blue", f.o.Blue}} {
			if c.v < -100 || c.v > 100 {
				return &ValidationError{Field: f.name + "." + c.name, Reason: "must be in [-100,100]"}
			}
		}
	}
	return nil
}
