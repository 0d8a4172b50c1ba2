package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/darkframe/lutforge/internal/engine"
	"github.com/darkframe/lutforge/internal/lut"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// adjustmentFlags collects the inline adjustment flags shared by the adjust,
// histogram, lut, and preset save commands.
type adjustmentFlags struct {
	exposure    float64
	contrast    float64
	highlights  float64
	shadows     float64
	whites      float64
	blacks      float64
	temperature float64
	tint        float64
	saturation  float64
	vibrance    float64
	clarity     float64
	dehaze      float64
	vignette    float64

	shadowOffset    string
	midtoneOffset   string
	highlightOffset string

	presetID string
}

func (f *adjustmentFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.Float64Var(&f.exposure, "exposure", 0, "exposure in stops, -5 to 5")
	fl.Float64Var(&f.contrast, "contrast", 0, "contrast, -1 to 1")
	fl.Float64Var(&f.highlights, "highlights", 0, "highlight lift/cut, -1 to 1")
	fl.Float64Var(&f.shadows, "shadows", 0, "shadow lift/cut, -1 to 1")
	fl.Float64Var(&f.whites, "whites", 0, "white point, -1 to 1")
	fl.Float64Var(&f.blacks, "blacks", 0, "black point, -1 to 1")
	fl.Float64Var(&f.temperature, "temperature", 0, "blue-orange shift, -100 to 100")
	fl.Float64Var(&f.tint, "tint", 0, "green-magenta shift, -100 to 100")
	fl.Float64Var(&f.saturation, "saturation", 0, "saturation, -1 to 1")
	fl.Float64Var(&f.vibrance, "vibrance", 0, "vibrance, -1 to 1")
	fl.Float64Var(&f.clarity, "clarity", 0, "midtone local contrast, -1 to 1")
	fl.Float64Var(&f.dehaze, "dehaze", 0, "dehaze, -1 to 1")
	fl.Float64Var(&f.vignette, "vignette", 0, "vignette strength, -1 to 1")
	fl.StringVar(&f.shadowOffset, "grade-shadows", "", "shadow RGB offset as R,G,B (each -100 to 100)")
	fl.StringVar(&f.midtoneOffset, "grade-midtones", "", "midtone RGB offset as R,G,B")
	fl.StringVar(&f.highlightOffset, "grade-highlights", "", "highlight RGB offset as R,G,B")
	fl.StringVarP(&f.presetID, "preset", "p", "", "use a stored preset instead of inline flags")
}

// adjustments builds the adjustment set from the flags, or loads the preset
// when --preset is given.
func (f *adjustmentFlags) adjustments() (engine.Adjustments, error) {
	if f.presetID != "" {
		store, err := openStore()
		if err != nil {
			return engine.Adjustments{}, err
		}
		defer store.Close()
		p, err := store.Get(f.presetID)
		if err != nil {
			return engine.Adjustments{}, err
		}
		return p.Adjustments, nil
	}

	adj := engine.Adjustments{
		Exposure:    f.exposure,
		Contrast:    f.contrast,
		Highlights:  f.highlights,
		Shadows:     f.shadows,
		Whites:      f.whites,
		Blacks:      f.blacks,
		Temperature: f.temperature,
		Tint:        f.tint,
		Saturation:  f.saturation,
		Vibrance:    f.vibrance,
		Clarity:     f.clarity,
		Dehaze:      f.dehaze,
		Vignette:    f.vignette,
	}

	var err error
	if adj.ColorGrading.Shadows, err = parseRGBOffset(f.shadowOffset); err != nil {
		return adj, fmt.Errorf("invalid --grade-shadows: %w", err)
	}
	if adj.ColorGrading.Midtones, err = parseRGBOffset(f.midtoneOffset); err != nil {
		return adj, fmt.Errorf("invalid --grade-midtones: %w", err)
	}
	if adj.ColorGrading.Highlights, err = parseRGBOffset(f.highlightOffset); err != nil {
		return adj, fmt.Errorf("invalid --grade-highlights: %w", err)
	}
	return adj, adj.Validate()
}

// parseRGBOffset parses "R,G,B" into an RGBOffset. Empty input is the zero
// offset.
func parseRGBOffset(s string) (engine.RGBOffset, error) {
	if s == "" {
		return engine.RGBOffset{}, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return engine.RGBOffset{}, fmt.Errorf("want three comma-separated values, got %q", s)
	}
	vals := make([]float64, 3)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return engine.RGBOffset{}, fmt.Errorf("bad component %q", p)
		}
		vals[i] = v
	}
	return engine.RGBOffset{Red: vals[0], Green: vals[1], Blue: vals[2]}, nil
}

// formatValue makes lut.Format usable as a --format flag.
type formatValue lut.Format

var _ pflag.Value = (*formatValue)(nil)

func (v *formatValue) String() string { return string(*v) }

func (v *formatValue) Set(s string) error {
	switch lut.Format(s) {
	case lut.FormatCube, lut.Format3DL, lut.FormatCSP:
		*v = formatValue(s)
		return nil
	}
	return fmt.Errorf("unsupported format %q (want cube, 3dl, or csp)", s)
}

func (v *formatValue) Type() string { return "format" }
