package lut

import (
	"fmt"

	"github.com/darkframe/lutforge/internal/engine"
)

// Format selects the output serialization.
type Format string

const (
	FormatCube Format = "cube" // Adobe/Resolve .cube
	Format3DL  Format = "3dl"  // Autodesk Lustre .3dl
	FormatCSP  Format = "csp"  // Rising Sun Research .csp
)

// Formats lists the supported formats in display order.
func Formats() []Format {
	return []Format{FormatCube, Format3DL, FormatCSP}
}

// Extension returns the file extension for the format, without the dot.
func (f Format) Extension() string {
	return string(f)
}

// Resolutions supported for the sample grid.
var supportedResolutions = map[int]bool{17: true, 33: true, 65: true}

// Resolutions lists the supported grid resolutions in ascending order.
func Resolutions() []int {
	return []int{17, 33, 65}
}

// Domain is the input range a LUT is defined over, typically [0,1].
type Domain struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Options configures one LUT export.
type Options struct {
	Format      Format `json:"format"`
	Resolution  int    `json:"resolution"` // 17, 33, or 65
	Title       string `json:"title"`
	Description string `json:"description"`
	Domain      Domain `json:"domain"`
}

// DefaultOptions returns a 33-point CUBE export over the [0,1] domain.
func DefaultOptions() Options {
	return Options{
		Format:     FormatCube,
		Resolution: 33,
		Title:      "Untitled",
		Domain:     Domain{Min: 0, Max: 1},
	}
}

// Validate rejects unsupported formats and resolutions before any sampling
// starts, so a bad export fails fast instead of producing no output.
func (o Options) Validate() error {
	switch o.Format {
	case FormatCube, Format3DL, FormatCSP:
	default:
		return &engine.ValidationError{
			Field:  "format",
			Reason: fmt.Sprintf("unsupported format %q (want cube, 3dl, or csp)", string(o.Format)),
		}
	}
	if !supportedResolutions[o.Resolution] {
		return &engine.ValidationError{
			Field:  "resolution",
			Reason: fmt.Sprintf("unsupported resolution %d (want 17, 33, or 65)", o.Resolution),
		}
	}
	if o.Domain.Max <= o.Domain.Min {
		return &engine.ValidationError{
			Field:  "domain",
			Reason: fmt.Sprintf("max %g must exceed min %g", o.Domain.Max, o.Domain.Min),
		}
	}
	return nil
}
