package lut

import (
	"fmt"
	"strings"
)

// threeDLWriter emits the Autodesk Lustre .3dl layout: a comment header with
// title, optional description, and grid size, then the same float triples as
// .cube.
type threeDLWriter struct{}

func (threeDLWriter) writeHeader(sb *strings.Builder, o Options) {
	fmt.Fprintf(sb, "# %s\n", o.Title)
	if o.Description != "" {
		fmt.Fprintf(sb, "# %s\n", o.Description)
	}
	fmt.Fprintf(sb, "# LUT size: %dx%dx%d\n", o.Resolution, o.Resolution, o.Resolution)
	sb.WriteString("\n")
}

func (threeDLWriter) writeSample(sb *strings.Builder, r, g, b float64) {
	fmt.Fprintf(sb, "%.6f %.6f %.6f\n", r, g, b)
}
