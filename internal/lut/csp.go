package lut

import (
	"fmt"
	"math"
	"strings"
)

// cspWriter emits the Rising Sun Research cineSpace .csp layout: version and
// dimensionality markers, a metadata block, the grid size, then 16-bit
// integer triples.
type cspWriter struct{}

func (cspWriter) writeHeader(sb *strings.Builder, o Options) {
	sb.WriteString("CSPLUTV100\n3D\n\n")
	sb.WriteString("BEGIN METADATA\n")
	fmt.Fprintf(sb, "TITLE \"%s\"\n", o.Title)
	if o.Description != "" {
		fmt.Fprintf(sb, "DESCRIPTION \"%s\"\n", o.Description)
	}
	sb.WriteString("END METADATA\n\n")
	fmt.Fprintf(sb, "%d %d %d\n", o.Resolution, o.Resolution, o.Resolution)
}

func (cspWriter) writeSample(sb *strings.Builder, r, g, b float64) {
	fmt.Fprintf(sb, "%d %d %d\n", csp16(r), csp16(g), csp16(b))
}

// csp16 quantizes a normalized channel to the 16-bit range.
func csp16(v float64) int {
	return int(math.Round(v * 65535))
}
