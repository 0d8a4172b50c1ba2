package lut

import (
	"fmt"
	"strconv"
	"strings"
)

// formatWriter serializes one export format: a header followed by one line
// per grid sample.
type formatWriter interface {
	writeHeader(sb *strings.Builder, o Options)
	writeSample(sb *strings.Builder, r, g, b float64)
}

func writerFor(f Format) formatWriter {
	switch f {
	case Format3DL:
		return threeDLWriter{}
	case FormatCSP:
		return cspWriter{}
	default:
		return cubeWriter{}
	}
}

// formatDomainValue renders a domain bound the way .cube files conventionally
// carry them: shortest representation, but always with a decimal point
// ("0.0", "1.0", "0.25").
func formatDomainValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// cubeWriter emits the Adobe/Resolve .cube layout: TITLE, optional comment
// description, domain bounds, LUT_3D_SIZE, a blank line, then float triples
// at six decimal places.
type cubeWriter struct{}

func (cubeWriter) writeHeader(sb *strings.Builder, o Options) {
	fmt.Fprintf(sb, "TITLE \"%s\"\n", o.Title)
	if o.Description != "" {
		fmt.Fprintf(sb, "# %s\n", o.Description)
	}
	min := formatDomainValue(o.Domain.Min)
	max := formatDomainValue(o.Domain.Max)
	fmt.Fprintf(sb, "DOMAIN_MIN %s %s %s\n", min, min, min)
	fmt.Fprintf(sb, "DOMAIN_MAX %s %s %s\n", max, max, max)
	fmt.Fprintf(sb, "LUT_3D_SIZE %d\n", o.Resolution)
	sb.WriteString("\n")
}

func (cubeWriter) writeSample(sb *strings.Builder, r, g, b float64) {
	fmt.Fprintf(sb, "%.6f %.6f %.6f\n", r, g, b)
}
