package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/darkframe/lutforge/internal/lut"
	"github.com/spf13/cobra"
)

var (
	lutFlags       adjustmentFlags
	lutFormat      = formatValue(lut.FormatCube)
	lutResolution  int
	lutTitle       string
	lutDescription string
)

// lutCmd represents the lut command
var lutCmd = &cobra.Command{
	Use:   "lut <output-file>",
	Short: "Bake the color transform into a 3D LUT file",
	Long: `Sample the color transform over a 3D grid and write the result as a
LUT file. The format defaults to the output file extension when it is
.cube, .3dl, or .csp, and can be forced with --format.

Examples:
  # Neutral identity LUT at the default 33-point resolution
  lutforge lut identity.cube

  # Bake a warm look into a 65-point CUBE LUT
  lutforge lut warm.cube --resolution 65 --temperature 30 --contrast 0.15

  # Export a stored preset as a 3DL LUT
  lutforge lut punchy.3dl --preset builtin-punchy --title Punchy`,
	Args: cobra.ExactArgs(1),
	RunE: runLUT,
}

func init() {
	lutFlags.register(lutCmd)
	lutCmd.Flags().Var(&lutFormat, "format", "LUT format (cube, 3dl, csp); defaults to the output extension")
	lutCmd.Flags().IntVarP(&lutResolution, "resolution", "r", 33, "grid points per axis (17, 33, or 65)")
	lutCmd.Flags().StringVar(&lutTitle, "title", "Untitled", "LUT title written into the file header")
	lutCmd.Flags().StringVar(&lutDescription, "description", "", "description written into the file header")
}

// runLUT executes the lut command.
func runLUT(cmd *cobra.Command, args []string) error {
	outputPath := args[0]

	adj, err := lutFlags.adjustments()
	if err != nil {
		return err
	}

	opts := lut.DefaultOptions()
	opts.Format = lut.Format(lutFormat)
	opts.Resolution = lutResolution
	opts.Title = lutTitle
	opts.Description = lutDescription

	// Infer the format from the extension unless --format was given.
	if !cmd.Flags().Changed("format") {
		switch ext := strings.TrimPrefix(filepath.Ext(outputPath), "."); lut.Format(ext) {
		case lut.FormatCube, lut.Format3DL, lut.FormatCSP:
			opts.Format = lut.Format(ext)
		}
	}

	exporter := lut.NewExporter()
	out, err := exporter.Export(adj, opts, func(p lut.Progress) {
		fmt.Fprintf(os.Stderr, "\rSampling %d/%d (%.0f%%)", p.Done, p.Total, p.Percent())
	})
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(out), 0o644); err != nil {
		return fmt.Errorf("failed to write LUT file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s (%s, %d points, %d bytes)\n",
		outputPath, opts.Format, opts.Resolution, len(out))
	return nil
}
