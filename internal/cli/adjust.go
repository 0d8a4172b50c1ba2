package cli

import (
	"fmt"
	"os"

	"github.com/darkframe/lutforge/internal/engine"
	"github.com/darkframe/lutforge/internal/imageio"
	"github.com/spf13/cobra"
)

var (
	adjustFlags   adjustmentFlags
	adjustOutput  string
	adjustMaxEdge int
)

// adjustCmd represents the adjust command
var adjustCmd = &cobra.Command{
	Use:   "adjust <image>",
	Short: "Apply color and tone adjustments to an image",
	Long: `Apply parametric color and tone adjustments to an image and write
the result to a new file. The output format is chosen by the output
file extension.

Examples:
  # One stop brighter with some punch
  lutforge adjust photo.jpg -o graded.jpg --exposure 1 --contrast 0.2

  # Warm the image and lift the shadows toward teal
  lutforge adjust photo.jpg -o graded.png --temperature 25 --grade-shadows=-5,2,8

  # Apply a stored preset
  lutforge adjust photo.jpg -o graded.jpg --preset builtin-punchy`,
	Args: cobra.ExactArgs(1),
	RunE: runAdjust,
}

func init() {
	adjustFlags.register(adjustCmd)
	adjustCmd.Flags().StringVarP(&adjustOutput, "output", "o", "", "output file (required)")
	adjustCmd.Flags().IntVar(&adjustMaxEdge, "max-edge", 0, "downscale so the longest edge is at most this many pixels")
	adjustCmd.MarkFlagRequired("output")
}

// runAdjust executes the adjust command.
func runAdjust(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	adj, err := adjustFlags.adjustments()
	if err != nil {
		return err
	}

	buf, err := imageio.NewCache().Load(args[0])
	if err != nil {
		return err
	}
	logger.Debug("image loaded", "path", args[0], "width", buf.Width, "height", buf.Height)

	if adjustMaxEdge > 0 {
		if buf, err = imageio.Fit(buf, adjustMaxEdge); err != nil {
			return err
		}
	}

	out, err := engine.Process(buf, adj)
	if err != nil {
		return err
	}
	if err := imageio.Save(out, adjustOutput); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Wrote %s (%dx%d)\n", adjustOutput, out.Width, out.Height)
	return nil
}
