package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/darkframe/lutforge/internal/engine"
	"github.com/darkframe/lutforge/internal/imageio"
	"github.com/spf13/cobra"
)

var (
	histogramFlags adjustmentFlags
	histogramJSON  bool
)

// histogramCmd represents the histogram command
var histogramCmd = &cobra.Command{
	Use:   "histogram <image>",
	Short: "Compute RGB and luminance histograms of an image",
	Long: `Compute 256-bin red, green, blue, and luminance histograms of an
image, optionally after applying adjustments, and report how its
pixels split across shadows, midtones, and highlights.

Examples:
  # Tone distribution of the image as shot
  lutforge histogram photo.jpg

  # Full histogram data as JSON, after a one-stop push
  lutforge histogram photo.jpg --exposure 1 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runHistogram,
}

func init() {
	histogramFlags.register(histogramCmd)
	histogramCmd.Flags().BoolVar(&histogramJSON, "json", false, "print full histogram data as JSON")
}

// runHistogram executes the histogram command.
func runHistogram(cmd *cobra.Command, args []string) error {
	adj, err := histogramFlags.adjustments()
	if err != nil {
		return err
	}

	buf, err := imageio.NewCache().Load(args[0])
	if err != nil {
		return err
	}
	if adj != (engine.Adjustments{}) {
		if buf, err = engine.Process(buf, adj); err != nil {
			return err
		}
	}

	hist, err := engine.Generate(buf)
	if err != nil {
		return err
	}

	if histogramJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(hist)
	}

	shadows, midtones, highlights := hist.ToneDistribution()
	total := shadows + midtones + highlights
	if total == 0 {
		return fmt.Errorf("empty image")
	}
	pct := func(n uint64) float64 { return float64(n) / float64(total) * 100 }
	fmt.Printf("shadows     %8d  %5.1f%%\n", shadows, pct(shadows))
	fmt.Printf("midtones    %8d  %5.1f%%\n", midtones, pct(midtones))
	fmt.Printf("highlights  %8d  %5.1f%%\n", highlights, pct(highlights))
	return nil
}
