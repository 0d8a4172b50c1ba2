package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	presetSaveFlags       adjustmentFlags
	presetSaveDescription string
	presetSaveTags        []string
	presetSearchTags      []string
)

// presetCmd groups the preset management subcommands.
var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage stored adjustment presets",
	Long: `Manage named adjustment presets. Presets capture a snapshot of an
adjustment set and can be applied by ID in the adjust, histogram, and
lut commands via --preset.`,
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		presets, err := store.List()
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tTAGS\tBUILT-IN")
		for _, p := range presets {
			builtIn := ""
			if p.BuiltIn {
				builtIn = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Name, strings.Join(p.Tags, ","), builtIn)
		}
		return w.Flush()
	},
}

var presetShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one preset as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		p, err := store.Get(args[0])
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	},
}

var presetSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the given adjustment flags as a preset",
	Long: `Save the given adjustment flags as a named preset.

Examples:
  lutforge preset save "Warm Punch" --temperature 30 --contrast 0.2 --tag warm
  lutforge preset save "Matte" --blacks 0.15 --saturation -0.25 --description "lifted blacks"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		adj, err := presetSaveFlags.adjustments()
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		p, err := store.Create(args[0], presetSaveDescription, presetSaveTags, adj)
		if err != nil {
			return err
		}
		fmt.Printf("Saved preset %s (%s)\n", p.Name, p.ID)
		return nil
	},
}

var presetDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted preset %s\n", args[0])
		return nil
	},
}

var presetSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search presets by name, description, or tags",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) == 1 {
			query = args[0]
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		presets, err := store.Search(query, presetSearchTags)
		if err != nil {
			return err
		}
		for _, p := range presets {
			fmt.Printf("%s  %s\n", p.ID, p.Name)
		}
		return nil
	},
}

func init() {
	presetSaveFlags.register(presetSaveCmd)
	presetSaveCmd.Flags().StringVar(&presetSaveDescription, "description", "", "preset description")
	presetSaveCmd.Flags().StringArrayVar(&presetSaveTags, "tag", nil, "tag for searching (repeatable)")
	presetSearchCmd.Flags().StringArrayVar(&presetSearchTags, "tag", nil, "tag a preset must carry (repeatable)")

	presetCmd.AddCommand(presetListCmd)
	presetCmd.AddCommand(presetShowCmd)
	presetCmd.AddCommand(presetSaveCmd)
	presetCmd.AddCommand(presetDeleteCmd)
	presetCmd.AddCommand(presetSearchCmd)
}
