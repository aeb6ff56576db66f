package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/resurgence-tools/edjb/internal/export"
)

var scanJSON bool

var scanCmd = &cobra.Command{
	Use:   "scan DIR",
	Short: "List the map and game variants of a data folder",
	Long: `List the map and game variants found under DIR/map_variants and
DIR/game_variants. These are the names offered by the type form.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "print the listing as JSON")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}

	listing, err := d.Scanner.Scan(cmdContext(cmd), args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if scanJSON {
		data, err := export.Marshal(listing)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	_, _ = fmt.Fprintf(out, "Map variants (%d):\n", len(listing.Maps))
	for _, m := range listing.Maps {
		_, _ = fmt.Fprintf(out, "  %s\n", m)
	}
	_, _ = fmt.Fprintf(out, "Game variants (%d):\n", len(listing.Types))
	for _, t := range listing.Types {
		_, _ = fmt.Fprintf(out, "  %s\n", t)
	}
	return nil
}
