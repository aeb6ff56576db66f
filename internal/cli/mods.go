package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/resurgence-tools/edjb/internal/catalog"
)

var modsCmd = &cobra.Command{
	Use:   "mods [NAME]",
	Short: "List the known mod packs or the maps of one pack",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMods,
}

func init() {
	rootCmd.AddCommand(modsCmd)
}

func runMods(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		for _, m := range catalog.Mods() {
			_, _ = fmt.Fprintf(out, "%-32s %d maps\n", m.Name, len(m.Maps))
		}
		return nil
	}

	m, ok := catalog.Find(args[0])
	if !ok {
		return fmt.Errorf("unknown mod pack %q", args[0])
	}
	_, _ = fmt.Fprintf(out, "%s\n", m.Name)
	for _, ref := range m.Maps {
		_, _ = fmt.Fprintf(out, "  %-28s %s\n", ref.DisplayName, ref.MapName)
	}
	return nil
}

