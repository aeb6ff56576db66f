package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/resurgence-tools/edjb/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change the builder settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change one setting",
	Long: `Change one setting and save the settings file.

Keys: ` + strings.Join(config.FieldNames(), ", "),
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	s := d.Config.Get()
	out := cmd.OutOrStdout()
	for _, key := range config.FieldNames() {
		v, err := config.FieldValue(s, key)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "%-20s %s\n", key, v)
	}
	if !d.Config.FromFile() {
		_, err = fmt.Fprintf(out, "\nFile: %s (not written yet, showing defaults)\n", d.Config.Path())
		return err
	}
	_, err = fmt.Fprintf(out, "\nFile: %s\n", d.Config.Path())
	return err
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	if err := d.Config.SetField(args[0], args[1]); err != nil {
		return err
	}
	if err := d.Config.Save(); err != nil {
		return err
	}
	v, err := config.FieldValue(d.Config.Get(), args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], v)
	return err
}
