package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/resurgence-tools/edjb/internal/builder"
	"github.com/resurgence-tools/edjb/internal/export"
)

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "Manage saved builders",
	Long: `Manage the builders saved from the export dialog.

Saved builders keep the type ids so they can be reopened and edited in
'edjb build'.`,
}

var savedListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved builders, most recent first",
	Args:  cobra.NoArgs,
	RunE:  runSavedList,
}

var savedShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Print the voting document of a saved builder",
	Args:  cobra.ExactArgs(1),
	RunE:  runSavedShow,
}

var savedDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete the most recent saved builder with this name",
	Args:  cobra.ExactArgs(1),
	RunE:  runSavedDelete,
}

var savedImportCmd = &cobra.Command{
	Use:   "import NAME FILE",
	Short: "Save an existing voting.json as a builder",
	Args:  cobra.ExactArgs(2),
	RunE:  runSavedImport,
}

func init() {
	savedCmd.AddCommand(savedListCmd, savedShowCmd, savedDeleteCmd, savedImportCmd)
	rootCmd.AddCommand(savedCmd)
}

func runSavedList(cmd *cobra.Command, _ []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	list, err := d.Saved.List(cmdContext(cmd))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(list) == 0 {
		_, err := fmt.Fprintln(out, "No saved builders.")
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tTYPES\tSAVED")
	for i := len(list) - 1; i >= 0; i-- {
		e := list[i]
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\n", e.Name, len(e.Data.Types), e.SavedAt().Format(time.DateTime))
	}
	return tw.Flush()
}

func runSavedShow(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	entry, err := d.Saved.FindByName(cmdContext(cmd), args[0])
	if err != nil {
		return fmt.Errorf("saved builder %q: %w", args[0], err)
	}
	data, err := export.Marshal(entry.Data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func runSavedDelete(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	ctx := cmdContext(cmd)
	entry, err := d.Saved.FindByName(ctx, args[0])
	if err != nil {
		return fmt.Errorf("saved builder %q: %w", args[0], err)
	}
	if err := d.Saved.Delete(ctx, entry.Date); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", entry.Name)
	return err
}

func runSavedImport(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	name, path := args[0], args[1]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := export.Parse(data)
	if err != nil {
		return err
	}

	// Loading assigns ids to imported types and restores form defaults.
	session := builder.NewSession()
	session.Load(doc)
	entry, err := d.Saved.Append(cmdContext(cmd), name, session.Document())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d types as %q\n", len(entry.Data.Types), entry.Name)
	return err
}
