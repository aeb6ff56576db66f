package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/resurgence-tools/edjb/internal/builder"
	"github.com/resurgence-tools/edjb/internal/defs"
	"github.com/resurgence-tools/edjb/internal/export"
	"github.com/resurgence-tools/edjb/pkg/models"
)

var (
	exportSaved  string
	exportInput  string
	exportMode   string
	exportOut    string
	exportVoting string
	exportMods   string
	exportSaveAs string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write voting.json and mods.json without prompts",
	Long: `Write voting.json and mods.json from a saved builder or from an
existing voting.json.

The maps array is filled according to --mode:
  vanillaMaps  the base game maps (default)
  chosenMaps   every map picked on any type
  errorMaps    placeholder maps

Examples:
  edjb export --saved weekend --out ./data/server
  edjb export --input old/voting.json --mode chosenMaps --save-as imported`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&exportSaved, "saved", "", "name of the saved builder to export")
	f.StringVar(&exportInput, "input", "", "voting.json to rebuild")
	f.StringVar(&exportMode, "mode", string(models.MapModeVanilla), "maps array: vanillaMaps, chosenMaps or errorMaps")
	f.StringVarP(&exportOut, "out", "o", ".", "directory the files are written to")
	f.StringVar(&exportVoting, "voting", "", "explicit path for voting.json")
	f.StringVar(&exportMods, "mods", "", "explicit path for mods.json")
	f.StringVar(&exportSaveAs, "save-as", "", "also save the build to the builder under this name")
	exportCmd.MarkFlagsMutuallyExclusive("saved", "input")
	exportCmd.MarkFlagsOneRequired("saved", "input")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	ctx := cmdContext(cmd)

	mode, ok := models.ParseMapMode(exportMode)
	if !ok {
		return fmt.Errorf("%w: %q", export.ErrUnknownMapMode, exportMode)
	}

	doc, err := exportSource(ctx, d)
	if err != nil {
		return err
	}
	session := builder.NewSession()
	session.Load(doc)
	if !session.CanExport() {
		return fmt.Errorf("%w (have %d)", builder.ErrTooFewTypes, session.Len())
	}

	res, err := export.Assemble(session.Types(), mode)
	if err != nil {
		return err
	}
	files, err := res.Files()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var errs []error
	if exportSaveAs != "" {
		entry, err := d.Saved.Append(ctx, exportSaveAs, session.Document())
		if err != nil {
			errs = append(errs, err)
		} else {
			_, _ = fmt.Fprintf(out, "Saved to builder as %q (%d)\n", entry.Name, entry.Date)
		}
	}

	chooser := export.FixedPaths(exportOut, map[string]string{
		defs.VotingJSON: exportVoting,
		defs.ModsJSON:   exportMods,
	})
	results, err := d.Host.SaveFiles(ctx, files, chooser)
	for _, r := range results {
		if r.Err == nil && !r.Skipped {
			_, _ = fmt.Fprintf(out, "Wrote %s\n", r.Path)
		}
	}
	if err != nil {
		errs = append(errs, err)
	}
	if len(res.Mods.Mods) > 0 {
		_, _ = fmt.Fprintf(out, "Check every package_url in %s: %s\n", defs.ModsJSON, strings.Join(res.Mods.Mods.Names(), ", "))
	}
	return errors.Join(errs...)
}

// exportSource reads the document named by --saved or --input.
func exportSource(ctx context.Context, d *Dependencies) (models.Document, error) {
	if exportSaved != "" {
		entry, err := d.Saved.FindByName(ctx, exportSaved)
		if err != nil {
			return models.Document{}, fmt.Errorf("saved builder %q: %w", exportSaved, err)
		}
		return entry.Data, nil
	}
	data, err := os.ReadFile(exportInput)
	if err != nil {
		return models.Document{}, fmt.Errorf("read input: %w", err)
	}
	return export.Parse(data)
}
