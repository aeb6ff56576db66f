package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/resurgence-tools/edjb/internal/app"
	"github.com/resurgence-tools/edjb/internal/export"
	"github.com/resurgence-tools/edjb/internal/ui"
	"github.com/resurgence-tools/edjb/pkg/models"
)

var (
	buildDir   string
	buildInput string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run the interactive builder",
	Long: `Run the interactive builder.

Open the server data folder, add at least two voting types, then export
voting.json and mods.json. Builds can be saved and reopened later.

Examples:
  edjb build
  edjb build --dir ~/eldewrito/data
  edjb build --input voting.json`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildDir, "dir", "", "open this data folder on start")
	buildCmd.Flags().StringVar(&buildInput, "input", "", "start from the types of an existing voting.json")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}

	hm := ui.NewHeadlessManager()
	if hm.IsHeadless() {
		return fmt.Errorf("build needs an interactive terminal, use 'edjb export' in scripts: %w", ui.ErrHeadless)
	}

	var doc *models.Document
	if buildInput != "" {
		data, err := os.ReadFile(buildInput)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		parsed, err := export.Parse(data)
		if err != nil {
			return err
		}
		doc = &parsed
	}

	theme := ui.NewTheme(d.Config.Get())
	forms := ui.NewForms(theme, hm, cmd.OutOrStdout())
	a := app.New(d.Host, forms, app.Options{
		Logger:  d.Logger,
		Spinner: func(title string) ui.Spinner { return ui.NewSpinner(theme, hm, title) },
		Now:     d.Now,
		OnSettings: func(s models.Settings) {
			theme = ui.NewTheme(s)
			forms.SetTheme(theme)
		},
	})

	if doc != nil {
		a.LoadDocument(*doc)
	}

	ctx := cmdContext(cmd)
	if buildDir != "" {
		if err := a.OpenDir(ctx, buildDir); err != nil {
			return err
		}
	}
	return a.Run(ctx)
}

