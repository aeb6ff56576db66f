package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/resurgence-tools/edjb/internal/guide"
	"github.com/resurgence-tools/edjb/internal/ui"
)

var (
	guideOpen  bool
	guidePlain bool
	guideWidth int
)

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show how to use the builder and fill in mods.json",
	Args:  cobra.NoArgs,
	RunE:  runGuide,
}

func init() {
	f := guideCmd.Flags()
	f.BoolVar(&guideOpen, "open", false, "also open the help page in a browser")
	f.BoolVar(&guidePlain, "plain", false, "render without styling")
	f.IntVar(&guideWidth, "width", 80, "wrap width")
	rootCmd.AddCommand(guideCmd)
}

func runGuide(cmd *cobra.Command, _ []string) error {
	plain := guidePlain || ui.NoColorRequested() || ui.NewHeadlessManager().IsHeadless()
	text, err := guide.Render(guide.Options{Width: guideWidth, Plain: plain})
	if err != nil {
		return err
	}
	if _, err := fmt.Fprint(cmd.OutOrStdout(), text); err != nil {
		return err
	}
	if !guideOpen {
		return nil
	}

	d, err := requireDeps()
	if err != nil {
		return err
	}
	return d.Host.OpenHelp(cmdContext(cmd))
}
