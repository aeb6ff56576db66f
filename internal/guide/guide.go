// Package guide holds the bundled usage guide and renders it with glamour.
package guide

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// Markdown is the bundled guide shown by the help action.
const Markdown = "# ElDewrito JSON Builder\n\n" +
	"Build the `voting.json` and `mods.json` files read by an ElDewrito dedicated server.\n\n" +
	"## Workflow\n\n" +
	"1. **Open folder**: pick the server `data` folder that contains `map_variants` and `game_variants`.\n" +
	"2. **New type**: add at least two voting types. Each type picks a game variant, an optional mod pack, " +
	"a random chance and the maps it can be played on.\n" +
	"3. **Export**: choose how the `maps` array is filled, optionally save the build to reopen later, " +
	"then choose where each file is written.\n\n" +
	"## Maps array\n\n" +
	"| Mode | Contents |\n" +
	"|---|---|\n" +
	"| Vanilla maps | The twelve base game maps. |\n" +
	"| Chosen maps | Every map picked on any type, without duplicates. |\n" +
	"| Error maps | Placeholders that show `INVALID MAP` in game. |\n\n" +
	"## mods.json\n\n" +
	"The download links for mods cannot be guaranteed to be up to date releases, work or be provided at all. " +
	"After saving, check your `mods.json` and make sure every `package_url` is a working direct download link. " +
	"If a link is missing, paste one in its place:\n\n" +
	"```json\n" +
	"{\n" +
	"  \"mods\": {\n" +
	"    \"ED++\": {\n" +
	"      \"package_url\": \"http://example.com/ED%2B%2B.pak\"\n" +
	"    }\n" +
	"  }\n" +
	"}\n" +
	"```\n\n" +
	"**Note:** the URL must be a direct download link. If it needs a button click, or pasting it in a browser " +
	"does not start a download, it will not work. Discord attachment links are not suitable.\n"

// Options controls rendering.
type Options struct {
	// Width wraps the output; zero uses 80 columns.
	Width int
	// Plain renders without colors or styling escapes.
	Plain bool
}

// Render returns the guide formatted for a terminal.
func Render(opts Options) (string, error) {
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	style := glamour.WithAutoStyle()
	if opts.Plain {
		style = glamour.WithStandardStyle("notty")
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("create guide renderer: %w", err)
	}
	out, err := r.Render(Markdown)
	if err != nil {
		return "", fmt.Errorf("render guide: %w", err)
	}
	return out, nil
}
