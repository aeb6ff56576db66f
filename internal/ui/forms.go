package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/resurgence-tools/edjb/internal/builder"
	"github.com/resurgence-tools/edjb/internal/catalog"
	"github.com/resurgence-tools/edjb/pkg/models"
)

// Forms implements Prompter with huh forms. Each question runs as its
// own form, one after another.
type Forms struct {
	theme    *Theme
	headless *HeadlessManager
	out      io.Writer
}

// NewForms creates a Prompter backed by huh. Notices go to out.
func NewForms(theme *Theme, hm *HeadlessManager, out io.Writer) *Forms {
	if out == nil {
		out = os.Stdout
	}
	return &Forms{theme: theme, headless: hm, out: out}
}

// SetTheme replaces the theme, for instance after settings change.
func (f *Forms) SetTheme(t *Theme) {
	f.theme = t
}

// run shows fields as a single form. A user abort maps to ErrCancelled.
func (f *Forms) run(ctx context.Context, fields ...huh.Field) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if f.headless.IsHeadless() {
		return ErrHeadless
	}

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(f.theme.huhTheme()).
		WithAccessible(false)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return fmt.Errorf("form error: %w", err)
	}
	return nil
}

// cancelled converts ErrCancelled into ok=false.
func cancelled(err error) (bool, error) {
	if errors.Is(err, ErrCancelled) {
		return false, nil
	}
	return err == nil, err
}

// MainMenu implements Prompter.
func (f *Forms) MainMenu(ctx context.Context, state MenuState) (MenuAction, error) {
	action := MenuOpenFolder
	if state.Folder != "" {
		action = MenuNewType
	}
	sel := huh.NewSelect[MenuAction]().
		Title("ElDewrito JSON Builder").
		Description(menuSummary(state)).
		Options(menuOptions(state)...).
		Value(&action)

	if err := f.run(ctx, sel); err != nil {
		if errors.Is(err, ErrCancelled) {
			return MenuQuit, nil
		}
		return "", err
	}
	return action, nil
}

func menuSummary(state MenuState) string {
	folder := state.Folder
	if folder == "" {
		folder = "no folder opened"
	}
	lines := []string{"Folder: " + folder}
	if len(state.Types) == 0 {
		lines = append(lines, "No types yet.")
	}
	for _, t := range state.Types {
		lines = append(lines, "  • "+t.Label())
	}
	if !state.CanExport {
		lines = append(lines, fmt.Sprintf("Add at least %d types to export.", builder.MinExportTypes))
	}
	return strings.Join(lines, "\n")
}

func menuOptions(state MenuState) []huh.Option[MenuAction] {
	opts := []huh.Option[MenuAction]{
		huh.NewOption("Open folder", MenuOpenFolder),
		huh.NewOption("New type", MenuNewType),
	}
	if len(state.Types) > 0 {
		opts = append(opts,
			huh.NewOption("Edit type", MenuEditType),
			huh.NewOption("Delete type", MenuDeleteType),
		)
	}
	if state.CanExport {
		opts = append(opts, huh.NewOption("Export voting.json and mods.json", MenuExport))
	}
	return append(opts,
		huh.NewOption("Open saved builder", MenuOpenSaved),
		huh.NewOption("Settings", MenuSettings),
		huh.NewOption("Help", MenuHelp),
		huh.NewOption("Quit", MenuQuit),
	)
}

// ChooseFolder implements Prompter.
func (f *Forms) ChooseFolder(ctx context.Context, initial string) (string, bool, error) {
	dir := initial
	in := huh.NewInput().
		Title("Open folder").
		Description("The folder that contains map_variants and game_variants.").
		Placeholder("~/ElDewrito/data").
		Value(&dir)

	ok, err := cancelled(f.run(ctx, in))
	if !ok {
		return "", false, err
	}
	dir = expandHome(strings.TrimSpace(dir))
	if dir == "" {
		return "", false, nil
	}
	return dir, true, nil
}

// ChooseSavePath implements Prompter. A blank path skips the file.
func (f *Forms) ChooseSavePath(ctx context.Context, name, defaultPath string) (string, bool, error) {
	path := defaultPath
	in := huh.NewInput().
		Title("Save " + name).
		Description("Leave empty to skip this file.").
		Value(&path)

	ok, err := cancelled(f.run(ctx, in))
	if !ok {
		return "", false, err
	}
	path = expandHome(strings.TrimSpace(path))
	if path == "" {
		return "", false, nil
	}
	return path, true, nil
}

// PickType implements Prompter.
func (f *Forms) PickType(ctx context.Context, title string, types []models.TypeRecord) (int64, bool, error) {
	if len(types) == 0 {
		return 0, false, nil
	}
	opts := make([]huh.Option[int64], len(types))
	for i, t := range types {
		opts[i] = huh.NewOption(t.Label(), t.ID)
	}
	id := types[0].ID
	sel := huh.NewSelect[int64]().Title(title).Options(opts...).Value(&id)

	ok, err := cancelled(f.run(ctx, sel))
	if !ok {
		return 0, false, err
	}
	return id, true, nil
}

// EditType implements Prompter.
func (f *Forms) EditType(ctx context.Context, in TypeFormInput) (models.TypeRecord, bool, error) {
	rec := in.Record.Clone()
	steps := []func(context.Context, *models.TypeRecord, TypeFormInput) error{
		f.askDisplayName,
		f.askTypeName,
		f.askModPack,
		f.askRandomChance,
		f.askMaps,
		func(ctx context.Context, r *models.TypeRecord, _ TypeFormInput) error {
			var err error
			r.Commands, err = f.askOverrides(ctx, "Match start overrides", r.Commands)
			return err
		},
		func(ctx context.Context, r *models.TypeRecord, _ TypeFormInput) error {
			var err error
			r.EndOfMatchCommands, err = f.askOverrides(ctx, "End of match overrides", r.EndOfMatchCommands)
			return err
		},
	}
	for _, step := range steps {
		if ok, err := cancelled(step(ctx, &rec, in)); !ok {
			return models.TypeRecord{}, false, err
		}
	}

	save := true
	confirm := huh.NewConfirm().
		Title("Save " + rec.Label() + "?").
		Affirmative("Save").
		Negative("Discard").
		Value(&save)
	if ok, err := cancelled(f.run(ctx, confirm)); !ok || !save {
		return models.TypeRecord{}, false, err
	}
	return rec, true, nil
}

func (f *Forms) askDisplayName(ctx context.Context, r *models.TypeRecord, _ TypeFormInput) error {
	in := huh.NewInput().
		Title("Display name").
		Description("Shown to players in the vote.").
		Value(&r.DisplayName).
		Validate(required("display name"))
	if err := f.run(ctx, in); err != nil {
		return err
	}
	r.DisplayName = strings.TrimSpace(r.DisplayName)
	return nil
}

func (f *Forms) askTypeName(ctx context.Context, r *models.TypeRecord, in TypeFormInput) error {
	if len(in.GameTypes) == 0 {
		inp := huh.NewInput().
			Title("Game type").
			Description("Name of the game variant folder.").
			Value(&r.TypeName).
			Validate(required("game type"))
		if err := f.run(ctx, inp); err != nil {
			return err
		}
		r.TypeName = strings.TrimSpace(r.TypeName)
		return nil
	}

	names := slices.Clone(in.GameTypes)
	if r.TypeName != "" && !slices.Contains(names, r.TypeName) {
		names = append([]string{r.TypeName}, names...)
	}
	if r.TypeName == "" {
		r.TypeName = names[0]
	}
	sel := huh.NewSelect[string]().
		Title("Game type").
		Options(huh.NewOptions(names...)...).
		Value(&r.TypeName)
	return f.run(ctx, sel)
}

func (f *Forms) askModPack(ctx context.Context, r *models.TypeRecord, _ TypeFormInput) error {
	opts := []huh.Option[string]{huh.NewOption("None", "")}
	for _, name := range catalog.ModNames() {
		opts = append(opts, huh.NewOption(name, name))
	}
	sel := huh.NewSelect[string]().
		Title("Mod pack").
		Description("Maps bundled with the mod pack become selectable.").
		Options(opts...).
		Value(&r.ModPack)
	return f.run(ctx, sel)
}

func (f *Forms) askRandomChance(ctx context.Context, r *models.TypeRecord, _ TypeFormInput) error {
	s := FormatRandomChance(r.RandomChance)
	in := huh.NewInput().
		Title("Random chance").
		Description(fmt.Sprintf("Voting weight between %g and %g. Values below %g are left out of the export.",
			float64(models.MinRandomChance), float64(models.MaxRandomChance), models.RandomChanceThreshold)).
		Value(&s).
		Validate(func(v string) error {
			_, err := ParseRandomChance(v)
			return err
		})
	if err := f.run(ctx, in); err != nil {
		return err
	}
	v, err := ParseRandomChance(s)
	if err != nil {
		return err
	}
	r.RandomChance = v
	return nil
}

func (f *Forms) askMaps(ctx context.Context, r *models.TypeRecord, in TypeFormInput) error {
	choices := builder.ChoicesFor(r.ModPack, in.CustomMaps)
	selected := slices.Clone(r.SpecificMaps)
	ms := huh.NewMultiSelect[models.MapRef]().
		Title("Specific maps").
		Description("Leave empty to allow every map.").
		Options(MapOptions(choices, r.SpecificMaps)...).
		Filterable(true).
		Height(16).
		Value(&selected)
	if err := f.run(ctx, ms); err != nil {
		return err
	}
	if selected == nil {
		selected = []models.MapRef{}
	}
	r.SpecificMaps = selected
	return nil
}

// askOverrides asks which overrides to set, then a value for each.
func (f *Forms) askOverrides(ctx context.Context, title string, cmds []string) ([]string, error) {
	overrides := catalog.ServerOverrides()
	var keys []string
	opts := make([]huh.Option[string], len(overrides))
	for i, o := range overrides {
		set := builder.CommandValue(cmds, o.Key) != catalog.UnsetValue
		if set {
			keys = append(keys, o.Key)
		}
		opts[i] = huh.NewOption(o.Label, o.Key).Selected(set)
	}
	ms := huh.NewMultiSelect[string]().
		Title(title).
		Description("Choose the server variables this type changes.").
		Options(opts...).
		Height(14).
		Value(&keys)
	if err := f.run(ctx, ms); err != nil {
		return nil, err
	}

	values := make(map[string]string, len(overrides))
	for _, o := range overrides {
		if !slices.Contains(keys, o.Key) {
			values[o.Key] = catalog.UnsetValue
			continue
		}
		v := builder.CommandValue(cmds, o.Key)
		if v == catalog.UnsetValue {
			v = o.Values[len(o.Values)-1].Value
		}
		vopts := make([]huh.Option[string], 0, len(o.Values))
		for _, ov := range o.Values {
			vopts = append(vopts, huh.NewOption(ov.Label, ov.Value))
		}
		sel := huh.NewSelect[string]().
			Title(o.Label).
			Description(o.Description).
			Options(vopts...).
			Value(&v)
		if err := f.run(ctx, sel); err != nil {
			return nil, err
		}
		values[o.Key] = v
	}
	return ApplyOverrides(cmds, overrides, values), nil
}

// ChooseMapMode implements Prompter.
func (f *Forms) ChooseMapMode(ctx context.Context, current models.MapMode) (models.MapMode, bool, error) {
	mode := current
	if !mode.IsValid() {
		mode = models.MapModeVanilla
	}
	sel := huh.NewSelect[models.MapMode]().
		Title("Maps array").
		Options(
			huh.NewOption("Vanilla maps (default)", models.MapModeVanilla),
			huh.NewOption("Chosen maps from every type", models.MapModeChosen),
			huh.NewOption("Error maps (shows INVALID MAP in game)", models.MapModeError),
		).
		Value(&mode)

	ok, err := cancelled(f.run(ctx, sel))
	if !ok {
		return "", false, err
	}
	return mode, true, nil
}

// ConfirmSaveToBuilder implements Prompter. A blank name skips saving.
func (f *Forms) ConfirmSaveToBuilder(ctx context.Context) (string, bool, error) {
	var name string
	in := huh.NewInput().
		Title("Save to builder (optional)").
		Description("Name this build to reopen it later. Leave empty to skip.").
		CharLimit(models.MaxSavedNameLength).
		Value(&name)

	ok, err := cancelled(f.run(ctx, in))
	if !ok {
		return "", false, err
	}
	if name == "" {
		return "", false, nil
	}
	return name, true, nil
}

// PickSaved implements Prompter.
func (f *Forms) PickSaved(ctx context.Context, list []models.SavedJSON) (SavedPick, error) {
	if len(list) == 0 {
		if err := f.Notify(ctx, Notice{Level: LevelInfo, Title: "No saved builders"}); err != nil {
			return SavedPick{}, err
		}
		return SavedPick{Action: SavedCancel}, nil
	}

	opts := make([]huh.Option[int64], 0, len(list)+1)
	for _, e := range list {
		opts = append(opts, huh.NewOption(SavedLabel(e), e.Date))
	}
	opts = append(opts, huh.NewOption("Cancel", int64(0)))

	date := list[0].Date
	sel := huh.NewSelect[int64]().Title("Saved builders").Options(opts...).Value(&date)
	if ok, err := cancelled(f.run(ctx, sel)); !ok || date == 0 {
		return SavedPick{Action: SavedCancel}, err
	}

	action := SavedLoad
	act := huh.NewSelect[SavedAction]().
		Title("Saved builder").
		Options(
			huh.NewOption("Open", SavedLoad),
			huh.NewOption("Delete", SavedDelete),
			huh.NewOption("Cancel", SavedCancel),
		).
		Value(&action)
	if ok, err := cancelled(f.run(ctx, act)); !ok {
		return SavedPick{Action: SavedCancel}, err
	}
	return SavedPick{Action: action, Date: date}, nil
}

// SavedLabel formats a saved builder for lists.
func SavedLabel(e models.SavedJSON) string {
	return fmt.Sprintf("%s  (%s)", e.Name, e.SavedAt().Format(time.DateTime))
}

// EditSettings implements Prompter.
func (f *Forms) EditSettings(ctx context.Context, current models.Settings) (models.Settings, bool, error) {
	s := current
	bgOpts := make([]huh.Option[models.Background], 0, len(models.ValidBackgrounds()))
	for _, b := range models.ValidBackgrounds() {
		bgOpts = append(bgOpts, huh.NewOption(b.Label(), b))
	}
	volume := strconv.FormatFloat(s.Volume, 'f', -1, 64)

	fields := []huh.Field{
		huh.NewSelect[models.Background]().Title("Background").Options(bgOpts...).Value(&s.Background),
		huh.NewInput().Title("Volume").Description("Between 0 and 1.").Value(&volume).
			Validate(func(v string) error {
				_, err := parseVolume(v)
				return err
			}),
		huh.NewConfirm().Title("High contrast text").Value(&s.HighContrastText),
		huh.NewConfirm().Title("Advanced map options").Description("Reserved for a future release.").
			Value(&s.AdvancedMapOptions),
	}
	for _, field := range fields {
		if ok, err := cancelled(f.run(ctx, field)); !ok {
			return models.Settings{}, false, err
		}
	}
	v, err := parseVolume(volume)
	if err != nil {
		return models.Settings{}, false, err
	}
	s.Volume = v

	save := true
	confirm := huh.NewConfirm().Title("Save settings?").Affirmative("Save").Negative("Cancel").Value(&save)
	if ok, err := cancelled(f.run(ctx, confirm)); !ok || !save {
		return models.Settings{}, false, err
	}
	return s, true, nil
}

// Notify implements Prompter. It works without a terminal.
func (f *Forms) Notify(_ context.Context, n Notice) error {
	_, err := fmt.Fprintln(f.out, f.theme.Render(n))
	return err
}

// MapOptions builds the map multi-select options. Maps already chosen
// but no longer offered (for instance after changing the mod pack) are
// kept so they can be unselected.
func MapOptions(c builder.MapChoices, selected []models.MapRef) []huh.Option[models.MapRef] {
	var opts []huh.Option[models.MapRef]
	seen := make(map[models.MapRef]bool)
	add := func(group string, maps []models.MapRef) {
		for _, m := range maps {
			if seen[m] {
				continue
			}
			seen[m] = true
			opts = append(opts, huh.NewOption(group+": "+m.DisplayName, m).Selected(slices.Contains(selected, m)))
		}
	}
	add("Vanilla", c.Vanilla)
	add("Mod", c.Mod)
	add("Custom", c.Custom)
	add("Chosen", selected)
	return opts
}

// ApplyOverrides sets every override in values on cmds.
func ApplyOverrides(cmds []string, overrides []catalog.ServerOverride, values map[string]string) []string {
	out := slices.Clone(cmds)
	if out == nil {
		out = []string{}
	}
	for _, o := range overrides {
		if v, ok := values[o.Key]; ok && o.Allows(v) {
			out = builder.SetCommand(out, o.Key, v)
		}
	}
	return out
}

// ParseRandomChance parses a random chance entered in the type form.
func ParseRandomChance(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.New("random chance must be a number")
	}
	if v < models.MinRandomChance || v > models.MaxRandomChance {
		return 0, fmt.Errorf("random chance must be between %g and %g",
			float64(models.MinRandomChance), float64(models.MaxRandomChance))
	}
	return v, nil
}

// FormatRandomChance formats a random chance for the type form.
func FormatRandomChance(v float64) string {
	if v == 0 {
		v = models.DefaultRandomChance
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseVolume(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 || v > 1 {
		return 0, errors.New("volume must be a number between 0 and 1")
	}
	return v, nil
}

func required(field string) func(string) error {
	return func(v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}

// huhTheme maps the theme palette onto a huh theme.
func (t *Theme) huhTheme() *huh.Theme {
	h := huh.ThemeBase()
	if t.NoColor {
		return h
	}

	primary := lipgloss.Color(t.Colors.Primary)
	secondary := lipgloss.Color(t.Colors.Secondary)
	green := lipgloss.Color(t.Colors.Success)
	red := lipgloss.Color(t.Colors.Error)
	text := lipgloss.Color(t.Colors.Text)
	muted := lipgloss.Color(t.Colors.Muted)
	border := lipgloss.Color(t.Colors.Border)

	h.Focused.Base = h.Focused.Base.BorderForeground(border)
	h.Focused.Card = h.Focused.Base
	h.Focused.Title = h.Focused.Title.Foreground(primary).Bold(true)
	h.Focused.NoteTitle = h.Focused.NoteTitle.Foreground(primary).Bold(true).MarginBottom(1)
	h.Focused.Description = h.Focused.Description.Foreground(muted)
	h.Focused.ErrorIndicator = h.Focused.ErrorIndicator.Foreground(red)
	h.Focused.ErrorMessage = h.Focused.ErrorMessage.Foreground(red)
	h.Focused.SelectSelector = h.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	h.Focused.NextIndicator = h.Focused.NextIndicator.Foreground(primary)
	h.Focused.PrevIndicator = h.Focused.PrevIndicator.Foreground(primary)
	h.Focused.Option = h.Focused.Option.Foreground(text)
	h.Focused.MultiSelectSelector = h.Focused.MultiSelectSelector.Foreground(primary)
	h.Focused.SelectedOption = h.Focused.SelectedOption.Foreground(green)
	h.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◆ ")
	h.Focused.UnselectedOption = h.Focused.UnselectedOption.Foreground(text)
	h.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◇ ")
	h.Focused.TextInput.Cursor = h.Focused.TextInput.Cursor.Foreground(primary)
	h.Focused.TextInput.Placeholder = h.Focused.TextInput.Placeholder.Foreground(muted)
	h.Focused.TextInput.Prompt = h.Focused.TextInput.Prompt.Foreground(secondary)
	h.Focused.FocusedButton = h.Focused.FocusedButton.Foreground(lipgloss.Color("#FFFFFF")).Background(primary)
	h.Focused.BlurredButton = h.Focused.BlurredButton.Foreground(text).Background(border)
	h.Focused.Next = h.Focused.FocusedButton

	h.Blurred = h.Focused
	h.Blurred.Base = h.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	h.Blurred.Card = h.Blurred.Base
	h.Blurred.NextIndicator = lipgloss.NewStyle()
	h.Blurred.PrevIndicator = lipgloss.NewStyle()

	h.Group.Title = h.Focused.Title
	h.Group.Description = h.Focused.Description

	return h
}
