// Package app runs a builder session: it connects the dialogs to the
// type reconciler, the export assembler and the host.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"time"

	"github.com/resurgence-tools/edjb/internal/builder"
	"github.com/resurgence-tools/edjb/internal/export"
	"github.com/resurgence-tools/edjb/internal/guide"
	"github.com/resurgence-tools/edjb/internal/scanner"
	"github.com/resurgence-tools/edjb/internal/store"
	"github.com/resurgence-tools/edjb/internal/ui"
	"github.com/resurgence-tools/edjb/pkg/models"
)

// Options configures an App. Zero values are usable.
type Options struct {
	Logger *slog.Logger
	// Spinner shows activity while the host works; nil shows nothing.
	Spinner func(title string) ui.Spinner
	// Now is the clock used to date saved builders.
	Now func() time.Time
	// OnSettings is called after settings were saved.
	OnSettings func(models.Settings)
}

// App is one interactive builder session. Every handler runs to
// completion before the next one starts; the modal refuses a second
// dialog while one is pending.
type App struct {
	host    Host
	prompt  ui.Prompter
	modal   *ui.Modal
	session *builder.Session
	saved   *store.Saved
	logger  *slog.Logger
	opts    Options

	folder  string
	listing scanner.Listing
	mode    models.MapMode
	opened  *models.SavedJSON
}

// New creates an App.
func New(host Host, prompt ui.Prompter, opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &App{
		host:    host,
		prompt:  prompt,
		modal:   ui.NewModal(),
		session: builder.NewSession(),
		saved:   store.NewSaved(hostStore{host: host}, opts.Now),
		logger:  opts.Logger,
		opts:    opts,
		mode:    models.MapModeVanilla,
	}
}

// Session returns the session being edited.
func (a *App) Session() *builder.Session { return a.session }

// Folder returns the data folder opened last.
func (a *App) Folder() string { return a.folder }

// Run shows the main menu until the user quits. A failing action is
// reported and the menu is shown again.
func (a *App) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		action, err := a.prompt.MainMenu(ctx, a.menuState())
		if err != nil {
			return err
		}
		if action == ui.MenuQuit {
			return a.host.Close()
		}
		if err := a.Dispatch(ctx, action); err != nil {
			a.report(ctx, err)
		}
	}
}

// Dispatch runs the handler for a menu action.
func (a *App) Dispatch(ctx context.Context, action ui.MenuAction) error {
	switch action {
	case ui.MenuOpenFolder:
		return a.OpenFolder(ctx)
	case ui.MenuNewType:
		return a.NewType(ctx)
	case ui.MenuEditType:
		return a.EditType(ctx)
	case ui.MenuDeleteType:
		return a.DeleteType(ctx)
	case ui.MenuExport:
		return a.Export(ctx, "")
	case ui.MenuOpenSaved:
		return a.OpenSaved(ctx)
	case ui.MenuSettings:
		return a.Settings(ctx)
	case ui.MenuHelp:
		return a.Help(ctx)
	case ui.MenuQuit:
		return nil
	}
	return fmt.Errorf("app: unknown action %q", action)
}

func (a *App) menuState() ui.MenuState {
	folder := a.folder
	if a.opened != nil {
		label := "saved builder " + a.opened.Name
		if folder != "" {
			label = folder + " | " + label
		}
		folder = label
	}
	return ui.MenuState{
		Folder:    folder,
		Types:     a.session.Types(),
		CanExport: a.session.CanExport(),
	}
}

// OpenFolder asks for a data folder and scans it.
func (a *App) OpenFolder(ctx context.Context) error {
	dir, ok, err := ui.Await(a.modal, ui.ModalOpenFolder, func() (string, bool, error) {
		return a.prompt.ChooseFolder(ctx, a.folder)
	})
	if err != nil || !ok {
		return err
	}
	return a.OpenDir(ctx, dir)
}

// OpenDir scans dir without asking. On failure the previous folder and
// listing are kept.
func (a *App) OpenDir(ctx context.Context, dir string) error {
	stop := a.spin("Scanning " + dir)
	listing, err := a.host.OpenFolder(ctx, dir)
	stop()
	if err != nil {
		return fmt.Errorf("open folder %s: %w", dir, err)
	}

	a.folder = dir
	a.listing = *listing
	a.logger.Info("folder opened", "dir", dir, "maps", len(listing.Maps), "types", len(listing.Types))
	return a.notify(ctx, ui.Notice{
		Level: ui.LevelSuccess,
		Title: "Opened " + dir,
		Details: []string{
			fmt.Sprintf("%d map variants, %d game variants", len(listing.Maps), len(listing.Types)),
		},
	})
}

// NewType opens a form for a new type. A cancelled form is discarded.
func (a *App) NewType(ctx context.Context) error {
	rec := a.session.NewType()
	edited, ok, err := a.editType(ctx, rec)
	if err != nil || !ok {
		a.session.Apply(rec, builder.OpDelete)
		return err
	}
	a.session.Apply(edited, builder.OpSave)
	return nil
}

// EditType picks a saved type and edits it in place.
func (a *App) EditType(ctx context.Context) error {
	id, ok, err := a.pickType(ctx, "Edit type")
	if err != nil || !ok {
		return err
	}
	rec, found := a.session.Get(id)
	if !found {
		return nil
	}
	edited, ok, err := a.editType(ctx, rec)
	if err != nil || !ok {
		return err
	}
	a.session.Apply(edited, builder.OpSave)
	return nil
}

// DeleteType picks a saved type and removes it.
func (a *App) DeleteType(ctx context.Context) error {
	id, ok, err := a.pickType(ctx, "Delete type")
	if err != nil || !ok {
		return err
	}
	a.session.Apply(models.TypeRecord{ID: id}, builder.OpDelete)
	return nil
}

func (a *App) pickType(ctx context.Context, title string) (int64, bool, error) {
	return ui.Await(a.modal, ui.ModalTypeForm, func() (int64, bool, error) {
		return a.prompt.PickType(ctx, title, a.session.Types())
	})
}

func (a *App) editType(ctx context.Context, rec models.TypeRecord) (models.TypeRecord, bool, error) {
	in := ui.TypeFormInput{
		Record:     rec,
		GameTypes:  slices.Clone(a.listing.Types),
		CustomMaps: slices.Clone(a.listing.Maps),
	}
	edited, ok, err := ui.Await(a.modal, ui.ModalTypeForm, func() (models.TypeRecord, bool, error) {
		return a.prompt.EditType(ctx, in)
	})
	if err != nil || !ok {
		return models.TypeRecord{}, false, err
	}
	// The id belongs to the session, never to the form.
	edited.ID = rec.ID
	return edited, true, nil
}

// Export assembles the session and writes voting.json and mods.json.
// An empty mode asks the user. The build can optionally be saved to the
// builder first; each file is then written on its own and every failure
// is returned.
func (a *App) Export(ctx context.Context, mode models.MapMode) error {
	if !a.session.CanExport() {
		return fmt.Errorf("%w (have %d)", builder.ErrTooFewTypes, a.session.Len())
	}

	if mode == "" {
		m, ok, err := ui.Await(a.modal, ui.ModalSaveFiles, func() (models.MapMode, bool, error) {
			return a.prompt.ChooseMapMode(ctx, a.mode)
		})
		if err != nil || !ok {
			return err
		}
		mode = m
	}

	res, err := export.Assemble(a.session.Types(), mode)
	if err != nil {
		return err
	}
	files, err := res.Files()
	if err != nil {
		return err
	}
	a.mode = mode

	name, save, err := ui.Await(a.modal, ui.ModalSaveFiles, func() (string, bool, error) {
		return a.prompt.ConfirmSaveToBuilder(ctx)
	})
	if err != nil {
		return err
	}

	var errs []error
	if save {
		entry, err := a.saved.Append(ctx, name, a.session.Document())
		if err != nil {
			errs = append(errs, err)
		} else {
			a.opened = &entry
			a.logger.Info("saved to builder", "name", name, "date", entry.Date)
		}
	}

	chooser := export.PathChooserFunc(func(ctx context.Context, file string) (string, bool, error) {
		return ui.Await(a.modal, ui.ModalSaveFiles, func() (string, bool, error) {
			return a.prompt.ChooseSavePath(ctx, file, a.defaultPath(file))
		})
	})
	results, err := a.host.SaveFiles(ctx, files, chooser)
	if err != nil {
		errs = append(errs, err)
	}

	if n, ok := exportNotice(results, len(res.Mods.Mods) > 0); ok {
		if err := a.notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (a *App) defaultPath(name string) string {
	if a.folder == "" {
		return name
	}
	return filepath.Join(a.folder, name)
}

// exportNotice summarizes written and skipped files. Failures are
// reported separately through the returned error.
func exportNotice(results []export.WriteResult, hasMods bool) (ui.Notice, bool) {
	var written, skipped []string
	for _, r := range results {
		switch {
		case r.Err != nil:
		case r.Skipped:
			skipped = append(skipped, r.Name+" skipped")
		default:
			written = append(written, r.Name+" → "+r.Path)
		}
	}
	if len(written) == 0 && len(skipped) == 0 {
		return ui.Notice{}, false
	}
	if len(written) == 0 {
		return ui.Notice{Level: ui.LevelWarn, Title: "Nothing was written", Details: skipped}, true
	}
	details := append(written, skipped...)
	if hasMods {
		details = append(details, "", "Fill in every package_url in mods.json with a direct download link.")
	}
	return ui.Notice{Level: ui.LevelSuccess, Title: "Export complete", Details: details}, true
}

// OpenSaved lets the user open or delete saved builders. Deletions stay
// local to the dialog and are persisted only when a builder is opened;
// cancelling discards them.
func (a *App) OpenSaved(ctx context.Context) error {
	list, err := a.saved.List(ctx)
	if err != nil {
		return err
	}

	working := list
	for {
		pick, ok, err := ui.Await(a.modal, ui.ModalOpenSaved, func() (ui.SavedPick, bool, error) {
			p, err := a.prompt.PickSaved(ctx, working)
			return p, p.Action != ui.SavedCancel, err
		})
		if err != nil || !ok {
			return err
		}

		switch pick.Action {
		case ui.SavedDelete:
			working = store.Without(working, pick.Date)
			continue
		case ui.SavedLoad:
			i := slices.IndexFunc(working, func(e models.SavedJSON) bool { return e.Date == pick.Date })
			if i < 0 {
				return fmt.Errorf("%w: date %d", store.ErrNotFound, pick.Date)
			}
			if len(working) != len(list) {
				if err := a.saved.Replace(ctx, working); err != nil {
					return err
				}
			}
			a.load(working[i])
			return a.notify(ctx, ui.Notice{
				Level: ui.LevelSuccess,
				Title: "Opened " + working[i].Name,
				Details: []string{
					fmt.Sprintf("%d types, saved %s", len(working[i].Data.Types), working[i].SavedAt().Format(time.DateTime)),
				},
			})
		}
	}
}

func (a *App) load(entry models.SavedJSON) {
	a.session.Load(entry.Data)
	a.opened = &entry
	a.logger.Info("saved builder opened", "name", entry.Name, "date", entry.Date)
}

// LoadDocument replaces the session with doc, for instance a voting.json
// read from disk.
func (a *App) LoadDocument(doc models.Document) {
	a.session.Load(doc)
	a.opened = nil
}

// Settings edits the settings and persists them wholesale.
func (a *App) Settings(ctx context.Context) error {
	current, err := a.host.GetConfig(ctx)
	if err != nil {
		return err
	}
	next, ok, err := ui.Await(a.modal, ui.ModalSettings, func() (models.Settings, bool, error) {
		return a.prompt.EditSettings(ctx, current)
	})
	if err != nil || !ok {
		return err
	}
	if err := a.host.SetConfig(ctx, next); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	if a.opts.OnSettings != nil {
		a.opts.OnSettings(next)
	}
	return a.notify(ctx, ui.Notice{Level: ui.LevelSuccess, Title: "Settings saved"})
}

// Help opens the help page, or shows the bundled guide when none is
// configured.
func (a *App) Help(ctx context.Context) error {
	err := a.host.OpenHelp(ctx)
	if err == nil {
		return a.notify(ctx, ui.Notice{Level: ui.LevelInfo, Title: "Help opened in your browser"})
	}
	if !errors.Is(err, ErrNoHelpURL) {
		return fmt.Errorf("open help: %w", err)
	}

	text, err := guide.Render(guide.Options{Width: 76, Plain: ui.NoColorRequested()})
	if err != nil {
		return err
	}
	return a.notify(ctx, ui.Notice{Level: ui.LevelInfo, Title: "Guide", Details: []string{text}})
}

func (a *App) notify(ctx context.Context, n ui.Notice) error {
	if err := a.modal.Open(ui.ModalError); err != nil {
		return err
	}
	defer a.modal.Reset()
	return a.prompt.Notify(ctx, n)
}

// report shows err to the user. The session continues either way.
func (a *App) report(ctx context.Context, err error) {
	a.logger.Warn("action failed", "error", err)
	n := ui.Notice{Level: ui.LevelError, Title: errorTitle(err), Details: []string{err.Error()}}
	if nerr := a.notify(ctx, n); nerr != nil {
		a.logger.Error("cannot show error", "error", nerr, "cause", err)
	}
}

func errorTitle(err error) string {
	switch {
	case errors.Is(err, scanner.ErrVariantsDirNotFound):
		return "Folder must contain map_variants and game_variants"
	case errors.Is(err, builder.ErrTooFewTypes):
		return "Add more types before exporting"
	case errors.Is(err, store.ErrInvalidName):
		return "Invalid saved builder name"
	case errors.Is(err, export.ErrUnknownMapMode):
		return "Unknown maps option"
	default:
		return "Something went wrong"
	}
}

func (a *App) spin(title string) func() {
	if a.opts.Spinner == nil {
		return func() {}
	}
	s := a.opts.Spinner(title)
	return s.Stop
}
