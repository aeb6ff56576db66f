package ui

import (
	"context"

	"github.com/resurgence-tools/edjb/pkg/models"
)

// MenuAction is an entry of the main menu.
type MenuAction string

const (
	MenuOpenFolder MenuAction = "open-folder"
	MenuNewType    MenuAction = "new-type"
	MenuEditType   MenuAction = "edit-type"
	MenuDeleteType MenuAction = "delete-type"
	MenuExport     MenuAction = "export"
	MenuOpenSaved  MenuAction = "open-saved"
	MenuSettings   MenuAction = "settings"
	MenuHelp       MenuAction = "help"
	MenuQuit       MenuAction = "quit"
)

// MenuState is what the main menu shows about the session.
type MenuState struct {
	Folder    string
	Types     []models.TypeRecord
	CanExport bool
}

// TypeFormInput is the data a type form is opened with.
type TypeFormInput struct {
	Record models.TypeRecord
	// GameTypes are the entries of the chosen game_variants folder.
	GameTypes []string
	// CustomMaps are the entries of the chosen map_variants folder.
	CustomMaps []string
}

// SavedAction is what the user chose in the saved builder dialog.
type SavedAction int

const (
	SavedCancel SavedAction = iota
	SavedLoad
	SavedDelete
)

// SavedPick is the outcome of one round of the saved builder dialog.
type SavedPick struct {
	Action SavedAction
	Date   int64
}

// Prompter shows the builder's dialogs. Every method that returns ok
// reports cancellation with ok=false and a nil error.
type Prompter interface {
	MainMenu(ctx context.Context, state MenuState) (MenuAction, error)
	ChooseFolder(ctx context.Context, initial string) (dir string, ok bool, err error)
	ChooseSavePath(ctx context.Context, name, defaultPath string) (path string, ok bool, err error)
	PickType(ctx context.Context, title string, types []models.TypeRecord) (id int64, ok bool, err error)
	EditType(ctx context.Context, in TypeFormInput) (rec models.TypeRecord, ok bool, err error)
	ChooseMapMode(ctx context.Context, current models.MapMode) (mode models.MapMode, ok bool, err error)
	ConfirmSaveToBuilder(ctx context.Context) (name string, ok bool, err error)
	PickSaved(ctx context.Context, list []models.SavedJSON) (SavedPick, error)
	EditSettings(ctx context.Context, current models.Settings) (s models.Settings, ok bool, err error)
	Notify(ctx context.Context, n Notice) error
}
