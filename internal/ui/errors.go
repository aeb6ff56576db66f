// Package ui provides the terminal surface of the builder: themed cards,
// a spinner, huh-based dialogs and the modal state machine that gates
// them.
package ui

import "errors"

var (
	// ErrCancelled indicates the user dismissed a dialog.
	ErrCancelled = errors.New("ui: cancelled by user")

	// ErrModalBusy indicates a dialog was opened while another is pending.
	ErrModalBusy = errors.New("ui: another dialog is open")

	// ErrModalIdle indicates a resolution for a modal that is not awaiting input.
	ErrModalIdle = errors.New("ui: no dialog is awaiting input")

	// ErrHeadless indicates an interactive dialog was requested without a terminal.
	ErrHeadless = errors.New("ui: interactive input requires a terminal")
)
