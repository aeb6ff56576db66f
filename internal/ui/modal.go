package ui

import (
	"errors"
	"fmt"
	"sync"
)

// ModalKind names the dialog a Modal is waiting on.
type ModalKind string

const (
	ModalOpenFolder ModalKind = "open-folder"
	ModalTypeForm   ModalKind = "type-form"
	ModalSaveFiles  ModalKind = "save-files"
	ModalOpenSaved  ModalKind = "open-saved"
	ModalSettings   ModalKind = "settings"
	ModalError      ModalKind = "error"
)

// ModalState is the lifecycle state of a Modal.
type ModalState int

const (
	ModalIdle ModalState = iota
	ModalAwaiting
	ModalResolved
)

// String returns the state name.
func (s ModalState) String() string {
	switch s {
	case ModalIdle:
		return "idle"
	case ModalAwaiting:
		return "awaiting"
	case ModalResolved:
		return "resolved"
	}
	return fmt.Sprintf("ModalState(%d)", int(s))
}

// Modal is the state machine that blocks the workflow while one dialog
// is pending: Idle -> Awaiting(kind) -> Resolved(result) -> Idle.
// A cancelled dialog resolves with a nil value and Cancelled set.
type Modal struct {
	mu        sync.Mutex
	state     ModalState
	kind      ModalKind
	value     any
	cancelled bool
}

// NewModal returns an idle Modal.
func NewModal() *Modal {
	return &Modal{}
}

// Open moves an idle modal to Awaiting(kind).
func (m *Modal) Open(kind ModalKind) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != ModalIdle {
		return fmt.Errorf("%w: %s is %s", ErrModalBusy, m.kind, m.state)
	}
	m.state = ModalAwaiting
	m.kind = kind
	m.value = nil
	m.cancelled = false
	return nil
}

// Resolve records the user's answer.
func (m *Modal) Resolve(v any) error {
	return m.finish(v, false)
}

// Cancel records that the user dismissed the dialog.
func (m *Modal) Cancel() error {
	return m.finish(nil, true)
}

func (m *Modal) finish(v any, cancelled bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != ModalAwaiting {
		return fmt.Errorf("%w (state %s)", ErrModalIdle, m.state)
	}
	m.state = ModalResolved
	m.value = v
	m.cancelled = cancelled
	return nil
}

// Result returns the resolved value and whether the dialog was
// cancelled. ok is false until the modal is resolved.
func (m *Modal) Result() (v any, cancelled, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != ModalResolved {
		return nil, false, false
	}
	return m.value, m.cancelled, true
}

// Reset returns the modal to Idle.
func (m *Modal) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = ModalIdle
	m.kind = ""
	m.value = nil
	m.cancelled = false
}

// State returns the current state and dialog kind.
func (m *Modal) State() (ModalState, ModalKind) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, m.kind
}

// Await opens the modal for kind, runs show and records its outcome,
// then returns to Idle. show reports cancellation with ok=false or
// ErrCancelled. The zero T is returned for a cancelled dialog.
func Await[T any](m *Modal, kind ModalKind, show func() (T, bool, error)) (T, bool, error) {
	var zero T
	if err := m.Open(kind); err != nil {
		return zero, false, err
	}
	defer m.Reset()

	v, ok, err := show()
	switch {
	case errors.Is(err, ErrCancelled), err == nil && !ok:
		_ = m.Cancel()
		return zero, false, nil
	case err != nil:
		_ = m.Cancel()
		return zero, false, err
	}
	if err := m.Resolve(v); err != nil {
		return zero, false, err
	}
	return v, true, nil
}
