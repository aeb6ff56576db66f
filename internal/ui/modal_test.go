package ui

import (
	"errors"
	"testing"
)

func TestModalLifecycle(t *testing.T) {
	t.Parallel()

	m := NewModal()
	if s, _ := m.State(); s != ModalIdle {
		t.Fatalf("new modal state = %s, want idle", s)
	}
	if _, _, ok := m.Result(); ok {
		t.Error("idle modal has a result")
	}

	if err := m.Open(ModalSaveFiles); err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if s, k := m.State(); s != ModalAwaiting || k != ModalSaveFiles {
		t.Errorf("state = %s/%s, want awaiting/save-files", s, k)
	}

	// Only one dialog at a time.
	if err := m.Open(ModalSettings); !errors.Is(err, ErrModalBusy) {
		t.Errorf("second Open() error = %v, want ErrModalBusy", err)
	}

	if err := m.Resolve("voting.json"); err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	v, cancelled, ok := m.Result()
	if !ok || cancelled || v != "voting.json" {
		t.Errorf("Result() = %v, %v, %v", v, cancelled, ok)
	}

	// Resolved is still busy until Reset.
	if err := m.Open(ModalSettings); !errors.Is(err, ErrModalBusy) {
		t.Errorf("Open() while resolved error = %v", err)
	}
	if err := m.Resolve("again"); !errors.Is(err, ErrModalIdle) {
		t.Errorf("Resolve() twice error = %v, want ErrModalIdle", err)
	}

	m.Reset()
	if s, k := m.State(); s != ModalIdle || k != "" {
		t.Errorf("state after Reset = %s/%q", s, k)
	}
}

func TestModalCancel(t *testing.T) {
	t.Parallel()

	m := NewModal()
	if err := m.Cancel(); !errors.Is(err, ErrModalIdle) {
		t.Errorf("Cancel() on idle modal error = %v", err)
	}

	if err := m.Open(ModalOpenFolder); err != nil {
		t.Fatal(err)
	}
	if err := m.Cancel(); err != nil {
		t.Fatalf("Cancel() error: %v", err)
	}
	v, cancelled, ok := m.Result()
	if !ok || !cancelled || v != nil {
		t.Errorf("Result() = %v, %v, %v; want nil, true, true", v, cancelled, ok)
	}
}

func TestAwait(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	tests := []struct {
		name    string
		show    func() (string, bool, error)
		want    string
		wantOK  bool
		wantErr error
	}{
		{"resolved", func() (string, bool, error) { return "dir", true, nil }, "dir", true, nil},
		{"cancel via ok", func() (string, bool, error) { return "ignored", false, nil }, "", false, nil},
		{"cancel via error", func() (string, bool, error) { return "", false, ErrCancelled }, "", false, nil},
		{"failure", func() (string, bool, error) { return "", false, errBoom }, "", false, errBoom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := NewModal()
			got, ok, err := Await(m, ModalOpenFolder, tt.show)
			if got != tt.want || ok != tt.wantOK || !errors.Is(err, tt.wantErr) {
				t.Errorf("Await() = %q, %v, %v; want %q, %v, %v", got, ok, err, tt.want, tt.wantOK, tt.wantErr)
			}
			if s, _ := m.State(); s != ModalIdle {
				t.Errorf("modal not reset, state = %s", s)
			}
		})
	}
}

func TestAwaitWhileBusy(t *testing.T) {
	t.Parallel()

	m := NewModal()
	_, _, err := Await(m, ModalTypeForm, func() (int, bool, error) {
		// A nested dialog cannot open while the outer one is pending.
		_, _, inner := Await(m, ModalError, func() (int, bool, error) { return 1, true, nil })
		return 0, true, inner
	})
	if !errors.Is(err, ErrModalBusy) {
		t.Errorf("nested Await() error = %v, want ErrModalBusy", err)
	}
}

func TestModalStateString(t *testing.T) {
	t.Parallel()

	for s, want := range map[ModalState]string{
		ModalIdle: "idle", ModalAwaiting: "awaiting", ModalResolved: "resolved", ModalState(9): "ModalState(9)",
	} {
		if got := s.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(s), got, want)
		}
	}
}
