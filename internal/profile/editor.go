package profile

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"resource-converter/internal/domain"
	"resource-converter/internal/logger"
)

// Tester sends a profile to the backend connection check.
type Tester interface {
	TestConnection(ctx context.Context, p domain.ConnectionProfile) (string, error)
}

// ConfirmFunc asks the user to confirm an action.
type ConfirmFunc func(prompt string) bool

// Editor is the profile form: a working copy plus the store it saves to.
type Editor struct {
	store   *Store
	tester  Tester
	current domain.ConnectionProfile
}

// NewEditor opens the editor on the active profile, or on a blank default
// profile when none is active.
func NewEditor(store *Store, tester Tester) (*Editor, error) {
	e := &Editor{store: store, tester: tester, current: domain.DefaultProfile()}

	active, err := store.Active()
	if err != nil {
		return nil, err
	}
	if active == "" {
		return e, nil
	}

	p, err := store.Get(active)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return e, nil
		}
		return nil, err
	}
	e.current = p
	return e, nil
}

// Current returns the working copy.
func (e *Editor) Current() domain.ConnectionProfile {
	return e.current
}

// Set replaces the working copy without saving it.
func (e *Editor) Set(p domain.ConnectionProfile) {
	if p.LanguageMap == nil {
		p.LanguageMap = map[domain.Slot]string{}
	}
	e.current = p
}

// Load makes a stored profile the working copy and the active profile.
func (e *Editor) Load(name string) error {
	p, err := e.store.Get(name)
	if err != nil {
		return err
	}
	if err := e.store.SetActive(name); err != nil {
		return err
	}
	e.current = p
	return nil
}

// Save upserts the working copy and makes it active.
func (e *Editor) Save() error {
	e.current.Name = strings.TrimSpace(e.current.Name)
	if err := e.store.Save(e.current); err != nil {
		return err
	}
	return e.store.SetActive(e.current.Name)
}

// Delete removes a profile after confirmation. It reports whether the
// profile was deleted. Deleting the profile being edited resets the form.
func (e *Editor) Delete(name string, confirm ConfirmFunc) (bool, error) {
	if confirm != nil && !confirm("Delete profile "+name+"?") {
		return false, nil
	}
	if err := e.store.Delete(name); err != nil {
		return false, err
	}
	if e.current.Name == name {
		e.current = domain.DefaultProfile()
	}
	return true, nil
}

// TestConnection checks the working copy against the backend and returns the
// message to show. Failures are reported in the message, never returned.
func (e *Editor) TestConnection(ctx context.Context) string {
	msg, err := e.tester.TestConnection(ctx, e.current)
	if err != nil {
		logger.Debug("Connection test request failed", slog.String("error", err.Error()))
		return "connection failed: " + err.Error()
	}
	return msg
}
