// Package exportview implements the export screen: it loads the selected rows,
// previews them in one language and produces the download file.
package exportview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"resource-converter/internal/domain"
	"resource-converter/internal/download"
	"resource-converter/internal/export"
	"resource-converter/internal/logger"
)

var (
	// ErrNoSelection is returned when there are no rows to export.
	ErrNoSelection = errors.New("no rows selected")
	// ErrFilenameRequired is returned when a download has no file name.
	ErrFilenameRequired = errors.New("file name is required")
	// ErrNoSlots is returned when a download names no language.
	ErrNoSlots = errors.New("no language selected")
)

// API is the backend used by the export screen.
type API[T any] interface {
	FetchByIDs(ctx context.Context, req domain.ByIDsRequest) ([]T, error)
	Download(ctx context.Context, rows []T, slot domain.Slot) (string, error)
}

// View is the export screen for one resource kind.
type View[T any] struct {
	api     API[T]
	profile domain.ConnectionProfile
	format  export.Format
	render  func([]T, domain.Slot) string
	prepare func([]T) []T
	rows    []T
}

// NewLabels creates the label export screen. messageIDs holds the keys the
// user entered on the list screen, by object ID.
func NewLabels(api API[domain.LabelRow], p domain.ConnectionProfile, messageIDs map[string]string) *View[domain.LabelRow] {
	return &View[domain.LabelRow]{
		api:     api,
		profile: p,
		format:  export.FormatProperties,
		render:  export.Properties,
		prepare: func(rows []domain.LabelRow) []domain.LabelRow {
			return ApplyMessageIDs(rows, messageIDs)
		},
	}
}

// NewErrorMessages creates the error message export screen.
func NewErrorMessages(api API[domain.ErrorMessageRow], p domain.ConnectionProfile) *View[domain.ErrorMessageRow] {
	return &View[domain.ErrorMessageRow]{
		api:     api,
		profile: p,
		format:  export.FormatXML,
		render:  export.ErrorXML,
	}
}

// ApplyMessageIDs sets MessageID on every label with a non-blank entry in m.
func ApplyMessageIDs(rows []domain.LabelRow, m map[string]string) []domain.LabelRow {
	out := make([]domain.LabelRow, len(rows))
	for i, r := range rows {
		if id := strings.TrimSpace(m[r.ObjectID]); id != "" {
			r.MessageID = id
		}
		out[i] = r
	}
	return out
}

// Open loads exactly the rows in ids.
func (v *View[T]) Open(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return ErrNoSelection
	}

	rows, err := v.api.FetchByIDs(ctx, domain.ByIDsRequest{
		DBConfig:  v.profile.Connection(),
		ObjectIDs: ids,
	})
	if err != nil {
		return fmt.Errorf("load selected rows: %w", err)
	}
	if v.prepare != nil {
		rows = v.prepare(rows)
	}
	v.rows = rows
	return nil
}

// Rows returns the loaded rows.
func (v *View[T]) Rows() []T {
	return v.rows
}

// Format returns the single-file format of this screen.
func (v *View[T]) Format() export.Format {
	return v.format
}

// Slots lists the languages offered for preview and download.
func (v *View[T]) Slots() []domain.Slot {
	return v.profile.AvailableSlots()
}

// Preview renders the loaded rows in one language.
func (v *View[T]) Preview(slot domain.Slot) (string, error) {
	if err := v.checkSlot(slot); err != nil {
		return "", err
	}
	return v.render(v.rows, slot), nil
}

// SuggestedName pre-fills the file name prompt for slots.
func (v *View[T]) SuggestedName(slots []domain.Slot) string {
	return download.SuggestedName(v.profile, slots, v.format)
}

// Download asks the backend to render each slot and packages the results.
// One slot gives a single file; several give a zip with one entry per slot.
func (v *View[T]) Download(ctx context.Context, slots []domain.Slot, filename string) (download.File, error) {
	if len(v.rows) == 0 {
		return download.File{}, ErrNoSelection
	}
	slots = dedupe(slots)
	if len(slots) == 0 {
		return download.File{}, ErrNoSlots
	}
	if strings.TrimSpace(filename) == "" {
		return download.File{}, ErrFilenameRequired
	}
	for _, s := range slots {
		if err := v.checkSlot(s); err != nil {
			return download.File{}, err
		}
	}

	texts := make(map[domain.Slot]string, len(slots))
	for _, s := range slots {
		text, err := v.api.Download(ctx, v.rows, s)
		if err != nil {
			return download.File{}, fmt.Errorf("download %s: %w", s, err)
		}
		if preview := v.render(v.rows, s); preview != text {
			logger.Warn("Downloaded text differs from preview",
				slog.String("slot", string(s)),
				slog.Int("preview_bytes", len(preview)),
				slog.Int("download_bytes", len(text)),
			)
		}
		texts[s] = text
	}

	docs := download.Documents(v.profile, slots, v.format, func(s domain.Slot) string {
		return texts[s]
	})
	return download.Build(docs, v.format, filename)
}

func (v *View[T]) checkSlot(slot domain.Slot) error {
	if !domain.IsValidSlot(slot) {
		return fmt.Errorf("%w: %s", domain.ErrUnknownSlot, slot)
	}
	if !slices.Contains(v.Slots(), slot) {
		return fmt.Errorf("%w: %s has no language label", domain.ErrUnknownSlot, slot)
	}
	return nil
}

func dedupe(slots []domain.Slot) []domain.Slot {
	out := make([]domain.Slot, 0, len(slots))
	for _, s := range slots {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
