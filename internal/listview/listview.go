// Package listview implements the browse screen state: one page of rows for
// the active profile and filter, plus a selection that survives paging and
// filter changes.
package listview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"resource-converter/internal/debounce"
	"resource-converter/internal/domain"
	"resource-converter/internal/logger"
	"resource-converter/internal/selection"
	"resource-converter/internal/session"
)

var (
	// ErrBusy is returned when a filter or selection action is attempted while
	// a fetch or a select-all is in flight.
	ErrBusy = errors.New("another request is in progress")
	// ErrNoProfile is returned when no connection profile is active.
	ErrNoProfile = errors.New("no connection profile selected")
	// ErrInvalidPaging is returned for a negative page or a page size below one.
	ErrInvalidPaging = errors.New("invalid paging")
)

const (
	// DefaultPageSize is used when Options carries no page size.
	DefaultPageSize = 50
	// DefaultDebounce is the quiet period before a filter edit is applied.
	DefaultDebounce = 500 * time.Millisecond
)

// Row is a fetched resource row.
type Row interface {
	ID() string
}

// Source fetches rows for the view.
type Source[T Row] interface {
	Fetch(ctx context.Context, req domain.FetchRequest) (domain.PagedResult[T], error)
	FetchIDs(ctx context.Context, req domain.IDsRequest) ([]string, error)
}

// Trigger says what caused a fetch. It decides whether a failed fetch clears
// the selection.
type Trigger int

const (
	TriggerProfile Trigger = iota
	TriggerFilter
	TriggerPage
	TriggerRestore
)

func (t Trigger) String() string {
	switch t {
	case TriggerProfile:
		return "profile"
	case TriggerFilter:
		return "filter"
	case TriggerPage:
		return "page"
	case TriggerRestore:
		return "restore"
	}
	return "unknown"
}

// Options configures a View.
type Options struct {
	PageSize int
	// Debounce is the filter quiet period. Zero applies edits immediately.
	Debounce time.Duration
	// FetchTimeout bounds fetches started by a settled filter edit.
	FetchTimeout time.Duration
	// OnUpdate is called after every state change, outside the view's lock.
	OnUpdate func()
}

// State is a read-only copy of the view.
type State[T Row] struct {
	Profile       string
	Page          int
	PageSize      int
	Filter        domain.Filter
	PendingFilter bool
	Content       []T
	Total         int64
	Selected      int
	Loading       bool
	ActionLoading bool
	Err           error
}

// View is the browse screen state machine. It is safe for concurrent use: the
// debounce timer settles filter edits on its own goroutine.
type View[T Row] struct {
	source   Source[T]
	filter   *debounce.Value[domain.Filter]
	timeout  time.Duration
	onUpdate func()

	mu            sync.Mutex
	profile       *domain.ConnectionProfile
	page          int
	size          int
	applied       domain.Filter
	selection     selection.Set
	messageIDs    map[string]string
	content       []T
	total         int64
	loading       bool
	actionLoading bool
	lastErr       error
	seq           uint64
	changed       chan struct{}
}

// New creates a View with no active profile.
func New[T Row](source Source[T], opts Options) *View[T] {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = 30 * time.Second
	}

	v := &View[T]{
		source:     source,
		timeout:    opts.FetchTimeout,
		onUpdate:   opts.OnUpdate,
		size:       opts.PageSize,
		messageIDs: make(map[string]string),
		changed:    make(chan struct{}),
	}
	v.filter = debounce.New(domain.Filter{}, opts.Debounce, v.filterSettled)
	return v
}

// State returns a copy of the current state.
func (v *View[T]) State() State[T] {
	v.mu.Lock()
	defer v.mu.Unlock()

	s := State[T]{
		Page:          v.page,
		PageSize:      v.size,
		Filter:        v.filter.Effective(),
		PendingFilter: v.filter.Pending(),
		Content:       append([]T(nil), v.content...),
		Total:         v.total,
		Selected:      v.selection.Len(),
		Loading:       v.loading,
		ActionLoading: v.actionLoading,
		Err:           v.lastErr,
	}
	if v.profile != nil {
		s.Profile = v.profile.Name
	}
	return s
}

// Profile returns the active profile.
func (v *View[T]) Profile() (domain.ConnectionProfile, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.profile == nil {
		return domain.ConnectionProfile{}, false
	}
	return *v.profile, true
}

// SetProfile activates p, resets the page and the selection, and fetches.
func (v *View[T]) SetProfile(ctx context.Context, p domain.ConnectionProfile) error {
	v.mu.Lock()
	v.profile = &p
	v.page = 0
	v.selection.Clear()
	v.mu.Unlock()

	return v.fetch(ctx, TriggerProfile)
}

// SetFilter records a filter edit. The fetch happens once edits pause; it
// resets the page but keeps the selection.
func (v *View[T]) SetFilter(f domain.Filter) error {
	v.mu.Lock()
	busy := v.loading || v.actionLoading
	v.mu.Unlock()
	if busy {
		return ErrBusy
	}

	v.filter.Set(f)
	v.notify()
	return nil
}

// FlushFilter applies a pending filter edit now and waits for its fetch.
func (v *View[T]) FlushFilter() {
	v.filter.Flush()
}

func (v *View[T]) filterSettled(f domain.Filter) {
	v.mu.Lock()
	// applied is recorded even without a profile: Wait treats the edit as
	// settled once it matches.
	v.applied = f
	v.page = 0
	if v.profile == nil {
		v.mu.Unlock()
		v.notify()
		return
	}
	req, seq := v.beginLocked()
	v.mu.Unlock()
	v.notify()

	ctx, cancel := context.WithTimeout(context.Background(), v.timeout)
	defer cancel()
	if err := v.complete(ctx, req, seq, TriggerFilter); err != nil {
		logger.DebugContext(ctx, "Filter fetch failed", slog.String("error", err.Error()))
	}
}

// SetPage moves to a zero-based page. The selection is untouched.
func (v *View[T]) SetPage(ctx context.Context, page int) error {
	if page < 0 {
		return fmt.Errorf("%w: page %d", ErrInvalidPaging, page)
	}
	v.mu.Lock()
	v.page = page
	v.mu.Unlock()

	return v.fetch(ctx, TriggerPage)
}

// SetPageSize changes the rows per page and keeps the page number.
func (v *View[T]) SetPageSize(ctx context.Context, size int) error {
	if size < 1 {
		return fmt.Errorf("%w: page size %d", ErrInvalidPaging, size)
	}
	v.mu.Lock()
	v.size = size
	v.mu.Unlock()

	return v.fetch(ctx, TriggerPage)
}

// Refresh fetches the current page again.
func (v *View[T]) Refresh(ctx context.Context) error {
	return v.fetch(ctx, TriggerPage)
}

// fetch requests the page described by the current state.
func (v *View[T]) fetch(ctx context.Context, trigger Trigger) error {
	v.mu.Lock()
	if v.profile == nil {
		v.mu.Unlock()
		return ErrNoProfile
	}
	req, seq := v.beginLocked()
	v.mu.Unlock()
	v.notify()

	return v.complete(ctx, req, seq, trigger)
}

// beginLocked marks the view loading and numbers the fetch. v.mu must be held
// and a profile must be active.
func (v *View[T]) beginLocked() (domain.FetchRequest, uint64) {
	v.seq++
	v.loading = true
	return domain.FetchRequest{
		ConnectionConfig: v.profile.Connection(),
		Filter:           v.filter.Effective(),
		Page:             v.page,
		Size:             v.size,
	}, v.seq
}

// complete runs a fetch started by beginLocked. A response to a fetch that
// has since been superseded is dropped.
func (v *View[T]) complete(ctx context.Context, req domain.FetchRequest, seq uint64, trigger Trigger) error {
	result, err := v.source.Fetch(ctx, req)

	v.mu.Lock()
	if seq != v.seq {
		v.mu.Unlock()
		logger.Debug("Dropping stale page response", slog.Uint64("seq", seq), slog.String("trigger", trigger.String()))
		return nil
	}
	v.loading = false
	if err != nil {
		v.content = nil
		v.total = 0
		v.lastErr = err
		if trigger == TriggerProfile || trigger == TriggerFilter {
			v.selection.Clear()
		}
	} else {
		v.content = result.Content
		v.total = result.TotalElements
		v.lastErr = nil
	}
	v.mu.Unlock()
	v.notify()

	return err
}

// Toggle flips the selection of one row.
func (v *View[T]) Toggle(id string) (bool, error) {
	v.mu.Lock()
	defer v.notify()
	defer v.mu.Unlock()

	if v.loading || v.actionLoading {
		return false, ErrBusy
	}
	return v.selection.Toggle(id), nil
}

// SelectPage adds every row of the current page to the selection.
func (v *View[T]) SelectPage() error {
	v.mu.Lock()
	defer v.notify()
	defer v.mu.Unlock()

	if v.loading || v.actionLoading {
		return ErrBusy
	}
	for _, row := range v.content {
		v.selection.Add(row.ID())
	}
	return nil
}

// ClearSelection empties the selection.
func (v *View[T]) ClearSelection() error {
	v.mu.Lock()
	defer v.notify()
	defer v.mu.Unlock()

	if v.loading || v.actionLoading {
		return ErrBusy
	}
	v.selection.Clear()
	return nil
}

// SelectAllMatching replaces the selection with every ID matching the
// current filter. On failure the selection is left as it was.
func (v *View[T]) SelectAllMatching(ctx context.Context) error {
	v.mu.Lock()
	if v.profile == nil {
		v.mu.Unlock()
		return ErrNoProfile
	}
	if v.loading || v.actionLoading {
		v.mu.Unlock()
		return ErrBusy
	}
	v.actionLoading = true
	req := domain.IDsRequest{
		ConnectionConfig: v.profile.Connection(),
		Filter:           v.filter.Effective(),
	}
	v.mu.Unlock()
	v.notify()

	ids, err := v.source.FetchIDs(ctx, req)

	v.mu.Lock()
	v.actionLoading = false
	if err != nil {
		v.lastErr = err
	} else {
		v.selection.Replace(ids)
	}
	v.mu.Unlock()
	v.notify()

	return err
}

// IsSelected reports whether a row is selected.
func (v *View[T]) IsSelected(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selection.Contains(id)
}

// SelectedIDs returns the selection in ascending order.
func (v *View[T]) SelectedIDs() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selection.IDs()
}

// SetMessageID records a user-entered properties key for a row. A blank value
// removes the override.
func (v *View[T]) SetMessageID(id, messageID string) {
	v.mu.Lock()
	if messageID == "" {
		delete(v.messageIDs, id)
	} else {
		v.messageIDs[id] = messageID
	}
	v.mu.Unlock()
	v.notify()
}

// MessageIDs returns a copy of the user-entered keys.
func (v *View[T]) MessageIDs() map[string]string {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make(map[string]string, len(v.messageIDs))
	for k, val := range v.messageIDs {
		out[k] = val
	}
	return out
}

// Snapshot captures what Restore needs to rebuild the view.
func (v *View[T]) Snapshot() session.Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	s := session.Snapshot{
		Page:              v.page,
		RowsPerPage:       v.size,
		Filter:            v.filter.Effective(),
		SelectedObjectIDs: v.selection.IDs(),
		MessageIDMap:      make(map[string]string, len(v.messageIDs)),
	}
	if v.profile != nil {
		s.ProfileName = v.profile.Name
	}
	for k, val := range v.messageIDs {
		s.MessageIDMap[k] = val
	}
	return s
}

// Restore applies a snapshot taken with Snapshot and fetches its page. p is
// the profile named by the snapshot. A failed fetch keeps the restored
// selection.
func (v *View[T]) Restore(ctx context.Context, s session.Snapshot, p domain.ConnectionProfile) error {
	v.mu.Lock()
	v.profile = &p
	v.page = max(s.Page, 0)
	if s.RowsPerPage > 0 {
		v.size = s.RowsPerPage
	}
	v.filter.Reset(s.Filter)
	v.applied = s.Filter
	v.selection.Replace(s.SelectedObjectIDs)
	v.messageIDs = make(map[string]string, len(s.MessageIDMap))
	for k, val := range s.MessageIDMap {
		v.messageIDs[k] = val
	}
	v.mu.Unlock()

	return v.fetch(ctx, TriggerRestore)
}

// Wait blocks until no filter edit is pending and no request is in flight.
func (v *View[T]) Wait(ctx context.Context) error {
	for {
		v.mu.Lock()
		idle := !v.loading && !v.actionLoading && v.filter.Raw() == v.applied
		ch := v.changed
		v.mu.Unlock()

		if idle {
			return nil
		}
		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (v *View[T]) notify() {
	v.mu.Lock()
	close(v.changed)
	v.changed = make(chan struct{})
	v.mu.Unlock()

	if v.onUpdate != nil {
		v.onUpdate()
	}
}
