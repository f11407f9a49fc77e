// Package session keeps the list view state across a round trip to the export
// view. A snapshot is written once before leaving and consumed once on return.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"resource-converter/internal/domain"
	"resource-converter/internal/logger"
)

// ErrNoSnapshot is returned by Consume when there is nothing to restore for the
// given key and token.
var ErrNoSnapshot = errors.New("no view snapshot to restore")

// Snapshot is the list view state saved before navigating to the export view.
type Snapshot struct {
	ProfileName       string            `json:"selectedConfigName"`
	Page              int               `json:"page"`
	RowsPerPage       int               `json:"rowsPerPage"`
	Filter            domain.Filter     `json:"filter"`
	SelectedObjectIDs []string          `json:"selectedObjectIDs"`
	MessageIDMap      map[string]string `json:"messageIdMap,omitempty"`
}

// Store saves and consumes snapshots. Save returns a navigation token; Consume
// only succeeds with the token of the latest Save for that key and always
// removes the entry.
type Store interface {
	Save(key string, s Snapshot) (string, error)
	Consume(key, token string) (Snapshot, error)
}

type entry struct {
	Token    string          `json:"token"`
	Snapshot json.RawMessage `json:"snapshot"`
}

func encode(s Snapshot) (string, []byte, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return "", nil, fmt.Errorf("encode snapshot: %w", err)
	}
	token := uuid.New().String()
	data, err := json.Marshal(entry{Token: token, Snapshot: raw})
	if err != nil {
		return "", nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return token, data, nil
}

func decode(key, token string, data []byte) (Snapshot, error) {
	var e entry
	var s Snapshot
	if err := json.Unmarshal(data, &e); err != nil {
		logger.Debug("Discarding unreadable view snapshot", slog.String("key", key), slog.String("error", err.Error()))
		return Snapshot{}, ErrNoSnapshot
	}
	if e.Token != token {
		return Snapshot{}, ErrNoSnapshot
	}
	if err := json.Unmarshal(e.Snapshot, &s); err != nil {
		logger.Debug("Discarding unreadable view snapshot", slog.String("key", key), slog.String("error", err.Error()))
		return Snapshot{}, ErrNoSnapshot
	}
	return s, nil
}

// MemoryStore keeps snapshots for the lifetime of the process.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]byte)}
}

// Save stores s under key, replacing any previous snapshot.
func (m *MemoryStore) Save(key string, s Snapshot) (string, error) {
	token, data, err := encode(s)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = data
	return token, nil
}

// Consume returns and removes the snapshot under key.
func (m *MemoryStore) Consume(key, token string) (Snapshot, error) {
	m.mu.Lock()
	data, ok := m.entries[key]
	delete(m.entries, key)
	m.mu.Unlock()

	if !ok {
		return Snapshot{}, ErrNoSnapshot
	}
	return decode(key, token, data)
}

// FileStore keeps one snapshot file per key in a directory, so a snapshot
// survives a client restart between leaving and returning.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, "view-"+filepath.Base(key)+".json")
}

// Save writes s under key, replacing any previous snapshot.
func (f *FileStore) Save(key string, s Snapshot) (string, error) {
	token, data, err := encode(s)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(f.dir, 0o700); err != nil {
		return "", fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(f.path(key), data, 0o600); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return token, nil
}

// Consume reads and deletes the snapshot file under key. Unreadable files are
// discarded and reported as ErrNoSnapshot.
func (f *FileStore) Consume(key, token string) (Snapshot, error) {
	path := f.path(key)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, ErrNoSnapshot
		}
		return Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return Snapshot{}, fmt.Errorf("remove snapshot: %w", err)
	}
	return decode(key, token, data)
}
