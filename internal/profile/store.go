// Package profile persists named connection profiles on the local machine and
// implements the profile editor.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"resource-converter/internal/domain"
	"resource-converter/internal/logger"
)

// FileName is the profile list file inside the config directory.
const FileName = "dbConfigs.json"

const fileVersion = 1

var (
	// ErrNameRequired is returned when saving a profile without a name.
	ErrNameRequired = errors.New("profile name is required")
	// ErrNotFound is returned for an unknown profile name.
	ErrNotFound = errors.New("profile not found")
)

type profileFile struct {
	Version  int                        `json:"version"`
	Active   string                     `json:"active,omitempty"`
	Profiles []domain.ConnectionProfile `json:"profiles"`
}

// Store is the durable profile list, keyed by name. When secrets is set,
// passwords are kept there and the file holds none.
type Store struct {
	mu      sync.Mutex
	path    string
	secrets Secrets
}

// NewStore creates a store under dir. secrets may be nil.
func NewStore(dir string, secrets Secrets) *Store {
	return &Store{
		path:    filepath.Join(dir, FileName),
		secrets: secrets,
	}
}

// Path returns the profile file location.
func (s *Store) Path() string {
	return s.path
}

// List returns every profile in save order, passwords included.
func (s *Store) List() ([]domain.ConnectionProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.load()
	if err != nil {
		return nil, err
	}

	out := make([]domain.ConnectionProfile, 0, len(f.Profiles))
	for _, p := range f.Profiles {
		p, err := s.withPassword(p)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Get returns one profile.
func (s *Store) Get(name string) (domain.ConnectionProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.load()
	if err != nil {
		return domain.ConnectionProfile{}, err
	}
	i := indexOf(f.Profiles, name)
	if i < 0 {
		return domain.ConnectionProfile{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return s.withPassword(f.Profiles[i])
}

// Save inserts p or replaces the profile with the same name.
func (s *Store) Save(p domain.ConnectionProfile) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return ErrNameRequired
	}
	for slot := range p.LanguageMap {
		if !domain.IsValidSlot(slot) {
			return fmt.Errorf("%w: %s", domain.ErrUnknownSlot, slot)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.load()
	if err != nil {
		return err
	}

	if s.secrets != nil {
		if err := s.secrets.Set(p.Name, p.Password); err != nil {
			return fmt.Errorf("store password for %s: %w", p.Name, err)
		}
		p.Password = ""
	}

	if i := indexOf(f.Profiles, p.Name); i >= 0 {
		f.Profiles[i] = p
	} else {
		f.Profiles = append(f.Profiles, p)
	}
	return s.write(f)
}

// Delete removes a profile. If it was active, no profile is active afterwards.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.load()
	if err != nil {
		return err
	}
	i := indexOf(f.Profiles, name)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	f.Profiles = append(f.Profiles[:i], f.Profiles[i+1:]...)
	if f.Active == name {
		f.Active = ""
	}
	if err := s.write(f); err != nil {
		return err
	}

	if s.secrets != nil {
		if err := s.secrets.Delete(name); err != nil {
			logger.Warn("Failed to remove stored password",
				slog.String("profile", name),
				slog.String("error", err.Error()),
			)
		}
	}
	return nil
}

// Active returns the active profile name, or "" when none is active.
func (s *Store) Active() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.load()
	if err != nil {
		return "", err
	}
	return f.Active, nil
}

// SetActive marks a profile active. An empty name clears it.
func (s *Store) SetActive(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.load()
	if err != nil {
		return err
	}
	if name != "" && indexOf(f.Profiles, name) < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	f.Active = name
	return s.write(f)
}

func (s *Store) load() (*profileFile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &profileFile{Version: fileVersion}, nil
		}
		return nil, fmt.Errorf("read profiles: %w", err)
	}

	var f profileFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return &f, nil
}

func (s *Store) write(f *profileFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	f.Version = fileVersion
	if f.Profiles == nil {
		f.Profiles = []domain.ConnectionProfile{}
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profiles: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write profiles: %w", err)
	}
	return nil
}

func (s *Store) withPassword(p domain.ConnectionProfile) (domain.ConnectionProfile, error) {
	if s.secrets == nil || p.Password != "" {
		return p, nil
	}
	password, err := s.secrets.Get(p.Name)
	if err != nil {
		return p, fmt.Errorf("read password for %s: %w", p.Name, err)
	}
	p.Password = password
	return p, nil
}

func indexOf(profiles []domain.ConnectionProfile, name string) int {
	for i, p := range profiles {
		if p.Name == name {
			return i
		}
	}
	return -1
}
