package profile

import (
	"errors"

	"github.com/zalando/go-keyring"
)

const keyringService = "resconv"

// Secrets stores profile passwords outside the profile file.
type Secrets interface {
	Get(name string) (string, error)
	Set(name, password string) error
	Delete(name string) error
}

// KeyringSecrets keeps passwords in the OS keyring.
type KeyringSecrets struct{}

// NewKeyringSecrets creates a keyring-backed Secrets.
func NewKeyringSecrets() *KeyringSecrets {
	return &KeyringSecrets{}
}

// Get returns the stored password, or "" when none is stored.
func (k *KeyringSecrets) Get(name string) (string, error) {
	password, err := keyring.Get(keyringService, name)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	return password, err
}

// Set stores a password. An empty password removes the entry.
func (k *KeyringSecrets) Set(name, password string) error {
	if password == "" {
		return k.Delete(name)
	}
	return keyring.Set(keyringService, name, password)
}

// Delete removes a password. A missing entry is not an error.
func (k *KeyringSecrets) Delete(name string) error {
	err := keyring.Delete(keyringService, name)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
