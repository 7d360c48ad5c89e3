package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/99designs/keyring"
)

const serviceName = "adminui"

// KeyringStore implements KV on top of the operating system keyring.
// Each slot is one keyring item.
type KeyringStore struct {
	ring keyring.Keyring
}

var _ KV = (*KeyringStore)(nil)

// OpenKeyring returns a keyring using the platform backend when one is
// available and an encrypted file backend under fileDir otherwise.
func OpenKeyring(fileDir string) (keyring.Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  fileDir,
		FilePasswordFunc:         keyring.FixedStringPrompt("adminui-file-key"),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}
	return ring, nil
}

// NewKeyringStore wraps an opened keyring.
func NewKeyringStore(ring keyring.Keyring) *KeyringStore {
	return &KeyringStore{ring: ring}
}

// Read returns the data of the keyring item named key.
func (s *KeyringStore) Read(_ context.Context, key string) (string, bool, error) {
	item, err := s.ring.Get(key)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading keyring item %q: %w", key, err)
	}
	return string(item.Data), true, nil
}

// Write stores value as the keyring item named key.
func (s *KeyringStore) Write(_ context.Context, key, value string) error {
	err := s.ring.Set(keyring.Item{
		Key:   key,
		Data:  []byte(value),
		Label: serviceName + " " + key,
	})
	if err != nil {
		return fmt.Errorf("writing keyring item %q: %w", key, err)
	}
	return nil
}

// Close is a no-op; keyring backends hold no open handles.
func (s *KeyringStore) Close() error {
	return nil
}
