package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/99designs/keyring"
)

const prefix = "service-account:"

type Store interface {
	Set(name string, credentials Credentials) error
	Get(name string) (Credentials, error)
	Delete(name string) error
	List() ([]string, error)
}

type KeyringConfig struct {
	Service string
	Backend string
	Dir     string
}

type KeyringStore struct {
	ring keyring.Keyring
}

// OpenKeyring opens the OS keyring. On hosts without a keychain or secret service the
// keyring falls back to encrypted files in Dir, prompting for the password on the terminal.
func OpenKeyring(conf KeyringConfig) (*KeyringStore, error) {
	dir := conf.Dir
	if dir == "" {
		if d, err := os.UserConfigDir(); err != nil {
			return nil, err
		} else {
			dir = filepath.Join(d, conf.Service, "keyring")
		}
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	config := keyring.Config{
		ServiceName:      conf.Service,
		FileDir:          dir,
		FilePasswordFunc: keyring.TerminalPrompt,
	}

	if backend := strings.TrimSpace(conf.Backend); backend != "" {
		config.AllowedBackends = []keyring.BackendType{keyring.BackendType(strings.ToLower(backend))}
	}

	ring, err := keyring.Open(config)
	if err != nil {
		return nil, err
	}

	return NewKeyringStore(ring), nil
}

func NewKeyringStore(ring keyring.Keyring) *KeyringStore {
	return &KeyringStore{
		ring: ring,
	}
}

func (s *KeyringStore) Set(name string, credentials Credentials) error {
	name = normalise(name)
	if name == "" {
		return fmt.Errorf("missing credentials name")
	}

	key, err := credentials.Bytes()
	if err != nil {
		return err
	}

	if _, err := FromJSON(key).Email(); err != nil {
		return err
	}

	return s.ring.Set(keyring.Item{
		Key:         prefix + name,
		Data:        key,
		Label:       fmt.Sprintf("Google service account (%v)", name),
		Description: "Google service account key",
	})
}

func (s *KeyringStore) Get(name string) (Credentials, error) {
	name = normalise(name)
	if name == "" {
		return Credentials{}, fmt.Errorf("missing credentials name")
	}

	item, err := s.ring.Get(prefix + name)
	if err != nil {
		return Credentials{}, err
	}

	return FromJSON(item.Data), nil
}

func (s *KeyringStore) Delete(name string) error {
	name = normalise(name)
	if name == "" {
		return fmt.Errorf("missing credentials name")
	}

	return s.ring.Remove(prefix + name)
}

func (s *KeyringStore) List() ([]string, error) {
	keys, err := s.ring.Keys()
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, k := range keys {
		if name := strings.TrimPrefix(k, prefix); name != k && name != "" {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	return names, nil
}

// Resolve maps a credentials specification to credentials: 'keyring:<name>' is looked up
// in the keyring, anything else is treated as the path to a service account key file.
func Resolve(spec string, open func() (Store, error)) (Credentials, error) {
	spec = strings.TrimSpace(spec)

	if name, ok := strings.CutPrefix(spec, "keyring:"); ok {
		store, err := open()
		if err != nil {
			return Credentials{}, fmt.Errorf("unable to open keyring (%w)", err)
		}

		return store.Get(name)
	}

	if spec == "" {
		return Credentials{}, fmt.Errorf("missing service account credentials")
	}

	return FromFile(spec), nil
}

// Email returns the service account email address from the key.
func (c Credentials) Email() (string, error) {
	b, err := c.Bytes()
	if err != nil {
		return "", err
	}

	key := struct {
		Type  string `json:"type"`
		Email string `json:"client_email"`
	}{}

	if err := json.Unmarshal(b, &key); err != nil {
		return "", fmt.Errorf("invalid service account key (%w)", err)
	} else if key.Type != "service_account" {
		return "", fmt.Errorf("invalid service account key - type is '%v', expected 'service_account'", key.Type)
	}

	return key.Email, nil
}

func normalise(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
