// In file: internal/session/file.go
package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// LocalSessionID is the session the CLI stores its own key under.
const LocalSessionID = "local"

// fileState is the on-disk layout of a FileStore.
type fileState struct {
	Credentials map[string]string `yaml:"credentials"`
}

// FileStore keeps credentials in a YAML file readable only by its owner.
// It is meant for a single local user, not for concurrent processes.
type FileStore struct {
	mu   sync.Mutex
	path string
}

var _ CredentialStore = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultStatePath returns ~/.toolhub/state.yaml.
func DefaultStatePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".toolhub", "state.yaml"), nil
}

// Path returns the state file location.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Get(_ context.Context, id string) (string, error) {
	id, err := validID(id)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return "", err
	}
	return st.Credentials[id], nil
}

func (s *FileStore) Set(ctx context.Context, id, key string) error {
	id, err := validID(id)
	if err != nil {
		return err
	}
	key, ok := normalizeKey(key)
	if !ok {
		return s.Clear(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return err
	}
	st.Credentials[id] = key
	return s.save(st)
}

func (s *FileStore) Clear(_ context.Context, id string) error {
	id, err := validID(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := st.Credentials[id]; !ok {
		return nil
	}
	delete(st.Credentials, id)
	return s.save(st)
}

// load reads the state file. A missing file is an empty state.
func (s *FileStore) load() (*fileState, error) {
	st := &fileState{}
	data, err := os.ReadFile(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read state file %s: %w", s.path, err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, st); err != nil {
			return nil, fmt.Errorf("failed to parse state file %s: %w", s.path, err)
		}
	}
	if st.Credentials == nil {
		st.Credentials = make(map[string]string)
	}
	return st, nil
}

// save writes st through a temp file and a rename so readers never see a
// partial file.
func (s *FileStore) save(st *fileState) error {
	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".state-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set state file permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}
