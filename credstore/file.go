package credstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

const profileFileName = "credentials.json"

// File is a durable Store backed by a single JSON file inside a profile
// directory. It survives process restarts but is local to one machine and
// one profile directory. Writes go through a temp file plus rename so a
// crash mid-write never leaves a truncated profile.
type File struct {
	path string
	mu   sync.Mutex
}

type fileState struct {
	Token      *string `json:"token,omitempty"`
	Identifier *string `json:"identifier,omitempty"`
}

// NewFile creates (if needed) the profile directory and returns a Store
// persisting into dir/credentials.json.
func NewFile(dir string) (*File, error) {
	if dir == "" {
		return nil, errors.New("credstore: profile directory is empty")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("credstore: create profile dir: %w", err)
	}
	return &File{path: filepath.Join(dir, profileFileName)}, nil
}

// SaveToken implements Store.
func (f *File) SaveToken(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.update(func(s *fileState) {
		s.Token = &token
	})
}

// LoadToken implements Store.
func (f *File) LoadToken(_ context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, err := f.read()
	if err != nil {
		return "", err
	}
	if s.Token == nil {
		return "", ErrTokenNotFound
	}
	return *s.Token, nil
}

// ClearToken implements Store.
func (f *File) ClearToken(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.update(func(s *fileState) {
		s.Token = nil
	})
}

// RememberIdentifier implements Store.
func (f *File) RememberIdentifier(_ context.Context, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.update(func(s *fileState) {
		s.Identifier = &email
	})
}

// LoadIdentifier implements Store.
func (f *File) LoadIdentifier(_ context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, err := f.read()
	if err != nil {
		return "", err
	}
	if s.Identifier == nil {
		return "", ErrIdentifierNotFound
	}
	return *s.Identifier, nil
}

// ForgetIdentifier implements Store.
func (f *File) ForgetIdentifier(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.update(func(s *fileState) {
		s.Identifier = nil
	})
}

// read returns the current profile state. A missing file is an empty
// profile; a corrupt file is also treated as empty rather than poisoning
// every later call.
func (f *File) read() (fileState, error) {
	var s fileState

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("credstore: read profile: %w", err)
	}
	if json.Unmarshal(data, &s) != nil {
		return fileState{}, nil
	}
	return s, nil
}

func (f *File) update(mutate func(*fileState)) error {
	s, err := f.read()
	if err != nil {
		return err
	}
	mutate(&s)

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("credstore: encode profile: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("credstore: write profile: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("credstore: replace profile: %w", err)
	}
	return nil
}
