package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	ErrDuplicateUser = errors.New("username already exists")
	ErrUserNotFound  = errors.New("user not found")
)

type Credential struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	Role         string `json:"role"`
}

type credFile struct {
	Users []Credential `json:"users"`
}

// CredStore persists credentials in a single JSON file. The on-disk layout
// (an object with a "users" array) is shared with earlier deployments and
// must not change. All access goes through one mutex and every save writes
// a temp file first, so concurrent registrations cannot corrupt the file.
type CredStore struct {
	mu   sync.Mutex
	path string
}

func NewCredStore(path string) *CredStore {
	return &CredStore{path: path}
}

func (s *CredStore) FindByUsername(username string) (Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.load()
	if err != nil {
		return Credential{}, err
	}
	for _, u := range f.Users {
		if u.Username == username {
			return u, nil
		}
	}
	return Credential{}, ErrUserNotFound
}

func (s *CredStore) InsertIfAbsent(cred Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.load()
	if err != nil {
		return err
	}
	for _, u := range f.Users {
		if u.Username == cred.Username {
			return ErrDuplicateUser
		}
	}
	f.Users = append(f.Users, cred)
	return s.save(f)
}

func (s *CredStore) load() (credFile, error) {
	var f credFile
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return f, fmt.Errorf("read users file: %w", err)
	}
	if err := json.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("decode users file: %w", err)
	}
	return f, nil
}

func (s *CredStore) save(f credFile) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encode users file: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".users-*")
	if err != nil {
		return fmt.Errorf("create temp users file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write users file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close users file: %w", err)
	}
	return os.Rename(tmp.Name(), s.path)
}
