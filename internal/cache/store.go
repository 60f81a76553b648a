// Package cache provides the file-backed JSON store that stands in for the
// original app's browser-local storage: an externally-owned snapshot cache,
// not a system of record. It holds the in-progress calculator session and the
// latest analytics snapshot.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/ecobuddy/ecobuddy/internal/engine"
)

// File names inside the cache directory.
const (
	sessionFile  = "session.json"
	snapshotFile = "analytics.json"
)

// Common cache errors.
var (
	// ErrNotFound indicates no cached record exists.
	ErrNotFound = errors.New("cache entry not found")

	// ErrCorrupt indicates a cached record exists but cannot be parsed.
	// Callers treat this the same as "no data": the questionnaire restarts
	// rather than crashing.
	ErrCorrupt = errors.New("cache entry corrupt")
)

// SessionState is the serializable calculator session: the question cursor,
// whether the results view is showing, and the answer records.
type SessionState struct {
	Index          int             `json:"currentQuestionIndex"`
	ShowingResults bool            `json:"showResults"`
	Answers        []engine.Answer `json:"answers"`
}

// Store is a directory-backed JSON store. Writes go through a temporary file
// and rename for atomicity.
type Store struct {
	dir string
	mu  sync.Mutex
}

// NewStore creates a store rooted at dir, creating the directory if needed.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("cache directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the cache directory path.
func (s *Store) Dir() string {
	return s.dir
}

// SaveSession persists the calculator session.
func (s *Store) SaveSession(state SessionState) error {
	return s.write(sessionFile, state)
}

// LoadSession restores the calculator session. Returns ErrNotFound when no
// session is cached and ErrCorrupt when the cached record cannot be parsed.
func (s *Store) LoadSession() (SessionState, error) {
	var state SessionState
	if err := s.read(sessionFile, &state); err != nil {
		return SessionState{}, err
	}
	return state, nil
}

// SaveSnapshot persists the analytics snapshot.
func (s *Store) SaveSnapshot(snap engine.Snapshot) error {
	return s.write(snapshotFile, snap)
}

// LoadSnapshot restores the analytics snapshot. Returns ErrNotFound when no
// snapshot is cached and ErrCorrupt when the cached record cannot be parsed.
func (s *Store) LoadSnapshot() (engine.Snapshot, error) {
	var snap engine.Snapshot
	if err := s.read(snapshotFile, &snap); err != nil {
		return engine.Snapshot{}, err
	}
	return snap, nil
}

// Clear removes the cached session and snapshot. Missing files are not an
// error (idempotent).
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range []string{sessionFile, snapshotFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", name, err)
		}
	}
	return nil
}

func (s *Store) write(name string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to rename %s: %w", name, err)
	}
	return nil
}

func (s *Store) read(name string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		log.Warn().Err(err).Str("file", path).Msg("discarding unparseable cache entry")
		return fmt.Errorf("%w: %s", ErrCorrupt, name)
	}
	return nil
}
