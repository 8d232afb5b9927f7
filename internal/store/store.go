// Package store persists generated facts as one JSON file per video id.
// Records are written once and never updated or evicted. The check-then-write
// race between concurrent requests for the same unseen id is accepted: both
// may generate, last write wins.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/NotMedic/PopUpVideo/pkg/models"
)

// ErrNotFound signals a cache miss for a video id.
var ErrNotFound = errors.New("facts not found")

// Store is a flat-file facts cache rooted at a single directory
type Store struct {
	dir string
}

// New creates a store, creating the facts directory if absent
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create facts directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the facts directory
func (s *Store) Dir() string {
	return s.dir
}

// Get loads the cached record for a video id, or ErrNotFound on a miss
func (s *Store) Get(videoID string) (*models.VideoMetadata, error) {
	path, err := s.path(videoID)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read facts file: %w", err)
	}

	var meta models.VideoMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to unmarshal facts file: %w", err)
	}

	return &meta, nil
}

// Put writes the record for a video id. The write goes through a temp file
// and a rename so a partial payload is never visible to readers.
func (s *Store) Put(meta *models.VideoMetadata) error {
	path, err := s.path(meta.VideoID)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal facts: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, meta.VideoID+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write facts file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close facts file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to move facts file into place: %w", err)
	}

	return nil
}

// List returns the video ids of every cached record
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read facts directory: %w", err)
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}

	return ids, nil
}

// path maps a video id to its file, rejecting ids that would escape the
// facts directory.
func (s *Store) path(videoID string) (string, error) {
	if videoID == "" || strings.ContainsAny(videoID, `/\`) || strings.Contains(videoID, "..") {
		return "", fmt.Errorf("invalid video id %q", videoID)
	}
	return filepath.Join(s.dir, videoID+".json"), nil
}
