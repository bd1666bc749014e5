package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ksolberg/habitkit/internal/constants"
	"github.com/ksolberg/habitkit/internal/models"
)

// document is the persisted JSON shape: a version marker alongside the
// state collections.
type document struct {
	Version int `json:"version"`
	models.State
}

// JSONStore keeps the whole state in a single JSON file.
type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &document{
		Version: constants.StorageVersion,
		State:   models.DefaultState(),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'habitkit init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &document{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure collections are initialized
	if s.doc.Habits == nil {
		s.doc.Habits = []models.Habit{}
	}
	if s.doc.Groups == nil {
		s.doc.Groups = []models.HabitGroup{}
	}
	if s.doc.Rewards == nil {
		s.doc.Rewards = []models.Reward{}
	}
	if s.doc.UnlockedRewards == nil {
		s.doc.UnlockedRewards = []string{}
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) State() (models.State, error) {
	if s.doc == nil {
		return models.State{}, fmt.Errorf("storage not loaded")
	}
	return s.doc.State, nil
}

func (s *JSONStore) SaveState(state models.State) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.State = state
	return s.save()
}

func (s *JSONStore) Reset() error {
	s.doc = &document{
		Version: constants.StorageVersion,
		State:   models.DefaultState(),
	}
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
