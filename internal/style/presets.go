package style

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

const presetsFileName = "presets.json"

// Preset is a named, reusable style configuration.
type Preset struct {
	Name   string  `json:"name"`
	Styles Options `json:"styles"`
}

// PresetStore persists named presets as a single JSON file, read once
// at startup and rewritten in full on every change.
//
// Loading is intentionally best effort: a missing or corrupt file is
// treated as an empty preset list so a bad disk state never blocks the
// editor.
type PresetStore struct {
	Dir string
}

// DefaultPresetStore scopes the store to the user config directory.
func DefaultPresetStore() (*PresetStore, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return &PresetStore{Dir: filepath.Join(base, "capline")}, nil
}

func (s *PresetStore) path() string {
	return filepath.Join(s.Dir, presetsFileName)
}

// Load reads all presets, sorted by name.
func (s *PresetStore) Load() ([]Preset, error) {
	b, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var presets []Preset
	if err := json.Unmarshal(b, &presets); err != nil {
		// treat corrupted state as missing
		return nil, nil
	}

	sort.Slice(presets, func(i, j int) bool {
		return presets[i].Name < presets[j].Name
	})
	return presets, nil
}

// Save upserts a preset by name and rewrites the store.
func (s *PresetStore) Save(name string, styles Options) error {
	presets, err := s.Load()
	if err != nil {
		return err
	}

	replaced := false
	for i := range presets {
		if presets[i].Name == name {
			presets[i].Styles = styles
			replaced = true
			break
		}
	}
	if !replaced {
		presets = append(presets, Preset{Name: name, Styles: styles})
	}

	return s.write(presets)
}

// Delete removes a preset by name. Deleting a missing name is a no-op.
func (s *PresetStore) Delete(name string) error {
	presets, err := s.Load()
	if err != nil {
		return err
	}

	kept := presets[:0]
	for _, p := range presets {
		if p.Name != name {
			kept = append(kept, p)
		}
	}

	return s.write(kept)
}

func (s *PresetStore) write(presets []Preset) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}

	b, err := json.MarshalIndent(presets, "", "  ")
	if err != nil {
		return err
	}

	path := s.path()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
