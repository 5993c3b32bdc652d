package style

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPresetSaveLoadRoundTrip(t *testing.T) {
	s := &PresetStore{Dir: t.TempDir()}

	opts := Default()
	opts.FontSize = 8
	opts.Effect = EffectOutline

	if err := s.Save("big", opts); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Save("plain", Default()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	presets, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(presets))
	}
	if presets[0].Name != "big" || presets[1].Name != "plain" {
		t.Errorf("presets not sorted by name: %v, %v", presets[0].Name, presets[1].Name)
	}
	if presets[0].Styles.FontSize != 8 || presets[0].Styles.Effect != EffectOutline {
		t.Errorf("loaded preset lost fields: %+v", presets[0].Styles)
	}
}

func TestPresetSaveUpserts(t *testing.T) {
	s := &PresetStore{Dir: t.TempDir()}

	if err := s.Save("a", Default()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	opts := Default()
	opts.FontWeight = 400
	if err := s.Save("a", opts); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	presets, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(presets) != 1 {
		t.Fatalf("upsert duplicated the preset: %d entries", len(presets))
	}
	if presets[0].Styles.FontWeight != 400 {
		t.Errorf("upsert did not replace styles: %+v", presets[0].Styles)
	}
}

func TestPresetDelete(t *testing.T) {
	s := &PresetStore{Dir: t.TempDir()}

	if err := s.Save("a", Default()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Delete("a"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := s.Delete("never existed"); err != nil {
		t.Fatalf("deleting a missing preset should be a no-op, got %v", err)
	}

	presets, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(presets) != 0 {
		t.Errorf("expected empty store, got %d presets", len(presets))
	}
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	s := &PresetStore{Dir: t.TempDir()}

	presets, err := s.Load()
	if err != nil {
		t.Fatalf("Load of missing file should not error: %v", err)
	}
	if presets != nil {
		t.Errorf("expected nil presets, got %v", presets)
	}
}

func TestLoadCorruptFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	s := &PresetStore{Dir: dir}
	if err := os.WriteFile(filepath.Join(dir, "presets.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	presets, err := s.Load()
	if err != nil {
		t.Fatalf("corrupt store must load as empty, got error: %v", err)
	}
	if len(presets) != 0 {
		t.Errorf("corrupt store must load as empty, got %v", presets)
	}

	// and a save over the corrupt file recovers it
	if err := s.Save("fresh", Default()); err != nil {
		t.Fatalf("Save over corrupt file failed: %v", err)
	}
	presets, err = s.Load()
	if err != nil || len(presets) != 1 {
		t.Fatalf("store did not recover: %v, %v", presets, err)
	}
}

func TestNoStaleTempFileAfterWrite(t *testing.T) {
	dir := t.TempDir()
	s := &PresetStore{Dir: dir}

	if err := s.Save("a", Default()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Errorf("stale temp file left behind: %s", e.Name())
		}
	}
}
