package main

import (
	"path/filepath"
	"testing"

	"github.com/lixenwraith/vi-pong/audio"
)

func TestExportWritesEverySound(t *testing.T) {
	dir := t.TempDir()
	if err := export(dir, 0.5); err != nil {
		t.Fatalf("export: %v", err)
	}

	for _, st := range audio.SoundTypes {
		s, err := audio.LoadSample(filepath.Join(dir, st.String()+".wav"))
		if err != nil {
			t.Errorf("%s: %v", st, err)
			continue
		}
		if len(s.Frames) == 0 {
			t.Errorf("%s: empty sample", st)
		}
	}
}
