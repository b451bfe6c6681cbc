// sfx-export renders the synthesized sound effects to WAV files
// Exported files can be edited and loaded back through the [audio] overrides in the config file
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-pong/audio"
)

func main() {
	out := flag.String("out", "sfx", "output directory")
	volume := flag.Float64("volume", 1.0, "master volume 0.0 to 1.0")
	flag.Parse()

	if err := export(*out, *volume); err != nil {
		fmt.Fprintf(os.Stderr, "sfx-export: %v\n", err)
		os.Exit(1)
	}
}

func export(dir string, volume float64) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	cfg := audio.DefaultAudioConfig()
	cfg.MasterVolume = min(max(volume, 0), 1)
	rate := beep.SampleRate(cfg.SampleRate)

	for _, st := range audio.SoundTypes {
		sample := audio.Render(audio.GetSoundEffect(st, cfg), rate)
		path := filepath.Join(dir, st.String()+".wav")

		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := audio.EncodeWAV(f, sample); err != nil {
			f.Close()
			return fmt.Errorf("%s: %w", st, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Printf("%-8s %6d frames  %s\n", st, len(sample.Frames), path)
	}
	return nil
}
