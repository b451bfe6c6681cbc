package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/go-mp3"

	"github.com/lixenwraith/vi-pong/parameter"
)

// Sample is a decoded sound held in memory as stereo frames
type Sample struct {
	Rate   beep.SampleRate
	Frames [][2]float64
}

// Streamer returns a fresh streamer over the sample, resampled to rate when needed
func (s *Sample) Streamer(rate beep.SampleRate) beep.Streamer {
	pos := 0
	var src beep.Streamer = beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= len(s.Frames) {
			return 0, false
		}
		n := copy(samples, s.Frames[pos:])
		pos += n
		return n, true
	})
	if s.Rate != rate {
		src = beep.Resample(parameter.AudioResampleQuality, s.Rate, rate, src)
	}
	return src
}

// Duration returns the playback length
func (s *Sample) Duration() float64 {
	if s.Rate == 0 {
		return 0
	}
	return float64(len(s.Frames)) / float64(s.Rate)
}

// LoadSample decodes a WAV or MP3 file by extension
func LoadSample(path string) (*Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return DecodeWAV(f)
	case ".mp3":
		return DecodeMP3(f)
	}
	return nil, fmt.Errorf("audio: unsupported sound file %q", path)
}

// DecodeWAV reads a PCM WAV stream; mono is duplicated to both channels
func DecodeWAV(r io.ReadSeeker) (*Sample, error) {
	dec := wav.NewDecoder(r)
	if dec == nil || !dec.IsValidFile() {
		return nil, errors.New("wav: not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wav: %w", err)
	}
	chans := int(dec.NumChans)
	if chans == 0 || dec.BitDepth == 0 {
		return nil, errors.New("wav: missing format")
	}

	// Full scale of a signed sample of the source depth
	scale := float64(int(1) << (int(dec.BitDepth) - 1))
	floats := buf.AsFloatBuffer()

	s := &Sample{
		Rate:   beep.SampleRate(dec.SampleRate),
		Frames: make([][2]float64, 0, len(floats.Data)/chans),
	}
	for i := 0; i+chans <= len(floats.Data); i += chans {
		left := floats.Data[i] / scale
		right := left
		if chans > 1 {
			right = floats.Data[i+1] / scale
		}
		s.Frames = append(s.Frames, [2]float64{left, right})
	}
	return s, nil
}

// DecodeMP3 reads an MP3 stream; go-mp3 always yields 16 bit little endian stereo
func DecodeMP3(r io.Reader) (*Sample, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	s := &Sample{Rate: beep.SampleRate(dec.SampleRate())}
	chunk := make([]byte, 4096)
	for {
		n, err := dec.Read(chunk)
		// 4 bytes per frame: two little endian int16 channels
		for i := 0; i+4 <= n; i += 4 {
			left := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			right := int16(uint16(chunk[i+2]) | uint16(chunk[i+3])<<8)
			s.Frames = append(s.Frames, [2]float64{float64(left) / 32768, float64(right) / 32768})
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("mp3: %w", err)
		}
	}
	return s, nil
}

// Render drains a finite streamer into a sample
func Render(s beep.Streamer, rate beep.SampleRate) *Sample {
	out := &Sample{Rate: rate}
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out.Frames = append(out.Frames, buf[:n]...)
		if !ok {
			break
		}
	}
	return out
}

// EncodeWAV writes the sample as 16 bit stereo PCM
func EncodeWAV(w io.WriteSeeker, s *Sample) error {
	enc := wav.NewEncoder(w, int(s.Rate), parameter.AudioBitDepth, parameter.AudioChannels, 1)

	const full = 1<<(parameter.AudioBitDepth-1) - 1
	data := make([]int, 0, 2*len(s.Frames))
	for _, f := range s.Frames {
		for _, v := range f {
			v = max(-1, min(1, v))
			data = append(data, int(v*full))
		}
	}

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: parameter.AudioChannels, SampleRate: int(s.Rate)},
		Data:           data,
		SourceBitDepth: parameter.AudioBitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	return nil
}
