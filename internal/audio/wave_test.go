package audio

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/wav"
)

func TestWriteWavProducesDecodableMono16k(t *testing.T) {
	samples := make([]float32, SampleRate) // one second of a 440Hz tone
	for i := range samples {
		samples[i] = float32(0.5 * math.Sin(2*math.Pi*440*float64(i)/SampleRate))
	}

	path := filepath.Join(t.TempDir(), "tone.wav")
	if err := WriteWav(path, samples); err != nil {
		t.Fatalf("WriteWav: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open wav: %v", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("decode wav: %v", err)
	}
	if !dec.IsValidFile() {
		t.Fatalf("encoder produced an invalid wav file")
	}
	if dec.SampleRate != SampleRate {
		t.Fatalf("sample rate = %d, want %d", dec.SampleRate, SampleRate)
	}
	if dec.NumChans != Channels {
		t.Fatalf("channels = %d, want %d", dec.NumChans, Channels)
	}
	if dec.BitDepth != 16 {
		t.Fatalf("bit depth = %d, want 16", dec.BitDepth)
	}
	if len(buf.Data) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(buf.Data), len(samples))
	}
}

func TestWriteWavClampsOutOfRangeSamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.wav")
	if err := WriteWav(path, []float32{2.0, -2.0, 0}); err != nil {
		t.Fatalf("WriteWav: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open wav: %v", err)
	}
	defer f.Close()

	buf, err := wav.NewDecoder(f).FullPCMBuffer()
	if err != nil {
		t.Fatalf("decode wav: %v", err)
	}
	if buf.Data[0] != 32767 || buf.Data[1] != -32767 {
		t.Fatalf("clamped samples = %d, %d; want 32767, -32767", buf.Data[0], buf.Data[1])
	}
}

func TestDuration(t *testing.T) {
	if d := Duration(make([]float32, SampleRate/2)); d != 500*time.Millisecond {
		t.Fatalf("Duration(half second) = %v", d)
	}
	if d := Duration(nil); d != 0 {
		t.Fatalf("Duration(nil) = %v, want 0", d)
	}
}

func TestConcatPreservesChunkOrder(t *testing.T) {
	got := concat([][]float32{{1, 2}, {3}, {4, 5}})
	want := []float32{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("concat length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("concat[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if concat(nil) != nil {
		t.Fatalf("concat(nil) should be nil")
	}
}
