package audio

import (
	"os"

	gnaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteWav writes float32 samples as a mono 16-bit PCM WAV file at the
// capture rate, the format the recognizer expects.
func WriteWav(path string, samples []float32) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := wav.NewEncoder(f, SampleRate, 16, Channels, 1)

	data := make([]int, len(samples))
	for i, s := range samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		data[i] = int(s * 32767)
	}

	buf := &gnaudio.IntBuffer{
		Format:         &gnaudio.Format{NumChannels: Channels, SampleRate: SampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		enc.Close()
		f.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
