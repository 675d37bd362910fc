// Package audio provides microphone capture and WAV encoding.
package audio

import (
	"sync"
	"time"

	"github.com/gordonklaus/portaudio"
)

const (
	// SampleRate is the capture rate required by the recognizer.
	SampleRate = 16000
	// Channels is the number of input channels (mono).
	Channels = 1
	// FramesPerBuffer is the portaudio buffer size.
	FramesPerBuffer = 1024
)

// Recorder captures microphone audio into an in-memory session buffer.
// While armed, the read loop appends chunk copies in arrival order; Stop
// concatenates them exactly once and hands the samples to the caller.
type Recorder struct {
	mu      sync.Mutex
	stream  *portaudio.Stream
	buffer  []float32
	chunks  [][]float32
	running bool
	done    chan struct{}
}

// New initializes portaudio and creates a Recorder.
func New() (*Recorder, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}

	return &Recorder{
		buffer: make([]float32, FramesPerBuffer),
	}, nil
}

// Start clears the session buffer and begins capture.
func (r *Recorder) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return nil
	}

	r.chunks = nil
	r.done = make(chan struct{})

	stream, err := portaudio.OpenDefaultStream(
		Channels,
		0, // no output
		SampleRate,
		FramesPerBuffer,
		r.buffer,
	)
	if err != nil {
		return err
	}

	r.stream = stream
	r.running = true

	if err := stream.Start(); err != nil {
		r.stream.Close()
		r.stream = nil
		r.running = false
		return err
	}

	go r.captureLoop()

	return nil
}

func (r *Recorder) captureLoop() {
	defer close(r.done)

	for {
		r.mu.Lock()
		running := r.running
		stream := r.stream
		r.mu.Unlock()

		if !running || stream == nil {
			return
		}

		available, err := stream.AvailableToRead()
		if err != nil || available == 0 {
			time.Sleep(10 * time.Millisecond)
			continue
		}

		if err := stream.Read(); err != nil {
			time.Sleep(10 * time.Millisecond)
			continue
		}

		r.mu.Lock()
		if r.running {
			chunk := make([]float32, len(r.buffer))
			copy(chunk, r.buffer)
			r.chunks = append(r.chunks, chunk)
		}
		r.mu.Unlock()
	}
}

// Stop ends capture and returns the session's samples concatenated in
// arrival order. The buffer is discarded; a second Stop returns nil.
func (r *Recorder) Stop() []float32 {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return nil
	}

	r.running = false
	stream := r.stream
	r.stream = nil
	chunks := r.chunks
	r.chunks = nil
	done := r.done
	r.mu.Unlock()

	// Wait for the capture loop to notice the flag; it checks every 10ms.
	if done != nil {
		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
		}
	}

	if stream != nil {
		stream.Stop()
		stream.Close()
	}

	return concat(chunks)
}

func concat(chunks [][]float32) []float32 {
	total := 0
	for _, c := range chunks {
		total += len(c)
	}
	if total == 0 {
		return nil
	}
	samples := make([]float32, 0, total)
	for _, c := range chunks {
		samples = append(samples, c...)
	}
	return samples
}

// IsRecording returns true while capture is armed.
func (r *Recorder) IsRecording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// Close stops any capture and releases portaudio.
func (r *Recorder) Close() {
	r.Stop()
	portaudio.Terminate()
}

// Duration returns the play time of a sample slice at the capture rate.
func Duration(samples []float32) time.Duration {
	return time.Duration(float64(len(samples)) / SampleRate * float64(time.Second))
}
