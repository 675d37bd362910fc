package speech

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"ghostwriter/internal/audio"
)

// WhisperCLI runs the whisper-cli binary over a temporary WAV file.
type WhisperCLI struct {
	exePath   string
	modelPath string
	tempDir   string

	// newCmd builds the recognizer command; replaced in tests.
	newCmd func(name string, arg ...string) *exec.Cmd
}

// NewWhisperCLI creates a recognizer rooted at the install directory.
func NewWhisperCLI(dir string) *WhisperCLI {
	return &WhisperCLI{
		exePath:   filepath.Join(dir, RecognizerExe),
		modelPath: filepath.Join(dir, ModelFile),
		tempDir:   os.TempDir(),
		newCmd:    exec.Command,
	}
}

// Transcribe writes the samples to a temporary WAV file, invokes the
// recognizer synchronously and returns its trimmed stdout. The WAV file
// is removed whether or not the invocation succeeds. The recognizer is
// given no deadline; it runs to completion or failure.
func (w *WhisperCLI) Transcribe(samples []float32) (string, error) {
	wavPath := filepath.Join(w.tempDir, "ghostwriter-"+uuid.NewString()+".wav")
	if err := audio.WriteWav(wavPath, samples); err != nil {
		return "", fmt.Errorf("write recording: %w", err)
	}
	defer os.Remove(wavPath)

	// -nt suppresses timestamps, -np suppresses progress noise.
	cmd := w.newCmd(w.exePath,
		"-m", w.modelPath,
		"-f", wavPath,
		"-nt",
		"-np",
	)
	hideWindow(cmd)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("recognizer: %w", err)
	}

	return strings.TrimSpace(stdout.String()), nil
}
