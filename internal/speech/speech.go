// Package speech invokes the external speech-to-text recognizer.
//
// The recognizer is an opaque prebuilt binary that ships next to the
// application together with its model file; it is executed once per
// recording session and its stdout is the transcription.
package speech

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// RecognizerExe is the recognizer binary expected next to the app.
	RecognizerExe = "whisper-cli.exe"
	// ModelFile is the recognizer model expected next to the app.
	ModelFile = "ggml-tiny.bin"
)

// Recognizer turns recorded samples into text.
type Recognizer interface {
	// Transcribe recognizes speech from 16kHz mono float32 samples.
	Transcribe(samples []float32) (string, error)
}

// MissingFilesError reports required files absent from the install dir.
type MissingFilesError struct {
	Names []string
}

func (e *MissingFilesError) Error() string {
	return "Missing: " + strings.Join(e.Names, ", ")
}

// CheckFiles verifies the recognizer binary and model exist in dir.
// Checked once at startup; a failure blocks recording for the whole run.
func CheckFiles(dir string) error {
	var missing []string
	for _, name := range []string{RecognizerExe, ModelFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingFilesError{Names: missing}
	}
	return nil
}

// InstallDir returns the directory holding the executable, where the
// recognizer, model and settings all live.
func InstallDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return "", fmt.Errorf("resolve executable path: %w", err)
	}
	return filepath.Dir(execPath), nil
}
