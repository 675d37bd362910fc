package speech

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// fakeRecognizer routes recognizer invocations back into this test
// binary (TestHelperProcess) so no real whisper-cli is needed.
func fakeRecognizer(t *testing.T, mode string) (*WhisperCLI, string) {
	t.Helper()
	tempDir := t.TempDir()
	w := NewWhisperCLI("install-dir")
	w.tempDir = tempDir
	w.newCmd = func(name string, arg ...string) *exec.Cmd {
		args := append([]string{"-test.run=TestHelperProcess", "--", name}, arg...)
		cmd := exec.Command(os.Args[0], args...)
		cmd.Env = append(os.Environ(), "GO_HELPER_PROCESS=1", "GO_HELPER_MODE="+mode)
		return cmd
	}
	return w, tempDir
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_HELPER_PROCESS") != "1" {
		return
	}
	defer os.Exit(0)

	switch os.Getenv("GO_HELPER_MODE") {
	case "ok":
		os.Stdout.WriteString("  hello from whisper \n")
	case "empty":
		os.Stdout.WriteString("   \n")
	case "args":
		args := os.Args
		for i, a := range args {
			if a == "--" {
				args = args[i+1:]
				break
			}
		}
		os.Stdout.WriteString(strings.Join(args, "|"))
	case "fail":
		os.Exit(1)
	}
}

func wavLeftovers(t *testing.T, dir string) []string {
	t.Helper()
	leftovers, err := filepath.Glob(filepath.Join(dir, "ghostwriter-*.wav"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	return leftovers
}

func TestTranscribeTrimsOutput(t *testing.T) {
	w, _ := fakeRecognizer(t, "ok")

	text, err := w.Transcribe(make([]float32, 16000))
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if text != "hello from whisper" {
		t.Fatalf("text = %q, want trimmed output", text)
	}
}

func TestTranscribeEmptyOutput(t *testing.T) {
	w, _ := fakeRecognizer(t, "empty")

	text, err := w.Transcribe(make([]float32, 16000))
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if text != "" {
		t.Fatalf("text = %q, want empty", text)
	}
}

func TestTranscribeNonZeroExit(t *testing.T) {
	w, tempDir := fakeRecognizer(t, "fail")

	if _, err := w.Transcribe(make([]float32, 16000)); err == nil {
		t.Fatalf("expected error on non-zero exit")
	}
	if left := wavLeftovers(t, tempDir); len(left) != 0 {
		t.Fatalf("temp wav not cleaned up after failure: %v", left)
	}
}

func TestTranscribeCleansUpTempFile(t *testing.T) {
	w, tempDir := fakeRecognizer(t, "ok")

	if _, err := w.Transcribe(make([]float32, 16000)); err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if left := wavLeftovers(t, tempDir); len(left) != 0 {
		t.Fatalf("temp wav not cleaned up after success: %v", left)
	}
}

func TestTranscribeArgumentOrder(t *testing.T) {
	w, _ := fakeRecognizer(t, "args")

	out, err := w.Transcribe(make([]float32, 16000))
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}

	parts := strings.Split(out, "|")
	// exe, -m, model, -f, wav, -nt, -np
	if len(parts) != 7 {
		t.Fatalf("recognizer got %d args: %q", len(parts), out)
	}
	if parts[0] != filepath.Join("install-dir", RecognizerExe) {
		t.Fatalf("exe = %q", parts[0])
	}
	if parts[1] != "-m" || parts[2] != filepath.Join("install-dir", ModelFile) {
		t.Fatalf("model args = %q %q", parts[1], parts[2])
	}
	if parts[3] != "-f" || !strings.HasSuffix(parts[4], ".wav") {
		t.Fatalf("file args = %q %q", parts[3], parts[4])
	}
	if parts[5] != "-nt" || parts[6] != "-np" {
		t.Fatalf("flag args = %q %q, want -nt -np", parts[5], parts[6])
	}
}

func TestCheckFiles(t *testing.T) {
	dir := t.TempDir()

	err := CheckFiles(dir)
	var missing *MissingFilesError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFilesError, got %v", err)
	}
	if len(missing.Names) != 2 {
		t.Fatalf("missing = %v, want both files", missing.Names)
	}
	if got := missing.Error(); got != "Missing: "+RecognizerExe+", "+ModelFile {
		t.Fatalf("message = %q", got)
	}

	// Adding only the binary still reports the model.
	if err := os.WriteFile(filepath.Join(dir, RecognizerExe), []byte("x"), 0755); err != nil {
		t.Fatalf("write fake exe: %v", err)
	}
	err = CheckFiles(dir)
	if !errors.As(err, &missing) || len(missing.Names) != 1 || missing.Names[0] != ModelFile {
		t.Fatalf("after adding exe, err = %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, ModelFile), []byte("x"), 0644); err != nil {
		t.Fatalf("write fake model: %v", err)
	}
	if err := CheckFiles(dir); err != nil {
		t.Fatalf("both files present, err = %v", err)
	}
}
