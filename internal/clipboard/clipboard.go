// Package clipboard injects recognized text into the focused application
// by placing it on the system clipboard and simulating a paste keystroke.
package clipboard

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
)

// Injector performs clipboard-based text injection.
type Injector struct {
	read      func() (string, error)
	write     func(string) error
	sendPaste func() error
	sleep     func(time.Duration)
}

// New creates an Injector backed by the system clipboard and keyboard.
func New() *Injector {
	return &Injector{
		read:      clipboard.ReadAll,
		write:     clipboard.WriteAll,
		sendPaste: sendPaste,
		sleep:     time.Sleep,
	}
}

// Inject trims text, copies it to the clipboard, waits delay for the
// target application's clipboard hook to settle, then sends Ctrl+V.
// Empty or all-whitespace text is a silent no-op. The paste is not
// verified.
//
// Known gap: the previous clipboard contents are read here but never
// written back afterwards.
func (in *Injector) Inject(text string, delay time.Duration) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	text = strings.TrimSpace(text)

	_, _ = in.read() // old contents captured, not restored

	if err := in.write(text); err != nil {
		return err
	}
	in.sleep(delay)

	return in.sendPaste()
}
