package clipboard

import (
	"testing"
	"time"
)

type fakeBackend struct {
	clipboard string
	reads     int
	writes    []string
	pastes    int
	slept     time.Duration
}

func fakeInjector(fb *fakeBackend) *Injector {
	return &Injector{
		read: func() (string, error) {
			fb.reads++
			return fb.clipboard, nil
		},
		write: func(s string) error {
			fb.writes = append(fb.writes, s)
			fb.clipboard = s
			return nil
		},
		sendPaste: func() error {
			fb.pastes++
			return nil
		},
		sleep: func(d time.Duration) { fb.slept += d },
	}
}

func TestInjectCopiesThenPastes(t *testing.T) {
	fb := &fakeBackend{clipboard: "previous"}
	in := fakeInjector(fb)

	if err := in.Inject("  hello world ", 150*time.Millisecond); err != nil {
		t.Fatalf("Inject: %v", err)
	}
	if len(fb.writes) != 1 || fb.writes[0] != "hello world" {
		t.Fatalf("writes = %v, want trimmed text", fb.writes)
	}
	if fb.pastes != 1 {
		t.Fatalf("pastes = %d, want 1", fb.pastes)
	}
	if fb.slept != 150*time.Millisecond {
		t.Fatalf("slept %v, want the configured delay", fb.slept)
	}
	// The old contents are read but deliberately not restored.
	if fb.reads != 1 {
		t.Fatalf("reads = %d, want 1", fb.reads)
	}
	if fb.clipboard != "hello world" {
		t.Fatalf("clipboard = %q; previous contents are not restored", fb.clipboard)
	}
}

func TestInjectSkipsEmptyText(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t "} {
		fb := &fakeBackend{}
		in := fakeInjector(fb)

		if err := in.Inject(text, time.Millisecond); err != nil {
			t.Fatalf("Inject(%q): %v", text, err)
		}
		if len(fb.writes) != 0 || fb.pastes != 0 || fb.reads != 0 {
			t.Fatalf("Inject(%q) touched the clipboard: %+v", text, fb)
		}
	}
}
