//go:build ignore

// Dumps the runtime tray icons to PNG files for packaging.
// Run: go run scripts/generate_icons.go [dir]
package main

import (
	"log"
	"os"
	"path/filepath"

	"ghostwriter/internal/icon"
	"ghostwriter/internal/updates"
)

func main() {
	dir := "dist/icons"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Could not create %s: %v", dir, err)
	}

	icons := []struct {
		name  string
		state updates.State
	}{
		{"icon_ready.png", updates.StateReady},
		{"icon_recording.png", updates.StateRecording},
		{"icon_transcribing.png", updates.StateTranscribing},
		{"icon_error.png", updates.StateError},
	}

	for _, ic := range icons {
		path := filepath.Join(dir, ic.name)
		if err := os.WriteFile(path, icon.ForState(ic.state), 0644); err != nil {
			log.Fatalf("Could not write %s: %v", path, err)
		}
		log.Printf("Wrote: %s", path)
	}
}
