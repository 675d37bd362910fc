// GhostWriter is a tray-resident dictation utility.
//
// Press the configured hotkey to start listening, press it again to
// stop; the recognized text is pasted into the focused application.
package main

import (
	"log"
	"os"

	"ghostwriter/internal/app"
	"ghostwriter/internal/hotkey"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Printf("GhostWriter %s starting...", Version)

	// GUI and hotkey handling must own the main thread
	hotkey.RunOnMainThread(run)
}

func run() {
	application, err := app.New()
	if err != nil {
		log.Printf("Initialization failed: %v", err)
		os.Exit(1)
	}
	application.Run()
}
