// Package app wires the recorder, recognizer and UI together.
package app

import (
	"log"
	"sync"
	"time"

	"ghostwriter/internal/audio"
	"ghostwriter/internal/autostart"
	"ghostwriter/internal/clipboard"
	"ghostwriter/internal/config"
	"ghostwriter/internal/dialog"
	"ghostwriter/internal/hotkey"
	"ghostwriter/internal/indicator"
	"ghostwriter/internal/mainwin"
	"ghostwriter/internal/sound"
	"ghostwriter/internal/speech"
	"ghostwriter/internal/splash"
	"ghostwriter/internal/tray"
	"ghostwriter/internal/updates"
)

const (
	// MinRecordingDuration is the shortest recording worth transcribing.
	MinRecordingDuration = 500 * time.Millisecond

	// pollInterval is how often queued UI updates are applied.
	pollInterval = 50 * time.Millisecond
)

// recordingSource captures microphone audio.
type recordingSource interface {
	Start() error
	Stop() []float32
	IsRecording() bool
	Close()
}

// textInjector delivers transcribed text into the focused application.
type textInjector interface {
	Inject(text string, pasteDelay time.Duration) error
}

// App represents the main application.
type App struct {
	mu         sync.Mutex
	config     *config.Config
	recorder   recordingSource
	recognizer speech.Recognizer
	injector   textInjector
	sound      *sound.Player
	queue      *updates.Queue

	tray      *tray.Tray
	hotkey    *hotkey.Handler
	indicator *indicator.Window
	mainWin   *mainwin.Window
	splashWin *splash.Window

	filesErr   error
	processing bool // guards against re-triggering mid-transcription
	pollStop   chan struct{}
}

// New creates the application and all of its windows.
func New() (*App, error) {
	cfg := config.New()

	recorder, err := audio.New()
	if err != nil {
		return nil, err
	}

	a := &App{
		config:   cfg,
		recorder: recorder,
		injector: clipboard.New(),
		sound:    sound.New(cfg.SoundEnabled()),
		queue:    &updates.Queue{},
		pollStop: make(chan struct{}),
	}

	dir, err := speech.InstallDir()
	if err == nil {
		err = speech.CheckFiles(dir)
	}
	if err != nil {
		log.Printf("recognizer unavailable: %v", err)
		a.filesErr = err
	}
	a.recognizer = speech.NewWhisperCLI(dir)

	a.indicator = indicator.New()
	a.splashWin = splash.New()

	a.mainWin = mainwin.New(cfg)
	a.mainWin.OnHotkeyChange(func(h config.Hotkey) {
		if err := a.hotkey.Register(h); err != nil {
			log.Printf("Hotkey registration failed: %v", err)
			a.queue.PushStatus(updates.StateError, "Hotkey unavailable")
		}
	})
	a.mainWin.OnStartupChange(func(enabled bool) {
		if err := autostart.Set(enabled); err != nil {
			log.Printf("Autostart update failed: %v", err)
		}
	})
	a.mainWin.OnQuit(a.quit)

	a.hotkey = hotkey.New(a.Toggle)

	a.tray = tray.New(tray.Callbacks{
		OnShowWindow:      a.mainWin.Show,
		OnToggleRecording: a.Toggle,
		OnQuit:            a.quit,
	})

	return a, nil
}

// Run shows the splash, starts the tray loop and blocks until quit.
func (a *App) Run() {
	a.splashWin.Show()

	a.tray.Run(func() {
		if err := a.hotkey.Register(a.config.Hotkey()); err != nil {
			log.Printf("Hotkey registration failed: %v", err)
			a.queue.PushStatus(updates.StateError, "Hotkey unavailable")
		}

		go a.pollLoop()

		a.splashWin.Hide()

		if a.filesErr != nil {
			a.queue.PushStatus(updates.StateError, a.filesErr.Error())
			dialog.ShowError("GhostWriter", a.filesErr.Error())
		}

		if !a.config.StartMinimized() {
			a.mainWin.Show()
		}
	})
}

// pollLoop drains the update queue and applies each entry to the UI in
// the order it was pushed.
func (a *App) pollLoop() {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-a.pollStop:
			return
		case <-ticker.C:
			for _, u := range a.queue.Drain() {
				a.apply(u)
			}
		}
	}
}

func (a *App) apply(u updates.Update) {
	switch u.Kind {
	case updates.KindStatus:
		a.mainWin.SetStatus(u.State, u.Message)
		a.tray.SetState(u.State)
		switch u.State {
		case updates.StateRecording:
			a.indicator.Show(indicator.LookRecording)
		case updates.StateTranscribing:
			a.indicator.Show(indicator.LookTranscribing)
		default:
			a.indicator.Hide()
		}
	case updates.KindTranscription:
		a.mainWin.SetTranscription(u.Text)
	}
}

// Toggle starts a recording, or stops and transcribes the current one.
func (a *App) Toggle() {
	a.mu.Lock()

	if a.recorder.IsRecording() {
		a.mu.Unlock()
		a.stopRecording()
		return
	}

	if a.processing {
		a.mu.Unlock()
		return
	}

	// Startup already surfaced the missing-files error; nothing to record.
	if a.filesErr != nil {
		a.mu.Unlock()
		return
	}

	if err := a.recorder.Start(); err != nil {
		a.mu.Unlock()
		log.Printf("Recording failed to start: %v", err)
		a.queue.PushStatus(updates.StateError, "Microphone unavailable")
		return
	}
	a.mu.Unlock()

	a.playStart()
	a.queue.PushStatus(updates.StateRecording, "")
}

func (a *App) stopRecording() {
	a.mu.Lock()
	if !a.recorder.IsRecording() || a.processing {
		a.mu.Unlock()
		return
	}
	a.processing = true
	a.mu.Unlock()

	samples := a.recorder.Stop()
	a.playStop()

	// Accidental taps capture nothing worth sending to the recognizer.
	// The gate is on the buffer's play time, not on wall-clock time: a
	// slow device can deliver less audio than the key was held for.
	if audio.Duration(samples) < MinRecordingDuration {
		a.queue.PushStatus(updates.StateReady, "")
		a.mu.Lock()
		a.processing = false
		a.mu.Unlock()
		return
	}

	a.queue.PushStatus(updates.StateTranscribing, "")

	go a.transcribe(samples)
}

func (a *App) transcribe(samples []float32) {
	defer func() {
		a.mu.Lock()
		a.processing = false
		a.mu.Unlock()
	}()

	text, err := a.recognizer.Transcribe(samples)
	if err != nil {
		log.Printf("Recognition failed: %v", err)
		a.queue.PushStatus(updates.StateError, "Transcription failed")
		return
	}

	if text == "" {
		a.queue.PushStatus(updates.StateReady, "")
		return
	}

	a.queue.PushTranscription(text)

	if err := a.injector.Inject(text, a.pasteDelay()); err != nil {
		log.Printf("Paste failed: %v", err)
		a.queue.PushStatus(updates.StateError, "Paste failed")
		return
	}

	a.queue.PushStatus(updates.StateReady, "")
}

func (a *App) pasteDelay() time.Duration {
	return time.Duration(a.config.PasteDelay() * float64(time.Second))
}

func (a *App) playStart() {
	a.sound.SetEnabled(a.config.SoundEnabled())
	a.sound.Start()
}

func (a *App) playStop() {
	a.sound.SetEnabled(a.config.SoundEnabled())
	a.sound.Stop()
}

func (a *App) quit() {
	a.Close()
	a.tray.Quit()
}

// Close releases resources and hides every window.
func (a *App) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	select {
	case <-a.pollStop:
	default:
		close(a.pollStop)
	}

	if a.hotkey != nil {
		if err := a.hotkey.Unregister(); err != nil {
			log.Printf("Hotkey unregister failed: %v", err)
		}
	}
	if a.recorder != nil {
		a.recorder.Close()
	}
	if a.indicator != nil {
		a.indicator.Hide()
	}
	if a.mainWin != nil {
		a.mainWin.Hide()
	}
}
