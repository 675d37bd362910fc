// Package mainwin provides the Gio-based main settings window.
package mainwin

import (
	"sync"
	"time"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"

	"ghostwriter/internal/config"
	"ghostwriter/internal/updates"
)

// Colors are defined in widgets.go

// Window represents the main application window.
type Window struct {
	mu     sync.Mutex
	config *config.Config

	// Window state
	window  *app.Window
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}

	// UI state
	status     updates.State
	statusText string
	lastText   string

	// Widgets - dropdowns
	hotkeyDropBtn widget.Clickable
	hotkeyOpen    bool
	hotkeyBtns    map[config.Hotkey]*widget.Clickable
	delayDropBtn  widget.Clickable
	delayOpen     bool
	delayBtns     []*widget.Clickable

	// Widgets - toggles
	soundToggle   widget.Bool
	trayToggle    widget.Bool
	startupToggle widget.Bool

	// Widgets - buttons
	minimizeBtn widget.Clickable
	quitBtn     widget.Clickable

	// Scroll state
	contentList widget.List

	// Callbacks
	onHotkeyChange  func(config.Hotkey)
	onStartupChange func(enabled bool)
	onQuit          func()
}

// New creates the main window bound to cfg.
func New(cfg *config.Config) *Window {
	w := &Window{
		config:     cfg,
		status:     updates.StateReady,
		statusText: updates.StateReady.String(),
		hotkeyBtns: make(map[config.Hotkey]*widget.Clickable),
	}

	for _, h := range config.AvailableHotkeys() {
		w.hotkeyBtns[h] = new(widget.Clickable)
	}
	w.delayBtns = make([]*widget.Clickable, len(config.PasteDelayOptions()))
	for i := range w.delayBtns {
		w.delayBtns[i] = new(widget.Clickable)
	}

	w.soundToggle.Value = cfg.SoundEnabled()
	w.trayToggle.Value = cfg.StartMinimized()
	w.startupToggle.Value = cfg.RunOnStartup()

	w.contentList.Axis = layout.Vertical

	return w
}

// OnHotkeyChange sets the callback for when the user picks a new hotkey.
func (w *Window) OnHotkeyChange(fn func(config.Hotkey)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onHotkeyChange = fn
}

// OnStartupChange sets the callback for when the user toggles run-on-startup.
func (w *Window) OnStartupChange(fn func(enabled bool)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onStartupChange = fn
}

// OnQuit sets the callback for the Quit button.
func (w *Window) OnQuit(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onQuit = fn
}

// SetStatus updates the status dot and label.
func (w *Window) SetStatus(state updates.State, message string) {
	w.mu.Lock()
	w.status = state
	if message == "" {
		message = state.String()
	}
	w.statusText = message
	window := w.window
	running := w.running
	w.mu.Unlock()

	if running && window != nil {
		window.Invalidate()
	}
}

// SetTranscription updates the last-transcription box.
func (w *Window) SetTranscription(text string) {
	w.mu.Lock()
	w.lastText = text
	window := w.window
	running := w.running
	w.mu.Unlock()

	if running && window != nil {
		window.Invalidate()
	}
}

// Show displays the window (non-blocking).
func (w *Window) Show() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return
	}

	// Re-sync toggles with persisted settings
	w.soundToggle.Value = w.config.SoundEnabled()
	w.trayToggle.Value = w.config.StartMinimized()
	w.startupToggle.Value = w.config.RunOnStartup()
	w.hotkeyOpen = false
	w.delayOpen = false

	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})

	go w.runEventLoop()
}

// Hide closes the window. The application keeps running in the tray.
func (w *Window) Hide() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	stopCh := w.stopCh
	doneCh := w.doneCh
	w.stopCh = nil
	w.mu.Unlock()

	if stopCh != nil {
		close(stopCh)
	}
	if doneCh != nil {
		select {
		case <-doneCh:
		case <-time.After(time.Second):
		}
	}
}

func (w *Window) runEventLoop() {
	defer func() {
		// A user close (title bar X) ends the loop without Hide;
		// reset state so the tray can re-show the window.
		w.mu.Lock()
		w.running = false
		if w.stopCh != nil {
			close(w.stopCh)
			w.stopCh = nil
		}
		w.mu.Unlock()
		close(w.doneCh)
	}()

	w.window = new(app.Window)
	w.window.Option(
		app.Title("GhostWriter"),
		app.Size(unit.Dp(420), unit.Dp(560)),
		app.MinSize(unit.Dp(380), unit.Dp(480)),
	)

	var ops op.Ops

	// Invalidation goroutine
	stopCh := w.stopCh
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				if w.window != nil {
					w.window.Perform(system.ActionClose)
				}
				return
			case <-ticker.C:
				if w.window != nil {
					w.window.Invalidate()
				}
			}
		}
	}()

	for {
		switch e := w.window.Event().(type) {
		case app.DestroyEvent:
			return
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			w.handleEvents(gtx)
			w.draw(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (w *Window) handleEvents(gtx layout.Context) {
	// Dropdown headers
	if w.hotkeyDropBtn.Clicked(gtx) {
		w.mu.Lock()
		w.hotkeyOpen = !w.hotkeyOpen
		w.delayOpen = false
		w.mu.Unlock()
	}
	if w.delayDropBtn.Clicked(gtx) {
		w.mu.Lock()
		w.delayOpen = !w.delayOpen
		w.hotkeyOpen = false
		w.mu.Unlock()
	}

	// Hotkey options take effect immediately
	for h, btn := range w.hotkeyBtns {
		if btn.Clicked(gtx) {
			w.config.SetHotkey(h)
			w.mu.Lock()
			w.hotkeyOpen = false
			callback := w.onHotkeyChange
			w.mu.Unlock()
			if callback != nil {
				callback(h)
			}
		}
	}

	// Paste delay options
	for i, btn := range w.delayBtns {
		if btn.Clicked(gtx) {
			w.config.SetPasteDelay(config.PasteDelayOptions()[i].Seconds)
			w.mu.Lock()
			w.delayOpen = false
			w.mu.Unlock()
		}
	}

	// Toggles persist on every flip
	if w.soundToggle.Update(gtx) {
		w.config.SetSoundEnabled(w.soundToggle.Value)
	}
	if w.trayToggle.Update(gtx) {
		w.config.SetStartMinimized(w.trayToggle.Value)
	}
	if w.startupToggle.Update(gtx) {
		enabled := w.startupToggle.Value
		w.config.SetRunOnStartup(enabled)
		w.mu.Lock()
		callback := w.onStartupChange
		w.mu.Unlock()
		if callback != nil {
			callback(enabled)
		}
	}

	if w.minimizeBtn.Clicked(gtx) {
		go w.Hide()
	}
	if w.quitBtn.Clicked(gtx) {
		w.mu.Lock()
		callback := w.onQuit
		w.mu.Unlock()
		if callback != nil {
			callback()
		}
	}
}

func (w *Window) getState() (updates.State, string, string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status, w.statusText, w.lastText
}

func (w *Window) getDropdownState() (hotkeyOpen, delayOpen bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.hotkeyOpen, w.delayOpen
}
