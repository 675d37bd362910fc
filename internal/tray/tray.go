// Package tray provides the system tray icon and menu.
package tray

import (
	"github.com/getlantern/systray"

	"ghostwriter/internal/icon"
	"ghostwriter/internal/updates"
)

const appName = "GhostWriter"

// Callbacks holds the menu event handlers.
type Callbacks struct {
	OnShowWindow      func()
	OnToggleRecording func()
	OnQuit            func()
}

// Tray manages the system tray icon. systray runs it on its own
// goroutine; Run blocks for the lifetime of the app.
type Tray struct {
	callbacks Callbacks
	showBtn   *systray.MenuItem
	recordBtn *systray.MenuItem
	quitBtn   *systray.MenuItem
}

// New creates a Tray.
func New(callbacks Callbacks) *Tray {
	return &Tray{callbacks: callbacks}
}

// Run starts the tray loop; onReady fires once the tray is initialized.
func (t *Tray) Run(onReady func()) {
	systray.Run(func() {
		t.onReady()
		if onReady != nil {
			onReady()
		}
	}, func() {})
}

func (t *Tray) onReady() {
	systray.SetIcon(icon.ForState(updates.StateReady))
	systray.SetTitle(appName)
	systray.SetTooltip(appName + " - Click to show")

	t.showBtn = systray.AddMenuItem("Show Window", "Open the settings window")
	t.recordBtn = systray.AddMenuItem("Start Recording", "Toggle dictation")
	systray.AddSeparator()
	t.quitBtn = systray.AddMenuItem("Quit", "Close the application")

	go t.handleMenuEvents()
}

func (t *Tray) handleMenuEvents() {
	for {
		select {
		case <-t.showBtn.ClickedCh:
			if t.callbacks.OnShowWindow != nil {
				t.callbacks.OnShowWindow()
			}
		case <-t.recordBtn.ClickedCh:
			if t.callbacks.OnToggleRecording != nil {
				t.callbacks.OnToggleRecording()
			}
		case <-t.quitBtn.ClickedCh:
			if t.callbacks.OnQuit != nil {
				t.callbacks.OnQuit()
			}
			systray.Quit()
			return
		}
	}
}

// SetState recolors the icon and retitles the recording menu item.
func (t *Tray) SetState(state updates.State) {
	systray.SetIcon(icon.ForState(state))
	systray.SetTooltip(appName + " - " + state.String())
	if t.recordBtn == nil {
		return
	}
	if state == updates.StateRecording {
		t.recordBtn.SetTitle("Stop Recording")
	} else {
		t.recordBtn.SetTitle("Start Recording")
	}
}

// Quit stops the tray loop.
func (t *Tray) Quit() {
	systray.Quit()
}
