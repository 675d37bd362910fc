// Package config provides the application settings with persistence to a file.
package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Hotkey is one of the fixed set of recording triggers.
type Hotkey string

const (
	HotkeyF1         Hotkey = "F1"
	HotkeyF2         Hotkey = "F2"
	HotkeyF3         Hotkey = "F3"
	HotkeyF4         Hotkey = "F4"
	HotkeyF5         Hotkey = "F5"
	HotkeyF6         Hotkey = "F6"
	HotkeyF7         Hotkey = "F7"
	HotkeyF8         Hotkey = "F8"
	HotkeyF9         Hotkey = "F9"
	HotkeyF10        Hotkey = "F10"
	HotkeyF11        Hotkey = "F11"
	HotkeyF12        Hotkey = "F12"
	HotkeyCtrlShiftR Hotkey = "Ctrl+Shift+R"
	HotkeyCtrlShiftD Hotkey = "Ctrl+Shift+D"
	HotkeyCtrlAltV   Hotkey = "Ctrl+Alt+V"
)

// DefaultHotkey is used when the stored value is missing or unknown.
const DefaultHotkey = HotkeyF8

// DefaultPasteDelay is the clipboard settle delay in seconds.
const DefaultPasteDelay = 0.15

// SettingsFile is the name of the settings file next to the executable.
const SettingsFile = "settings.json"

// AvailableHotkeys returns the selectable hotkeys in display order.
func AvailableHotkeys() []Hotkey {
	return []Hotkey{
		HotkeyF1, HotkeyF2, HotkeyF3, HotkeyF4, HotkeyF5, HotkeyF6,
		HotkeyF7, HotkeyF8, HotkeyF9, HotkeyF10, HotkeyF11, HotkeyF12,
		HotkeyCtrlShiftR, HotkeyCtrlShiftD, HotkeyCtrlAltV,
	}
}

// Valid reports whether h is one of the recognized hotkeys.
func (h Hotkey) Valid() bool {
	for _, k := range AvailableHotkeys() {
		if h == k {
			return true
		}
	}
	return false
}

// PasteDelayOption is a paste delay preset shown in the settings window.
type PasteDelayOption struct {
	Label   string
	Seconds float64
}

// PasteDelayOptions returns the paste delay presets in display order.
func PasteDelayOptions() []PasteDelayOption {
	return []PasteDelayOption{
		{"Fast (0.05s)", 0.05},
		{"Normal (0.10s)", 0.10},
		{"Default (0.15s)", 0.15},
		{"Slow (0.25s)", 0.25},
		{"Very Slow (0.50s)", 0.50},
	}
}

// settingsData is the on-disk representation. Unknown keys in a loaded
// file are ignored by encoding/json; pointer fields distinguish absent
// keys from explicit false/zero values so defaults survive the merge.
type settingsData struct {
	Hotkey         Hotkey   `json:"hotkey"`
	SoundEnabled   *bool    `json:"sound_enabled"`
	PasteDelay     *float64 `json:"paste_delay"`
	StartMinimized *bool    `json:"start_minimized"`
	RunOnStartup   *bool    `json:"run_on_startup"`
}

// Config holds the application settings.
type Config struct {
	mu             sync.RWMutex
	hotkey         Hotkey
	soundEnabled   bool
	pasteDelay     float64
	startMinimized bool
	runOnStartup   bool
	path           string
}

// New creates the configuration, loading settings.json from the
// executable's directory or falling back to defaults.
func New() *Config {
	path := ""
	execPath, err := os.Executable()
	if err == nil {
		execPath, err = filepath.EvalSymlinks(execPath)
		if err == nil {
			path = filepath.Join(filepath.Dir(execPath), SettingsFile)
		}
	}
	return newAt(path)
}

func newAt(path string) *Config {
	c := &Config{
		hotkey:       DefaultHotkey,
		soundEnabled: true,
		pasteDelay:   DefaultPasteDelay,
		path:         path,
	}
	c.load()
	return c
}

// load merges the stored settings over the defaults. A missing file or
// bad JSON leaves the defaults in place.
func (c *Config) load() {
	if c.path == "" {
		return
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return
	}

	var s settingsData
	if err := json.Unmarshal(data, &s); err != nil {
		log.Printf("settings: unreadable %s: %v", c.path, err)
		return
	}

	if s.Hotkey.Valid() {
		c.hotkey = s.Hotkey
	}
	if s.SoundEnabled != nil {
		c.soundEnabled = *s.SoundEnabled
	}
	if s.PasteDelay != nil {
		c.pasteDelay = *s.PasteDelay
	}
	if s.StartMinimized != nil {
		c.startMinimized = *s.StartMinimized
	}
	if s.RunOnStartup != nil {
		c.runOnStartup = *s.RunOnStartup
	}
}

// save writes the settings, pretty-printed. Called with c.mu held.
func (c *Config) save() {
	if c.path == "" {
		return
	}

	s := settingsData{
		Hotkey:         c.hotkey,
		SoundEnabled:   &c.soundEnabled,
		PasteDelay:     &c.pasteDelay,
		StartMinimized: &c.startMinimized,
		RunOnStartup:   &c.runOnStartup,
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return
	}

	if err := os.WriteFile(c.path, data, 0644); err != nil {
		log.Printf("settings: save failed: %v", err)
	}
}

// Hotkey returns the configured recording trigger.
func (c *Config) Hotkey() Hotkey {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hotkey
}

// SetHotkey sets the recording trigger. Unknown values fall back to the
// default.
func (c *Config) SetHotkey(h Hotkey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !h.Valid() {
		h = DefaultHotkey
	}
	c.hotkey = h
	c.save()
}

// SoundEnabled returns true if the start/stop beeps are enabled.
func (c *Config) SoundEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.soundEnabled
}

// SetSoundEnabled enables or disables the start/stop beeps.
func (c *Config) SetSoundEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.soundEnabled = enabled
	c.save()
}

// PasteDelay returns the clipboard settle delay in seconds.
func (c *Config) PasteDelay() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pasteDelay
}

// SetPasteDelay sets the clipboard settle delay in seconds.
func (c *Config) SetPasteDelay(seconds float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pasteDelay = seconds
	c.save()
}

// StartMinimized returns true if the main window stays hidden at launch.
func (c *Config) StartMinimized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.startMinimized
}

// SetStartMinimized sets whether the main window stays hidden at launch.
func (c *Config) SetStartMinimized(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startMinimized = enabled
	c.save()
}

// RunOnStartup returns true if the app registers itself for autostart.
func (c *Config) RunOnStartup() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.runOnStartup
}

// SetRunOnStartup sets whether the app registers itself for autostart.
func (c *Config) SetRunOnStartup(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.runOnStartup = enabled
	c.save()
}
