package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func tempSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), SettingsFile)
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write settings file: %v", err)
		}
	}
	return path
}

func TestDefaultsWhenFileMissing(t *testing.T) {
	c := newAt(tempSettings(t, ""))

	if c.Hotkey() != DefaultHotkey {
		t.Fatalf("hotkey = %q, want %q", c.Hotkey(), DefaultHotkey)
	}
	if !c.SoundEnabled() {
		t.Fatalf("sound_enabled should default to true")
	}
	if c.PasteDelay() != DefaultPasteDelay {
		t.Fatalf("paste_delay = %v, want %v", c.PasteDelay(), DefaultPasteDelay)
	}
	if c.StartMinimized() || c.RunOnStartup() {
		t.Fatalf("start_minimized and run_on_startup should default to false")
	}
}

func TestLoadMergesPartialFile(t *testing.T) {
	c := newAt(tempSettings(t, `{"hotkey": "F9", "sound_enabled": false}`))

	if c.Hotkey() != HotkeyF9 {
		t.Fatalf("hotkey = %q, want F9", c.Hotkey())
	}
	if c.SoundEnabled() {
		t.Fatalf("sound_enabled should be false")
	}
	// Absent keys keep their defaults.
	if c.PasteDelay() != DefaultPasteDelay {
		t.Fatalf("paste_delay = %v, want default %v", c.PasteDelay(), DefaultPasteDelay)
	}
	if c.StartMinimized() {
		t.Fatalf("start_minimized should keep default false")
	}
}

func TestLoadIgnoresUnknownKeys(t *testing.T) {
	c := newAt(tempSettings(t, `{"hotkey": "F5", "theme": "dark", "volume": 11}`))

	if c.Hotkey() != HotkeyF5 {
		t.Fatalf("hotkey = %q, want F5", c.Hotkey())
	}
}

func TestLoadRejectsUnknownHotkey(t *testing.T) {
	c := newAt(tempSettings(t, `{"hotkey": "F13"}`))

	if c.Hotkey() != DefaultHotkey {
		t.Fatalf("hotkey = %q, want default %q", c.Hotkey(), DefaultHotkey)
	}
}

func TestLoadToleratesCorruptFile(t *testing.T) {
	c := newAt(tempSettings(t, `{not json`))

	if c.Hotkey() != DefaultHotkey {
		t.Fatalf("corrupt file should leave defaults, got hotkey %q", c.Hotkey())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := tempSettings(t, "")
	c := newAt(path)

	c.SetHotkey(HotkeyCtrlShiftR)
	c.SetPasteDelay(0.25)
	c.SetStartMinimized(true)
	c.SetSoundEnabled(false)

	reloaded := newAt(path)
	if reloaded.Hotkey() != HotkeyCtrlShiftR {
		t.Fatalf("hotkey = %q, want Ctrl+Shift+R", reloaded.Hotkey())
	}
	if reloaded.PasteDelay() != 0.25 {
		t.Fatalf("paste_delay = %v, want 0.25", reloaded.PasteDelay())
	}
	if !reloaded.StartMinimized() {
		t.Fatalf("start_minimized should be true")
	}
	if reloaded.SoundEnabled() {
		t.Fatalf("sound_enabled should be false")
	}
}

func TestSaveIsIdempotent(t *testing.T) {
	path := tempSettings(t, "")
	c := newAt(path)
	c.SetHotkey(HotkeyF9)

	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read settings: %v", err)
	}

	// Saving the same values again must not change the file.
	c.SetHotkey(HotkeyF9)
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read settings: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("repeated save changed the file:\n%s\nvs\n%s", first, second)
	}
}

func TestSaveWritesAllRecognizedKeys(t *testing.T) {
	path := tempSettings(t, "")
	newAt(path).SetHotkey(HotkeyF8)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read settings: %v", err)
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		t.Fatalf("saved settings are not valid JSON: %v", err)
	}
	for _, k := range []string{"hotkey", "sound_enabled", "paste_delay", "start_minimized", "run_on_startup"} {
		if _, ok := keys[k]; !ok {
			t.Fatalf("saved settings missing key %q", k)
		}
	}
}
