// Package hotkey registers the global recording trigger.
package hotkey

import (
	"fmt"
	"log"
	"sync"
	"time"

	"golang.design/x/hotkey"
	"golang.design/x/hotkey/mainthread"

	"ghostwriter/internal/config"
)

// Handler owns the registered global hotkey and its listener goroutine.
type Handler struct {
	mu      sync.Mutex
	hk      *hotkey.Hotkey
	onPress func()
	current config.Hotkey
	stopCh  chan struct{}
}

// New creates a handler calling onPress for each trigger.
func New(onPress func()) *Handler {
	return &Handler{onPress: onPress}
}

// Register registers the trigger, replacing any previous registration.
func (h *Handler) Register(hk config.Hotkey) error {
	log.Printf("registering hotkey %s", hk)

	h.mu.Lock()
	if h.stopCh != nil {
		close(h.stopCh)
		h.stopCh = nil
	}
	oldHk := h.hk
	h.hk = nil
	h.mu.Unlock()

	// Give the old listener time to exit before unregistering.
	time.Sleep(50 * time.Millisecond)

	if oldHk != nil {
		done := make(chan struct{})
		go func() {
			oldHk.Unregister()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(500 * time.Millisecond):
			log.Printf("hotkey unregister timeout")
		}
	}

	mods, key, err := parse(hk)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.hk = hotkey.New(mods, key)
	h.current = hk
	h.stopCh = make(chan struct{})

	if err := h.hk.Register(); err != nil {
		h.hk = nil
		h.stopCh = nil
		return fmt.Errorf("register %s: %w", hk, err)
	}

	go h.listen(h.stopCh)
	return nil
}

func (h *Handler) listen(stopCh chan struct{}) {
	h.mu.Lock()
	hk := h.hk
	h.mu.Unlock()

	if hk == nil {
		return
	}

	var lastKeydown time.Time
	const debounceInterval = 300 * time.Millisecond // guards against key repeat

	for {
		select {
		case <-stopCh:
			return
		case _, ok := <-hk.Keydown():
			if !ok {
				return
			}
			now := time.Now()
			if now.Sub(lastKeydown) < debounceInterval {
				continue
			}
			lastKeydown = now
			if h.onPress != nil {
				h.onPress()
			}
		case _, ok := <-hk.Keyup():
			if !ok {
				return
			}
			// Toggle mode: keyup is ignored.
		}
	}
}

// Unregister removes the current registration.
func (h *Handler) Unregister() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stopCh != nil {
		close(h.stopCh)
		h.stopCh = nil
	}
	if h.hk != nil {
		err := h.hk.Unregister()
		h.hk = nil
		return err
	}
	return nil
}

// Current returns the registered trigger.
func (h *Handler) Current() config.Hotkey {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// RunOnMainThread runs fn on the process main thread, which some
// platforms require for event taps.
func RunOnMainThread(fn func()) {
	mainthread.Init(fn)
}

// parse converts a configured trigger into registration arguments.
// Modifier values come from the platform-specific modifiers_*.go files.
func parse(h config.Hotkey) ([]hotkey.Modifier, hotkey.Key, error) {
	switch h {
	case config.HotkeyCtrlShiftR:
		return []hotkey.Modifier{modCtrl, modShift}, hotkey.KeyR, nil
	case config.HotkeyCtrlShiftD:
		return []hotkey.Modifier{modCtrl, modShift}, hotkey.KeyD, nil
	case config.HotkeyCtrlAltV:
		return []hotkey.Modifier{modCtrl, modAlt}, hotkey.KeyV, nil
	}

	if key, ok := functionKeys[h]; ok {
		return nil, key, nil
	}
	return nil, 0, fmt.Errorf("unknown hotkey %q", h)
}

var functionKeys = map[config.Hotkey]hotkey.Key{
	config.HotkeyF1:  hotkey.KeyF1,
	config.HotkeyF2:  hotkey.KeyF2,
	config.HotkeyF3:  hotkey.KeyF3,
	config.HotkeyF4:  hotkey.KeyF4,
	config.HotkeyF5:  hotkey.KeyF5,
	config.HotkeyF6:  hotkey.KeyF6,
	config.HotkeyF7:  hotkey.KeyF7,
	config.HotkeyF8:  hotkey.KeyF8,
	config.HotkeyF9:  hotkey.KeyF9,
	config.HotkeyF10: hotkey.KeyF10,
	config.HotkeyF11: hotkey.KeyF11,
	config.HotkeyF12: hotkey.KeyF12,
}
