// Package sound plays the recording start/stop cues.
package sound

import (
	"sync"

	"github.com/gen2brain/beeep"
)

const (
	startFreq = 1000 // Hz, higher pitch
	stopFreq  = 600  // Hz, lower pitch
	beepMs    = 150
)

// Player plays short tones when recording starts and stops.
type Player struct {
	mu      sync.Mutex
	enabled bool
}

// New creates a Player.
func New(enabled bool) *Player {
	return &Player{enabled: enabled}
}

// SetEnabled enables or disables the cues.
func (p *Player) SetEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = enabled
}

// Enabled returns true if the cues are enabled.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Start plays the recording-started tone without blocking the caller.
func (p *Player) Start() {
	p.play(startFreq)
}

// Stop plays the recording-stopped tone without blocking the caller.
func (p *Player) Stop() {
	p.play(stopFreq)
}

func (p *Player) play(freq float64) {
	if !p.Enabled() {
		return
	}
	// Beep failures are not worth surfacing.
	go func() {
		_ = beeep.Beep(freq, beepMs)
	}()
}
