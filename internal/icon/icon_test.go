package icon

import (
	"bytes"
	"image/png"
	"testing"

	"ghostwriter/internal/updates"
)

func TestForStateProducesValidPNG(t *testing.T) {
	states := []updates.State{
		updates.StateReady,
		updates.StateRecording,
		updates.StateTranscribing,
		updates.StateError,
	}
	for _, state := range states {
		data := ForState(state)
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("state %v: invalid png: %v", state, err)
		}
		b := img.Bounds()
		if b.Dx() != Size || b.Dy() != Size {
			t.Fatalf("state %v: bounds %v, want %dx%d", state, b, Size, Size)
		}
	}
}

func TestStateIconsDiffer(t *testing.T) {
	ready := ForState(updates.StateReady)
	recording := ForState(updates.StateRecording)
	if bytes.Equal(ready, recording) {
		t.Fatalf("ready and recording icons should differ")
	}
}
