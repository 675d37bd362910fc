// Package icon renders the application icons at runtime.
//
// The tray icon is a filled circle whose color tracks the dictation
// status; rendering it on demand avoids shipping image assets.
package icon

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"ghostwriter/internal/updates"
)

// Size is the icon edge length in pixels.
const Size = 64

var stateColors = map[updates.State]color.RGBA{
	updates.StateReady:        {136, 136, 136, 255}, // gray
	updates.StateRecording:    {76, 175, 80, 255},   // green
	updates.StateTranscribing: {255, 193, 7, 255},   // amber
	updates.StateError:        {244, 67, 54, 255},   // red
}

// ForState renders the PNG tray icon for a dictation state.
func ForState(state updates.State) []byte {
	c, ok := stateColors[state]
	if !ok {
		c = stateColors[updates.StateReady]
	}
	return Render(c)
}

// Render encodes a filled circle of the given color with a light border.
func Render(c color.RGBA) []byte {
	img := image.NewRGBA(image.Rect(0, 0, Size, Size))

	center := float64(Size) / 2
	radius := center - 2
	border := color.RGBA{255, 255, 255, 200}

	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center
			d := dx*dx + dy*dy
			switch {
			case d <= (radius-2)*(radius-2):
				img.SetRGBA(x, y, c)
			case d <= radius*radius:
				img.SetRGBA(x, y, border)
			}
		}
	}

	var buf bytes.Buffer
	// Encoding an in-memory RGBA image cannot fail.
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}
