// Package indicator provides the floating status popup shown while
// recording or transcribing.
package indicator

import (
	"image"
	"image/color"
	"math"
	"sync"
	"time"

	"gioui.org/app"
	"gioui.org/font"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// Look selects the indicator's appearance.
type Look int

const (
	LookRecording Look = iota
	LookTranscribing
)

const (
	windowTitle = "GhostWriter Indicator"

	// Window size in dp.
	width  = 126
	height = 32

	refreshRate = 30 * time.Millisecond
	// Animation phase advance per frame; (sin(step)+1)/2 breathes the
	// text color between the two look colors.
	stepPerFrame = 0.15
)

var (
	pillRecording    = color.NRGBA{R: 0x12, G: 0x12, B: 0x12, A: 0xf2}
	pillTranscribing = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xf2}
	pillOutline      = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}

	// Recording breathes bright green to sea green; transcribing
	// breathes yellow to orange.
	recordingA    = color.NRGBA{R: 0x7f, G: 0xff, B: 0x7f, A: 0xff}
	recordingB    = color.NRGBA{R: 0x2e, G: 0x8b, B: 0x57, A: 0xff}
	transcribingA = color.NRGBA{R: 0xff, G: 0xeb, B: 0x3b, A: 0xff}
	transcribingB = color.NRGBA{R: 0xff, G: 0x98, B: 0x00, A: 0xff}
)

// Window manages the floating indicator popup.
type Window struct {
	mu      sync.Mutex
	look    Look
	step    float64
	window  *app.Window
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New creates an indicator window; it stays hidden until Show.
func New() *Window {
	return &Window{}
}

// Show displays the popup with the given look (non-blocking). If the
// popup is already visible only the look changes.
func (w *Window) Show(look Look) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.look = look
	if w.running {
		if w.window != nil {
			w.window.Invalidate()
		}
		return
	}

	w.running = true
	w.step = 0
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})

	go w.runEventLoop()
}

// Hide closes the popup. Safe to call when already hidden.
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
	defer w.teardown()

	w.window = new(app.Window)
	w.window.Option(
		app.Title(windowTitle),
		app.Size(unit.Dp(width), unit.Dp(height)),
		app.MinSize(unit.Dp(width), unit.Dp(height)),
		app.MaxSize(unit.Dp(width), unit.Dp(height)),
		app.Decorated(false),
	)

	// Move on screen and pin on top once the window exists.
	go positionWindow(windowTitle, width, height)

	var ops op.Ops

	ticker := time.NewTicker(refreshRate)
	defer ticker.Stop()

	stopCh := w.stopCh
	go func() {
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
			w.draw(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (w *Window) draw(gtx layout.Context) layout.Dimensions {
	w.mu.Lock()
	w.step += stepPerFrame
	look := w.look
	step := w.step
	w.mu.Unlock()

	intensity := (math.Sin(step) + 1) / 2

	var pill color.NRGBA
	var text string
	var textColor color.NRGBA
	switch look {
	case LookTranscribing:
		pill = pillTranscribing
		text = "👻 Thinking..."
		textColor = interpolate(transcribingA, transcribingB, intensity)
	default:
		pill = pillRecording
		text = "👻 Listening..."
		textColor = interpolate(recordingA, recordingB, intensity)
	}

	// Pill body with a thin outline.
	outer := image.Rectangle{Max: gtx.Constraints.Max}
	radius := gtx.Dp(15)
	paint.FillShape(gtx.Ops, pillOutline, rrect(outer, radius).Op(gtx.Ops))
	inner := outer.Inset(gtx.Dp(1))
	paint.FillShape(gtx.Ops, pill, rrect(inner, radius-gtx.Dp(1)).Op(gtx.Ops))

	// The whole pill is a drag handle.
	area := clip.Rect(outer).Push(gtx.Ops)
	event.Op(gtx.Ops, w)
	area.Pop()
	for {
		ev, ok := gtx.Event(pointer.Filter{Target: w, Kinds: pointer.Press})
		if !ok {
			break
		}
		if e, ok := ev.(pointer.Event); ok && e.Kind == pointer.Press && e.Buttons == pointer.ButtonPrimary {
			w.window.Perform(system.ActionMove)
		}
	}

	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		th := material.NewTheme()
		th.Palette.Fg = textColor
		lbl := material.Label(th, unit.Sp(11), text)
		lbl.Font.Weight = font.Bold
		return lbl.Layout(gtx)
	})
}

// teardown resets state after the event loop ends. A destroy that
// bypasses Hide still stops the ticker goroutine here.
func (w *Window) teardown() {
	w.mu.Lock()
	w.running = false
	if w.stopCh != nil {
		close(w.stopCh)
		w.stopCh = nil
	}
	w.mu.Unlock()
	close(w.doneCh)
}

func rrect(r image.Rectangle, radius int) clip.RRect {
	return clip.RRect{Rect: r, NW: radius, NE: radius, SW: radius, SE: radius}
}

// interpolate mixes two colors; factor 0 gives a, factor 1 gives b.
func interpolate(a, b color.NRGBA, factor float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*factor)
	}
	return color.NRGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: 0xff,
	}
}
