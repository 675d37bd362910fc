// Package splash provides the lightweight startup window shown while
// the application initializes.
package splash

import (
	"image/color"
	"sync"
	"time"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

var (
	colorBG  = color.NRGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff}
	colorFG  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorDim = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
)

// Window is the splash window.
type Window struct {
	mu      sync.Mutex
	window  *app.Window
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New creates a splash window.
func New() *Window {
	return &Window{}
}

// Show displays the splash (non-blocking).
func (w *Window) Show() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	w.mu.Unlock()

	go w.runEventLoop()
}

// Hide closes the splash.
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
	defer close(w.doneCh)

	w.window = new(app.Window)
	w.window.Option(
		app.Title("GhostWriter"),
		app.Size(unit.Dp(300), unit.Dp(150)),
		app.MinSize(unit.Dp(300), unit.Dp(150)),
		app.MaxSize(unit.Dp(300), unit.Dp(150)),
		app.Decorated(false),
	)

	var ops op.Ops

	stopCh := w.stopCh
	go func() {
		<-stopCh
		if w.window != nil {
			w.window.Perform(system.ActionClose)
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
	paint.FillShape(gtx.Ops, colorBG, clip.Rect{Max: gtx.Constraints.Max}.Op())

	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				th := material.NewTheme()
				th.Palette.Fg = colorFG
				lbl := material.Label(th, unit.Sp(42), "👻")
				return lbl.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				th := material.NewTheme()
				th.Palette.Fg = colorDim
				lbl := material.Label(th, unit.Sp(12), "Loading GhostWriter...")
				return lbl.Layout(gtx)
			}),
		)
	})
}
