package mainwin

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"ghostwriter/internal/config"
	"ghostwriter/internal/updates"
)

// Color palette - modern dark theme
var (
	colorBG         = color.NRGBA{R: 30, G: 30, B: 34, A: 255}
	colorPanel      = color.NRGBA{R: 45, G: 45, B: 50, A: 255}
	colorPanelLight = color.NRGBA{R: 55, G: 55, B: 62, A: 255}
	colorText       = color.NRGBA{R: 240, G: 240, B: 245, A: 255}
	colorTextDim    = color.NRGBA{R: 140, G: 140, B: 150, A: 255}
	colorAccent     = color.NRGBA{R: 88, G: 166, B: 255, A: 255}
	colorDanger     = color.NRGBA{R: 220, G: 80, B: 80, A: 255}
)

// Status dot colors per state.
var statusColors = map[updates.State]color.NRGBA{
	updates.StateReady:        {R: 136, G: 136, B: 136, A: 255},
	updates.StateRecording:    {R: 76, G: 175, B: 80, A: 255},
	updates.StateTranscribing: {R: 255, G: 193, B: 7, A: 255},
	updates.StateError:        {R: 244, G: 67, B: 54, A: 255},
}

func (w *Window) draw(gtx layout.Context) layout.Dimensions {
	// Fill background
	rect := clip.Rect{Max: gtx.Constraints.Max}
	paint.FillShape(gtx.Ops, colorBG, rect.Op())

	status, statusText, lastText := w.getState()
	hotkeyOpen, delayOpen := w.getDropdownState()

	return layout.UniformInset(unit.Dp(20)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			// Title (fixed)
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawTitle(gtx)
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

			// Status row (fixed)
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawStatusRow(gtx, status, statusText)
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),

			// Scrollable content area
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				th := material.NewTheme()
				return material.List(th, &w.contentList).Layout(gtx, 1, func(gtx layout.Context, _ int) layout.Dimensions {
					return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							return w.drawTranscriptionPanel(gtx, lastText)
						}),

						layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							return w.drawHotkeyPanel(gtx, hotkeyOpen)
						}),

						layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							return w.drawPasteSpeedPanel(gtx, delayOpen)
						}),

						layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							return w.drawTogglesPanel(gtx)
						}),
					)
				})
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),

			// Buttons (fixed at bottom)
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawButtons(gtx)
			}),
		)
	})
}

func (w *Window) drawTitle(gtx layout.Context) layout.Dimensions {
	th := material.NewTheme()
	th.Palette.Fg = colorText

	label := material.Label(th, unit.Sp(22), "👻 GhostWriter")
	label.Font.Weight = font.Bold
	return label.Layout(gtx)
}

func (w *Window) drawSectionHeader(gtx layout.Context, text string) layout.Dimensions {
	th := material.NewTheme()
	th.Palette.Fg = colorTextDim

	label := material.Label(th, unit.Sp(12), text)
	label.Font.Weight = font.Medium
	return label.Layout(gtx)
}

func (w *Window) drawStatusRow(gtx layout.Context, status updates.State, text string) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			size := gtx.Dp(unit.Dp(12))
			dot := clip.Ellipse{Max: image.Pt(size, size)}
			col, ok := statusColors[status]
			if !ok {
				col = statusColors[updates.StateReady]
			}
			paint.FillShape(gtx.Ops, col, dot.Op(gtx.Ops))
			return layout.Dimensions{Size: image.Pt(size, size)}
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			th := material.NewTheme()
			th.Palette.Fg = colorText
			lbl := material.Label(th, unit.Sp(15), text)
			lbl.Font.Weight = font.Medium
			return lbl.Layout(gtx)
		}),
	)
}

func (w *Window) drawTranscriptionPanel(gtx layout.Context, lastText string) layout.Dimensions {
	return w.drawPanel(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawSectionHeader(gtx, "LAST TRANSCRIPTION")
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),

			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				th := material.NewTheme()
				text := lastText
				if text == "" {
					text = fmt.Sprintf("Press %s to start listening...", w.config.Hotkey())
					th.Palette.Fg = colorTextDim
				} else {
					th.Palette.Fg = colorText
				}
				lbl := material.Label(th, unit.Sp(14), text)
				return lbl.Layout(gtx)
			}),
		)
	})
}

func (w *Window) drawHotkeyPanel(gtx layout.Context, open bool) layout.Dimensions {
	current := w.config.Hotkey()

	return w.drawPanel(gtx, func(gtx layout.Context) layout.Dimensions {
		children := []layout.FlexChild{
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawSectionHeader(gtx, "HOTKEY")
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawDropdownHeader(gtx, &w.hotkeyDropBtn, string(current), open)
			}),
		}

		if open {
			children = append(children, layout.Rigid(layout.Spacer{Height: unit.Dp(4)}.Layout))
			for _, h := range config.AvailableHotkeys() {
				h := h
				children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return w.drawOption(gtx, w.hotkeyBtns[h], string(h), h == current)
				}))
			}
		}

		return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
	})
}

func (w *Window) drawPasteSpeedPanel(gtx layout.Context, open bool) layout.Dimensions {
	currentDelay := w.config.PasteDelay()
	currentLabel := fmt.Sprintf("%.2fs", currentDelay)
	currentIdx := -1
	for i, opt := range config.PasteDelayOptions() {
		if math.Abs(opt.Seconds-currentDelay) < 0.001 {
			currentLabel = opt.Label
			currentIdx = i
			break
		}
	}

	return w.drawPanel(gtx, func(gtx layout.Context) layout.Dimensions {
		children := []layout.FlexChild{
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawSectionHeader(gtx, "PASTE SPEED")
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawDropdownHeader(gtx, &w.delayDropBtn, currentLabel, open)
			}),
		}

		if open {
			children = append(children, layout.Rigid(layout.Spacer{Height: unit.Dp(4)}.Layout))
			for i, opt := range config.PasteDelayOptions() {
				i, opt := i, opt
				children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return w.drawOption(gtx, w.delayBtns[i], opt.Label, i == currentIdx)
				}))
			}
		}

		return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
	})
}

func (w *Window) drawTogglesPanel(gtx layout.Context) layout.Dimensions {
	return w.drawPanel(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawSectionHeader(gtx, "OPTIONS")
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawToggleRow(gtx, "Play sound on start/stop", &w.soundToggle)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(10)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawToggleRow(gtx, "Start minimized to tray", &w.trayToggle)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(10)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return w.drawToggleRow(gtx, "Run on Windows startup", &w.startupToggle)
			}),
		)
	})
}

func (w *Window) drawToggleRow(gtx layout.Context, label string, toggle *widget.Bool) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			th := material.NewTheme()
			th.Palette.Fg = colorText
			lbl := material.Label(th, unit.Sp(14), label)
			return lbl.Layout(gtx)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			th := material.NewTheme()
			sw := material.Switch(th, toggle, label)
			sw.Color.Enabled = colorAccent
			sw.Color.Disabled = colorPanelLight
			return sw.Layout(gtx)
		}),
	)
}

func (w *Window) drawDropdownHeader(gtx layout.Context, btn *widget.Clickable, label string, open bool) layout.Dimensions {
	arrow := "▾"
	if open {
		arrow = "▴"
	}

	macro := op.Record(gtx.Ops)
	dims := material.Clickable(gtx, btn, func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{
			Top: unit.Dp(8), Bottom: unit.Dp(8),
			Left: unit.Dp(12), Right: unit.Dp(12),
		}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					th := material.NewTheme()
					th.Palette.Fg = colorText
					lbl := material.Label(th, unit.Sp(14), label)
					return lbl.Layout(gtx)
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					th := material.NewTheme()
					th.Palette.Fg = colorTextDim
					lbl := material.Label(th, unit.Sp(14), arrow)
					return lbl.Layout(gtx)
				}),
			)
		})
	})
	call := macro.Stop()

	rr := gtx.Dp(unit.Dp(6))
	rect := clip.RRect{
		Rect: image.Rectangle{Max: dims.Size},
		NE:   rr, NW: rr, SE: rr, SW: rr,
	}
	paint.FillShape(gtx.Ops, colorPanelLight, rect.Op(gtx.Ops))

	call.Add(gtx.Ops)
	return dims
}

func (w *Window) drawOption(gtx layout.Context, btn *widget.Clickable, label string, selected bool) layout.Dimensions {
	textColor := colorTextDim
	if selected {
		textColor = colorAccent
	}

	return material.Clickable(gtx, btn, func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{
			Top: unit.Dp(6), Bottom: unit.Dp(6),
			Left: unit.Dp(12), Right: unit.Dp(12),
		}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			th := material.NewTheme()
			th.Palette.Fg = textColor
			lbl := material.Label(th, unit.Sp(14), label)
			return lbl.Layout(gtx)
		})
	})
}

func (w *Window) drawButtons(gtx layout.Context) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceBetween}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return w.drawButton(gtx, &w.minimizeBtn, "Minimize to Tray", colorAccent, colorText)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return w.drawButton(gtx, &w.quitBtn, "Quit", colorDanger, colorText)
		}),
	)
}

func (w *Window) drawButton(gtx layout.Context, btn *widget.Clickable, label string, bgColor, textColor color.NRGBA) layout.Dimensions {
	macro := op.Record(gtx.Ops)
	dims := material.Clickable(gtx, btn, func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{
			Top: unit.Dp(10), Bottom: unit.Dp(10),
			Left: unit.Dp(20), Right: unit.Dp(20),
		}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			th := material.NewTheme()
			th.Palette.Fg = textColor
			lbl := material.Label(th, unit.Sp(14), label)
			lbl.Font.Weight = font.Medium
			return lbl.Layout(gtx)
		})
	})
	call := macro.Stop()

	rr := gtx.Dp(unit.Dp(8))
	rect := clip.RRect{
		Rect: image.Rectangle{Max: dims.Size},
		NE:   rr, NW: rr, SE: rr, SW: rr,
	}
	paint.FillShape(gtx.Ops, bgColor, rect.Op(gtx.Ops))

	call.Add(gtx.Ops)
	return dims
}

func (w *Window) drawPanel(gtx layout.Context, content layout.Widget) layout.Dimensions {
	// Layout content first to get its size
	macro := op.Record(gtx.Ops)
	dims := layout.UniformInset(unit.Dp(16)).Layout(gtx, content)
	call := macro.Stop()

	rr := gtx.Dp(unit.Dp(12))
	rect := clip.RRect{
		Rect: image.Rectangle{Max: dims.Size},
		NE:   rr, NW: rr, SE: rr, SW: rr,
	}
	paint.FillShape(gtx.Ops, colorPanel, rect.Op(gtx.Ops))

	call.Add(gtx.Ops)

	return dims
}
